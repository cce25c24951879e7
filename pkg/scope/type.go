package scope

// Payload is the authenticated identity carried through a request.
// UserID is numeric to match the channel grammar (orders.<id>, User.<id>).
type Payload struct {
	UserID    int64  `json:"user_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	JTI       string `json:"jti"`
	Issuer    string `json:"issuer,omitempty"`
	IssuedAt  int64  `json:"issued_at,omitempty"`
	ExpiresAt int64  `json:"expires_at,omitempty"`
}

// Manager issues and verifies session tokens for a Payload.
//
//go:generate mockery --name Manager
type Manager interface {
	CreateToken(p Payload) (string, error)
	Verify(token string) (Payload, error)
}
