package model

// Scope is the authenticated principal resolved from the session token.
// Handlers and authorization predicates receive it explicitly; there is no
// ambient current-user state.
type Scope struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	JTI    string `json:"jti"`
}
