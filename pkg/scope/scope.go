package scope

import "context"

type payloadKey struct{}

// SetPayloadToContext stores the authenticated payload in the context.
func SetPayloadToContext(ctx context.Context, p Payload) context.Context {
	return context.WithValue(ctx, payloadKey{}, p)
}

// GetPayloadFromContext returns the authenticated payload from the context,
// with ok reporting whether one was set.
func GetPayloadFromContext(ctx context.Context) (Payload, bool) {
	p, ok := ctx.Value(payloadKey{}).(Payload)
	return p, ok
}
