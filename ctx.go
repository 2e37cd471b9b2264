package identity

import "context"

var requestUserCtxKey = &contextKey{"request-user"}

type contextKey struct {
	name string
}

// WithRequestUser sets the resolved identity in the given context
func WithRequestUser(ctx context.Context, user *RequestUser) context.Context {
	return context.WithValue(ctx, requestUserCtxKey, user)
}

// RequestUserFromContext finds the resolved identity from the context.
func RequestUserFromContext(ctx context.Context) (*RequestUser, bool) {
	raw, ok := ctx.Value(requestUserCtxKey).(*RequestUser)
	return raw, ok
}
