package middleware

import (
	"context"
	"strings"

	"connectrpc.com/connect"
)

// UserHeader carries the caller identity. It is a plain name, not a
// credential.
const UserHeader = "X-Shopping-User"

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// UserKey is the context key for storing the caller identity.
const UserKey contextKey = "user"

// GetUser extracts the caller identity from the context.
// Returns empty string if not found.
func GetUser(ctx context.Context) string {
	user, _ := ctx.Value(UserKey).(string)
	return user
}

// WithUser returns a copy of ctx carrying user as the caller identity.
func WithUser(ctx context.Context, user string) context.Context {
	return context.WithValue(ctx, UserKey, user)
}

// IdentityInterceptor returns a server interceptor that reads the caller
// identity from UserHeader, falling back to defaultUser when the header is
// absent or blank.
func IdentityInterceptor(defaultUser string) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if req.Spec().IsClient {
				return next(ctx, req)
			}
			user := strings.TrimSpace(req.Header().Get(UserHeader))
			if user == "" {
				user = defaultUser
			}
			return next(WithUser(ctx, user), req)
		}
	}
}

// ClientIdentity returns a client interceptor that sends user in UserHeader
// on every call.
func ClientIdentity(user string) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if req.Spec().IsClient && user != "" {
				req.Header().Set(UserHeader, user)
			}
			return next(ctx, req)
		}
	}
}
