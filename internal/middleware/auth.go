package middleware

import (
	"context"
	"strings"

	"connectrpc.com/connect"
	"github.com/mayobojhosue-coder/app-bloom/internal/auth"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// AdminKey is the context key for storing the authenticated admin name.
const AdminKey contextKey = "admin"

// GetAdmin extracts the admin name from the context.
// Returns empty string if not found.
func GetAdmin(ctx context.Context) string {
	name, _ := ctx.Value(AdminKey).(string)
	return name
}

// bearerToken returns the token of an "Authorization: Bearer <token>" header.
func bearerToken(header string) (string, bool) {
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// RequireAuth returns a middleware that validates JWT tokens and requires authentication.
// It extracts the token from the Authorization header, validates it, and adds
// the admin name to the request context.
func RequireAuth(jwtManager *auth.JWTManager) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			authHeader := req.Header().Get("Authorization")
			if authHeader == "" {
				return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
			}

			tokenString, ok := bearerToken(authHeader)
			if !ok {
				return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidToken)
			}

			claims, err := jwtManager.Validate(tokenString)
			if err != nil {
				return nil, connect.NewError(connect.CodeUnauthenticated, err)
			}

			ctx = context.WithValue(ctx, AdminKey, claims.Name)
			return next(ctx, req)
		}
	}
}

// RequireAuthFor applies RequireAuth to the listed procedures only; every
// other procedure goes through OptionalAuth.
func RequireAuthFor(jwtManager *auth.JWTManager, procedures ...string) connect.UnaryInterceptorFunc {
	protected := make(map[string]bool, len(procedures))
	for _, p := range procedures {
		protected[p] = true
	}
	required := RequireAuth(jwtManager)
	optional := OptionalAuth(jwtManager)

	return func(next connect.UnaryFunc) connect.UnaryFunc {
		requiredNext := required(next)
		optionalNext := optional(next)
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if protected[req.Spec().Procedure] {
				return requiredNext(ctx, req)
			}
			return optionalNext(ctx, req)
		}
	}
}

// OptionalAuth returns a middleware that validates JWT tokens if present, but allows
// requests without authentication. Logged requests then carry the admin name.
func OptionalAuth(jwtManager *auth.JWTManager) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if tokenString, ok := bearerToken(req.Header().Get("Authorization")); ok {
				// Validate token (ignore errors - optional auth)
				if claims, err := jwtManager.Validate(tokenString); err == nil {
					ctx = context.WithValue(ctx, AdminKey, claims.Name)
				}
			}

			return next(ctx, req)
		}
	}
}
