package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"marketplace-api/internal/model"
)

const UnauthorizedMessage = "No autorizado"

type tokenValidator interface {
	ValidateToken(tokenString string) (*model.Claims, error)
}

type contextKey string

const authClaimsContextKey contextKey = "auth_claims"

type AuthMiddleware struct {
	validator tokenValidator
}

func NewAuthMiddleware(validator tokenValidator) *AuthMiddleware {
	return &AuthMiddleware{validator: validator}
}

// RequireAuth admits a request only with a valid "Authorization: Bearer <token>".
// Every rejection gets the same 401 body; the reason is only logged.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := BearerToken(r.Header.Get("Authorization"))
		if err != nil {
			rejectUnauthorized(w, r, err)
			return
		}

		claims, err := m.validator.ValidateToken(token)
		if err != nil {
			rejectUnauthorized(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), authClaimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// BearerToken extracts the token from an Authorization header value of exactly
// "Bearer <token>".
func BearerToken(header string) (string, error) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || scheme != "Bearer" {
		return "", model.ErrMissingToken
	}
	if token == "" || strings.ContainsAny(token, " \t\r\n") {
		return "", model.ErrMissingToken
	}
	return token, nil
}

func ClaimsFromContext(ctx context.Context) (*model.Claims, bool) {
	claims, ok := ctx.Value(authClaimsContextKey).(*model.Claims)
	return claims, ok && claims != nil
}

// WithClaims returns ctx carrying claims, as RequireAuth does on admission.
func WithClaims(ctx context.Context, claims *model.Claims) context.Context {
	return context.WithValue(ctx, authClaimsContextKey, claims)
}

func rejectUnauthorized(w http.ResponseWriter, r *http.Request, reason error) {
	slog.Debug("request rejected", "path", r.URL.Path, "reason", reason)
	writeMessage(w, http.StatusUnauthorized, UnauthorizedMessage)
}
