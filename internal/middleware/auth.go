package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"product-insights/internal/auth"
	"product-insights/internal/model"

	"github.com/rs/zerolog"
)

const bearerPrefix = "Bearer "

// TokenVerifier validates access tokens.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// RequireToken rejects requests without a valid bearer token.
func RequireToken(verifier TokenVerifier, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := RequestIDFromContext(r.Context())

			token, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				logger.Warn().
					Str("request_id", requestID).
					Str("path", r.URL.Path).
					Msg("missing bearer token")
				writeMessage(w, http.StatusUnauthorized, model.MsgTokenMissing)
				return
			}

			claims, err := verifier.Verify(token)
			if err != nil {
				message := model.MsgTokenInvalid
				if errors.Is(err, auth.ErrTokenExpired) {
					message = model.MsgTokenExpired
				}
				logger.Warn().
					Err(err).
					Str("request_id", requestID).
					Str("path", r.URL.Path).
					Msg("token rejected")
				writeMessage(w, http.StatusUnauthorized, message)
				return
			}

			logger.Debug().
				Str("request_id", requestID).
				Str("username", claims.Username).
				Msg("token accepted")

			ctx := context.WithValue(r.Context(), usernameKey, claims.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>" value.
func bearerToken(header string) (string, bool) {
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(bearerPrefix):])
	return token, token != ""
}
