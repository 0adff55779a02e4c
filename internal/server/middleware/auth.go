package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/iudanet/chipsync/internal/server/handlers"
	"github.com/iudanet/chipsync/internal/storage"
)

// AuthMiddleware проверяет JWT токен identity.
// Токен берется из заголовка Authorization или, для websocket, из параметра token
func AuthMiddleware(logger *slog.Logger, jwtConfig handlers.JWTConfig, identities storage.IdentityStorage) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := extractToken(r)
			if err != nil {
				logger.WarnContext(ctx, "Missing or malformed token", "error", err)
				http.Error(w, "Unauthorized: "+err.Error(), http.StatusUnauthorized)
				return
			}

			claims, err := handlers.ValidateIdentityToken(jwtConfig, tokenString)
			if err != nil {
				logger.WarnContext(ctx, "Invalid access token", "error", err)
				http.Error(w, "Unauthorized: invalid token", http.StatusUnauthorized)
				return
			}

			// Identity должна существовать на этом сервере
			if identities != nil {
				if _, err := identities.GetIdentity(ctx, claims.ParticipantID); err != nil {
					if errors.Is(err, storage.ErrIdentityNotFound) {
						logger.WarnContext(ctx, "Unknown identity", "participant_id", claims.ParticipantID)
						http.Error(w, "Unauthorized: unknown identity", http.StatusUnauthorized)
						return
					}
					logger.ErrorContext(ctx, "Failed to look up identity", "error", err)
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
					return
				}
				if err := identities.TouchIdentity(ctx, claims.ParticipantID, time.Now().UTC()); err != nil {
					logger.WarnContext(ctx, "Failed to touch identity", "error", err)
				}
			}

			logger.DebugContext(ctx, "Participant authenticated", "participant_id", claims.ParticipantID)

			next.ServeHTTP(w, r.WithContext(handlers.WithParticipantID(ctx, claims.ParticipantID)))
		})
	}
}

var (
	errMissingToken = errors.New("missing token")
	errTokenFormat  = errors.New("invalid token format")
)

func extractToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		if token := r.URL.Query().Get("token"); token != "" {
			return token, nil
		}
		return "", errMissingToken
	}

	// Ожидаем формат: "Bearer <token>"
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errTokenFormat
	}
	return parts[1], nil
}
