package handlers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// issuer is written to and required in every identity token
const issuer = "chipsync"

// IdentityClaims представляет JWT claims анонимной identity
type IdentityClaims struct {
	ParticipantID string `json:"participant_id"`
	DeviceID      string `json:"device_id,omitempty"`
	jwt.RegisteredClaims
}

// JWTConfig содержит конфигурацию для JWT
type JWTConfig struct {
	Secret   []byte
	TokenTTL time.Duration
}

// GenerateIdentityToken создает новый JWT access token для участника
func GenerateIdentityToken(cfg JWTConfig, participantID, deviceID string) (string, int64, error) {
	now := time.Now()

	claims := IdentityClaims{
		ParticipantID: participantID,
		DeviceID:      deviceID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   participantID,
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(cfg.Secret)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, int64(cfg.TokenTTL.Seconds()), nil
}

// ValidateIdentityToken валидирует и парсит JWT access token
func ValidateIdentityToken(cfg JWTConfig, tokenString string) (*IdentityClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &IdentityClaims{}, func(token *jwt.Token) (interface{}, error) {
		return cfg.Secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(issuer))
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*IdentityClaims)
	if !ok || !token.Valid || claims.ParticipantID == "" {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// contextKey тип для ключей контекста
type contextKey string

// ParticipantIDKey ключ для хранения participant_id в контексте
const ParticipantIDKey contextKey = "participant_id"

// WithParticipantID returns ctx carrying the authenticated participant.
func WithParticipantID(ctx context.Context, participantID string) context.Context {
	return context.WithValue(ctx, ParticipantIDKey, participantID)
}

// GetParticipantID извлекает participant_id из контекста запроса
func GetParticipantID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ParticipantIDKey).(string)
	return id, ok && id != ""
}
