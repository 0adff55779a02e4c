package storage

import (
	"context"

	"github.com/iudanet/chipsync/internal/models"
)

// IdentityStorage caches the anonymous identity issued by the server.
type IdentityStorage interface {
	// SaveToken stores the identity token
	SaveToken(ctx context.Context, token *models.IdentityToken) error

	// GetToken returns the cached token or ErrTokenNotFound
	GetToken(ctx context.Context) (*models.IdentityToken, error)

	// DeleteToken removes the cached token
	DeleteToken(ctx context.Context) error
}
