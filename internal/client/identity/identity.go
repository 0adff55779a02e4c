// Package identity resolves the anonymous participant identity of this device.
package identity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/chipsync/internal/client/storage"
	"github.com/iudanet/chipsync/internal/models"
	"github.com/iudanet/chipsync/pkg/api"
)

// Provider returns the identity used to join rooms.
type Provider interface {
	AnonymousIdentity(ctx context.Context) (*models.Identity, error)
}

// DeviceStore is the part of the local store holding the device id.
type DeviceStore interface {
	GetOrCreateDeviceID(ctx context.Context) (string, error)
}

// DeviceProvider works offline: the device id is persistent,
// every call issues a fresh participant id.
type DeviceProvider struct {
	store DeviceStore
	now   func() time.Time
}

// NewDeviceProvider создает провайдер на локальном хранилище
func NewDeviceProvider(store DeviceStore) *DeviceProvider {
	return &DeviceProvider{store: store, now: time.Now}
}

// AnonymousIdentity returns the device id with a new participant id.
func (p *DeviceProvider) AnonymousIdentity(ctx context.Context) (*models.Identity, error) {
	deviceID, err := p.store.GetOrCreateDeviceID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get device id: %w", err)
	}

	now := p.now().UTC()
	return &models.Identity{
		ParticipantID: uuid.New().String(),
		DeviceID:      deviceID,
		CreatedAt:     now,
		LastSeenAt:    now,
	}, nil
}

//go:generate moq -out client_mock.go . IdentityClient

// IdentityClient is the server endpoint issuing anonymous identities.
type IdentityClient interface {
	AnonymousIdentity(ctx context.Context, deviceID string) (*api.IdentityResponse, error)
}

// TokenStore caches the issued token.
type TokenStore interface {
	SaveToken(ctx context.Context, token *models.IdentityToken) error
	GetToken(ctx context.Context) (*models.IdentityToken, error)
}

// RemoteProvider obtains the identity from the server and caches it until expiry.
type RemoteProvider struct {
	client IdentityClient
	tokens TokenStore
	device DeviceStore
	logger *slog.Logger
	now    func() time.Time
}

// NewRemoteProvider создает провайдер, получающий identity с сервера
func NewRemoteProvider(client IdentityClient, tokens TokenStore, device DeviceStore, logger *slog.Logger) *RemoteProvider {
	if logger == nil {
		logger = slog.Default()
	}
	return &RemoteProvider{
		client: client,
		tokens: tokens,
		device: device,
		logger: logger,
		now:    time.Now,
	}
}

// AnonymousIdentity returns the cached identity or requests a new one.
func (p *RemoteProvider) AnonymousIdentity(ctx context.Context) (*models.Identity, error) {
	deviceID, err := p.device.GetOrCreateDeviceID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get device id: %w", err)
	}

	now := p.now().UTC()

	token, err := p.Token(ctx)
	if err != nil {
		return nil, err
	}

	return &models.Identity{
		ParticipantID: token.ParticipantID,
		DeviceID:      deviceID,
		CreatedAt:     now,
		LastSeenAt:    now,
	}, nil
}

// Token returns a valid access token, requesting a new one if the cached one expired.
func (p *RemoteProvider) Token(ctx context.Context) (*models.IdentityToken, error) {
	now := p.now().UTC()

	cached, err := p.tokens.GetToken(ctx)
	switch {
	case err == nil && !cached.Expired(now):
		return cached, nil
	case err != nil && !errors.Is(err, storage.ErrTokenNotFound):
		p.logger.Warn("Failed to read cached identity token", "error", err)
	}

	deviceID, err := p.device.GetOrCreateDeviceID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get device id: %w", err)
	}

	resp, err := p.client.AnonymousIdentity(ctx, deviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to obtain anonymous identity: %w", err)
	}

	token := &models.IdentityToken{
		ParticipantID: resp.ParticipantID,
		Token:         resp.Token,
		ExpiresAt:     now.Add(time.Duration(resp.ExpiresIn) * time.Second),
	}

	if err := p.tokens.SaveToken(ctx, token); err != nil {
		// Токен все равно годен для текущего запуска
		p.logger.Warn("Failed to cache identity token", "error", err)
	}

	p.logger.Debug("Anonymous identity obtained", "participant_id", token.ParticipantID)
	return token, nil
}

// Fallback tries primary and falls back to secondary on any error.
type Fallback struct {
	primary   Provider
	secondary Provider
	logger    *slog.Logger
}

// NewFallback создает провайдер с запасным вариантом
func NewFallback(primary, secondary Provider, logger *slog.Logger) *Fallback {
	if logger == nil {
		logger = slog.Default()
	}
	return &Fallback{primary: primary, secondary: secondary, logger: logger}
}

// AnonymousIdentity returns the primary identity or the secondary one if it fails.
func (f *Fallback) AnonymousIdentity(ctx context.Context) (*models.Identity, error) {
	id, err := f.primary.AnonymousIdentity(ctx)
	if err == nil {
		return id, nil
	}

	f.logger.Warn("Primary identity provider failed, using fallback", "error", err)

	id, fallbackErr := f.secondary.AnonymousIdentity(ctx)
	if fallbackErr != nil {
		return nil, errors.Join(err, fallbackErr)
	}
	return id, nil
}
