// Package auth supplies bearer tokens to the HTTP layer. The API
// authenticates with static keys only, so the one implementation wraps a
// fixed string; the interface keeps the transport testable.
package auth

import (
	"context"

	"github.com/orientier/brandfolder-go/pkg/brandfolder"
)

// TokenManager provides the bearer token attached to requests.
type TokenManager interface {
	GetToken(ctx context.Context) (string, error)
}

// StaticTokenManager returns a fixed API key.
type StaticTokenManager struct {
	token string
}

// NewStaticTokenManager wraps an API key.
func NewStaticTokenManager(token string) *StaticTokenManager {
	return &StaticTokenManager{token: token}
}

// GetToken returns the API key.
func (m *StaticTokenManager) GetToken(ctx context.Context) (string, error) {
	return m.token, nil
}

// RefreshToken always fails: API keys are not refreshable.
func (m *StaticTokenManager) RefreshToken(ctx context.Context) error {
	return brandfolder.ErrStaticTokenCannotRefresh
}
