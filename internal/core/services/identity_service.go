package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/projectvote/internal/core/domain"
	"github.com/vncsmyrnk/projectvote/internal/core/ports"
)

// DefaultIdentityTTL is how long a client keeps its voter token.
const DefaultIdentityTTL = 2 * 365 * 24 * time.Hour

type identityProvider struct {
	ttl time.Duration
	now func() time.Time
}

func NewIdentityProvider(ttl time.Duration) ports.IdentityProvider {
	if ttl <= 0 {
		ttl = DefaultIdentityTTL
	}
	return &identityProvider{
		ttl: ttl,
		now: time.Now,
	}
}

func (p *identityProvider) Resolve(token string) domain.Identity {
	expiresAt := p.now().Add(p.ttl)

	if id, ok := p.Parse(token); ok {
		return domain.Identity{Token: id, ExpiresAt: expiresAt}
	}

	return domain.Identity{
		Token:     uuid.NewString(),
		Issued:    true,
		ExpiresAt: expiresAt,
	}
}

func (p *identityProvider) Parse(token string) (string, bool) {
	if token == "" {
		return "", false
	}
	// canonical form only; uuid.Parse also takes urn and braced forms
	if len(token) != 36 {
		return "", false
	}
	if _, err := uuid.Parse(token); err != nil {
		return "", false
	}
	return token, true
}
