package ports

import "github.com/vncsmyrnk/projectvote/internal/core/domain"

type IdentityProvider interface {
	// Resolve returns the identity carried by token, issuing a fresh one when
	// token is absent or malformed.
	Resolve(token string) domain.Identity
	// Parse reports the identity carried by token without issuing.
	Parse(token string) (string, bool)
}
