package ports

import "github.com/stockpile/inventory-system/internal/core/domain"

// CredentialStore looks up seeded user accounts.
type CredentialStore interface {
	// Find returns the credential for username, or false when unknown.
	Find(username string) (domain.Credential, bool)
}
