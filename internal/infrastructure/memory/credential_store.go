package memory

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/stockpile/inventory-system/internal/core/domain"
)

// SeedUser is a plaintext credential from configuration, hashed on load.
type SeedUser struct {
	Username string
	Password string
	Role     string
}

// CredentialStore is an immutable username → credential mapping seeded at
// process start. Plaintext passwords never survive construction.
type CredentialStore struct {
	users map[string]domain.Credential
}

// NewCredentialStore hashes each seed password with bcrypt and builds the
// lookup table. Duplicate usernames and unknown roles are rejected.
func NewCredentialStore(seeds []SeedUser) (*CredentialStore, error) {
	users := make(map[string]domain.Credential, len(seeds))
	for _, seed := range seeds {
		if seed.Username == "" || seed.Password == "" {
			return nil, fmt.Errorf("credential store: empty username or password")
		}
		if seed.Role != domain.RoleAdmin && seed.Role != domain.RoleUser {
			return nil, fmt.Errorf("credential store: unknown role %q for user %q", seed.Role, seed.Username)
		}
		if _, exists := users[seed.Username]; exists {
			return nil, fmt.Errorf("credential store: duplicate user %q", seed.Username)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("credential store: hash password for %q: %w", seed.Username, err)
		}

		users[seed.Username] = domain.Credential{
			Username:     seed.Username,
			PasswordHash: string(hash),
			Role:         seed.Role,
		}
	}
	return &CredentialStore{users: users}, nil
}

// Find returns the credential for username, or false when unknown.
func (s *CredentialStore) Find(username string) (domain.Credential, bool) {
	cred, ok := s.users[username]
	return cred, ok
}
