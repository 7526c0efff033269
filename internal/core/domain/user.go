package domain

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Credential models a seeded user account. The set is built from configuration
// at startup and never mutated afterwards; passwords are stored as bcrypt
// hashes only.
type Credential struct {
	Username     string
	PasswordHash string
	Role         string
}
