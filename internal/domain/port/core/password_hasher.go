package core

// PasswordHasher abstracts password hashing for the auth use case
type PasswordHasher interface {
	// Hash derives a storable hash from a plaintext password
	Hash(password string) (string, error)
	// Compare reports whether the plaintext password matches the stored hash
	Compare(hash, password string) bool
}
