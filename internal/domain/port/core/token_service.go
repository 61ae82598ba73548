package core

// Principal is the verified caller identity injected by the authentication
// boundary. The core trusts it and never re-verifies credentials.
type Principal struct {
	UserID   uint64
	Email    string
	FullName string
}

// TokenService issues and verifies bearer tokens for authenticated requests
type TokenService interface {
	// Issue creates a signed token carrying the principal
	Issue(principal Principal) (string, error)
	// Verify validates a token and returns the principal it carries
	Verify(token string) (*Principal, error)
}
