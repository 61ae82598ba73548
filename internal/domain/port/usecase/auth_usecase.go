package usecase

import (
	"context"
)

// RegisterRequest represents a signup request
type RegisterRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Credentials represents a login request
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserProfile is the public projection of an account returned on auth
type UserProfile struct {
	ID              uint64 `json:"id"`
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	SendBalance     int    `json:"sendBalance"`
	ReceivedBalance int    `json:"receivedBalance"`
}

// AuthResponse carries the authenticated user and their bearer token
type AuthResponse struct {
	User  UserProfile `json:"user"`
	Token string      `json:"token"`
}

// AuthUseCase defines registration and login operations
type AuthUseCase interface {
	// Register creates a new account with a hashed password and issues a token
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)

	// Login verifies credentials and issues a token. Unknown email and wrong
	// password are indistinguishable to the caller.
	Login(ctx context.Context, creds Credentials) (*AuthResponse, error)
}
