package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	errs "github.com/boostly-app/boostly/internal/domain/error"
	"github.com/boostly-app/boostly/internal/domain/port/core"
)

// Claims carries the authenticated principal inside the signed token
type Claims struct {
	UserID   uint64 `json:"uid"`
	Email    string `json:"email"`
	FullName string `json:"name"`
	jwt.RegisteredClaims
}

// JWTTokenService implements the TokenService interface using HS256 JWTs
type JWTTokenService struct {
	secret       []byte
	tokenTTL     core.Duration
	timeProvider core.TimeProvider
}

// NewJWTTokenService creates a new JWT token service
func NewJWTTokenService(secret string, tokenTTL core.Duration, timeProvider core.TimeProvider) *JWTTokenService {
	return &JWTTokenService{
		secret:       []byte(secret),
		tokenTTL:     tokenTTL,
		timeProvider: timeProvider,
	}
}

// Issue creates a signed token carrying the principal
func (s *JWTTokenService) Issue(principal core.Principal) (string, error) {
	now := s.timeProvider.Now()

	claims := Claims{
		UserID:   principal.UserID,
		Email:    principal.Email,
		FullName: principal.FullName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL.Std())),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify validates a token and returns the principal it carries
func (s *JWTTokenService) Verify(tokenString string) (*core.Principal, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.timeProvider.Now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errs.ErrTokenExpired
		}
		return nil, errs.ErrInvalidToken
	}

	if !token.Valid || claims.UserID == 0 {
		return nil, errs.ErrInvalidToken
	}

	return &core.Principal{
		UserID:   claims.UserID,
		Email:    claims.Email,
		FullName: claims.FullName,
	}, nil
}
