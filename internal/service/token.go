package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/NattanSilva/curd-user-and-admin/internal/domain"
)

var (
	// ErrTokenExpired marks a token whose expiry has elapsed.
	ErrTokenExpired = fmt.Errorf("%w: token is expired", domain.ErrUnauthorized)
	// ErrTokenInvalid marks a malformed token or a bad signature.
	ErrTokenInvalid = fmt.Errorf("%w: token is invalid", domain.ErrUnauthorized)
)

// TokenClaims binds a token to a subject id and an email identity claim.
type TokenClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// TokenService issues and verifies signed, time-bounded bearer tokens.
type TokenService struct {
	secret   []byte
	lifetime time.Duration
}

// NewTokenService creates a TokenService signing with the given secret.
// Tokens expire lifetime after issuance.
func NewTokenService(secret string, lifetime time.Duration) *TokenService {
	return &TokenService{
		secret:   []byte(secret),
		lifetime: lifetime,
	}
}

// Issue produces a signed HS256 token for the given subject and email claim.
func (s *TokenService) Issue(subjectID, email string) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
		},
		Email: email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature and expiry of a token string and returns its
// claims. Every authorization decision goes through here.
func (s *TokenService) Verify(tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

// PeekClaims decodes a token's claims WITHOUT verifying its signature or
// expiry. It must never stand in for Verify when token possession is the
// only protection for an operation.
func (s *TokenService) PeekClaims(tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
