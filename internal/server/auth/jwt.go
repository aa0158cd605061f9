// Package auth implements the credential primitives of the mail server:
// bcrypt password hashing and HMAC-signed session tokens.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/intramail/intramail/internal/common"
)

// Identity is the user triple carried inside a verified session token.
type Identity struct {
	ID    string
	Email string
	Name  string
}

// Claims carries the standard registered claims plus the identity fields
// the client and handlers need without a user lookup.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name,omitempty"`
}

// GenerateToken issues an HS256-signed session token for the identity,
// expiring after validityDuration.
func GenerateToken(identity Identity, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID: identity.ID,
		Email:  identity.Email,
		Name:   identity.Name,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// VerifyToken parses and verifies a session token, returning the embedded
// identity. Any structural, signature, or expiry failure yields
// common.ErrInvalidToken: verification fails closed and callers treat the
// request as anonymous.
func VerifyToken(tokenString string, secretKey []byte) (Identity, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey, nil
	})
	if err != nil || !token.Valid {
		return Identity{}, common.ErrInvalidToken
	}

	return Identity{ID: claims.UserID, Email: claims.Email, Name: claims.Name}, nil
}
