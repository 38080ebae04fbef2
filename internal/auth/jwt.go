package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CartTokenTTL is how long a guest cart session stays valid.
const CartTokenTTL = 30 * 24 * time.Hour

// Signer issues and validates cart session tokens.
// The token carries the remote cart ID so the storefront stays stateless.
type Signer struct {
	secret []byte
	now    func() time.Time
}

// NewSigner creates a signer for the given HMAC secret.
func NewSigner(secret string) *Signer {
	return &Signer{secret: []byte(secret), now: time.Now}
}

// GenerateCartToken creates a signed token for a cart ID.
func (s *Signer) GenerateCartToken(cartID string) (string, error) {
	if cartID == "" {
		return "", errors.New("empty cart id")
	}

	// 1. Create the claims: "sub" is the remote cart ID.
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   cartID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(CartTokenTTL)),
	}

	// 2. Sign it with HS256 and our secret.
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateCartToken parses a token and returns the cart ID it carries.
func (s *Signer) ValidateCartToken(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Only accept the HMAC family we sign with.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return "", err
	}
	if !token.Valid || claims.Subject == "" {
		return "", errors.New("invalid token")
	}
	return claims.Subject, nil
}
