package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Metadata struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

type Claim struct {
	Metadata Metadata `json:"metadata"`
	jwt.RegisteredClaims
}

// Generate signs an access token for the user metadata with the given TTL.
func Generate(secret string, meta Metadata, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claim{
		Metadata: meta,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   meta.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// Parse validates the signed token and returns its claim.
func Parse(secret, tokenString string) (*Claim, error) {
	claim := &Claim{}
	parsed, err := jwt.ParseWithClaims(tokenString, claim, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claim, nil
}
