package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims are the identity claims carried by the session cookie.
type Claims struct {
	UserID    string `json:"userId"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	jwt.RegisteredClaims
}

// Identity is the subset of a user embedded in a token.
type Identity struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	Email     string
}

// GenerateToken signs an HS256 JWT embedding the identity, valid for ttl.
func GenerateToken(secret string, ttl time.Duration, id Identity) (string, error) {
	if secret == "" {
		return "", errors.New("signing secret is empty")
	}
	now := time.Now()
	claims := Claims{
		UserID:    id.ID.String(),
		FirstName: id.FirstName,
		LastName:  id.LastName,
		Email:     id.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifyToken validates signature and expiry and returns the decoded claims,
// or nil on any failure (malformed, expired, wrong signature). It never
// surfaces an error; rejection is the caller's decision.
func VerifyToken(secret, tokenString string) *Claims {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil
	}
	return claims
}
