// Package token mints and verifies the self-contained bearer tokens shared
// by every authenticated endpoint. Claims carry the subject email and role;
// no server-side session is kept and tokens are not revocable.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"shoplite_back_end/internal/models"
)

var ErrInvalidToken = errors.New("invalid or expired token")

type Claims struct {
	Email string
	Role  string
}

type Signer struct {
	secret []byte
	ttl    time.Duration
}

func NewSigner(secret string) *Signer {
	if secret == "" {
		secret = "super_secret"
	}
	return &Signer{secret: []byte(secret), ttl: 24 * time.Hour}
}

func (s *Signer) Mint(user models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  user.Email,
		"role": user.Role,
		"iat":  now.Unix(),
		"exp":  now.Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify parses and checks the signature and expiry of a token string.
// Every failure mode collapses into ErrInvalidToken; callers map it to 401.
func (s *Signer) Verify(tokenString string) (*Claims, error) {
	t, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !t.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, ErrInvalidToken
	}
	role, _ := claims["role"].(string)

	return &Claims{Email: sub, Role: role}, nil
}
