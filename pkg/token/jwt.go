// Package token mints and verifies the signed session assertions carried in
// the Authorization header. Tokens are HS256 only and embed a public snapshot
// of the user at mint time; they are never persisted server-side.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// UserSnapshot is the subset of a user record embedded in a session token.
// Password hashes and verification/reset tokens never go in here.
type UserSnapshot struct {
	ID        string    `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Avatar    string    `json:"avatar"`
	Role      string    `json:"role"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"createdAt"`
}

type Claims struct {
	jwt.RegisteredClaims
	User UserSnapshot `json:"user"`
}

// Manager signs and verifies session tokens with a shared secret.
// Safe for concurrent use.
type Manager struct {
	secretKey []byte
	validity  time.Duration
}

func NewManager(secret string, validity time.Duration) *Manager {
	return &Manager{
		secretKey: []byte(secret),
		validity:  validity,
	}
}

// Mint issues a signed token over the given snapshot with an expiry claim.
func (m *Manager) Mint(user UserSnapshot) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.validity)),
			Subject:   user.ID,
		},
		User: user,
	})

	tokenString, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// Verify parses the token and returns the embedded snapshot. Any failure
// (bad signature, wrong algorithm, malformed payload, expired) comes back
// as ErrInvalidToken.
func (m *Manager) Verify(tokenString string) (*UserSnapshot, error) {
	claims := &Claims{}

	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, ErrInvalidToken
	}

	if !parsed.Valid {
		return nil, ErrInvalidToken
	}

	return &claims.User, nil
}
