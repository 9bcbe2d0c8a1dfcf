package scope

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingSecret = errors.New("scope: jwt secret is required")
	ErrInvalidToken  = errors.New("scope: invalid token")
)

// Payload is the identity carried by a session token.
type Payload struct {
	UserID      string
	Email       string
	DisplayName string
}

// Manager verifies and issues HS256 session tokens.
type Manager interface {
	Verify(token string) (Payload, error)
	CreateToken(p Payload, ttl time.Duration) (string, error)
}

type userMetadata struct {
	DisplayName string `json:"display_name,omitempty"`
}

// claims follows the identity provider layout: sub, email and user_metadata.display_name.
type claims struct {
	Email        string       `json:"email,omitempty"`
	UserMetadata userMetadata `json:"user_metadata"`
	jwt.RegisteredClaims
}

type manager struct {
	secret []byte
	now    func() time.Time
}

// New creates a Manager for the given shared secret.
func New(secret string) (Manager, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	return &manager{secret: []byte(secret), now: time.Now}, nil
}

func (m *manager) Verify(token string) (Payload, error) {
	var c claims
	_, err := jwt.ParseWithClaims(token, &c, func(*jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return Payload{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if c.Subject == "" {
		return Payload{}, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	return Payload{
		UserID:      c.Subject,
		Email:       c.Email,
		DisplayName: c.UserMetadata.DisplayName,
	}, nil
}

func (m *manager) CreateToken(p Payload, ttl time.Duration) (string, error) {
	now := m.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Email:        p.Email,
		UserMetadata: userMetadata{DisplayName: p.DisplayName},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})
	return token.SignedString(m.secret)
}
