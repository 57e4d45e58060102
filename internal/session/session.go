package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const AdminSubject = "admin"

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrRevoked      = errors.New("session revoked")
)

// Session é a sessão autenticada carregada no contexto da requisição.
type Session struct {
	ID        string    `json:"id"`
	Subject   string    `json:"subject"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// RevocationStore guarda os ids de sessão encerrados até expirarem.
type RevocationStore interface {
	Revoke(ctx context.Context, id string, until time.Time) error
	IsRevoked(ctx context.Context, id string) (bool, error)
}

type Manager struct {
	secret []byte
	ttl    time.Duration
	store  RevocationStore
	now    func() time.Time
}

func NewManager(secret string, ttl time.Duration, store RevocationStore) *Manager {
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
		store:  store,
		now:    time.Now,
	}
}

// Issue cria uma sessão nova e o JWT correspondente.
func (m *Manager) Issue(subject string) (string, *Session, error) {
	now := m.now().Truncate(time.Second)

	s := &Session{
		ID:        uuid.NewString(),
		Subject:   subject,
		IssuedAt:  now,
		ExpiresAt: now.Add(m.ttl),
	}

	claims := jwt.RegisteredClaims{
		ID:        s.ID,
		Subject:   s.Subject,
		IssuedAt:  jwt.NewNumericDate(s.IssuedAt),
		ExpiresAt: jwt.NewNumericDate(s.ExpiresAt),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", nil, fmt.Errorf("sign session: %w", err)
	}
	return token, s, nil
}

// Parse valida assinatura, expiração e revogação.
func (m *Manager) Parse(ctx context.Context, raw string) (*Session, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(
		raw,
		claims,
		func(*jwt.Token) (interface{}, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !token.Valid || claims.ID == "" {
		return nil, ErrInvalidToken
	}

	revoked, err := m.store.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("check revocation: %w", err)
	}
	if revoked {
		return nil, ErrRevoked
	}

	s := &Session{
		ID:        claims.ID,
		Subject:   claims.Subject,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		s.IssuedAt = claims.IssuedAt.Time
	}
	return s, nil
}

// Revoke encerra a sessão até o fim da validade do token.
func (m *Manager) Revoke(ctx context.Context, s *Session) error {
	return m.store.Revoke(ctx, s.ID, s.ExpiresAt)
}
