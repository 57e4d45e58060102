package session

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestIssueAndParse(t *testing.T) {
	ctx := context.Background()
	m := NewManager("segredo", 12*time.Hour, NewMemoryStore())

	token, issued, err := m.Issue(AdminSubject)
	require.NoError(t, err)
	assert.NotEmpty(t, issued.ID)
	assert.Equal(t, 12*time.Hour, issued.ExpiresAt.Sub(issued.IssuedAt))

	got, err := m.Parse(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, issued.ID, got.ID)
	assert.Equal(t, AdminSubject, got.Subject)
	assert.True(t, issued.ExpiresAt.Equal(got.ExpiresAt))
	assert.True(t, issued.IssuedAt.Equal(got.IssuedAt))
}

func TestParseRejects(t *testing.T) {
	ctx := context.Background()
	m := NewManager("segredo", time.Hour, NewMemoryStore())

	token, _, err := m.Issue(AdminSubject)
	require.NoError(t, err)

	t.Run("outra chave", func(t *testing.T) {
		other := NewManager("outra", time.Hour, NewMemoryStore())
		_, err := other.Parse(ctx, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expirado", func(t *testing.T) {
		late := NewManager("segredo", time.Hour, NewMemoryStore())
		late.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		_, err := late.Parse(ctx, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("algoritmo diferente", func(t *testing.T) {
		claims := jwt.RegisteredClaims{
			ID:        "x",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}
		raw, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("segredo"))
		require.NoError(t, err)

		_, err = m.Parse(ctx, raw)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("lixo", func(t *testing.T) {
		_, err := m.Parse(ctx, "abc.def.ghi")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestRevoke(t *testing.T) {
	ctx := context.Background()
	m := NewManager("segredo", time.Hour, NewMemoryStore())

	token, s, err := m.Issue(AdminSubject)
	require.NoError(t, err)

	require.NoError(t, m.Revoke(ctx, s))

	_, err = m.Parse(ctx, token)
	assert.ErrorIs(t, err, ErrRevoked)

	// outra sessão continua válida
	other, _, err := m.Issue(AdminSubject)
	require.NoError(t, err)
	_, err = m.Parse(ctx, other)
	assert.NoError(t, err)
}

func TestMemoryStoreExpires(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	require.NoError(t, store.Revoke(ctx, "a", now.Add(time.Minute)))

	revoked, err := store.IsRevoked(ctx, "a")
	require.NoError(t, err)
	assert.True(t, revoked)

	now = now.Add(2 * time.Minute)
	revoked, err = store.IsRevoked(ctx, "a")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestPassword(t *testing.T) {
	p, err := NewPassword("", "changeme")
	require.NoError(t, err)
	assert.True(t, p.Matches("changeme"))
	assert.False(t, p.Matches("errada"))

	hash, err := bcrypt.GenerateFromPassword([]byte("s3nha"), bcrypt.MinCost)
	require.NoError(t, err)

	p, err = NewPassword(string(hash), "ignorada")
	require.NoError(t, err)
	assert.True(t, p.Matches("s3nha"))
	assert.False(t, p.Matches("ignorada"))

	_, err = NewPassword("not-a-hash", "")
	assert.Error(t, err)

	_, err = NewPassword("", "")
	assert.Error(t, err)
}

func TestNewRedisClientInvalidURL(t *testing.T) {
	_, err := NewRedisClient(context.Background(), "http://not-redis")
	assert.Error(t, err)
}
