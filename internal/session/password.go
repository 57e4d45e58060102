package session

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Password confere a senha do administrador contra um hash bcrypt.
type Password struct {
	hash []byte
}

// NewPassword usa o hash informado ou, sem ele, gera o hash da
// senha em texto.
func NewPassword(hash, plain string) (*Password, error) {
	if hash != "" {
		if _, err := bcrypt.Cost([]byte(hash)); err != nil {
			return nil, fmt.Errorf("invalid admin password hash: %w", err)
		}
		return &Password{hash: []byte(hash)}, nil
	}

	if plain == "" {
		return nil, errors.New("admin password not configured")
	}

	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	return &Password{hash: h}, nil
}

func (p *Password) Matches(plain string) bool {
	return bcrypt.CompareHashAndPassword(p.hash, []byte(plain)) == nil
}
