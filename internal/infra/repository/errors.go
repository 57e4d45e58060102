package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/pet-control/internal/domain"
)

// notFound troca o erro do GORM pelo erro de domínio.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}
