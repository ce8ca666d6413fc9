package repository

import (
	"context"

	"github.com/jhoicas/dualsaude-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	// Create devuelve domain.ErrDuplicateEmail o domain.ErrDuplicateNationalID ante violaciones de unicidad.
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByNationalID(ctx context.Context, nationalID string) (*entity.User, error)
}
