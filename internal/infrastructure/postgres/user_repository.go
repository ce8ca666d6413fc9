package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/dualsaude-api/internal/domain"
	"github.com/jhoicas/dualsaude-api/internal/domain/entity"
	"github.com/jhoicas/dualsaude-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre la tabla usuarios.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador. Acepta pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `id, empresa_id, nome, cpf, email, COALESCE(celular, ''), hashed_password, ativo, criado_em, atualizado_em`

// Create persiste un nuevo usuario. Traduce 23505 según el constraint violado.
func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	query := `
		INSERT INTO usuarios (id, empresa_id, nome, cpf, email, celular, hashed_password, ativo, criado_em, atualizado_em)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		u.ID, u.CompanyID, u.Name, u.NationalID, u.Email, u.Phone, u.PasswordHash, u.Active,
		u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		if derr := userUniqueError(err); derr != nil {
			return derr
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// userUniqueError traduce una violación 23505 de usuarios al error de dominio del constraint.
// Devuelve nil si err no es una violación de unicidad.
func userUniqueError(err error) error {
	name, ok := isUniqueViolation(err)
	if !ok {
		return nil
	}
	switch name {
	case constraintUserEmail:
		return domain.ErrDuplicateEmail
	case constraintUserCPF:
		return domain.ErrDuplicateNationalID
	default:
		return domain.ErrDuplicate
	}
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM usuarios WHERE id = $1`, id)
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM usuarios WHERE email = $1`, email)
}

func (r *UserRepo) GetByNationalID(ctx context.Context, nationalID string) (*entity.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM usuarios WHERE cpf = $1`, nationalID)
}

func (r *UserRepo) getOne(ctx context.Context, query string, arg any) (*entity.User, error) {
	var u entity.User
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.CompanyID, &u.Name, &u.NationalID, &u.Email, &u.Phone, &u.PasswordHash, &u.Active,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}
