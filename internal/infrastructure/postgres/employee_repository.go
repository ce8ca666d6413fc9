package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/dualsaude-api/internal/domain"
	"github.com/jhoicas/dualsaude-api/internal/domain/entity"
	"github.com/jhoicas/dualsaude-api/internal/domain/repository"
)

var _ repository.AuthorizedEmployeeRepository = (*AuthorizedEmployeeRepo)(nil)

// AuthorizedEmployeeRepo adaptador sobre la tabla funcionarios_autorizados.
type AuthorizedEmployeeRepo struct {
	q Querier
}

// NewAuthorizedEmployeeRepository construye el adaptador. Acepta pool o tx (Querier).
func NewAuthorizedEmployeeRepository(q Querier) *AuthorizedEmployeeRepo {
	return &AuthorizedEmployeeRepo{q: q}
}

const employeeColumns = `id, empresa_id, nome, cpf, COALESCE(email, ''), ativo, usuario_id, criado_em, atualizado_em`

func scanEmployee(row pgx.Row) (*entity.AuthorizedEmployee, error) {
	var e entity.AuthorizedEmployee
	err := row.Scan(&e.ID, &e.CompanyID, &e.Name, &e.NationalID, &e.Email, &e.Active, &e.UserID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *AuthorizedEmployeeRepo) Create(ctx context.Context, e *entity.AuthorizedEmployee) error {
	query := `
		INSERT INTO funcionarios_autorizados (id, empresa_id, nome, cpf, email, ativo, usuario_id, criado_em, atualizado_em)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query, e.ID, e.CompanyID, e.Name, e.NationalID, e.Email, e.Active, e.UserID, e.CreatedAt, e.UpdatedAt)
	if err != nil {
		if _, ok := isUniqueViolation(err); ok {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert funcionario: %w", err)
	}
	return nil
}

func (r *AuthorizedEmployeeRepo) GetByCompanyAndNationalID(ctx context.Context, companyID, nationalID string) (*entity.AuthorizedEmployee, error) {
	query := `SELECT ` + employeeColumns + ` FROM funcionarios_autorizados WHERE empresa_id = $1 AND cpf = $2`
	return r.getOne(ctx, query, companyID, nationalID)
}

func (r *AuthorizedEmployeeRepo) GetActiveByCompanyAndNationalID(ctx context.Context, companyID, nationalID string) (*entity.AuthorizedEmployee, error) {
	query := `SELECT ` + employeeColumns + ` FROM funcionarios_autorizados WHERE empresa_id = $1 AND cpf = $2 AND ativo`
	return r.getOne(ctx, query, companyID, nationalID)
}

func (r *AuthorizedEmployeeRepo) getOne(ctx context.Context, query string, args ...any) (*entity.AuthorizedEmployee, error) {
	e, err := scanEmployee(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get funcionario: %w", err)
	}
	return e, nil
}

// Update actualiza nombre, email y estado. El vínculo con el usuario solo cambia vía LinkUser.
func (r *AuthorizedEmployeeRepo) Update(ctx context.Context, e *entity.AuthorizedEmployee) error {
	query := `
		UPDATE funcionarios_autorizados
		SET nome = $2, email = NULLIF($3, ''), ativo = $4, atualizado_em = $5
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, e.ID, e.Name, e.Email, e.Active, e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update funcionario: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// LinkUser vincula solo si usuario_id sigue en NULL; dos registros concurrentes no pueden reclamar el mismo CPF.
func (r *AuthorizedEmployeeRepo) LinkUser(ctx context.Context, employeeID, userID string) error {
	query := `
		UPDATE funcionarios_autorizados SET usuario_id = $2, atualizado_em = NOW()
		WHERE id = $1 AND usuario_id IS NULL`
	tag, err := r.q.Exec(ctx, query, employeeID, userID)
	if err != nil {
		if name, ok := isUniqueViolation(err); ok && name == constraintEmployeeUser {
			return domain.ErrAlreadyClaimed
		}
		return fmt.Errorf("link funcionario: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAlreadyClaimed
	}
	return nil
}

func (r *AuthorizedEmployeeRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.AuthorizedEmployee, error) {
	query := `SELECT ` + employeeColumns + ` FROM funcionarios_autorizados WHERE empresa_id = $1 ORDER BY nome`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list funcionarios: %w", err)
	}
	defer rows.Close()

	var list []*entity.AuthorizedEmployee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan funcionario: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}
