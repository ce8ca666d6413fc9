package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/dualsaude-api/internal/domain"
	"github.com/jhoicas/dualsaude-api/internal/domain/entity"
	"github.com/jhoicas/dualsaude-api/internal/domain/repository"
)

var _ repository.FinanceCategoryRepository = (*FinanceCategoryRepo)(nil)

// FinanceCategoryRepo adaptador sobre financeiro_categorias.
type FinanceCategoryRepo struct {
	q Querier
}

func NewFinanceCategoryRepository(q Querier) *FinanceCategoryRepo {
	return &FinanceCategoryRepo{q: q}
}

const categoryColumns = `id, empresa_id, nome, tipo, ativo, criado_em`

func (r *FinanceCategoryRepo) Create(ctx context.Context, c *entity.FinanceCategory) error {
	query := `
		INSERT INTO financeiro_categorias (id, empresa_id, nome, tipo, ativo, criado_em)
		VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := r.q.Exec(ctx, query, c.ID, c.CompanyID, c.Name, c.Kind, c.Active, c.CreatedAt); err != nil {
		return fmt.Errorf("insert categoria: %w", err)
	}
	return nil
}

func (r *FinanceCategoryRepo) GetByID(ctx context.Context, companyID, id string) (*entity.FinanceCategory, error) {
	query := `SELECT ` + categoryColumns + ` FROM financeiro_categorias WHERE empresa_id = $1 AND id = $2`
	return r.getOne(ctx, query, companyID, id)
}

func (r *FinanceCategoryRepo) GetByName(ctx context.Context, companyID, kind, name string) (*entity.FinanceCategory, error) {
	query := `
		SELECT ` + categoryColumns + ` FROM financeiro_categorias
		WHERE empresa_id = $1 AND tipo = $2 AND lower(nome) = lower($3)
		LIMIT 1`
	return r.getOne(ctx, query, companyID, kind, name)
}

func (r *FinanceCategoryRepo) getOne(ctx context.Context, query string, args ...any) (*entity.FinanceCategory, error) {
	var c entity.FinanceCategory
	err := r.q.QueryRow(ctx, query, args...).Scan(&c.ID, &c.CompanyID, &c.Name, &c.Kind, &c.Active, &c.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get categoria: %w", err)
	}
	return &c, nil
}

func (r *FinanceCategoryRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.FinanceCategory, error) {
	query := `SELECT ` + categoryColumns + ` FROM financeiro_categorias WHERE empresa_id = $1 ORDER BY tipo, nome`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list categorias: %w", err)
	}
	defer rows.Close()

	var list []*entity.FinanceCategory
	for rows.Next() {
		var c entity.FinanceCategory
		if err := rows.Scan(&c.ID, &c.CompanyID, &c.Name, &c.Kind, &c.Active, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan categoria: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete borra la categoría; los lanzamientos quedan con categoria_id NULL (ON DELETE SET NULL).
func (r *FinanceCategoryRepo) Delete(ctx context.Context, companyID, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM financeiro_categorias WHERE empresa_id = $1 AND id = $2`, companyID, id)
	if err != nil {
		return fmt.Errorf("delete categoria: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
