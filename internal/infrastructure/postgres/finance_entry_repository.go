package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/dualsaude-api/internal/domain"
	"github.com/jhoicas/dualsaude-api/internal/domain/entity"
	"github.com/jhoicas/dualsaude-api/internal/domain/repository"
)

var _ repository.FinanceEntryRepository = (*FinanceEntryRepo)(nil)

// FinanceEntryRepo adaptador sobre financeiro_lancamentos.
type FinanceEntryRepo struct {
	q Querier
}

func NewFinanceEntryRepository(q Querier) *FinanceEntryRepo {
	return &FinanceEntryRepo{q: q}
}

const entrySelect = `
	SELECT l.id, l.empresa_id, l.tipo, l.categoria_id, COALESCE(c.nome, ''), l.descricao,
	       COALESCE(l.observacao, ''), l.valor, l.data_lancamento, l.data_vencimento, l.data_pagamento,
	       l.status, COALESCE(l.forma_pagamento, ''), l.criado_em
	FROM financeiro_lancamentos l
	LEFT JOIN financeiro_categorias c ON c.id = l.categoria_id`

func scanEntry(row pgx.Row) (*entity.FinanceEntry, error) {
	var e entity.FinanceEntry
	err := row.Scan(
		&e.ID, &e.CompanyID, &e.Kind, &e.CategoryID, &e.CategoryName, &e.Description,
		&e.Notes, &e.Amount, &e.AccrualDate, &e.DueDate, &e.PaymentDate,
		&e.Status, &e.PaymentMethod, &e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *FinanceEntryRepo) Create(ctx context.Context, e *entity.FinanceEntry) error {
	query := `
		INSERT INTO financeiro_lancamentos (
			id, empresa_id, tipo, categoria_id, descricao, observacao, valor,
			data_lancamento, data_vencimento, data_pagamento, status, forma_pagamento, criado_em
		) VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8, $9, $10, $11, NULLIF($12, ''), $13)`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.CompanyID, e.Kind, e.CategoryID, e.Description, e.Notes, e.Amount,
		e.AccrualDate, e.DueDate, e.PaymentDate, e.Status, e.PaymentMethod, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert lancamento: %w", err)
	}
	return nil
}

func (r *FinanceEntryRepo) GetByID(ctx context.Context, companyID, id string) (*entity.FinanceEntry, error) {
	e, err := scanEntry(r.q.QueryRow(ctx, entrySelect+` WHERE l.empresa_id = $1 AND l.id = $2`, companyID, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lancamento: %w", err)
	}
	return e, nil
}

// buildEntryListQuery arma el SELECT con los filtros presentes, todos combinados con AND.
func buildEntryListQuery(f repository.EntryFilter) (string, []any) {
	conds := []string{"l.empresa_id = $1"}
	args := []any{f.CompanyID}
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if !f.Start.IsZero() {
		add("l.data_lancamento >= $%d", f.Start)
	}
	if !f.End.IsZero() {
		add("l.data_lancamento <= $%d", f.End)
	}
	if f.Status != "" {
		add("l.status = $%d", f.Status)
	}
	if f.Kind != "" {
		add("l.tipo = $%d", f.Kind)
	}
	if f.CategoryID != "" {
		add("l.categoria_id = $%d", f.CategoryID)
	}

	query := entrySelect + "\n\tWHERE " + strings.Join(conds, " AND ") +
		"\n\tORDER BY l.data_lancamento DESC, l.criado_em DESC"
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	return query, args
}

func (r *FinanceEntryRepo) List(ctx context.Context, f repository.EntryFilter) ([]*entity.FinanceEntry, error) {
	query, args := buildEntryListQuery(f)
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list lancamentos: %w", err)
	}
	defer rows.Close()

	var list []*entity.FinanceEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lancamento: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// Update persiste los campos mutables (estado y fecha de pago incluidos), acotado por empresa.
func (r *FinanceEntryRepo) Update(ctx context.Context, e *entity.FinanceEntry) error {
	query := `
		UPDATE financeiro_lancamentos SET
			tipo = $3, categoria_id = $4, descricao = $5, observacao = NULLIF($6, ''), valor = $7,
			data_lancamento = $8, data_vencimento = $9, data_pagamento = $10, status = $11,
			forma_pagamento = NULLIF($12, '')
		WHERE empresa_id = $1 AND id = $2`
	tag, err := r.q.Exec(ctx, query,
		e.CompanyID, e.ID, e.Kind, e.CategoryID, e.Description, e.Notes, e.Amount,
		e.AccrualDate, e.DueDate, e.PaymentDate, e.Status, e.PaymentMethod,
	)
	if err != nil {
		return fmt.Errorf("update lancamento: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *FinanceEntryRepo) Delete(ctx context.Context, companyID, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM financeiro_lancamentos WHERE empresa_id = $1 AND id = $2`, companyID, id)
	if err != nil {
		return fmt.Errorf("delete lancamento: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
