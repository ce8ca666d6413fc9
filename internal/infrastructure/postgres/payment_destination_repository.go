package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/dualsaude-api/internal/domain"
	"github.com/jhoicas/dualsaude-api/internal/domain/entity"
	"github.com/jhoicas/dualsaude-api/internal/domain/repository"
)

var _ repository.PaymentDestinationRepository = (*PaymentDestinationRepo)(nil)

// PaymentDestinationRepo adaptador sobre financeiro_dados_pagamento.
// Los campos vacíos se guardan como NULL para que el CHECK de exclusividad PIX/CONTA aplique.
type PaymentDestinationRepo struct {
	q Querier
}

func NewPaymentDestinationRepository(q Querier) *PaymentDestinationRepo {
	return &PaymentDestinationRepo{q: q}
}

func (r *PaymentDestinationRepo) Create(ctx context.Context, d *entity.PaymentDestination) error {
	query := `
		INSERT INTO financeiro_dados_pagamento (
			id, empresa_id, nome, tipo_servico, forma, pix_chave, banco, agencia, conta, tipo_conta, ativo, criado_em
		) VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), NULLIF($7, ''), NULLIF($8, ''), NULLIF($9, ''), NULLIF($10, ''), $11, $12)`
	_, err := r.q.Exec(ctx, query,
		d.ID, d.CompanyID, d.Name, d.ServiceType, d.Method,
		d.PixKey, d.Bank, d.Branch, d.Account, d.AccountType, d.Active, d.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert dados pagamento: %w", err)
	}
	return nil
}

func (r *PaymentDestinationRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.PaymentDestination, error) {
	query := `
		SELECT id, empresa_id, nome, tipo_servico, forma, COALESCE(pix_chave, ''), COALESCE(banco, ''),
		       COALESCE(agencia, ''), COALESCE(conta, ''), COALESCE(tipo_conta, ''), ativo, criado_em
		FROM financeiro_dados_pagamento
		WHERE empresa_id = $1
		ORDER BY nome`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list dados pagamento: %w", err)
	}
	defer rows.Close()

	var list []*entity.PaymentDestination
	for rows.Next() {
		var d entity.PaymentDestination
		if err := rows.Scan(
			&d.ID, &d.CompanyID, &d.Name, &d.ServiceType, &d.Method, &d.PixKey, &d.Bank,
			&d.Branch, &d.Account, &d.AccountType, &d.Active, &d.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan dados pagamento: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

func (r *PaymentDestinationRepo) Delete(ctx context.Context, companyID, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM financeiro_dados_pagamento WHERE empresa_id = $1 AND id = $2`, companyID, id)
	if err != nil {
		return fmt.Errorf("delete dados pagamento: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
