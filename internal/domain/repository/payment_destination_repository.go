package repository

import (
	"context"

	"github.com/jhoicas/dualsaude-api/internal/domain/entity"
)

// PaymentDestinationRepository datos de pago (PIX o cuenta) por empresa.
type PaymentDestinationRepository interface {
	Create(ctx context.Context, dest *entity.PaymentDestination) error
	ListByCompany(ctx context.Context, companyID string) ([]*entity.PaymentDestination, error)
	Delete(ctx context.Context, companyID, id string) error
}
