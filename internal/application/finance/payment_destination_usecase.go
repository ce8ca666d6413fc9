package finance

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/dualsaude-api/internal/application/dto"
	"github.com/jhoicas/dualsaude-api/internal/application/validation"
	"github.com/jhoicas/dualsaude-api/internal/domain"
	"github.com/jhoicas/dualsaude-api/internal/domain/entity"
	"github.com/jhoicas/dualsaude-api/internal/domain/repository"
)

// PaymentDestinationUseCase datos de pago (PIX o cuenta bancaria) de proveedores.
type PaymentDestinationUseCase struct {
	repo repository.PaymentDestinationRepository
}

// NewPaymentDestinationUseCase construye el caso de uso.
func NewPaymentDestinationUseCase(repo repository.PaymentDestinationRepository) *PaymentDestinationUseCase {
	return &PaymentDestinationUseCase{repo: repo}
}

func (uc *PaymentDestinationUseCase) List(ctx context.Context, companyID string) ([]dto.PaymentDestinationResponse, error) {
	list, err := uc.repo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PaymentDestinationResponse, 0, len(list))
	for _, d := range list {
		out = append(out, toDestinationResponse(d))
	}
	return out, nil
}

// Create guarda el destino; la forma decide qué campos se conservan.
func (uc *PaymentDestinationUseCase) Create(ctx context.Context, companyID string, in dto.CreatePaymentDestinationRequest) (*dto.PaymentDestinationResponse, error) {
	d := &entity.PaymentDestination{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		Name:        in.Name,
		ServiceType: in.ServiceType,
		Method:      in.Method,
		PixKey:      in.PixKey,
		Bank:        in.Bank,
		Branch:      in.Branch,
		Account:     in.Account,
		AccountType: in.AccountType,
		Active:      true,
		CreatedAt:   time.Now(),
	}
	d.Normalize()

	in.Name, in.ServiceType = d.Name, d.ServiceType
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	out := toDestinationResponse(d)
	return &out, nil
}

func (uc *PaymentDestinationUseCase) Delete(ctx context.Context, companyID, id string) error {
	if !entity.ValidID(id) {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, companyID, id)
}
