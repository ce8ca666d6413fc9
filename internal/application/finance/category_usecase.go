// Package finance casos de uso del libro financiero por empresa: categorías, lanzamientos,
// datos de pago y reportes de competencia y caja.
package finance

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/dualsaude-api/internal/application/dto"
	"github.com/jhoicas/dualsaude-api/internal/application/validation"
	"github.com/jhoicas/dualsaude-api/internal/domain"
	"github.com/jhoicas/dualsaude-api/internal/domain/entity"
	"github.com/jhoicas/dualsaude-api/internal/domain/repository"
	"github.com/jhoicas/dualsaude-api/pkg/normalize"
)

// CategoryUseCase categorías de lanzamientos.
type CategoryUseCase struct {
	repo repository.FinanceCategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.FinanceCategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// List devuelve las categorías de la empresa ordenadas por tipo y nombre.
func (uc *CategoryUseCase) List(ctx context.Context, companyID string) ([]dto.CategoryResponse, error) {
	list, err := uc.repo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCategoryResponse(c))
	}
	return out, nil
}

// Create crea la categoría. Si ya existe una con el mismo nombre y tipo devuelve esa, sin error.
func (uc *CategoryUseCase) Create(ctx context.Context, companyID string, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	in.Name = normalize.Name(in.Name)
	in.Kind = strings.ToUpper(strings.TrimSpace(in.Kind))
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	if !entity.ValidKind(in.Kind) {
		return nil, domain.ErrInvalidInput
	}

	existing, err := uc.repo.GetByName(ctx, companyID, in.Kind, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		out := toCategoryResponse(existing)
		return &out, nil
	}

	cat := &entity.FinanceCategory{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      in.Name,
		Kind:      in.Kind,
		Active:    true,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(ctx, cat); err != nil {
		return nil, err
	}
	out := toCategoryResponse(cat)
	return &out, nil
}

// Delete borra la categoría; sus lanzamientos quedan sin categoría.
func (uc *CategoryUseCase) Delete(ctx context.Context, companyID, id string) error {
	if !entity.ValidID(id) {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, companyID, id)
}
