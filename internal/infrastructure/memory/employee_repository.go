package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/dualsaude-api/internal/domain"
	"github.com/jhoicas/dualsaude-api/internal/domain/entity"
	"github.com/jhoicas/dualsaude-api/internal/domain/repository"
)

var _ repository.AuthorizedEmployeeRepository = (*AuthorizedEmployeeRepo)(nil)

// AuthorizedEmployeeRepo funcionarios autorizados en memoria.
type AuthorizedEmployeeRepo struct {
	s *Store
}

// NewAuthorizedEmployeeRepository construye el repositorio sobre el store.
func NewAuthorizedEmployeeRepository(s *Store) *AuthorizedEmployeeRepo {
	return &AuthorizedEmployeeRepo{s: s}
}

func (r *AuthorizedEmployeeRepo) Create(_ context.Context, e *entity.AuthorizedEmployee) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.companies[e.CompanyID]; !ok {
		return domain.ErrCompanyNotFound
	}
	if _, ok := r.s.employees[e.ID]; ok {
		return domain.ErrDuplicate
	}
	if r.findLocked(e.CompanyID, e.NationalID) != nil {
		return domain.ErrDuplicate
	}
	r.s.employees[e.ID] = cloneEmployee(e)
	return nil
}

func (r *AuthorizedEmployeeRepo) GetByCompanyAndNationalID(_ context.Context, companyID, nationalID string) (*entity.AuthorizedEmployee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return cloneEmployee(r.findLocked(companyID, nationalID)), nil
}

func (r *AuthorizedEmployeeRepo) GetActiveByCompanyAndNationalID(_ context.Context, companyID, nationalID string) (*entity.AuthorizedEmployee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	e := r.findLocked(companyID, nationalID)
	if e == nil || !e.Active {
		return nil, nil
	}
	return cloneEmployee(e), nil
}

func (r *AuthorizedEmployeeRepo) findLocked(companyID, nationalID string) *entity.AuthorizedEmployee {
	for _, e := range r.s.employees {
		if e.CompanyID == companyID && e.NationalID == nationalID {
			return e
		}
	}
	return nil
}

func (r *AuthorizedEmployeeRepo) Update(_ context.Context, e *entity.AuthorizedEmployee) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.employees[e.ID]; !ok {
		return domain.ErrNotFound
	}
	if other := r.findLocked(e.CompanyID, e.NationalID); other != nil && other.ID != e.ID {
		return domain.ErrDuplicate
	}
	r.s.employees[e.ID] = cloneEmployee(e)
	return nil
}

// LinkUser equivale a UPDATE ... WHERE id = $1 AND usuario_id IS NULL.
func (r *AuthorizedEmployeeRepo) LinkUser(_ context.Context, employeeID, userID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.employees[employeeID]
	if !ok || e.Claimed() {
		return domain.ErrAlreadyClaimed
	}
	for _, other := range r.s.employees {
		if other.UserID != nil && *other.UserID == userID {
			return domain.ErrAlreadyClaimed
		}
	}
	id := userID
	e.UserID = &id
	return nil
}

func (r *AuthorizedEmployeeRepo) ListByCompany(_ context.Context, companyID string) ([]*entity.AuthorizedEmployee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []*entity.AuthorizedEmployee
	for _, e := range r.s.employees {
		if e.CompanyID == companyID {
			list = append(list, cloneEmployee(e))
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}
