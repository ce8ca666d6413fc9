package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/dualsaude-api/internal/domain"
	"github.com/jhoicas/dualsaude-api/internal/domain/entity"
	"github.com/jhoicas/dualsaude-api/internal/domain/repository"
	"github.com/jhoicas/dualsaude-api/pkg/normalize"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo empresas en memoria.
type CompanyRepo struct {
	s *Store
}

// NewCompanyRepository construye el repositorio sobre el store.
func NewCompanyRepository(s *Store) *CompanyRepo {
	return &CompanyRepo{s: s}
}

func (r *CompanyRepo) Create(_ context.Context, c *entity.Company) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.companies[c.ID]; ok {
		return domain.ErrDuplicate
	}
	if r.findByNameLocked(c.Name) != nil {
		return domain.ErrDuplicate
	}
	r.s.companies[c.ID] = cloneCompany(c)
	return nil
}

func (r *CompanyRepo) GetByID(_ context.Context, id string) (*entity.Company, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return cloneCompany(r.s.companies[id]), nil
}

func (r *CompanyRepo) GetByName(_ context.Context, name string) (*entity.Company, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return cloneCompany(r.findByNameLocked(name)), nil
}

func (r *CompanyRepo) findByNameLocked(name string) *entity.Company {
	key := normalize.Key(name)
	for _, c := range r.s.companies {
		if normalize.Key(c.Name) == key {
			return c
		}
	}
	return nil
}

func (r *CompanyRepo) Update(_ context.Context, c *entity.Company) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.companies[c.ID]; !ok {
		return domain.ErrNotFound
	}
	if other := r.findByNameLocked(c.Name); other != nil && other.ID != c.ID {
		return domain.ErrDuplicate
	}
	r.s.companies[c.ID] = cloneCompany(c)
	return nil
}

func (r *CompanyRepo) List(_ context.Context, limit, offset int) ([]*entity.Company, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*entity.Company, 0, len(r.s.companies))
	for _, c := range r.s.companies {
		list = append(list, cloneCompany(c))
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return paginate(list, limit, offset), nil
}

// Delete borra la empresa y en cascada funcionarios, usuarios y datos financieros.
func (r *CompanyRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.companies[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.companies, id)
	for k, v := range r.s.employees {
		if v.CompanyID == id {
			delete(r.s.employees, k)
		}
	}
	for k, v := range r.s.users {
		if v.CompanyID == id {
			delete(r.s.users, k)
		}
	}
	for k, v := range r.s.categories {
		if v.CompanyID == id {
			delete(r.s.categories, k)
		}
	}
	for k, v := range r.s.entries {
		if v.CompanyID == id {
			delete(r.s.entries, k)
		}
	}
	for k, v := range r.s.destinations {
		if v.CompanyID == id {
			delete(r.s.destinations, k)
		}
	}
	return nil
}

func paginate[T any](list []T, limit, offset int) []T {
	if offset >= len(list) {
		return []T{}
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}
