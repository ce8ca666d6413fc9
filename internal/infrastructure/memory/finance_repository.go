package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/dualsaude-api/internal/domain"
	"github.com/jhoicas/dualsaude-api/internal/domain/entity"
	"github.com/jhoicas/dualsaude-api/internal/domain/repository"
)

var (
	_ repository.FinanceCategoryRepository    = (*FinanceCategoryRepo)(nil)
	_ repository.FinanceEntryRepository       = (*FinanceEntryRepo)(nil)
	_ repository.PaymentDestinationRepository = (*PaymentDestinationRepo)(nil)
	_ repository.FinanceReportRepository      = (*FinanceReportRepo)(nil)
)

// ─── Categorías ───────────────────────────────────────────────────────────────

// FinanceCategoryRepo categorías financieras en memoria.
type FinanceCategoryRepo struct {
	s *Store
}

func NewFinanceCategoryRepository(s *Store) *FinanceCategoryRepo {
	return &FinanceCategoryRepo{s: s}
}

func (r *FinanceCategoryRepo) Create(_ context.Context, c *entity.FinanceCategory) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.companies[c.CompanyID]; !ok {
		return domain.ErrCompanyNotFound
	}
	cp := *c
	r.s.categories[c.ID] = &cp
	return nil
}

func (r *FinanceCategoryRepo) GetByID(_ context.Context, companyID, id string) (*entity.FinanceCategory, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.categories[id]
	if !ok || c.CompanyID != companyID {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *FinanceCategoryRepo) GetByName(_ context.Context, companyID, kind, name string) (*entity.FinanceCategory, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, c := range r.s.categories {
		if c.CompanyID == companyID && c.Kind == kind && strings.EqualFold(c.Name, name) {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

// ListByCompany ordena por tipo y nombre.
func (r *FinanceCategoryRepo) ListByCompany(_ context.Context, companyID string) ([]*entity.FinanceCategory, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []*entity.FinanceCategory
	for _, c := range r.s.categories {
		if c.CompanyID == companyID {
			cp := *c
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Kind != list[j].Kind {
			return list[i].Kind < list[j].Kind
		}
		return list[i].Name < list[j].Name
	})
	return list, nil
}

// Delete borra la categoría y deja sin categoría sus lanzamientos (ON DELETE SET NULL).
func (r *FinanceCategoryRepo) Delete(_ context.Context, companyID, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.categories[id]
	if !ok || c.CompanyID != companyID {
		return domain.ErrNotFound
	}
	delete(r.s.categories, id)
	for _, e := range r.s.entries {
		if e.CategoryID != nil && *e.CategoryID == id {
			e.CategoryID = nil
		}
	}
	return nil
}

// ─── Lanzamientos ─────────────────────────────────────────────────────────────

// FinanceEntryRepo lanzamientos en memoria.
type FinanceEntryRepo struct {
	s *Store
}

func NewFinanceEntryRepository(s *Store) *FinanceEntryRepo {
	return &FinanceEntryRepo{s: s}
}

func (r *FinanceEntryRepo) Create(_ context.Context, e *entity.FinanceEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.companies[e.CompanyID]; !ok {
		return domain.ErrCompanyNotFound
	}
	r.s.entries[e.ID] = cloneEntry(e)
	return nil
}

func (r *FinanceEntryRepo) GetByID(_ context.Context, companyID, id string) (*entity.FinanceEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	e, ok := r.s.entries[id]
	if !ok || e.CompanyID != companyID {
		return nil, nil
	}
	return r.withCategoryLocked(e), nil
}

func (r *FinanceEntryRepo) withCategoryLocked(e *entity.FinanceEntry) *entity.FinanceEntry {
	cp := cloneEntry(e)
	cp.CategoryName = ""
	if cp.CategoryID != nil {
		if c, ok := r.s.categories[*cp.CategoryID]; ok {
			cp.CategoryName = c.Name
		}
	}
	return cp
}

func (r *FinanceEntryRepo) List(_ context.Context, f repository.EntryFilter) ([]*entity.FinanceEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []*entity.FinanceEntry
	for _, e := range r.s.entries {
		if !matches(e, f) {
			continue
		}
		list = append(list, r.withCategoryLocked(e))
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].AccrualDate.Equal(list[j].AccrualDate) {
			return list[i].AccrualDate.After(list[j].AccrualDate)
		}
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	if f.Limit > 0 && len(list) > f.Limit {
		list = list[:f.Limit]
	}
	return list, nil
}

func matches(e *entity.FinanceEntry, f repository.EntryFilter) bool {
	if e.CompanyID != f.CompanyID {
		return false
	}
	if !inRange(e.AccrualDate, f.Start, f.End) {
		return false
	}
	if f.Status != "" && e.Status != f.Status {
		return false
	}
	if f.Kind != "" && e.Kind != f.Kind {
		return false
	}
	if f.CategoryID != "" && (e.CategoryID == nil || *e.CategoryID != f.CategoryID) {
		return false
	}
	return true
}

// inRange compara fechas civiles; un extremo cero no acota.
func inRange(d, start, end time.Time) bool {
	d = entity.DateOnly(d)
	if !start.IsZero() && d.Before(entity.DateOnly(start)) {
		return false
	}
	if !end.IsZero() && d.After(entity.DateOnly(end)) {
		return false
	}
	return true
}

func (r *FinanceEntryRepo) Update(_ context.Context, e *entity.FinanceEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.entries[e.ID]
	if !ok || cur.CompanyID != e.CompanyID {
		return domain.ErrNotFound
	}
	r.s.entries[e.ID] = cloneEntry(e)
	return nil
}

func (r *FinanceEntryRepo) Delete(_ context.Context, companyID, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.entries[id]
	if !ok || e.CompanyID != companyID {
		return domain.ErrNotFound
	}
	delete(r.s.entries, id)
	return nil
}

// ─── Dados de pagamento ───────────────────────────────────────────────────────

// PaymentDestinationRepo destinos de pago en memoria.
type PaymentDestinationRepo struct {
	s *Store
}

func NewPaymentDestinationRepository(s *Store) *PaymentDestinationRepo {
	return &PaymentDestinationRepo{s: s}
}

func (r *PaymentDestinationRepo) Create(_ context.Context, d *entity.PaymentDestination) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.companies[d.CompanyID]; !ok {
		return domain.ErrCompanyNotFound
	}
	cp := *d
	r.s.destinations[d.ID] = &cp
	return nil
}

// ListByCompany ordena por nombre.
func (r *PaymentDestinationRepo) ListByCompany(_ context.Context, companyID string) ([]*entity.PaymentDestination, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []*entity.PaymentDestination
	for _, d := range r.s.destinations {
		if d.CompanyID == companyID {
			cp := *d
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (r *PaymentDestinationRepo) Delete(_ context.Context, companyID, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	d, ok := r.s.destinations[id]
	if !ok || d.CompanyID != companyID {
		return domain.ErrNotFound
	}
	delete(r.s.destinations, id)
	return nil
}

// ─── Reportes ─────────────────────────────────────────────────────────────────

// FinanceReportRepo totales calculados recorriendo los lanzamientos.
type FinanceReportRepo struct {
	s *Store
}

func NewFinanceReportRepository(s *Store) *FinanceReportRepo {
	return &FinanceReportRepo{s: s}
}

func (r *FinanceReportRepo) AccrualTotals(_ context.Context, companyID string, start, end time.Time) (repository.PeriodTotals, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	t := zeroTotals()
	for _, e := range r.s.entries {
		if e.CompanyID != companyID || !inRange(e.AccrualDate, start, end) {
			continue
		}
		addTo(&t, e)
		if e.Status == entity.StatusPending {
			t.Pending = t.Pending.Add(e.Amount)
		}
	}
	return t, nil
}

func (r *FinanceReportRepo) CashTotals(_ context.Context, companyID string, start, end time.Time) (repository.PeriodTotals, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	t := zeroTotals()
	for _, e := range r.s.entries {
		if e.CompanyID != companyID || e.Status != entity.StatusPaid || e.PaymentDate == nil {
			continue
		}
		if !inRange(*e.PaymentDate, start, end) {
			continue
		}
		addTo(&t, e)
	}
	return t, nil
}

func zeroTotals() repository.PeriodTotals {
	return repository.PeriodTotals{Revenue: decimal.Zero, Expense: decimal.Zero, Pending: decimal.Zero}
}

func addTo(t *repository.PeriodTotals, e *entity.FinanceEntry) {
	switch e.Kind {
	case entity.KindRevenue:
		t.Revenue = t.Revenue.Add(e.Amount)
	case entity.KindExpense:
		t.Expense = t.Expense.Add(e.Amount)
	}
}
