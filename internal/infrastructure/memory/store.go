// Package memory implementa los puertos de persistencia en memoria.
// Se usa con STORAGE_DRIVER=memory (demos locales) y como doble de repositorios en los tests.
package memory

import (
	"sync"

	"github.com/jhoicas/dualsaude-api/internal/domain/entity"
)

// Store guarda todas las tablas detrás de un único RWMutex.
type Store struct {
	mu   sync.RWMutex
	txMu sync.Mutex // serializa las transacciones

	companies    map[string]*entity.Company
	employees    map[string]*entity.AuthorizedEmployee
	users        map[string]*entity.User
	categories   map[string]*entity.FinanceCategory
	entries      map[string]*entity.FinanceEntry
	destinations map[string]*entity.PaymentDestination
}

// NewStore crea un almacenamiento vacío.
func NewStore() *Store {
	return &Store{
		companies:    map[string]*entity.Company{},
		employees:    map[string]*entity.AuthorizedEmployee{},
		users:        map[string]*entity.User{},
		categories:   map[string]*entity.FinanceCategory{},
		entries:      map[string]*entity.FinanceEntry{},
		destinations: map[string]*entity.PaymentDestination{},
	}
}

// snapshot copia todas las tablas; el llamador debe tener s.mu.
func (s *Store) snapshot() *Store {
	cp := NewStore()
	for k, v := range s.companies {
		cp.companies[k] = cloneCompany(v)
	}
	for k, v := range s.employees {
		cp.employees[k] = cloneEmployee(v)
	}
	for k, v := range s.users {
		cp.users[k] = cloneUser(v)
	}
	for k, v := range s.categories {
		c := *v
		cp.categories[k] = &c
	}
	for k, v := range s.entries {
		cp.entries[k] = cloneEntry(v)
	}
	for k, v := range s.destinations {
		d := *v
		cp.destinations[k] = &d
	}
	return cp
}

func (s *Store) restore(snap *Store) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.companies = snap.companies
	s.employees = snap.employees
	s.users = snap.users
	s.categories = snap.categories
	s.entries = snap.entries
	s.destinations = snap.destinations
}

func cloneCompany(c *entity.Company) *entity.Company {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}

func cloneEmployee(e *entity.AuthorizedEmployee) *entity.AuthorizedEmployee {
	if e == nil {
		return nil
	}
	cp := *e
	if e.UserID != nil {
		id := *e.UserID
		cp.UserID = &id
	}
	return &cp
}

func cloneUser(u *entity.User) *entity.User {
	if u == nil {
		return nil
	}
	cp := *u
	return &cp
}

func cloneEntry(e *entity.FinanceEntry) *entity.FinanceEntry {
	if e == nil {
		return nil
	}
	cp := *e
	if e.CategoryID != nil {
		id := *e.CategoryID
		cp.CategoryID = &id
	}
	if e.DueDate != nil {
		d := *e.DueDate
		cp.DueDate = &d
	}
	if e.PaymentDate != nil {
		d := *e.PaymentDate
		cp.PaymentDate = &d
	}
	return &cp
}
