// Package importer carga empresas y funcionarios autorizados desde una planilla del RH.
package importer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/dualsaude-api/internal/application/dto"
	"github.com/jhoicas/dualsaude-api/internal/domain"
	"github.com/jhoicas/dualsaude-api/internal/domain/entity"
	"github.com/jhoicas/dualsaude-api/internal/domain/repository"
	"github.com/jhoicas/dualsaude-api/pkg/logger"
	"github.com/jhoicas/dualsaude-api/pkg/normalize"
)

// Columnas reconocidas de la planilla.
const (
	ColCompanyName   = "empresa_nome"
	ColCompanyTaxID  = "empresa_cnpj"
	ColEmployeeName  = "funcionario_nome"
	ColEmployeeCPF   = "funcionario_cpf"
	ColEmployeeEmail = "funcionario_email"
	ColActive        = "ativo"
)

var requiredColumns = []string{ColCompanyName, ColEmployeeName, ColEmployeeCPF}

const cpfLen = 11

var inactiveValues = map[string]bool{
	"0": true, "false": true, "falso": true, "nao": true, "não": true, "n": true, "inativo": true,
}

// MissingColumnsError la cabecera no trae alguna columna obligatoria. Nada se importa.
type MissingColumnsError struct {
	Missing []string
}

func (e *MissingColumnsError) Error() string {
	return "Colunas obrigatórias ausentes: " + strings.Join(e.Missing, ", ")
}

func (e *MissingColumnsError) Unwrap() error { return domain.ErrInvalidInput }

// ImportUseCase importa la planilla con upsert de empresas y funcionarios.
type ImportUseCase struct {
	txRunner ImportTxRunner
	sheets   SheetReader
	log      *logger.Logger
	now      func() time.Time
}

// NewImportUseCase construye el caso de uso.
func NewImportUseCase(txRunner ImportTxRunner, sheets SheetReader, log *logger.Logger) *ImportUseCase {
	return &ImportUseCase{
		txRunner: txRunner,
		sheets:   sheets,
		log:      log.Component("importer"),
		now:      time.Now,
	}
}

// ImportXLSX lee la primera hoja del archivo y delega en Import.
func (uc *ImportUseCase) ImportXLSX(ctx context.Context, data []byte) (*dto.ImportResult, error) {
	rows, err := uc.sheets.ReadRows(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return uc.Import(ctx, rows)
}

// Import procesa las filas (la primera es la cabecera). Las filas inválidas se descartan
// con un error "Linha N" y el resto sigue; todo se confirma en una transacción.
func (uc *ImportUseCase) Import(ctx context.Context, rows [][]string) (*dto.ImportResult, error) {
	if len(rows) == 0 {
		return nil, &MissingColumnsError{Missing: requiredColumns}
	}
	idx := headerIndex(rows[0])
	var missing []string
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Missing: missing}
	}

	res := &dto.ImportResult{Errors: []string{}}
	err := uc.txRunner.RunImport(ctx, func(companies repository.CompanyRepository, employees repository.AuthorizedEmployeeRepository) error {
		seen := map[string]bool{}
		for i, raw := range rows[1:] {
			line := i + 2
			r := parseRow(raw, idx)
			if r.blank() {
				continue
			}
			if r.companyName == "" || r.employeeName == "" || r.cpf == "" {
				res.Errors = append(res.Errors, fmt.Sprintf("Linha %d: %s, %s e %s são obrigatórios.", line, ColCompanyName, ColEmployeeName, ColEmployeeCPF))
				continue
			}
			company, err := uc.upsertCompany(ctx, companies, r, res, seen)
			if err != nil {
				return fmt.Errorf("linha %d: %w", line, err)
			}
			if err := uc.upsertEmployee(ctx, employees, company.ID, r, res); err != nil {
				return fmt.Errorf("linha %d: %w", line, err)
			}
		}
		return nil
	})
	if err != nil {
		uc.log.Error().Err(err).Msg("importación revertida")
		return nil, err
	}
	uc.log.Info().
		Int("empresas_criadas", res.CompaniesCreated).
		Int("empresas_atualizadas", res.CompaniesUpdated).
		Int("funcionarios_criados", res.EmployeesCreated).
		Int("funcionarios_atualizados", res.EmployeesUpdated).
		Int("erros", len(res.Errors)).
		Msg("importación aplicada")
	return res, nil
}

// seen evita contar dos veces la misma empresa actualizada en el archivo; una empresa
// creada en una fila y modificada en otra cuenta como creada y actualizada.
func (uc *ImportUseCase) upsertCompany(ctx context.Context, repo repository.CompanyRepository, r row, res *dto.ImportResult, seen map[string]bool) (*entity.Company, error) {
	now := uc.now()
	c, err := repo.GetByName(ctx, r.companyName)
	if err != nil {
		return nil, err
	}
	key := normalize.Key(r.companyName)
	if c == nil {
		c = &entity.Company{
			ID:        uuid.New().String(),
			Name:      r.companyName,
			TaxID:     r.taxID,
			Active:    true,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := repo.Create(ctx, c); err != nil {
			return nil, err
		}
		res.CompaniesCreated++
		return c, nil
	}

	changed := false
	if r.taxID != "" && r.taxID != c.TaxID {
		c.TaxID = r.taxID
		changed = true
	}
	if !c.Active {
		c.Active = true
		changed = true
	}
	if !changed {
		return c, nil
	}
	c.UpdatedAt = now
	if err := repo.Update(ctx, c); err != nil {
		return nil, err
	}
	if !seen[key] {
		res.CompaniesUpdated++
		seen[key] = true
	}
	return c, nil
}

func (uc *ImportUseCase) upsertEmployee(ctx context.Context, repo repository.AuthorizedEmployeeRepository, companyID string, r row, res *dto.ImportResult) error {
	now := uc.now()
	e, err := repo.GetByCompanyAndNationalID(ctx, companyID, r.cpf)
	if err != nil {
		return err
	}
	if e == nil {
		e = &entity.AuthorizedEmployee{
			ID:         uuid.New().String(),
			CompanyID:  companyID,
			Name:       r.employeeName,
			NationalID: r.cpf,
			Email:      r.email,
			Active:     r.active,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := repo.Create(ctx, e); err != nil {
			return err
		}
		res.EmployeesCreated++
		return nil
	}

	changed := false
	if r.employeeName != e.Name {
		e.Name = r.employeeName
		changed = true
	}
	if r.email != "" && r.email != e.Email {
		e.Email = r.email
		changed = true
	}
	if r.active != e.Active {
		e.Active = r.active
		changed = true
	}
	if !changed {
		return nil
	}
	e.UpdatedAt = now
	if err := repo.Update(ctx, e); err != nil {
		return err
	}
	res.EmployeesUpdated++
	return nil
}

type row struct {
	companyName  string
	taxID        string
	employeeName string
	cpf          string
	email        string
	active       bool
}

func (r row) blank() bool {
	return r.companyName == "" && r.taxID == "" && r.employeeName == "" && r.cpf == "" && r.email == ""
}

func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		h = normalize.Header(h)
		if _, dup := idx[h]; !dup && h != "" {
			idx[h] = i
		}
	}
	return idx
}

func parseRow(raw []string, idx map[string]int) row {
	cell := func(col string) string {
		i, ok := idx[col]
		if !ok || i >= len(raw) {
			return ""
		}
		return strings.TrimSpace(raw[i])
	}
	r := row{
		companyName:  normalize.Name(cell(ColCompanyName)),
		taxID:        cell(ColCompanyTaxID),
		employeeName: normalize.Name(cell(ColEmployeeName)),
		cpf:          cpfCell(cell(ColEmployeeCPF)),
		email:        normalize.Email(cell(ColEmployeeEmail)),
		active:       true,
	}
	if v := strings.ToLower(cell(ColActive)); v != "" && inactiveValues[v] {
		r.active = false
	}
	return r
}

// cpfCell normaliza el CPF de una celda. Una celda numérica pierde los ceros a la
// izquierda, así que un valor solo de dígitos y más corto que un CPF se rellena.
func cpfCell(v string) string {
	d := normalize.Digits(v)
	if d != "" && d == v && len(d) < cpfLen {
		return strings.Repeat("0", cpfLen-len(d)) + d
	}
	return d
}
