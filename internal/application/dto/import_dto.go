package dto

// ImportResult resumen de una importación de planilla.
type ImportResult struct {
	CompaniesCreated int      `json:"empresas_criadas"`
	CompaniesUpdated int      `json:"empresas_atualizadas"`
	EmployeesCreated int      `json:"funcionarios_criados"`
	EmployeesUpdated int      `json:"funcionarios_atualizados"`
	Errors           []string `json:"erros"`
}

// HasErrors indica si alguna fila fue descartada.
func (r *ImportResult) HasErrors() bool { return len(r.Errors) > 0 }
