package dto

import "time"

// CompanyResponse salida de una empresa para la administración.
type CompanyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"nome"`
	TaxID     string    `json:"cnpj"`
	Active    bool      `json:"ativo"`
	CreatedAt time.Time `json:"criado_em"`
	UpdatedAt time.Time `json:"atualizado_em"`
}

// CompanyListResponse listado paginado de empresas.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// DemoSetupResponse salida de POST /api/setup-demo.
type DemoSetupResponse struct {
	Message      string           `json:"message"`
	Company      DemoCompany      `json:"empresa"`
	Employee     DemoEmployee     `json:"funcionario_autorizado"`
	Instructions DemoInstructions `json:"instrucoes_teste"`
}

// DemoCompany empresa creada por el setup de demostración.
type DemoCompany struct {
	ID   string `json:"id"`
	Name string `json:"nome"`
}

// DemoEmployee funcionario autorizado creado por el setup de demostración.
type DemoEmployee struct {
	ID         string `json:"id"`
	Name       string `json:"nome"`
	NationalID string `json:"cpf"`
	Email      string `json:"email"`
}

// DemoInstructions datos para probar el registro con la demo.
type DemoInstructions struct {
	CompanyName    string `json:"empresa_nome_para_cadastro"`
	NationalID     string `json:"cpf_para_cadastro"`
	SuggestedEmail string `json:"email_sugerido_para_usuario"`
}
