package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout formato de fechas en formularios y JSON del módulo financiero.
const DateLayout = "2006-01-02"

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Name string `json:"nome" form:"nome" validate:"required,max=120"`
	Kind string `json:"tipo" form:"tipo" validate:"required"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID     string `json:"id"`
	Name   string `json:"nome"`
	Kind   string `json:"tipo"`
	Active bool   `json:"ativo"`
}

// CreateEntryRequest entrada para crear un lanzamiento. Las fechas van como YYYY-MM-DD.
type CreateEntryRequest struct {
	Kind          string          `json:"tipo" validate:"required"`
	CategoryID    string          `json:"categoria_id"`
	Description   string          `json:"descricao" validate:"required,max=255"`
	Notes         string          `json:"observacao" validate:"max=2000"`
	Amount        decimal.Decimal `json:"valor"`
	AccrualDate   string          `json:"data_lancamento" validate:"required"`
	DueDate       string          `json:"data_vencimento"`
	PaymentDate   string          `json:"data_pagamento"`
	Status        string          `json:"status"`
	PaymentMethod string          `json:"forma_pagamento" validate:"max=50"`
}

// EntryListQuery filtros de la lista de lanzamientos (todos opcionales).
type EntryListQuery struct {
	YM         string `query:"ym"`
	Status     string `query:"status"`
	Kind       string `query:"tipo"`
	CategoryID string `query:"categoria_id"`
}

// EntryResponse salida de un lanzamiento.
type EntryResponse struct {
	ID            string          `json:"id"`
	Kind          string          `json:"tipo"`
	CategoryID    *string         `json:"categoria_id"`
	CategoryName  string          `json:"categoria_nome,omitempty"`
	Description   string          `json:"descricao"`
	Notes         string          `json:"observacao,omitempty"`
	Amount        decimal.Decimal `json:"valor"`
	AccrualDate   time.Time       `json:"data_lancamento"`
	DueDate       *time.Time      `json:"data_vencimento"`
	PaymentDate   *time.Time      `json:"data_pagamento"`
	Status        string          `json:"status"`
	PaymentMethod string          `json:"forma_pagamento,omitempty"`
}

// EntryListResponse lista de lanzamientos de un período.
type EntryListResponse struct {
	Period string          `json:"periodo"`
	Items  []EntryResponse `json:"items"`
}

// TotalsDTO totales de un régimen (competencia o caja) con su saldo.
type TotalsDTO struct {
	Revenue decimal.Decimal `json:"receitas"`
	Expense decimal.Decimal `json:"despesas"`
	Pending decimal.Decimal `json:"pendente"`
	Net     decimal.Decimal `json:"saldo"`
}

// DashboardResponse resumen del mes más los últimos lanzamientos.
type DashboardResponse struct {
	Period string          `json:"periodo"`
	Label  string          `json:"periodo_label"`
	Totals TotalsDTO       `json:"totais"`
	Recent []EntryResponse `json:"ultimos_lancamentos"`
}

// ReportResponse DRE (competencia) y flujo de caja de un mes.
type ReportResponse struct {
	Period  string    `json:"periodo"`
	Label   string    `json:"periodo_label"`
	Accrual TotalsDTO `json:"competencia"`
	Cash    TotalsDTO `json:"caixa"`
}

// CreatePaymentDestinationRequest entrada para registrar datos de pago.
type CreatePaymentDestinationRequest struct {
	Name        string `json:"nome" form:"nome" validate:"required,max=150"`
	ServiceType string `json:"tipo_servico" form:"tipo_servico" validate:"required,max=100"`
	Method      string `json:"forma" form:"forma"`
	PixKey      string `json:"pix_chave" form:"pix_chave" validate:"max=150"`
	Bank        string `json:"banco" form:"banco" validate:"max=100"`
	Branch      string `json:"agencia" form:"agencia" validate:"max=20"`
	Account     string `json:"conta" form:"conta" validate:"max=30"`
	AccountType string `json:"tipo_conta" form:"tipo_conta" validate:"max=30"`
}

// PaymentDestinationResponse salida de un destino de pago.
type PaymentDestinationResponse struct {
	ID          string `json:"id"`
	Name        string `json:"nome"`
	ServiceType string `json:"tipo_servico"`
	Method      string `json:"forma"`
	PixKey      string `json:"pix_chave,omitempty"`
	Bank        string `json:"banco,omitempty"`
	Branch      string `json:"agencia,omitempty"`
	Account     string `json:"conta,omitempty"`
	AccountType string `json:"tipo_conta,omitempty"`
	Active      bool   `json:"ativo"`
}
