package entity

import (
	"strings"
	"time"
)

// Formas de pago de un destino.
const (
	MethodPIX         = "PIX"
	MethodBankAccount = "CONTA"
)

// PaymentDestination son los datos de pago de un proveedor o servicio.
// Una forma PIX solo guarda la llave; una forma CONTA solo guarda los datos bancarios.
type PaymentDestination struct {
	ID          string
	CompanyID   string
	Name        string
	ServiceType string
	Method      string // PIX | CONTA
	PixKey      string
	Bank        string
	Branch      string
	Account     string
	AccountType string
	Active      bool
	CreatedAt   time.Time
}

// Normalize aplica la exclusividad PIX/CONTA. Una forma desconocida pasa a PIX.
func (p *PaymentDestination) Normalize() {
	p.Name = strings.TrimSpace(p.Name)
	p.ServiceType = strings.TrimSpace(p.ServiceType)
	p.Method = strings.ToUpper(strings.TrimSpace(p.Method))
	if p.Method != MethodBankAccount {
		p.Method = MethodPIX
	}

	if p.Method == MethodPIX {
		p.PixKey = strings.TrimSpace(p.PixKey)
		p.Bank, p.Branch, p.Account, p.AccountType = "", "", "", ""
		return
	}
	p.PixKey = ""
	p.Bank = strings.TrimSpace(p.Bank)
	p.Branch = strings.TrimSpace(p.Branch)
	p.Account = strings.TrimSpace(p.Account)
	p.AccountType = strings.TrimSpace(p.AccountType)
}

// HasPix indica si hay llave PIX guardada.
func (p *PaymentDestination) HasPix() bool { return p.PixKey != "" }

// HasBankData indica si hay algún dato bancario guardado.
func (p *PaymentDestination) HasBankData() bool {
	return p.Bank != "" || p.Branch != "" || p.Account != "" || p.AccountType != ""
}
