package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los mensajes se muestran al usuario final.
var (
	ErrNotFound     = errors.New("recurso não encontrado")
	ErrInvalidInput = errors.New("dados inválidos")
	ErrDuplicate    = errors.New("recurso duplicado")

	// Registro
	ErrCompanyNotFound     = errors.New("Empresa não encontrada ou inativa. Verifique com o RH.")
	ErrDuplicateEmail      = errors.New("E-mail já cadastrado.")
	ErrDuplicateNationalID = errors.New("CPF já cadastrado.")
	ErrNotAuthorized       = errors.New("Seu CPF não está autorizado para uso do app. Procure o RH da sua empresa.")
	ErrAlreadyClaimed      = errors.New("Este CPF já está vinculado a um usuário.")
	ErrRegistrationFailed  = errors.New("Não foi possível concluir o cadastro. Tente novamente.")

	// Autenticación
	ErrInvalidCredentials = errors.New("E-mail ou senha inválidos.")
	ErrUnauthenticated    = errors.New("Não foi possível validar as credenciais.")
	ErrForbidden          = errors.New("acesso negado")
)
