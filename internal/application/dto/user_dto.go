package dto

// RegisterRequest entrada del auto-registro del app. La contraseña llega en texto y se hashea en el use case.
type RegisterRequest struct {
	Name        string `json:"nome" validate:"required,max=200"`
	NationalID  string `json:"cpf" validate:"required,numeric,len=11"`
	Email       string `json:"email" validate:"required,email,max=255"`
	Phone       string `json:"celular" validate:"omitempty,numeric,max=20"`
	Password    string `json:"senha" validate:"required,min=8,max=128"`
	CompanyName string `json:"empresa_nome" validate:"required,max=200"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID         string `json:"id"`
	Name       string `json:"nome"`
	NationalID string `json:"cpf"`
	Email      string `json:"email"`
	Phone      string `json:"celular,omitempty"`
	CompanyID  string `json:"empresa_id"`
}

// LoginRequest entrada del login de la API: formulario OAuth2 (username/password) o JSON equivalente.
// username es el e-mail.
type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// TokenResponse salida del login de la API.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
