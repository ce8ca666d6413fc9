package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/dualsaude-api/internal/application/dto"
	"github.com/jhoicas/dualsaude-api/internal/application/validation"
	"github.com/jhoicas/dualsaude-api/internal/domain"
	"github.com/jhoicas/dualsaude-api/internal/domain/entity"
	"github.com/jhoicas/dualsaude-api/internal/domain/repository"
	"github.com/jhoicas/dualsaude-api/pkg/jwt"
	"github.com/jhoicas/dualsaude-api/pkg/logger"
	"github.com/jhoicas/dualsaude-api/pkg/normalize"
	"github.com/jhoicas/dualsaude-api/pkg/password"
)

// JWTConfig configuración para generación de tokens. La API y el painel comparten secreto pero no TTL.
type JWTConfig struct {
	Secret          string
	Issuer          string
	APIExpMinutes   int
	PanelExpMinutes int
}

// AuthUseCase casos de uso de autenticación: registro, login y resolución de sesión.
type AuthUseCase struct {
	users     repository.UserRepository
	companies repository.CompanyRepository
	employees repository.AuthorizedEmployeeRepository
	txRunner  RegistrationTxRunner
	jwtCfg    JWTConfig
	log       *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	users repository.UserRepository,
	companies repository.CompanyRepository,
	employees repository.AuthorizedEmployeeRepository,
	txRunner RegistrationTxRunner,
	jwtCfg JWTConfig,
	log *logger.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		users:     users,
		companies: companies,
		employees: employees,
		txRunner:  txRunner,
		jwtCfg:    jwtCfg,
		log:       log.Component("auth"),
	}
}

// Register crea la cuenta de un funcionario autorizado y la vincula a su registro en una sola transacción.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	in.Name = normalize.Name(in.Name)
	in.CompanyName = normalize.Name(in.CompanyName)
	in.NationalID = normalize.Digits(in.NationalID)
	in.Phone = normalize.Digits(in.Phone)
	in.Email = normalize.Email(in.Email)
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	company, err := uc.companies.GetByName(ctx, in.CompanyName)
	if err != nil {
		return nil, err
	}
	if company == nil || !company.Active {
		return nil, domain.ErrCompanyNotFound
	}

	existing, err := uc.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateEmail
	}
	existing, err = uc.users.GetByNationalID(ctx, in.NationalID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateNationalID
	}

	emp, err := uc.employees.GetActiveByCompanyAndNationalID(ctx, company.ID, in.NationalID)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrNotAuthorized
	}
	if emp.Claimed() {
		return nil, domain.ErrAlreadyClaimed
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	now := time.Now().UTC()
	user := &entity.User{
		ID:           uuid.New().String(),
		CompanyID:    company.ID,
		Name:         in.Name,
		NationalID:   in.NationalID,
		Email:        in.Email,
		Phone:        in.Phone,
		PasswordHash: hash,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// Commit si todo ok, Rollback si algo falla (el runner lo hace)
	err = uc.txRunner.RunRegistration(ctx, func(users repository.UserRepository, employees repository.AuthorizedEmployeeRepository) error {
		if err := users.Create(ctx, user); err != nil {
			return err
		}
		return employees.LinkUser(ctx, emp.ID, user.ID)
	})
	if err != nil {
		// Carreras contra otro registro simultáneo: se informan como el chequeo previo.
		if errors.Is(err, domain.ErrDuplicateEmail) ||
			errors.Is(err, domain.ErrDuplicateNationalID) ||
			errors.Is(err, domain.ErrAlreadyClaimed) {
			return nil, err
		}
		uc.log.Error().Err(err).Str("company_id", company.ID).Msg("registro: transacción revertida")
		return nil, fmt.Errorf("%w: %v", domain.ErrRegistrationFailed, err)
	}

	uc.log.Info().Str("user_id", user.ID).Str("company_id", company.ID).Msg("usuario registrado")
	return ToUserResponse(user), nil
}

// Login autentica contra la API y devuelve un bearer token cuyo sujeto es el id del usuario.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := uc.authenticate(ctx, in.Username, in.Password)
	if err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, uc.jwtCfg.Issuer, uc.jwtCfg.APIExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}

// LoginPanel autentica el painel y devuelve el token de la cookie; el sujeto es el e-mail.
func (uc *AuthUseCase) LoginPanel(ctx context.Context, email, plain string) (string, error) {
	user, err := uc.authenticate(ctx, email, plain)
	if err != nil {
		return "", err
	}
	return jwt.Generate(uc.jwtCfg.Secret, user.Email, uc.jwtCfg.Issuer, uc.jwtCfg.PanelExpMinutes)
}

// PanelSessionMinutes TTL de la cookie del painel.
func (uc *AuthUseCase) PanelSessionMinutes() int {
	return uc.jwtCfg.PanelExpMinutes
}

// authenticate devuelve ErrInvalidCredentials tanto si el e-mail no existe como si la contraseña
// no coincide o la cuenta está inactiva.
func (uc *AuthUseCase) authenticate(ctx context.Context, identifier, plain string) (*entity.User, error) {
	email := normalize.Email(identifier)
	if email == "" || plain == "" {
		return nil, domain.ErrInvalidCredentials
	}
	user, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || !password.Verify(plain, user.PasswordHash) || !user.Active {
		uc.log.Debug().Msg("login rechazado")
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

// ResolveBearer devuelve el usuario dueño del token de la API.
// Token inválido o expirado, sujeto vacío, usuario inexistente o inactivo: ErrUnauthenticated.
func (uc *AuthUseCase) ResolveBearer(ctx context.Context, token string) (*entity.User, error) {
	sub, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return nil, domain.ErrUnauthenticated
	}
	// un token del painel (sujeto = e-mail) no sirve como bearer
	if _, err := uuid.Parse(sub); err != nil {
		return nil, domain.ErrUnauthenticated
	}
	user, err := uc.users.GetByID(ctx, sub)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Active {
		return nil, domain.ErrUnauthenticated
	}
	return user, nil
}

// SessionState resultado de resolver la cookie del painel.
type SessionState int

const (
	SessionNeedsLogin SessionState = iota
	SessionAuthenticated
)

// SessionResult sesión del painel resuelta. User solo está presente si State es SessionAuthenticated.
type SessionResult struct {
	State SessionState
	User  *entity.User
}

// ResolvePanelSession interpreta la cookie del painel. Cookie ausente, expirada o adulterada y usuario
// inexistente o inactivo dan SessionNeedsLogin; el error queda para fallos de almacenamiento.
func (uc *AuthUseCase) ResolvePanelSession(ctx context.Context, token string) (SessionResult, error) {
	if strings.TrimSpace(token) == "" {
		return SessionResult{State: SessionNeedsLogin}, nil
	}
	sub, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return SessionResult{State: SessionNeedsLogin}, nil
	}
	user, err := uc.users.GetByEmail(ctx, normalize.Email(sub))
	if err != nil {
		return SessionResult{}, err
	}
	if user == nil || !user.Active {
		return SessionResult{State: SessionNeedsLogin}, nil
	}
	return SessionResult{State: SessionAuthenticated, User: user}, nil
}

// ToUserResponse convierte la entidad en la salida pública (sin hash).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		NationalID: u.NationalID,
		Email:      u.Email,
		Phone:      u.Phone,
		CompanyID:  u.CompanyID,
	}
}
