package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/dualsaude-api/internal/application/auth"
	"github.com/jhoicas/dualsaude-api/internal/application/dto"
	"github.com/jhoicas/dualsaude-api/internal/domain"
	"github.com/jhoicas/dualsaude-api/internal/domain/entity"
	"github.com/jhoicas/dualsaude-api/internal/domain/repository"
	"github.com/jhoicas/dualsaude-api/internal/infrastructure/memory"
	"github.com/jhoicas/dualsaude-api/pkg/jwt"
	"github.com/jhoicas/dualsaude-api/pkg/logger"
)

const testSecret = "test-secret"

var jwtCfg = auth.JWTConfig{Secret: testSecret, Issuer: "test", APIExpMinutes: 60, PanelExpMinutes: 60}

type fixture struct {
	store *memory.Store
	uc    *auth.AuthUseCase
}

// newFixture crea una empresa activa con dos CPFs autorizados.
func newFixture(t *testing.T, runner auth.RegistrationTxRunner) *fixture {
	t.Helper()
	s := memory.NewStore()
	ctx := context.Background()
	companies := memory.NewCompanyRepository(s)
	employees := memory.NewAuthorizedEmployeeRepository(s)

	require.NoError(t, companies.Create(ctx, &entity.Company{ID: "c1", Name: "Empresa Demo", Active: true}))
	require.NoError(t, companies.Create(ctx, &entity.Company{ID: "c2", Name: "Empresa Inativa", Active: false}))
	require.NoError(t, employees.Create(ctx, &entity.AuthorizedEmployee{ID: "e1", CompanyID: "c1", Name: "Ana", NationalID: "12345678900", Active: true}))
	require.NoError(t, employees.Create(ctx, &entity.AuthorizedEmployee{ID: "e2", CompanyID: "c1", Name: "Bruno", NationalID: "98765432100", Active: true}))
	require.NoError(t, employees.Create(ctx, &entity.AuthorizedEmployee{ID: "e3", CompanyID: "c1", Name: "Carla", NationalID: "11122233344", Active: false}))

	if runner == nil {
		runner = memory.NewTxRunner(s)
	}
	uc := auth.NewAuthUseCase(
		memory.NewUserRepository(s), companies, employees, runner, jwtCfg, logger.Nop(),
	)
	return &fixture{store: s, uc: uc}
}

func registerReq(cpf, email string) dto.RegisterRequest {
	return dto.RegisterRequest{
		Name:        "Ana  Souza",
		NationalID:  cpf,
		Email:       email,
		Phone:       "(11) 98765-4321",
		Password:    "segredo123",
		CompanyName: "empresa demo",
	}
}

// ─── Register ─────────────────────────────────────────────────────────────────

func TestRegister_VinculaFuncionario(t *testing.T) {
	f := newFixture(t, nil)

	out, err := f.uc.Register(context.Background(), registerReq("123.456.789-00", " Ana@Empresa.com "))
	require.NoError(t, err)
	assert.Equal(t, "c1", out.CompanyID)
	assert.Equal(t, "ana@empresa.com", out.Email)
	assert.Equal(t, "12345678900", out.NationalID)
	assert.Equal(t, "11987654321", out.Phone)
	assert.Equal(t, "Ana Souza", out.Name)

	emp, err := memory.NewAuthorizedEmployeeRepository(f.store).GetByCompanyAndNationalID(context.Background(), "c1", "12345678900")
	require.NoError(t, err)
	require.NotNil(t, emp.UserID)
	assert.Equal(t, out.ID, *emp.UserID)

	other, _ := memory.NewAuthorizedEmployeeRepository(f.store).GetByCompanyAndNationalID(context.Background(), "c1", "98765432100")
	assert.Nil(t, other.UserID, "solo se vincula un funcionario")
}

func TestRegister_CPFDuplicadoConOtroEmail(t *testing.T) {
	f := newFixture(t, nil)
	_, err := f.uc.Register(context.Background(), registerReq("12345678900", "ana@empresa.com"))
	require.NoError(t, err)

	_, err = f.uc.Register(context.Background(), registerReq("12345678900", "otra@empresa.com"))
	assert.ErrorIs(t, err, domain.ErrDuplicateNationalID)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	f := newFixture(t, nil)
	_, err := f.uc.Register(context.Background(), registerReq("12345678900", "ana@empresa.com"))
	require.NoError(t, err)

	_, err = f.uc.Register(context.Background(), registerReq("98765432100", "ANA@empresa.com"))
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestRegister_CPFNoAutorizado(t *testing.T) {
	f := newFixture(t, nil)

	_, err := f.uc.Register(context.Background(), registerReq("55555555555", "x@empresa.com"))
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)

	// funcionario inactivo cuenta como no autorizado
	_, err = f.uc.Register(context.Background(), registerReq("11122233344", "carla@empresa.com"))
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)
}

func TestRegister_EmpresaInexistenteOInactiva(t *testing.T) {
	f := newFixture(t, nil)

	req := registerReq("12345678900", "ana@empresa.com")
	req.CompanyName = "Nao Existe"
	_, err := f.uc.Register(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrCompanyNotFound)

	req.CompanyName = "Empresa Inativa"
	_, err = f.uc.Register(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrCompanyNotFound)
}

func TestRegister_FuncionarioYaReclamado(t *testing.T) {
	f := newFixture(t, nil)
	require.NoError(t, memory.NewAuthorizedEmployeeRepository(f.store).LinkUser(context.Background(), "e1", "otro-usuario"))

	_, err := f.uc.Register(context.Background(), registerReq("12345678900", "ana@empresa.com"))
	assert.ErrorIs(t, err, domain.ErrAlreadyClaimed)
}

func TestRegister_EntradaInvalida(t *testing.T) {
	f := newFixture(t, nil)
	req := registerReq("12345678900", "no-es-email")
	req.Password = "123"

	_, err := f.uc.Register(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// failingEmployees rompe el vínculo para forzar el rollback.
type failingEmployees struct {
	repository.AuthorizedEmployeeRepository
}

func (failingEmployees) LinkUser(context.Context, string, string) error {
	return errors.New("conexión perdida")
}

type failingLinkRunner struct {
	inner *memory.TxRunner
}

func (r failingLinkRunner) RunRegistration(ctx context.Context, fn func(repository.UserRepository, repository.AuthorizedEmployeeRepository) error) error {
	return r.inner.RunRegistration(ctx, func(users repository.UserRepository, employees repository.AuthorizedEmployeeRepository) error {
		return fn(users, failingEmployees{employees})
	})
}

func TestRegister_FalloDelVinculoNoDejaUsuario(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()
	require.NoError(t, memory.NewCompanyRepository(s).Create(ctx, &entity.Company{ID: "c1", Name: "Empresa Demo", Active: true}))
	require.NoError(t, memory.NewAuthorizedEmployeeRepository(s).Create(ctx, &entity.AuthorizedEmployee{ID: "e1", CompanyID: "c1", NationalID: "12345678900", Active: true}))
	uc := auth.NewAuthUseCase(
		memory.NewUserRepository(s), memory.NewCompanyRepository(s), memory.NewAuthorizedEmployeeRepository(s),
		failingLinkRunner{inner: memory.NewTxRunner(s)}, jwtCfg, logger.Nop(),
	)

	_, err := uc.Register(ctx, registerReq("12345678900", "ana@empresa.com"))
	assert.ErrorIs(t, err, domain.ErrRegistrationFailed)

	u, err := memory.NewUserRepository(s).GetByEmail(ctx, "ana@empresa.com")
	require.NoError(t, err)
	assert.Nil(t, u, "el rollback no deja usuario")
	emp, _ := memory.NewAuthorizedEmployeeRepository(s).GetByCompanyAndNationalID(ctx, "c1", "12345678900")
	assert.Nil(t, emp.UserID)
}

// blindUsers simula la ventana entre el chequeo previo y el INSERT: la lectura no ve a nadie.
type blindUsers struct {
	repository.UserRepository
}

func (blindUsers) GetByEmail(context.Context, string) (*entity.User, error)      { return nil, nil }
func (blindUsers) GetByNationalID(context.Context, string) (*entity.User, error) { return nil, nil }

// conflictUsers responde al INSERT como el repo postgres ante un 23505.
type conflictUsers struct {
	repository.UserRepository
	err error
}

func (u conflictUsers) Create(context.Context, *entity.User) error { return u.err }

type conflictRunner struct {
	inner *memory.TxRunner
	err   error
}

func (r conflictRunner) RunRegistration(ctx context.Context, fn func(repository.UserRepository, repository.AuthorizedEmployeeRepository) error) error {
	return r.inner.RunRegistration(ctx, func(users repository.UserRepository, employees repository.AuthorizedEmployeeRepository) error {
		return fn(conflictUsers{UserRepository: users, err: r.err}, employees)
	})
}

func TestRegister_ConflictoUnicoTrasChequeoPrevio(t *testing.T) {
	for _, want := range []error{domain.ErrDuplicateNationalID, domain.ErrDuplicateEmail} {
		t.Run(want.Error(), func(t *testing.T) {
			s := memory.NewStore()
			ctx := context.Background()
			companies := memory.NewCompanyRepository(s)
			employees := memory.NewAuthorizedEmployeeRepository(s)
			require.NoError(t, companies.Create(ctx, &entity.Company{ID: "c1", Name: "Empresa Demo", Active: true}))
			require.NoError(t, employees.Create(ctx, &entity.AuthorizedEmployee{ID: "e1", CompanyID: "c1", NationalID: "12345678900", Active: true}))
			uc := auth.NewAuthUseCase(
				blindUsers{memory.NewUserRepository(s)}, companies, employees,
				conflictRunner{inner: memory.NewTxRunner(s), err: want}, jwtCfg, logger.Nop(),
			)

			_, err := uc.Register(ctx, registerReq("12345678900", "ana@empresa.com"))
			assert.ErrorIs(t, err, want)
			assert.NotErrorIs(t, err, domain.ErrRegistrationFailed)

			emp, _ := employees.GetByCompanyAndNationalID(ctx, "c1", "12345678900")
			assert.Nil(t, emp.UserID, "sin vínculo tras el conflicto")
		})
	}
}

// ─── Login ────────────────────────────────────────────────────────────────────

func TestLogin_ErroresIndistinguibles(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	out, err := f.uc.Register(ctx, registerReq("12345678900", "ana@empresa.com"))
	require.NoError(t, err)

	_, errWrongPass := f.uc.Login(ctx, dto.LoginRequest{Username: "ana@empresa.com", Password: "errada123"})
	_, errUnknown := f.uc.Login(ctx, dto.LoginRequest{Username: "nadie@empresa.com", Password: "segredo123"})

	require.NoError(t, memory.NewUserRepository(f.store).SetActive(out.ID, false))
	_, errInactive := f.uc.Login(ctx, dto.LoginRequest{Username: "ana@empresa.com", Password: "segredo123"})

	for _, err := range []error{errWrongPass, errUnknown, errInactive} {
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		assert.Equal(t, domain.ErrInvalidCredentials.Error(), err.Error())
	}
}

func TestLogin_TokenConSujetoID(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	out, err := f.uc.Register(ctx, registerReq("12345678900", "ana@empresa.com"))
	require.NoError(t, err)

	tok, err := f.uc.Login(ctx, dto.LoginRequest{Username: " ANA@empresa.com", Password: "segredo123"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", tok.TokenType)

	sub, err := jwt.Parse(testSecret, tok.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, out.ID, sub)

	user, err := f.uc.ResolveBearer(ctx, tok.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, out.ID, user.ID)
}

func TestLoginPanel_TokenConSujetoEmail(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	_, err := f.uc.Register(ctx, registerReq("12345678900", "ana@empresa.com"))
	require.NoError(t, err)

	tok, err := f.uc.LoginPanel(ctx, "ana@empresa.com", "segredo123")
	require.NoError(t, err)

	sub, err := jwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "ana@empresa.com", sub)

	// un token del painel no sirve como bearer
	_, err = f.uc.ResolveBearer(ctx, tok)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

// ─── Sesiones ─────────────────────────────────────────────────────────────────

func TestResolveBearer_TokensInvalidos(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	expired, err := jwt.Generate(testSecret, "0b6f3c2e-6a57-4c43-9d7e-1f2a3b4c5d6e", "test", -5)
	require.NoError(t, err)
	unknown, err := jwt.Generate(testSecret, "0b6f3c2e-6a57-4c43-9d7e-1f2a3b4c5d6e", "test", 5)
	require.NoError(t, err)
	noSub, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.RegisteredClaims{
		ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	for name, tok := range map[string]string{
		"vacío":       "",
		"basura":      "abc.def.ghi",
		"expirado":    expired,
		"desconocido": unknown,
		"sin sujeto":  noSub,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := f.uc.ResolveBearer(ctx, tok)
			assert.ErrorIs(t, err, domain.ErrUnauthenticated)
		})
	}
}

func TestResolvePanelSession(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	out, err := f.uc.Register(ctx, registerReq("12345678900", "ana@empresa.com"))
	require.NoError(t, err)
	tok, err := f.uc.LoginPanel(ctx, "ana@empresa.com", "segredo123")
	require.NoError(t, err)

	res, err := f.uc.ResolvePanelSession(ctx, tok)
	require.NoError(t, err)
	assert.Equal(t, auth.SessionAuthenticated, res.State)
	assert.Equal(t, out.ID, res.User.ID)

	res, err = f.uc.ResolvePanelSession(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, auth.SessionNeedsLogin, res.State)
	assert.Nil(t, res.User)

	tampered := tok[:len(tok)-2] + "xx"
	res, err = f.uc.ResolvePanelSession(ctx, tampered)
	require.NoError(t, err)
	assert.Equal(t, auth.SessionNeedsLogin, res.State)

	require.NoError(t, memory.NewUserRepository(f.store).SetActive(out.ID, false))
	res, err = f.uc.ResolvePanelSession(ctx, tok)
	require.NoError(t, err)
	assert.Equal(t, auth.SessionNeedsLogin, res.State, "usuario inactivo vuelve al login")
}
