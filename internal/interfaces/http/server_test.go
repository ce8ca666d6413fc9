package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/dualsaude-api/internal/application/auth"
	"github.com/jhoicas/dualsaude-api/internal/application/dto"
	"github.com/jhoicas/dualsaude-api/internal/application/finance"
	"github.com/jhoicas/dualsaude-api/internal/application/importer"
	"github.com/jhoicas/dualsaude-api/internal/application/usecase"
	"github.com/jhoicas/dualsaude-api/internal/infrastructure/memory"
	"github.com/jhoicas/dualsaude-api/internal/infrastructure/pdf"
	"github.com/jhoicas/dualsaude-api/internal/infrastructure/spreadsheet"
	apphttp "github.com/jhoicas/dualsaude-api/internal/interfaces/http"
	"github.com/jhoicas/dualsaude-api/pkg/config"
	"github.com/jhoicas/dualsaude-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testEmail    = "maria@empresa.com"
	testPassword = "segredo123"
	testAdminKey = "chave-admin"
)

func testConfig() *config.Config {
	return &config.Config{
		App:      config.AppConfig{Env: "test", Name: "dual-saude-test", StorageDriver: config.StorageMemory},
		JWT:      config.JWTConfig{Secret: "test-secret", Expiration: 60, Issuer: "test"},
		Panel:    config.PanelConfig{SessionMinutes: 30, CookieName: "ds_token"},
		HTTP:     config.HTTPConfig{AllowedOrigins: "*", LoginRateLimit: "100-M"},
		Features: config.FeatureConfig{PaymentDestinations: true, DemoSetup: true, AdminAPIKey: testAdminKey},
		Import:   config.ImportConfig{MaxUploadMB: 1},
	}
}

// buildTestApp arma el servidor completo sobre el driver en memoria y registra
// un usuario de la empresa demo.
func buildTestApp(t *testing.T, mutate func(*config.Config)) *fiber.App {
	t.Helper()
	cfg := testConfig()
	if mutate != nil {
		mutate(cfg)
	}
	log := logger.Nop()
	s := memory.NewStore()
	txRunner := memory.NewTxRunner(s)
	companies := memory.NewCompanyRepository(s)
	employees := memory.NewAuthorizedEmployeeRepository(s)
	catRepo := memory.NewFinanceCategoryRepository(s)
	entryRepo := memory.NewFinanceEntryRepository(s)

	authUC := auth.NewAuthUseCase(memory.NewUserRepository(s), companies, employees, txRunner, auth.JWTConfig{
		Secret:          cfg.JWT.Secret,
		Issuer:          cfg.JWT.Issuer,
		APIExpMinutes:   cfg.JWT.Expiration,
		PanelExpMinutes: cfg.Panel.SessionMinutes,
	}, log)
	demoUC := usecase.NewDemoUseCase(txRunner, log)

	ctx := context.Background()
	_, err := demoUC.Setup(ctx)
	require.NoError(t, err)
	_, err = authUC.Register(ctx, dto.RegisterRequest{
		Name:        "Maria Silva",
		NationalID:  usecase.DemoEmployeeCPF,
		Email:       testEmail,
		Password:    testPassword,
		CompanyName: usecase.DemoCompanyName,
	})
	require.NoError(t, err)

	app, err := apphttp.NewServer(apphttp.RouterDeps{
		AuthUC:        authUC,
		CategoryUC:    finance.NewCategoryUseCase(catRepo),
		EntryUC:       finance.NewEntryUseCase(entryRepo, catRepo),
		ReportUC:      finance.NewReportUseCase(memory.NewFinanceReportRepository(s), entryRepo, companies, pdf.NewMarotoReportGenerator()),
		DestinationUC: finance.NewPaymentDestinationUseCase(memory.NewPaymentDestinationRepository(s)),
		ImportUC:      importer.NewImportUseCase(txRunner, spreadsheet.XLSXReader{}, log),
		CompanyUC:     usecase.NewCompanyUseCase(companies, log),
		DemoUC:        demoUC,
		Config:        cfg,
		Log:           log,
	})
	require.NoError(t, err)
	return app
}

func do(t *testing.T, app *fiber.App, req *http.Request) *http.Response {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func jsonRequest(method, target string, body any) *http.Request {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(method, target, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func formRequest(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func bearerToken(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp := do(t, app, formRequest("/auth/login", url.Values{"username": {testEmail}, "password": {testPassword}}))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var tok dto.TokenResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&tok))
	return tok.AccessToken
}

func panelCookie(t *testing.T, app *fiber.App) *http.Cookie {
	t.Helper()
	resp := do(t, app, formRequest("/painel/login", url.Values{"email": {testEmail}, "senha": {testPassword}}))
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	for _, c := range resp.Cookies() {
		if c.Name == "ds_token" {
			return c
		}
	}
	t.Fatal("cookie de sesión ausente")
	return nil
}

func withCookie(req *http.Request, c *http.Cookie) *http.Request {
	req.AddCookie(&http.Cookie{Name: c.Name, Value: c.Value})
	return req
}

func xlsxUpload(t *testing.T, filename string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	req := httptest.NewRequest(http.MethodPost, "/painel/importacao", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

// ──────────────────────────────────────────────────────────────────────────────
// API
// ──────────────────────────────────────────────────────────────────────────────

func TestRaizYHello(t *testing.T) {
	app := buildTestApp(t, nil)

	resp := do(t, app, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "API Dual Saúde funcionando 🚀", readBody(t, resp))

	resp = do(t, app, httptest.NewRequest(http.MethodGet, "/api/hello", nil))
	assert.Contains(t, readBody(t, resp), "API Dual Saúde online")
}

func TestRegister_Respuestas(t *testing.T) {
	app := buildTestApp(t, nil)

	resp := do(t, app, jsonRequest(http.MethodPost, "/auth/register", map[string]string{
		"nome": "Outro", "cpf": "55555555555", "email": "outro@empresa.com",
		"senha": "segredo123", "empresa_nome": usecase.DemoCompanyName,
	}))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "CPF_NOT_AUTHORIZED")

	resp = do(t, app, jsonRequest(http.MethodPost, "/auth/register", map[string]string{
		"nome": "Maria", "cpf": usecase.DemoEmployeeCPF, "email": "otra@empresa.com",
		"senha": "segredo123", "empresa_nome": usecase.DemoCompanyName,
	}))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "CPF ya registrado")
	assert.Contains(t, readBody(t, resp), "CPF_EXISTS")

	resp = do(t, app, jsonRequest(http.MethodPost, "/auth/register", map[string]string{"nome": "x"}))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "VALIDATION")
}

func TestLoginYMe(t *testing.T) {
	app := buildTestApp(t, nil)
	tok := bearerToken(t, app)

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp := do(t, app, req)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var me dto.UserResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&me))
	assert.Equal(t, testEmail, me.Email)
	assert.Equal(t, usecase.DemoEmployeeCPF, me.NationalID)
}

func TestMe_SinToken(t *testing.T) {
	app := buildTestApp(t, nil)

	for _, header := range []string{"", "Bearer ", "Bearer abc.def.ghi", "Basic xyz"} {
		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		resp := do(t, app, req)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, header)
		assert.Equal(t, "Bearer", resp.Header.Get("WWW-Authenticate"))
		assert.Contains(t, readBody(t, resp), "Não foi possível validar as credenciais.")
	}
}

func TestLogin_CredencialesInvalidasIdenticas(t *testing.T) {
	app := buildTestApp(t, nil)

	wrongPass := do(t, app, jsonRequest(http.MethodPost, "/auth/login", map[string]string{"username": testEmail, "password": "errada123"}))
	unknown := do(t, app, jsonRequest(http.MethodPost, "/auth/login", map[string]string{"username": "nadie@x.com", "password": "errada123"}))

	assert.Equal(t, http.StatusUnauthorized, wrongPass.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, unknown.StatusCode)
	assert.Equal(t, "Bearer", wrongPass.Header.Get("WWW-Authenticate"))
	assert.Equal(t, readBody(t, wrongPass), readBody(t, unknown))
}

func TestLogin_RateLimit(t *testing.T) {
	app := buildTestApp(t, func(c *config.Config) { c.HTTP.LoginRateLimit = "2-M" })

	for i := 0; i < 2; i++ {
		resp := do(t, app, formRequest("/auth/login", url.Values{"username": {testEmail}, "password": {"x"}}))
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	}
	resp := do(t, app, formRequest("/auth/login", url.Values{"username": {testEmail}, "password": {testPassword}}))
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
}

func TestFinanceAPI_CompetenciaYCaja(t *testing.T) {
	app := buildTestApp(t, nil)
	tok := bearerToken(t, app)
	withBearer := func(r *http.Request) *http.Request {
		r.Header.Set("Authorization", "Bearer "+tok)
		return r
	}

	resp := do(t, app, withBearer(jsonRequest(http.MethodPost, "/api/financeiro/lancamentos", map[string]any{
		"tipo": "RECEITA", "descricao": "Mensalidade", "valor": "100",
		"data_lancamento": "2024-01-31", "status": "PAGO", "data_pagamento": "2024-02-01",
	})))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var entry dto.EntryResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&entry))

	resp = do(t, app, withBearer(httptest.NewRequest(http.MethodGet, "/api/financeiro/relatorio?ym=2024-02", nil)))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var feb dto.ReportResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&feb))
	assert.Equal(t, "100", feb.Cash.Revenue.String())
	assert.True(t, feb.Accrual.Revenue.IsZero())

	resp = do(t, app, withBearer(httptest.NewRequest(http.MethodGet, "/api/financeiro/lancamentos?ym=2024-01&status=PAGO", nil)))
	var list dto.EntryListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	assert.Len(t, list.Items, 1)

	resp = do(t, app, withBearer(httptest.NewRequest(http.MethodDelete, "/api/financeiro/lancamentos/no-existe", nil)))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = do(t, app, withBearer(httptest.NewRequest(http.MethodDelete, "/api/financeiro/lancamentos/"+entry.ID, nil)))
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestSetupDemo(t *testing.T) {
	app := buildTestApp(t, nil)
	resp := do(t, app, httptest.NewRequest(http.MethodPost, "/api/setup-demo", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.DemoSetupResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "Dados de demonstração criados/atualizados com sucesso.", out.Message)
	assert.Equal(t, usecase.DemoEmployeeCPF, out.Instructions.NationalID)

	off := buildTestApp(t, func(c *config.Config) { c.Features.DemoSetup = false })
	resp = do(t, off, httptest.NewRequest(http.MethodPost, "/api/setup-demo", nil))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAdmin_ClaveRequerida(t *testing.T) {
	app := buildTestApp(t, nil)

	resp := do(t, app, httptest.NewRequest(http.MethodGet, "/api/admin/empresas", nil))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/empresas", nil)
	req.Header.Set("X-Admin-Key", testAdminKey)
	resp = do(t, app, req)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var page dto.CompanyListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	require.Len(t, page.Items, 1)
	assert.Equal(t, usecase.DemoCompanyName, page.Items[0].Name)

	off := buildTestApp(t, func(c *config.Config) { c.Features.AdminAPIKey = "" })
	req = httptest.NewRequest(http.MethodGet, "/api/admin/empresas", nil)
	req.Header.Set("X-Admin-Key", testAdminKey)
	resp = do(t, off, req)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode, "sin ADMIN_API_KEY las rutas no existen")
}

// ──────────────────────────────────────────────────────────────────────────────
// Painel
// ──────────────────────────────────────────────────────────────────────────────

func TestPanel_SinSesionRedirigeAlLogin(t *testing.T) {
	app := buildTestApp(t, nil)

	for _, cookie := range []string{"", "basura"} {
		req := httptest.NewRequest(http.MethodGet, "/painel/financeiro", nil)
		if cookie != "" {
			req.AddCookie(&http.Cookie{Name: "ds_token", Value: cookie})
		}
		resp := do(t, app, req)
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/painel/login", resp.Header.Get("Location"))
	}
}

func TestPanel_LoginFallido(t *testing.T) {
	app := buildTestApp(t, nil)
	resp := do(t, app, formRequest("/painel/login", url.Values{"email": {testEmail}, "senha": {"errada"}}))
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/painel/login?err=1", resp.Header.Get("Location"))

	page := do(t, app, httptest.NewRequest(http.MethodGet, "/painel/login?err=1", nil))
	assert.Equal(t, http.StatusOK, page.StatusCode)
	assert.Contains(t, readBody(t, page), "E-mail ou senha inválidos.")
}

func TestPanel_LoginCookieYLogout(t *testing.T) {
	app := buildTestApp(t, nil)
	resp := do(t, app, formRequest("/painel/login", url.Values{"email": {" MARIA@empresa.com "}, "senha": {testPassword}}))
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/painel", resp.Header.Get("Location"))

	var cookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == "ds_token" {
			cookie = c
		}
	}
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, 30*60, cookie.MaxAge)

	home := do(t, app, withCookie(httptest.NewRequest(http.MethodGet, "/painel", nil), cookie))
	assert.Equal(t, http.StatusOK, home.StatusCode)
	assert.Contains(t, readBody(t, home), "Maria Silva")

	out := do(t, app, httptest.NewRequest(http.MethodGet, "/painel/logout", nil))
	assert.Equal(t, http.StatusSeeOther, out.StatusCode)
	assert.Equal(t, "/painel/login", out.Header.Get("Location"))
	cleared := false
	for _, c := range out.Cookies() {
		if c.Name == "ds_token" {
			cleared = c.Value == ""
		}
	}
	assert.True(t, cleared, "logout limpia la cookie")
}

func TestPanel_BearerNoSirveComoCookieNiViceversa(t *testing.T) {
	app := buildTestApp(t, nil)
	cookie := panelCookie(t, app)

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Bearer "+cookie.Value)
	resp := do(t, app, req)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestPanel_LancamentoConValorBRL(t *testing.T) {
	app := buildTestApp(t, nil)
	cookie := panelCookie(t, app)

	resp := do(t, app, withCookie(formRequest("/painel/financeiro/lancamentos/criar", url.Values{
		"tipo": {"despesa"}, "descricao": {"Aluguel"}, "valor": {"R$ 1.234,56"},
		"data_lancamento": {"2024-01-15"}, "ym": {"2024-01"},
	}), cookie))
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/painel/financeiro/lancamentos?ym=2024-01", resp.Header.Get("Location"))

	page := do(t, app, withCookie(httptest.NewRequest(http.MethodGet, "/painel/financeiro/lancamentos?ym=2024-01", nil), cookie))
	require.Equal(t, http.StatusOK, page.StatusCode)
	body := readBody(t, page)
	assert.Contains(t, body, "Aluguel")
	assert.Contains(t, body, "R$ 1.234,56")
	assert.Contains(t, body, "PENDENTE")

	dash := do(t, app, withCookie(httptest.NewRequest(http.MethodGet, "/painel/financeiro?ym=2024-01", nil), cookie))
	require.Equal(t, http.StatusOK, dash.StatusCode)
	assert.Contains(t, readBody(t, dash), "-R$ 1.234,56", "saldo negativo")

	invalid := do(t, app, withCookie(formRequest("/painel/financeiro/lancamentos/criar", url.Values{
		"tipo": {"OUTRO"}, "descricao": {"X"}, "valor": {"10"}, "data_lancamento": {"2024-01-15"},
	}), cookie))
	assert.Equal(t, http.StatusSeeOther, invalid.StatusCode)
}

func TestPanel_CategoriasYRelatorios(t *testing.T) {
	app := buildTestApp(t, nil)
	cookie := panelCookie(t, app)

	resp := do(t, app, withCookie(formRequest("/painel/financeiro/categorias/criar", url.Values{"nome": {"Vendas"}, "tipo": {"RECEITA"}}), cookie))
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	resp = do(t, app, withCookie(formRequest("/painel/financeiro/categorias/criar", url.Values{"nome": {"Nada"}, "tipo": {"OUTRO"}}), cookie))
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode, "tipo inválido redirige sin crear")
	// otro formulario después del alta no debe alterar la categoría guardada
	resp = do(t, app, withCookie(formRequest("/painel/financeiro/lancamentos/criar", url.Values{
		"tipo": {"DESPESA"}, "descricao": {"Aluguel do escritorio"}, "valor": {"10"}, "data_lancamento": {"2024-03-05"},
	}), cookie))
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)

	page := do(t, app, withCookie(httptest.NewRequest(http.MethodGet, "/painel/financeiro/categorias", nil), cookie))
	body := readBody(t, page)
	assert.Contains(t, body, "<td>RECEITA</td><td>Vendas</td>")
	assert.NotContains(t, body, "Nada")
	assert.NotContains(t, body, "Aluguel")

	rel := do(t, app, withCookie(httptest.NewRequest(http.MethodGet, "/painel/financeiro/relatorios?ym=2024-03", nil), cookie))
	assert.Equal(t, http.StatusOK, rel.StatusCode)
	assert.Contains(t, readBody(t, rel), "03/2024")

	pdfResp := do(t, app, withCookie(httptest.NewRequest(http.MethodGet, "/painel/financeiro/relatorios/pdf?ym=2024-03", nil), cookie))
	assert.Equal(t, http.StatusOK, pdfResp.StatusCode)
	assert.Equal(t, "application/pdf", pdfResp.Header.Get("Content-Type"))
	assert.True(t, strings.HasPrefix(readBody(t, pdfResp), "%PDF"))
}

func TestPanel_PagamentosSegunFeature(t *testing.T) {
	app := buildTestApp(t, nil)
	cookie := panelCookie(t, app)
	resp := do(t, app, withCookie(formRequest("/painel/financeiro/pagamentos/criar", url.Values{
		"nome": {"Fornecedor"}, "tipo_servico": {"Limpeza"}, "forma": {"PIX"}, "pix_chave": {"chave@pix"}, "banco": {"Banco X"},
	}), cookie))
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	resp = do(t, app, withCookie(formRequest("/painel/financeiro/pagamentos/criar", url.Values{
		"nome": {"Clinica Sul"}, "tipo_servico": {"Exames"}, "forma": {"CONTA"}, "banco": {"Banco Y"}, "agencia": {"0001"}, "conta": {"12345-6"},
	}), cookie))
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	page := do(t, app, withCookie(httptest.NewRequest(http.MethodGet, "/painel/financeiro/pagamentos", nil), cookie))
	body := readBody(t, page)
	assert.Contains(t, body, "Fornecedor")
	assert.Contains(t, body, "chave@pix")
	assert.NotContains(t, body, "Banco X")
	assert.Contains(t, body, "Clinica Sul")
	assert.Contains(t, body, "Banco Y")

	off := buildTestApp(t, func(c *config.Config) { c.Features.PaymentDestinations = false })
	offCookie := panelCookie(t, off)
	resp = do(t, off, withCookie(httptest.NewRequest(http.MethodGet, "/painel/financeiro/pagamentos", nil), offCookie))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPanel_Importacao(t *testing.T) {
	app := buildTestApp(t, nil)
	cookie := panelCookie(t, app)

	resp := do(t, app, withCookie(xlsxUpload(t, "lista.csv", []byte("a,b,c")), cookie))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "Envie um arquivo .xlsx (Excel).")

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"empresa_nome", "funcionario_nome"}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	resp = do(t, app, withCookie(xlsxUpload(t, "lista.xlsx", buf.Bytes()), cookie))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "Colunas obrigatórias ausentes: funcionario_cpf")

	f = excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"empresa_nome", "funcionario_nome", "funcionario_cpf"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]any{"Nova Empresa", "Ana", "11122233344"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]any{"Nova Empresa", "Sem CPF", ""}))
	buf, err = f.WriteToBuffer()
	require.NoError(t, err)
	resp = do(t, app, withCookie(xlsxUpload(t, "Lista.XLSX", buf.Bytes()), cookie))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := readBody(t, resp)
	assert.Contains(t, body, "Empresas criadas: 1")
	assert.Contains(t, body, "Funcionários criados: 1")
	assert.Contains(t, body, "Linha 3")
}

func TestIDsMalformadosEnRutas(t *testing.T) {
	app := buildTestApp(t, nil)
	tok := bearerToken(t, app)
	withBearer := func(r *http.Request) *http.Request {
		r.Header.Set("Authorization", "Bearer "+tok)
		return r
	}
	admin := func(r *http.Request) *http.Request {
		r.Header.Set("X-Admin-Key", testAdminKey)
		return r
	}

	resp := do(t, app, withBearer(httptest.NewRequest(http.MethodDelete, "/api/financeiro/lancamentos/xyz", nil)))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp = do(t, app, withBearer(httptest.NewRequest(http.MethodPost, "/api/financeiro/lancamentos/xyz/pagar", nil)))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp = do(t, app, withBearer(httptest.NewRequest(http.MethodGet, "/api/financeiro/lancamentos?categoria_id=abc", nil)))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp = do(t, app, withBearer(jsonRequest(http.MethodPost, "/api/financeiro/lancamentos", map[string]any{
		"tipo": "RECEITA", "descricao": "Venda", "valor": "10", "data_lancamento": "2024-01-05", "categoria_id": "abc",
	})))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = do(t, app, admin(httptest.NewRequest(http.MethodGet, "/api/admin/empresas/xyz", nil)))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp = do(t, app, admin(httptest.NewRequest(http.MethodDelete, "/api/admin/empresas/xyz", nil)))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	cookie := panelCookie(t, app)
	for path, location := range map[string]string{
		"/painel/financeiro/lancamentos/excluir/xyz?ym=2024-01":     "/painel/financeiro/lancamentos?ym=2024-01",
		"/painel/financeiro/lancamentos/marcar-pago/xyz?ym=2024-01": "/painel/financeiro/lancamentos?ym=2024-01",
		"/painel/financeiro/categorias/excluir/xyz":                 "/painel/financeiro/categorias",
		"/painel/financeiro/pagamentos/excluir/xyz":                 "/painel/financeiro/pagamentos",
	} {
		resp := do(t, app, withCookie(httptest.NewRequest(http.MethodGet, path, nil), cookie))
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode, path)
		assert.Equal(t, location, resp.Header.Get("Location"), path)
	}
}
