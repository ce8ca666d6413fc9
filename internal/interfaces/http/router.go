package http

import (
	"os"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/jhoicas/dualsaude-api/internal/application/auth"
	"github.com/jhoicas/dualsaude-api/internal/application/finance"
	"github.com/jhoicas/dualsaude-api/internal/application/importer"
	"github.com/jhoicas/dualsaude-api/internal/application/usecase"
	"github.com/jhoicas/dualsaude-api/pkg/config"
	"github.com/jhoicas/dualsaude-api/pkg/logger"
)

// swaggerSpecPath ruta del spec generado por swag (make docs).
const swaggerSpecPath = "./docs/swagger.json"

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	CategoryUC    *finance.CategoryUseCase
	EntryUC       *finance.EntryUseCase
	ReportUC      *finance.ReportUseCase
	DestinationUC *finance.PaymentDestinationUseCase
	ImportUC      *importer.ImportUseCase
	CompanyUC     *usecase.CompanyUseCase
	DemoUC        *usecase.DemoUseCase
	Config        *config.Config
	Log           *logger.Logger
}

// NewServer construye la app fiber con middlewares, vistas y rutas.
func NewServer(deps RouterDeps) (*fiber.App, error) {
	cfg := deps.Config
	log := deps.Log

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    (cfg.Import.MaxUploadMB + 1) << 20,
		// los valores de c.FormValue/BodyParser se guardan en el store; sin copia apuntan al buffer de fasthttp
		Immutable:    true,
		Views:        NewViewsEngine(),
		ErrorHandler: NewErrorHandler(log),
	})
	app.Use(requestid.New())
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			log.Error().Interface("panic", e).Str("path", c.Path()).Msg("panic recuperado")
		},
	}))
	app.Use(RequestLogger(log))
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.HTTP.AllowedOrigins}))

	// Swagger UI: http://localhost:<port>/docs (solo si el spec fue generado)
	if _, err := os.Stat(swaggerSpecPath); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerSpecPath,
			Path:     "docs",
			Title:    "Dual Saúde API",
		}))
	}

	loginLimiter, err := NewLoginLimiter(cfg.HTTP.LoginRateLimit)
	if err != nil {
		return nil, err
	}
	Router(app, deps, RateLimit(loginLimiter, log))
	return app, nil
}

// Router registra las rutas de la API y del painel.
func Router(app *fiber.App, deps RouterDeps, loginLimit fiber.Handler) {
	cfg := deps.Config

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("API Dual Saúde funcionando 🚀")
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	app.Post("/auth/register", authHandler.Register)
	app.Post("/auth/login", loginLimit, authHandler.Login)

	api := app.Group("/api")
	api.Get("/hello", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "API Dual Saúde online"})
	})
	if cfg.Features.DemoSetup {
		api.Post("/setup-demo", NewDemoHandler(deps.DemoUC).Setup)
	}

	// Administración: solo con ADMIN_API_KEY configurada
	if cfg.Features.AdminAPIKey != "" {
		admin := api.Group("/admin", AdminKeyMiddleware(cfg.Features.AdminAPIKey))
		companyHandler := NewCompanyHandler(deps.CompanyUC)
		admin.Get("/empresas", companyHandler.List)
		admin.Get("/empresas/:id", companyHandler.GetByID)
		admin.Delete("/empresas/:id", companyHandler.Delete)
	}

	// Rutas protegidas (requieren Bearer Token)
	bearer := AuthMiddleware(deps.AuthUC)
	api.Get("/me", bearer, authHandler.Me)

	fin := api.Group("/financeiro", bearer)
	financeHandler := NewFinanceHandler(deps.EntryUC, deps.ReportUC)
	fin.Get("/relatorio", financeHandler.Report)
	fin.Get("/lancamentos", financeHandler.ListEntries)
	fin.Post("/lancamentos", financeHandler.CreateEntry)
	fin.Post("/lancamentos/:id/pagar", financeHandler.MarkPaid)
	fin.Delete("/lancamentos/:id", financeHandler.DeleteEntry)

	// Painel: login y logout se registran antes del grupo con sesión
	panelAuth := NewPanelAuthHandler(deps.AuthUC, CookieConfig{Name: cfg.Panel.CookieName, Secure: cfg.Panel.CookieSecure})
	app.Get("/painel/login", panelAuth.LoginPage)
	app.Post("/painel/login", loginLimit, panelAuth.Login)
	app.Get("/painel/logout", panelAuth.Logout)

	panelHandler := NewPanelHandler(PanelDeps{
		Categories:      deps.CategoryUC,
		Entries:         deps.EntryUC,
		Reports:         deps.ReportUC,
		Destinations:    deps.DestinationUC,
		Importer:        deps.ImportUC,
		PaymentsEnabled: cfg.Features.PaymentDestinations,
		MaxUploadMB:     cfg.Import.MaxUploadMB,
	})
	panel := app.Group("/painel", panelAuth.RequireSession())
	panel.Get("/", panelHandler.Home)
	panel.Get("/importacao", panelHandler.ImportPage)
	panel.Post("/importacao", panelHandler.Import)

	pf := panel.Group("/financeiro")
	pf.Get("/", panelHandler.Dashboard)
	pf.Get("/categorias", panelHandler.Categories)
	pf.Post("/categorias/criar", panelHandler.CreateCategory)
	pf.Get("/categorias/excluir/:id", panelHandler.DeleteCategory)
	pf.Get("/lancamentos", panelHandler.Entries)
	pf.Post("/lancamentos/criar", panelHandler.CreateEntry)
	pf.Get("/lancamentos/excluir/:id", panelHandler.DeleteEntry)
	pf.Get("/lancamentos/marcar-pago/:id", panelHandler.MarkPaid)
	pf.Get("/relatorios", panelHandler.Reports)
	pf.Get("/relatorios/pdf", panelHandler.ReportPDF)

	// Dados de pagamento: capacidad resuelta una sola vez al arrancar
	if cfg.Features.PaymentDestinations {
		pf.Get("/pagamentos", panelHandler.Destinations)
		pf.Post("/pagamentos/criar", panelHandler.CreateDestination)
		pf.Get("/pagamentos/excluir/:id", panelHandler.DeleteDestination)
	}
}
