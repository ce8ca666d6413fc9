// @title           Dual Saúde API
// @version         1.0
// @description     Cadastro de colaboradores autorizados e módulo financeiro por empresa.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jhoicas/dualsaude-api/docs"
	"github.com/jhoicas/dualsaude-api/internal/application/auth"
	"github.com/jhoicas/dualsaude-api/internal/application/finance"
	"github.com/jhoicas/dualsaude-api/internal/application/importer"
	"github.com/jhoicas/dualsaude-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/dualsaude-api/internal/infrastructure/pdf"
	"github.com/jhoicas/dualsaude-api/internal/infrastructure/spreadsheet"
	"github.com/jhoicas/dualsaude-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/dualsaude-api/internal/interfaces/http"
	"github.com/jhoicas/dualsaude-api/pkg/config"
	"github.com/jhoicas/dualsaude-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.App.StorageDriver).
		Msg("iniciando aplicación")
	if cfg.UsingDevSecret() {
		log.Warn().Msg("JWT_SECRET no definido: usando secreto de desarrollo")
	}

	ctx := context.Background()
	repos, err := storage.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento")
	}
	defer repos.Close()

	authUC := auth.NewAuthUseCase(repos.Users, repos.Companies, repos.Employees, repos.TxRunner, auth.JWTConfig{
		Secret:          cfg.JWT.Secret,
		Issuer:          cfg.JWT.Issuer,
		APIExpMinutes:   cfg.JWT.Expiration,
		PanelExpMinutes: cfg.Panel.SessionMinutes,
	}, log)

	// PDF del relatorio mensual
	pdfGenerator := infrapdf.NewMarotoReportGenerator()

	app, err := httpRouter.NewServer(httpRouter.RouterDeps{
		AuthUC:        authUC,
		CategoryUC:    finance.NewCategoryUseCase(repos.Categories),
		EntryUC:       finance.NewEntryUseCase(repos.Entries, repos.Categories),
		ReportUC:      finance.NewReportUseCase(repos.Reports, repos.Entries, repos.Companies, pdfGenerator),
		DestinationUC: finance.NewPaymentDestinationUseCase(repos.Destinations),
		ImportUC:      importer.NewImportUseCase(repos.TxRunner, spreadsheet.XLSXReader{}, log),
		CompanyUC:     usecase.NewCompanyUseCase(repos.Companies, log),
		DemoUC:        usecase.NewDemoUseCase(repos.TxRunner, log),
		Config:        cfg,
		Log:           log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("configuración del servidor HTTP")
	}

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
