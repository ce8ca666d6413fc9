// import carga una planilla .xlsx de funcionários autorizados en el almacenamiento configurado.
//
// Uso: go run ./cmd/import ruta/planilha.xlsx
// Usa las mismas variables de entorno que la API (STORAGE_DRIVER, DATABASE_URL, ...).
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jhoicas/dualsaude-api/internal/application/importer"
	"github.com/jhoicas/dualsaude-api/internal/infrastructure/spreadsheet"
	"github.com/jhoicas/dualsaude-api/internal/infrastructure/storage"
	"github.com/jhoicas/dualsaude-api/pkg/config"
	"github.com/jhoicas/dualsaude-api/pkg/logger"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Uso: import <planilha.xlsx>")
		os.Exit(2)
	}
	path := os.Args[1]
	if !strings.EqualFold(filepath.Ext(path), ".xlsx") {
		fmt.Fprintln(os.Stderr, "Envie um arquivo .xlsx (Excel).")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuração: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "import"})
	if cfg.App.StorageDriver == config.StorageMemory {
		log.Warn().Msg("driver memory: a importação não será persistida")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir planilha: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	repos, err := storage.Open(ctx, cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Armazenamento: %v\n", err)
		os.Exit(1)
	}
	defer repos.Close()

	uc := importer.NewImportUseCase(repos.TxRunner, spreadsheet.XLSXReader{}, log)
	res, err := uc.ImportXLSX(ctx, data)
	if err != nil {
		var mc *importer.MissingColumnsError
		if errors.As(err, &mc) {
			fmt.Fprintln(os.Stderr, mc.Error())
		} else {
			fmt.Fprintf(os.Stderr, "Importação: %v\n", err)
		}
		repos.Close()
		os.Exit(1)
	}

	fmt.Printf("Empresas criadas: %d\n", res.CompaniesCreated)
	fmt.Printf("Empresas atualizadas: %d\n", res.CompaniesUpdated)
	fmt.Printf("Funcionários criados: %d\n", res.EmployeesCreated)
	fmt.Printf("Funcionários atualizados: %d\n", res.EmployeesUpdated)
	for _, e := range res.Errors {
		fmt.Println(e)
	}
}
