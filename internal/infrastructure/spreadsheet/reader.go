// Package spreadsheet lee planillas .xlsx con excelize.
package spreadsheet

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ErrNoSheet la planilla no tiene hojas.
var ErrNoSheet = errors.New("planilha sem abas")

// XLSXReader adapta ReadRows al puerto del importador.
type XLSXReader struct{}

// ReadRows ver la función ReadRows del paquete.
func (XLSXReader) ReadRows(data []byte) ([][]string, error) { return ReadRows(data) }

// ReadRows devuelve todas las filas de la hoja activa (la primera si no hay activa).
// Los valores se leen crudos: un CPF numérico no pasa por el formato de celda.
func ReadRows(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("abrir xlsx: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	if sheet == "" {
		return nil, ErrNoSheet
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("ler aba %s: %w", sheet, err)
	}
	return rows, nil
}
