package http

import (
	"embed"
	"io/fs"
	nethttp "net/http"
	"time"

	"github.com/gofiber/template/html/v2"

	"github.com/jhoicas/dualsaude-api/internal/application/dto"
	"github.com/jhoicas/dualsaude-api/pkg/money"
)

//go:embed views
var viewsFS embed.FS

// NewViewsEngine carga las vistas embebidas del painel con los helpers de formato.
func NewViewsEngine() *html.Engine {
	sub, err := fs.Sub(viewsFS, "views")
	if err != nil {
		panic(err)
	}
	engine := html.NewFileSystem(nethttp.FS(sub), ".html")
	engine.AddFunc("brl", money.FormatBRL)
	engine.AddFunc("date", formatDate)
	engine.AddFunc("isodate", func(t time.Time) string { return t.Format(dto.DateLayout) })
	return engine
}

// formatDate acepta time.Time o *time.Time; nil o cero se muestran como "-".
func formatDate(v any) string {
	var t time.Time
	switch d := v.(type) {
	case time.Time:
		t = d
	case *time.Time:
		if d == nil {
			return "-"
		}
		t = *d
	default:
		return "-"
	}
	if t.IsZero() {
		return "-"
	}
	return t.Format("02/01/2006")
}
