package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates holds the parsed page templates, one per embedded file.
type Templates struct {
	set *template.Template
	log *zap.Logger
}

func NewTemplates(logger *zap.Logger) (*Templates, error) {
	set, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Templates{set: set, log: logger}, nil
}

func (t *Templates) Render(w http.ResponseWriter, name string, data interface{}) {
	var buf bytes.Buffer
	if err := t.set.ExecuteTemplate(&buf, name, data); err != nil {
		t.log.Error("template render failed", zap.String("template", name), zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// Execute renders a template into memory, for the PDF export.
func (t *Templates) Execute(name string, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := t.set.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
