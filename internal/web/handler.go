// Package web serves the HTML form front end: an entry form with repeated
// name and amount fields and a results page.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/splitbill/internal/metrics"
	"github.com/mmynk/splitbill/internal/report"
)

//go:embed templates/*.html
var templateFS embed.FS

// defaultRows is how many blank participant rows the form starts with.
const defaultRows = 3

// Handler renders the form and the calculation results.
type Handler struct {
	currency string
	index    *template.Template
	result   *template.Template
}

// NewHandler parses the embedded templates. currency is shown in front of
// every amount on the results page.
func NewHandler(currency string) (*Handler, error) {
	funcs := template.FuncMap{
		"money":  report.Money,
		"signed": report.Signed,
	}

	index, err := template.New("index.html").Funcs(funcs).ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse index template: %w", err)
	}
	result, err := template.New("result.html").Funcs(funcs).ParseFS(templateFS, "templates/result.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse result template: %w", err)
	}

	return &Handler{currency: currency, index: index, result: result}, nil
}

// Register mounts the form routes on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.home)
	mux.HandleFunc("POST /calculate", h.calculate)
}

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	h.render(w, h.index, struct{ Rows []struct{} }{Rows: make([]struct{}, defaultRows)})
}

// calculate reads the repeated name and amount fields and renders the
// settlement. Names are used as submitted; only the amounts are parsed.
func (h *Handler) calculate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.reject(w, "bad_form", fmt.Sprintf("invalid form: %v", err))
		return
	}

	names := r.PostForm["name"]
	fields := r.PostForm["amount"]
	if len(names) != len(fields) {
		h.reject(w, "field_mismatch", fmt.Sprintf("got %d names but %d amounts", len(names), len(fields)))
		return
	}

	amounts := make([]decimal.Decimal, len(fields))
	for i, field := range fields {
		amount, err := decimal.NewFromString(strings.TrimSpace(field))
		if err != nil {
			h.reject(w, "invalid_amount", fmt.Sprintf("amount %d is not a number: %q", i+1, field))
			return
		}
		amounts[i] = amount
	}

	start := time.Now()
	rep := report.New(names, amounts)
	metrics.ObserveSettlement(metrics.SourceWeb, rep.Participants(), len(rep.Transactions), time.Since(start))
	slog.Debug("Form calculated",
		"participants", rep.Participants(),
		"total", rep.Total,
		"transactions", len(rep.Transactions),
	)

	h.render(w, h.result, struct {
		Report   *report.Report
		Rows     []report.Row
		Currency string
	}{
		Report:   rep,
		Rows:     rep.Rows(),
		Currency: h.currency,
	})
}

func (h *Handler) reject(w http.ResponseWriter, reason, msg string) {
	slog.Warn("Form rejected", "reason", reason, "error", msg)
	metrics.IncRejected(metrics.SourceWeb, reason)
	http.Error(w, msg, http.StatusBadRequest)
}

func (h *Handler) render(w http.ResponseWriter, tmpl *template.Template, data any) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		slog.Error("Template render failed", "template", tmpl.Name(), "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
