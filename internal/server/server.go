// Package server exposes the widget over HTTP.
package server

import (
	"embed"
	"encoding/json"
	"html/template"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"KaspaWorth/internal/model"
)

//go:embed templates/*.html
var templateFS embed.FS

// Widget is the session the server renders and mutates.
type Widget interface {
	View() model.View
	Languages() []string
	SetLanguage(lang string) error
	SetCurrency(code string) error
}

// Server routes requests to the widget.
type Server struct {
	widget  Widget
	metrics http.Handler
	tmpl    *template.Template
}

// New builds a Server. metrics may be nil.
func New(w Widget, metrics http.Handler) (*Server, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/widget.html")
	if err != nil {
		return nil, err
	}
	return &Server{widget: w, metrics: metrics, tmpl: tmpl}, nil
}

// Router returns the chi router with all routes mounted.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if s.metrics != nil {
		r.Handle("/metrics", s.metrics)
	}

	r.Get("/", s.handleIndex)
	r.Get("/api/view", s.handleView)
	r.Post("/language", s.handleLanguage)
	r.Post("/currency", s.handleCurrency)
	return r
}

type page struct {
	View       model.View
	Languages  []string
	Currencies []model.Currency
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := page{
		View:       s.widget.View(),
		Languages:  s.widget.Languages(),
		Currencies: model.Currencies,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.Execute(w, data); err != nil {
		log.Printf("[ERROR] render page: %v", err)
	}
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.widget.View())
}

func (s *Server) handleLanguage(w http.ResponseWriter, r *http.Request) {
	s.change(w, r, s.widget.SetLanguage)
}

func (s *Server) handleCurrency(w http.ResponseWriter, r *http.Request) {
	s.change(w, r, s.widget.SetCurrency)
}

// change applies one selector value, then answers with the new view for API
// clients or a redirect back to the page for form posts.
func (s *Server) change(w http.ResponseWriter, r *http.Request, set func(string) error) {
	value := strings.TrimSpace(r.FormValue("value"))
	if err := set(value); err != nil {
		if wantsJSON(r) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if wantsJSON(r) {
		writeJSON(w, http.StatusOK, s.widget.View())
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[ERROR] encode response: %v", err)
	}
}
