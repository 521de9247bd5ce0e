// Package web serves the interactive portfolio dashboard.
package web

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"net/url"

	"github.com/etnz/folio"
	"github.com/etnz/folio/renderer"
	"github.com/tidwall/pretty"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templatesFS embed.FS

var page = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

// Server handles the dashboard page and its JSON API for a single Session.
type Server struct {
	session *folio.Session
	log     *zap.Logger
	mux     *http.ServeMux
}

// New returns the dashboard server for session.
// A nil logger disables logging.
func New(session *folio.Session, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		session: session,
		log:     logger,
		mux:     http.NewServeMux(),
	}
	s.mux.HandleFunc("GET /{$}", s.handleIndex)
	s.mux.HandleFunc("POST /buy", s.handleBuy)
	s.mux.HandleFunc("POST /load", s.handleLoad)
	s.mux.HandleFunc("POST /save", s.handleSave)
	s.mux.HandleFunc("GET /api/dashboard", s.handleDashboard)
	s.mux.HandleFunc("GET /api/symbols", s.handleSymbols)
	s.mux.HandleFunc("GET /healthz", s.handleHealth)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.logRequests(s.mux).ServeHTTP(w, r)
}

// form is the purchase form as typed by the user.
type form struct {
	Symbol   string
	Quantity string
	Amount   string
}

type pageData struct {
	Symbols   []string
	Currency  string
	File      string
	Form      form
	Message   string
	Error     string
	Dashboard template.HTML
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	s.renderPage(w, http.StatusOK, pageData{
		Form:    form{Quantity: "1", Amount: "0"},
		Message: q.Get("msg"),
		Error:   q.Get("err"),
	})
}

func (s *Server) handleBuy(w http.ResponseWriter, r *http.Request) {
	f := form{
		Symbol:   r.PostFormValue("symbol"),
		Quantity: r.PostFormValue("quantity"),
		Amount:   r.PostFormValue("amount"),
	}
	b, err := folio.ParsePurchase(f.Symbol, f.Quantity, f.Amount, s.session.Currency())
	if err != nil {
		s.renderPage(w, http.StatusBadRequest, pageData{Form: f, Error: err.Error()})
		return
	}
	if err := s.session.Buy(b); err != nil {
		s.renderPage(w, http.StatusInternalServerError, pageData{Form: f, Error: err.Error()})
		return
	}
	redirect(w, r, "msg", fmt.Sprintf("%s have been added to the portfolio!", b))
}

func (s *Server) handleLoad(w http.ResponseWriter, r *http.Request) {
	if err := s.session.Load(); err != nil {
		redirect(w, r, "err", err.Error())
		return
	}
	redirect(w, r, "msg", fmt.Sprintf("Portfolio loaded from %s.", s.session.File()))
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	if err := s.session.Save(); err != nil {
		redirect(w, r, "err", err.Error())
		return
	}
	redirect(w, r, "msg", fmt.Sprintf("Portfolio saved to %s.", s.session.File()))
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, s.session.Dashboard())
}

func (s *Server) handleSymbols(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, s.session.Prices().Symbols())
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "ok")
}

// renderPage completes data with the current dashboard and writes the page.
func (s *Server) renderPage(w http.ResponseWriter, status int, data pageData) {
	d := s.session.Dashboard()
	data.Symbols = d.Symbols
	data.Currency = s.session.Currency()
	data.File = s.session.File()
	if data.Form.Symbol == "" && len(d.Symbols) > 0 {
		data.Form.Symbol = d.Symbols[0]
	}

	html, err := renderer.HTML(renderer.DashboardMarkdown(d))
	if err != nil {
		s.log.Error("render dashboard", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	// goldmark drops raw html from the markdown, the output is safe.
	data.Dashboard = template.HTML(html)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := page.Execute(w, data); err != nil {
		s.log.Error("render page", zap.Error(err))
	}
}

// writeJSON writes v as JSON, indented when the request has the "pretty" query parameter.
func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		s.log.Error("encode json", zap.String("path", r.URL.Path), zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if r.URL.Query().Has("pretty") {
		b = pretty.Pretty(b)
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(b)
}

// redirect sends the user back to the dashboard with a flash message in key.
func redirect(w http.ResponseWriter, r *http.Request, key, message string) {
	http.Redirect(w, r, "/?"+url.Values{key: {message}}.Encode(), http.StatusSeeOther)
}
