// Package server exposes the coach over HTTP: a styled chat page and a
// small JSON API, with sessions identified by a browser cookie.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/liftloop/coach/internal/coach"
	"github.com/liftloop/coach/internal/config"
	"github.com/liftloop/coach/internal/history"
	"github.com/liftloop/coach/internal/markdown"
)

const sessionCookie = "coach_session"

// Server serves the chat UI and API for one coach instance.
type Server struct {
	cfg   *config.Config
	coach *coach.Coach
	page  *template.Template
}

// New creates a server around the given coach.
func New(cfg *config.Config, c *coach.Coach) *Server {
	return &Server{
		cfg:   cfg,
		coach: c,
		page:  template.Must(template.New("chat").Parse(chatPage)),
	}
}

// router builds the HTTP routing table.
func (s *Server) router() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)

	r.Get("/health", s.handleHealth)
	r.Get("/", s.handleIndex)
	r.Post("/api/chat", s.handleChat)
	r.Get("/api/history", s.handleHistory)
	r.Get("/api/stats", s.handleStats)
	r.Post("/api/reset", s.handleReset)

	return r
}

// Run starts the HTTP server and blocks until ctx is cancelled or the
// listener fails.
func (s *Server) Run(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.cfg.Server.Port)
	srv := &http.Server{Addr: addr, Handler: s.router()}

	errCh := make(chan error, 1)
	go func() {
		fmt.Printf("[Server] Listening on http://localhost%s\n", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

// session returns the request's session ID, issuing a fresh cookie on
// first visit.
func (s *Server) session(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		return c.Value
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.session(w, r)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.page.Execute(w, nil); err != nil {
		fmt.Printf("[Server] Failed to render chat page: %v\n", err)
	}
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
	HTML  string `json:"html"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	sessionID := s.session(w, r)

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	reply := s.coach.Chat(r.Context(), sessionID, req.Message)
	writeJSON(w, http.StatusOK, chatResponse{
		Reply: reply,
		HTML:  s.renderMarkdown(reply),
	})
}

type historyEntry struct {
	Role string `json:"role"`
	Text string `json:"text"`
	HTML string `json:"html,omitempty"`
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	sessionID := s.session(w, r)

	turns := s.coach.Stores().Memory.Turns(sessionID)
	entries := make([]historyEntry, 0, len(turns))
	for _, t := range turns {
		e := historyEntry{Role: t.Role, Text: t.Text}
		if t.Role == history.RoleAssistant {
			e.HTML = s.renderMarkdown(t.Text)
		}
		entries = append(entries, e)
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	sessionID := s.session(w, r)
	rec, ok := s.coach.Stores().Usage.Get(sessionID)
	if !ok {
		writeJSON(w, http.StatusOK, map[string]interface{}{"total_requests": 0})
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// handleReset is the out-of-band reset: it clears the session's memory
// and profile and rotates the cookie so the browser starts fresh.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		s.coach.Stores().Memory.Reset(c.Value)
		s.coach.Stores().Profiles.Reset(c.Value)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    uuid.NewString(),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}

func (s *Server) renderMarkdown(text string) string {
	if html := markdown.Render(text); html != "" {
		return html
	}
	return template.HTMLEscapeString(text)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		fmt.Printf("[Server] Failed to encode response: %v\n", err)
	}
}
