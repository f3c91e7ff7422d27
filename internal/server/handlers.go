package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/ddo-deck/internal/diagrams"
	"github.com/ziadkadry99/ddo-deck/internal/render"
)

// stressRequest is the JSON body of the stress update endpoint. Either
// field may be omitted.
type stressRequest struct {
	Score *float64 `json:"score,omitempty"`
	Mode  string   `json:"mode,omitempty"`
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	page, err := s.currentBuilder().Page()
	if err != nil {
		s.log.Error(err, "building page")
		http.Error(w, "building page failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}

func asset(name string, data []byte) http.HandlerFunc {
	contentType := "text/plain; charset=utf-8"
	switch {
	case strings.HasSuffix(name, ".css"):
		contentType = "text/css; charset=utf-8"
	case strings.HasSuffix(name, ".js"):
		contentType = "text/javascript; charset=utf-8"
	}
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Write(data)
	}
}

func (s *Server) handleContexts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.stress.Snapshot())
}

func (s *Server) handleContext(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	c, ok := s.stress.Get(name)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown context: " + name})
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// handleStress is the external score hook. The model is shared, so an
// accepted update is applied once and every live session then re-renders
// its stress grid from it.
func (s *Server) handleStress(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var req stressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.Score == nil && req.Mode == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "score or mode is required"})
		return
	}

	if !s.stress.Update(name, req.Score, req.Mode) {
		s.log.V(1).Info("ignored: unknown stress context", "context", name)
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown context: " + name})
		return
	}
	s.live.refresh(r.Context())

	c, _ := s.stress.Get(name)
	s.log.Info("context stress updated", "context", name, "score", c.Score, "mode", c.Mode)
	writeJSON(w, http.StatusOK, c)
}

// handleDiagram serves one diagram as a standalone svg or as mermaid source,
// selected by the file extension.
func (s *Server) handleDiagram(w http.ResponseWriter, r *http.Request) {
	file := chi.URLParam(r, "file")
	b := s.currentBuilder()

	switch {
	case strings.HasSuffix(file, ".svg"):
		out, err := b.Renderer().Standalone(strings.TrimSuffix(file, ".svg"))
		if errors.Is(err, render.ErrUnknownDiagram) {
			http.NotFound(w, r)
			return
		}
		if err != nil {
			s.log.Error(err, "rendering diagram", "file", file)
			http.Error(w, "rendering failed", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "image/svg+xml")
		w.Write(out)
	case strings.HasSuffix(file, ".mmd"):
		d, ok := b.Renderer().Catalog().Diagram(strings.TrimSuffix(file, ".mmd"))
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte(diagrams.Mermaid(d)))
	default:
		http.NotFound(w, r)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
