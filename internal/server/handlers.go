package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/hupe1980/resnav/internal/catalog"
	"github.com/hupe1980/resnav/internal/filter"
	"github.com/hupe1980/resnav/internal/selection"
	"github.com/hupe1980/resnav/internal/urlcodec"
)

// resourcesResponse is the payload of GET /api/resources: the filtered
// list plus the decoded selection and its canonical query string, so
// clients can sync their address bar to the server's interpretation.
type resourcesResponse struct {
	Selection selection.State    `json:"selection"`
	Query     string             `json:"query"`
	Count     int                `json:"count"`
	Resources []catalog.Resource `json:"resources"`
}

// stateResponse is the payload of GET /api/state.
type stateResponse struct {
	Selection selection.State `json:"selection"`
	Query     string          `json:"query"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleThemes(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, s.Catalog().Themes())
}

func (s *Server) handleBarriers(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, s.Catalog().Barriers())
}

func (s *Server) handlePersonas(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, s.Catalog().Personas())
}

func (s *Server) handleResources(w http.ResponseWriter, r *http.Request) {
	cat := s.Catalog()

	// Decoding is best-effort and total: stale or unknown identifiers in
	// a shared URL degrade to "no selection", never to an error response.
	sel := urlcodec.Decode(r.URL.RawQuery, cat)
	visible := filter.Visible(cat, sel)

	s.writeJSON(w, r, http.StatusOK, resourcesResponse{
		Selection: sel,
		Query:     urlcodec.Encode(sel),
		Count:     len(visible),
		Resources: visible,
	})
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	sel := urlcodec.Decode(r.URL.RawQuery, s.Catalog())

	s.writeJSON(w, r, http.StatusOK, stateResponse{
		Selection: sel,
		Query:     urlcodec.Encode(sel),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encoding response",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
	}
}
