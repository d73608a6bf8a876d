package transporthttp

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"eduradarbackend/internal/chart"
	"eduradarbackend/internal/render"
)

type Server struct {
	pipeline *chart.Pipeline
	renderer *render.Renderer
	ingest   *chart.IngestSource
}

func NewServer(pipeline *chart.Pipeline, renderer *render.Renderer, ingest *chart.IngestSource) *Server {
	return &Server{
		pipeline: pipeline,
		renderer: renderer,
		ingest:   ingest,
	}
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.health)
	mux.HandleFunc("/chart", s.handleChart)
	mux.HandleFunc("/chart.svg", s.handleChartSVG)
	mux.HandleFunc("/signals", s.handleIngest)
	mux.HandleFunc("/", serveViewer)
	mux.HandleFunc("/swagger/openapi.yaml", serveOpenAPIYAML)
	mux.HandleFunc("/swagger", serveSwaggerUI)
	mux.HandleFunc("/swagger/", serveSwaggerUI)
	return mux
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleChart runs the full pipeline plus the measurement pass and returns
// the finished layout as JSON for non-SVG consumers.
func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	model, err := s.pipeline.Run(ctx)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	model.Positions = s.renderer.Finalize(s.pipeline.Engine, model)

	response := map[string]any{
		"as_of":      time.Now().UTC(),
		"generation": model.Generation,
		"signals":    model.Signals,
		"labels":     model.Labels,
		"positions":  model.Positions,
		"wedges":     model.Wedges,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		// nothing we can do; connection likely closed
	}
}

func (s *Server) handleChartSVG(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	model, err := s.pipeline.Run(ctx)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	svg := s.renderer.RenderSVG(s.pipeline.Engine, model)

	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(svg))
}

func (s *Server) handleIngest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if s.ingest == nil {
		s.writeError(w, http.StatusServiceUnavailable, "ingest disabled")
		return
	}

	var payload chart.RawRecord
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&payload); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	if chart.CollapseWhitespace(payload.Title) == "" {
		s.writeError(w, http.StatusBadRequest, "title is required")
		return
	}

	stored := s.ingest.Add(payload)

	response := map[string]any{
		"status": "accepted",
		"id":     stored.ID,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	_ = json.NewEncoder(w).Encode(response)
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
