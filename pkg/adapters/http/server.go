package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/schema"
	"github.com/aretw0/automata/pkg/service"
	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

// maxBodyBytes bounds the size of a submitted definition.
const maxBodyBytes = 1 << 20

// Converter is the conversion core seen by the HTTP adapter.
type Converter interface {
	Convert(ctx context.Context, req service.Request) (*service.Result, error)
	Get(ctx context.Context, key string) (*schema.Definition, error)
}

// Server exposes a Converter over HTTP.
type Server struct {
	Converter Converter
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

// NewHandler creates the HTTP handler. metrics may be nil.
//
//	POST /convert[?dead_state=true]  body: NFA definition (JSON, or YAML by Content-Type)
//	GET  /dfa/{key}[?format=yaml]    a previously converted DFA
//	GET  /healthz
//	GET  /info                       build and API versions
//	GET  /openapi.yaml, /swagger     API description
//	GET  /metrics                    when metrics is set
func NewHandler(conv Converter, metrics http.Handler) http.Handler {
	server := &Server{Converter: conv}
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/info", server.GetInfo)
	r.Get("/openapi.yaml", serveOpenAPI)
	r.Get("/swagger", serveSwagger)
	if metrics != nil {
		r.Handle("/metrics", metrics)
	}
	r.Post("/convert", server.Convert)
	r.Get("/dfa/{key}", server.GetDFA)

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Convert handles POST /convert.
func (s *Server) Convert(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, err)
		return
	}

	format := schema.FormatJSON
	if strings.Contains(r.Header.Get("Content-Type"), "yaml") {
		format = schema.FormatYAML
	}
	def, err := schema.Parse(data, format)
	if err != nil {
		slog.Warn("Convert: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, err)
		return
	}

	req := service.Request{Definition: def}
	if err := runtime.BindQueryParameter("form", true, false, "dead_state", r.URL.Query(), &req.DeadState); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	res, err := s.Converter.Convert(r.Context(), req)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// GetDFA handles GET /dfa/{key}.
func (s *Server) GetDFA(w http.ResponseWriter, r *http.Request) {
	var key string
	err := runtime.BindStyledParameterWithOptions("simple", "key", chi.URLParam(r, "key"), &key,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true})
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var format string
	if err := runtime.BindQueryParameter("form", true, false, "format", r.URL.Query(), &format); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	def, err := s.Converter.Get(r.Context(), key)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	if format == schema.FormatYAML {
		data, err := schema.Marshal(*def, schema.FormatYAML)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(data)
		return
	}
	writeJSON(w, http.StatusOK, def)
}

func statusFor(err error) int {
	var aggr *schema.AggregateError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &aggr),
		errors.Is(err, domain.ErrStateLimit),
		errors.Is(err, domain.ErrNoStartState),
		errors.Is(err, domain.ErrUnknownState),
		errors.Is(err, domain.ErrInvalidStateName):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		slog.Error("request failed", "error", err)
	}
	resp := ErrorResponse{Error: err.Error()}
	for _, e := range schema.ValidationErrors(err) {
		resp.Details = append(resp.Details, e.Error())
	}
	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}
