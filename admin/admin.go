// Package admin exposes the route table's registration API over HTTP so routes can be
// added and removed while the server is running.
package admin

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	hddphttp "github.com/freekieb7/hddp/http"
	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const instrumentationName = "github.com/freekieb7/hddp/admin"

var (
	ErrMissingMethod = errors.New("admin: method is required")
	ErrInvalidPath   = errors.New("admin: path must start with /")
)

type Registry interface {
	AddRoute(method, path string, response hddphttp.Response)
	RemoveRoute(path string)
	RemoveMethod(method, path string)
	Routes() []hddphttp.Route
}

type RoutePayload struct {
	Method string `json:"method"`
	Path   string `json:"path"`

	// Status takes precedence over StatusLine when both are set.
	Status     uint16            `json:"status,omitempty"`
	StatusLine string            `json:"status_line,omitempty"`
	Headers    map[string]string `json:"headers,omitempty"`
	Body       string            `json:"body"`
}

func (payload RoutePayload) Validate() error {
	if payload.Method == "" {
		return ErrMissingMethod
	}
	if !strings.HasPrefix(payload.Path, "/") {
		return ErrInvalidPath
	}

	return nil
}

func (payload RoutePayload) Response() hddphttp.Response {
	res := hddphttp.NewResponse(payload.Body)

	switch {
	case payload.Status != 0:
		res.SetStatus(payload.Status)
	case payload.StatusLine != "":
		res.SetStatusLine(payload.StatusLine)
	}

	for key, value := range payload.Headers {
		res.AddHeader(key, value)
	}

	return res
}

type Middleware func(next http.Handler) http.Handler

func RecoverMiddleware(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if recovered := recover(); recovered != nil {
					logger.ErrorContext(r.Context(), "recovered from panic", "panic", recovered, "path", r.URL.Path)
					writeError(w, r, logger, http.StatusInternalServerError, errors.New("something went wrong"))
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

type handler struct {
	registry Registry
	logger   *slog.Logger
}

// NewHandler serves GET, PUT and DELETE on /routes. A nil logger falls back to the
// OpenTelemetry slog bridge.
func NewHandler(registry Registry, logger *slog.Logger, middleware ...Middleware) http.Handler {
	if logger == nil {
		logger = otelslog.NewLogger(instrumentationName)
	}

	h := &handler{registry: registry, logger: logger}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /routes", h.list)
	mux.HandleFunc("PUT /routes", h.put)
	mux.HandleFunc("DELETE /routes", h.delete)

	var next http.Handler = mux
	for _, mw := range append([]Middleware{RecoverMiddleware(logger)}, middleware...) {
		next = mw(next)
	}

	return otelhttp.NewHandler(next, "admin")
}

func (h *handler) list(w http.ResponseWriter, r *http.Request) {
	writeJson(w, r, h.logger, http.StatusOK, h.registry.Routes())
}

func (h *handler) put(w http.ResponseWriter, r *http.Request) {
	var payload RoutePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, r, h.logger, http.StatusBadRequest, err)
		return
	}

	if err := payload.Validate(); err != nil {
		writeError(w, r, h.logger, http.StatusBadRequest, err)
		return
	}

	h.registry.AddRoute(payload.Method, payload.Path, payload.Response())
	h.logger.InfoContext(r.Context(), "route added", "method", payload.Method, "path", payload.Path)

	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) delete(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if !strings.HasPrefix(path, "/") {
		writeError(w, r, h.logger, http.StatusBadRequest, ErrInvalidPath)
		return
	}

	if method := r.URL.Query().Get("method"); method != "" {
		h.registry.RemoveMethod(method, path)
		h.logger.InfoContext(r.Context(), "route method removed", "method", method, "path", path)
	} else {
		h.registry.RemoveRoute(path)
		h.logger.InfoContext(r.Context(), "route removed", "path", path)
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeJson(w http.ResponseWriter, r *http.Request, logger *slog.Logger, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.ErrorContext(r.Context(), "encoding response failed", "path", r.URL.Path, "error", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, status int, err error) {
	writeJson(w, r, logger, status, map[string]string{"error": err.Error()})
}
