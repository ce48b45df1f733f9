package httpservice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"

	"github.com/erraggy/commandable/apidoc"
	"github.com/erraggy/commandable/command"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

// Request metadata names.
const (
	CorrelationIDParam  = "correlation_id"
	CorrelationIDHeader = "X-Correlation-ID"
)

// maxBodyBytes caps the size of a command request body.
const maxBodyBytes = 10 << 20

// Service serves one command set under a base route.
//
// Concurrency: a Service is safe for concurrent use once built. The command
// set must not be modified after New.
type Service struct {
	baseRoute string
	set       *command.Set
	cfg       serviceConfig
	handler   http.Handler
}

// New creates a Service for set under baseRoute. Leading and trailing slashes
// of baseRoute are ignored.
func New(baseRoute string, set *command.Set, opts ...Option) *Service {
	cfg := defaultServiceConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if set == nil {
		set = command.NewSet()
	}

	s := &Service{
		baseRoute: strings.Trim(baseRoute, "/"),
		set:       set,
		cfg:       cfg,
	}
	s.handler = s.buildHandler()
	return s
}

// Handler returns the http.Handler serving every route of the service.
func (s *Service) Handler() http.Handler {
	return s.handler
}

// BaseRoute returns the normalized base route, without slashes.
func (s *Service) BaseRoute() string {
	return s.baseRoute
}

// Document returns the text served at the document route.
func (s *Service) Document() string {
	if !s.cfg.docAuto {
		return s.cfg.staticDoc
	}
	return apidoc.New(s.baseRoute, s.cfg.info, s.set.Commands(), s.cfg.docOptions...).String()
}

// DocumentPath returns the URL path of the document route.
func (s *Service) DocumentPath() string {
	return s.prefix() + s.cfg.docRoute
}

// ListenAndServe serves on addr until ctx is done, then shuts down
// gracefully. It returns nil after a clean shutdown.
func (s *Service) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("httpservice: listen on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is like ListenAndServe on an existing listener.
func (s *Service) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:     s.handler,
		BaseContext: func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	errCh := make(chan error, 1)
	go func() {
		s.cfg.logger.Info("http service listening", "addr", ln.Addr().String(), "base_route", s.baseRoute)
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("httpservice: serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.shutdownTimeout)
	defer cancel()
	s.cfg.logger.Info("http service shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("httpservice: shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("httpservice: serve: %w", err)
	}
	return nil
}

func (s *Service) prefix() string {
	if s.baseRoute == "" {
		return "/"
	}
	return "/" + s.baseRoute + "/"
}

func (s *Service) buildHandler() http.Handler {
	mux := http.NewServeMux()
	prefix := s.prefix()

	if s.cfg.docEnabled {
		mux.HandleFunc("GET "+s.DocumentPath(), s.serveDocument)
	}
	mux.HandleFunc("POST "+prefix+"{name}", s.serveCommand)

	var handler http.Handler = mux
	if s.cfg.recovery {
		handler = recoveryMiddleware(s.cfg.logger)(handler)
	}
	if s.cfg.requestLogger != nil {
		handler = loggingMiddleware(s.cfg.requestLogger)(handler)
	}
	return handler
}

func (s *Service) serveDocument(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", contentTypeYAML)
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, s.Document())
}

func (s *Service) serveCommand(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	args, err := decodeArgs(w, r)
	if err != nil {
		_ = writeError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	propagator := s.cfg.propagator
	if propagator == nil {
		propagator = otel.GetTextMapPropagator()
	}
	ctx := propagator.Extract(r.Context(), propagation.HeaderCarrier(r.Header))
	result, err := s.set.Execute(ctx, name, correlationID(r), args)
	if err != nil {
		status := StatusFor(err)
		if status >= http.StatusInternalServerError {
			s.cfg.logger.Error("command failed", "command", name, "status", status, "error", err)
		}
		_ = writeError(w, status, err.Error(), errorDetails(err))
		return
	}

	if err := writeResult(w, result); err != nil {
		s.cfg.logger.Error("failed to write response", "command", name, "error", err)
	}
}

func correlationID(r *http.Request) string {
	if id := r.URL.Query().Get(CorrelationIDParam); id != "" {
		return id
	}
	return r.Header.Get(CorrelationIDHeader)
}

// decodeArgs reads the request body as a JSON object. An empty body yields
// nil arguments.
func decodeArgs(w http.ResponseWriter, r *http.Request) (command.Parameters, error) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid JSON body: %w", err)
	}
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case map[string]any:
		return command.Parameters(v), nil
	default:
		return nil, errors.New("request body must be a JSON object")
	}
}
