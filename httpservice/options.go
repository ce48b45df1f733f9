package httpservice

import (
	"time"

	"github.com/erraggy/commandable/apidoc"
	"github.com/erraggy/commandable/interceptor"
	"go.opentelemetry.io/otel/propagation"
)

// DefaultDocumentRoute is the route segment serving the API document.
const DefaultDocumentRoute = "swagger"

// DefaultShutdownTimeout bounds graceful shutdown in ListenAndServe.
const DefaultShutdownTimeout = 10 * time.Second

// Option configures a Service.
type Option func(*serviceConfig)

// RequestLogger receives one call per served request.
type RequestLogger func(method, path string, status int, duration time.Duration)

type serviceConfig struct {
	info            apidoc.Info
	docOptions      []apidoc.Option
	docEnabled      bool
	docAuto         bool
	staticDoc       string
	docRoute        string
	logger          interceptor.Logger
	recovery        bool
	requestLogger   RequestLogger
	shutdownTimeout time.Duration
	propagator      propagation.TextMapPropagator
}

func defaultServiceConfig() serviceConfig {
	return serviceConfig{
		info:            apidoc.DefaultInfo(),
		docAuto:         true,
		docRoute:        DefaultDocumentRoute,
		logger:          interceptor.NopLogger{},
		shutdownTimeout: DefaultShutdownTimeout,
	}
}

// WithInfo sets the document header. Empty title, description and version
// fall back to the apidoc defaults.
func WithInfo(info apidoc.Info) Option {
	return func(cfg *serviceConfig) {
		cfg.info = info.WithDefaults()
	}
}

// WithDocumentOptions passes options through to the document synthesizer.
func WithDocumentOptions(opts ...apidoc.Option) Option {
	return func(cfg *serviceConfig) {
		cfg.docOptions = append(cfg.docOptions, opts...)
	}
}

// WithDocument turns the document route on or off. Default: off.
func WithDocument(enabled bool) Option {
	return func(cfg *serviceConfig) {
		cfg.docEnabled = enabled
	}
}

// WithAutoDocument chooses between the generated document (true, the default)
// and the static one set with WithStaticDocument.
func WithAutoDocument(auto bool) Option {
	return func(cfg *serviceConfig) {
		cfg.docAuto = auto
	}
}

// WithStaticDocument sets the document served when auto-generation is off.
func WithStaticDocument(text string) Option {
	return func(cfg *serviceConfig) {
		cfg.staticDoc = text
	}
}

// WithDocumentRoute sets the last path segment of the document route.
// Default: "swagger".
func WithDocumentRoute(route string) Option {
	return func(cfg *serviceConfig) {
		if route != "" {
			cfg.docRoute = route
		}
	}
}

// WithLogger sets the logger used for server lifecycle, failed requests and
// recovered panics.
func WithLogger(logger interceptor.Logger) Option {
	return func(cfg *serviceConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithRecovery turns handler panics into 500 responses.
func WithRecovery() Option {
	return func(cfg *serviceConfig) {
		cfg.recovery = true
	}
}

// WithRequestLogging reports every request to logger.
func WithRequestLogging(logger RequestLogger) Option {
	return func(cfg *serviceConfig) {
		cfg.requestLogger = logger
	}
}

// WithShutdownTimeout bounds how long ListenAndServe waits for in-flight
// requests once its context is done.
func WithShutdownTimeout(d time.Duration) Option {
	return func(cfg *serviceConfig) {
		if d > 0 {
			cfg.shutdownTimeout = d
		}
	}
}

// WithPropagator sets how trace context is read from request headers.
// Default: the global propagator at request time.
func WithPropagator(p propagation.TextMapPropagator) Option {
	return func(cfg *serviceConfig) {
		cfg.propagator = p
	}
}
