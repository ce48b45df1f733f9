// Package config loads the commandable CLI configuration.
//
// Values are layered: built-in defaults, then an optional YAML file, then
// COMMANDABLE_* environment variables. A later layer only overrides the
// values it sets.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/erraggy/commandable/apidoc"
	"github.com/erraggy/commandable/cmderrors"
	"go.yaml.in/yaml/v4"
)

// Config is the full CLI configuration.
type Config struct {
	Service   Service   `yaml:"service"`
	HTTP      HTTP      `yaml:"http"`
	Swagger   Swagger   `yaml:"swagger"`
	Log       Log       `yaml:"log"`
	Telemetry Telemetry `yaml:"telemetry"`
}

// Service is the metadata written to the API document header.
type Service struct {
	Name           string  `yaml:"name"             env:"COMMANDABLE_SERVICE_NAME"`
	Description    string  `yaml:"description"      env:"COMMANDABLE_SERVICE_DESCRIPTION"`
	Version        string  `yaml:"version"          env:"COMMANDABLE_SERVICE_VERSION"`
	TermsOfService string  `yaml:"terms_of_service" env:"COMMANDABLE_SERVICE_TERMS_OF_SERVICE"`
	Contact        Contact `yaml:"contact"`
	License        License `yaml:"license"`
}

// Contact identifies the service maintainers.
type Contact struct {
	Name  string `yaml:"name"  env:"COMMANDABLE_CONTACT_NAME"`
	URL   string `yaml:"url"   env:"COMMANDABLE_CONTACT_URL"`
	Email string `yaml:"email" env:"COMMANDABLE_CONTACT_EMAIL"`
}

// License names the service license.
type License struct {
	Name string `yaml:"name" env:"COMMANDABLE_LICENSE_NAME"`
	URL  string `yaml:"url"  env:"COMMANDABLE_LICENSE_URL"`
}

// HTTP configures the HTTP transport.
type HTTP struct {
	Addr            string        `yaml:"addr"             env:"COMMANDABLE_HTTP_ADDR"`
	BaseRoute       string        `yaml:"base_route"       env:"COMMANDABLE_HTTP_BASE_ROUTE"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"COMMANDABLE_HTTP_SHUTDOWN_TIMEOUT"`
}

// Swagger configures the API document route.
type Swagger struct {
	// Enable serves the document at all
	Enable bool `yaml:"enable" env:"COMMANDABLE_SWAGGER_ENABLE"`
	// Auto generates the document from the commands; otherwise File is served
	Auto bool `yaml:"auto" env:"COMMANDABLE_SWAGGER_AUTO"`
	// Route is the last path segment of the document route
	Route string `yaml:"route" env:"COMMANDABLE_SWAGGER_ROUTE"`
	// File is the static document served when Auto is false
	File string `yaml:"file" env:"COMMANDABLE_SWAGGER_FILE"`
}

// Log configures structured logging.
type Log struct {
	Level  string `yaml:"level"  env:"COMMANDABLE_LOG_LEVEL"`
	Format string `yaml:"format" env:"COMMANDABLE_LOG_FORMAT"`
}

// Telemetry configures OpenTelemetry trace export.
type Telemetry struct {
	Enabled  bool   `yaml:"enabled"  env:"COMMANDABLE_TELEMETRY_ENABLED"`
	Endpoint string `yaml:"endpoint" env:"COMMANDABLE_TELEMETRY_ENDPOINT"`
}

// Log formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Service: Service{
			Name:        apidoc.DefaultTitle,
			Description: apidoc.DefaultDescription,
			Version:     apidoc.DefaultInfoVersion,
		},
		HTTP: HTTP{
			Addr:            ":8080",
			BaseRoute:       "dummy",
			ShutdownTimeout: 10 * time.Second,
		},
		Swagger: Swagger{
			Auto:  true,
			Route: "swagger",
		},
		Log: Log{
			Level:  "info",
			Format: FormatText,
		},
		Telemetry: Telemetry{
			Endpoint: "http://localhost:4318",
		},
	}
}

// Load builds the configuration from defaults, the YAML file at path (when
// path is not empty) and the environment, then validates it.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := Decode(data, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Decode overlays YAML data onto cfg. Keys absent from data keep their
// current values.
func Decode(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	return nil
}

// ParseEnv overlays environment variables onto target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks values that cannot be fixed by a default.
func (c Config) Validate() error {
	if strings.Trim(c.HTTP.BaseRoute, "/") == "" {
		return &cmderrors.ConfigError{Option: "http.base_route", Message: "must not be empty"}
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	switch c.Log.Format {
	case FormatText, FormatJSON:
	default:
		return &cmderrors.ConfigError{Option: "log.format", Value: c.Log.Format, Message: "must be text or json"}
	}
	if c.Swagger.Enable && !c.Swagger.Auto && c.Swagger.File == "" {
		return &cmderrors.ConfigError{Option: "swagger.file", Message: "required when swagger.auto is false"}
	}
	if c.Telemetry.Enabled && c.Telemetry.Endpoint == "" {
		return &cmderrors.ConfigError{Option: "telemetry.endpoint", Message: "required when telemetry is enabled"}
	}
	return nil
}

// LogLevel parses Log.Level.
func (c Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, &cmderrors.ConfigError{Option: "log.level", Value: c.Log.Level, Message: "unknown level", Cause: err}
	}
	return level, nil
}

// Info returns the document header described by Service.
func (c Config) Info() apidoc.Info {
	s := c.Service
	return apidoc.Info{
		Title:          s.Name,
		Description:    s.Description,
		Version:        s.Version,
		TermsOfService: s.TermsOfService,
		Contact:        apidoc.Contact{Name: s.Contact.Name, URL: s.Contact.URL, Email: s.Contact.Email},
		License:        apidoc.License{Name: s.License.Name, URL: s.License.URL},
	}.WithDefaults()
}

// StaticDocument reads the document served when auto-generation is off.
// It returns an empty string when auto-generation is on.
func (c Config) StaticDocument() (string, error) {
	if c.Swagger.Auto || c.Swagger.File == "" {
		return "", nil
	}
	data, err := os.ReadFile(c.Swagger.File)
	if err != nil {
		return "", &cmderrors.ConfigError{Option: "swagger.file", Value: c.Swagger.File, Message: "cannot read", Cause: err}
	}
	return string(data), nil
}
