package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/erraggy/commandable"
	"github.com/erraggy/commandable/httpservice"
	"github.com/erraggy/commandable/internal/cliutil"
	"github.com/erraggy/commandable/internal/config"
	"github.com/erraggy/commandable/internal/telemetry"
)

// ServeFlags contains flags for the serve command
type ServeFlags struct {
	ConfigPath string
	Addr       string
}

// SetupServeFlags creates and configures a FlagSet for the serve command.
func SetupServeFlags() (*flag.FlagSet, *ServeFlags) {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	flags := &ServeFlags{}

	fs.StringVar(&flags.ConfigPath, "config", "", "path to a YAML configuration file")
	fs.StringVar(&flags.Addr, "addr", "", "listen address (overrides http.addr)")

	fs.Usage = func() {
		output := fs.Output()
		cliutil.Writef(output, "Usage: commandable serve [flags]\n\n")
		cliutil.Writef(output, "Serve the dummy command set over HTTP.\n\n")
		cliutil.Writef(output, "Flags:\n")
		fs.PrintDefaults()
		cliutil.Lines(output,
			"",
			"Routes:",
			"  POST /<base_route>/<command>   run a command with a JSON object body",
			"  GET  /<base_route>/swagger     the API document (when swagger.enable is set)",
			"",
			"Environment:",
			"  COMMANDABLE_* variables override the configuration file.",
			"",
			"Examples:",
			"  commandable serve",
			"  commandable serve -config commandable.yaml -addr :9090",
		)
	}

	return fs, flags
}

// HandleServe executes the serve command until SIGINT or SIGTERM.
func HandleServe(args []string) error {
	fs, flags := SetupServeFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("serve command takes no arguments")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return RunServe(ctx, flags, os.Stderr)
}

// RunServe loads the configuration, then serves until ctx is done.
// Logs are written to logOut.
func RunServe(ctx context.Context, flags *ServeFlags, logOut io.Writer) error {
	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		return err
	}
	if flags.Addr != "" {
		cfg.HTTP.Addr = flags.Addr
	}

	svc, shutdown, err := NewService(ctx, cfg, logOut)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		_ = shutdown(shutdownCtx)
	}()

	return svc.ListenAndServe(ctx, cfg.HTTP.Addr)
}

// NewService wires telemetry, logging and the dummy command set into an
// HTTP service configured by cfg. The returned shutdown flushes telemetry.
func NewService(ctx context.Context, cfg config.Config, logOut io.Writer) (*httpservice.Service, telemetry.ShutdownFunc, error) {
	logger, err := NewLogger(cfg, logOut)
	if err != nil {
		return nil, nil, err
	}
	static, err := cfg.StaticDocument()
	if err != nil {
		return nil, nil, err
	}

	shutdown, err := telemetry.Setup(ctx, cfg.Telemetry, cfg.Service.Name, commandable.Version())
	if err != nil {
		return nil, nil, err
	}

	set, err := NewDummySet(logger)
	if err != nil {
		_ = shutdown(ctx)
		return nil, nil, err
	}

	svc := httpservice.New(cfg.HTTP.BaseRoute, set,
		httpservice.WithInfo(cfg.Info()),
		httpservice.WithDocument(cfg.Swagger.Enable),
		httpservice.WithAutoDocument(cfg.Swagger.Auto),
		httpservice.WithStaticDocument(static),
		httpservice.WithDocumentRoute(cfg.Swagger.Route),
		httpservice.WithLogger(logger),
		httpservice.WithRecovery(),
		httpservice.WithRequestLogging(func(method, path string, status int, duration time.Duration) {
			logger.Debug("http request", "method", method, "path", path, "status", status, "duration", duration)
		}),
		httpservice.WithShutdownTimeout(cfg.HTTP.ShutdownTimeout),
	)
	return svc, shutdown, nil
}
