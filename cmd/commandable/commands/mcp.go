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
	"github.com/erraggy/commandable/internal/cliutil"
	"github.com/erraggy/commandable/internal/config"
	"github.com/erraggy/commandable/internal/mcpserver"
	"github.com/erraggy/commandable/internal/telemetry"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// MCPFlags contains flags for the mcp command
type MCPFlags struct {
	ConfigPath string
}

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() (*flag.FlagSet, *MCPFlags) {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	flags := &MCPFlags{}

	fs.StringVar(&flags.ConfigPath, "config", "", "path to a YAML configuration file")

	fs.Usage = func() {
		output := fs.Output()
		cliutil.Writef(output, "Usage: commandable mcp [flags]\n\n")
		cliutil.Writef(output, "Serve the dummy command set as MCP tools over stdio.\n")
		cliutil.Writef(output, "Logs go to stderr; stdout carries the protocol.\n\n")
		cliutil.Writef(output, "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(output, "\nExamples:\n")
		cliutil.Writef(output, "  commandable mcp\n")
		cliutil.Writef(output, "  COMMANDABLE_LOG_LEVEL=debug commandable mcp -config commandable.yaml\n")
	}

	return fs, flags
}

// HandleMCP executes the mcp command until the client disconnects or the
// process is interrupted.
func HandleMCP(args []string) error {
	fs, flags := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("mcp command takes no arguments")
	}

	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := telemetry.Setup(ctx, cfg.Telemetry, cfg.Service.Name, commandable.Version())
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		_ = shutdown(shutdownCtx)
	}()

	server, err := NewMCPServer(cfg, os.Stderr)
	if err != nil {
		return err
	}
	return mcpserver.Run(ctx, server)
}

// NewMCPServer builds the MCP server for the dummy command set. Logs are
// written to logOut.
func NewMCPServer(cfg config.Config, logOut io.Writer) (*mcp.Server, error) {
	logger, err := NewLogger(cfg, logOut)
	if err != nil {
		return nil, err
	}
	set, err := NewDummySet(logger)
	if err != nil {
		return nil, err
	}
	impl := &mcp.Implementation{Name: "commandable", Version: commandable.Version()}
	return mcpserver.NewServer(set, impl,
		mcpserver.WithLogger(logger),
		mcpserver.WithExtraInstructions(serviceInstructions(cfg)),
	), nil
}

// serviceInstructions describes the configured service to MCP clients.
func serviceInstructions(cfg config.Config) string {
	switch {
	case cfg.Service.Name == "":
		return cfg.Service.Description
	case cfg.Service.Description == "":
		return cfg.Service.Name
	default:
		return fmt.Sprintf("%s: %s", cfg.Service.Name, cfg.Service.Description)
	}
}
