package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/erraggy/commandable/apidoc"
	"github.com/erraggy/commandable/interceptor"
	"github.com/erraggy/commandable/internal/cliutil"
	"github.com/erraggy/commandable/internal/config"
)

// OpenAPIFlags contains flags for the openapi command
type OpenAPIFlags struct {
	ConfigPath     string
	Output         string
	OpenAPIVersion string
}

// SetupOpenAPIFlags creates and configures a FlagSet for the openapi command.
func SetupOpenAPIFlags() (*flag.FlagSet, *OpenAPIFlags) {
	fs := flag.NewFlagSet("openapi", flag.ContinueOnError)
	flags := &OpenAPIFlags{}

	fs.StringVar(&flags.ConfigPath, "config", "", "path to a YAML configuration file")
	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.StringVar(&flags.OpenAPIVersion, "openapi-version", apidoc.DefaultOpenAPIVersion, "value of the openapi field")

	fs.Usage = func() {
		output := fs.Output()
		cliutil.Writef(output, "Usage: commandable openapi [flags]\n\n")
		cliutil.Writef(output, "Print the generated API document for the dummy command set.\n\n")
		cliutil.Writef(output, "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(output, "\nExamples:\n")
		cliutil.Writef(output, "  commandable openapi\n")
		cliutil.Writef(output, "  commandable openapi -config commandable.yaml -o openapi.yaml\n")
	}

	return fs, flags
}

// HandleOpenAPI executes the openapi command
func HandleOpenAPI(args []string) error {
	fs, flags := SetupOpenAPIFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("openapi command takes no arguments")
	}

	return RunOpenAPI(flags, os.Stdout)
}

// RunOpenAPI renders the document and writes it to flags.Output, or to
// stdout when no output path is set.
func RunOpenAPI(flags *OpenAPIFlags, stdout io.Writer) error {
	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		return err
	}

	set, err := NewDummySet(interceptor.NopLogger{})
	if err != nil {
		return err
	}

	var opts []apidoc.Option
	if flags.OpenAPIVersion != "" {
		opts = append(opts, apidoc.WithOpenAPIVersion(flags.OpenAPIVersion))
	}
	text := apidoc.New(cfg.HTTP.BaseRoute, cfg.Info(), set.Commands(), opts...).String()

	if flags.Output == "" {
		_, err := io.WriteString(stdout, text)
		return err
	}

	cleaned := filepath.Clean(flags.Output)
	if err := RejectSymlinkOutput(cleaned); err != nil {
		return err
	}
	if _, err := os.Stat(cleaned); err == nil {
		cliutil.Warnf(os.Stderr, "output file %s already exists and will be overwritten", cleaned)
	}
	if err := os.WriteFile(cleaned, []byte(text), 0o600); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	return nil
}
