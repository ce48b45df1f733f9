// Package mcpserver exposes a command set as MCP (Model Context Protocol)
// tools, one tool per command, served over stdio by the commandable CLI.
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/erraggy/commandable/command"
	"github.com/erraggy/commandable/interceptor"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CorrelationIDArgument is the tool argument read as the correlation id.
const CorrelationIDArgument = "correlation_id"

const defaultInstructions = `commandable MCP server: every tool runs one command of the served command set.

Arguments are validated against the command schema before the command runs; a validation failure lists every offending property path. Pass "correlation_id" as a string argument to tag a call for tracing.`

// Option configures the server built by NewServer.
type Option func(*serverConfig)

type serverConfig struct {
	instructions string
	extra        []string
	logger       interceptor.Logger
	description  func(*command.Command) string
}

// WithInstructions replaces the instructions sent to clients on initialize.
func WithInstructions(text string) Option {
	return func(cfg *serverConfig) {
		cfg.instructions = text
	}
}

// WithExtraInstructions appends a paragraph to the instructions, keeping the
// default text or whatever WithInstructions set. Blank text is ignored.
func WithExtraInstructions(text string) Option {
	return func(cfg *serverConfig) {
		if text = strings.TrimSpace(text); text != "" {
			cfg.extra = append(cfg.extra, text)
		}
	}
}

// WithLogger logs failed tool calls.
func WithLogger(logger interceptor.Logger) Option {
	return func(cfg *serverConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithDescriptions sets how tool descriptions are derived from commands.
func WithDescriptions(fn func(*command.Command) string) Option {
	return func(cfg *serverConfig) {
		if fn != nil {
			cfg.description = fn
		}
	}
}

// NewServer creates an MCP server with one tool per command of set, in set
// order.
func NewServer(set *command.Set, impl *mcp.Implementation, opts ...Option) *mcp.Server {
	cfg := serverConfig{
		instructions: defaultInstructions,
		logger:       interceptor.NopLogger{},
		description:  defaultDescription,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	server := mcp.NewServer(impl, &mcp.ServerOptions{Instructions: cfg.instructionText()})
	registerCommands(server, set, cfg)
	return server
}

func (cfg serverConfig) instructionText() string {
	parts := make([]string, 0, len(cfg.extra)+1)
	if cfg.instructions != "" {
		parts = append(parts, cfg.instructions)
	}
	parts = append(parts, cfg.extra...)
	return strings.Join(parts, "\n\n")
}

// Run serves server over stdio until the client disconnects or ctx is done.
func Run(ctx context.Context, server *mcp.Server) error {
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerCommands(server *mcp.Server, set *command.Set, cfg serverConfig) {
	for _, c := range set.Commands() {
		server.AddTool(&mcp.Tool{
			Name:        c.Name(),
			Title:       toolTitle(c.Name()),
			Description: cfg.description(c),
			InputSchema: InputSchema(c.Schema()),
		}, handleCommand(set, c.Name(), cfg.logger))
	}
}

func handleCommand(set *command.Set, name string, logger interceptor.Logger) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var raw json.RawMessage
		if req.Params != nil {
			raw = req.Params.Arguments
		}
		args, err := decodeArguments(raw)
		if err != nil {
			return errResult(err), nil
		}

		correlationID, _ := args[CorrelationIDArgument].(string)
		result, err := set.Execute(ctx, name, correlationID, args)
		if err != nil {
			logger.Warn("tool call failed", "tool", name, "correlation_id", correlationID, "error", err)
			return errResult(err), nil
		}

		data, err := json.Marshal(result)
		if err != nil {
			return errResult(fmt.Errorf("encode result: %w", err)), nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
		}, nil
	}
}

// decodeArguments turns raw tool arguments into Parameters. Absent or null
// arguments yield nil.
func decodeArguments(raw json.RawMessage) (command.Parameters, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	switch m := v.(type) {
	case nil:
		return nil, nil
	case map[string]any:
		return command.Parameters(m), nil
	default:
		return nil, errors.New("arguments must be a JSON object")
	}
}

var titleCaser = cases.Title(language.English)

// toolTitle turns "get_dummy_by_id" into "Get Dummy By Id".
func toolTitle(name string) string {
	return titleCaser.String(strings.NewReplacer("_", " ", "-", " ").Replace(name))
}

func defaultDescription(c *command.Command) string {
	if c.Schema() == nil {
		return fmt.Sprintf("Run the %s command. Arguments are passed through unchecked.", c.Name())
	}
	return fmt.Sprintf("Run the %s command.", c.Name())
}

// pathPattern matches absolute filesystem paths in error messages.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
