package main

import (
	"fmt"
	"os"

	"github.com/erraggy/commandable"
	"github.com/erraggy/commandable/cmd/commandable/commands"
)

// subcommands lists every top-level command, in usage order.
var subcommands = []string{"serve", "mcp", "openapi", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	var err error
	switch command {
	case "version", "-v", "--version":
		fmt.Printf("commandable %s\n", commandable.Version())
		fmt.Println(commandable.BuildInfo())
		return
	case "help", "-h", "--help":
		printUsage()
		return
	case "serve":
		err = commands.HandleServe(os.Args[2:])
	case "mcp":
		err = commands.HandleMCP(os.Args[2:])
	case "openapi":
		err = commands.HandleOpenAPI(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean: %s?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// suggestCommand returns the closest subcommand within edit distance 2,
// or "" when nothing is close enough.
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, name := range subcommands {
		if d := editDistance(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func printUsage() {
	fmt.Println(`commandable - Schema-validated command sets over HTTP and MCP

Usage:
  commandable <command> [flags]

Commands:
  serve      Serve the dummy command set over HTTP
  mcp        Serve the dummy command set as MCP tools over stdio
  openapi    Print the generated API document
  version    Show version information
  help       Show this help message

Run 'commandable <command> --help' for more information on a command.`)
}
