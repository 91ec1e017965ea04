package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/erraggy/schemacase"
	"github.com/erraggy/schemacase/cmd/schemacase/commands"
	"github.com/erraggy/schemacase/internal/cliutil"
)

var commandNames = []string{"migrate", "mcp", "version", "help"}

func main() {
	args := os.Args[1:]
	if len(args) == 0 || (strings.HasPrefix(args[0], "-") && !isGlobalFlag(args[0])) {
		exitOnError(commands.HandleMigrate(args))
		return
	}

	switch command := args[0]; command {
	case "version", "--version":
		fmt.Printf("schemacase %s\n\n%s", schemacase.Version(), schemacase.BuildInfo())
	case "help", "-h", "--help":
		printUsage()
	case "migrate":
		exitOnError(commands.HandleMigrate(args[1:]))
	case "mcp":
		exitOnError(commands.HandleMCP(args[1:]))
	default:
		cliutil.Writef(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			cliutil.Writef(os.Stderr, "Did you mean: %s?\n", suggestion)
		}
		cliutil.Writef(os.Stderr, "\n")
		printUsage()
		os.Exit(1)
	}
}

func isGlobalFlag(arg string) bool {
	switch arg {
	case "-h", "--help", "--version":
		return true
	}
	return false
}

func exitOnError(err error) {
	if err != nil {
		cliutil.WriteError(os.Stderr, err)
		os.Exit(1)
	}
}

func printUsage() {
	cliutil.Writef(os.Stderr, `schemacase - Prisma schema casing migrator

Usage:
  schemacase [migrate] [flags]
  schemacase <command> [flags]

Commands:
  migrate     Rename schema identifiers to a casing convention (default)
  mcp         Serve schemacase tools over the Model Context Protocol
  version     Show version information
  help        Show this help message

Run 'schemacase migrate --help' for the migrate flags.
`)
}

// suggestCommand returns the closest command name within edit distance 2,
// or "" when none is close enough.
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, name := range commandNames {
		if d := levenshtein(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

func levenshtein(a, b string) int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}
