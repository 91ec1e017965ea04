package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/schemacase/internal/cliutil"
	"github.com/erraggy/schemacase/internal/mcpserver"
)

// SetupMCPFlags creates the FlagSet for the mcp command. It has no flags of
// its own; the server is configured through SCHEMACASE_* environment variables.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: schemacase mcp\n\n")
		cliutil.Writef(fs.Output(), "Serve the migrate, resolve_convention and format tools over the\n")
		cliutil.Writef(fs.Output(), "Model Context Protocol on stdin/stdout.\n\n")
		cliutil.Writef(fs.Output(), "Environment:\n")
		cliutil.Writef(fs.Output(), "  SCHEMACASE_CONFIG_FILE       convention config used when a call gives none\n")
		cliutil.Writef(fs.Output(), "  SCHEMACASE_PLURALIZE         pluralize list field names by default\n")
		cliutil.Writef(fs.Output(), "  SCHEMACASE_USES_NEXT_AUTH    keep NextAuth.js adapter models untouched by default\n")
		cliutil.Writef(fs.Output(), "  SCHEMACASE_FORMAT            align migrated schemas (default true)\n")
		cliutil.Writef(fs.Output(), "  SCHEMACASE_CHANGE_LIMIT      default page size of the change log\n")
		cliutil.Writef(fs.Output(), "  SCHEMACASE_MAX_INLINE_SIZE   maximum inline content in bytes\n")
	}
	return fs
}

// HandleMCP executes the mcp command
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return mcpserver.Run(ctx)
}
