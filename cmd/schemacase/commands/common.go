// Package commands provides CLI command handlers for schemacase.
package commands

import (
	"io"
	"log/slog"

	"github.com/erraggy/schemacase"
	"github.com/erraggy/schemacase/internal/cliutil"
	"github.com/erraggy/schemacase/rewriter"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// DefaultSchemaPath is the schema migrated when no file is given.
const DefaultSchemaPath = "schema.prisma"

// NewLogger returns the rewriter logger for a command. Verbose mode logs
// every change at debug level to w; otherwise nothing is logged.
func NewLogger(verbose bool, w io.Writer) rewriter.Logger {
	if !verbose {
		return rewriter.NopLogger{}
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	return rewriter.NewSlogAdapter(slog.New(handler))
}

// writeHeader prints the diagnostic banner of a command.
func writeHeader(w io.Writer, title, schemaPath string) {
	cliutil.Writef(w, "%s\n", title)
	for range title {
		cliutil.Writef(w, "=")
	}
	cliutil.Writef(w, "\n\n")
	cliutil.Writef(w, "schemacase version: %s\n", schemacase.Version())
	if schemaPath == StdinFilePath {
		cliutil.Writef(w, "Schema: <stdin>\n")
	} else {
		cliutil.Writef(w, "Schema: %s\n", schemaPath)
	}
}
