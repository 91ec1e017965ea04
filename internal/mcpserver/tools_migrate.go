package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/schemacase/internal/fileutil"
	"github.com/erraggy/schemacase/internal/prettyprint"
	"github.com/erraggy/schemacase/rewriter"
)

type migrateInput struct {
	Schema     schemaInput     `json:"schema"                jsonschema:"The Prisma schema to migrate"`
	Convention conventionInput `json:"convention,omitempty"  jsonschema:"Convention config and overrides"`
	DryRun     bool            `json:"dry_run,omitempty"     jsonschema:"Preview the migration: return the document and write nothing"`
	Output     string          `json:"output,omitempty"      jsonschema:"File path to write the migrated schema. Defaults to the input file; inline content is returned instead."`
	NoFormat   bool            `json:"no_format,omitempty"   jsonschema:"Do not align the migrated schema"`
	Offset     int             `json:"offset,omitempty"      jsonschema:"Skip the first N changes (for pagination)"`
	Limit      int             `json:"limit,omitempty"       jsonschema:"Maximum number of changes to return (default 100)"`
}

type changeEntry struct {
	Type   string `json:"type"`
	Line   int    `json:"line"`
	Scope  string `json:"scope"`
	Before string `json:"before,omitempty"`
	After  string `json:"after,omitempty"`
}

type migrateOutput struct {
	ChangeCount int               `json:"change_count"`
	Returned    int               `json:"returned"`
	Changes     []changeEntry     `json:"changes,omitempty"`
	Enums       map[string]string `json:"enums,omitempty"`
	WrittenTo   string            `json:"written_to,omitempty"`
	Document    string            `json:"document,omitempty"`
}

func handleMigrate(_ context.Context, _ *mcp.CallToolRequest, input migrateInput) (*mcp.CallToolResult, migrateOutput, error) {
	text, err := input.Schema.read()
	if err != nil {
		return errResult(err), migrateOutput{}, nil
	}
	store, err := input.Convention.store()
	if err != nil {
		return errResult(err), migrateOutput{}, nil
	}

	result, err := rewriter.Migrate(text, store)
	if err != nil {
		return errResult(err), migrateOutput{}, nil
	}

	doc := result.Text
	if cfg.Format && !input.NoFormat {
		doc = prettyprint.Format(doc)
	}

	output := migrateOutput{
		ChangeCount: result.ChangeCount,
		Enums:       result.Enums,
	}
	output.Changes = makeSlice[changeEntry](len(result.Changes))
	for _, c := range result.Changes {
		output.Changes = append(output.Changes, changeEntry{
			Type:   string(c.Type),
			Line:   c.Line,
			Scope:  c.Scope,
			Before: c.Before,
			After:  c.After,
		})
	}
	output.Changes = paginate(output.Changes, input.Offset, input.Limit)
	output.Returned = len(output.Changes)

	target := input.Output
	if target == "" {
		target = input.Schema.File
	}
	if input.DryRun || target == "" {
		output.Document = doc
		return nil, output, nil
	}
	if err := fileutil.WriteFile(target, []byte(doc)); err != nil {
		return errResult(fmt.Errorf("failed to write output file: %w", err)), migrateOutput{}, nil
	}
	output.WrittenTo = target
	return nil, output, nil
}
