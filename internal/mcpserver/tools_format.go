package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/schemacase/internal/fileutil"
	"github.com/erraggy/schemacase/internal/prettyprint"
)

type formatInput struct {
	Schema schemaInput `json:"schema"           jsonschema:"The Prisma schema to format"`
	Output string      `json:"output,omitempty" jsonschema:"File path to write the formatted schema. If omitted the document is returned inline."`
}

type formatOutput struct {
	Changed   bool   `json:"changed"`
	WrittenTo string `json:"written_to,omitempty"`
	Document  string `json:"document,omitempty"`
}

func handleFormat(_ context.Context, _ *mcp.CallToolRequest, input formatInput) (*mcp.CallToolResult, formatOutput, error) {
	text, err := input.Schema.read()
	if err != nil {
		return errResult(err), formatOutput{}, nil
	}

	doc := prettyprint.Format(text)
	output := formatOutput{Changed: doc != text}
	if input.Output == "" {
		output.Document = doc
		return nil, output, nil
	}
	if err := fileutil.WriteFile(input.Output, []byte(doc)); err != nil {
		return errResult(fmt.Errorf("failed to write output file: %w", err)), formatOutput{}, nil
	}
	output.WrittenTo = input.Output
	return nil, output, nil
}
