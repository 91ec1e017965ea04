package mcpserver

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/schemacase/convention"
)

type resolveInput struct {
	Convention conventionInput `json:"convention,omitempty" jsonschema:"Convention config and overrides"`
	Entity     string          `json:"entity"               jsonschema:"Model, view or enum name as written in the schema"`
	Field      string          `json:"field,omitempty"      jsonschema:"Field name within the entity"`
}

func handleResolve(_ context.Context, _ *mcp.CallToolRequest, input resolveInput) (*mcp.CallToolResult, convention.Resolution, error) {
	if input.Entity == "" {
		return errResult(errors.New("entity is required")), convention.Resolution{}, nil
	}
	store, err := input.Convention.store()
	if err != nil {
		return errResult(err), convention.Resolution{}, nil
	}

	scope := []string{input.Entity}
	if input.Field != "" {
		scope = append(scope, input.Field)
	}
	return nil, store.Describe(scope...), nil
}
