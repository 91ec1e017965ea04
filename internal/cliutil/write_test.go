package cliutil

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWritef(t *testing.T) {
	tests := []struct {
		name   string
		format string
		args   []any
		want   string
	}{
		{name: "single arg", format: "Hello, %s!", args: []any{"World"}, want: "Hello, World!"},
		{name: "no args", format: "Simple message", want: "Simple message"},
		{name: "multiple args", format: "%s: %d changes, dry run %v", args: []any{"schema.prisma", 42, true}, want: "schema.prisma: 42 changes, dry run true"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Writef(&buf, tt.format, tt.args...)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

// errorWriter is a writer that always returns an error
type errorWriter struct{}

func (errorWriter) Write([]byte) (int, error) {
	return 0, errors.New("simulated write error")
}

func TestWritef_WriteError(t *testing.T) {
	assert.NotPanics(t, func() {
		Writef(errorWriter{}, "This will fail")
	})
}

func TestWriteError(t *testing.T) {
	var buf bytes.Buffer
	WriteError(&buf, errors.New("model starting on line 3 did not end"))
	assert.Equal(t, "Error: model starting on line 3 did not end\n", buf.String())
}
