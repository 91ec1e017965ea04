package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequireOneSource(t *testing.T) {
	tests := []struct {
		name    string
		sources []Source
		wantErr string
	}{
		{
			name:    "file only",
			sources: []Source{{"WithFilePath", true}, {"WithSource", false}},
		},
		{
			name:    "source only",
			sources: []Source{{"WithFilePath", false}, {"WithSource", true}},
		},
		{
			name:    "none",
			sources: []Source{{"WithFilePath", false}, {"WithSource", false}},
			wantErr: "no input source specified: use WithFilePath or WithSource",
		},
		{
			name:    "both",
			sources: []Source{{"WithFilePath", true}, {"WithSource", true}},
			wantErr: "multiple input sources specified: use only one of WithFilePath or WithSource",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RequireOneSource(tt.sources...)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}
