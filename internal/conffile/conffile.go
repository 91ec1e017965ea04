// Package conffile loads convention configuration files in YAML or JSON.
package conffile

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/schemacase/caseerrors"
	"github.com/erraggy/schemacase/convention"
)

// DefaultPath is the configuration file looked up when none is given.
const DefaultPath = ".prisma-case-format"

// Format is the serialization of a configuration document.
type Format string

const (
	// FormatYAML is a YAML document
	FormatYAML Format = "yaml"
	// FormatJSON is a JSON document
	FormatJSON Format = "json"
	// FormatUnknown means the format is detected from the content
	FormatUnknown Format = "unknown"
)

// Load reads and decodes the configuration at path. An empty path means
// DefaultPath. A missing DefaultPath is not an error and yields a File
// that only protects the NextAuth.js models; any other missing path is.
func Load(path string) (*convention.File, error) {
	if path == "" {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && isDefaultPath(path) {
			return &convention.File{UsesNextAuth: true}, nil
		}
		msg := "cannot read file"
		if errors.Is(err, fs.ErrNotExist) {
			msg = "file does not exist"
		}
		return nil, &caseerrors.ConfigError{Path: path, Message: msg, Cause: err}
	}

	f, err := Parse(data, DetectFormat(path))
	if err != nil {
		var cfgErr *caseerrors.ConfigError
		if errors.As(err, &cfgErr) {
			cfgErr.Path = path
		}
		return nil, err
	}
	return f, nil
}

// Parse decodes a configuration document. FormatUnknown detects JSON by a
// leading '{' and falls back to YAML.
func Parse(data []byte, format Format) (*convention.File, error) {
	if format == FormatUnknown || format == "" {
		format = detectFormatFromContent(data)
	}
	var f convention.File
	if len(bytes.TrimSpace(data)) == 0 {
		return &f, nil
	}

	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &f)
	default:
		err = yaml.Unmarshal(data, &f)
	}
	if err != nil {
		return nil, &caseerrors.ConfigError{Message: "invalid " + string(format), Cause: err}
	}
	return &f, nil
}

// DetectFormat detects the format of a configuration file from its extension.
func DetectFormat(path string) Format {
	switch filepath.Ext(path) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatUnknown
	}
}

func detectFormatFromContent(data []byte) Format {
	trimmed := bytes.TrimLeft(data, " \t\n\r")
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return FormatJSON
	}
	return FormatYAML
}

func isDefaultPath(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path) == DefaultPath
	}
	def, err := filepath.Abs(DefaultPath)
	if err != nil {
		return false
	}
	return abs == def
}
