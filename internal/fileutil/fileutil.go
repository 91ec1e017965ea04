// Package fileutil writes schema files for the CLI and the MCP server.
package fileutil

import (
	"fmt"
	"os"
)

// ReadableByAll is the mode of schema files that did not exist before.
const ReadableByAll os.FileMode = 0o644

// WriteFile replaces the contents of path, keeping the permission bits of
// an existing file.
func WriteFile(path string, data []byte) error {
	mode := ReadableByAll
	if info, err := os.Stat(path); err == nil {
		if !info.Mode().IsRegular() {
			return fmt.Errorf("fileutil: %s is not a regular file", path)
		}
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(path, data, mode); err != nil {
		return fmt.Errorf("fileutil: %w", err)
	}
	return nil
}
