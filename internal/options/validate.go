// Package options provides shared checks for functional option sets.
package options

import (
	"fmt"
	"strings"
)

// Source is a named input source of an option set.
type Source struct {
	// Option is the constructor that sets the source, e.g. "WithFilePath"
	Option string
	// Set reports whether the source was given
	Set bool
}

// RequireOneSource ensures exactly one of sources is set.
func RequireOneSource(sources ...Source) error {
	names := make([]string, 0, len(sources))
	count := 0
	for _, s := range sources {
		names = append(names, s.Option)
		if s.Set {
			count++
		}
	}

	switch {
	case count == 0:
		return fmt.Errorf("no input source specified: use %s", strings.Join(names, " or "))
	case count > 1:
		return fmt.Errorf("multiple input sources specified: use only one of %s", strings.Join(names, " or "))
	}
	return nil
}
