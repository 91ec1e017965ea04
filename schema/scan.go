package schema

import (
	"sort"
	"strings"

	"github.com/erraggy/schemacase/caseerrors"
)

// Kind is the keyword that opens a definition block.
type Kind string

const (
	// KindModel is a table-like entity.
	KindModel Kind = "model"
	// KindView is a view-like entity.
	KindView Kind = "view"
	// KindEnum is an enumerated type.
	KindEnum Kind = "enum"
)

// Block is the inclusive line range of one definition block.
type Block struct {
	Kind Kind
	// Name is the declared identifier at scan time.
	Name string
	// Start is the 0-based index of the header line.
	Start int
	// End is the 0-based index of the closing line.
	End int
}

// Shift returns b moved by offset lines.
func (b Block) Shift(offset int) Block {
	b.Start += offset
	b.End += offset
	return b
}

// Scan returns the bounds of every block of the given kinds, sorted by start
// line. Each kind is scanned in its own forward pass.
//
// A block opens on a line matching the header grammar for its kind and closes
// on the next line whose trimmed content ends with "}". A header line that
// itself ends with "}" is a single-line block. Reaching the end of input with
// a block still open fails with a *caseerrors.ScanError.
func Scan(lines []string, kinds ...Kind) ([]Block, error) {
	var blocks []Block
	for _, kind := range kinds {
		found, err := scanKind(lines, kind)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, found...)
	}
	sort.SliceStable(blocks, func(i, j int) bool {
		return blocks[i].Start < blocks[j].Start
	})
	return blocks, nil
}

func scanKind(lines []string, kind Kind) ([]Block, error) {
	var (
		blocks []Block
		cursor Block
		inside bool
	)
	for i, line := range lines {
		if !inside {
			h, ok := ParseHeader(line)
			if !ok || h.Kind() != kind {
				continue
			}
			cursor = Block{Kind: kind, Name: h.Name, Start: i}
			if strings.HasSuffix(strings.TrimSpace(h.Tail), "}") {
				cursor.End = i
				blocks = append(blocks, cursor)
				continue
			}
			inside = true
			continue
		}
		if strings.HasSuffix(strings.TrimSpace(line), "}") {
			cursor.End = i
			blocks = append(blocks, cursor)
			inside = false
		}
	}
	if inside {
		return nil, &caseerrors.ScanError{Kind: string(kind), Line: cursor.Start + 1}
	}
	return blocks, nil
}

// SplitLines splits a document into lines on "\n".
func SplitLines(text string) []string {
	return strings.Split(text, "\n")
}

// JoinLines is the inverse of SplitLines.
func JoinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
