package markdown

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Edit is a byte-range replacement. Start and End are offsets into the
// original source, End exclusive.
type Edit struct {
	Start       int
	End         int
	Replacement string
}

// ApplyEdits applies non-overlapping edits that refer to offsets in the
// original source. Untouched bytes, including line endings, are preserved.
func ApplyEdits(source string, edits []Edit) (string, error) {
	if len(edits) == 0 {
		return source, nil
	}

	sorted := make([]Edit, len(edits))
	copy(sorted, edits)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start == sorted[j].Start {
			return sorted[i].End < sorted[j].End
		}
		return sorted[i].Start < sorted[j].Start
	})

	for i, e := range sorted {
		if e.Start < 0 || e.End < 0 {
			return "", fmt.Errorf("invalid edit[%d]: negative range", i)
		}
		if e.End < e.Start {
			return "", fmt.Errorf("invalid edit[%d]: end before start", i)
		}
		if e.End > len(source) {
			return "", fmt.Errorf("invalid edit[%d]: range out of bounds", i)
		}
		if i > 0 && e.Start < sorted[i-1].End {
			return "", errors.New("invalid edits: overlapping ranges")
		}
	}

	var out strings.Builder
	out.Grow(len(source))
	pos := 0
	for _, e := range sorted {
		out.WriteString(source[pos:e.Start])
		out.WriteString(e.Replacement)
		pos = e.End
	}
	out.WriteString(source[pos:])
	return out.String(), nil
}
