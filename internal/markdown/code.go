package markdown

import (
	"sort"
	"strings"
)

// Range is a half-open byte range [Start, End).
type Range struct {
	Start int
	End   int
}

// CodeMask records where code lives in a markdown body: fenced blocks
// (``` or ~~~, fence lines included) and inline code spans. Scanners use it
// to leave code untouched. Indented code blocks are not detected, since
// list continuation lines share their indentation.
type CodeMask struct {
	ranges []Range
}

// NewCodeMask scans body line by line.
func NewCodeMask(body string) *CodeMask {
	m := &CodeMask{}

	inFence := false
	activeFence := ""
	fenceStart := 0

	for lineStart := 0; lineStart < len(body); {
		lineEnd := strings.IndexByte(body[lineStart:], '\n')
		if lineEnd < 0 {
			lineEnd = len(body)
		} else {
			lineEnd += lineStart + 1
		}
		line := body[lineStart:lineEnd]
		trimmed := strings.TrimSpace(line)

		if fence := fenceMarker(trimmed); fence != "" {
			switch {
			case !inFence:
				inFence, activeFence, fenceStart = true, fence, lineStart
			case fence == activeFence:
				inFence, activeFence = false, ""
				m.ranges = append(m.ranges, Range{Start: fenceStart, End: lineEnd})
			}
		} else if !inFence {
			m.ranges = append(m.ranges, codeSpans(line, lineStart)...)
		}
		lineStart = lineEnd
	}
	if inFence {
		m.ranges = append(m.ranges, Range{Start: fenceStart, End: len(body)})
	}
	return m
}

func fenceMarker(trimmed string) string {
	switch {
	case strings.HasPrefix(trimmed, "```"):
		return "```"
	case strings.HasPrefix(trimmed, "~~~"):
		return "~~~"
	}
	return ""
}

// codeSpans finds backtick code spans in one line; offset is the line's
// position in the body.
func codeSpans(line string, offset int) []Range {
	if !strings.Contains(line, "`") {
		return nil
	}
	var spans []Range
	for i := 0; i < len(line); {
		if line[i] != '`' {
			i++
			continue
		}
		run := 1
		for i+run < len(line) && line[i+run] == '`' {
			run++
		}
		marker := strings.Repeat("`", run)
		closeRel := strings.Index(line[i+run:], marker)
		if closeRel == -1 {
			i += run
			continue
		}
		end := i + run + closeRel + run
		spans = append(spans, Range{Start: offset + i, End: offset + end})
		i = end
	}
	return spans
}

// Ranges returns the code ranges in body order.
func (m *CodeMask) Ranges() []Range {
	out := make([]Range, len(m.ranges))
	copy(out, m.ranges)
	return out
}

// Contains reports whether pos lies inside code.
func (m *CodeMask) Contains(pos int) bool {
	i := sort.Search(len(m.ranges), func(i int) bool { return m.ranges[i].End > pos })
	return i < len(m.ranges) && m.ranges[i].Start <= pos
}

// Overlaps reports whether any byte of [start, end) lies inside code.
func (m *CodeMask) Overlaps(start, end int) bool {
	i := sort.Search(len(m.ranges), func(i int) bool { return m.ranges[i].End > start })
	return i < len(m.ranges) && m.ranges[i].Start < end
}
