package markdown

import "strings"

// LinkKind distinguishes inline links from images.
type LinkKind string

const (
	LinkKindInline LinkKind = "inline"
	LinkKindImage  LinkKind = "image"
)

// Link is an inline link or image found in a markdown body. Offsets index
// into the scanned body.
type Link struct {
	Kind        LinkKind
	Text        string
	Destination string
	// Start and End span the whole construct, including a leading "!".
	Start int
	End   int
	// DestStart and DestEnd span the destination only, so it can be
	// replaced without touching the text or title.
	DestStart int
	DestEnd   int
}

// FindLinks returns every inline link and image outside code, in body
// order. Images nested in link text are reported as well.
func FindLinks(body string) []Link {
	mask := NewCodeMask(body)
	var links []Link

	for i := 0; i < len(body); i++ {
		if body[i] != '[' || mask.Contains(i) || isEscaped(body, i) {
			continue
		}
		// Link text may hold code spans; the "](dest)" tail may not.
		if link, ok := parseLink(body, i); ok && !mask.Overlaps(link.DestStart-2, link.End) {
			links = append(links, link)
		}
	}
	return links
}

// parseLink parses [text](dest "title") with the opening bracket at i.
func parseLink(body string, i int) (Link, bool) {
	closeBracket := findClosingBracket(body, i+1)
	if closeBracket == -1 || closeBracket+1 >= len(body) || body[closeBracket+1] != '(' {
		return Link{}, false
	}
	destStart, destEnd, closeParen := parseDestination(body, closeBracket+2)
	if closeParen == -1 {
		return Link{}, false
	}

	link := Link{
		Kind:        LinkKindInline,
		Text:        body[i+1 : closeBracket],
		Destination: body[destStart:destEnd],
		Start:       i,
		End:         closeParen + 1,
		DestStart:   destStart,
		DestEnd:     destEnd,
	}
	if i > 0 && body[i-1] == '!' {
		link.Kind = LinkKindImage
		link.Start = i - 1
	}
	return link, true
}

// findClosingBracket finds the bracket closing the one before start,
// honouring nesting and escapes. A blank line ends the search.
func findClosingBracket(body string, start int) int {
	depth := 0
	for i := start; i < len(body); i++ {
		switch body[i] {
		case '\\':
			i++
		case '[':
			depth++
		case ']':
			if depth == 0 {
				return i
			}
			depth--
		case '\n':
			if i+1 < len(body) && body[i+1] == '\n' {
				return -1
			}
		}
	}
	return -1
}

// parseDestination reads a link destination and optional title starting at
// start (just after the opening parenthesis). It returns the destination
// bounds and the position of the closing parenthesis, or -1.
func parseDestination(body string, start int) (destStart, destEnd, closeParen int) {
	i := start
	for i < len(body) && (body[i] == ' ' || body[i] == '\t') {
		i++
	}
	destStart = i

	if i < len(body) && body[i] == '<' {
		end := strings.IndexAny(body[i+1:], ">\n")
		if end == -1 || body[i+1+end] != '>' {
			return 0, 0, -1
		}
		destStart, destEnd = i+1, i+1+end
		i = destEnd + 1
	} else {
		depth := 0
	loop:
		for ; i < len(body); i++ {
			switch body[i] {
			case '\\':
				i++
			case '(':
				depth++
			case ')':
				if depth == 0 {
					break loop
				}
				depth--
			case ' ', '\t', '\n':
				break loop
			}
		}
		destEnd = i
	}

	for i < len(body) && (body[i] == ' ' || body[i] == '\t') {
		i++
	}
	if i < len(body) && (body[i] == '"' || body[i] == '\'') {
		quote := body[i]
		end := strings.IndexByte(body[i+1:], quote)
		if end == -1 {
			return 0, 0, -1
		}
		i += end + 2
		for i < len(body) && (body[i] == ' ' || body[i] == '\t') {
			i++
		}
	}
	if i >= len(body) || body[i] != ')' {
		return 0, 0, -1
	}
	return destStart, destEnd, i
}

func isEscaped(body string, i int) bool {
	backslashes := 0
	for j := i - 1; j >= 0 && body[j] == '\\'; j-- {
		backslashes++
	}
	return backslashes%2 == 1
}
