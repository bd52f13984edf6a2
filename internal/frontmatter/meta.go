package frontmatter

import (
	"fmt"
	"strings"
)

// Recognized front matter keys.
const (
	KeyTitle        = "title"
	KeySummary      = "summary"
	KeyIcon         = "icon"
	KeyIconBrand    = "iconBrand"
	KeyHideChildren = "hideChildren"
	KeyHideSelf     = "hideSelf"
	KeyUnhideSelf   = "unhideSelf"
)

// Meta is the typed view of a document's front matter.
type Meta struct {
	Title        string
	Summary      string
	Icon         string
	IconBrand    string
	HideChildren bool
	HideSelf     bool
	UnhideSelf   bool

	// Extra holds every unrecognized key, untouched.
	Extra map[string]any
}

// Document is a parsed markdown file.
type Document struct {
	Meta        Meta
	Body        string
	Fingerprint string
}

// Parse splits and decodes a markdown file. Coercion problems on individual
// keys do not fail the parse; they are returned as warnings and the key takes
// its default.
func Parse(content []byte) (Document, []string, error) {
	raw, body, _, err := Split(content)
	if err != nil {
		return Document{}, nil, err
	}
	fields, err := ParseYAML(raw)
	if err != nil {
		return Document{}, nil, fmt.Errorf("parse front matter: %w", err)
	}
	meta, warnings := Decode(fields)
	return Document{
		Meta:        meta,
		Body:        string(body),
		Fingerprint: Fingerprint(raw, body),
	}, warnings, nil
}

// Decode coerces a raw field map into Meta. String fields pass through as
// strings; flag fields accept a boolean or the literal strings "true" and
// "false"; absent flags default to false.
func Decode(fields map[string]any) (Meta, []string) {
	var (
		m        Meta
		warnings []string
	)
	m.Extra = make(map[string]any)

	for k, v := range fields {
		var warn string
		switch k {
		case KeyTitle:
			m.Title, warn = coerceString(k, v)
		case KeySummary:
			m.Summary, warn = coerceString(k, v)
		case KeyIcon:
			m.Icon, warn = coerceString(k, v)
		case KeyIconBrand:
			m.IconBrand, warn = coerceString(k, v)
		case KeyHideChildren:
			m.HideChildren, warn = coerceFlag(k, v)
		case KeyHideSelf:
			m.HideSelf, warn = coerceFlag(k, v)
		case KeyUnhideSelf:
			m.UnhideSelf, warn = coerceFlag(k, v)
		default:
			m.Extra[k] = v
		}
		if warn != "" {
			warnings = append(warnings, warn)
		}
	}
	return m, warnings
}

func coerceString(key string, v any) (string, string) {
	switch t := v.(type) {
	case nil:
		return "", ""
	case string:
		return t, ""
	case int, int64, float64, bool:
		return fmt.Sprint(t), ""
	default:
		return "", fmt.Sprintf("%s: expected a string, got %T", key, v)
	}
}

func coerceFlag(key string, v any) (bool, string) {
	switch t := v.(type) {
	case nil:
		return false, ""
	case bool:
		return t, ""
	case string:
		switch strings.TrimSpace(t) {
		case "true":
			return true, ""
		case "false":
			return false, ""
		}
	}
	return false, fmt.Sprintf("%s: expected true or false, got %v", key, v)
}
