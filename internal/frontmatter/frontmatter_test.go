package frontmatter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit_NoFrontmatter_ReturnsBodyOnly(t *testing.T) {
	input := []byte("# Title\n\nHello\n")

	fm, body, had, err := Split(input)
	require.NoError(t, err)
	require.False(t, had)
	require.Empty(t, fm)
	require.Equal(t, input, body)
}

func TestSplit_YAMLFrontmatter_SplitsFrontmatterAndBody(t *testing.T) {
	input := []byte("---\ntitle: Value\n---\n# Title\n")

	fm, body, had, err := Split(input)
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, []byte("title: Value\n"), fm)
	require.Equal(t, []byte("# Title\n"), body)
}

func TestSplit_MissingClosingDelimiter_ReturnsError(t *testing.T) {
	_, _, had, err := Split([]byte("---\ntitle: value\n# Title\n"))
	require.Error(t, err)
	require.False(t, had)
	require.True(t, errors.Is(err, ErrMissingClosingDelimiter))
}

func TestSplit_CRLF(t *testing.T) {
	fm, body, had, err := Split([]byte("---\r\ntitle: value\r\n---\r\n# Title\r\n"))
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, []byte("title: value\r\n"), fm)
	require.Equal(t, []byte("# Title\r\n"), body)
}

func TestSplit_EmptyBlock(t *testing.T) {
	fm, body, had, err := Split([]byte("---\n---\n# Title\n"))
	require.NoError(t, err)
	require.True(t, had)
	require.Empty(t, fm)
	require.Equal(t, []byte("# Title\n"), body)
}

func TestSplit_ClosingDelimiterAtEOF(t *testing.T) {
	fm, body, had, err := Split([]byte("---\ntitle: Only\n---"))
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, []byte("title: Only\n"), fm)
	require.Empty(t, body)
}

func TestParseYAML(t *testing.T) {
	fields, err := ParseYAML([]byte("title: abc\ntags:\n  - one\n"))
	require.NoError(t, err)
	require.Equal(t, "abc", fields["title"])
	require.Equal(t, []any{"one"}, fields["tags"])

	fields, err = ParseYAML(nil)
	require.NoError(t, err)
	require.Empty(t, fields)

	_, err = ParseYAML([]byte("title: [unterminated\n"))
	require.Error(t, err)
}

func TestDecode_Coercion(t *testing.T) {
	tests := []struct {
		name     string
		fields   map[string]any
		want     Meta
		warnings int
	}{
		{
			name:   "absent flags default to false",
			fields: map[string]any{"title": "Getting Started"},
			want:   Meta{Title: "Getting Started", Extra: map[string]any{}},
		},
		{
			name: "boolean and string flags",
			fields: map[string]any{
				"hideChildren": true,
				"hideSelf":     "true",
				"unhideSelf":   "false",
			},
			want: Meta{HideChildren: true, HideSelf: true, Extra: map[string]any{}},
		},
		{
			name:     "unparseable flag falls back to false",
			fields:   map[string]any{"hideSelf": "yes please"},
			want:     Meta{Extra: map[string]any{}},
			warnings: 1,
		},
		{
			name: "presentation fields pass through",
			fields: map[string]any{
				"summary":   "A summary",
				"icon":      "book",
				"iconBrand": "github",
			},
			want: Meta{Summary: "A summary", Icon: "book", IconBrand: "github", Extra: map[string]any{}},
		},
		{
			name:   "unknown keys retained",
			fields: map[string]any{"introduction": "Intro", "order": 3},
			want:   Meta{Extra: map[string]any{"introduction": "Intro", "order": 3}},
		},
		{
			name:     "non-string title",
			fields:   map[string]any{"title": []any{"a"}},
			want:     Meta{Extra: map[string]any{}},
			warnings: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, warnings := Decode(tt.fields)
			assert.Equal(t, tt.want, got)
			assert.Len(t, warnings, tt.warnings)
		})
	}
}

func TestParse(t *testing.T) {
	doc, warnings, err := Parse([]byte("---\ntitle: Security\nhideSelf: true\n---\n## Body\n"))
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, "Security", doc.Meta.Title)
	assert.True(t, doc.Meta.HideSelf)
	assert.Equal(t, "## Body\n", doc.Body)
	assert.NotEmpty(t, doc.Fingerprint)

	plain, _, err := Parse([]byte("## Body\n"))
	require.NoError(t, err)
	assert.Equal(t, "## Body\n", plain.Body)
	assert.NotEqual(t, doc.Fingerprint, plain.Fingerprint)

	_, _, err = Parse([]byte("---\ntitle: [broken\n---\n"))
	require.Error(t, err)
}

func TestFingerprint_Stable(t *testing.T) {
	a := Fingerprint([]byte("title: A\n"), []byte("body"))
	b := Fingerprint([]byte("title: A"), []byte("body"))
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, Fingerprint([]byte("title: A\n"), []byte("other")))
}
