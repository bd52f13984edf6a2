package children

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docnav/internal/directive"
	"git.home.luguber.info/inful/docnav/internal/docs"
	"git.home.luguber.info/inful/docnav/internal/sources"
)

func file(filePath, content string) docs.SourceFile {
	return docs.SourceFile{
		AbsolutePath: "/var/www/.cache/docs/v6/" + filePath,
		FilePath:     filePath,
		Content:      []byte(content),
		Version:      "6",
		Category:     sources.CategoryDocs,
	}
}

func fixture(t *testing.T) (*docs.Corpus, *docs.Document) {
	t.Helper()
	c, _ := docs.Build([]docs.SourceFile{
		file("index.md", "# Home\n"),
		file("01_Getting_Started/index.md", "# Getting started\n\n[CHILDREN]\n"),
		file("01_Getting_Started/01_Environment.md", "---\nicon: cog\n---\n# Environment\n"),
		file("01_Getting_Started/02_Installation.md", "---\nsummary: Install it\n---\n# Installation\n"),
		file("01_Getting_Started/03_Secret.md", "---\nhideSelf: true\n---\n"),
		file("01_Getting_Started/04_Recipes/index.md", "# Recipes\n"),
		file("01_Getting_Started/04_Recipes/01_Caching.md", "# Caching\n"),
		file("01_Getting_Started/04_Recipes/02_Queues.md", "---\ntitle: Queues & Jobs\n---\n"),
	}, docs.BuildOptions{Category: sources.CategoryDocs})

	doc := c.DocumentBySlug("/en/6/getting-started/")
	require.NotNil(t, doc)
	return c, doc
}

func titles(list []*docs.Document) []string {
	out := make([]string, 0, len(list))
	for _, d := range list {
		out = append(out, d.Title)
	}
	return out
}

func TestFiltered(t *testing.T) {
	c, doc := fixture(t)

	tests := []struct {
		name string
		opts directive.ChildrenOptions
		want []string
	}{
		{name: "all", opts: directive.ChildrenOptions{Mode: directive.ModeAll}, want: []string{"Environment", "Installation"}},
		{name: "include folders", opts: directive.ChildrenOptions{Mode: directive.ModeAll, IncludeFolders: true}, want: []string{"Environment", "Installation", "Recipes"}},
		{name: "reverse", opts: directive.ChildrenOptions{Mode: directive.ModeAll, Reverse: true}, want: []string{"Installation", "Environment"}},
		{name: "exclude", opts: directive.ChildrenOptions{Mode: directive.ModeExclude, Names: []string{"02_Installation"}}, want: []string{"Environment"}},
		{name: "exclude with emphasis", opts: directive.ChildrenOptions{Mode: directive.ModeExclude, Names: []string{"*installation*"}}, want: []string{"Environment"}},
		{name: "only", opts: directive.ChildrenOptions{Mode: directive.ModeOnly, Names: []string{"<em>Environment</em>", "04_Recipes"}, IncludeFolders: true}, want: []string{"Environment", "Recipes"}},
		{name: "folder", opts: directive.ChildrenOptions{Mode: directive.ModeFolder, Folder: "Recipes"}, want: []string{"Caching", "Queues & Jobs"}},
		{name: "missing folder", opts: directive.ChildrenOptions{Mode: directive.ModeFolder, Folder: "Nope"}, want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, titles(Filtered(c, doc, tt.opts)))
		})
	}
}

func TestFiltered_NeverListsHidden(t *testing.T) {
	c, doc := fixture(t)
	for _, d := range Filtered(c, doc, directive.ChildrenOptions{Mode: directive.ModeAll, IncludeFolders: true}) {
		assert.False(t, d.HideSelf, d.Slug)
	}
}

func TestFiltered_NilInputs(t *testing.T) {
	c, doc := fixture(t)
	assert.Nil(t, Filtered(nil, doc, directive.ChildrenOptions{}))
	assert.Nil(t, Filtered(c, nil, directive.ChildrenOptions{}))
}

func TestNameKey(t *testing.T) {
	tests := map[string]string{
		"01_Getting_Started":    "getting-started",
		"Getting Started":       "getting-started",
		"<em>How_tos</em>":      "how-tos",
		"*Recipes*":             "recipes",
		"_Emphasised_":          "emphasised",
		"  Spaced  ":            "spaced",
		"<strong>Bold</strong>": "bold",
	}
	for in, want := range tests {
		assert.Equal(t, want, NameKey(in), in)
	}
}
