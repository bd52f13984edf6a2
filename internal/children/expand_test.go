package children

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"git.home.luguber.info/inful/docnav/internal/docs"
)

func TestExpand_List(t *testing.T) {
	c, doc := fixture(t)

	got := Expand("Intro\n\n[CHILDREN asList]\n\nOutro\n", c, doc)
	want := "Intro\n\n" +
		"- [Environment](/en/6/getting-started/environment/)\n" +
		"- [Installation](/en/6/getting-started/installation/): Install it\n\n" +
		"Outro\n"
	assert.Equal(t, want, got)
}

func TestExpand_Cards(t *testing.T) {
	c, doc := fixture(t)

	got := Expand("[CHILDREN Folder=\"Recipes\"]\n", c, doc)
	want := "<div class=\"docs-overview\">\n" +
		"<a class=\"docs-overview__card\" href=\"/en/6/getting-started/recipes/caching/\">\n" +
		"<span class=\"docs-overview__title\">Caching</span>\n" +
		"</a>\n" +
		"<a class=\"docs-overview__card\" href=\"/en/6/getting-started/recipes/queues/\">\n" +
		"<span class=\"docs-overview__title\">Queues &amp; Jobs</span>\n" +
		"</a>\n" +
		"</div>\n\n"
	assert.Equal(t, want, got)
}

func TestExpand_CardIcon(t *testing.T) {
	c, doc := fixture(t)

	got := Expand("[CHILDREN Only=\"Environment\"]", c, doc)
	assert.Contains(t, got, `<span class="docs-overview__icon" data-icon="cog"></span>`)
}

func TestExpand_EmptySelectionRemovesDirective(t *testing.T) {
	c, doc := fixture(t)
	assert.Equal(t, "A\n\n\nB", Expand("A\n\n[CHILDREN Folder=\"Nope\"]\nB", c, doc))
}

func TestExpand_LeavesCode(t *testing.T) {
	c, doc := fixture(t)
	body := "`[CHILDREN]`\n"
	assert.Equal(t, body, Expand(body, c, doc))
}

func TestRender_EscapesListTitles(t *testing.T) {
	got := Render([]*docs.Document{{Title: "Arrays [] and more", Slug: "/en/6/arrays/"}}, true)
	assert.Equal(t, `- [Arrays \[\] and more](/en/6/arrays/)`, got)
}
