package toc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateHTML(t *testing.T) {
	got := GenerateHTML([]Heading{
		{ID: "a", Text: "A & B", Level: 2},
		{ID: "b", Text: "B", Level: 3},
		{ID: "c", Text: "C", Level: 2},
	})

	want := "<nav class=\"toc\" aria-label=\"Table of contents\">\n<ul>\n" +
		"<li class=\"toc-level-2\"><a href=\"#a\">A &amp; B</a>\n<ul>\n" +
		"<li class=\"toc-level-3\"><a href=\"#b\">B</a></li>\n" +
		"</ul>\n</li>\n" +
		"<li class=\"toc-level-2\"><a href=\"#c\">C</a></li>\n" +
		"</ul>\n</nav>\n"
	assert.Equal(t, want, got)
}

func TestGenerateHTML_LeadingLevel3(t *testing.T) {
	got := GenerateHTML([]Heading{{ID: "x", Text: "X", Level: 3}})
	assert.Equal(t, "<nav class=\"toc\" aria-label=\"Table of contents\">\n<ul>\n<li class=\"toc-level-3\"><a href=\"#x\">X</a></li>\n</ul>\n</nav>\n", got)
}

func TestGenerateHTML_Empty(t *testing.T) {
	assert.Empty(t, GenerateHTML(nil))
}

func TestInsertAfterH1(t *testing.T) {
	toc := "<nav>T</nav>\n"

	assert.Equal(t,
		"<h1 id=\"t\">Title</h1>\n<nav>T</nav>\n\n<p>x</p><h1>Second</h1>",
		InsertAfterH1("<h1 id=\"t\">Title</h1>\n<p>x</p><h1>Second</h1>", toc))

	assert.Equal(t, toc+"<p>x</p>", InsertAfterH1("<p>x</p>", toc))
	assert.Equal(t, "<h1>T</h1>", InsertAfterH1("<h1>T</h1>", ""))
}
