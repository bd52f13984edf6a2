package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func destinations(links []Link) []string {
	out := []string{}
	for _, l := range links {
		out = append(out, l.Destination)
	}
	return out
}

func TestFindLinks_InlineAndImage(t *testing.T) {
	body := "See [API](api.md) and ![Diagram](_images/diagram.png).\n"
	links := FindLinks(body)
	require.Len(t, links, 2)

	assert.Equal(t, LinkKindInline, links[0].Kind)
	assert.Equal(t, "API", links[0].Text)
	assert.Equal(t, "api.md", links[0].Destination)
	assert.Equal(t, "[API](api.md)", body[links[0].Start:links[0].End])
	assert.Equal(t, "api.md", body[links[0].DestStart:links[0].DestEnd])

	assert.Equal(t, LinkKindImage, links[1].Kind)
	assert.Equal(t, "![Diagram](_images/diagram.png)", body[links[1].Start:links[1].End])
}

func TestFindLinks_TitlesAndAngleBrackets(t *testing.T) {
	body := `[a](./a.md "Title") [b](<./b c.md>) [c](./c.md 'single')`
	assert.Equal(t, []string{"./a.md", "./b c.md", "./c.md"}, destinations(FindLinks(body)))
}

func TestFindLinks_NestedImageInLink(t *testing.T) {
	body := "[![Logo](_images/logo.png)](./index.md)"
	links := FindLinks(body)
	require.Len(t, links, 2)
	assert.Equal(t, "./index.md", links[0].Destination)
	assert.Equal(t, LinkKindInline, links[0].Kind)
	assert.Equal(t, "_images/logo.png", links[1].Destination)
	assert.Equal(t, LinkKindImage, links[1].Kind)
}

func TestFindLinks_BalancedParens(t *testing.T) {
	links := FindLinks("[wiki](https://en.wikipedia.org/wiki/Go_(language)) done")
	require.Len(t, links, 1)
	assert.Equal(t, "https://en.wikipedia.org/wiki/Go_(language)", links[0].Destination)
}

func TestFindLinks_SkipsCode(t *testing.T) {
	body := "" +
		"Inline code: `[Link](./ignored-inline.md)`\n" +
		"\n" +
		"```php\n" +
		"[Link](./ignored-fence.md)\n" +
		"```\n" +
		"~~~\n" +
		"[Link](./ignored-tilde.md)\n" +
		"~~~\n" +
		"Real: [OK](./real.md) and [`Code text`](./code-text.md)\n"

	assert.Equal(t, []string{"./real.md", "./code-text.md"}, destinations(FindLinks(body)))
}

func TestFindLinks_NotLinks(t *testing.T) {
	body := "[CHILDREN] [api:SilverStripe\\ORM\\DataObject] \\[escaped](x.md) [broken](no-close\n"
	assert.Empty(t, FindLinks(body))
}

func TestCodeMask(t *testing.T) {
	body := "a `b` c\n```\nfenced\n```\nd\n"
	mask := NewCodeMask(body)

	assert.False(t, mask.Contains(0))
	assert.True(t, mask.Contains(2))
	assert.True(t, mask.Contains(4))
	assert.False(t, mask.Contains(5))
	assert.True(t, mask.Contains(len("a `b` c\n```\nfe")))
	assert.False(t, mask.Contains(len(body)-2))
	assert.True(t, mask.Overlaps(0, 3))
	assert.False(t, mask.Overlaps(5, 8))
	assert.Len(t, mask.Ranges(), 2)
}

func TestCodeMask_UnclosedFenceRunsToEnd(t *testing.T) {
	body := "text\n```\n[x](y.md)\n"
	mask := NewCodeMask(body)
	assert.True(t, mask.Contains(len(body)-1))
	assert.Empty(t, FindLinks(body))
}
