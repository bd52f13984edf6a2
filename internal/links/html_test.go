package links

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRewriteAPILinksInHTML(t *testing.T) {
	r := NewResolver()

	in := `<p>See <a href="api:SilverStripe%5CORM%5CDataObject">SilverStripe\ORM\DataObject</a> and <a href="https://example.com">x</a>.</p>`
	want := `<p>See <a href="https://api.silverstripe.org/search/lookup?q=SilverStripe%5CORM%5CDataObject&amp;version=6" target="_blank" rel="noopener noreferrer">SilverStripe\ORM\DataObject</a> and <a href="https://example.com">x</a>.</p>`

	assert.Equal(t, want, r.RewriteAPILinksInHTML(in, "6"))
}

func TestRewriteAPILinksInHTML_ReplacesTargetAndRel(t *testing.T) {
	r := &Resolver{APILookupURL: "https://api.example.test/lookup"}

	got := r.RewriteAPILinksInHTML(`<a target="_self" href="api:DataList::filter()" rel="next">filter</a>`, "5")
	assert.Equal(t, `<a href="https://api.example.test/lookup?q=DataList%3A%3Afilter%28%29&amp;version=5" target="_blank" rel="noopener noreferrer">filter</a>`, got)
}

func TestRewriteAPILinksInHTML_LeavesOtherMarkup(t *testing.T) {
	r := NewResolver()
	in := `<h2 id="api">API</h2><p>Text mentioning api: in prose <code>api:Foo</code></p><IMG SRC="x.png">`
	assert.Equal(t, in, r.RewriteAPILinksInHTML(in, "6"))
}

func TestAPILookupLink(t *testing.T) {
	assert.Equal(t,
		"https://api.silverstripe.org/search/lookup?q=SilverStripe%5CControl%5CDirector&version=6",
		NewResolver().APILookupLink(`SilverStripe\Control\Director`, "6"))
}
