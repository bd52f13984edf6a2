package navtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docnav/internal/docs"
)

func doc(slugStr, parent, title string, mods ...func(*docs.Document)) *docs.Document {
	d := &docs.Document{Slug: slugStr, ParentSlug: parent, Title: title, Version: "6", Category: "docs"}
	for _, m := range mods {
		m(d)
	}
	return d
}

func index(d *docs.Document)        { d.IsIndex = true }
func hideSelf(d *docs.Document)     { d.HideSelf = true }
func hideChildren(d *docs.Document) { d.HideChildren = true }
func unhideSelf(d *docs.Document)   { d.UnhideSelf = true }

func slugs(nodes []*Node) []string {
	out := []string{}
	for _, n := range nodes {
		out = append(out, n.Slug)
	}
	return out
}

func find(nodes []*Node, s string) *Node {
	for _, n := range nodes {
		if n.Slug == s {
			return n
		}
		if f := find(n.Children, s); f != nil {
			return f
		}
	}
	return nil
}

func corpusDocs() []*docs.Document {
	return []*docs.Document{
		doc("/en/6/", "", "Home", index),
		doc("/en/6/getting-started/", "/en/6/", "getting Started", index),
		doc("/en/6/getting-started/installation/", "/en/6/getting-started/", "Installation"),
		doc("/en/6/getting-started/environment/", "/en/6/getting-started/", "Environment"),
		doc("/en/6/getting-started/secret/", "/en/6/getting-started/", "Secret", hideSelf),
		doc("/en/6/changelogs/", "/en/6/", "Changelogs", index),
		doc("/en/6/apple/", "/en/6/", "apple"),
		doc("/en/5/", "", "Home", func(d *docs.Document) { d.Version = "5"; d.IsIndex = true }),
		doc("/en/5/other/", "/en/5/", "Other", func(d *docs.Document) { d.Version = "5" }),
	}
}

func TestBuild_StructureAndOrdering(t *testing.T) {
	tree := Build(corpusDocs(), "6", "", Options{})

	assert.Equal(t, []string{"/en/6/apple/", "/en/6/changelogs/", "/en/6/getting-started/"}, slugs(tree))

	gs := find(tree, "/en/6/getting-started/")
	require.NotNil(t, gs)
	assert.True(t, gs.IsIndex)
	assert.True(t, gs.HasVisibleChildren)
	assert.Equal(t, []string{"/en/6/getting-started/environment/", "/en/6/getting-started/installation/"}, slugs(gs.Children))

	changelogs := find(tree, "/en/6/changelogs/")
	assert.False(t, changelogs.HasVisibleChildren)
	assert.Empty(t, changelogs.Children)
}

func TestBuild_SourceOrder(t *testing.T) {
	all := corpusDocs()
	for i, d := range all {
		d.Order = i
	}
	tree := Build(all, "6", "", Options{Order: OrderSource})
	assert.Equal(t, []string{"/en/6/getting-started/", "/en/6/changelogs/", "/en/6/apple/"}, slugs(tree))
}

func TestBuild_ExcludesRootEvenWhenSelfParented(t *testing.T) {
	all := corpusDocs()
	all[0].ParentSlug = "/en/6/"

	sink := &docs.CollectingSink{}
	tree := Build(all, "6", "", Options{Sink: sink})

	assert.Nil(t, find(tree, "/en/6/"))
	assert.Len(t, tree, 3)
	assert.Empty(t, sink.Diagnostics(), "the root is excluded before parent checks")
}

func TestBuild_HideSelfNeverAppears(t *testing.T) {
	tree := Build(corpusDocs(), "6", "/en/6/getting-started/secret/", Options{})
	assert.Nil(t, find(tree, "/en/6/getting-started/secret/"))
	assert.Empty(t, ActivePath(tree))
}

func TestBuild_ActiveFlags(t *testing.T) {
	tree := Build(corpusDocs(), "6", "/EN/6/Getting-Started/Installation", Options{})

	inst := find(tree, "/en/6/getting-started/installation/")
	require.NotNil(t, inst)
	assert.True(t, inst.IsActive)

	gs := find(tree, "/en/6/getting-started/")
	assert.False(t, gs.IsActive)
	assert.True(t, IsNodeOrDescendantActive(gs))
	assert.False(t, IsNodeOrDescendantActive(find(tree, "/en/6/changelogs/")))

	assert.Equal(t, []string{"/en/6/getting-started/", "/en/6/getting-started/installation/"}, ActiveAncestorsSlug(gs))
	assert.Equal(t, []string{"/en/6/getting-started/installation/"}, ActiveAncestorsSlug(inst))
	assert.Equal(t, []string{}, ActiveAncestorsSlug(find(tree, "/en/6/apple/")))
	assert.Equal(t, []string{"/en/6/getting-started/", "/en/6/getting-started/installation/"}, ActivePath(tree))
}

func TestBuild_OrphansOmittedAndReported(t *testing.T) {
	all := append(corpusDocs(), doc("/en/6/lost/page/", "/en/6/lost/", "Page"))
	sink := &docs.CollectingSink{}

	tree := Build(all, "6", "", Options{Sink: sink})

	assert.Nil(t, find(tree, "/en/6/lost/page/"))
	diags := sink.Diagnostics()
	require.Len(t, diags, 1)
	assert.Equal(t, docs.KindOrphan, diags[0].Kind)
	assert.Equal(t, "/en/6/lost/page/", diags[0].Slug)
	assert.NotEmpty(t, diags[0].ID)
}

func TestBuild_ChildrenOfHiddenDocumentAreUnreachable(t *testing.T) {
	all := append(corpusDocs(), doc("/en/6/getting-started/secret/inner/", "/en/6/getting-started/secret/", "Inner"))
	sink := &docs.CollectingSink{}

	tree := Build(all, "6", "", Options{Sink: sink})

	assert.Nil(t, find(tree, "/en/6/getting-started/secret/inner/"))
	assert.Empty(t, sink.Diagnostics(), "a hidden parent is not an orphan")
}

func TestBuild_HideChildren(t *testing.T) {
	all := []*docs.Document{
		doc("/en/6/", "", "Home", index),
		doc("/en/6/api/", "/en/6/", "API", index, hideChildren),
		doc("/en/6/api/a/", "/en/6/api/", "A"),
		doc("/en/6/api/b/", "/en/6/api/", "B", unhideSelf),
		doc("/en/6/api/b/deep/", "/en/6/api/b/", "Deep"),
		doc("/en/6/api/c/", "/en/6/api/", "C", index),
		doc("/en/6/api/c/deeper/", "/en/6/api/c/", "Deeper", unhideSelf),
	}

	tree := Build(all, "6", "", Options{})

	api := find(tree, "/en/6/api/")
	require.NotNil(t, api)
	assert.Equal(t, []string{"/en/6/api/b/"}, slugs(api.Children), "only the unhidden child survives")
	assert.True(t, api.HasVisibleChildren)

	b := find(tree, "/en/6/api/b/")
	assert.Equal(t, []string{"/en/6/api/b/deep/"}, slugs(b.Children), "an unhidden node shows its own subtree")

	assert.Nil(t, find(tree, "/en/6/api/c/deeper/"), "nothing appears without its parent")
}

func TestBuild_HideChildrenWithoutOverrides(t *testing.T) {
	all := []*docs.Document{
		doc("/en/6/", "", "Home", index),
		doc("/en/6/api/", "/en/6/", "API", index, hideChildren),
		doc("/en/6/api/a/", "/en/6/api/", "A"),
	}

	api := find(Build(all, "6", "", Options{}), "/en/6/api/")
	require.NotNil(t, api)
	assert.False(t, api.HasVisibleChildren)
	assert.Empty(t, api.Children)
}

func TestBuild_UnknownVersion(t *testing.T) {
	assert.Empty(t, Build(corpusDocs(), "99", "", Options{}))
}

func TestBuild_UsesIndexCorpus(t *testing.T) {
	corpus, _ := docs.Build([]docs.SourceFile{
		{FilePath: "index.md", Version: "6", Content: []byte("# Home\n")},
		{FilePath: "01_Getting_Started/index.md", Version: "6"},
		{FilePath: "01_Getting_Started/01_Hidden.md", Version: "6", Content: []byte("---\nhideSelf: true\n---\n")},
		{FilePath: "01_Getting_Started/02_Install.md", Version: "6"},
	}, docs.BuildOptions{})

	tree := Build(corpus.All(), "6", "/en/6/getting-started/install/", Options{})
	require.Len(t, tree, 1)
	assert.Equal(t, "Getting Started", tree[0].Title)
	assert.Equal(t, []string{"/en/6/getting-started/install/"}, slugs(tree[0].Children))
	assert.Equal(t, 2, Count(tree))
}

func TestOrderValid(t *testing.T) {
	assert.True(t, OrderTitle.Valid())
	assert.True(t, OrderSource.Valid())
	assert.False(t, Order("random").Valid())
}
