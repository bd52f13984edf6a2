package links

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const workflowFile = "/var/www/.cache/docs/v6/optional_features/advancedworkflow/01_adding-workflows.md"

func TestResolveMarkdownLink(t *testing.T) {
	r := NewResolver()

	tests := []struct {
		name string
		link string
		file string
		want string
	}{
		{name: "sibling page", link: "./04_security.md", file: workflowFile, want: "/en/6/optional_features/advancedworkflow/security/"},
		{name: "parent index", link: "../index.md", file: workflowFile, want: "/en/6/optional_features/"},
		{name: "fragment kept", link: "./04_security.md#setup", file: workflowFile, want: "/en/6/optional_features/advancedworkflow/security/#setup"},
		{name: "query kept", link: "./04_security.md?x=1#a", file: workflowFile, want: "/en/6/optional_features/advancedworkflow/security/?x=1#a"},
		{name: "extensionless", link: "./code", file: workflowFile, want: "/en/6/optional_features/advancedworkflow/code/"},
		{name: "bare sibling", link: "02_Creating_Steps.md", file: workflowFile, want: "/en/6/optional_features/advancedworkflow/creating_steps/"},
		{name: "up and across", link: "../../02_Developer_Guides/00_Model/index.md", file: workflowFile, want: "/en/6/developer_guides/model/"},
		{name: "version root", link: "../../index.md", file: workflowFile, want: "/en/6/"},
		{name: "unknown root falls back to version dir", link: "02_Installation.md", file: "/srv/content/v5/01_Getting_Started/index.md", want: "/en/6/getting_started/installation/"},
		{name: "windows separators", link: "./04_security.md", file: `C:\site\.cache\docs\v6\optional_features\advancedworkflow\01_adding-workflows.md`, want: "/en/6/optional_features/advancedworkflow/security/"},
		{name: "outside any root", link: "other.md", file: "/tmp/notes.md", want: "other.md"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.ResolveMarkdownLink(tt.link, tt.file, "6"))
		})
	}
}

func TestResolveMarkdownLink_PassThrough(t *testing.T) {
	r := &Resolver{}

	for _, link := range []string{"#intro", "https://example.com/a.md", "http://example.com", "mailto:docs@example.com", "api:SilverStripe\\ORM\\DataObject", "/en/6/getting_started/", ""} {
		assert.Equal(t, link, r.ResolveMarkdownLink(link, workflowFile, "6"), link)
	}

	assert.Equal(t, "./04_security.md", r.ResolveMarkdownLink("./04_security.md", "", "6"))
	assert.Equal(t, "./04_security.md", r.ResolveMarkdownLink("./04_security.md", workflowFile, ""))
}

func TestResolveMarkdownLink_CustomRoots(t *testing.T) {
	r := &Resolver{ContentRoots: []string{"content/docs"}}
	got := r.ResolveMarkdownLink("../02_Templates/index.md", "/site/content/docs/v5/01_Intro/01_Start.md", "5")
	assert.Equal(t, "/en/5/templates/", got)
}

func TestResolveImagePath(t *testing.T) {
	r := NewResolver()
	modelFile := "/var/www/.cache/docs/v6/02_Developer_Guides/01_Model/03_Relations.md"

	tests := []struct {
		name string
		path string
		file string
		want string
	}{
		{name: "images dir kept", path: "../_images/diagram.png", file: modelFile, want: "/en/6/developer_guides/_images/diagram.png"},
		{name: "file name kept", path: "_images/Screen_Shot.PNG", file: modelFile, want: "/en/6/developer_guides/model/_images/Screen_Shot.PNG"},
		{name: "user docs", path: "./_images/menu.png", file: "/var/www/.cache/user/v5/01_Managing_your_website/index.md", want: "/en/5/managing_your_website/_images/menu.png"},
		{name: "absolute", path: "/assets/logo.png", file: modelFile, want: "/assets/logo.png"},
		{name: "remote", path: "https://example.com/logo.png", file: modelFile, want: "https://example.com/logo.png"},
		{name: "no file", path: "_images/a.png", file: "", want: "_images/a.png"},
		{name: "no version dir", path: "a.png", file: "/tmp/notes.md", want: "a.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.ResolveImagePath(tt.path, tt.file))
		})
	}
}
