package docs

import (
	"path"
	"strings"

	"git.home.luguber.info/inful/docnav/internal/slug"
	"git.home.luguber.info/inful/docnav/internal/sources"
)

// Document is one markdown file of the corpus with its derived addressing
// and metadata. Documents are owned by the Corpus that built them and must
// not be mutated by consumers.
type Document struct {
	Slug            string           `json:"slug"`
	Version         string           `json:"version"`
	Category        sources.Category `json:"category"`
	OptionalFeature string           `json:"optionalFeature,omitempty"`

	FilePath         string `json:"filePath"`
	FileAbsolutePath string `json:"-"`

	FileTitle  string `json:"fileTitle"`
	Title      string `json:"title"`
	IsIndex    bool   `json:"isIndex"`
	ParentSlug string `json:"parentSlug"`

	Content   string `json:"-"`
	Summary   string `json:"summary,omitempty"`
	Icon      string `json:"icon,omitempty"`
	IconBrand string `json:"iconBrand,omitempty"`

	HideChildren bool `json:"hideChildren"`
	HideSelf     bool `json:"hideSelf"`
	UnhideSelf   bool `json:"unhideSelf"`

	Extra map[string]any `json:"extra,omitempty"`

	Fingerprint string `json:"fingerprint"`
	EditURL     string `json:"editUrl"`

	// Order is the position of the source file in enumeration order.
	Order int `json:"-"`
}

// IsVersionRoot reports whether d is its version's homepage.
func (d *Document) IsVersionRoot() bool {
	return d.Slug == slug.VersionRoot(d.Version)
}

// Name is the document's last path segment in slug form; for index
// documents it is the directory name.
func (d *Document) Name() string {
	return path.Base(strings.TrimSuffix(d.Slug, "/"))
}
