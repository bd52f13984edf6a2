package docs

import (
	"git.home.luguber.info/inful/docnav/internal/sources"
)

// SourceFile is one raw markdown file as yielded by a content source,
// tagged with its origin.
type SourceFile struct {
	// AbsolutePath locates the file for link resolution.
	AbsolutePath string
	// FilePath is relative to the source repository's docs path, slash separated.
	FilePath string
	Content  []byte
	Version  string
	Category sources.Category
	// Feature names the optional feature module, empty for core docs.
	Feature string
}

// Source yields the raw files a corpus is built from.
type Source interface {
	Files() ([]SourceFile, error)
}

// StaticSource serves a fixed list of files. It is used for fixtures and
// for embedding pre-loaded content.
type StaticSource []SourceFile

// Files returns a copy of the fixed list.
func (s StaticSource) Files() ([]SourceFile, error) {
	out := make([]SourceFile, len(s))
	copy(out, s)
	return out, nil
}

// MultiSource concatenates several sources in order.
type MultiSource []Source

// Files returns the files of every source, stopping at the first error.
func (m MultiSource) Files() ([]SourceFile, error) {
	var out []SourceFile
	for _, src := range m {
		files, err := src.Files()
		if err != nil {
			return nil, err
		}
		out = append(out, files...)
	}
	return out, nil
}
