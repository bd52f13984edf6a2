package docs

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	derrors "git.home.luguber.info/inful/docnav/internal/docs/errors"
	ferrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/logfields"
	"git.home.luguber.info/inful/docnav/internal/sources"
)

// OptionalFeaturesDir is the directory under a version that holds one
// sub-directory per optional feature module.
const OptionalFeaturesDir = "optional_features"

var versionDirPattern = regexp.MustCompile(`^v([0-9]+)$`)

// FilesystemSource reads markdown from a directory laid out as
// {Root}/v{N}/... with feature modules under v{N}/optional_features/{name}/.
type FilesystemSource struct {
	Root     string
	Category sources.Category
}

// Files walks every version directory below Root.
func (s FilesystemSource) Files() ([]SourceFile, error) {
	root, err := filepath.Abs(s.Root)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "resolve content root").
			WithContext("root", s.Root).Build()
	}
	entries, err := os.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ferrors.WrapError(derrors.ErrContentRootNotFound, ferrors.CategoryFileSystem, "read content root").
				WithContext("root", root).Build()
		}
		return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "read content root").
			WithContext("root", root).Build()
	}

	var files []SourceFile
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		m := versionDirPattern.FindStringSubmatch(entry.Name())
		if m == nil {
			slog.Debug("Skipping non-version directory", logfields.Path(entry.Name()))
			continue
		}
		versionFiles, err := s.walkVersion(filepath.Join(root, entry.Name()), m[1])
		if err != nil {
			return nil, err
		}
		slog.Debug("Documentation discovered",
			logfields.Version(m[1]),
			logfields.Category(string(s.category())),
			logfields.Count(len(versionFiles)))
		files = append(files, versionFiles...)
	}
	return files, nil
}

func (s FilesystemSource) category() sources.Category {
	if s.Category == "" {
		return sources.CategoryDocs
	}
	return s.Category
}

// walkVersion collects the markdown files of one version directory.
func (s FilesystemSource) walkVersion(versionDir, version string) ([]SourceFile, error) {
	var files []SourceFile

	err := filepath.Walk(versionDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		name := info.Name()
		if info.IsDir() {
			if path != versionDir && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(name, ".") || !isMarkdownFile(name) {
			return nil
		}

		rel, err := filepath.Rel(versionDir, path)
		if err != nil {
			return fmt.Errorf("%w: %w", derrors.ErrInvalidRelativePath, err)
		}
		rel = filepath.ToSlash(rel)
		if !strings.Contains(rel, "/") && isIgnoredFile(name) {
			return nil
		}

		feature, filePath := splitFeature(rel)
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", derrors.ErrFileReadFailed, path, err)
		}

		files = append(files, SourceFile{
			AbsolutePath: path,
			FilePath:     filePath,
			Content:      content,
			Version:      version,
			Category:     s.category(),
			Feature:      feature,
		})
		return nil
	})
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "walk version directory").
			WithContext("path", versionDir).
			WithContext("version", version).
			Build()
	}
	return files, nil
}

// splitFeature separates optional_features/{name}/rest into (name, rest).
// Files directly inside optional_features belong to the core docs.
func splitFeature(rel string) (feature, filePath string) {
	prefix := OptionalFeaturesDir + "/"
	if !strings.HasPrefix(rel, prefix) {
		return "", rel
	}
	rest := strings.TrimPrefix(rel, prefix)
	name, inner, ok := strings.Cut(rest, "/")
	if !ok || name == "" {
		return "", rel
	}
	return name, inner
}

func isMarkdownFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return ext == ".md" || ext == ".markdown"
}

// isIgnoredFile reports repository housekeeping files found at a version root.
func isIgnoredFile(filename string) bool {
	ignored := []string{
		"README.md",
		"CONTRIBUTING.md",
		"CHANGELOG.md",
		"LICENSE.md",
	}
	for _, ignore := range ignored {
		if strings.EqualFold(filename, ignore) {
			return true
		}
	}
	return false
}
