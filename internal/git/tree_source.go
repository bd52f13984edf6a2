package git

import (
	stderrors "errors"
	"log/slog"
	"path"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"git.home.luguber.info/inful/docnav/internal/docs"
	"git.home.luguber.info/inful/docnav/internal/logfields"
	"git.home.luguber.info/inful/docnav/internal/sources"
)

// TreeSource yields the markdown files of every source registered in
// Registry, read from the committed tree of the configured branch.
type TreeSource struct {
	// ReposDir holds the clones as {owner}/{repo}.
	ReposDir string
	Registry *sources.Registry
	// VirtualRoot prefixes the synthesized absolute paths, which follow the
	// filesystem layout {VirtualRoot}/v{N}/[optional_features/{name}/]...
	// Empty selects {ReposDir}/.cache/{category}.
	VirtualRoot string
	// Strict turns a missing clone or branch into an error instead of a
	// skipped source.
	Strict bool
}

// Files implements docs.Source.
func (s TreeSource) Files() ([]docs.SourceFile, error) {
	var files []docs.SourceFile
	for _, entry := range s.Registry.Entries() {
		entryFiles, err := s.readEntry(entry)
		if err != nil {
			if s.Strict || !isMissing(err) {
				return nil, err
			}
			slog.Warn("Skipping documentation source",
				logfields.Version(entry.Version),
				logfields.Feature(entry.Feature),
				logfields.Repository(entry.Config.Owner+"/"+entry.Config.Repo),
				logfields.Branch(entry.Config.Branch),
				logfields.Error(err))
			continue
		}
		slog.Debug("Read documentation tree",
			logfields.Version(entry.Version),
			logfields.Feature(entry.Feature),
			logfields.Repository(entry.Config.Owner+"/"+entry.Config.Repo),
			logfields.Count(len(entryFiles)))
		files = append(files, entryFiles...)
	}
	return files, nil
}

func (s TreeSource) repoPath(cfg sources.SourceConfig) string {
	return filepath.Join(s.ReposDir, cfg.Owner, cfg.Repo)
}

func (s TreeSource) virtualRoot() string {
	if s.VirtualRoot != "" {
		return s.VirtualRoot
	}
	return filepath.Join(s.ReposDir, ".cache", string(s.Registry.Category()))
}

func (s TreeSource) readEntry(entry sources.Entry) ([]docs.SourceFile, error) {
	repoPath := s.repoPath(entry.Config)
	commit, err := resolveBranch(repoPath, entry.Config.Branch)
	if err != nil {
		return nil, err
	}

	tree, err := commit.Tree()
	if err != nil {
		return nil, classifyGitError(err, "tree", repoPath)
	}
	if docsPath := strings.Trim(entry.Config.DocsPath, "/"); docsPath != "" {
		tree, err = tree.Tree(docsPath)
		if err != nil {
			return nil, classifyGitError(err, "docs path "+docsPath, repoPath)
		}
	}

	base := path.Join(filepath.ToSlash(s.virtualRoot()), "v"+entry.Version)
	if entry.Feature != "" {
		base = path.Join(base, docs.OptionalFeaturesDir, entry.Feature)
	}

	var files []docs.SourceFile
	err = tree.Files().ForEach(func(f *object.File) error {
		if !isMarkdown(f.Name) || hasHiddenSegment(f.Name) {
			return nil
		}
		content, err := f.Contents()
		if err != nil {
			return err
		}
		files = append(files, docs.SourceFile{
			AbsolutePath: path.Join(base, f.Name),
			FilePath:     f.Name,
			Content:      []byte(content),
			Version:      entry.Version,
			Category:     s.Registry.Category(),
			Feature:      entry.Feature,
		})
		return nil
	})
	if err != nil {
		return nil, classifyGitError(err, "read files", repoPath)
	}
	return files, nil
}

// resolveBranch finds the commit a branch points at, preferring the
// remote-tracking ref that an external fetch keeps current.
func resolveBranch(repoPath, branch string) (*object.Commit, error) {
	repo, err := git.PlainOpen(repoPath)
	if err != nil {
		return nil, classifyGitError(err, "open", repoPath)
	}

	candidates := []plumbing.Revision{
		plumbing.Revision("refs/remotes/origin/" + branch),
		plumbing.Revision("refs/heads/" + branch),
		plumbing.Revision(branch),
	}
	for _, rev := range candidates {
		hash, err := repo.ResolveRevision(rev)
		if err != nil {
			continue
		}
		commit, err := repo.CommitObject(*hash)
		if err != nil {
			return nil, classifyGitError(err, "commit "+hash.String(), repoPath)
		}
		return commit, nil
	}
	return nil, classifyGitError(ErrBranchNotFound, "resolve "+branch, repoPath)
}

func isMissing(err error) bool {
	return stderrors.Is(err, git.ErrRepositoryNotExists) ||
		stderrors.Is(err, ErrBranchNotFound) ||
		stderrors.Is(err, object.ErrDirectoryNotFound)
}

func isMarkdown(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	return ext == ".md" || ext == ".markdown"
}

func hasHiddenSegment(name string) bool {
	for _, seg := range strings.Split(name, "/") {
		if strings.HasPrefix(seg, ".") {
			return true
		}
	}
	return false
}
