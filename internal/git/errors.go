package git

import (
	stderrors "errors"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"git.home.luguber.info/inful/docnav/internal/foundation/errors"
)

// ErrBranchNotFound indicates none of the candidate references for a branch exist.
var ErrBranchNotFound = stderrors.New("branch not found in local clone")

// classifyGitError translates go-git errors into ClassifiedErrors.
func classifyGitError(err error, op, repoPath string) error {
	if err == nil {
		return nil
	}
	if _, ok := errors.AsClassified(err); ok {
		return err
	}

	category := errors.CategoryGit
	switch {
	case stderrors.Is(err, git.ErrRepositoryNotExists),
		stderrors.Is(err, plumbing.ErrReferenceNotFound),
		stderrors.Is(err, ErrBranchNotFound):
		category = errors.CategoryNotFound
	}
	return errors.WrapError(err, category, "git operation failed").
		WithContext("op", op).
		WithContext("repository", repoPath).
		Build()
}
