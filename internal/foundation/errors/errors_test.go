package errors

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder(t *testing.T) {
	cause := stderrors.New("reference not found")
	err := WrapError(cause, CategoryGit, "resolve branch").
		WithContext("branch", "6.1").
		WithContext("repo", "developer-docs").
		Build()

	assert.Equal(t, CategoryGit, err.Category())
	assert.Equal(t, "resolve branch", err.Message())
	assert.Same(t, cause, err.Cause())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, map[string]any{"branch": "6.1", "repo": "developer-docs"}, err.Details())
	assert.Equal(t, "resolve branch: reference not found branch=6.1 repo=developer-docs (git)", err.Error())
}

func TestBuilder_RepeatedKeyReplaces(t *testing.T) {
	err := ValidationError("bad interval").
		WithContext("interval", "0s").
		WithContext("interval", "-1s").
		Build()

	require.Len(t, err.Attrs(), 2)
	assert.Equal(t, "-1s", err.Details()["interval"])
}

func TestBuilder_BuildSnapshotsContext(t *testing.T) {
	b := NotFoundError("document not found").WithContext("slug", "/en/6/a/")
	first := b.Build()
	second := b.WithContext("version", "6").Build()

	assert.Len(t, first.Details(), 1)
	assert.Len(t, second.Details(), 2)
}

func TestAttrs(t *testing.T) {
	err := ConfigError("configuration file not found").WithContext("path", "docnav.yaml").Build()
	var got []string
	for _, a := range err.Attrs() {
		got = append(got, a.String())
	}
	assert.Equal(t, []string{"category=config", "path=docnav.yaml"}, got)
	assert.Nil(t, InternalError("bug").Build().Details())
}

func TestCategoryLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, CategoryNotFound.Level())
	assert.Equal(t, slog.LevelWarn, CategoryConfig.Level())
	assert.Equal(t, slog.LevelWarn, CategoryValidation.Level())
	assert.Equal(t, slog.LevelError, CategoryGit.Level())
	assert.Equal(t, slog.LevelError, CategoryInternal.Level())
}

func TestHelpers(t *testing.T) {
	err := FileSystemError("read content root").Build()
	wrapped := fmt.Errorf("index: %w", err)

	assert.True(t, IsClassified(wrapped))
	assert.True(t, HasCategory(wrapped, CategoryFileSystem))
	assert.False(t, HasCategory(wrapped, CategoryGit))

	got, ok := AsClassified(wrapped)
	require.True(t, ok)
	assert.Same(t, err, got)

	assert.False(t, IsClassified(stderrors.New("plain")))
	assert.False(t, HasCategory(nil, CategoryInternal))
}
