// Package errors provides sentinel errors for content source operations.
// Sources wrap them in classified errors so callers can match with errors.Is.
package errors

import "errors"

var (
	// ErrContentRootNotFound indicates the configured content root does not exist.
	ErrContentRootNotFound = errors.New("content root not found")

	// ErrDocsDirWalkFailed indicates filesystem traversal of a version directory failed.
	ErrDocsDirWalkFailed = errors.New("documentation directory walk failed")

	// ErrFileReadFailed indicates reading a documentation file failed.
	ErrFileReadFailed = errors.New("documentation file read failed")

	// ErrInvalidRelativePath indicates calculating a path relative to the docs base failed.
	ErrInvalidRelativePath = errors.New("invalid relative path calculation")

	// ErrNoDocsFound indicates a source produced no documentation files at all.
	ErrNoDocsFound = errors.New("no documentation files found")
)
