// Package errors provides the classified errors used across docnav.
//
// Core lookups never fail; only content sources, configuration and the
// outer surfaces return errors, and every one of them carries a category:
//
//	err := errors.WrapError(cause, errors.CategoryGit, "resolve branch").
//		WithContext("branch", "6.1").
//		Build()
//
// The CLI adapter turns categories into exit codes, the HTTP adapter into
// status codes. Both log through slog at a level derived from the category.
package errors
