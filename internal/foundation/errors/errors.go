package errors

import (
	stderrors "errors"
	"log/slog"
	"strings"
)

// ErrorCategory groups errors by who has to act on them.
type ErrorCategory string

const (
	// Mistakes the caller can fix.
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"
	CategoryNotFound   ErrorCategory = "not_found"

	// Content source failures.
	CategoryFileSystem ErrorCategory = "filesystem"
	CategoryGit        ErrorCategory = "git"
	CategoryDocs       ErrorCategory = "docs"

	CategoryInternal ErrorCategory = "internal"
)

// Level is the slog level errors of category c are logged at.
func (c ErrorCategory) Level() slog.Level {
	switch c {
	case CategoryNotFound:
		return slog.LevelDebug
	case CategoryConfig, CategoryValidation:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// ClassifiedError is an error with a category and structured context.
type ClassifiedError struct {
	category ErrorCategory
	message  string
	cause    error
	attrs    []slog.Attr
}

// Error renders "message: cause [key=value ...] (category)".
func (e *ClassifiedError) Error() string {
	var b strings.Builder
	b.WriteString(e.message)
	if e.cause != nil {
		b.WriteString(": ")
		b.WriteString(e.cause.Error())
	}
	for _, a := range e.attrs {
		b.WriteString(" ")
		b.WriteString(a.String())
	}
	b.WriteString(" (")
	b.WriteString(string(e.category))
	b.WriteString(")")
	return b.String()
}

func (e *ClassifiedError) Unwrap() error { return e.cause }

func (e *ClassifiedError) Category() ErrorCategory { return e.category }

func (e *ClassifiedError) Message() string { return e.message }

func (e *ClassifiedError) Cause() error { return e.cause }

// IsCategory reports whether e belongs to category.
func (e *ClassifiedError) IsCategory(category ErrorCategory) bool {
	return e.category == category
}

// Attrs returns the context in insertion order, for structured logging.
func (e *ClassifiedError) Attrs() []slog.Attr {
	out := make([]slog.Attr, 0, len(e.attrs)+1)
	out = append(out, slog.String("category", string(e.category)))
	return append(out, e.attrs...)
}

// Details returns the context as a map, or nil when there is none.
func (e *ClassifiedError) Details() map[string]any {
	if len(e.attrs) == 0 {
		return nil
	}
	out := make(map[string]any, len(e.attrs))
	for _, a := range e.attrs {
		out[a.Key] = a.Value.Any()
	}
	return out
}

// ErrorBuilder assembles a ClassifiedError.
type ErrorBuilder struct {
	err ClassifiedError
}

// NewError starts an error of category.
func NewError(category ErrorCategory, message string) *ErrorBuilder {
	return &ErrorBuilder{err: ClassifiedError{category: category, message: message}}
}

// WrapError starts an error of category caused by err.
func WrapError(err error, category ErrorCategory, message string) *ErrorBuilder {
	b := NewError(category, message)
	b.err.cause = err
	return b
}

// WithContext attaches a key/value pair. A repeated key replaces the
// earlier value.
func (b *ErrorBuilder) WithContext(key string, value any) *ErrorBuilder {
	attr := slog.Any(key, value)
	for i, a := range b.err.attrs {
		if a.Key == key {
			b.err.attrs[i] = attr
			return b
		}
	}
	b.err.attrs = append(b.err.attrs, attr)
	return b
}

// Build returns the error. The builder can keep being used.
func (b *ErrorBuilder) Build() *ClassifiedError {
	e := b.err
	e.attrs = append([]slog.Attr(nil), b.err.attrs...)
	return &e
}

func ConfigError(message string) *ErrorBuilder     { return NewError(CategoryConfig, message) }
func ValidationError(message string) *ErrorBuilder { return NewError(CategoryValidation, message) }
func NotFoundError(message string) *ErrorBuilder   { return NewError(CategoryNotFound, message) }
func FileSystemError(message string) *ErrorBuilder { return NewError(CategoryFileSystem, message) }
func GitError(message string) *ErrorBuilder        { return NewError(CategoryGit, message) }
func InternalError(message string) *ErrorBuilder   { return NewError(CategoryInternal, message) }

// AsClassified finds the first ClassifiedError in err's chain.
func AsClassified(err error) (*ClassifiedError, bool) {
	var classified *ClassifiedError
	if stderrors.As(err, &classified) {
		return classified, true
	}
	return nil, false
}

// IsClassified reports whether err's chain holds a ClassifiedError.
func IsClassified(err error) bool {
	_, ok := AsClassified(err)
	return ok
}

// HasCategory reports whether the first ClassifiedError in err's chain
// belongs to category.
func HasCategory(err error, category ErrorCategory) bool {
	if classified, ok := AsClassified(err); ok {
		return classified.IsCategory(category)
	}
	return false
}
