package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyVersion    = "version"
	KeySlug       = "slug"
	KeyParentSlug = "parent_slug"
	KeyCategory   = "category"
	KeyFeature    = "feature"
	KeyPath       = "path"
	KeyRepo       = "repository"
	KeyBranch     = "branch"
	KeyKind       = "kind"
	KeyCount      = "count"
	KeyDurationMS = "duration_ms"
	KeyMethod     = "method"
	KeyStatus     = "status"
	KeyRequestID  = "request_id"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Version(v string) slog.Attr       { return slog.String(KeyVersion, v) }
func Slug(s string) slog.Attr          { return slog.String(KeySlug, s) }
func ParentSlug(s string) slog.Attr    { return slog.String(KeyParentSlug, s) }
func Category(c string) slog.Attr      { return slog.String(KeyCategory, c) }
func Feature(f string) slog.Attr       { return slog.String(KeyFeature, f) }
func Path(p string) slog.Attr          { return slog.String(KeyPath, p) }
func Repository(r string) slog.Attr    { return slog.String(KeyRepo, r) }
func Branch(b string) slog.Attr        { return slog.String(KeyBranch, b) }
func Kind(k string) slog.Attr          { return slog.String(KeyKind, k) }
func Count(n int) slog.Attr            { return slog.Int(KeyCount, n) }
func DurationMS(ms float64) slog.Attr  { return slog.Float64(KeyDurationMS, ms) }
func Method(m string) slog.Attr        { return slog.String(KeyMethod, m) }
func Status(code int) slog.Attr        { return slog.Int(KeyStatus, code) }
func RequestID(id string) slog.Attr    { return slog.String(KeyRequestID, id) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
