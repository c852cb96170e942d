package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyPath       = "path"
	KeyFile       = "file"
	KeySource     = "source"
	KeyOutput     = "output"
	KeyCount      = "count"
	KeyFileType   = "file_type"
	KeyVersion    = "version"
	KeyStrategy   = "strategy"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func File(f string) slog.Attr         { return slog.String(KeyFile, f) }
func Source(s string) slog.Attr       { return slog.String(KeySource, s) }
func Output(o string) slog.Attr       { return slog.String(KeyOutput, o) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func FileType(t string) slog.Attr     { return slog.String(KeyFileType, t) }
func Version(v string) slog.Attr      { return slog.String(KeyVersion, v) }
func Strategy(s string) slog.Attr     { return slog.String(KeyStrategy, s) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
