package errors

// ErrorCategory says which part of a run failed. The CLI maps it to an exit code.
type ErrorCategory string

const (
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"
	CategoryNotFound   ErrorCategory = "not_found"

	// CategoryGit covers failures reading repository metadata.
	CategoryGit ErrorCategory = "git"

	CategoryFileSystem ErrorCategory = "filesystem"
	CategoryDocs       ErrorCategory = "docs"
	CategoryMetrics    ErrorCategory = "metrics"

	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity picks the log level used when the error is reported.
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // run aborted
	SeverityError   ErrorSeverity = "error"   // operation failed
	SeverityWarning ErrorSeverity = "warning" // run continued without the feature
)

// RetryStrategy tells the operator whether running again can help.
type RetryStrategy string

const (
	RetryNever      RetryStrategy = "never"
	RetryUserAction RetryStrategy = "user" // fix input, then run again
)

// ErrorContext holds structured fields logged with the error.
type ErrorContext map[string]any

// Set adds or updates a field.
func (c ErrorContext) Set(key string, value any) ErrorContext {
	if c == nil {
		c = make(ErrorContext)
	}
	c[key] = value
	return c
}
