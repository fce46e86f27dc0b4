package logger

import "context"

type contextKey string

const logFieldsKey contextKey = "log_fields"

// LogFields contains structured fields automatically added to all logs within a context.
// Set them once where a request or job enters the system and every slog *Context call
// downstream carries them.
type LogFields struct {
	ContextID *string // requirement context id
	PRDID     *string // generated document id
	JobID     *int64  // async generation job id
	MessageID *string // Redis stream message ID
	Source    *string // intake source (text, pdf, xlsx, gitlab, mcp)
	Component string  // e.g. "blueprint.aggregator"
}

// WithLogFields enriches context with structured log fields.
// Multiple calls merge fields, newer non-nil/non-empty values win.
func WithLogFields(ctx context.Context, fields LogFields) context.Context {
	merged := mergeFields(GetLogFields(ctx), fields)
	return context.WithValue(ctx, logFieldsKey, merged)
}

// GetLogFields retrieves log fields from context.
func GetLogFields(ctx context.Context) LogFields {
	if fields, ok := ctx.Value(logFieldsKey).(LogFields); ok {
		return fields
	}
	return LogFields{}
}

func mergeFields(existing, next LogFields) LogFields {
	result := existing

	if next.ContextID != nil {
		result.ContextID = next.ContextID
	}
	if next.PRDID != nil {
		result.PRDID = next.PRDID
	}
	if next.JobID != nil {
		result.JobID = next.JobID
	}
	if next.MessageID != nil {
		result.MessageID = next.MessageID
	}
	if next.Source != nil {
		result.Source = next.Source
	}
	if next.Component != "" {
		result.Component = next.Component
	}

	return result
}

// Ptr is a helper to create a pointer from a value.
// Useful for setting LogFields inline: logger.WithLogFields(ctx, logger.LogFields{ContextID: logger.Ptr(id)})
func Ptr[T any](v T) *T {
	return &v
}

// Truncate truncates a string to maxLen bytes, appending "..." if truncated.
// Requirements can be long; log a prefix.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
