// Package logging provides the slog helpers shared by client components: a
// no-op logger for callers that want silence, a component-tagging wrapper,
// and typed attribute constructors so log lines keep a uniform shape.
package logging
