package logs

// Span identifies a unit of work, such as one REPL session.
type Span string

type spanKey struct{}

var SpanKey = spanKey{}
