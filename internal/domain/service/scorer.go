package service

import "context"

// Score is the parsed reply of the scoring collaborator.
type Score struct {
	Label      string   // Raw label, not yet normalized.
	Confidence *float64 // Nil when the collaborator omitted it.
}

// Scorer asks the remote model for a verdict on a text sample.
// Implementations must wrap every failure (transport, status, body) so callers
// can treat them uniformly as an upstream failure.
type Scorer interface {
	Score(ctx context.Context, text string) (*Score, error)
}
