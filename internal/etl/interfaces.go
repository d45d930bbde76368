package etl

import "context"

// Document is one source record with its preserved document ID.
type Document struct {
	ID   string
	Data map[string]interface{}
}

// Extractor materializes the full, unfiltered source collection.
type Extractor interface {
	Extract(ctx context.Context) ([]Document, error)
}

// Loader maps and writes one source document, reporting the per-row
// outcome. Loaders never return an error: per-row failures are part of
// the outcome and the batch continues.
type Loader interface {
	Load(ctx context.Context, doc Document) Outcome
}

type Status int

const (
	StatusMigrated Status = iota
	StatusSkipped
	StatusFailed
)

// Outcome describes what happened to a single row. Label is the
// human-readable identity used in log lines, Detail the skip reason or
// error text.
type Outcome struct {
	Status Status
	Label  string
	Detail string
}
