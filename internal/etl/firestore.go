package etl

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

// FirestoreExtractor reads every document of one collection into memory.
// There is no pagination: collections here are small (hundreds of rows)
// and the migration wants the full set up front for reconciliation.
type FirestoreExtractor struct {
	Client     *firestore.Client
	Collection string
}

func (e *FirestoreExtractor) Extract(ctx context.Context) ([]Document, error) {
	iter := e.Client.Collection(e.Collection).Documents(ctx)
	defer iter.Stop()

	var docs []Document
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			// connectivity or credential failure aborts the run
			return nil, fmt.Errorf("failed to read collection %s: %w", e.Collection, err)
		}
		docs = append(docs, Document{ID: snap.Ref.ID, Data: snap.Data()})
	}

	return docs, nil
}
