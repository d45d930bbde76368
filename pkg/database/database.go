// Package database builds the clients for the three external stores:
// the target Postgres database, the legacy Firestore document store and
// the legacy cloud storage bucket.
package database

import (
	"context"
	"database/sql"
	"encoding/base64"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/storage"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"
	"google.golang.org/api/option"
)

// ConnectPostgres opens a bun handle against the target database and
// verifies connectivity before returning it.
func ConnectPostgres(dsn string) (*bun.DB, error) {
	sqlDB := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqlDB, pgdialect.New())

	db.AddQueryHook(bundebug.NewQueryHook(
		bundebug.WithEnabled(false),

		// BUNDEBUG=1 logs failed queries
		// BUNDEBUG=2 logs all queries
		bundebug.FromEnv("BUNDEBUG")))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("error connecting to Postgres (ping failed): %w", err)
	}

	return db, nil
}

// DecodeServiceAccount unwraps the base64-encoded service account JSON
// the legacy deployment ships in its environment.
func DecodeServiceAccount(encoded string) ([]byte, error) {
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("service account key is not valid base64: %w", err)
	}
	return decoded, nil
}

// NewFirestoreClient connects to the legacy document store.
func NewFirestoreClient(ctx context.Context, projectID string, credentialsJSON []byte) (*firestore.Client, error) {
	client, err := firestore.NewClient(ctx, projectID, option.WithCredentialsJSON(credentialsJSON))
	if err != nil {
		return nil, fmt.Errorf("error creating Firestore client: %w", err)
	}
	return client, nil
}

// NewStorageClient connects to the legacy storage provider holding the
// image assets.
func NewStorageClient(ctx context.Context, credentialsJSON []byte) (*storage.Client, error) {
	client, err := storage.NewClient(ctx, option.WithCredentialsJSON(credentialsJSON))
	if err != nil {
		return nil, fmt.Errorf("error creating storage client: %w", err)
	}
	return client, nil
}
