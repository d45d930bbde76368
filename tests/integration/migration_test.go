// Integration tests for the entity migration paths. Require a reachable
// target database with the schema in place:
//
//	DATABASE_URL=postgres://... go test ./tests/integration/
//
// Skipped otherwise.
package integration

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"

	"github.com/autoluxe/autoluxe-migrate/internal/etl"
	"github.com/autoluxe/autoluxe-migrate/pkg/database"
	"github.com/autoluxe/autoluxe-migrate/pkg/logger"
	"github.com/autoluxe/autoluxe-migrate/pkg/models"
)

type staticExtractor struct {
	docs []etl.Document
}

func (s *staticExtractor) Extract(ctx context.Context) ([]etl.Document, error) {
	return s.docs, nil
}

func TestBrandMigrationIsIdempotent(t *testing.T) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	db, err := database.ConnectPostgres(dsn)
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	testIDs := []string{"it-brand1", "it-brand2"}
	cleanup := func() {
		db.NewDelete().Model((*models.BrandRow)(nil)).
			Where("id IN (?)", bun.In(testIDs)).
			Exec(ctx)
	}
	cleanup()
	defer cleanup()

	extractor := &staticExtractor{docs: []etl.Document{
		{ID: "it-brand1", Data: map[string]interface{}{
			"name": "IT Bentley", "slug": "it-bentley", "featured": true,
		}},
		{ID: "it-brand2", Data: map[string]interface{}{
			"name": "IT Bugatti", "slug": "it-bugatti", "carCount": int64(3),
		}},
	}}

	ledgerDir := t.TempDir()
	run := func() *etl.Stats {
		ledger, err := etl.OpenLedger(ledgerDir, "brands")
		require.NoError(t, err)
		defer ledger.Close()

		pipeline := &etl.Pipeline{
			Entity:    "brands",
			Extractor: extractor,
			Loader:    &etl.BrandLoader{DB: db},
			Ledger:    ledger,
			Log:       logger.Get(),
		}
		stats, err := pipeline.Run(ctx)
		require.NoError(t, err)
		return stats
	}

	first := run()
	assert.Equal(t, 2, first.Migrated)
	assert.Equal(t, 0, first.Failed)

	// second pass: ledger short-circuits, nothing is written twice
	second := run()
	assert.Equal(t, 2, second.Resumed)
	assert.Equal(t, 0, second.Migrated)
	assert.Equal(t, 0, second.Failed)

	// even without the ledger the unique constraints turn re-inserts
	// into skips, not duplicate rows
	bare := &etl.Pipeline{
		Entity:    "brands",
		Extractor: extractor,
		Loader:    &etl.BrandLoader{DB: db},
		Log:       logger.Get(),
	}
	third, err := bare.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, third.Migrated)
	assert.Equal(t, 2, third.Skipped)

	count, err := db.NewSelect().Model((*models.BrandRow)(nil)).
		Where("id IN (?)", bun.In(testIDs)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	var migrated models.BrandRow
	err = db.NewSelect().Model(&migrated).Where("id = ?", "it-brand1").Scan(ctx)
	require.NoError(t, err)
	assert.Equal(t, "IT Bentley", migrated.Name)
	assert.True(t, migrated.Featured)
	assert.Equal(t, 0, migrated.CarCount)
	assert.Nil(t, migrated.Description)
}

func TestCarMigrationUpsertsOnRerun(t *testing.T) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	db, err := database.ConnectPostgres(dsn)
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	cleanup := func() {
		db.NewDelete().Model((*models.CarRow)(nil)).
			Where("id = ?", "it-car1").
			Exec(ctx)
	}
	cleanup()
	defer cleanup()

	carDoc := func(price float64, available bool) []etl.Document {
		return []etl.Document{
			{ID: "it-car1", Data: map[string]interface{}{
				"name":         "IT Huracan",
				"brand":        "IT Lamborghini",
				"year":         int64(2023),
				"type":         "Coupe",
				"fuelType":     "Petrol",
				"transmission": "Automatic",
				"dailyPrice":   price,
				"available":    available,
			}},
		}
	}

	run := func(docs []etl.Document) *etl.Stats {
		pipeline := &etl.Pipeline{
			Entity:    "cars",
			Extractor: &staticExtractor{docs: docs},
			Loader: &etl.CarLoader{
				DB:       db,
				Resolver: &etl.BrandResolver{DB: db, Log: logger.Get()},
			},
			Log: logger.Get(),
		}
		stats, err := pipeline.Run(ctx)
		require.NoError(t, err)
		return stats
	}

	first := run(carDoc(2500, true))
	assert.Equal(t, 1, first.Migrated)
	assert.Equal(t, 0, first.Failed)

	// re-run with changed fields: the row is updated in place, not
	// duplicated and not skipped
	second := run(carDoc(2900, false))
	assert.Equal(t, 1, second.Migrated)
	assert.Equal(t, 0, second.Skipped)
	assert.Equal(t, 0, second.Failed)

	count, err := db.NewSelect().Model((*models.CarRow)(nil)).
		Where("id = ?", "it-car1").
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	var row models.CarRow
	err = db.NewSelect().Model(&row).Where("id = ?", "it-car1").Scan(ctx)
	require.NoError(t, err)
	assert.Equal(t, "IT Huracan", row.Name)
	assert.Equal(t, "IT Lamborghini", row.BrandName)
	assert.Equal(t, 2900.0, row.DailyPrice)
	assert.False(t, row.Available)
}
