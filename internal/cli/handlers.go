package cli

import (
	"context"
	"fmt"

	algoliasearch "github.com/algolia/algoliasearch-client-go/v3/algolia/search"
	storage_go "github.com/supabase-community/storage-go"
	"github.com/uptrace/bun"

	"cloud.google.com/go/firestore"

	"github.com/autoluxe/autoluxe-migrate/internal/assets"
	"github.com/autoluxe/autoluxe-migrate/internal/config"
	"github.com/autoluxe/autoluxe-migrate/internal/etl"
	"github.com/autoluxe/autoluxe-migrate/internal/search"
	"github.com/autoluxe/autoluxe-migrate/pkg/database"
	"github.com/autoluxe/autoluxe-migrate/pkg/logger"
	"github.com/autoluxe/autoluxe-migrate/pkg/models"
)

// Entity names double as the source collection and target table names.
const (
	entityBrands     = "brands"
	entityCategories = "categories"
	entityCars       = "cars"
)

func runEntityMigration(ctx context.Context, cfg *config.Config, opts *migrateOptions, entities []string) error {
	log := logger.Get()
	if opts.DryRun {
		log = logger.AddGlobalField("DryRun", true)
	}

	if err := cfg.RequireMigration(); err != nil {
		return err
	}

	db, err := database.ConnectPostgres(cfg.DatabaseURL.Value)
	if err != nil {
		return err
	}
	defer db.Close()

	credentials, err := cfg.ServiceAccountJSON()
	if err != nil {
		return err
	}
	source, err := database.NewFirestoreClient(ctx, cfg.FirebaseProjectID.Value, credentials)
	if err != nil {
		return err
	}
	defer source.Close()

	for _, entity := range entities {
		if err := migrateEntity(ctx, db, source, entity, opts, log); err != nil {
			return err
		}
	}
	return nil
}

func migrateEntity(ctx context.Context, db bun.IDB, source *firestore.Client, entity string, opts *migrateOptions, log logger.Logger) error {
	var (
		loader   etl.Loader
		model    interface{}
		resolver *etl.BrandResolver
	)
	switch entity {
	case entityBrands:
		loader = &etl.BrandLoader{DB: db}
		model = (*models.BrandRow)(nil)
	case entityCategories:
		loader = &etl.CategoryLoader{DB: db}
		model = (*models.CategoryRow)(nil)
	case entityCars:
		resolver = &etl.BrandResolver{DB: db, Log: log}
		loader = &etl.CarLoader{DB: db, Resolver: resolver}
		model = (*models.CarRow)(nil)
	default:
		return fmt.Errorf("unknown entity %q", entity)
	}

	ledger, err := etl.OpenLedger(opts.LedgerDir, entity)
	if err != nil {
		return err
	}
	defer ledger.Close()

	pipeline := &etl.Pipeline{
		Entity:    entity,
		Extractor: &etl.FirestoreExtractor{Client: source, Collection: entity},
		Loader:    loader,
		Ledger:    ledger,
		DryRun:    opts.DryRun,
		Log:       log,
	}

	stats, err := pipeline.Run(ctx)
	if err != nil {
		return err
	}
	if opts.DryRun {
		return nil
	}

	reconciler := &etl.Reconciler{DB: db, Log: log}
	targetCount := reconciler.Reconcile(ctx, entity, model, stats.Source)

	switch entity {
	case entityBrands:
		reconciler.SampleBrands(ctx, 5)
	case entityCars:
		reconciler.SampleCars(ctx, 10)
		reconciler.CarsByBrand(ctx)
		if resolver.Misses > 0 {
			log.Warnf("%d cars were inserted without a brand reference", resolver.Misses)
		}
	}

	logVerdict(log, entity, stats, targetCount)
	return nil
}

// logVerdict mirrors the summary the legacy scripts printed: full
// success, success with skipped rows, or issues to review. Mismatches
// never fail the run.
func logVerdict(log logger.Logger, entity string, stats *etl.Stats, targetCount int) {
	landed := stats.Migrated + stats.Resumed
	switch {
	case stats.Failed == 0 && stats.Skipped == 0 && landed == stats.Source && targetCount == stats.Source:
		log.Infof("%s migration completed successfully", entity)
	case stats.Failed == 0:
		log.Infof("%s migration completed, %d rows skipped", entity, stats.Skipped)
	default:
		log.Warnf("%s migration completed with %d errors, review before proceeding", entity, stats.Failed)
	}
}

func runPrecheck(ctx context.Context, cfg *config.Config) error {
	log := logger.Get()
	if err := cfg.RequireMigration(); err != nil {
		return err
	}

	db, err := database.ConnectPostgres(cfg.DatabaseURL.Value)
	if err != nil {
		return err
	}
	defer db.Close()

	credentials, err := cfg.ServiceAccountJSON()
	if err != nil {
		return err
	}
	source, err := database.NewFirestoreClient(ctx, cfg.FirebaseProjectID.Value, credentials)
	if err != nil {
		return err
	}
	defer source.Close()

	checks := []struct {
		entity string
		model  interface{}
	}{
		{entityBrands, (*models.BrandRow)(nil)},
		{entityCategories, (*models.CategoryRow)(nil)},
		{entityCars, (*models.CarRow)(nil)},
	}

	sourceLine := log
	targetLine := log
	for _, check := range checks {
		entity, model := check.entity, check.model
		docs, err := (&etl.FirestoreExtractor{Client: source, Collection: entity}).Extract(ctx)
		if err != nil {
			return err
		}
		sourceLine = sourceLine.WithField(entity, len(docs))

		count, err := db.NewSelect().Model(model).Count(ctx)
		if err != nil {
			return fmt.Errorf("failed to count %s: %w", entity, err)
		}
		targetLine = targetLine.WithField(entity, count)
	}

	sourceLine.Info("legacy store counts")
	targetLine.Info("target store counts")
	return nil
}

func runIndexSync(ctx context.Context, cfg *config.Config) error {
	log := logger.Get()
	if err := cfg.RequireIndexSync(); err != nil {
		return err
	}

	db, err := database.ConnectPostgres(cfg.DatabaseURL.Value)
	if err != nil {
		return err
	}
	defer db.Close()

	syncer := &search.Syncer{
		Client:    algoliasearch.NewClient(cfg.AlgoliaAppID.Value, cfg.AlgoliaAdminKey.Value),
		DB:        db,
		IndexName: cfg.AlgoliaIndexName.Value,
		Log:       log,
	}
	return syncer.Sync(ctx)
}

func runAssetExport(ctx context.Context, cfg *config.Config, outDir string) error {
	log := logger.Get()
	if err := cfg.RequireAssetExport(); err != nil {
		return err
	}

	credentials, err := cfg.ServiceAccountJSON()
	if err != nil {
		return err
	}
	client, err := database.NewStorageClient(ctx, credentials)
	if err != nil {
		return err
	}
	defer client.Close()

	exporter := &assets.Exporter{
		Client: client,
		Bucket: cfg.FirebaseStorageBucket.Value,
		OutDir: outDir,
		Log:    log,
	}
	return exporter.Run(ctx)
}

func runAssetUpload(ctx context.Context, cfg *config.Config, fromDir string) error {
	log := logger.Get()
	if err := cfg.RequireAssetUpload(); err != nil {
		return err
	}

	uploader := &assets.Uploader{
		Client:  storage_go.NewClient(cfg.SupabaseStorageURL.Value, cfg.SupabaseServiceRoleKey.Value, nil),
		FromDir: fromDir,
		Log:     log,
	}
	return uploader.Run(ctx)
}
