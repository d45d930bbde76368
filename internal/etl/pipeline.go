package etl

import (
	"context"
	"time"

	"github.com/autoluxe/autoluxe-migrate/pkg/logger"
)

// Stats are the per-entity tallies reported at the end of a run.
type Stats struct {
	Source   int // documents read from the source store
	Migrated int
	Skipped  int
	Failed   int
	Resumed  int // rows skipped because the ledger marked them done
}

// Pipeline runs one entity migration: a single sequential pass of
// extract, map and load with per-row error isolation. Only extraction
// failures abort the run.
type Pipeline struct {
	Entity    string
	Extractor Extractor
	Loader    Loader
	Ledger    *Ledger
	DryRun    bool
	Log       logger.Logger
}

func (p *Pipeline) Run(ctx context.Context) (*Stats, error) {
	log := p.Log.WithField("Entity", p.Entity)
	log.Info("fetching source documents")

	docs, err := p.Extractor.Extract(ctx)
	if err != nil {
		return nil, err
	}

	stats := &Stats{Source: len(docs)}
	log.WithField("Count", stats.Source).Info("fetched source documents")

	start := time.Now()
	for _, doc := range docs {
		if p.Ledger != nil && p.Ledger.Done(doc.ID) {
			stats.Resumed++
			continue
		}

		if p.DryRun {
			log.WithField("Id", doc.ID).Debug("[dry run] would migrate document")
			continue
		}

		outcome := p.Loader.Load(ctx, doc)
		switch outcome.Status {
		case StatusMigrated:
			stats.Migrated++
			log.WithField("Id", doc.ID).Infof("migrated %s: %q", p.Entity, outcome.Label)
			if p.Ledger != nil {
				if err := p.Ledger.Mark(doc.ID); err != nil {
					log.WithError(err).Warn("failed to record ledger entry")
				}
			}
		case StatusSkipped:
			stats.Skipped++
			log.WithField("Id", doc.ID).Warnf("skipping %s %q: %s", p.Entity, outcome.Label, outcome.Detail)
		case StatusFailed:
			stats.Failed++
			log.WithField("Id", doc.ID).Errorf("error migrating %s %q: %s", p.Entity, outcome.Label, outcome.Detail)
		}
	}

	duration := time.Since(start)
	rate := 0.0
	if duration.Seconds() > 0 {
		rate = float64(stats.Migrated) / duration.Seconds()
	}
	log.WithField("Migrated", stats.Migrated).
		WithField("Skipped", stats.Skipped).
		WithField("Failed", stats.Failed).
		WithField("Resumed", stats.Resumed).
		Infof("pass complete in %s (%.2f rows/sec)", duration.Round(time.Millisecond), rate)

	return stats, nil
}
