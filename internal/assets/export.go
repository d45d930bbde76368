// Package assets moves image files from the legacy storage bucket to the
// new provider, staging them on the local filesystem in between.
package assets

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"

	"github.com/autoluxe/autoluxe-migrate/pkg/logger"
)

// Exporter downloads every object in the legacy bucket to a local path
// mirroring its remote path under OutDir. Listing failures are fatal;
// per-file download failures are logged and the walk continues.
type Exporter struct {
	Client *storage.Client
	Bucket string
	OutDir string
	Log    logger.Logger
}

func (e *Exporter) Run(ctx context.Context) error {
	e.Log.WithField("Bucket", e.Bucket).Info("listing legacy storage objects")

	bucket := e.Client.Bucket(e.Bucket)
	it := bucket.Objects(ctx, nil)

	downloaded := 0
	failed := 0
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to list bucket %s: %w", e.Bucket, err)
		}
		// directory placeholder objects
		if strings.HasSuffix(attrs.Name, "/") {
			continue
		}

		if err := e.download(ctx, bucket, attrs.Name); err != nil {
			e.Log.WithField("Object", attrs.Name).WithError(err).Error("download failed")
			failed++
			continue
		}
		e.Log.WithField("Object", attrs.Name).Debug("downloaded")
		downloaded++
	}

	e.Log.WithField("Downloaded", downloaded).
		WithField("Failed", failed).
		Infof("export complete, files written to %s", e.OutDir)
	return nil
}

func (e *Exporter) download(ctx context.Context, bucket *storage.BucketHandle, name string) error {
	dest := filepath.Join(e.OutDir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return err
	}

	reader, err := bucket.Object(name).NewReader(ctx)
	if err != nil {
		return err
	}
	defer reader.Close()

	file, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer file.Close()

	if _, err := io.Copy(file, reader); err != nil {
		os.Remove(dest)
		return err
	}
	return nil
}
