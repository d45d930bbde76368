package assets

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	storage_go "github.com/supabase-community/storage-go"

	"github.com/autoluxe/autoluxe-migrate/pkg/logger"
)

// knownBuckets are the destination buckets on the new provider. The
// first path segment under the export root selects one of them.
var knownBuckets = map[string]bool{
	"brands":     true,
	"categories": true,
	"cars":       true,
}

// SplitBucketPath maps a slash-separated path relative to the export root
// onto a (bucket, object key) pair. ok is false when the top-level
// segment is not a known bucket or no key remains.
func SplitBucketPath(rel string) (bucket, key string, ok bool) {
	parts := strings.SplitN(rel, "/", 2)
	if len(parts) < 2 || parts[1] == "" {
		return "", "", false
	}
	if !knownBuckets[parts[0]] {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// Uploader walks the export directory and re-uploads every file to the
// new storage provider in upsert mode. Unknown top-level segments are
// warned about and skipped; per-file failures do not halt the walk.
type Uploader struct {
	Client  *storage_go.Client
	FromDir string
	Log     logger.Logger
}

func (u *Uploader) Run(ctx context.Context) error {
	uploaded := 0
	skipped := 0
	failed := 0

	err := filepath.WalkDir(u.FromDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(u.FromDir, path)
		if err != nil {
			return err
		}

		bucket, key, ok := SplitBucketPath(filepath.ToSlash(rel))
		if !ok {
			u.Log.WithField("Path", rel).Warn("skipping file with unknown bucket")
			skipped++
			return nil
		}

		if err := u.upload(path, bucket, key); err != nil {
			u.Log.WithField("Path", rel).WithError(err).Error("upload failed")
			failed++
			return nil
		}
		u.Log.Debugf("uploaded %s/%s", bucket, key)
		uploaded++
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to walk export directory %s: %w", u.FromDir, err)
	}

	u.Log.WithField("Uploaded", uploaded).
		WithField("Skipped", skipped).
		WithField("Failed", failed).
		Info("asset upload complete")
	return nil
}

func (u *Uploader) upload(path, bucket, key string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	upsert := true
	_, err = u.Client.UploadFile(bucket, key, file, storage_go.FileOptions{Upsert: &upsert})
	return err
}
