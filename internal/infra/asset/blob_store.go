// Package asset implements the binary asset store on top of a gocloud.dev blob bucket.
package asset

import (
	"context"
	"path"
	"strings"

	"bazaar/config"
	"bazaar/internal/domain/service"
	"bazaar/internal/errors"

	"github.com/google/uuid"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Driver for local file buckets; cloud deployments swap the bucket URL.
	_ "gocloud.dev/blob/fileblob"
)

// blobStore stores uploaded images in a blob bucket and hands back the
// object key as the reference string persisted on profiles and offers.
type blobStore struct {
	bucket *blob.Bucket
}

// New opens the configured bucket and returns it as a service.AssetStore.
func New(ctx context.Context, cfg *config.Config) (service.AssetStore, error) {
	if cfg.Assets == nil || cfg.Assets.BucketURL == "" {
		return nil, errors.New("assets bucket URL must be provided")
	}

	bucket, err := blob.OpenBucket(ctx, cfg.Assets.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open asset bucket")
	}

	return &blobStore{bucket: bucket}, nil
}

// Save writes the asset under "<prefix>/<random>-<filename>" and returns that key.
func (s *blobStore) Save(ctx context.Context, prefix, filename string, data []byte) (string, error) {
	key := path.Join(prefix, uuid.New().String()+"-"+sanitizeFilename(filename))

	if err := s.bucket.WriteAll(ctx, key, data, nil); err != nil {
		return "", errors.Wrap(err, "failed to write asset")
	}

	return key, nil
}

// Delete removes a previously stored asset. Unknown references are not an error.
func (s *blobStore) Delete(ctx context.Context, ref string) error {
	if ref == "" {
		return nil
	}

	if err := s.bucket.Delete(ctx, ref); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrap(err, "failed to delete asset")
	}

	return nil
}

func sanitizeFilename(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == "/" || name == "" {
		return "upload"
	}

	return name
}
