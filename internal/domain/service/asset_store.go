package service

import "context"

// AssetStore defines the interface for the binary asset collaborator.
// The core only stores and forwards the returned reference string; the
// bytes themselves live in whatever bucket backs the implementation.
type AssetStore interface {
	// Save writes the asset under the given prefix (e.g. "profile_pictures")
	// and returns a retrievable reference string.
	Save(ctx context.Context, prefix, filename string, data []byte) (string, error)

	// Delete removes a previously stored asset. Unknown references are not an error.
	Delete(ctx context.Context, ref string) error
}
