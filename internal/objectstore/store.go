// Package objectstore abstracts blob storage for attachments and
// avatars. The service only depends on the Store interface; swapping
// the disk implementation for a cloud bucket is a wiring change.
package objectstore

import "context"

type Store interface {
	// Upload writes the bytes and returns the stored path.
	Upload(ctx context.Context, bucket, path string, data []byte, contentType string) (string, error)

	// Remove deletes the given paths. Missing paths are not an error.
	Remove(ctx context.Context, bucket string, paths []string) error
}
