package repositories

import "context"

// ObjectStore abstracts the binary-object bucket holding signature images.
type ObjectStore interface {
	// Upload writes an object under key, overwriting any previous content.
	Upload(ctx context.Context, key string, contentType string, data []byte) error

	// Fetch reads an object's full content.
	Fetch(ctx context.Context, key string) ([]byte, error)

	// Delete removes an object. Deleting a missing object is not an error.
	Delete(ctx context.Context, key string) error
}
