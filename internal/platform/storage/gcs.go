// Package storage provides the Google Cloud Storage backed object store used
// for treasurer signature images.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	gcs "cloud.google.com/go/storage"
	portsrepo "github.com/kelompok16/kas-backend/internal/core/ports/repositories"
)

type GCSObjectStore struct {
	client *gcs.Client
	bucket string
}

// NewGCSObjectStore opens a client against the configured bucket. Credentials
// come from the environment (GOOGLE_APPLICATION_CREDENTIALS or metadata).
func NewGCSObjectStore(ctx context.Context, bucket string) (*GCSObjectStore, error) {
	client, err := gcs.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return &GCSObjectStore{client: client, bucket: bucket}, nil
}

var _ portsrepo.ObjectStore = (*GCSObjectStore)(nil)

// Upload writes an object, overwriting any previous content under the key.
func (s *GCSObjectStore) Upload(ctx context.Context, key string, contentType string, data []byte) error {
	w := s.client.Bucket(s.bucket).Object(key).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return fmt.Errorf("failed to write object %s: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finalize object %s: %w", key, err)
	}
	return nil
}

// Fetch reads an object's full content.
func (s *GCSObjectStore) Fetch(ctx context.Context, key string) ([]byte, error) {
	r, err := s.client.Bucket(s.bucket).Object(key).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open object %s: %w", key, err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read object %s: %w", key, err)
	}
	return data, nil
}

// Delete removes an object. A missing object is treated as already deleted.
func (s *GCSObjectStore) Delete(ctx context.Context, key string) error {
	err := s.client.Bucket(s.bucket).Object(key).Delete(ctx)
	if err != nil && !errors.Is(err, gcs.ErrObjectNotExist) {
		return fmt.Errorf("failed to delete object %s: %w", key, err)
	}
	return nil
}

// Close releases the underlying client.
func (s *GCSObjectStore) Close() error {
	return s.client.Close()
}
