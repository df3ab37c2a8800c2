// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind a small interface covering the
// operations the catalog needs: checking bucket access, uploading objects,
// retrieving them, and listing by prefix. Both AWS S3 and self-hosted MinIO
// instances are supported.
//
// The Client interface keeps storage mockable for unit testing (see
// core/storage/mocks).
package storage
