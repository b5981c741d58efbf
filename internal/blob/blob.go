// Package blob abstracts the remote object storage provider that holds
// uploaded image binaries. Metadata derived from the provider (remote
// identifiers, dimensions, byte size) is returned from Upload so the
// image service can persist it.
package blob

import (
	"context"
	"io"
)

// UploadResult carries the provider's response for a stored binary.
// Providers that cannot inspect the image (e.g. S3) leave Width and
// Height at zero.
type UploadResult struct {
	PublicID  string
	URL       string
	SecureURL string
	Format    string
	Width     int
	Height    int
	Bytes     int64
}

// UploadOptions describes the incoming file.
type UploadOptions struct {
	Filename string
	Size     int64
}

// Storage is the remote object storage port.
type Storage interface {
	// Upload stores the binary and returns the provider metadata.
	Upload(ctx context.Context, file io.Reader, opts UploadOptions) (*UploadResult, error)

	// Destroy removes the object identified by its public id.
	Destroy(ctx context.Context, publicID string) error
}
