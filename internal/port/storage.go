package port

import (
	"context"
	"io"
)

// UploadInput encapsulates the parameters needed to archive an object.
// The bucket is fixed by the storage client's configuration.
type UploadInput struct {
	Key         string
	Body        io.Reader
	ContentType string
	Size        int64
}

// UploadOutput contains the result of a successful upload.
type UploadOutput struct {
	Location string
	ETag     string
}

// ObjectStorage abstracts object storage for uploaded-workbook archival.
type ObjectStorage interface {
	Upload(ctx context.Context, input UploadInput) (*UploadOutput, error)
}
