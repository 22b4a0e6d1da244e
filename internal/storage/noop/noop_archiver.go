package noop

import (
	"context"
	"log"

	"sheetvet/internal/port"
)

type noopArchiver struct{}

// NewNoopArchiver creates a no-op ObjectStorage that logs archive requests
// and discards the payload. Wired when no archive provider is configured.
func NewNoopArchiver() port.ObjectStorage {
	return &noopArchiver{}
}

func (a *noopArchiver) Upload(_ context.Context, input port.UploadInput) (*port.UploadOutput, error) {
	log.Printf("[NOOP ARCHIVE] discarding %s (%s, %d bytes)", input.Key, input.ContentType, input.Size)
	return &port.UploadOutput{Location: "noop://" + input.Key}, nil
}
