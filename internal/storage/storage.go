package storage

import (
	"context"
)

// ResponseArchive defines the interface for archiving raw AI provider
// responses in object storage. Archiving is best effort; callers are
// expected to log and continue on error.
type ResponseArchive interface {
	ArchiveResponse(ctx context.Context, objectKey string, body []byte) error
}
