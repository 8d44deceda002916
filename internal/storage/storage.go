package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// UploadTarget is an opaque write location handed to the upload flow. The
// client PUTs the payload to URL, then registers Key with the file catalog.
type UploadTarget struct {
	Key string `json:"storageKey"`
	URL string `json:"uploadUrl"`
}

// ObjectStore is the binary payload collaborator. Metadata never exists
// without a committed object: ResolveURL is called exactly once during
// create and its failure aborts the insert.
type ObjectStore interface {
	BeginUpload(ctx context.Context) (*UploadTarget, error)
	ResolveURL(ctx context.Context, storageKey string) (string, error)
	Delete(ctx context.Context, storageKey string) error
}

// RandomStorageKey builds a date-partitioned object key.
func RandomStorageKey() string {
	d := time.Now()
	return fmt.Sprintf("files/%d/%d/%d/%v", d.Year(), d.Month(), d.Day(), uuid.New())
}
