package models

import "time"

// BlobInfo describes a stored object as reported by the blob storage listing.
type BlobInfo struct {
	Key          string
	Size         int64
	LastModified time.Time
}
