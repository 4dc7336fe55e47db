// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import (
	"context"
	"time"
)

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}

// BlobReconciler removes stored blobs no image row references.
type BlobReconciler interface {
	ReconcileBlobs(ctx context.Context, grace time.Duration) (int, error)
}
