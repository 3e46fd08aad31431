package git

import "context"

// Storage is the narrow versioned-storage surface the timeline is built on.
// This abstraction allows for easier testing and potential alternative backends.
type Storage interface {
	// FileHistory returns the revisions that modified path, oldest first.
	FileHistory(ctx context.Context, path string) ([]Revision, error)

	// ContentAt returns the content of path at the given revision. The
	// boolean result is false when the path did not exist at that revision.
	ContentAt(hash, path string) ([]byte, bool, error)
}

// Compile-time interface conformance check.
var _ Storage = (*Repository)(nil)
