package git

import "time"

// Revision is one commit that touched the tracked file, reduced to the
// fields the timeline needs: an opaque hash and the committer timestamp
// normalized to UTC.
type Revision struct {
	Hash string
	When time.Time
}

// Options configures repository access.
type Options struct {
	RepoPath string
	Branch   string
	Since    *time.Time
	Until    *time.Time
}
