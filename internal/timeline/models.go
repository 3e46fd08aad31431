package timeline

import "time"

// VersionEntry records that the tracked dependency was at Version as of
// ObservedAt (the committer timestamp of the revision that introduced it).
type VersionEntry struct {
	Version    string
	ObservedAt time.Time
}

// Timeline is a chronological sequence of version observations. No two
// adjacent entries share a version string; non-adjacent repeats are kept,
// since a dependency may be downgraded and re-upgraded.
type Timeline []VersionEntry
