package timeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/masmgr/lockline/internal/git"
	"github.com/masmgr/lockline/internal/lockfile"
)

// ErrFileNeverExisted indicates that no revision in the repository's
// history ever touched the lock file path.
var ErrFileNeverExisted = errors.New("lock file never existed in repository history")

// Accumulator carries the only cross-revision state of a build: the last
// emitted version. It is passed explicitly so the fold step can be tested
// without a storage backend.
type Accumulator struct {
	last    string
	emitted bool
}

// Append extends tl with a version observation, collapsing consecutive
// duplicates. It returns the updated accumulator and timeline.
func (a Accumulator) Append(tl Timeline, version string, at time.Time) (Accumulator, Timeline) {
	if a.emitted && a.last == version {
		return a, tl
	}
	return Accumulator{last: version, emitted: true},
		append(tl, VersionEntry{Version: version, ObservedAt: at.UTC()})
}

// Build reconstructs the version timeline of dependency from the history
// of the lock file at path. Revisions where the file is absent or where the
// dependency is not recorded are skipped; the first backend or parse error
// aborts the walk.
func Build(ctx context.Context, storage git.Storage, path string, format lockfile.Format, dependency string) (Timeline, error) {
	revisions, err := storage.FileHistory(ctx, path)
	if err != nil {
		return nil, err
	}
	if len(revisions) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrFileNeverExisted, path)
	}

	var tl Timeline
	var acc Accumulator

	for _, rev := range revisions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		content, ok, err := storage.ContentAt(rev.Hash, path)
		if err != nil {
			return nil, err
		}
		if !ok {
			log.Debugf("skipping %s: %s absent at this revision", rev.Hash, path)
			continue
		}

		version, found, err := lockfile.Parse(format, content, dependency)
		if err != nil {
			return nil, fmt.Errorf("revision %s: %w", rev.Hash, err)
		}
		if !found {
			log.Debugf("skipping %s: %s not recorded", rev.Hash, dependency)
			continue
		}

		acc, tl = acc.Append(tl, version, rev.When)
	}

	return tl, nil
}
