package git

import (
	"context"
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	log "github.com/sirupsen/logrus"
)

// ErrRepositoryNotFound indicates that no git repository exists at the
// configured path.
var ErrRepositoryNotFound = errors.New("repository not found")

// Repository reads lock-file history from a local git repository.
type Repository struct {
	repo *gogit.Repository
	opts Options
}

// Open opens the repository at opts.RepoPath.
func Open(opts Options) (*Repository, error) {
	repo, err := gogit.PlainOpen(opts.RepoPath)
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%w: %s", ErrRepositoryNotFound, opts.RepoPath)
		}
		return nil, err
	}
	return &Repository{repo: repo, opts: opts}, nil
}

// FileHistory returns every revision that modified path, oldest first,
// with committer timestamps in UTC. Renames are followed only to the
// extent go-git's file-filtered log follows them natively.
func (r *Repository) FileHistory(ctx context.Context, path string) ([]Revision, error) {
	from, err := r.startHash()
	if err != nil {
		return nil, err
	}

	logOpts := &gogit.LogOptions{
		From:     from,
		FileName: &path,
		Order:    gogit.LogOrderCommitterTime,
	}
	if r.opts.Since != nil {
		logOpts.Since = r.opts.Since
	}
	if r.opts.Until != nil {
		logOpts.Until = r.opts.Until
	}

	cIter, err := r.repo.Log(logOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to read log for %s: %w", path, err)
	}

	var revisions []Revision

	err = cIter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		revisions = append(revisions, Revision{
			Hash: c.Hash.String(),
			When: c.Committer.When.UTC(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	// The log iterates newest first; the timeline wants oldest first.
	for i, j := 0, len(revisions)-1; i < j; i, j = i+1, j-1 {
		revisions[i], revisions[j] = revisions[j], revisions[i]
	}

	log.Debugf("found %d revisions touching %s", len(revisions), path)
	return revisions, nil
}

// ContentAt returns the content of path at the given revision. The boolean
// result is false when the path did not exist at that revision.
func (r *Repository) ContentAt(hash, path string) ([]byte, bool, error) {
	commit, err := r.repo.CommitObject(plumbing.NewHash(hash))
	if err != nil {
		return nil, false, fmt.Errorf("failed to resolve revision %s: %w", hash, err)
	}

	file, err := commit.File(path)
	if err != nil {
		if errors.Is(err, object.ErrFileNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read %s at %s: %w", path, hash, err)
	}

	contents, err := file.Contents()
	if err != nil {
		return nil, false, fmt.Errorf("failed to read %s at %s: %w", path, hash, err)
	}

	return []byte(contents), true, nil
}

// HeadFiles lists all file paths in the tree at the start revision.
// Used by lock-file auto-detection.
func (r *Repository) HeadFiles() ([]string, error) {
	from, err := r.startHash()
	if err != nil {
		return nil, err
	}

	commit, err := r.repo.CommitObject(from)
	if err != nil {
		return nil, err
	}

	tree, err := commit.Tree()
	if err != nil {
		return nil, err
	}

	var paths []string
	err = tree.Files().ForEach(func(f *object.File) error {
		paths = append(paths, f.Name)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return paths, nil
}

// startHash resolves the revision history is read from: the configured
// branch if set, HEAD otherwise.
func (r *Repository) startHash() (plumbing.Hash, error) {
	if branch := r.opts.Branch; branch != "" {
		hash, err := r.repo.ResolveRevision(plumbing.Revision(branch))
		if err != nil {
			return plumbing.ZeroHash, fmt.Errorf("failed to resolve %q: %w", branch, err)
		}
		return *hash, nil
	}

	ref, err := r.repo.Head()
	if err != nil {
		return plumbing.ZeroHash, err
	}
	return ref.Hash(), nil
}
