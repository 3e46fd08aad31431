package git_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	gitpkg "github.com/masmgr/lockline/internal/git"
	"github.com/masmgr/lockline/internal/lockfile"
	"github.com/masmgr/lockline/internal/timeline"
)

// createTestRepo creates a temporary git repository for testing.
func createTestRepo(t *testing.T) (string, *gogit.Repository) {
	t.Helper()

	tmpDir := t.TempDir()
	repo, err := gogit.PlainInit(tmpDir, false)
	if err != nil {
		t.Fatalf("Failed to initialize git repo: %v", err)
	}
	return tmpDir, repo
}

// commitFile writes a file and commits it with the given timestamp,
// returning the commit hash.
func commitFile(t *testing.T, repo *gogit.Repository, path, content string, when time.Time) string {
	t.Helper()

	w, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Failed to get worktree: %v", err)
	}

	fullPath := filepath.Join(w.Filesystem.Root(), path)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	if _, err := w.Add(path); err != nil {
		t.Fatalf("Failed to add file: %v", err)
	}

	hash, err := w.Commit(fmt.Sprintf("update %s", path), &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  "Test Author",
			Email: "test@example.com",
			When:  when,
		},
	})
	if err != nil {
		t.Fatalf("Failed to commit: %v", err)
	}
	return hash.String()
}

func cargoLockFor(version string) string {
	return fmt.Sprintf("[[package]]\nname = \"serde\"\nversion = %q\n", version)
}

func TestOpen_NotARepository(t *testing.T) {
	_, err := gitpkg.Open(gitpkg.Options{RepoPath: t.TempDir()})
	if !errors.Is(err, gitpkg.ErrRepositoryNotFound) {
		t.Fatalf("expected ErrRepositoryNotFound, got %v", err)
	}
}

func TestFileHistory(t *testing.T) {
	tmpDir, repo := createTestRepo(t)

	t1 := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	t2 := t1.Add(24 * time.Hour)
	t3 := t1.Add(48 * time.Hour)

	h1 := commitFile(t, repo, "Cargo.lock", cargoLockFor("0.4.8"), t1)
	commitFile(t, repo, "README.md", "# example\n", t2)
	h3 := commitFile(t, repo, "Cargo.lock", cargoLockFor("0.5.0"), t3)

	r, err := gitpkg.Open(gitpkg.Options{RepoPath: tmpDir})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	revisions, err := r.FileHistory(context.Background(), "Cargo.lock")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(revisions) != 2 {
		t.Fatalf("len(FileHistory()) = %d, want 2 (README commit must be excluded)", len(revisions))
	}
	if revisions[0].Hash != h1 || revisions[1].Hash != h3 {
		t.Fatalf("revisions not in ascending order: %v", revisions)
	}
	if !revisions[0].When.Equal(t1) || !revisions[1].When.Equal(t3) {
		t.Fatalf("unexpected timestamps: %v", revisions)
	}
	if revisions[0].When.Location() != time.UTC {
		t.Fatalf("timestamps not normalized to UTC")
	}
}

func TestFileHistory_SinceFilter(t *testing.T) {
	tmpDir, repo := createTestRepo(t)

	t1 := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	t2 := t1.Add(48 * time.Hour)

	commitFile(t, repo, "Cargo.lock", cargoLockFor("0.4.8"), t1)
	h2 := commitFile(t, repo, "Cargo.lock", cargoLockFor("0.5.0"), t2)

	since := t1.Add(24 * time.Hour)
	r, err := gitpkg.Open(gitpkg.Options{RepoPath: tmpDir, Since: &since})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	revisions, err := r.FileHistory(context.Background(), "Cargo.lock")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(revisions) != 1 || revisions[0].Hash != h2 {
		t.Fatalf("since filter not applied: %v", revisions)
	}
}

func TestContentAt(t *testing.T) {
	tmpDir, repo := createTestRepo(t)

	t1 := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	t2 := t1.Add(24 * time.Hour)

	h1 := commitFile(t, repo, "README.md", "# example\n", t1)
	h2 := commitFile(t, repo, "Cargo.lock", cargoLockFor("0.4.8"), t2)

	r, err := gitpkg.Open(gitpkg.Options{RepoPath: tmpDir})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("Present", func(t *testing.T) {
		content, ok, err := r.ContentAt(h2, "Cargo.lock")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok {
			t.Fatalf("expected content, got absent")
		}
		if string(content) != cargoLockFor("0.4.8") {
			t.Fatalf("ContentAt() = %q", content)
		}
	})

	t.Run("AbsentBeforeAdd", func(t *testing.T) {
		_, ok, err := r.ContentAt(h1, "Cargo.lock")
		if err != nil {
			t.Fatalf("absence must not be an error, got %v", err)
		}
		if ok {
			t.Fatalf("expected absent content at first commit")
		}
	})

	t.Run("UnknownRevision", func(t *testing.T) {
		_, _, err := r.ContentAt("0000000000000000000000000000000000000000", "Cargo.lock")
		if err == nil {
			t.Fatalf("expected error for unknown revision")
		}
	})
}

func TestHeadFiles(t *testing.T) {
	tmpDir, repo := createTestRepo(t)

	when := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	commitFile(t, repo, "README.md", "# example\n", when)
	commitFile(t, repo, "backend/composer.lock", `{"packages": []}`, when.Add(time.Hour))

	r, err := gitpkg.Open(gitpkg.Options{RepoPath: tmpDir})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	files, err := r.HeadFiles()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found := map[string]bool{}
	for _, f := range files {
		found[f] = true
	}
	if !found["README.md"] || !found["backend/composer.lock"] {
		t.Fatalf("HeadFiles() = %v", files)
	}
}

// End-to-end: a real repository history folded into a version timeline.
func TestTimelineFromRepository(t *testing.T) {
	tmpDir, repo := createTestRepo(t)

	t1 := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	t2 := t1.Add(24 * time.Hour)
	t3 := t1.Add(48 * time.Hour)
	t4 := t1.Add(72 * time.Hour)

	commitFile(t, repo, "Cargo.lock", cargoLockFor("0.4.8"), t1)
	commitFile(t, repo, "Cargo.lock", cargoLockFor("0.5.0"), t2)
	// Touches the lock file without changing the tracked version.
	commitFile(t, repo, "Cargo.lock", cargoLockFor("0.5.0")+"\n# regenerated\n", t3)
	commitFile(t, repo, "Cargo.lock", cargoLockFor("0.5.1"), t4)

	r, err := gitpkg.Open(gitpkg.Options{RepoPath: tmpDir})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tl, err := timeline.Build(context.Background(), r, "Cargo.lock", lockfile.FormatCargo, "serde")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []struct {
		version string
		when    time.Time
	}{
		{"0.4.8", t1},
		{"0.5.0", t2},
		{"0.5.1", t4},
	}
	if len(tl) != len(want) {
		t.Fatalf("len(timeline) = %d, want %d: %v", len(tl), len(want), tl)
	}
	for i, w := range want {
		if tl[i].Version != w.version || !tl[i].ObservedAt.Equal(w.when) {
			t.Fatalf("entry %d = %+v, want %v at %v", i, tl[i], w.version, w.when)
		}
	}
}
