package lockfile

import (
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Candidate is a lock file discovered in a repository tree.
type Candidate struct {
	Path   string
	Format Format
}

// DetectionPatterns maps each format to the glob patterns used to find its
// lock files in a repository tree.
type DetectionPatterns struct {
	Cargo    []string
	Composer []string
	Npm      []string
}

// DefaultDetectionPatterns returns the conventional lock-file locations for
// the three supported ecosystems.
func DefaultDetectionPatterns() DetectionPatterns {
	return DetectionPatterns{
		Cargo:    []string{"**/Cargo.lock"},
		Composer: []string{"**/composer.lock"},
		Npm:      []string{"**/package-lock.json", "**/npm-shrinkwrap.json"},
	}
}

// Detect scans a list of tree paths for lock files matching the detection
// patterns. Candidates come back ordered best-first: shallower paths win,
// ties are broken by format order (cargo, composer, npm) and then by path.
func Detect(paths []string, patterns DetectionPatterns) []Candidate {
	var candidates []Candidate

	for _, p := range paths {
		normalized := strings.ReplaceAll(p, "\\", "/")
		if format, ok := matchPatterns(normalized, patterns); ok {
			candidates = append(candidates, Candidate{Path: p, Format: format})
		}
	}

	sortCandidates(candidates)
	return candidates
}

func matchPatterns(path string, patterns DetectionPatterns) (Format, bool) {
	groups := []struct {
		format   Format
		patterns []string
	}{
		{FormatCargo, patterns.Cargo},
		{FormatComposer, patterns.Composer},
		{FormatNpm, patterns.Npm},
	}

	for _, group := range groups {
		for _, pattern := range group.patterns {
			if matched, _ := doublestar.Match(pattern, path); matched {
				return group.format, true
			}
		}
	}

	return 0, false
}

func sortCandidates(candidates []Candidate) {
	depth := func(p string) int {
		return strings.Count(p, "/")
	}

	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if depth(a.Path) != depth(b.Path) {
			return depth(a.Path) < depth(b.Path)
		}
		if a.Format != b.Format {
			return a.Format < b.Format
		}
		return a.Path < b.Path
	})
}
