package lockfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	patterns := DefaultDetectionPatterns()

	t.Run("SingleLockFile", func(t *testing.T) {
		paths := []string{"src/main.rs", "Cargo.toml", "Cargo.lock", "README.md"}
		candidates := Detect(paths, patterns)

		assert.Equal(t, []Candidate{{Path: "Cargo.lock", Format: FormatCargo}}, candidates)
	})

	t.Run("ShallowestWins", func(t *testing.T) {
		paths := []string{"vendor/tool/composer.lock", "composer.lock"}
		candidates := Detect(paths, patterns)

		assert.Len(t, candidates, 2)
		assert.Equal(t, "composer.lock", candidates[0].Path)
	})

	t.Run("ShrinkwrapIsNpm", func(t *testing.T) {
		candidates := Detect([]string{"npm-shrinkwrap.json"}, patterns)

		assert.Equal(t, []Candidate{{Path: "npm-shrinkwrap.json", Format: FormatNpm}}, candidates)
	})

	t.Run("FormatOrderBreaksTies", func(t *testing.T) {
		paths := []string{"package-lock.json", "Cargo.lock"}
		candidates := Detect(paths, patterns)

		assert.Len(t, candidates, 2)
		assert.Equal(t, FormatCargo, candidates[0].Format)
		assert.Equal(t, FormatNpm, candidates[1].Format)
	})

	t.Run("NoMatches", func(t *testing.T) {
		candidates := Detect([]string{"go.mod", "go.sum", "main.go"}, patterns)
		assert.Empty(t, candidates)
	})

	t.Run("WindowsSeparators", func(t *testing.T) {
		candidates := Detect([]string{`backend\composer.lock`}, patterns)

		assert.Len(t, candidates, 1)
		assert.Equal(t, FormatComposer, candidates[0].Format)
	})
}
