package timeline

import (
	"testing"
	"time"

	"pgregory.net/rapid"
)

// --- Generators ---

func genVersions() *rapid.Generator[[]string] {
	// A small alphabet makes consecutive duplicates likely.
	return rapid.SliceOfN(rapid.SampledFrom([]string{"1.0.0", "1.0.1", "1.1.0", "2.0.0"}), 0, 50)
}

func foldVersions(versions []string) Timeline {
	var tl Timeline
	var acc Accumulator
	base := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, version := range versions {
		acc, tl = acc.Append(tl, version, base.Add(time.Duration(i)*time.Hour))
	}
	return tl
}

// --- Properties ---

func TestRapidAccumulator_NoAdjacentDuplicates(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		versions := genVersions().Draw(t, "versions")
		tl := foldVersions(versions)

		for i := 1; i < len(tl); i++ {
			if tl[i].Version == tl[i-1].Version {
				t.Fatalf("adjacent duplicate %q at %d: %v", tl[i].Version, i, tl)
			}
		}
	})
}

func TestRapidAccumulator_MonotonicTimestamps(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		versions := genVersions().Draw(t, "versions")
		tl := foldVersions(versions)

		for i := 1; i < len(tl); i++ {
			if tl[i].ObservedAt.Before(tl[i-1].ObservedAt) {
				t.Fatalf("timestamps not monotonic at %d: %v", i, tl)
			}
		}
	})
}

func TestRapidAccumulator_PreservesChangePoints(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		versions := genVersions().Draw(t, "versions")
		tl := foldVersions(versions)

		// The timeline is exactly the input with runs collapsed.
		var want []string
		for i, version := range versions {
			if i == 0 || version != versions[i-1] {
				want = append(want, version)
			}
		}
		if len(tl) != len(want) {
			t.Fatalf("len = %d, want %d", len(tl), len(want))
		}
		for i := range want {
			if tl[i].Version != want[i] {
				t.Fatalf("entry %d = %q, want %q", i, tl[i].Version, want[i])
			}
		}
	})
}
