package lockfile

import "encoding/json"

// composerLock models the subset of composer.lock we read. Production
// dependencies live in "packages"; development dependencies are tracked
// separately in "packages-dev".
type composerLock struct {
	Packages    []composerPackage `json:"packages"`
	PackagesDev []composerPackage `json:"packages-dev"`
}

type composerPackage struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

func parseComposer(content []byte, dependency string) (string, bool, error) {
	var lock composerLock
	if err := json.Unmarshal(content, &lock); err != nil {
		return "", false, &ParseError{Format: FormatComposer, Err: err}
	}

	// Prefer the production list; fall back to the dev list.
	if version, ok := findComposerPackage(lock.Packages, dependency); ok {
		return version, true, nil
	}
	if version, ok := findComposerPackage(lock.PackagesDev, dependency); ok {
		return version, true, nil
	}

	return "", false, nil
}

func findComposerPackage(packages []composerPackage, dependency string) (string, bool) {
	for _, pkg := range packages {
		if pkg.Name == dependency && pkg.Version != "" {
			return pkg.Version, true
		}
	}
	return "", false
}
