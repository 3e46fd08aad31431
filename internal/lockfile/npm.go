package lockfile

import (
	"encoding/json"
	"strings"
)

// npmLock models both package-lock.json schemas. Legacy lock files
// (lockfileVersion 1) key "dependencies" by package name; modern ones
// (lockfileVersion 2 and later) key "packages" by install path, e.g.
// "node_modules/foo" or "node_modules/a/node_modules/b".
type npmLock struct {
	Dependencies map[string]npmPackage `json:"dependencies"`
	Packages     map[string]npmPackage `json:"packages"`
}

type npmPackage struct {
	Version string `json:"version"`
}

func parseNpm(content []byte, dependency string) (string, bool, error) {
	var lock npmLock
	if err := json.Unmarshal(content, &lock); err != nil {
		return "", false, &ParseError{Format: FormatNpm, Err: err}
	}

	// Legacy schema first: a direct lookup by name.
	if pkg, ok := lock.Dependencies[dependency]; ok && pkg.Version != "" {
		return pkg.Version, true, nil
	}

	return findNpmInstallPath(lock.Packages, dependency)
}

// findNpmInstallPath scans modern-schema package keys for one whose
// terminal node_modules segment equals the dependency name. The shallowest
// install wins so that a hoisted top-level package beats a nested copy.
func findNpmInstallPath(packages map[string]npmPackage, dependency string) (string, bool, error) {
	suffix := "node_modules/" + dependency

	var bestVersion string
	bestDepth := -1
	for key, pkg := range packages {
		if pkg.Version == "" {
			continue
		}
		if key != suffix && !strings.HasSuffix(key, "/"+suffix) {
			continue
		}
		depth := strings.Count(key, "node_modules/")
		if bestDepth == -1 || depth < bestDepth {
			bestVersion = pkg.Version
			bestDepth = depth
		}
	}

	if bestDepth == -1 {
		return "", false, nil
	}
	return bestVersion, true, nil
}
