package lockfile

import "github.com/BurntSushi/toml"

// cargoLock models the subset of Cargo.lock we read: the [[package]]
// section array with name and version entries.
type cargoLock struct {
	Package []cargoPackage `toml:"package"`
}

type cargoPackage struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

func parseCargo(content []byte, dependency string) (string, bool, error) {
	var lock cargoLock
	if err := toml.Unmarshal(content, &lock); err != nil {
		return "", false, &ParseError{Format: FormatCargo, Err: err}
	}

	for _, pkg := range lock.Package {
		if pkg.Name != dependency {
			continue
		}
		// A matched section without a version field counts as not found.
		if pkg.Version == "" {
			return "", false, nil
		}
		return pkg.Version, true, nil
	}

	return "", false, nil
}
