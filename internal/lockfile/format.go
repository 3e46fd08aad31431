package lockfile

import (
	"fmt"
	"path"
)

// Format identifies the lock-file dialect to parse.
type Format int

const (
	FormatCargo Format = iota
	FormatComposer
	FormatNpm
)

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatCargo:
		return "cargo"
	case FormatComposer:
		return "composer"
	case FormatNpm:
		return "npm"
	default:
		return "unknown"
	}
}

// ParseFormat parses a format name as given on the command line.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "cargo":
		return FormatCargo, nil
	case "composer":
		return FormatComposer, nil
	case "npm":
		return FormatNpm, nil
	default:
		return 0, fmt.Errorf("unknown lock format: %q (expected cargo, composer or npm)", s)
	}
}

// FormatForPath derives the format from a lock file's base name.
// The second result is false when the name is not a recognized lock file.
func FormatForPath(p string) (Format, bool) {
	switch path.Base(p) {
	case "Cargo.lock":
		return FormatCargo, true
	case "composer.lock":
		return FormatComposer, true
	case "package-lock.json", "npm-shrinkwrap.json":
		return FormatNpm, true
	default:
		return 0, false
	}
}

// Parse extracts the version of dependency from lock-file content.
// The boolean result is false when the content is valid but does not
// record the dependency; a non-nil error means the content could not be
// parsed as the given format.
func Parse(format Format, content []byte, dependency string) (string, bool, error) {
	switch format {
	case FormatCargo:
		return parseCargo(content, dependency)
	case FormatComposer:
		return parseComposer(content, dependency)
	case FormatNpm:
		return parseNpm(content, dependency)
	default:
		return "", false, fmt.Errorf("unsupported lock format: %d", format)
	}
}
