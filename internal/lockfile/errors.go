package lockfile

import "fmt"

// ParseError indicates content that is not valid for its declared format.
// A dependency that is simply absent from otherwise-valid content is not a
// ParseError; parsers report that as a false "found" result instead.
type ParseError struct {
	Format Format
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s lock file: %v", e.Format, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
