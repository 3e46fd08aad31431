package git

import "context"

// MockStorage is a test double for Repository. It allows tests to provide
// predefined revision history and per-revision content without needing a
// real git repository.
type MockStorage struct {
	Revisions  []Revision
	Contents   map[string][]byte // keyed by revision hash; missing key = file absent
	HistoryErr error
	ContentErr map[string]error // per-hash backend failures
}

// FileHistory returns the predefined revisions or error.
func (m *MockStorage) FileHistory(_ context.Context, _ string) ([]Revision, error) {
	return m.Revisions, m.HistoryErr
}

// ContentAt returns the predefined content for a revision hash.
func (m *MockStorage) ContentAt(hash, _ string) ([]byte, bool, error) {
	if err, ok := m.ContentErr[hash]; ok {
		return nil, false, err
	}
	content, ok := m.Contents[hash]
	if !ok {
		return nil, false, nil
	}
	return content, true, nil
}

// Compile-time interface conformance check.
var _ Storage = (*MockStorage)(nil)
