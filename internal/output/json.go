package output

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// JSONWriter writes version timelines as JSON.
type JSONWriter struct{}

// JSONReport is the JSON output structure for a version timeline.
type JSONReport struct {
	RepoPath     string      `json:"repo"`
	LockPath     string      `json:"lockFile"`
	Dependency   string      `json:"dependency"`
	GeneratedAt  string      `json:"generatedAt"`
	TotalEntries int         `json:"totalEntries"`
	Entries      []JSONEntry `json:"entries"`
}

// JSONEntry is the JSON output structure for a single version observation.
type JSONEntry struct {
	Version    string `json:"version"`
	ObservedAt string `json:"observedAt"`
}

// Write outputs the timeline report as JSON.
func (w *JSONWriter) Write(report *Report, options OutputOptions) error {
	entries := make([]JSONEntry, len(report.Entries))
	for i, entry := range report.Entries {
		entries[i] = JSONEntry{
			Version:    entry.Version,
			ObservedAt: entry.ObservedAt.UTC().Format(time.RFC3339),
		}
	}

	jsonReport := JSONReport{
		RepoPath:     report.RepoPath,
		LockPath:     report.LockPath,
		Dependency:   report.Dependency,
		GeneratedAt:  report.GeneratedAt.Format(time.RFC3339),
		TotalEntries: len(report.Entries),
		Entries:      entries,
	}

	encoder := json.NewEncoder(os.Stdout)
	if options.OutputPath != "" {
		file, err := os.Create(options.OutputPath)
		if err != nil {
			return err
		}
		defer file.Close()
		encoder = json.NewEncoder(file)
	}

	encoder.SetIndent("", "  ")
	if err := encoder.Encode(jsonReport); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
