package output

import (
	"encoding/csv"
	"time"
)

// CSVWriter writes version timelines as CSV.
type CSVWriter struct{}

// Write outputs the timeline report as CSV with a header row.
func (w *CSVWriter) Write(report *Report, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	cw := csv.NewWriter(out)

	if err := cw.Write([]string{"version", "observedAt"}); err != nil {
		return err
	}
	for _, entry := range report.Entries {
		record := []string{entry.Version, entry.ObservedAt.UTC().Format(time.RFC3339)}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
