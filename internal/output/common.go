package output

import (
	"io"
	"os"
	"time"

	"github.com/masmgr/lockline/internal/timeline"
)

// OutputFormat identifies the report output format.
type OutputFormat string

const (
	FormatConsole OutputFormat = "console"
	FormatJSON    OutputFormat = "json"
	FormatCSV     OutputFormat = "csv"
)

// Report bundles a version timeline with the context it was produced in.
type Report struct {
	RepoPath    string
	LockPath    string
	Dependency  string
	GeneratedAt time.Time
	Entries     timeline.Timeline
}

// OutputOptions configures report writing.
type OutputOptions struct {
	Format     OutputFormat
	OutputPath string
	NoColor    bool
}

// ReportWriter writes a timeline report in one output format.
type ReportWriter interface {
	Write(report *Report, options OutputOptions) error
}

// NewReportWriter returns the writer for the given format.
func NewReportWriter(format OutputFormat) ReportWriter {
	switch format {
	case FormatJSON:
		return &JSONWriter{}
	case FormatCSV:
		return &CSVWriter{}
	default:
		return &ConsoleWriter{}
	}
}

func openOutputWriter(outputPath string) (io.Writer, *os.File, error) {
	if outputPath == "" {
		return os.Stdout, nil, nil
	}
	file, err := os.Create(outputPath)
	if err != nil {
		return nil, nil, err
	}
	return file, file, nil
}
