package output

import (
	"fmt"
	"time"

	"github.com/fatih/color"
)

// ConsoleWriter writes version timelines to the console.
type ConsoleWriter struct{}

// Write outputs the timeline, one line per version observation in
// chronological order.
func (w *ConsoleWriter) Write(report *Report, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	header := color.New(color.FgGreen)
	if options.NoColor || file != nil {
		header.DisableColor()
	}

	header.Fprintf(out, "Version history for %s\n", report.Dependency)
	fmt.Fprintf(out, "Repository: %s\n", report.RepoPath)
	fmt.Fprintf(out, "Lock file: %s\n\n", report.LockPath)

	if len(report.Entries) == 0 {
		fmt.Fprintln(out, "No versions found.")
		return nil
	}

	for _, entry := range report.Entries {
		fmt.Fprintf(out, "Version: %s, Date: %s\n",
			entry.Version, entry.ObservedAt.UTC().Format(time.RFC1123))
	}

	return nil
}
