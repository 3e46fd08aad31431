package cmd

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/masmgr/lockline/internal/output"
	"github.com/masmgr/lockline/internal/timeline"
)

// HistoryCmd returns the history command.
func HistoryCmd() *cli.Command {
	return &cli.Command{
		Name:      "history",
		Aliases:   []string{"h"},
		Usage:     "Show the version history of a dependency",
		ArgsUsage: "<dependency>",
		Flags:     commonFlags(),
		Action:    historyAction,
	}
}

func historyAction(c *cli.Context) error {
	dependency := c.Args().First()
	if dependency == "" {
		return fmt.Errorf("dependency name is required")
	}

	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	tl, err := timeline.Build(c.Context, ctx.Repo, ctx.LockPath, ctx.Format, dependency)
	if err != nil {
		return err
	}

	report := &output.Report{
		RepoPath:    ctx.RepoPath,
		LockPath:    ctx.LockPath,
		Dependency:  dependency,
		GeneratedAt: time.Now(),
		Entries:     tl,
	}

	opts := OutputOptions(c, ctx.Config)
	writer := output.NewReportWriter(opts.Format)
	return writer.Write(report, opts)
}
