package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/masmgr/lockline/internal/git"
)

// DetectCmd returns the detect command, which lists the lock files found
// in the repository tree.
func DetectCmd() *cli.Command {
	return &cli.Command{
		Name:  "detect",
		Usage: "List lock files detected in the repository",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "repo",
				Aliases: []string{"r"},
				Usage:   "Path to Git repository",
				Value:   ".",
			},
			&cli.StringFlag{
				Name:    "branch",
				Aliases: []string{"b"},
				Usage:   "Branch to read the tree from (default: HEAD)",
			},
		},
		Action: detectAction,
	}
}

func detectAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	repo, err := git.Open(git.Options{
		RepoPath: c.String("repo"),
		Branch:   c.String("branch"),
	})
	if err != nil {
		return fmt.Errorf("failed to open repository: %w", err)
	}

	candidates, err := detectCandidates(cfg, repo)
	if err != nil {
		return err
	}

	if len(candidates) == 0 {
		fmt.Println("No lock files found.")
		return nil
	}

	color.Green("Detected lock files")
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Path\tFormat")
	for _, candidate := range candidates {
		fmt.Fprintf(tw, "%s\t%s\n", candidate.Path, candidate.Format)
	}
	return tw.Flush()
}
