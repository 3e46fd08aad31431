package cmd

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/masmgr/lockline/config"
	"github.com/masmgr/lockline/internal/git"
	"github.com/masmgr/lockline/internal/lockfile"
	"github.com/masmgr/lockline/internal/output"
)

// CommandContext holds common state for command execution.
// It encapsulates configuration loading, repository opening, and lock-file
// resolution shared across commands.
type CommandContext struct {
	Config   *config.Config
	RepoPath string
	Repo     *git.Repository
	LockPath string
	Format   lockfile.Format
}

// NewCommandContext creates a context from CLI flags. It loads the
// configuration, opens the repository, and resolves the lock file path and
// format (auto-detecting both when no explicit path is given).
func NewCommandContext(c *cli.Context) (*CommandContext, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}

	since, err := parseDateFlag(c.String("since"))
	if err != nil {
		return nil, fmt.Errorf("invalid since date: %w", err)
	}
	until, err := parseDateFlag(c.String("until"))
	if err != nil {
		return nil, fmt.Errorf("invalid until date: %w", err)
	}

	repoPath := c.String("repo")
	repo, err := git.Open(git.Options{
		RepoPath: repoPath,
		Branch:   c.String("branch"),
		Since:    since,
		Until:    until,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	lockPath, format, err := resolveLockFile(c, cfg, repo)
	if err != nil {
		return nil, err
	}

	return &CommandContext{
		Config:   cfg,
		RepoPath: repoPath,
		Repo:     repo,
		LockPath: lockPath,
		Format:   format,
	}, nil
}

// resolveLockFile determines which lock file to track and which format to
// parse it as. An explicit --file wins over auto-detection; an explicit
// --lock-format wins over filename-based format detection.
func resolveLockFile(c *cli.Context, cfg *config.Config, repo *git.Repository) (string, lockfile.Format, error) {
	var override *lockfile.Format
	if s := c.String("lock-format"); s != "" {
		format, err := lockfile.ParseFormat(s)
		if err != nil {
			return "", 0, err
		}
		override = &format
	}

	if path := c.String("file"); path != "" {
		if override != nil {
			return path, *override, nil
		}
		format, ok := lockfile.FormatForPath(path)
		if !ok {
			return "", 0, fmt.Errorf("cannot determine lock format of %s; use --lock-format", path)
		}
		return path, format, nil
	}

	candidates, err := detectCandidates(cfg, repo)
	if err != nil {
		return "", 0, err
	}
	if len(candidates) == 0 {
		return "", 0, fmt.Errorf("no lock file found in repository; use --file to specify one")
	}

	best := candidates[0]
	log.Debugf("auto-detected lock file %s (%s)", best.Path, best.Format)
	if override != nil {
		return best.Path, *override, nil
	}
	return best.Path, best.Format, nil
}

// detectCandidates lists lock files in the repository tree matching the
// configured detection patterns.
func detectCandidates(cfg *config.Config, repo *git.Repository) ([]lockfile.Candidate, error) {
	files, err := repo.HeadFiles()
	if err != nil {
		return nil, fmt.Errorf("failed to list repository files: %w", err)
	}
	return lockfile.Detect(files, detectionPatterns(cfg)), nil
}

func detectionPatterns(cfg *config.Config) lockfile.DetectionPatterns {
	return lockfile.DetectionPatterns{
		Cargo:    cfg.Detection.Cargo,
		Composer: cfg.Detection.Composer,
		Npm:      cfg.Detection.Npm,
	}
}

// OutputOptions creates OutputOptions from CLI flags and config.
func OutputOptions(c *cli.Context, cfg *config.Config) output.OutputOptions {
	return output.OutputOptions{
		Format:     getOutputFormat(c.String("format"), cfg),
		OutputPath: c.String("output"),
		NoColor:    c.Bool("no-color") || !cfg.Output.Color,
	}
}
