package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Johannes-Berggren/ReleaseGoblin/internal/config"
	"github.com/Johannes-Berggren/ReleaseGoblin/internal/ghapi"
	"github.com/Johannes-Berggren/ReleaseGoblin/internal/git"
	"github.com/Johannes-Berggren/ReleaseGoblin/internal/logger"
	"github.com/Johannes-Berggren/ReleaseGoblin/internal/metrics"
	"github.com/Johannes-Berggren/ReleaseGoblin/internal/release"
	"github.com/Johannes-Berggren/ReleaseGoblin/internal/render"
	"github.com/Johannes-Berggren/ReleaseGoblin/internal/ui"
)

type options struct {
	tag         string
	yes         bool
	configPath  string
	dir         string
	copy        bool
	metricsFile string
	verbose     bool
	noColor     bool
}

var opts options

var rootCmd = &cobra.Command{
	Use:   "release-goblin [tag]",
	Short: "Generate release notes from merged pull requests",
	Long: `ReleaseGoblin - Release notes from your git history.

Finds the pull requests merged since a tag, looks them up on GitHub together
with the issues they reference, and prints a changelog grouped by issue.

Requires GITHUB_USERNAME and GITHUB_ACCESS_TOKEN in the environment (or a .env file).`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		tag, err := tagFromArgs(opts.tag, args)
		if err != nil {
			return err
		}
		return run(cmd, tag)
	},
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&opts.tag, "tag", "t", "", "tag to compare from (defaults to the latest tag)")
	flags.BoolVarP(&opts.yes, "yes", "y", false, "use the latest tag without asking")
	flags.StringVarP(&opts.configPath, "config", "c", "", "path to a YAML config file")
	flags.StringVarP(&opts.dir, "dir", "C", "", "repository directory (defaults to the current directory)")
	flags.BoolVar(&opts.copy, "copy", false, "copy the changelog to the clipboard")
	flags.StringVar(&opts.metricsFile, "metrics-file", "", "write Prometheus metrics to this file")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored output")
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func tagFromArgs(flagTag string, args []string) (string, error) {
	if len(args) == 0 {
		return flagTag, nil
	}
	if flagTag != "" && flagTag != args[0] {
		return "", fmt.Errorf("tag given twice: %q and %q", flagTag, args[0])
	}
	return args[0], nil
}

func run(cmd *cobra.Command, tag string) error {
	ctx := cmd.Context()

	if opts.noColor || !ui.IsTerminal(os.Stderr) {
		ui.DisableColor()
	}

	log := logger.New(opts.verbose)
	defer log.Sync()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	repo := git.NewClient(git.ExecRunner{Dir: opts.dir}, cfg.Remote)

	console := ui.NewConsole(os.Stdin, os.Stderr,
		ui.WithInteractive(ui.IsTerminal(os.Stdin) && ui.IsTerminal(os.Stderr)),
		ui.WithAssumeYes(opts.yes),
	)

	newSource := func(org, project string) (release.Source, error) {
		client, err := ghapi.NewClient(cfg.GitHub, org, project)
		if err != nil {
			return nil, err
		}
		return client, nil
	}

	generator := release.NewGenerator(repo, console, cfg.GitHub, newSource, log,
		release.WithBatchSize(cfg.Fetch.BatchSize),
		release.WithBatchDelay(cfg.Fetch.BatchDelay),
	)

	notes, err := generator.Generate(ctx, tag)
	writeMetrics(log, opts.metricsFile)
	if err != nil {
		return err
	}
	if notes == nil {
		return nil
	}
	log.Debug("rendering release notes",
		zap.String("project", notes.Org+"/"+notes.Project),
		zap.String("since", notes.Tag),
		zap.Int("issue_groups", len(notes.Grouped.WithIssues)),
		zap.Int("other_changes", len(notes.Grouped.WithoutIssues)),
	)

	fmt.Fprint(cmd.OutOrStdout(), render.Report(notes.Data, notes.Grouped))

	if opts.copy {
		changelog := strings.TrimLeft(render.Changelog(notes.Data, notes.Grouped), "\n")
		if err := ui.CopyToClipboard(changelog); err != nil {
			log.Warn("failed to copy changelog", zap.Error(err))
		} else {
			console.Say("Changelog copied to clipboard.")
		}
	}

	return nil
}

func writeMetrics(log *zap.Logger, path string) {
	if path == "" {
		return
	}
	if err := metrics.WriteTextfile(path); err != nil {
		log.Warn("failed to write metrics", zap.String("path", path), zap.Error(err))
	}
}
