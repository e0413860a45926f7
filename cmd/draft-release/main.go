package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/draft-release-action/pkg/action"
	"github.com/draft-release-action/pkg/app"
	"github.com/draft-release-action/pkg/changelog"
	"github.com/draft-release-action/pkg/command"
	"github.com/draft-release-action/pkg/config"
	"github.com/draft-release-action/pkg/event"
	"github.com/draft-release-action/pkg/release"
	"github.com/draft-release-action/pkg/reporter"
	"github.com/draft-release-action/pkg/vcs"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	act := action.FromOS()

	rootCmd := &cobra.Command{
		Use:           "draft-release",
		Short:         "Draft a GitHub release for a newly created version tag",
		Long:          `Collects the commit summaries introduced since the previous version tag and creates a draft GitHub release whose body lists them.`,
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, act)
		},
	}

	rootCmd.Flags().String("github-token", firstNonEmpty(act.Input("repo-token"), os.Getenv("GITHUB_TOKEN")), "GitHub token used to create the release")
	rootCmd.Flags().String("repo", os.Getenv("GITHUB_REPOSITORY"), "GitHub repo (owner/repo); defaults to the origin remote")
	rootCmd.Flags().String("tag", "", "Draft a release for this tag instead of reading the workflow event")
	rootCmd.Flags().String("workdir", os.Getenv("GITHUB_WORKSPACE"), "Path to the git clone")
	rootCmd.Flags().String("api-url", "", "GitHub Enterprise base URL")
	rootCmd.Flags().String("tag-match", "", "Glob selecting version tags (default v[0-9]*)")
	rootCmd.Flags().String("output", "", "Summary format: text | json | table")
	rootCmd.Flags().String("config", ".draft-release.yml", "Path to config file")
	rootCmd.Flags().Bool("dry-run", false, "Print the release without creating it")
	rootCmd.Flags().Bool("draft", true, "Create the release as a draft")
	rootCmd.Flags().Bool("debug", false, "Enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		act.SetFailed(err.Error())
	}
	os.Exit(act.ExitCode())
}

func run(cmd *cobra.Command, act *action.Action) error {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, loadErr := config.Load(cfgPath)
	if loadErr != nil {
		cfg = config.Default()
	}
	cfg = config.MergeFlags(cfg, cmd.Flags())

	logger := act.NewLogger(cfg.Debug)
	if loadErr != nil && (!errors.Is(loadErr, fs.ErrNotExist) || cmd.Flags().Changed("config")) {
		logger.Warn("could not load config file, using defaults", "path", cfgPath, "error", loadErr)
	}

	ev := event.TagCreated(cfg.Tag)
	if cfg.Tag == "" {
		var err error
		ev, err = event.Load(os.Getenv)
		if err != nil {
			return err
		}
	}

	publisher, err := release.NewPublisher(func() (string, string, error) {
		return vcs.ResolveRepo(cfg.Repo, cfg.WorkDir)
	}, release.Options{
		Draft:        cfg.Release.Draft,
		NamePrefix:   cfg.Release.NamePrefix,
		BodyTemplate: cfg.Release.BodyTemplate,
	}, func(token string) (vcs.ReleaseClient, error) {
		client, err := vcs.NewClient(token, cfg.APIURL)
		if err != nil {
			return nil, err
		}
		return vcs.NewGitHubClient(client, logger), nil
	})
	if err != nil {
		return err
	}

	resolver := changelog.NewResolver(
		command.ExecRunner{Dir: cfg.WorkDir},
		changelog.WithGitBinary(cfg.GitBinary),
		changelog.WithMatch(cfg.TagMatch),
		changelog.WithLightweightTags(cfg.LightweightTags),
		changelog.WithLogger(logger),
	)

	runner := &app.Runner{
		Event:     ev,
		Token:     cfg.Token,
		Changelog: resolver,
		Publisher: publisher,
		DryRun:    cfg.DryRun,
		Logger:    logger,
	}
	runner.Execute(cmd.Context(), act, reporter.New(cfg.Output, cmd.OutOrStdout()))
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
