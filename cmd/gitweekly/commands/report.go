// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Gitweekly - Gitweekly turns the trailing week of a git repository's commit
history into a readable weekly status report, with optional LLM-backed
message polishing and summarization via OpenRouter.

Copyright (C) 2026  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bartekus/gitweekly/cmd/gitweekly/internal/clierr"
	"github.com/bartekus/gitweekly/internal/config"
	"github.com/bartekus/gitweekly/internal/enhance"
	"github.com/bartekus/gitweekly/internal/gitlog"
	"github.com/bartekus/gitweekly/internal/logging"
	"github.com/bartekus/gitweekly/internal/projectroot"
	"github.com/bartekus/gitweekly/internal/report"
)

// lookbackDays is the trailing commit window the report covers.
const lookbackDays = 7

// NewReportCommand returns the `gitweekly report` command.
func NewReportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate the weekly report",
		Long:  "Aggregates the last seven days of commits into a weekly report document, written to stdout or to a file",
		RunE:  runReport,
	}

	// Flags in alphabetical order for deterministic help output
	cmd.Flags().String("api-key", "", "OpenRouter API key (overrides "+config.APIKeyEnv+")")
	cmd.Flags().StringP("author", "a", "", "Only include commits by this author")
	cmd.Flags().Bool("enhance", false, "Polish commit messages and add a summary via the LLM")
	cmd.Flags().String("model", "", "LLM model (default: "+config.DefaultModel+")")
	cmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().StringP("repo", "r", ".", "Git repository path")

	return cmd
}

// runReport executes the report command.
func runReport(cmd *cobra.Command, args []string) error {
	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	// Check the credential before any fetch happens.
	if settings.Enhance && settings.APIKey == "" {
		return clierr.Newf(2, "enhancement requires an OpenRouter API key; set --api-key or %s", config.APIKeyEnv)
	}

	ctx := cmd.Context()
	client := gitlog.New(settings.RepoPath)

	since := time.Now().AddDate(0, 0, -lookbackDays)
	if settings.Author != "" {
		logging.Logger.Info().Str("author", settings.Author).Msg("fetching last week's commits")
	} else {
		logging.Logger.Info().Msg("fetching last week's commits")
	}
	commits := client.Commits(ctx, gitlog.LogOptions{Since: since, Author: settings.Author})
	logging.Logger.Info().Int("commits", len(commits)).Msg("history fetched")

	var enhancer enhance.Enhancer = enhance.Noop{}
	if settings.Enhance {
		enhancer = enhance.NewOpenRouter(settings.APIKey, settings.Model)
		logging.Logger.Info().Str("model", settings.Model).Msg("polishing commit messages")
		commits = enhance.ApplyRewrites(ctx, enhancer, commits)
	}

	summary := ""
	if settings.Enhance && len(commits) > 0 {
		logging.Logger.Info().Msg("generating summary")
		summary = enhancer.Summarize(ctx, commits)
	}

	doc := report.Build(report.Input{
		Commits:    commits,
		Categories: report.Categorize(commits),
		Stats:      client.StatsAll(ctx, commits),
		Summary:    summary,
		Author:     settings.Author,
	})

	if settings.Output != "" {
		if err := report.WriteFile(settings.Output, doc); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		logging.Logger.Info().Str("path", settings.Output).Msg("report saved")
		return nil
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, strings.Repeat("=", 50))
	fmt.Fprintln(out, doc)
	return nil
}

// resolveSettings merges flags, the repo's defaults file, and the
// environment into one Settings value. Flags win where set.
func resolveSettings(cmd *cobra.Command) (config.Settings, error) {
	repo, _ := cmd.Flags().GetString("repo")

	// Anchor relative paths at the enclosing repo root so the command works
	// from a subdirectory. When that fails, git itself reports the problem
	// and the run degrades to an empty report.
	repoPath := repo
	if root, err := projectroot.Find(repo); err == nil {
		repoPath = root
	} else {
		logging.Logger.Warn().Err(err).Msg("could not resolve repository root")
	}

	fileDefaults, err := config.LoadFile(repoPath)
	if err != nil {
		return config.Settings{}, err
	}

	settings := config.Settings{
		RepoPath: repoPath,
		Model:    config.DefaultModel,
	}
	if fileDefaults.Model != "" {
		settings.Model = fileDefaults.Model
	}
	settings.Author = fileDefaults.Author
	settings.Output = fileDefaults.Output
	if fileDefaults.Enhance != nil {
		settings.Enhance = *fileDefaults.Enhance
	}

	if cmd.Flags().Changed("model") {
		settings.Model, _ = cmd.Flags().GetString("model")
	}
	if cmd.Flags().Changed("author") {
		settings.Author, _ = cmd.Flags().GetString("author")
	}
	if cmd.Flags().Changed("output") {
		settings.Output, _ = cmd.Flags().GetString("output")
	}
	if cmd.Flags().Changed("enhance") {
		settings.Enhance, _ = cmd.Flags().GetBool("enhance")
	}

	apiKeyFlag, _ := cmd.Flags().GetString("api-key")
	settings.APIKey = config.ResolveAPIKey(apiKeyFlag)

	return settings, nil
}
