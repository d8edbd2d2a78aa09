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
	"os"

	"github.com/spf13/cobra"

	"github.com/bartekus/gitweekly/internal/logging"
)

// NewRootCmd constructs the gitweekly root Cobra command.
func NewRootCmd() *cobra.Command {
	version := os.Getenv("GITWEEKLY_VERSION")
	if version == "" {
		version = "0.0.0-dev"
	}

	cmd := &cobra.Command{
		Use:           "gitweekly",
		Short:         "Weekly work reports from git history",
		Long:          "Gitweekly aggregates the last seven days of commit history into a weekly status report, optionally polishing commit messages and adding a narrative summary through the OpenRouter API.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			verbose, _ := cmd.Root().PersistentFlags().GetBool("verbose")
			logging.SetVerbose(verbose)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")

	// Version command
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of gitweekly",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "gitweekly version %s\n", version)
		},
	})

	cmd.AddCommand(NewReportCommand())
	cmd.AddCommand(NewAuthorsCommand())

	return cmd
}
