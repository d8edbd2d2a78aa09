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

	"github.com/spf13/cobra"

	"github.com/bartekus/gitweekly/internal/gitlog"
	"github.com/bartekus/gitweekly/internal/logging"
	"github.com/bartekus/gitweekly/internal/projectroot"
)

// NewAuthorsCommand returns the `gitweekly authors` command.
func NewAuthorsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "authors",
		Short: "List commit authors of the trailing month",
		Long:  "Lists the distinct commit authors seen in the repository over the last month, for use with report --author",
		RunE:  runAuthors,
	}

	cmd.Flags().StringP("repo", "r", ".", "Git repository path")

	return cmd
}

// runAuthors executes the authors command.
func runAuthors(cmd *cobra.Command, args []string) error {
	repo, _ := cmd.Flags().GetString("repo")
	repoPath := repo
	if root, err := projectroot.Find(repo); err == nil {
		repoPath = root
	} else {
		logging.Logger.Warn().Err(err).Msg("could not resolve repository root")
	}

	authors := gitlog.New(repoPath).Authors(cmd.Context())
	if len(authors) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no authors found")
		return nil
	}

	for i, author := range authors {
		fmt.Fprintf(cmd.OutOrStdout(), "%3d. %s\n", i+1, author)
	}
	return nil
}
