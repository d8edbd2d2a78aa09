// SPDX-License-Identifier: AGPL-3.0-or-later

// Package gitlog reads commit history by shelling out to the git binary.
// The textual output formats of `git log` and `git show --stat` are the
// compatibility contract here; this package only parses them.
package gitlog

import (
	"context"
	"os/exec"
	"sort"
	"strings"
	"time"

	"github.com/bartekus/gitweekly/internal/logging"
)

// Commit is a single commit parsed from git log output.
type Commit struct {
	Hash    string
	Author  string
	Date    string // YYYY-MM-DD, as produced by --date=short
	Message string

	// OriginalMessage is set when Message has been rewritten by an enhancer.
	OriginalMessage string
}

// Client runs git against a single repository path.
type Client struct {
	repoPath string
}

// New creates a Client for the given repository path. The path is handed to
// git via -C, so it may be the repo root or any directory inside it.
func New(repoPath string) *Client {
	return &Client{repoPath: repoPath}
}

// LogOptions scope a history fetch.
type LogOptions struct {
	Since  time.Time
	Author string
}

// Commits lists non-merge commits since the given date, newest first.
// A failing or missing git binary is logged and yields an empty slice;
// callers cannot tell that apart from an empty range.
func (c *Client) Commits(ctx context.Context, opts LogOptions) []Commit {
	args := []string{
		"-C", c.repoPath, "log",
		"--since=" + opts.Since.Format("2006-01-02"),
		"--pretty=format:%H|%an|%ad|%s",
		"--date=short",
		"--no-merges",
	}
	if opts.Author != "" {
		args = append(args, "--author="+opts.Author)
	}

	out, err := exec.CommandContext(ctx, "git", args...).Output()
	if err != nil {
		logging.Logger.Error().Err(err).Str("repo", c.repoPath).Msg("git log failed")
		return nil
	}

	return ParseLog(string(out))
}

// ParseLog splits pipe-delimited `%H|%an|%ad|%s` lines into commits.
// Lines that do not carry exactly four fields are dropped. The message
// field is the remainder of the line, so messages containing pipes survive.
func ParseLog(out string) []Commit {
	var commits []Commit
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "|", 4)
		if len(parts) != 4 {
			logging.Logger.Debug().Str("line", line).Msg("skipping malformed log line")
			continue
		}
		commits = append(commits, Commit{
			Hash:    parts[0],
			Author:  parts[1],
			Date:    parts[2],
			Message: parts[3],
		})
	}
	return commits
}

// Authors returns the distinct commit authors of the trailing month,
// sorted ascending. Failures degrade to an empty list.
func (c *Client) Authors(ctx context.Context) []string {
	args := []string{
		"-C", c.repoPath, "log",
		"--pretty=format:%an",
		"--since=1.month.ago",
		"--no-merges",
	}

	out, err := exec.CommandContext(ctx, "git", args...).Output()
	if err != nil {
		logging.Logger.Error().Err(err).Str("repo", c.repoPath).Msg("git log failed")
		return nil
	}

	seen := make(map[string]struct{})
	var authors []string
	for _, line := range strings.Split(strings.TrimSpace(string(out)), "\n") {
		name := strings.TrimSpace(line)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		authors = append(authors, name)
	}
	sort.Strings(authors)
	return authors
}
