// SPDX-License-Identifier: AGPL-3.0-or-later

package gitlog

import (
	"context"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/bartekus/gitweekly/internal/logging"
)

// Stats holds the change counts of a single commit.
type Stats struct {
	FilesChanged int
	Insertions   int
	Deletions    int
}

var (
	filesRE      = regexp.MustCompile(`(\d+)\s+file`)
	insertionsRE = regexp.MustCompile(`(\d+)\s+insertion`)
	deletionsRE  = regexp.MustCompile(`(\d+)\s+deletion`)
)

// Stats fetches the change summary of one commit. Failures and unmatched
// output degrade to all-zero stats.
func (c *Client) Stats(ctx context.Context, hash string) Stats {
	out, err := exec.CommandContext(ctx, "git", "-C", c.repoPath, "show", "--stat", "--format=", hash).Output()
	if err != nil {
		logging.Logger.Debug().Err(err).Str("commit", hash).Msg("git show failed")
		return Stats{}
	}
	return ParseStats(string(out))
}

// ParseStats scans `git show --stat` output for the summary line, e.g.
//
//	5 files changed, 120 insertions(+), 30 deletions(-)
//
// Each count is extracted independently; an absent sub-pattern leaves its
// field at zero, so a rename-only commit reports zero insertions.
func ParseStats(out string) Stats {
	var stats Stats
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if !strings.Contains(line, " file") || !strings.Contains(line, "changed") {
			continue
		}
		if m := filesRE.FindStringSubmatch(line); m != nil {
			stats.FilesChanged, _ = strconv.Atoi(m[1])
		}
		if m := insertionsRE.FindStringSubmatch(line); m != nil {
			stats.Insertions, _ = strconv.Atoi(m[1])
		}
		if m := deletionsRE.FindStringSubmatch(line); m != nil {
			stats.Deletions, _ = strconv.Atoi(m[1])
		}
	}
	return stats
}

// statsConcurrency bounds the number of git invocations in flight.
const statsConcurrency = 4

// StatsAll fetches stats for every commit once, keyed by hash. Callers keep
// their own ordering, so fetch timing never leaks into report output.
func (c *Client) StatsAll(ctx context.Context, commits []Commit) map[string]Stats {
	stats := make(map[string]Stats, len(commits))

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(statsConcurrency)
	for _, commit := range commits {
		g.Go(func() error {
			s := c.Stats(ctx, commit.Hash)
			mu.Lock()
			stats[commit.Hash] = s
			mu.Unlock()
			return nil
		})
	}
	// Per-commit failures are already degraded to zero stats.
	_ = g.Wait()

	return stats
}
