// SPDX-License-Identifier: AGPL-3.0-or-later

package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bartekus/gitweekly/internal/gitlog"
)

// Input carries everything the builder renders.
type Input struct {
	// Commits in fetch order, newest first.
	Commits []gitlog.Commit

	// Categories as produced by Categorize over Commits.
	Categories map[Category][]gitlog.Commit

	// Stats per commit hash; missing entries render as zeros.
	Stats map[string]gitlog.Stats

	// Summary is the optional narrative section body.
	Summary string

	// Author is the optional filter name shown in the title.
	Author string
}

// Build renders the weekly report document. An empty commit sequence
// short-circuits to a fixed no-commits document that still honors the
// author heading.
func Build(in Input) string {
	if len(in.Commits) == 0 {
		return title(in.Author) + "\n\n本周暂无代码提交记录。\n"
	}

	var lines []string
	lines = append(lines, title(in.Author), "")
	lines = append(lines, fmt.Sprintf("**统计时间**: %s ~ %s", in.Commits[0].Date, in.Commits[len(in.Commits)-1].Date), "")

	if in.Summary != "" {
		lines = append(lines, "## 🎯 本周总结", "", in.Summary, "")
	}

	lines = append(lines, overviewLines(in)...)
	lines = append(lines, categoryLines(in.Categories)...)
	lines = append(lines, dailyLines(in.Commits, in.Stats)...)

	return strings.Join(lines, "\n")
}

func title(author string) string {
	if author != "" {
		return "# 本周工作周报 - " + author
	}
	return "# 本周工作周报"
}

func overviewLines(in Input) []string {
	var files, insertions, deletions int
	for _, commit := range in.Commits {
		stats := in.Stats[commit.Hash]
		files += stats.FilesChanged
		insertions += stats.Insertions
		deletions += stats.Deletions
	}

	return []string{
		"## 📊 统计概览",
		"",
		fmt.Sprintf("- **提交次数**: %d 次", len(in.Commits)),
		fmt.Sprintf("- **文件变更**: %d 个文件", files),
		fmt.Sprintf("- **代码新增**: +%d 行", insertions),
		fmt.Sprintf("- **代码删除**: -%d 行", deletions),
		"",
	}
}

func categoryLines(categories map[Category][]gitlog.Commit) []string {
	lines := []string{"## 📋 工作分类", ""}

	for _, category := range Categories {
		commits := categories[category]
		if len(commits) == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("### %s (%d)", category, len(commits)))
		for _, commit := range commits {
			lines = append(lines, fmt.Sprintf("- **%s**: %s", commit.Author, commit.Message))
			if commit.OriginalMessage != "" {
				lines = append(lines, fmt.Sprintf("  *原始*: %s", commit.OriginalMessage))
			}
		}
		lines = append(lines, "")
	}

	return lines
}

func dailyLines(commits []gitlog.Commit, stats map[string]gitlog.Stats) []string {
	byDate := make(map[string][]gitlog.Commit)
	for _, commit := range commits {
		byDate[commit.Date] = append(byDate[commit.Date], commit)
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	// YYYY-MM-DD sorts chronologically as text; newest day first.
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	lines := []string{"## 📅 每日详情", ""}
	for _, date := range dates {
		lines = append(lines, "### "+date)
		for _, commit := range byDate[date] {
			s := stats[commit.Hash]
			lines = append(lines, fmt.Sprintf("- **%s** (%d 文件, +%d/-%d): %s",
				commit.Author, s.FilesChanged, s.Insertions, s.Deletions, commit.Message))
		}
		lines = append(lines, "")
	}

	return lines
}
