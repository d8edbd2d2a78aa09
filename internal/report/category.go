// SPDX-License-Identifier: AGPL-3.0-or-later

// Package report classifies commits into work buckets and renders the
// weekly report document.
package report

import (
	"strings"

	"github.com/bartekus/gitweekly/internal/gitlog"
)

// Category is one of the six fixed report buckets.
type Category string

const (
	CategoryFeature  Category = "功能开发"
	CategoryBugfix   Category = "Bug修复"
	CategoryDocs     Category = "文档更新"
	CategoryRefactor Category = "代码优化"
	CategoryTest     Category = "测试相关"
	CategoryOther    Category = "其他"
)

// Categories lists the buckets in report order.
var Categories = []Category{
	CategoryFeature,
	CategoryBugfix,
	CategoryDocs,
	CategoryRefactor,
	CategoryTest,
	CategoryOther,
}

// categoryKeywords is checked in this order and the first bucket with a hit
// wins, so "fix test coverage" lands in Bug修复 rather than 测试相关. The
// order is a compatibility contract with previously generated reports.
// "update" doubles as a generic verb and pulls some commits into 文档更新;
// known false-positive source, kept for parity.
var categoryKeywords = []struct {
	category Category
	keywords []string
}{
	{CategoryFeature, []string{"feat", "feature", "add", "新增", "添加", "implement", "create"}},
	{CategoryBugfix, []string{"fix", "bug", "修复", "解决", "patch", "resolve"}},
	{CategoryDocs, []string{"doc", "readme", "文档", "说明", "update", "changelog"}},
	{CategoryRefactor, []string{"refactor", "optimize", "优化", "重构", "improve", "enhance"}},
	{CategoryTest, []string{"test", "测试", "spec", "unit", "coverage"}},
}

// Classify assigns a commit message to exactly one bucket.
func Classify(message string) Category {
	m := strings.ToLower(message)
	for _, entry := range categoryKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(m, keyword) {
				return entry.category
			}
		}
	}
	return CategoryOther
}

// Categorize groups commits by bucket, preserving fetch order within each.
func Categorize(commits []gitlog.Commit) map[Category][]gitlog.Commit {
	categorized := make(map[Category][]gitlog.Commit, len(Categories))
	for _, commit := range commits {
		category := Classify(commit.Message)
		categorized[category] = append(categorized[category], commit)
	}
	return categorized
}
