package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartekus/gitweekly/internal/gitlog"
	"github.com/bartekus/gitweekly/internal/testutil/golden"
)

func TestBuildEmpty(t *testing.T) {
	doc := Build(Input{})
	assert.Equal(t, "# 本周工作周报\n\n本周暂无代码提交记录。\n", doc)
}

func TestBuildEmptyWithAuthor(t *testing.T) {
	doc := Build(Input{Author: "Alice"})
	assert.Equal(t, "# 本周工作周报 - Alice\n\n本周暂无代码提交记录。\n", doc)
}

func TestBuildBasic(t *testing.T) {
	commits := []gitlog.Commit{
		{Hash: "a1", Author: "Alice", Date: "2024-01-10", Message: "fix login bug"},
		{Hash: "b2", Author: "Bob", Date: "2024-01-10", Message: "add new dashboard"},
	}

	doc := Build(Input{
		Commits:    commits,
		Categories: Categorize(commits),
		Stats: map[string]gitlog.Stats{
			"a1": {},
			"b2": {},
		},
	})

	assert.Contains(t, doc, "- **提交次数**: 2 次")
	assert.Contains(t, doc, "- **文件变更**: 0 个文件")
	assert.Contains(t, doc, "**统计时间**: 2024-01-10 ~ 2024-01-10")
	assert.NotContains(t, doc, "本周总结")

	// Alice lands in the bugfix bucket, Bob in the feature bucket.
	assert.Contains(t, doc, "### Bug修复 (1)\n- **Alice**: fix login bug")
	assert.Contains(t, doc, "### 功能开发 (1)\n- **Bob**: add new dashboard")

	// Both grouped under the shared date.
	assert.Contains(t, doc, "### 2024-01-10\n- **Alice** (0 文件, +0/-0): fix login bug\n- **Bob** (0 文件, +0/-0): add new dashboard")

	golden.Assert(t, golden.TestdataDir(t), "report_basic", doc)
}

func TestBuildEnhanced(t *testing.T) {
	commits := []gitlog.Commit{
		{Hash: "a1", Author: "Alice", Date: "2024-01-11", Message: "修复登录问题", OriginalMessage: "fix login bug"},
		{Hash: "b2", Author: "Bob", Date: "2024-01-10", Message: "新增仪表盘", OriginalMessage: "add new dashboard"},
	}

	doc := Build(Input{
		Commits:    commits,
		Categories: Categorize(commits),
		Stats: map[string]gitlog.Stats{
			"a1": {FilesChanged: 2, Insertions: 10, Deletions: 3},
			"b2": {FilesChanged: 5, Insertions: 120, Deletions: 30},
		},
		Summary: "本周完成了登录问题修复和仪表盘开发。",
		Author:  "团队",
	})

	assert.Contains(t, doc, "# 本周工作周报 - 团队")
	assert.Contains(t, doc, "## 🎯 本周总结\n\n本周完成了登录问题修复和仪表盘开发。")
	assert.Contains(t, doc, "- **文件变更**: 7 个文件")
	assert.Contains(t, doc, "- **代码新增**: +130 行")
	assert.Contains(t, doc, "- **代码删除**: -33 行")
	assert.Contains(t, doc, "- **Alice**: 修复登录问题\n  *原始*: fix login bug")

	golden.Assert(t, golden.TestdataDir(t), "report_enhanced", doc)
}

func TestBuildSortsDatesDescending(t *testing.T) {
	commits := []gitlog.Commit{
		{Hash: "1", Author: "A", Date: "2024-01-09", Message: "misc one"},
		{Hash: "2", Author: "A", Date: "2024-01-11", Message: "misc two"},
		{Hash: "3", Author: "A", Date: "2024-01-10", Message: "misc three"},
	}

	doc := Build(Input{Commits: commits, Categories: Categorize(commits), Stats: map[string]gitlog.Stats{}})

	i11 := strings.Index(doc, "### 2024-01-11")
	i10 := strings.Index(doc, "### 2024-01-10")
	i09 := strings.Index(doc, "### 2024-01-09")
	require.NotEqual(t, -1, i11)
	require.NotEqual(t, -1, i10)
	require.NotEqual(t, -1, i09)
	assert.Less(t, i11, i10)
	assert.Less(t, i10, i09)
}

func TestBuildMissingStatsRenderAsZero(t *testing.T) {
	commits := []gitlog.Commit{{Hash: "a1", Author: "Alice", Date: "2024-01-10", Message: "misc"}}

	doc := Build(Input{Commits: commits, Categories: Categorize(commits), Stats: nil})
	assert.Contains(t, doc, "- **Alice** (0 文件, +0/-0): misc")
}

func TestWriteFile(t *testing.T) {
	target := filepath.Join(t.TempDir(), "out", "report.md")

	require.NoError(t, WriteFile(target, "# 本周工作周报\n"))

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "# 本周工作周报\n", string(data))
}

func TestWriteFileOverwrites(t *testing.T) {
	target := filepath.Join(t.TempDir(), "report.md")

	require.NoError(t, WriteFile(target, "first"))
	require.NoError(t, WriteFile(target, "second"))

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}
