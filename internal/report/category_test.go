package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartekus/gitweekly/internal/gitlog"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		message  string
		expected Category
	}{
		{"feat: dark mode", CategoryFeature},
		{"Add new dashboard", CategoryFeature},
		{"implement session cache", CategoryFeature},
		{"新增用户模块", CategoryFeature},
		{"fix login bug", CategoryBugfix},
		{"Resolve crash on startup", CategoryBugfix},
		{"修复崩溃", CategoryBugfix},
		{"update readme", CategoryDocs},
		{"文档调整", CategoryDocs},
		{"changelog for v2", CategoryDocs},
		{"refactor storage layer", CategoryRefactor},
		{"重构存储层", CategoryRefactor},
		{"improve startup speed", CategoryRefactor},
		{"unit coverage for parser", CategoryTest},
		{"测试用例补充", CategoryTest},
		{"bump version", CategoryOther},
		{"", CategoryOther},
		{"FIX LOGIN", CategoryBugfix}, // case-insensitive
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.message))
		})
	}
}

func TestClassifyPriorityOrder(t *testing.T) {
	// Earlier buckets win when several keyword lists match.
	assert.Equal(t, CategoryFeature, Classify("add fix for login"))
	assert.Equal(t, CategoryBugfix, Classify("fix test coverage"))
	assert.Equal(t, CategoryDocs, Classify("update improve wording")) // docs before refactor
	assert.Equal(t, CategoryRefactor, Classify("refactor tests"))
}

func TestCategorizeIsTotal(t *testing.T) {
	commits := []gitlog.Commit{
		{Hash: "1", Message: "feat x"},
		{Hash: "2", Message: "fix y"},
		{Hash: "3", Message: "doc z"},
		{Hash: "4", Message: "refactor w"},
		{Hash: "5", Message: "test v"},
		{Hash: "6", Message: "misc"},
		{Hash: "7", Message: "another misc"},
	}

	categorized := Categorize(commits)

	total := 0
	for _, category := range Categories {
		total += len(categorized[category])
	}
	assert.Equal(t, len(commits), total)
	assert.Len(t, categorized[CategoryOther], 2)
}

func TestCategorizePreservesFetchOrder(t *testing.T) {
	commits := []gitlog.Commit{
		{Hash: "1", Message: "fix one"},
		{Hash: "2", Message: "feat one"},
		{Hash: "3", Message: "fix two"},
	}

	categorized := Categorize(commits)
	bugfixes := categorized[CategoryBugfix]
	require.Len(t, bugfixes, 2)
	assert.Equal(t, "1", bugfixes[0].Hash)
	assert.Equal(t, "3", bugfixes[1].Hash)
}
