// SPDX-License-Identifier: AGPL-3.0-or-later

// Package enhance rewrites commit messages and produces a narrative weekly
// summary through the OpenRouter chat-completions API. Every failure path
// degrades instead of propagating: a rewrite falls back to the original
// message and a summary falls back to empty text, so report generation
// never depends on the network being up.
package enhance

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/bartekus/gitweekly/internal/gitlog"
	"github.com/bartekus/gitweekly/internal/logging"
)

// Enhancer rewrites commit messages and summarizes a week of commits.
type Enhancer interface {
	// Rewrite returns a polished version of message, or message itself when
	// rewriting is unavailable or fails.
	Rewrite(ctx context.Context, message string) string

	// Summarize returns a short narrative over the commits, or "" when
	// summarization is unavailable, fails, or there is nothing to summarize.
	Summarize(ctx context.Context, commits []gitlog.Commit) string
}

// Noop leaves messages untouched and produces no summary. It is the
// enhancer used when enhancement is disabled.
type Noop struct{}

func (Noop) Rewrite(_ context.Context, message string) string { return message }

func (Noop) Summarize(_ context.Context, _ []gitlog.Commit) string { return "" }

const (
	openRouterBaseURL = "https://openrouter.ai/api/v1"

	rewriteTimeout   = 10 * time.Second
	summarizeTimeout = 15 * time.Second

	// summaryCommitCap bounds how many commits feed the summary prompt.
	summaryCommitCap = 10
)

const rewritePrompt = `请将以下 git commit 消息翻译成中文，并进行适当的润色，使其更符合中文表达习惯。保持技术术语的准确性，让描述更加清晰易懂。

原始消息: %s

请直接返回翻译润色后的中文消息，不要添加任何解释。`

const summarizePrompt = `基于以下本周的 git commit 记录，请生成一段简洁的中文工作总结（50-100字），突出主要成果和进展：

%s

请直接返回总结内容，不要添加任何标题或解释。`

// OpenRouter is an Enhancer backed by the OpenRouter API.
type OpenRouter struct {
	client openai.Client
	model  string
}

// NewOpenRouter builds an enhancer for the given credential and model. The
// key is passed in explicitly; this package never consults the environment.
// Extra request options are applied last, which lets tests redirect the
// base URL.
func NewOpenRouter(apiKey, model string, opts ...option.RequestOption) *OpenRouter {
	options := append([]option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithBaseURL(openRouterBaseURL),
		// OpenRouter attribution headers.
		option.WithHeader("HTTP-Referer", "https://github.com/bartekus/gitweekly"),
		option.WithHeader("X-Title", "gitweekly"),
	}, opts...)

	return &OpenRouter{
		client: openai.NewClient(options...),
		model:  model,
	}
}

// Rewrite translates and polishes a single commit message.
func (e *OpenRouter) Rewrite(ctx context.Context, message string) string {
	resp, err := e.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(e.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(fmt.Sprintf(rewritePrompt, message)),
		},
		Temperature: openai.Float(0.3),
		MaxTokens:   openai.Int(100),
	}, option.WithRequestTimeout(rewriteTimeout))
	if err != nil {
		logging.Logger.Warn().Err(err).Msg("message rewrite failed, keeping original")
		return message
	}
	if len(resp.Choices) == 0 {
		return message
	}

	rewritten := strings.TrimSpace(resp.Choices[0].Message.Content)
	if rewritten == "" {
		return message
	}
	return rewritten
}

// Summarize generates a short narrative over at most the first
// summaryCommitCap commits.
func (e *OpenRouter) Summarize(ctx context.Context, commits []gitlog.Commit) string {
	if len(commits) == 0 {
		return ""
	}
	if len(commits) > summaryCommitCap {
		commits = commits[:summaryCommitCap]
	}

	lines := make([]string, 0, len(commits))
	for _, commit := range commits {
		lines = append(lines, fmt.Sprintf("- %s: %s", commit.Author, commit.Message))
	}

	resp, err := e.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(e.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(fmt.Sprintf(summarizePrompt, strings.Join(lines, "\n"))),
		},
		Temperature: openai.Float(0.5),
		MaxTokens:   openai.Int(150),
	}, option.WithRequestTimeout(summarizeTimeout))
	if err != nil {
		logging.Logger.Warn().Err(err).Msg("summary generation failed")
		return ""
	}
	if len(resp.Choices) == 0 {
		return ""
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content)
}

// ApplyRewrites runs every commit message through the enhancer, preserving
// the original message alongside the rewritten one. Fetch order is kept.
func ApplyRewrites(ctx context.Context, e Enhancer, commits []gitlog.Commit) []gitlog.Commit {
	out := make([]gitlog.Commit, len(commits))
	for i, commit := range commits {
		commit.OriginalMessage = commit.Message
		commit.Message = e.Rewrite(ctx, commit.Message)
		out[i] = commit
	}
	return out
}
