// pkg/inference/prompt.go

package inference

import (
	"strings"
)

const systemPrompt = `You write Git commit messages. Reply with exactly one line in Conventional Commits format: a type (feat, fix, docs, refactor, test, chore, style) followed by a colon and a short imperative description. No body, no quotes, no explanation.`

// BuildUserPrompt embeds the truncated diff and file list in a fixed
// instructional prompt.
func BuildUserPrompt(diff string, files []string, maxDiffBytes int) string {
	var sb strings.Builder
	sb.WriteString("Write a commit message for these staged changes.\n\nFiles:\n")
	for _, f := range files {
		sb.WriteString("- ")
		sb.WriteString(f)
		sb.WriteString("\n")
	}
	sb.WriteString("\nDiff:\n")
	sb.WriteString(TruncateDiff(diff, maxDiffBytes))
	return sb.String()
}

// TruncateDiff bounds the diff embedded in the prompt. Truncation keeps the
// head: early diff lines name the changed files.
func TruncateDiff(diff string, maxBytes int) string {
	if maxBytes <= 0 || len(diff) <= maxBytes {
		return diff
	}
	return diff[:maxBytes] + "\n... (diff truncated)"
}

// BuildPayload assembles the chat-completions request body.
func BuildPayload(model string, userPrompt string, maxTokens int, temperature float64) map[string]any {
	return map[string]any{
		"model": model,
		"messages": []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": userPrompt},
		},
		"max_tokens":  maxTokens,
		"temperature": temperature,
	}
}

// collapseWhitespace folds a completion onto one line.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
