// pkg/message/validate.go

package message

import "strings"

// Normalize prepares raw completion text for validation: trim whitespace,
// strip wrapping quotes and code fences, keep only the first non-empty line.
func Normalize(text string) string {
	text = strings.TrimSpace(text)
	text = strings.Trim(text, "`\"'")
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			return line
		}
	}
	return ""
}

// ValidateConventionalFormat reports whether text starts with a recognized
// type token followed by a colon and a non-empty description.
func ValidateConventionalFormat(text string) bool {
	prefix, description, ok := strings.Cut(text, ":")
	if !ok {
		return false
	}
	if _, known := ParseCommitType(strings.TrimSpace(strings.ToLower(prefix))); !known {
		return false
	}
	return strings.TrimSpace(description) != ""
}

// TypeOf extracts the type token from a valid conventional message,
// TypeUnclassified otherwise.
func TypeOf(text string) CommitType {
	prefix, _, ok := strings.Cut(text, ":")
	if !ok {
		return TypeUnclassified
	}
	t, _ := ParseCommitType(strings.TrimSpace(strings.ToLower(prefix)))
	return t
}
