// pkg/message/classify.go

package message

import (
	"path/filepath"
	"strings"
)

// Classify is a best-effort heuristic over file paths and diff markers.
// Test-pattern filenames win over documentation extensions; anything else
// is left unclassified so the caller can defer to the AI prefix or chore.
func Classify(diff string, files []string) CommitType {
	hasTests := false
	hasDocs := false
	sawOther := false

	for _, file := range files {
		base := strings.ToLower(filepath.Base(file))
		switch {
		case isTestFile(file, base):
			hasTests = true
		case isDocFile(file, base):
			hasDocs = true
		default:
			sawOther = true
		}
	}

	if hasTests {
		return TypeTest
	}
	if hasDocs && !sawOther {
		return TypeDocs
	}

	// A change consisting purely of newly added files reads as a feature.
	if sawOther &&
		strings.Contains(diff, "new file mode") &&
		!strings.Contains(diff, "deleted file mode") {
		return TypeFeat
	}

	return TypeUnclassified
}

func isTestFile(path, base string) bool {
	if strings.HasSuffix(base, "_test.go") ||
		strings.HasPrefix(base, "test_") ||
		strings.Contains(base, ".spec.") ||
		strings.Contains(base, ".test.") {
		return true
	}
	for _, dir := range strings.Split(filepath.ToSlash(path), "/") {
		if dir == "test" || dir == "tests" {
			return true
		}
	}
	return false
}

func isDocFile(path, base string) bool {
	switch strings.ToLower(filepath.Ext(base)) {
	case ".md", ".rst", ".txt", ".adoc":
		return true
	}
	for _, dir := range strings.Split(filepath.ToSlash(path), "/") {
		if dir == "docs" || dir == "doc" {
			return true
		}
	}
	return false
}
