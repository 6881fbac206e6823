// pkg/message/fallback.go

package message

import (
	"fmt"
	"strings"
)

// FallbackMessage builds a deterministic, network-free commit message from
// the staged file list. Order is preserved and nothing is deduplicated.
//
//	1 file       chore: update <file>
//	2-3 files    chore: update <f1>, <f2>[, <f3>]
//	otherwise    chore: update <N> files
func FallbackMessage(files []string) string {
	switch len(files) {
	case 1:
		return fmt.Sprintf("chore: update %s", files[0])
	case 2, 3:
		return fmt.Sprintf("chore: update %s", strings.Join(files, ", "))
	default:
		return fmt.Sprintf("chore: update %d files", len(files))
	}
}
