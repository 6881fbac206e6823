// pkg/interaction/reader.go

package interaction

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// ReadLine prompts with a label on the given writer and returns a trimmed
// line of input. Prompts go to the caller's writer (normally stderr) so
// stdout stays usable for automation.
func ReadLine(ctx context.Context, reader *bufio.Reader, promptOut io.Writer, label string) (string, error) {
	logger := otelzap.Ctx(ctx)
	logger.Debug("Prompting user for input", zap.String("label", label))

	_, _ = fmt.Fprint(promptOut, label+": ")

	// A final line without a trailing newline (piped input) still counts.
	text, err := reader.ReadString('\n')
	if err != nil && !(err == io.EOF && text != "") {
		logger.Debug("Failed to read user input", zap.Error(err))
		return "", err
	}

	value := strings.TrimSpace(text)
	logger.Debug("User input received", zap.String("value", value))
	return value, nil
}
