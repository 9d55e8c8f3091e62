package itemsource

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Processor resolves a CLI input argument into the item list to categorize.
type Processor interface {
	Process(ctx context.Context, input string) ([]string, error)
}

// New creates the default processor implementation.
func New() Processor {
	return &defaultProcessor{stdin: os.Stdin}
}

type defaultProcessor struct {
	stdin io.Reader
}

// Process accepts "-" for stdin (one item per line), a path to a text file
// (one item per line), or an inline comma-separated list.
func (p *defaultProcessor) Process(ctx context.Context, input string) ([]string, error) {
	if input == "-" {
		data, err := io.ReadAll(p.stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read items from stdin: %w", err)
		}
		return splitItems(string(data), "\n")
	}

	fi, err := os.Stat(input)
	if err == nil && !fi.IsDir() {
		log.Debugf("Input '%s' detected as a file.", input)
		data, readErr := os.ReadFile(input)
		if readErr != nil {
			return nil, fmt.Errorf("failed to read items file '%s': %w", input, readErr)
		}
		cleaned, cleanErr := cleanContent(data, input)
		if cleanErr != nil {
			return nil, cleanErr
		}
		return splitItems(cleaned, "\n")
	}
	if err == nil && fi.IsDir() {
		return nil, fmt.Errorf("input '%s' is a directory, not an items file", input)
	}

	// Not on the filesystem: treat as an inline comma-separated list.
	return splitItems(input, ",")
}

func splitItems(raw, sep string) ([]string, error) {
	var items []string
	for _, part := range strings.Split(raw, sep) {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			items = append(items, trimmed)
		}
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("no items found in input")
	}
	return items, nil
}
