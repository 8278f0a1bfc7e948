// Package loader contains the default [domain.Loader] implementation. It
// reads record collections from JSON-lines streams, one record per line.
package loader

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/dolmen-go/contextio"
	"github.com/vinicius-lino-figueiredo/boolq/domain"
)

// Loader implements domain.Loader.
type Loader struct{}

// NewLoader returns a new implementation of domain.Loader.
func NewLoader() domain.Loader {
	return &Loader{}
}

// Load implements domain.Loader. Empty lines are skipped; a line that is
// not a valid JSON value aborts the load.
func (l *Loader) Load(ctx context.Context, r io.Reader) ([]any, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	var records []any
	lineStream := bufio.NewScanner(contextio.NewReader(ctx, r))
	lineNo := 0
	for lineStream.Scan() {
		lineNo++
		line := lineStream.Bytes()
		if len(line) == 0 {
			continue
		}
		var record any
		if err := json.Unmarshal(line, &record); err != nil {
			return nil, fmt.Errorf("could not parse record at line %d: %w", lineNo, err)
		}
		records = append(records, record)
	}
	if err := lineStream.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
