// Package normalize turns generic extracted tables into keyed records.
// Each supported source has its own Normalizer strategy; ForSource is
// the single dispatch point for adding new sources.
//
// The heuristics here are shape tests over unlabeled, visually-formatted
// table text. They are applied once per table and return best-effort
// output; ambiguous markup produces plausible records, never an error.
package normalize

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/cargotab/core"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// headerKeys derives record keys from a header row by collapsing
// internal whitespace runs in each cell.
func headerKeys(row core.Row) []string {
	keys := make([]string, len(row.Cells))
	for i, cell := range row.Cells {
		keys[i] = whitespaceRun.ReplaceAllString(strings.TrimSpace(cell.Text), " ")
	}
	return keys
}

// keyAt returns the header key for column i, falling back to a
// positional placeholder when the header name is empty.
func keyAt(header []string, i int) string {
	if header[i] == "" {
		return fmt.Sprintf("Column %d", i+1)
	}
	return header[i]
}
