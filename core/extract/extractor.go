// Package extract implements the GridExtractor interface.
// It walks an HTML document and turns every <table> into a generic cell
// grid, with no knowledge of source-specific semantics:
//  1. Cells with empty trimmed text are dropped.
//  2. Rows that retained no cells are dropped.
//  3. Tables that retained no rows are dropped.
package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/gaurav-prasanna/cargotab/core"
)

// GridExtractor parses HTML documents into generic tables.
type GridExtractor struct{}

// New creates a GridExtractor.
func New() *GridExtractor {
	return &GridExtractor{}
}

// Extract returns every non-empty table in document order.
//
// A table keeps its markup id when present; otherwise it gets a
// synthetic table_<n> id where n counts retained tables only, so
// synthetic ids are dense regardless of how many tables were dropped.
// A markup id that happens to equal a later synthetic id is not
// deduplicated; downstream consumers key on position, not id.
func (e *GridExtractor) Extract(html string) ([]core.Table, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, &core.ParseError{Err: err}
	}

	var tables []core.Table
	doc.Find("table").Each(func(_ int, sel *goquery.Selection) {
		var rows []core.Row
		sel.Find("tr").Each(func(i int, tr *goquery.Selection) {
			var cells []core.Cell
			tr.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
				text := strings.TrimSpace(cell.Text())
				if text == "" {
					return
				}
				cells = append(cells, core.Cell{
					Text:     text,
					IsHeader: goquery.NodeName(cell) == "th",
				})
			})
			if len(cells) == 0 {
				return
			}
			// Row numbers reflect original document position, so a
			// dropped row still advances the count.
			rows = append(rows, core.Row{Number: i, Cells: cells})
		})
		if len(rows) == 0 {
			return
		}

		id, _ := sel.Attr("id")
		if id == "" {
			id = fmt.Sprintf("table_%d", len(tables))
		}
		tables = append(tables, core.Table{
			ID:        id,
			TotalRows: len(rows),
			Rows:      rows,
		})
	})

	return tables, nil
}
