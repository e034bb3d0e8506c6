// Package core defines the data model and pipeline interfaces for cargotab.
// Each stage of the pipeline is a clean, testable interface.
package core

import "context"

// Source identifies one of the upstream tracking systems whose HTML
// layout the pipeline understands.
type Source string

const (
	// SourceSkyCargo uses a single flat table split into titled
	// subsections by in-band marker rows.
	SourceSkyCargo Source = "skycargo"
	// SourceSeaLine uses plain tables with one header row each.
	SourceSeaLine Source = "sealine"
)

// sourceLabels maps source codes to human-readable labels for the envelope.
var sourceLabels = map[Source]string{
	SourceSkyCargo: "SkyCargo Tracking",
	SourceSeaLine:  "SeaLine Container Tracking",
}

// Label returns the human-readable name for a source, or the raw code
// if no label is registered.
func (s Source) Label() string {
	if label, ok := sourceLabels[s]; ok {
		return label
	}
	return string(s)
}

// Cell is a single table cell with trimmed text. Cells with empty
// trimmed text are dropped during extraction and never appear here.
type Cell struct {
	Text     string `json:"text"`
	IsHeader bool   `json:"is_header"`
}

// Row is an ordered sequence of non-empty cells. Number is the 0-based
// position among all row elements of the source table, including rows
// that were later dropped for having no surviving cells.
type Row struct {
	Number int    `json:"row_number"`
	Cells  []Cell `json:"cells"`
}

// Table is one extracted grid. ID comes from the markup's id attribute
// when present, else a synthetic table_<n> counted over retained tables.
type Table struct {
	ID        string `json:"table_id"`
	TotalRows int    `json:"total_rows"`
	Rows      []Row  `json:"rows"`
}

// Record is one normalized row, keyed by column header text.
type Record map[string]string

// ReportSection is a run of records under one header context. For the
// sectioned layout the title and slug come from the marker row; for the
// single-header layout there is one untitled section per table.
type ReportSection struct {
	Title   string   `json:"section_title,omitempty"`
	TableID string   `json:"table_id"`
	Records []Record `json:"records"`
}

// TableReport is one table or section inside the output envelope.
// Records and Rows are mutually exclusive depending on the requested
// granularity.
type TableReport struct {
	TableID      string     `json:"table_id"`
	TableNumber  int        `json:"table_number"`
	SectionTitle string     `json:"section_title,omitempty"`
	TotalRows    int        `json:"total_rows"`
	Records      []Record   `json:"records,omitempty"`
	Rows         [][]string `json:"rows,omitempty"`
}

// Envelope is the uniform result returned to callers. It is plain data,
// directly serializable, with no behavior attached.
type Envelope struct {
	TrackingID   string        `json:"tracking_id"`
	SourceName   string        `json:"source_name"`
	SourceCode   string        `json:"source_code"`
	ExtractionID string        `json:"extraction_id"`
	ExtractedAt  string        `json:"extracted_at"` // ISO8601
	TotalTables  int           `json:"total_tables"`
	Warning      string        `json:"warning,omitempty"`
	Tables       []TableReport `json:"tables"`
}

// FetchResult holds the raw HTML and response metadata from a fetch.
type FetchResult struct {
	URL        string
	StatusCode int
	HTML       string
}

// Fetcher retrieves raw HTML for a tracking page.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// GridExtractor parses an HTML document into generic tables with no
// knowledge of source semantics.
type GridExtractor interface {
	Extract(html string) ([]Table, error)
}

// Normalizer turns one extracted table into report sections. Heuristic
// ambiguity never fails: normalizers return best-effort output once and
// do not retry or self-heal.
type Normalizer interface {
	Normalize(table Table) []ReportSection
}

// Renderer converts an envelope into a final output format.
type Renderer interface {
	Render(env *Envelope) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".json").
	Extension() string
}
