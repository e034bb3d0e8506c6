package render

import (
	"sort"
	"strings"

	"github.com/gaurav-prasanna/cargotab/core"
)

// MarkdownRenderer writes the envelope as a human-readable report with
// one pipe table per section.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render produces the markdown report.
func (r *MarkdownRenderer) Render(env *core.Envelope) ([]byte, error) {
	var b strings.Builder

	b.WriteString("# Tracking " + env.TrackingID + "\n\n")
	b.WriteString("Source: " + env.SourceName + " (" + env.SourceCode + ")\n\n")
	b.WriteString("Extracted: " + env.ExtractedAt + "\n")
	if env.Warning != "" {
		b.WriteString("\n> " + env.Warning + "\n")
	}

	for _, report := range env.Tables {
		b.WriteString("\n## ")
		if report.SectionTitle != "" {
			b.WriteString(report.SectionTitle)
		} else {
			b.WriteString(report.TableID)
		}
		b.WriteString("\n\n")

		switch {
		case len(report.Records) > 0:
			writeRecordTable(&b, report.Records)
		case len(report.Rows) > 0:
			writeRawTable(&b, report.Rows)
		}
	}

	return []byte(b.String()), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}

// writeRecordTable renders records as a pipe table. Column order is the
// sorted key set of the first record; all records in a section share
// one header context, and a record missing a key renders empty.
func writeRecordTable(b *strings.Builder, records []core.Record) {
	keys := make([]string, 0, len(records[0]))
	for key := range records[0] {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	writeRow(b, keys)
	writeSeparator(b, len(keys))
	for _, record := range records {
		values := make([]string, len(keys))
		for i, key := range keys {
			values[i] = record[key]
		}
		writeRow(b, values)
	}
}

func writeRawTable(b *strings.Builder, rows [][]string) {
	writeRow(b, rows[0])
	writeSeparator(b, len(rows[0]))
	for _, row := range rows[1:] {
		writeRow(b, row)
	}
}

func writeRow(b *strings.Builder, cells []string) {
	b.WriteString("|")
	for _, cell := range cells {
		b.WriteString(" " + strings.ReplaceAll(cell, "|", "\\|") + " |")
	}
	b.WriteString("\n")
}

func writeSeparator(b *strings.Builder, n int) {
	b.WriteString("|")
	for i := 0; i < n; i++ {
		b.WriteString(" --- |")
	}
	b.WriteString("\n")
}
