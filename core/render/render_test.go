package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/cargotab/core"
)

func sampleEnvelope() *core.Envelope {
	return &core.Envelope{
		TrackingID:   "176-12345675",
		SourceName:   "SkyCargo Tracking",
		SourceCode:   "skycargo",
		ExtractionID: "fixed-id",
		ExtractedAt:  "2024-01-05T10:30:00Z",
		TotalTables:  1,
		Tables: []core.TableReport{
			{
				TableID:      "shipment_details",
				TableNumber:  1,
				SectionTitle: "SHIPMENT DETAILS",
				TotalRows:    1,
				Records:      []core.Record{{"Date": "05-Jan-24", "Status": "Arrived"}},
			},
		},
	}
}

func TestJSONRenderer(t *testing.T) {
	r := NewJSONRenderer()
	assert.Equal(t, ".json", r.Extension())

	data, err := r.Render(sampleEnvelope())
	require.NoError(t, err)

	var decoded core.Envelope
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *sampleEnvelope(), decoded)

	again, err := r.Render(sampleEnvelope())
	require.NoError(t, err)
	assert.Equal(t, data, again, "rendering is byte-identical for identical envelopes")
}

func TestMarkdownRenderer(t *testing.T) {
	r := NewMarkdownRenderer()
	assert.Equal(t, ".md", r.Extension())

	data, err := r.Render(sampleEnvelope())
	require.NoError(t, err)
	md := string(data)

	assert.Contains(t, md, "# Tracking 176-12345675")
	assert.Contains(t, md, "## SHIPMENT DETAILS")
	assert.Contains(t, md, "| Date | Status |")
	assert.Contains(t, md, "| 05-Jan-24 | Arrived |")
}

func TestMarkdownRenderer_RawRows(t *testing.T) {
	env := sampleEnvelope()
	env.Tables = []core.TableReport{{
		TableID:     "grd1",
		TableNumber: 1,
		TotalRows:   2,
		Rows:        [][]string{{"A", "B"}, {"1", "2"}},
	}}

	data, err := NewMarkdownRenderer().Render(env)
	require.NoError(t, err)
	md := string(data)

	assert.Contains(t, md, "## grd1")
	assert.Contains(t, md, "| A | B |")
	assert.Contains(t, md, "| 1 | 2 |")
}

func TestMarkdownRenderer_Warning(t *testing.T) {
	env := sampleEnvelope()
	env.Tables = nil
	env.TotalTables = 0
	env.Warning = core.WarningEmptyResult

	data, err := NewMarkdownRenderer().Render(env)
	require.NoError(t, err)
	assert.Contains(t, string(data), "> "+core.WarningEmptyResult)
}

func TestPDFRenderer(t *testing.T) {
	r := NewPDFRenderer()
	assert.Equal(t, ".pdf", r.Extension())

	data, err := r.Render(sampleEnvelope())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
}
