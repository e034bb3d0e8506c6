package normalize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/cargotab/core"
)

func TestHeaderNormalizer_FirstRowAsHeader(t *testing.T) {
	table := core.Table{ID: "grd1", TotalRows: 3, Rows: []core.Row{
		row(0, "A", "B"),
		row(1, "1", "2"),
		row(2, "3", "4"),
	}}

	sections := NewHeaderNormalizer().Normalize(table)
	require.Len(t, sections, 1)

	section := sections[0]
	assert.Equal(t, "grd1", section.TableID)
	require.Len(t, section.Records, 2)
	assert.Equal(t, core.Record{"A": "1", "B": "2"}, section.Records[0])
	assert.Equal(t, core.Record{"A": "3", "B": "4"}, section.Records[1])
}

func TestHeaderNormalizer_SkipsPreamble(t *testing.T) {
	table := core.Table{ID: "t", Rows: []core.Row{
		row(0, "Container Tracking Results"),
		row(1, "Container No", "Status", "Location"),
		row(2, "MSKU1234567", "Discharged", "Nhava Sheva"),
	}}

	sections := NewHeaderNormalizer().Normalize(table)
	require.Len(t, sections, 1)
	require.Len(t, sections[0].Records, 1)
	assert.Equal(t, "MSKU1234567", sections[0].Records[0]["Container No"])
}

func TestHeaderNormalizer_LongCellsDisqualifyHeader(t *testing.T) {
	long := strings.Repeat("x", 120)
	table := core.Table{ID: "t", Rows: []core.Row{
		row(0, long, long),
		row(1, "Voyage", "ETA"),
		row(2, "071W", "12-Mar-24"),
	}}

	sections := NewHeaderNormalizer().Normalize(table)
	require.Len(t, sections, 1)
	require.Len(t, sections[0].Records, 1)
	assert.Equal(t, core.Record{"Voyage": "071W", "ETA": "12-Mar-24"}, sections[0].Records[0])
}

func TestHeaderNormalizer_ShortRowOmitsTrailingKeys(t *testing.T) {
	table := core.Table{ID: "t", Rows: []core.Row{
		row(0, "A", "B", "C"),
		row(1, "1", "2"),
	}}

	sections := NewHeaderNormalizer().Normalize(table)
	require.Len(t, sections, 1)
	require.Len(t, sections[0].Records, 1)

	record := sections[0].Records[0]
	assert.Equal(t, core.Record{"A": "1", "B": "2"}, record)
	_, ok := record["C"]
	assert.False(t, ok, "missing trailing column produces no key")
}

func TestHeaderNormalizer_ExtraCellsIgnored(t *testing.T) {
	table := core.Table{ID: "t", Rows: []core.Row{
		row(0, "A", "B"),
		row(1, "1", "2", "overflow"),
	}}

	sections := NewHeaderNormalizer().Normalize(table)
	require.Len(t, sections[0].Records, 1)
	assert.Equal(t, core.Record{"A": "1", "B": "2"}, sections[0].Records[0])
}

func TestHeaderNormalizer_DegenerateFallsBackToRowZero(t *testing.T) {
	// No row passes the shape test: every row has a single cell. Row 0
	// becomes the header and later rows map against its one key.
	table := core.Table{ID: "t", Rows: []core.Row{
		row(0, "Status"),
		row(1, "In Transit"),
		row(2, "Delivered"),
	}}

	sections := NewHeaderNormalizer().Normalize(table)
	require.Len(t, sections, 1)
	require.Len(t, sections[0].Records, 2)
	assert.Equal(t, core.Record{"Status": "In Transit"}, sections[0].Records[0])
}

func TestHeaderNormalizer_EmptyTable(t *testing.T) {
	sections := NewHeaderNormalizer().Normalize(core.Table{ID: "t"})
	require.Len(t, sections, 1)
	assert.Empty(t, sections[0].Records)
}
