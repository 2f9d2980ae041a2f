package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTable(t *testing.T) {
	columns := []TableColumn{
		{Title: "Field", Width: 20},
		{Title: "Value", Width: 10},
	}
	rows := []table.Row{
		{"activeDeals", "42"},
		{"totalCustomers", "1,234"},
	}

	tbl := NewTable(columns, rows)

	view := tbl.View()
	assert.NotEmpty(t, view)
	assert.Contains(t, view, "Field")
	assert.Contains(t, view, "Value")
	assert.Contains(t, view, "activeDeals")
	assert.Contains(t, view, "1,234")
}

func TestNewTable_EmptyRows(t *testing.T) {
	columns := []TableColumn{
		{Title: "Field", Width: 20},
	}

	tbl := NewTable(columns, []table.Row{})
	view := tbl.View()

	assert.NotEmpty(t, view)
	assert.Contains(t, view, "Field")
}

func TestRenderSimpleTable(t *testing.T) {
	columns := []TableColumn{
		{Title: "Field", Width: 15},
		{Title: "Value", Width: 30},
	}
	rows := [][]string{
		{"monthlySales", "5,000, 6,000"},
		{"activeDeals", "60"},
	}

	output := RenderSimpleTable(columns, rows)
	assert.Contains(t, output, "monthlySales")
	assert.Contains(t, output, "5,000, 6,000")
	assert.Contains(t, output, "activeDeals")
}

func TestRenderSimpleTable_EmptyRows(t *testing.T) {
	output := RenderSimpleTable([]TableColumn{{Title: "Field", Width: 10}}, nil)
	assert.Empty(t, output)
}

func TestFitColumns(t *testing.T) {
	columns := []TableColumn{{Title: "FIELD"}, {Title: "V", Width: 8}}
	rows := [][]string{
		{"customerSatisfaction", "4.5"},
		{"activeDeals"},
	}

	got := FitColumns(columns, rows, 2)
	require.Len(t, got, 2)
	assert.Equal(t, len("customerSatisfaction")+2, got[0].Width)
	assert.Equal(t, 10, got[1].Width, "explicit width acts as a minimum")

	// Input is not modified.
	assert.Equal(t, 0, columns[0].Width)
}

func TestFitColumns_LongestCellIsNotTruncated(t *testing.T) {
	rows := [][]string{{"leadConversionRate", "10, 20, 30, 40, 50, 60, 70"}}
	cols := FitColumns([]TableColumn{{Title: "FIELD"}, {Title: "VALUES"}}, rows, 1)

	output := RenderSimpleTable(cols, rows)
	assert.Contains(t, output, "10, 20, 30, 40, 50, 60, 70")
	assert.False(t, strings.Contains(output, "…"))
}

func TestRenderHeader(t *testing.T) {
	out := RenderHeader(HeaderInfo{Version: "v1.0.0", Tagline: "CRM analytics", Detail: ".crmdash.yaml"})
	assert.Contains(t, out, "crmdash")
	assert.Contains(t, out, "v1.0.0")
	assert.Contains(t, out, "CRM analytics")
	assert.Contains(t, out, ".crmdash.yaml")
	assert.Contains(t, out, strings.Repeat("━", HeaderWidth))
}

func TestRenderHeader_Minimal(t *testing.T) {
	out := RenderHeader(HeaderInfo{})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 2, "title and divider only")
}
