package inventory

import (
	"strings"
	"testing"

	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseRows(t *testing.T, csv string) []*stockRow {
	t.Helper()
	var rows []*stockRow
	require.NoError(t, gocsv.Unmarshal(strings.NewReader(csv), &rows))
	return rows
}

func TestProcessStockRowsSkipsIncomplete(t *testing.T) {
	rows := parseRows(t, "productId,stock\np1,10\np2,\np3,7\n")

	var applied []string
	report := processStockRows(rows, func(id string, stock int) error {
		applied = append(applied, id)
		return nil
	})

	assert.Equal(t, []string{"p1", "p3"}, applied)
	assert.Equal(t, 2, report.Applied)
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, 0, report.Failed)
	require.Len(t, report.Rows, 3)
	assert.Equal(t, "applied", report.Rows[0].Outcome)
	assert.Equal(t, 10, report.Rows[0].Stock)
	assert.Equal(t, "skipped", report.Rows[1].Outcome)
	assert.Equal(t, "applied", report.Rows[2].Outcome)
	assert.Equal(t, 7, report.Rows[2].Stock)
}

func TestProcessStockRowsRejectsBadStock(t *testing.T) {
	rows := parseRows(t, "productId,stock\np1,abc\np2,-3\np3,0\n")

	calls := 0
	report := processStockRows(rows, func(id string, stock int) error {
		calls++
		assert.Equal(t, "p3", id)
		assert.Equal(t, 0, stock)
		return nil
	})

	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, report.Applied)
	assert.Equal(t, 2, report.Skipped)
}

func TestProcessStockRowsReportsFailures(t *testing.T) {
	rows := parseRows(t, "productId,stock\np1,5\npX,3\n")

	report := processStockRows(rows, func(id string, stock int) error {
		if id == "pX" {
			return errProductNotFound
		}
		return nil
	})

	assert.Equal(t, 1, report.Applied)
	assert.Equal(t, 1, report.Failed)
	require.Len(t, report.Rows, 2)
	assert.Equal(t, "failed", report.Rows[1].Outcome)
	assert.Equal(t, "product not found", report.Rows[1].Reason)
}

func TestBulkCSVParseFailure(t *testing.T) {
	var rows []*stockRow
	err := gocsv.Unmarshal(strings.NewReader(`productId,stock`+"\n"+`"p1,5`), &rows)
	assert.Error(t, err)
}
