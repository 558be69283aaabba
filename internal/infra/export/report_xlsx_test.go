//go:build unit

package export

import (
	"bytes"
	"testing"
	"time"

	"brainbox-retailplus/internal/domain/reward"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleReport() reward.Report {
	approver := uuid.New()
	rice := uuid.New()
	return reward.Report{
		Period: reward.Period{
			From: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			To:   time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC),
		},
		Totals: reward.Totals{
			Requests:    4,
			Pending:     1,
			Approved:    3,
			Redemptions: 3,
			Completed:   2,
			TotalValue:  decimal.RequireFromString("5700.50"),
		},
		ByType: []reward.TypeBreakdown{
			{RewardType: reward.TypeCashDiscount, Count: 1, Value: decimal.NewFromInt(1500)},
			{RewardType: reward.TypeFreeItems, Count: 1, Value: decimal.NewFromInt(4000)},
			{RewardType: reward.TypePercentageOff, Count: 1, Value: decimal.RequireFromString("200.50")},
		},
		ByApprover: []reward.ApproverBreakdown{
			{ApproverID: approver, ApproverName: "Ada Manager", Count: 3, Value: decimal.RequireFromString("5700.50")},
		},
		StockImpact: []reward.StockImpact{
			{ProductID: rice, ProductName: "Rice 5kg", Quantity: 2, Value: decimal.NewFromInt(4000)},
		},
	}
}

func raw(t *testing.T, f *excelize.File, sheet, cell string) string {
	t.Helper()
	v, err := f.GetCellValue(sheet, cell, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	return v
}

func TestReportWorkbook_Render(t *testing.T) {
	report := sampleReport()

	body, err := NewReportWorkbook().Render(report)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(body))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetSummary, SheetByType, SheetByApprover, SheetStockImpact}, f.GetSheetList())

	t.Run("summary", func(t *testing.T) {
		assert.Equal(t, "Metric", raw(t, f, SheetSummary, "A1"))
		assert.Equal(t, "2026-03-01", raw(t, f, SheetSummary, "B2"))
		assert.Equal(t, "2026-03-31", raw(t, f, SheetSummary, "B3"))
		assert.Equal(t, "4", raw(t, f, SheetSummary, "B4"))
		assert.Equal(t, "2", raw(t, f, SheetSummary, "B8"))
		assert.Equal(t, "5700.5", raw(t, f, SheetSummary, "B9"))
	})

	t.Run("by type", func(t *testing.T) {
		rows, err := f.GetRows(SheetByType, excelize.Options{RawCellValue: true})
		require.NoError(t, err)
		require.Len(t, rows, 4)
		assert.Equal(t, []string{"Reward type", "Count", "Value"}, rows[0])
		assert.Equal(t, []string{"percentage_off", "1", "200.5"}, rows[3])
	})

	t.Run("by approver", func(t *testing.T) {
		assert.Equal(t, "Ada Manager", raw(t, f, SheetByApprover, "A2"))
		assert.Equal(t, report.ByApprover[0].ApproverID.String(), raw(t, f, SheetByApprover, "B2"))
		assert.Equal(t, "3", raw(t, f, SheetByApprover, "C2"))
	})

	t.Run("stock impact", func(t *testing.T) {
		assert.Equal(t, "Rice 5kg", raw(t, f, SheetStockImpact, "A2"))
		assert.Equal(t, "2", raw(t, f, SheetStockImpact, "C2"))
		assert.Equal(t, "4000", raw(t, f, SheetStockImpact, "D2"))
	})
}

func TestReportWorkbook_RenderEmpty(t *testing.T) {
	body, err := NewReportWorkbook().Render(reward.Report{})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(body))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetStockImpact)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "0", raw(t, f, SheetSummary, "B9"))
}
