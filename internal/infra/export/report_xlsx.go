package export

import (
	"brainbox-retailplus/internal/domain/reward"
	"brainbox-retailplus/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	SheetSummary     = "Summary"
	SheetByType      = "By Type"
	SheetByApprover  = "By Approver"
	SheetStockImpact = "Stock Impact"

	dateLayout = "2006-01-02"
	// built-in "#,##0.00"
	moneyNumFmt = 4
)

// ReportWorkbook renders a reward report as an xlsx workbook.
type ReportWorkbook struct{}

func NewReportWorkbook() *ReportWorkbook {
	return &ReportWorkbook{}
}

func (w *ReportWorkbook) Render(report reward.Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return nil, errs.Wrap(err, "rename summary sheet")
	}
	for _, name := range []string{SheetByType, SheetByApprover, SheetStockImpact} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, errs.Wrap(err, "create sheet "+name)
		}
	}

	styles, err := newSheetStyles(f)
	if err != nil {
		return nil, err
	}

	writers := []func(*excelize.File, sheetStyles, reward.Report) error{
		writeSummary,
		writeByType,
		writeByApprover,
		writeStockImpact,
	}
	for _, write := range writers {
		if err := write(f, styles, report); err != nil {
			return nil, err
		}
	}
	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errs.Wrap(err, "write workbook")
	}
	return buf.Bytes(), nil
}

type sheetStyles struct {
	header int
	money  int
}

func newSheetStyles(f *excelize.File) (sheetStyles, error) {
	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#DDEBF7"}},
	})
	if err != nil {
		return sheetStyles{}, errs.Wrap(err, "create header style")
	}
	money, err := f.NewStyle(&excelize.Style{NumFmt: moneyNumFmt})
	if err != nil {
		return sheetStyles{}, errs.Wrap(err, "create money style")
	}
	return sheetStyles{header: header, money: money}, nil
}

func writeSummary(f *excelize.File, s sheetStyles, report reward.Report) error {
	t := report.Totals
	rows := [][]any{
		{"Metric", "Value"},
		{"Period from", report.Period.From.Format(dateLayout)},
		{"Period to", report.Period.To.Format(dateLayout)},
		{"Requests", t.Requests},
		{"Pending", t.Pending},
		{"Approved", t.Approved},
		{"Redemptions", t.Redemptions},
		{"Completed", t.Completed},
		{"Total value", money(t.TotalValue)},
	}
	if err := writeTable(f, SheetSummary, s, rows); err != nil {
		return err
	}
	return styleCell(f, SheetSummary, 2, len(rows), s.money)
}

func writeByType(f *excelize.File, s sheetStyles, report reward.Report) error {
	rows := [][]any{{"Reward type", "Count", "Value"}}
	for _, tb := range report.ByType {
		rows = append(rows, []any{tb.RewardType.String(), tb.Count, money(tb.Value)})
	}
	if err := writeTable(f, SheetByType, s, rows); err != nil {
		return err
	}
	return styleColumn(f, SheetByType, 3, len(rows), s.money)
}

func writeByApprover(f *excelize.File, s sheetStyles, report reward.Report) error {
	rows := [][]any{{"Approver", "Approver ID", "Count", "Value"}}
	for _, ab := range report.ByApprover {
		rows = append(rows, []any{ab.ApproverName, ab.ApproverID.String(), ab.Count, money(ab.Value)})
	}
	if err := writeTable(f, SheetByApprover, s, rows); err != nil {
		return err
	}
	return styleColumn(f, SheetByApprover, 4, len(rows), s.money)
}

func writeStockImpact(f *excelize.File, s sheetStyles, report reward.Report) error {
	rows := [][]any{{"Product", "Product ID", "Quantity", "Value"}}
	for _, si := range report.StockImpact {
		rows = append(rows, []any{si.ProductName, si.ProductID.String(), si.Quantity, money(si.Value)})
	}
	if err := writeTable(f, SheetStockImpact, s, rows); err != nil {
		return err
	}
	return styleColumn(f, SheetStockImpact, 4, len(rows), s.money)
}

// writeTable writes rows from A1 down and styles the first row as a header.
func writeTable(f *excelize.File, sheet string, s sheetStyles, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return errs.Wrap(err, "resolve cell")
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return errs.Wrap(err, "write row in "+sheet)
		}
	}

	last, err := excelize.CoordinatesToCellName(len(rows[0]), 1)
	if err != nil {
		return errs.Wrap(err, "resolve header range")
	}
	if err := f.SetCellStyle(sheet, "A1", last, s.header); err != nil {
		return errs.Wrap(err, "style header in "+sheet)
	}

	lastCol, err := excelize.ColumnNumberToName(len(rows[0]))
	if err != nil {
		return errs.Wrap(err, "resolve last column")
	}
	if err := f.SetColWidth(sheet, "A", lastCol, 22); err != nil {
		return errs.Wrap(err, "size columns in "+sheet)
	}
	return nil
}

func styleCell(f *excelize.File, sheet string, col, row, style int) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return errs.Wrap(err, "resolve cell")
	}
	if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
		return errs.Wrap(err, "style cell in "+sheet)
	}
	return nil
}

// styleColumn applies style to col for every data row below the header.
func styleColumn(f *excelize.File, sheet string, col, rows, style int) error {
	if rows < 2 {
		return nil
	}
	top, err := excelize.CoordinatesToCellName(col, 2)
	if err != nil {
		return errs.Wrap(err, "resolve cell")
	}
	bottom, err := excelize.CoordinatesToCellName(col, rows)
	if err != nil {
		return errs.Wrap(err, "resolve cell")
	}
	if err := f.SetCellStyle(sheet, top, bottom, style); err != nil {
		return errs.Wrap(err, "style column in "+sheet)
	}
	return nil
}

// money rounds to cents before handing the value to the spreadsheet as a float.
func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
