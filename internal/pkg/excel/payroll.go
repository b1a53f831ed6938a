package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/sambu-farm/farm-backend-go/internal/domain/payroll"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// GeneratePayroll renders a month's payroll register as an xlsx workbook
// with a summary sheet and a per-worker detail sheet.
func (g *Generator) GeneratePayroll(summary payroll.SummaryResponse, payrolls []payroll.PayrollResponse) ([]byte, error) {
	file := excelize.NewFile()

	summarySheet := "Summary"
	file.SetSheetName("Sheet1", summarySheet)
	g.writeSummary(file, summarySheet, summary)

	detailSheet := "Payrolls"
	file.NewSheet(detailSheet)
	g.writeDetail(file, detailSheet, payrolls)

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeSummary(file *excelize.File, sheet string, summary payroll.SummaryResponse) {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Period")
	set("B1", fmt.Sprintf("%04d-%02d", summary.Year, summary.Month))
	set("A2", "Workers")
	set("B2", summary.TotalWorkers)
	set("A3", "Total kg plucked")
	set("B3", summary.TotalKgPlucked.InexactFloat64())
	set("A4", "Gross earnings")
	set("B4", summary.TotalGrossEarnings.InexactFloat64())
	set("A5", "Total deductions")
	set("B5", summary.TotalDeductions.InexactFloat64())
	set("A6", "Net pay")
	set("B6", summary.TotalNetPay.InexactFloat64())
	set("A7", "Workers paid")
	set("B7", summary.WorkersPaid)
	set("A8", "Workers unpaid")
	set("B8", summary.WorkersUnpaid)

	_ = file.SetColWidth(sheet, "A", "A", 24)
	_ = file.SetColWidth(sheet, "B", "B", 16)
}

func (g *Generator) writeDetail(file *excelize.File, sheet string, payrolls []payroll.PayrollResponse) {
	headers := []string{"Worker", "Role", "Total kg", "Gross", "Advances", "Fertilizer", "Deductions", "Net pay", "Paid"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = file.SetCellValue(sheet, cell, h)
	}

	for i, p := range payrolls {
		row := i + 2
		values := []interface{}{
			p.WorkerName,
			p.WorkerRole,
			p.TotalKg.InexactFloat64(),
			p.GrossEarnings.InexactFloat64(),
			p.TotalAdvances.InexactFloat64(),
			p.FertilizerDeduction.InexactFloat64(),
			p.TotalDeductions.InexactFloat64(),
			p.NetPay.InexactFloat64(),
			paidLabel(p.Paid),
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, row)
			_ = file.SetCellValue(sheet, cell, v)
		}
	}

	_ = file.SetColWidth(sheet, "A", "A", 28)
	_ = file.SetColWidth(sheet, "B", "I", 14)
}

func paidLabel(paid bool) string {
	if paid {
		return "paid"
	}
	return "unpaid"
}
