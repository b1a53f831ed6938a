package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/sambu-farm/farm-backend-go/internal/domain/payroll"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// GeneratePayroll renders a month's payroll register as a landscape A4 PDF.
func (g *Generator) GeneratePayroll(summary payroll.SummaryResponse, payrolls []payroll.PayrollResponse) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, fmt.Sprintf("Payroll register %04d-%02d", summary.Year, summary.Month), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Arial", "", 10)
	summaryLines := []string{
		fmt.Sprintf("Workers: %d (paid %d, unpaid %d)", summary.TotalWorkers, summary.WorkersPaid, summary.WorkersUnpaid),
		fmt.Sprintf("Total kg plucked: %s", summary.TotalKgPlucked.StringFixed(2)),
		fmt.Sprintf("Gross earnings: %s", summary.TotalGrossEarnings.StringFixed(2)),
		fmt.Sprintf("Total deductions: %s", summary.TotalDeductions.StringFixed(2)),
		fmt.Sprintf("Net pay: %s", summary.TotalNetPay.StringFixed(2)),
	}
	for _, line := range summaryLines {
		pdf.CellFormat(0, 6, line, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	headers := []string{"Worker", "Role", "Total kg", "Gross", "Advances", "Fertilizer", "Deductions", "Net pay", "Status"}
	widths := []float64{60, 30, 24, 26, 26, 26, 26, 26, 20}

	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, p := range payrolls {
		status := "unpaid"
		if p.Paid {
			status = "paid"
		}
		cells := []string{
			p.WorkerName,
			p.WorkerRole,
			p.TotalKg.StringFixed(2),
			p.GrossEarnings.StringFixed(2),
			p.TotalAdvances.StringFixed(2),
			p.FertilizerDeduction.StringFixed(2),
			p.TotalDeductions.StringFixed(2),
			p.NetPay.StringFixed(2),
			status,
		}
		for i, c := range cells {
			align := "R"
			if i == 0 || i == 1 || i == 8 {
				align = "L"
			}
			pdf.CellFormat(widths[i], 7, c, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
