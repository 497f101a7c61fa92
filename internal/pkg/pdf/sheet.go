// Package pdf renders the fortnightly payroll sheet as a landscape PDF
// table, one row per employee.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/sistema-rh/planilla-backend-go/internal/domain/payroll"
	"github.com/sistema-rh/planilla-backend-go/internal/pkg/currency"
)

var columns = []struct {
	title string
	width float64
}{
	{"Nombre", 45},
	{"Cargo", 32},
	{"Dias", 12},
	{"Sal. Mensual", 24},
	{"Sal. Quincenal", 24},
	{"IHSS", 18},
	{"RAP", 18},
	{"ISR", 18},
	{"Deducciones", 24},
	{"Pago Neto", 24},
	{"Banco", 22},
	{"Cuenta", 28},
}

// RenderSheet produces the planilla PDF for a computed run.
func RenderSheet(run payroll.Run) ([]byte, error) {
	doc := gofpdf.New("L", "mm", "A4", "")
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 12)
	title := fmt.Sprintf("Planilla Quincenal - %04d-%02d Q%d",
		run.Period.Year, run.Period.Month, run.Period.Fortnight)
	doc.CellFormat(0, 10, title, "", 1, "C", false, 0, "")
	doc.Ln(2)

	doc.SetFont("Helvetica", "B", 7)
	doc.SetFillColor(224, 224, 224)
	for _, col := range columns {
		doc.CellFormat(col.width, 7, col.title, "1", 0, "C", true, 0, "")
	}
	doc.Ln(-1)

	doc.SetFont("Helvetica", "", 7)
	for _, line := range run.Lines {
		cells := []string{
			line.EmployeeName,
			line.JobTitle,
			fmt.Sprintf("%d", line.DaysPresent),
			currency.Plain(line.MonthlySalary),
			currency.Plain(line.PeriodWage),
			currency.Plain(line.SocialSecurity),
			currency.Plain(line.RetirementFund),
			currency.Plain(line.IncomeTax),
			currency.Plain(line.TotalDeductions),
			currency.Plain(line.NetPay),
			line.BankName,
			line.BankAccount,
		}
		for i, cell := range cells {
			doc.CellFormat(columns[i].width, 6, cell, "1", 0, "L", false, 0, "")
		}
		doc.Ln(-1)
	}

	doc.Ln(4)
	doc.SetFont("Helvetica", "B", 9)
	doc.CellFormat(0, 8, fmt.Sprintf("Empleados: %d    Total neto: %s",
		run.EmployeeCount, currency.Plain(run.TotalNetPay)), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render payroll sheet: %w", err)
	}
	return buf.Bytes(), nil
}
