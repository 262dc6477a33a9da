package report

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jung-kurt/gofpdf/v2"

	"github.com/AFTLlimited25/Platrr-Business/internal/domain"
)

const (
	pageWidth    = 190.0 // A4 portrait minus 10mm margins
	timestampFmt = "02 Jan 2006 15:04 MST"
)

// InventoryPDF renders the valuation report as an A4 PDF.
func (s *Service) InventoryPDF(ctx context.Context) ([]byte, error) {
	rep, err := s.Inventory(ctx)
	if err != nil {
		return nil, err
	}
	out, err := renderInventory(rep)
	if err != nil {
		return nil, fmt.Errorf("render inventory pdf: %w", err)
	}
	return out, nil
}

// AttendancePDF renders the hours report as an A4 PDF.
func (s *Service) AttendancePDF(ctx context.Context, in AttendanceInput) ([]byte, error) {
	rep, err := s.Attendance(ctx, in)
	if err != nil {
		return nil, err
	}
	out, err := renderAttendance(rep, s.now().In(s.loc).Format(timestampFmt))
	if err != nil {
		return nil, fmt.Errorf("render attendance pdf: %w", err)
	}
	return out, nil
}

func newDocument(title, subtitle string) (*gofpdf.Fpdf, func(string) string) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(pageWidth, 10, tr(title), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(pageWidth, 6, tr(subtitle), "", 1, "C", false, 0, "")
	pdf.Ln(5)
	return pdf, tr
}

func sectionHeader(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(pageWidth, 8, title, "1", 1, "L", true, 0, "")
}

func tableHeader(pdf *gofpdf.Fpdf, widths []float64, cols []string) {
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	for i, c := range cols {
		ln := 0
		if i == len(cols)-1 {
			ln = 1
		}
		pdf.CellFormat(widths[i], 7, c, "1", ln, "C", true, 0, "")
	}
	pdf.SetFont("Arial", "", 10)
}

func output(pdf *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderInventory(rep InventoryReport) ([]byte, error) {
	title := "Inventory Valuation"
	if rep.BusinessName != "" {
		title = rep.BusinessName + " - " + title
	}
	pdf, tr := newDocument(title, fmt.Sprintf("As of %s (generated %s)", rep.AsOf, rep.GeneratedAt.Format(timestampFmt)))

	sectionHeader(pdf, "Summary")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(pageWidth/2, 8, fmt.Sprintf("Items: %d", len(rep.Lines)), "1", 0, "C", false, 0, "")
	pdf.CellFormat(pageWidth/2, 8, "Total value: "+rep.TotalValue.StringFixed(2), "1", 1, "C", false, 0, "")
	statusWidth := pageWidth / float64(len(domain.InventoryStatuses))
	for i, st := range domain.InventoryStatuses {
		ln := 0
		if i == len(domain.InventoryStatuses)-1 {
			ln = 1
		}
		pdf.CellFormat(statusWidth, 7, fmt.Sprintf("%s: %d", st, rep.StatusCounts[st]), "1", ln, "C", false, 0, "")
	}
	pdf.Ln(5)

	sectionHeader(pdf, "By category")
	catWidths := []float64{100, 40, 50}
	tableHeader(pdf, catWidths, []string{"Category", "Items", "Value"})
	for _, c := range rep.Categories {
		pdf.CellFormat(catWidths[0], 6, tr(c.Category), "1", 0, "L", false, 0, "")
		pdf.CellFormat(catWidths[1], 6, fmt.Sprintf("%d", c.Items), "1", 0, "C", false, 0, "")
		pdf.CellFormat(catWidths[2], 6, c.Value.StringFixed(2), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(5)

	sectionHeader(pdf, "Items")
	widths := []float64{50, 32, 22, 20, 22, 24, 20}
	tableHeader(pdf, widths, []string{"Name", "Category", "Stock", "Unit", "Cost", "Value", "Status"})
	for _, l := range rep.Lines {
		pdf.CellFormat(widths[0], 6, tr(l.Name), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 6, tr(l.Category), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 6, fmt.Sprintf("%d", l.CurrentStock), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 6, tr(l.Unit), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[4], 6, l.CostPerUnit.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[5], 6, l.Value.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[6], 6, string(l.Status), "1", 1, "C", false, 0, "")
	}

	return output(pdf)
}

func renderAttendance(rep AttendanceReport, generated string) ([]byte, error) {
	pdf, tr := newDocument("Attendance Hours", fmt.Sprintf("%s to %s (generated %s)", rep.From, rep.To, generated))

	sectionHeader(pdf, "Employees")
	widths := []float64{35, 65, 30, 30, 30}
	tableHeader(pdf, widths, []string{"Employee ID", "Name", "Days", "Open", "Hours"})
	for _, e := range rep.Employees {
		pdf.CellFormat(widths[0], 6, tr(e.EmployeeID), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 6, tr(e.Name), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 6, fmt.Sprintf("%d", e.DaysPresent), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[3], 6, fmt.Sprintf("%d", e.OpenDays), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[4], 6, e.HoursWorked, "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(pageWidth-widths[4], 8, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[4], 8, rep.TotalHours, "1", 1, "R", false, 0, "")

	return output(pdf)
}
