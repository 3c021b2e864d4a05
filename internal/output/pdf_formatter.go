package output

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/go-pdf/fpdf"
	"github.com/pensionview/retirement-projection/internal/domain"
)

const (
	pdfMarginLeft   = 15.0
	pdfMarginTop    = 15.0
	pdfMarginRight  = 15.0
	pdfMarginBottom = 20.0
	pdfContentWidth = 210.0 - pdfMarginLeft - pdfMarginRight
)

// PDFFormatter renders a printable report with one page per scenario.
type PDFFormatter struct {
	Symbol string
}

func (p PDFFormatter) Name() string { return "pdf" }

func (p PDFFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	r := &pdfReport{
		pdf:    fpdf.New("P", "mm", "A4", ""),
		symbol: symbolOrDefault(p.Symbol),
	}
	r.pdf.SetMargins(pdfMarginLeft, pdfMarginTop, pdfMarginRight)
	r.pdf.SetAutoPageBreak(true, pdfMarginBottom)
	// core fonts are cp1252; the translator maps UTF-8 such as "€" onto it
	r.tr = r.pdf.UnicodeTranslatorFromDescriptor("")

	r.addSummaryPage(results)
	for _, sc := range results.Scenarios {
		r.addScenarioPage(sc)
	}

	var buf bytes.Buffer
	if err := r.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering pdf: %w", err)
	}
	return buf.Bytes(), nil
}

type pdfReport struct {
	pdf    *fpdf.Fpdf
	tr     func(string) string
	symbol string
}

func (r *pdfReport) money(v float64) string     { return r.tr(FormatCurrency(v, r.symbol)) }
func (r *pdfReport) optional(v *float64) string { return r.tr(FormatOptional(v, r.symbol)) }

func (r *pdfReport) sectionHeader(title string) {
	r.pdf.SetFont("Arial", "B", 16)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(pdfContentWidth, 10, r.tr(title), "", 1, "L", false, 0, "")
	r.pdf.Ln(2)
}

func (r *pdfReport) addSummaryPage(results *domain.ScenarioComparison) {
	r.pdf.AddPage()
	r.pdf.SetFont("Arial", "B", 24)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(pdfContentWidth, 14, "Retirement Projection", "", 1, "C", false, 0, "")
	r.pdf.Ln(8)

	r.sectionHeader("Scenarios")
	widths := []float64{60, 40, 40, 40}
	r.tableHeader(widths, "Scenario", "Wealth at retirement", "First-year payout", "Monthly pension")
	r.pdf.SetFont("Arial", "", 10)
	r.pdf.SetTextColor(50, 50, 50)
	for i, sc := range results.Scenarios {
		s := sc.Series
		fill := i%2 == 1
		r.pdf.SetFillColor(245, 247, 250)
		r.pdf.CellFormat(widths[0], 7, r.tr(sc.Name), "1", 0, "L", fill, 0, "")
		r.pdf.CellFormat(widths[1], 7, r.money(s.RetirementBoundaryWealth), "1", 0, "R", fill, 0, "")
		r.pdf.CellFormat(widths[2], 7, r.money(s.ScaleConstant), "1", 0, "R", fill, 0, "")
		r.pdf.CellFormat(widths[3], 7, r.money(s.ExpectedMonthlyPension), "1", 1, "R", fill, 0, "")
	}

	rec := AnalyzeScenarios(results)
	if rec.ScenarioName != "" && len(results.Scenarios) > 1 {
		r.pdf.Ln(6)
		r.pdf.SetFont("Arial", "B", 11)
		r.pdf.SetTextColor(0, 102, 51)
		r.pdf.CellFormat(pdfContentWidth, 7, r.tr(fmt.Sprintf("Recommended: %s (%s per month vs. %s)",
			rec.ScenarioName, FormatPercentage(rec.PercentageChange), results.Scenarios[0].Name)), "", 1, "L", false, 0, "")
	}

	r.pdf.Ln(6)
	r.sectionHeader("Assumptions")
	r.pdf.SetFont("Arial", "", 10)
	r.pdf.SetTextColor(50, 50, 50)
	for _, a := range assumptionsFor(results) {
		r.pdf.MultiCell(pdfContentWidth, 5, r.tr("- "+a), "", "L", false)
	}

	r.pdf.Ln(10)
	r.pdf.SetFont("Arial", "I", 9)
	r.pdf.SetTextColor(120, 120, 120)
	r.pdf.MultiCell(pdfContentWidth, 4.5,
		"This document is for informational purposes only and does not constitute financial advice.", "", "C", false)
}

func (r *pdfReport) addScenarioPage(sc domain.ScenarioResult) {
	r.pdf.AddPage()
	r.sectionHeader(sc.Name)

	s := sc.Series
	p := s.Parameters
	r.pdf.SetFont("Arial", "", 10)
	r.pdf.SetTextColor(50, 50, 50)
	r.pdf.MultiCell(pdfContentWidth, 5, r.tr(fmt.Sprintf(
		"Saving %s per month from %d (growing %s a year) with %s initial capital at a %s market return. "+
			"Payout from %d for %d years, growing %s a year.",
		FormatCurrency(p.MonthlyDeposit, r.symbol), p.CurrentYear, FormatRate(p.DepositGrowthRate),
		FormatCurrency(p.InitialCapital, r.symbol), FormatRate(p.MarketRate),
		p.RetirementStartYear, p.RetirementDuration, FormatRate(p.RetirementGrowthRate))), "", "L", false)
	r.pdf.Ln(4)

	if s.IsEmpty() {
		r.pdf.CellFormat(pdfContentWidth, 7, "No projection: the parameters describe an empty horizon.", "", 1, "L", false, 0, "")
		return
	}

	widths := []float64{20, 35, 45, 40, 40}
	r.tableHeader(widths, "Year", "Phase", "Invested", "Wealth", "Remaining")
	r.pdf.SetFont("Arial", "", 9)
	r.pdf.SetTextColor(50, 50, 50)
	for _, yp := range s.Points {
		r.pdf.CellFormat(widths[0], 6, strconv.Itoa(yp.Year), "1", 0, "C", false, 0, "")
		r.pdf.CellFormat(widths[1], 6, yp.Phase(), "1", 0, "L", false, 0, "")
		r.pdf.CellFormat(widths[2], 6, r.optional(yp.InvestedCapital), "1", 0, "R", false, 0, "")
		r.pdf.CellFormat(widths[3], 6, r.optional(yp.Wealth), "1", 0, "R", false, 0, "")
		r.pdf.CellFormat(widths[4], 6, r.optional(yp.RemainingPension), "1", 1, "R", false, 0, "")
	}
}

func (r *pdfReport) tableHeader(widths []float64, titles ...string) {
	r.pdf.SetFont("Arial", "B", 10)
	r.pdf.SetFillColor(0, 51, 102)
	r.pdf.SetTextColor(255, 255, 255)
	for i, title := range titles {
		ln := 0
		if i == len(titles)-1 {
			ln = 1
		}
		r.pdf.CellFormat(widths[i], 8, r.tr(title), "1", ln, "C", true, 0, "")
	}
}
