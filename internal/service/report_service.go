package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/wealthpath/finance-tracker/internal/finance"
	"github.com/wealthpath/finance-tracker/internal/model"
	"github.com/wealthpath/finance-tracker/pkg/currency"
	"github.com/wealthpath/finance-tracker/pkg/datetime"
)

// ReportService renders the financial overview as a one-page PDF.
type ReportService struct {
	dashboard *DashboardService
	currency  currency.Currency
	now       Clock
}

// NewReportService creates a ReportService that formats amounts in curr.
// Unsupported currencies fall back to currency.DefaultCurrency.
func NewReportService(dashboard *DashboardService, curr string, clock Clock) *ReportService {
	c := currency.Currency(curr)
	if !currency.IsValid(curr) {
		c = currency.DefaultCurrency
	}
	return &ReportService{dashboard: dashboard, currency: c, now: clockOrNow(clock)}
}

// OverviewPDF builds the overview report from the current collections.
func (s *ReportService) OverviewPDF(ctx context.Context) ([]byte, error) {
	snap, err := s.dashboard.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading report data: %w", err)
	}

	now := s.now()
	overview := finance.BuildOverview(snap.Debts, snap.FixedBills, snap.Incomes, snap.Projects, now)

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	money := func(d decimal.Decimal) string { return tr(currency.Format(d, s.currency)) }

	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 24)
	pdf.SetTextColor(33, 37, 41)
	pdf.CellFormat(0, 12, "Financial Overview", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 12)
	pdf.SetTextColor(108, 117, 125)
	pdf.CellFormat(0, 8, now.Format(datetime.DisplayDateFormat), "", 1, "C", false, 0, "")
	pdf.Ln(8)

	section(pdf, "Monthly Balance")
	row(pdf, "Monthly income", money(overview.Incomes.TotalMonthlyIncome))
	row(pdf, "Fixed bills", money(overview.FixedBills.TotalMonthlyAmount))
	row(pdf, "Debt payments", money(overview.Debts.MonthlyPayments))
	row(pdf, "Net balance", money(overview.NetMonthlyBalance))
	row(pdf, "Income committed", overview.CommitmentPercent.StringFixed(1)+"%")
	pdf.Ln(6)

	section(pdf, "Debts")
	row(pdf, "Total", money(overview.Debts.TotalDebts))
	row(pdf, "Remaining", money(overview.Debts.TotalRemaining))
	row(pdf, "Average interest rate", overview.Debts.AverageInterestRate.StringFixed(2)+"%")
	row(pdf, "Overdue or due soon", fmt.Sprintf("%d", overview.Debts.DebtsInDefault))
	pdf.Ln(6)

	section(pdf, "Fixed Bills")
	row(pdf, "Paid", fmt.Sprintf("%s (%d of %d)", money(overview.FixedBills.PaidAmount), overview.FixedBills.PaidBills, overview.FixedBills.TotalBills))
	row(pdf, "Pending", money(overview.FixedBills.PendingAmount))
	row(pdf, "Overdue", fmt.Sprintf("%d", overview.FixedBills.OverdueBills))
	categoryTable(pdf, finance.BillsByCategory(snap.FixedBills), money)
	pdf.Ln(6)

	section(pdf, "Incomes")
	row(pdf, "Received", fmt.Sprintf("%s (%d of %d)", money(overview.Incomes.ReceivedAmount), overview.Incomes.ReceivedIncomes, overview.Incomes.TotalIncomes))
	row(pdf, "Pending", money(overview.Incomes.PendingAmount))
	row(pdf, "Overdue", fmt.Sprintf("%d", overview.Incomes.OverdueIncomes))
	pdf.Ln(6)

	section(pdf, "Projects")
	row(pdf, "Active / completed", fmt.Sprintf("%d / %d of %d", overview.Projects.ActiveProjects, overview.Projects.CompletedProjects, overview.Projects.TotalProjects))
	row(pdf, "Revenue", money(overview.Projects.TotalRevenue))
	row(pdf, "Costs", money(overview.Projects.TotalCosts))
	row(pdf, "Profit", money(overview.Projects.TotalProfit))
	pdf.Ln(6)

	section(pdf, "Cash Flow Projection")
	for _, p := range overview.Projection {
		row(pdf, fmt.Sprintf("Month %d", p.Month), fmt.Sprintf("%s saved, %s owed", money(p.AccumulatedBalance), money(p.RemainingDebt)))
	}

	pdf.SetY(-25)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(108, 117, 125)
	pdf.CellFormat(0, 5, fmt.Sprintf("Generated on %s", now.Format("January 2, 2006 15:04")), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("generating PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(33, 37, 41)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	pdf.SetDrawColor(200, 200, 200)
	pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
	pdf.Ln(3)
}

func row(pdf *gofpdf.Fpdf, label, value string) {
	const colWidth = 85.0
	pdf.SetFont("Arial", "", 11)
	pdf.SetTextColor(108, 117, 125)
	pdf.CellFormat(colWidth, 7, label, "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "B", 11)
	pdf.SetTextColor(33, 37, 41)
	pdf.CellFormat(colWidth, 7, value, "", 1, "R", false, 0, "")
}

func categoryTable(pdf *gofpdf.Fpdf, totals []model.CategoryTotal, money func(decimal.Decimal) string) {
	if len(totals) == 0 {
		return
	}
	pdf.Ln(2)
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(248, 249, 250)
	pdf.CellFormat(80, 7, "Category", "1", 0, "L", true, 0, "")
	pdf.CellFormat(45, 7, "Bills", "1", 0, "R", true, 0, "")
	pdf.CellFormat(45, 7, "Amount", "1", 1, "R", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, t := range totals {
		pdf.CellFormat(80, 6, t.Category, "1", 0, "L", false, 0, "")
		pdf.CellFormat(45, 6, fmt.Sprintf("%d", t.Count), "1", 0, "R", false, 0, "")
		pdf.CellFormat(45, 6, money(t.Amount), "1", 1, "R", false, 0, "")
	}
}
