package export

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"github.com/kmuju/bank_portal_app/internal/core/domain"
)

func int64String(n int64) string {
	return strconv.FormatInt(n, 10)
}

// dashboardRowCap bounds the transaction table in the dashboard PDF so
// large ranges still produce a manageable document.
const dashboardRowCap = 500

// StatementPDF renders a landscape A4 statement. It never fails: when the
// renderer reports an error a minimal placeholder document is returned
// instead, so the download always carries a valid PDF.
func StatementPDF(st *domain.AccountStatement) []byte {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Bank Statement", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Bank Statement", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "User: "+st.User.DisplayName(), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Email: "+st.User.Email, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Account Number: "+st.Account.AccountNo, "", 1, "L", false, 0, "")
	if st.Range != nil {
		period := st.Range.From.Format(dateLayout) + " to " + st.Range.To.Format(dateLayout)
		pdf.CellFormat(0, 6, "Date Range: "+period, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	widths := []float64{24, 22, 34, 26, 70, 30, 30}
	aligns := []string{"L", "L", "L", "L", "L", "R", "R"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(241, 241, 241)
	for i, col := range statementColumns {
		pdf.CellFormat(widths[i], 8, col, "1", 0, aligns[i], true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, t := range st.Transactions {
		row := statementRow(t)
		for i, cell := range row {
			pdf.CellFormat(widths[i], 7, cell, "1", 0, aligns[i], false, 0, "")
		}
		pdf.Ln(-1)
	}

	return finishPDF(pdf, "Bank Statement")
}

// DashboardPDF renders the range-scoped dashboard report as portrait A4.
func DashboardPDF(rep *domain.DashboardReport) []byte {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Dashboard Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Dashboard Report", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 10)
	period := rep.From.Format(dateLayout) + " to " + rep.To.Format(dateLayout)
	pdf.CellFormat(0, 6, "Date Range: "+period, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Total Users: "+int64String(rep.TotalUsers), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Total Deposits: "+rep.TotalDeposits.StringFixed(2), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Total Withdrawals: "+rep.TotalWithdrawals.StringFixed(2), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	columns := []string{"Date", "Time", "Transaction ID", "Type", "Amount", "Balance"}
	widths := []float64{24, 20, 34, 26, 40, 40}
	aligns := []string{"L", "L", "L", "L", "R", "R"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(241, 241, 241)
	for i, col := range columns {
		pdf.CellFormat(widths[i], 8, col, "1", 0, aligns[i], true, 0, "")
	}
	pdf.Ln(-1)

	rows := rep.Transactions
	if len(rows) > dashboardRowCap {
		rows = rows[:dashboardRowCap]
	}
	pdf.SetFont("Helvetica", "", 9)
	for _, t := range rows {
		cells := []string{
			t.CreatedAt.Format(dateLayout),
			t.CreatedAt.Format(timeLayout),
			t.ShortID(),
			t.TransactionType.Label(),
			signedAmount(t.Transaction),
			t.BalanceAfter.StringFixed(2),
		}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], 7, cell, "1", 0, aligns[i], false, 0, "")
		}
		pdf.Ln(-1)
	}
	if len(rep.Transactions) > dashboardRowCap {
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "I", 8)
		note := fmt.Sprintf("Showing first %d of %d transactions.", dashboardRowCap, len(rep.Transactions))
		pdf.CellFormat(0, 6, note, "", 1, "L", false, 0, "")
	}

	return finishPDF(pdf, "Dashboard Report")
}

func finishPDF(pdf *gofpdf.Fpdf, title string) []byte {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return FallbackPDF(title + " unavailable")
	}
	return buf.Bytes()
}

// FallbackPDF builds a one-page document containing only the given message.
// It is assembled by hand so it has no dependency on the renderer that just
// failed.
func FallbackPDF(message string) []byte {
	content := fmt.Sprintf("BT /F1 14 Tf 72 760 Td (%s) Tj ET", escapePDFText(message))

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents 4 0 R /Resources << /Font << /F1 5 0 R >> >> >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>",
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)

	return buf.Bytes()
}

func escapePDFText(s string) string {
	var b bytes.Buffer
	for _, r := range s {
		switch r {
		case '(', ')', '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		default:
			if r < 32 || r > 126 {
				b.WriteByte('?')
			} else {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}
