// Package receipt renders payment and loan receipts as PDF documents.
package receipt

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"olms-backend/internal/domain"
	"olms-backend/internal/logger"
	"olms-backend/internal/utils"
)

// Copy selects which copy of a receipt is rendered.
type Copy string

const (
	CopyCustomer Copy = "customer"
	CopyAdmin    Copy = "admin"
)

func (c Copy) Title() string {
	if c == CopyAdmin {
		return "RECEIPT - OFFICE COPY"
	}
	return "RECEIPT - CUSTOMER COPY"
}

// Company is the letterhead printed on every receipt.
type Company struct {
	Name    string
	Address string
	Phone   string
	Email   string
	GSTIN   string
}

// Image is an embedded picture such as the authorised signature.
type Image struct {
	Data []byte
	Type string // "PNG" or "JPG"
}

// Data is everything a receipt shows. Payment is nil for loan receipts.
type Data struct {
	Copy      Copy
	Company   Company
	Customer  domain.Customer
	Loan      domain.Loan
	Payment   *domain.Payment
	Ornaments []domain.Ornament
	Signature *Image
}

const (
	pageMargin = 10.0
	lineHeight = 7.0
	dateLayout = "02 Jan 2006"
)

var (
	headerFill = [3]int{0x1F, 0x4E, 0x79}
	gridColor  = [3]int{128, 128, 128}
)

// Amount formats a rupee amount for the PDF core fonts, which have no
// rupee glyph.
func Amount(v decimal.Decimal) string {
	return "Rs. " + utils.FormatIndianAmount(v)
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

// Render writes the receipt as a single A4 PDF.
func Render(w io.Writer, d Data) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.SetTitle(d.Copy.Title(), false)
	pdf.SetCreator(d.Company.Name, false)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	width, _ := pdf.GetPageSize()
	content := width - 2*pageMargin

	// Letterhead
	pdf.SetFont("Times", "B", 18)
	pdf.CellFormat(content, 9, tr(d.Company.Name), "", 1, "C", false, 0, "")
	pdf.SetFont("Times", "", 12)
	if d.Company.Address != "" {
		pdf.CellFormat(content, 6, tr(d.Company.Address), "", 1, "C", false, 0, "")
	}
	pdf.CellFormat(content, 6, tr(fmt.Sprintf("Phone: %s | Email: %s", d.Company.Phone, d.Company.Email)), "", 1, "C", false, 0, "")
	if d.Company.GSTIN != "" {
		pdf.CellFormat(content, 6, "GSTIN: "+d.Company.GSTIN, "", 1, "C", false, 0, "")
	}
	pdf.Ln(3)
	y := pdf.GetY()
	pdf.SetLineWidth(0.7)
	pdf.Line(pageMargin, y, width-pageMargin, y)
	pdf.SetLineWidth(0.2)
	pdf.Ln(5)

	pdf.SetFont("Times", "B", 14)
	pdf.CellFormat(content, 8, d.Copy.Title(), "", 1, "C", false, 0, "")
	pdf.Ln(3)

	receiptNo, receiptDate, paymentID := d.Loan.LoanReferenceNumber, d.Loan.DisbursementDate, "N/A"
	if d.Payment != nil {
		if d.Payment.ReceiptNumber != "" {
			receiptNo = d.Payment.ReceiptNumber
		}
		receiptDate = d.Payment.PaymentDate
		paymentID = d.Payment.PaymentID
	}

	quad := []float64{30, 60, 35, content - 125}
	pdf.SetFont("Times", "", 11)
	rows(pdf, tr, quad, [][]string{
		{"Receipt No:", receiptNo, "Date:", formatDate(receiptDate)},
		{"Loan Ref:", d.Loan.LoanReferenceNumber, "Payment ID:", paymentID},
	})
	pdf.Ln(4)

	section(pdf, content, "CUSTOMER DETAILS")
	c := d.Customer
	rows(pdf, tr, quad, [][]string{
		{"Name:", c.FullName(), "Customer ID:", c.CustomerID},
		{"Phone:", c.Phone, "Alt Phone:", orNA(c.AlternatePhone)},
	})
	address := fmt.Sprintf("%s, %s, %s - %s", orNA(c.Address), c.City, c.State, c.Pincode)
	pdf.CellFormat(quad[0], lineHeight, "Address:", "", 0, "L", false, 0, "")
	pdf.MultiCell(content-quad[0], lineHeight, tr(address), "", "L", false)
	pdf.Ln(4)

	section(pdf, content, "LOAN DETAILS")
	branch := d.Loan.BranchName
	if branch == "" {
		branch = "Main Branch"
	}
	wide := []float64{40, 55, 40, content - 135}
	rows(pdf, tr, wide, [][]string{
		{"Principal Amount:", Amount(d.Loan.PrincipalAmount), "Interest Rate:", d.Loan.InterestRate.String() + "% p.a."},
		{"Outstanding:", Amount(d.Loan.OutstandingPrincipal), "Disbursement Date:", formatDate(d.Loan.DisbursementDate)},
		{"Branch:", branch, "Status:", string(d.Loan.Status)},
	})
	pdf.Ln(4)

	if p := d.Payment; p != nil {
		section(pdf, content, "PAYMENT DETAILS")
		rows(pdf, tr, wide, [][]string{
			{"Payment Type:", string(p.PaymentType), "Payment Method:", string(p.PaymentMethod)},
			{"Total Amount:", Amount(p.Amount), "", ""},
			{"Principal Component:", Amount(p.PrincipalAmount), "Interest Component:", Amount(p.InterestAmount)},
			{"Penalty (if any):", Amount(p.PenaltyAmount), "", ""},
		})
		pdf.Ln(4)
	}

	section(pdf, content, "ORNAMENT DETAILS")
	ornamentTable(pdf, tr, content, d.Ornaments)
	pdf.Ln(8)

	if d.Payment != nil {
		pdf.SetFont("Times", "B", 11)
		label := "Amount in Words: "
		lw := pdf.GetStringWidth(label) + 1
		pdf.CellFormat(lw, lineHeight, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Times", "", 11)
		pdf.MultiCell(content-lw, lineHeight, utils.RupeesInWords(d.Payment.Amount), "", "L", false)
		pdf.Ln(4)
	}

	signatures(pdf, content, d)

	pdf.Ln(10)
	pdf.SetFont("Times", "", 9)
	pdf.SetTextColor(gridColor[0], gridColor[1], gridColor[2])
	pdf.CellFormat(content, 5, "This is a computer generated receipt.", "", 1, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Times", "", 10)
	pdf.CellFormat(content, 6, "Thank you for your business!", "", 1, "C", false, 0, "")

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("failed to render receipt: %w", err)
	}
	return pdf.Output(w)
}

// Bytes renders the receipt into memory.
func Bytes(d Data) ([]byte, error) {
	var buf bytes.Buffer
	if err := Render(&buf, d); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func section(pdf *fpdf.Fpdf, width float64, title string) {
	pdf.SetFont("Times", "B", 11)
	pdf.CellFormat(width, lineHeight, title, "", 1, "L", false, 0, "")
	pdf.SetFont("Times", "", 10)
}

func rows(pdf *fpdf.Fpdf, tr func(string) string, widths []float64, cells [][]string) {
	for _, row := range cells {
		for i, cell := range row {
			pdf.CellFormat(widths[i], lineHeight, tr(cell), "", 0, "L", false, 0, "")
		}
		pdf.Ln(lineHeight)
	}
}

func ornamentTable(pdf *fpdf.Fpdf, tr func(string) string, width float64, ornaments []domain.Ornament) {
	cols := []float64{15, 60, 30, 30, width - 135}
	header := []string{"S.No", "Item Name", "Metal", "Weight (g)", "Value"}

	pdf.SetDrawColor(gridColor[0], gridColor[1], gridColor[2])
	pdf.SetFillColor(headerFill[0], headerFill[1], headerFill[2])
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Times", "B", 10)
	for i, h := range header {
		pdf.CellFormat(cols[i], lineHeight, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(lineHeight)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Times", "", 10)
	if len(ornaments) == 0 {
		for i, v := range []string{"1", "N/A", "-", "-", "-"} {
			pdf.CellFormat(cols[i], lineHeight, v, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(lineHeight)
		return
	}
	for n, o := range ornaments {
		cells := []string{
			fmt.Sprintf("%d", n+1),
			o.Name,
			fmt.Sprintf("%s (%sK)", o.MetalType, o.Karat.String()),
			o.NetWeight.StringFixed(2),
			Amount(o.ValuationAmount),
		}
		for i, v := range cells {
			pdf.CellFormat(cols[i], lineHeight, tr(v), "1", 0, "C", false, 0, "")
		}
		pdf.Ln(lineHeight)
	}
}

func signatures(pdf *fpdf.Fpdf, width float64, d Data) {
	pdf.Ln(12)
	col := width / 3
	y := pdf.GetY()
	left := pageMargin
	right := pageMargin + 2*col

	if d.Copy == CopyAdmin && d.Signature != nil && len(d.Signature.Data) > 0 {
		opts := fpdf.ImageOptions{ImageType: d.Signature.Type}
		pdf.RegisterImageOptionsReader("signature", opts, bytes.NewReader(d.Signature.Data))
		if pdf.Ok() {
			pdf.ImageOptions("signature", right+col-30, y-16, 30, 15, false, opts, 0, "")
		}
		if !pdf.Ok() {
			logger.Warn("Skipping unreadable signature image", "error", pdf.Error())
			pdf.ClearError()
		}
	}

	pdf.SetDrawColor(0, 0, 0)
	pdf.Line(left, y, left+col-10, y)
	pdf.Line(right+10, y, right+col, y)
	pdf.SetFont("Times", "", 10)
	pdf.SetXY(left, y+1)
	pdf.CellFormat(col, lineHeight, "Customer Signature", "", 0, "L", false, 0, "")
	pdf.SetXY(right, y+1)
	pdf.CellFormat(col, lineHeight, "Authorized Signatory", "", 1, "R", false, 0, "")
}
