// Package receipt renders printable booking receipts.
package receipt

import (
	"fmt"
	"io"

	"github.com/phpdave11/gofpdf"

	"rjcouriers-service-booking/internal/domain"
)

// Render writes a one-page PDF receipt for b to w.
func Render(w io.Writer, b domain.Booking) error {
	return render(w, b, true)
}

// document writes through the cp1252 translator the core fonts expect.
// Runes outside cp1252 print as '.'.
type document struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

func render(w io.Writer, b domain.Booking, compress bool) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(compress)
	// the translator reuses an internal buffer, so one per document
	d := document{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}

	pdf.SetTitle("Receipt "+b.ID, true)
	pdf.SetCreator("RJCouriers", false)
	pdf.AddPage()

	d.heading(18, 10, "RJCouriers receipt")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	d.line("Tracking number", b.ID)
	d.line("Booking date", b.BookingDate.Format(domain.DateLayout))
	pdf.Ln(4)

	d.party("Sender", b.Sender)
	d.party("Receiver", b.Receiver)

	d.heading(12, 7, "Package")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	d.line("Type", safe(b.PackageType))
	d.line("Weight", fmt.Sprintf("%g kg", b.Weight))
	d.line("Delivery", safe(string(b.DeliveryType)))
	if b.Description != "" {
		pdf.MultiCell(0, 6, d.tr(b.Description), "", "", false)
	}
	pdf.Ln(4)

	d.heading(12, 8, "Total: "+domain.FormatMoney(b.Cost))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 12)
	d.line("Payment", string(b.PaymentStatus))
	d.line("Shipment", string(b.Status))

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render receipt %s: %w", b.ID, err)
	}
	return nil
}

func (d document) heading(size, height float64, text string) {
	d.pdf.SetFont("Helvetica", "B", size)
	d.pdf.Cell(0, height, d.tr(text))
}

func (d document) party(title string, p domain.Party) {
	d.heading(12, 7, title)
	d.pdf.Ln(8)
	d.pdf.SetFont("Helvetica", "", 12)
	d.line("Name", safe(p.Name))
	d.line("Phone", safe(p.Phone))
	d.line("Address", safe(p.Address))
	d.pdf.Ln(2)
}

func (d document) line(label, value string) {
	d.pdf.Cell(0, 7, d.tr(fmt.Sprintf("%-16s: %s", label, value)))
	d.pdf.Ln(7)
}

func safe(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
