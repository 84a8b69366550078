package services

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"
	"gorm.io/gorm"

	"hoteldesk-backend/models"
)

const (
	invoiceTitle    = "HOTEL INVOICE"
	invoiceCurrency = "EUR"
)

// InvoiceService renders a billing document for one completed booking.
type InvoiceService struct {
	DB *gorm.DB
}

func NewInvoiceService(db *gorm.DB) *InvoiceService {
	return &InvoiceService{DB: db}
}

// creationDate pins the PDF metadata so identical bookings render to
// identical bytes. The document body carries no timestamps at all.
var creationDate = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// formatAmount trims trailing zeros so whole totals print as integers
// (200, not 200.00).
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatDate(d time.Time) string {
	return d.Format("2006-01-02")
}

// InvoiceLines is the positional content of the document: title first, then
// client, room, check-in, check-out, total.
func InvoiceLines(b *models.Booking) []string {
	return []string{
		invoiceTitle,
		fmt.Sprintf("Client: %s - %s", b.Client.Name, b.Client.Phone),
		fmt.Sprintf("Room: %s - %s", b.Room.Number, b.Room.Type),
		fmt.Sprintf("Check-in: %s", formatDate(time.Time(b.CheckIn))),
		fmt.Sprintf("Check-out: %s", formatDate(time.Time(b.CheckOut))),
		fmt.Sprintf("Total: %s %s", formatAmount(b.Total), invoiceCurrency),
	}
}

// Render produces the invoice PDF for a booking as a byte stream suitable
// for direct download.
func (s *InvoiceService) Render(bookingID uint) ([]byte, error) {
	var booking models.Booking
	err := s.DB.Preload("Client").Preload("Room").First(&booking, bookingID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return renderPDF(InvoiceLines(&booking))
}

func renderPDF(lines []string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(creationDate)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, lines[0], "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 12)
	for _, line := range lines[1:] {
		pdf.CellFormat(0, 8, line, "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
