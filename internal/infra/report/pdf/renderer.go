package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

const (
	qrImageName = "qr"
	qrSizePx    = 256
	qrSizeMM    = 40.0
	rowHeight   = 7.0
)

// Renderer формирует PDF документы отчетов и подтверждений
type Renderer struct {
	author string
	now    func() time.Time
}

// NewRenderer создает новый рендерер PDF
func NewRenderer(author string) *Renderer {
	return &Renderer{
		author: author,
		now:    time.Now,
	}
}

// RenderTable формирует табличный отчет
func (r *Renderer) RenderTable(doc Document) ([]byte, error) {
	if len(doc.Columns) == 0 {
		return nil, ErrEmptyColumns
	}
	for i, row := range doc.Rows {
		if len(row) != len(doc.Columns) {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrRowWidth, i, len(row), len(doc.Columns))
		}
	}

	pdf := r.newDocument(doc.Title, "L")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, tr(doc.Title), "", 1, "L", false, 0, "")
	if doc.Subtitle != "" {
		pdf.SetFont("Arial", "", 11)
		pdf.CellFormat(0, 8, tr(doc.Subtitle), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	widths := columnWidths(pdf, doc.Columns)

	// Заголовок таблицы
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, col := range doc.Columns {
		pdf.CellFormat(widths[i], rowHeight, tr(col.Title), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, row := range doc.Rows {
		for i, cell := range row {
			pdf.CellFormat(widths[i], rowHeight, tr(cell), "1", 0, alignOf(doc.Columns[i]), false, 0, "")
		}
		pdf.Ln(-1)
	}

	if len(doc.Footer) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Arial", "B", 11)
		for _, line := range doc.Footer {
			pdf.CellFormat(0, rowHeight, tr(line), "", 1, "L", false, 0, "")
		}
	}

	return output(pdf)
}

// RenderConfirmation формирует подтверждение бронирования с QR-кодом
func (r *Renderer) RenderConfirmation(c Confirmation) ([]byte, error) {
	payload := c.QRPayload
	if payload == "" {
		payload = c.ConfirmationCode
	}

	qrPNG, err := qrcode.Encode(payload, qrcode.Medium, qrSizePx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQRCode, err)
	}

	pdf := r.newDocument("Reservation "+c.ConfirmationCode, "P")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(0, 12, "Reservation Confirmation", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(0, 8, tr(c.HotelName), "", 1, "L", false, 0, "")
	if c.HotelAddress != "" {
		pdf.CellFormat(0, 8, tr(c.HotelAddress), "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	lines := [][2]string{
		{"Confirmation code", c.ConfirmationCode},
		{"Room", c.RoomNumber},
		{"Check-in", c.CheckIn},
		{"Check-out", c.CheckOut},
		{"Nights", fmt.Sprintf("%d", c.Nights)},
		{"Guests", fmt.Sprintf("%d", c.Guests)},
		{"Status", c.Status},
		{"Total", c.TotalAmount},
		{"Discount", c.DiscountAmount},
		{"Amount due", c.FinalAmount},
	}
	for _, line := range lines {
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(45, rowHeight, line[0]+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 11)
		pdf.CellFormat(0, rowHeight, tr(line[1]), "", 1, "L", false, 0, "")
	}

	imgOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(qrImageName, imgOpts, bytes.NewReader(qrPNG))
	pageWidth, _ := pdf.GetPageSize()
	_, top, right, _ := pdf.GetMargins()
	pdf.ImageOptions(qrImageName, pageWidth-right-qrSizeMM, top+20, qrSizeMM, qrSizeMM, false, imgOpts, 0, "")

	return output(pdf)
}

func (r *Renderer) newDocument(title, orientation string) *gofpdf.Fpdf {
	pdf := gofpdf.New(orientation, "mm", "A4", "")
	pdf.SetTitle(title, true)
	pdf.SetAuthor(r.author, true)
	pdf.SetCreationDate(r.now())
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()
	return pdf
}

// columnWidths раскладывает ширину страницы между колонками без явной ширины
func columnWidths(pdf *gofpdf.Fpdf, columns []Column) []float64 {
	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	available := pageWidth - left - right

	widths := make([]float64, len(columns))
	fixed := 0.0
	flexible := 0
	for i, col := range columns {
		if col.Width > 0 {
			widths[i] = col.Width
			fixed += col.Width
			continue
		}
		flexible++
	}

	if flexible > 0 {
		share := (available - fixed) / float64(flexible)
		if share < 10 {
			share = 10
		}
		for i := range widths {
			if widths[i] == 0 {
				widths[i] = share
			}
		}
	}

	return widths
}

func alignOf(col Column) string {
	if col.Align == "" {
		return "L"
	}
	return col.Align
}

func output(pdf *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}
	return buf.Bytes(), nil
}
