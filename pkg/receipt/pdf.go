package receipt

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/dustore/pos-admin-api/pkg/money"
)

// Receipt page geometry in millimeters (A6 portrait) and the vertical
// cursor steps of the fixed layout.
const (
	pageWidth  = 105.0
	pageHeight = 148.0
	marginX    = 10.0

	itemRowStep = 5.0
	qtyColInset = 40.0
)

// DocumentName returns the download identifier for a rendered receipt,
// e.g. "Struk_007". The caller appends the file extension.
func DocumentName(c *Content) string {
	return "Struk_" + c.OrderNo
}

// RenderPDF renders the content onto a single fixed-size page with a
// deterministic vertical cursor. Identical content yields identical bytes.
//
// Receipts taller than one page are clipped: overflow handling is a known,
// accepted limitation of the receipt format, not something to paper over
// here.
func RenderPDF(c *Content) ([]byte, error) {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: pageWidth, Ht: pageHeight},
	})
	// Pin the metadata clock so equal content renders byte-for-byte equal.
	pdf.SetCreationDate(time.Unix(0, 0).UTC())
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	centerX := pageWidth / 2

	// Store header
	pdf.SetFont("Helvetica", "B", 14)
	textCenter(pdf, centerX, 15, c.Store.Name)
	pdf.SetFont("Helvetica", "", 8)
	textCenter(pdf, centerX, 20, c.Store.Address)
	textCenter(pdf, centerX, 24, c.Store.Phone)
	pdf.Line(marginX, 28, pageWidth-marginX, 28)

	// Order metadata
	pdf.SetFont("Helvetica", "", 9)
	pdf.Text(marginX, 35, "Order ID: #"+c.OrderNo)
	pdf.Text(marginX, 40, "Tgl: "+c.Date)
	pdf.Text(marginX, 45, "Cust: "+c.Customer)

	// Item table
	y := 55.0
	pdf.SetFont("Helvetica", "B", 9)
	pdf.Text(marginX, y, "Item")
	textRight(pdf, pageWidth-qtyColInset, y, "Qty")
	textRight(pdf, pageWidth-marginX, y, "Total")
	pdf.Line(marginX, y+2, pageWidth-marginX, y+2)

	y += 7
	pdf.SetFont("Helvetica", "", 9)
	for _, line := range c.Lines {
		pdf.Text(marginX, y, line.Name)
		textRight(pdf, pageWidth-qtyColInset, y, strconv.Itoa(line.Quantity))
		textRight(pdf, pageWidth-marginX, y, money.Group(line.Total))
		y += itemRowStep
	}

	pdf.Line(marginX, y+2, pageWidth-marginX, y+2)
	y += 8

	// Grand total
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Text(marginX, y, "TOTAL")
	textRight(pdf, pageWidth-marginX, y, money.Rupiah(c.Total))

	// Footer
	pdf.SetFont("Helvetica", "I", 8)
	textCenter(pdf, centerX, y+15, c.Footer)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailure, err)
	}
	return buf.Bytes(), nil
}

// textCenter places s horizontally centered on x at baseline y.
func textCenter(pdf *gofpdf.Fpdf, x, y float64, s string) {
	pdf.Text(x-pdf.GetStringWidth(s)/2, y, s)
}

// textRight places s with its right edge on x at baseline y.
func textRight(pdf *gofpdf.Fpdf, x, y float64, s string) {
	pdf.Text(x-pdf.GetStringWidth(s), y, s)
}
