package document

import (
	"github.com/go-pdf/fpdf"
)

// Canvas is the drawing surface the receipt layout engine renders
// onto: a single fixed-size page with a cursor, a monospace font and
// append-only drawing. Column alignment in the item table depends on
// the font being fixed-width.
type Canvas interface {
	// AddPage starts the page. The page size is fixed at creation and
	// cannot grow afterwards.
	AddPage()
	// SetFont selects the monospace font in the given style ("", "B",
	// "I") and point size.
	SetFont(style string, size float64)
	// Cell draws a text cell of the given size at the cursor. An empty
	// width spans the remaining line. When newline is true the cursor
	// moves to the start of the next line.
	Cell(w, h float64, text, align string, newline bool)
	// StringWidth returns the rendered width of text in page units.
	StringWidth(text string) float64
	// Rule draws a horizontal line across the printable width at the
	// cursor and advances past it.
	Rule(thickness float64)
	// Y returns the cursor's vertical position.
	Y() float64
	// SetY moves the cursor to the given vertical position.
	SetY(y float64)
	// Image places a PNG at (x, y) scaled to width w.
	Image(path string, x, y, w float64)
	// Width and Height return the page size in page units.
	Width() float64
	Height() float64
	// Margins returns the left, top and right page margins.
	Margins() (left, top, right float64)
	// Output finalizes the document and writes it to path. Nothing is
	// written before this call, so a failed render leaves no partial
	// file behind.
	Output(path string) error
}

// --- PDF canvas (go-pdf/fpdf, 80mm thermal-receipt geometry) ---

type pdfCanvas struct {
	pdf *fpdf.Fpdf
}

// NewPDFCanvas creates a portrait PDF canvas of the given page size in
// millimetres. Automatic page breaks are disabled; callers compute the
// page height up front.
func NewPDFCanvas(width, height float64) Canvas {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: width, Ht: height},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(4, 5, 4)
	return &pdfCanvas{pdf: pdf}
}

func (c *pdfCanvas) AddPage() {
	c.pdf.AddPage()
}

func (c *pdfCanvas) SetFont(style string, size float64) {
	c.pdf.SetFont("Courier", style, size)
}

func (c *pdfCanvas) Cell(w, h float64, text, align string, newline bool) {
	ln := 0
	if newline {
		ln = 1
	}
	c.pdf.CellFormat(w, h, text, "", ln, align, false, 0, "")
}

func (c *pdfCanvas) StringWidth(text string) float64 {
	return c.pdf.GetStringWidth(text)
}

func (c *pdfCanvas) Rule(thickness float64) {
	left, _, right, _ := c.pdf.GetMargins()
	width, _ := c.pdf.GetPageSize()
	y := c.pdf.GetY()
	c.pdf.SetLineWidth(thickness)
	c.pdf.Line(left, y, width-right, y)
	c.pdf.Ln(2)
}

func (c *pdfCanvas) Y() float64 {
	return c.pdf.GetY()
}

func (c *pdfCanvas) SetY(y float64) {
	c.pdf.SetY(y)
}

func (c *pdfCanvas) Image(path string, x, y, w float64) {
	c.pdf.ImageOptions(path, x, y, w, 0, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
}

func (c *pdfCanvas) Width() float64 {
	width, _ := c.pdf.GetPageSize()
	return width
}

func (c *pdfCanvas) Height() float64 {
	_, height := c.pdf.GetPageSize()
	return height
}

func (c *pdfCanvas) Margins() (left, top, right float64) {
	left, top, right, _ = c.pdf.GetMargins()
	return left, top, right
}

func (c *pdfCanvas) Output(path string) error {
	return c.pdf.OutputFileAndClose(path)
}
