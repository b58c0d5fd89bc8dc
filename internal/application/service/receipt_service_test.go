package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vertexlabs/billgen/internal/config"
	"github.com/vertexlabs/billgen/internal/domain/entity"
	"github.com/vertexlabs/billgen/pkg/apperror"
	"github.com/vertexlabs/billgen/pkg/document"
)

// fakeCanvas records drawing calls so band layout can be asserted
// without producing a PDF.
type fakeCanvas struct {
	width, height float64
	y             float64
	cells         []fakeCell
	images        []fakeImage
	setYCalls     []float64
	rules         int
	outputPath    string
	outputErr     error
}

type fakeCell struct {
	w, h  float64
	text  string
	align string
}

type fakeImage struct {
	path    string
	x, y, w float64
}

func newFakeCanvas(width, height float64) *fakeCanvas {
	return &fakeCanvas{width: width, height: height}
}

func (c *fakeCanvas) AddPage() { c.y = 5 }

func (c *fakeCanvas) SetFont(style string, size float64) {}

func (c *fakeCanvas) Cell(w, h float64, text, align string, newline bool) {
	c.cells = append(c.cells, fakeCell{w: w, h: h, text: text, align: align})
	if newline {
		c.y += h
	}
}

func (c *fakeCanvas) StringWidth(text string) float64 {
	return float64(len(text)) * 1.5
}

func (c *fakeCanvas) Rule(thickness float64) {
	c.rules++
	c.y += 2
}

func (c *fakeCanvas) Y() float64 { return c.y }

func (c *fakeCanvas) SetY(y float64) {
	c.setYCalls = append(c.setYCalls, y)
	c.y = y
}

func (c *fakeCanvas) Image(path string, x, y, w float64) {
	c.images = append(c.images, fakeImage{path: path, x: x, y: y, w: w})
}

func (c *fakeCanvas) Width() float64  { return c.width }
func (c *fakeCanvas) Height() float64 { return c.height }

func (c *fakeCanvas) Margins() (left, top, right float64) { return 4, 5, 4 }

func (c *fakeCanvas) Output(path string) error {
	c.outputPath = path
	return c.outputErr
}

func (c *fakeCanvas) hasCell(text string) bool {
	for _, cell := range c.cells {
		if cell.text == text {
			return true
		}
	}
	return false
}

func renderOnFake(t *testing.T, cfg config.ReceiptConfig, bill *entity.Bill) (*fakeCanvas, error) {
	t.Helper()

	var canvas *fakeCanvas
	svc := NewReceiptService(cfg, func(w, h float64) document.Canvas {
		canvas = newFakeCanvas(w, h)
		return canvas
	})

	totals, err := bill.Aggregate()
	require.NoError(t, err)
	err = svc.Render(bill, totals, "out.pdf")
	return canvas, err
}

func testBill(items ...entity.LineItem) *entity.Bill {
	header := entity.BillHeader{RestaurantName: "VERTEX", BillNumber: "B1"}
	header.Normalize(time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC))
	return &entity.Bill{
		Header:            header,
		Items:             items,
		TaxRate:           0.18,
		ServiceChargeRate: 0.05,
		PaymentMethod:     "Mobile Money",
	}
}

func TestPageHeightFloor(t *testing.T) {
	svc := NewReceiptService(config.ReceiptConfig{}, nil)

	// 40 + 7 + 30 + 15 + 20 = 112, below the 200 floor
	assert.Equal(t, 200.0, svc.PageHeight(0, false))
	assert.Equal(t, 200.0, svc.PageHeight(1, false))
	assert.Equal(t, 200.0, svc.PageHeight(1, true))
}

func TestPageHeightGrowsWithContent(t *testing.T) {
	svc := NewReceiptService(config.ReceiptConfig{}, nil)

	// 40 + 7*30 + 30 + 15 + 20
	assert.Equal(t, 315.0, svc.PageHeight(30, false))
	assert.Equal(t, 365.0, svc.PageHeight(30, true))

	prev := 0.0
	for n := 0; n <= 60; n++ {
		h := svc.PageHeight(n, false)
		assert.GreaterOrEqual(t, h, prev, "page height shrank at %d items", n)
		prev = h
	}
}

func TestRenderItemRowColumns(t *testing.T) {
	canvas, err := renderOnFake(t, config.ReceiptConfig{}, testBill(
		entity.LineItem{Description: "Coffee", Quantity: 2, UnitPrice: 5.00},
	))
	require.NoError(t, err)

	want := "Coffee" + strings.Repeat(" ", 10) + "2" + strings.Repeat(" ", 8) + "5" + strings.Repeat(" ", 6) + "10.00"
	assert.True(t, canvas.hasCell(want), "missing item row %q", want)
	assert.True(t, canvas.hasCell(itemHeaderRow()))
	assert.Equal(t, "out.pdf", canvas.outputPath)
}

func TestRenderTruncatesLongDescription(t *testing.T) {
	canvas, err := renderOnFake(t, config.ReceiptConfig{}, testBill(
		entity.LineItem{Description: "Grilled Chicken Special", Quantity: 1, UnitPrice: 12000},
	))
	require.NoError(t, err)

	for _, cell := range canvas.cells {
		assert.NotContains(t, cell.text, "Chicken Special")
	}
	assert.True(t, strings.HasPrefix(itemRow(entity.LineItem{Description: "Grilled Chicken Special", Quantity: 1, UnitPrice: 12000}), "Grilled Chicke"))
}

func TestRenderDiscountRowOnlyWhenDiscounted(t *testing.T) {
	canvas, err := renderOnFake(t, config.ReceiptConfig{}, testBill(
		entity.LineItem{Description: "Coffee", Quantity: 2, UnitPrice: 5.00},
	))
	require.NoError(t, err)
	assert.False(t, canvas.hasCell("Discount:"))

	canvas, err = renderOnFake(t, config.ReceiptConfig{}, testBill(
		entity.LineItem{Description: "Coffee", Quantity: 2, UnitPrice: 1000, DiscountPercent: 10},
	))
	require.NoError(t, err)
	assert.True(t, canvas.hasCell("Discount:"))
	assert.True(t, canvas.hasCell("-200.00"))
}

func TestRenderTotalsLabelsAndValues(t *testing.T) {
	canvas, err := renderOnFake(t, config.ReceiptConfig{}, testBill(
		entity.LineItem{Description: "Pilau", Quantity: 1, UnitPrice: 1234.5},
	))
	require.NoError(t, err)

	assert.True(t, canvas.hasCell("Tax (18%):"))
	assert.True(t, canvas.hasCell("Service Charge (5%):"))
	assert.True(t, canvas.hasCell("TOTAL:"))
	// Subtotal with grouping and two decimals
	assert.True(t, canvas.hasCell("1,234.50"))
	// Unit price column: zero decimals, standard rounding
	assert.True(t, canvas.hasCell(itemRow(entity.LineItem{Description: "Pilau", Quantity: 1, UnitPrice: 1234.5})))
	assert.Contains(t, itemRow(entity.LineItem{Description: "Pilau", Quantity: 1, UnitPrice: 1234.5}), " 1,235")
}

func TestRenderPaymentBand(t *testing.T) {
	canvas, err := renderOnFake(t, config.ReceiptConfig{}, testBill(
		entity.LineItem{Description: "Coffee", Quantity: 2, UnitPrice: 5.00},
	))
	require.NoError(t, err)

	assert.True(t, canvas.hasCell("Payment Method:"))
	assert.True(t, canvas.hasCell("Mobile Money"))
	assert.True(t, canvas.hasCell("Amount Paid:"))
	assert.True(t, canvas.hasCell("12.30"))
	assert.True(t, canvas.hasCell("Change:"))
	assert.True(t, canvas.hasCell("0.00"))
}

func TestRenderMissingTableShowsDash(t *testing.T) {
	canvas, err := renderOnFake(t, config.ReceiptConfig{}, testBill())
	require.NoError(t, err)

	assert.True(t, canvas.hasCell("Table:"))
	assert.True(t, canvas.hasCell("-"))
}

func TestRenderEmptyBill(t *testing.T) {
	canvas, err := renderOnFake(t, config.ReceiptConfig{}, testBill())
	require.NoError(t, err)

	assert.True(t, canvas.hasCell(itemHeaderRow()))
	assert.True(t, canvas.hasCell("Subtotal:"))
	assert.True(t, canvas.hasCell("0.00"))
	assert.Equal(t, 200.0, canvas.height)
}

func TestRenderFixedBottomBands(t *testing.T) {
	bill := testBill(entity.LineItem{Description: "Coffee", Quantity: 2, UnitPrice: 5.00})
	bill.QRData = "https://vertex.co/restaurant_bill/B1"

	canvas, err := renderOnFake(t, config.ReceiptConfig{}, bill)
	require.NoError(t, err)

	require.Len(t, canvas.images, 1)
	assert.Equal(t, canvas.height-60, canvas.images[0].y)
	assert.Equal(t, 40.0, canvas.images[0].w)
	assert.Equal(t, (canvas.width-40)/2, canvas.images[0].x)
	assert.Contains(t, canvas.setYCalls, canvas.height-20)
}

func TestRenderFlowFooterMode(t *testing.T) {
	bill := testBill(entity.LineItem{Description: "Coffee", Quantity: 2, UnitPrice: 5.00})
	bill.QRData = "https://vertex.co/restaurant_bill/B1"

	canvas, err := renderOnFake(t, config.ReceiptConfig{FlowFooter: true}, bill)
	require.NoError(t, err)

	require.Len(t, canvas.images, 1)
	assert.NotEqual(t, canvas.height-60, canvas.images[0].y)
	assert.NotContains(t, canvas.setYCalls, canvas.height-20)
}

func TestRenderOutputFailure(t *testing.T) {
	var canvas *fakeCanvas
	svc := NewReceiptService(config.ReceiptConfig{}, func(w, h float64) document.Canvas {
		canvas = newFakeCanvas(w, h)
		canvas.outputErr = errors.New("disk full")
		return canvas
	})

	bill := testBill(entity.LineItem{Description: "Coffee", Quantity: 2, UnitPrice: 5.00})
	totals, err := bill.Aggregate()
	require.NoError(t, err)

	err = svc.Render(bill, totals, "out.pdf")
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindRenderFailure))
}
