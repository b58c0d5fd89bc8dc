package service

import (
	"fmt"
	"strconv"

	"github.com/vertexlabs/billgen/internal/config"
	"github.com/vertexlabs/billgen/internal/domain/entity"
	"github.com/vertexlabs/billgen/pkg/apperror"
	"github.com/vertexlabs/billgen/pkg/document"
)

// Receipt page geometry, in millimetres. The width matches an 80mm
// thermal receipt; the height is computed per bill before the page is
// created, since the page format cannot grow afterwards.
const (
	pageWidth     = 80.0
	minPageHeight = 200.0

	headerBand  = 40.0
	itemRowBand = 7.0
	totalsBand  = 30.0
	paymentBand = 15.0
	qrBand      = 50.0
	footerBand  = 20.0

	lineHeight = 5.0
	labelPad   = 2.0

	qrWidth        = 40.0
	qrBottomOffset = 60.0
	footerOffset   = 20.0

	ruleThickness = 0.2
)

// Item table column widths in characters. The canvas font is
// monospace, so cell arithmetic is plain character counting.
const (
	colItem  = 14
	colQty   = 6
	colPrice = 6
	colTotal = 11
)

// CanvasFactory builds a drawing canvas for a page of the given size
// in millimetres.
type CanvasFactory func(width, height float64) document.Canvas

// ReceiptService is the receipt layout engine. It translates a bill
// and its precomputed totals into a single-page receipt document.
type ReceiptService struct {
	flowFooter bool
	newCanvas  CanvasFactory
}

// NewReceiptService creates a new receipt layout engine. A nil factory
// defaults to the PDF canvas.
func NewReceiptService(cfg config.ReceiptConfig, factory CanvasFactory) *ReceiptService {
	if factory == nil {
		factory = document.NewPDFCanvas
	}
	return &ReceiptService{
		flowFooter: cfg.FlowFooter,
		newCanvas:  factory,
	}
}

// PageHeight computes the page height for a bill with the given item
// count. The item band reserves at least one row so an empty bill
// still gets a visible table region.
func (s *ReceiptService) PageHeight(itemCount int, hasQR bool) float64 {
	rows := itemCount
	if rows < 1 {
		rows = 1
	}
	h := headerBand + itemRowBand*float64(rows) + totalsBand + paymentBand + footerBand
	if hasQR {
		h += qrBand
	}
	if h < minPageHeight {
		h = minPageHeight
	}
	return h
}

// Render lays the bill out as sequential vertical bands and writes the
// finished document to outputPath. Totals must come from
// Bill.Aggregate; the renderer never recomputes them. On failure no
// file is written.
func (s *ReceiptService) Render(bill *entity.Bill, totals entity.BillTotals, outputPath string) error {
	c := s.newCanvas(pageWidth, s.PageHeight(len(bill.Items), bill.QRData != ""))
	c.AddPage()

	s.renderHeader(c, bill.Header)
	s.renderItems(c, bill.Items)
	s.renderTotals(c, bill, totals)
	s.renderPayment(c, bill.PaymentMethod, totals.GrandTotal)
	if err := s.renderQR(c, bill.QRData); err != nil {
		return err
	}
	s.renderFooter(c, bill.FooterNote)

	if err := c.Output(outputPath); err != nil {
		return apperror.NewRenderFailure(err)
	}
	return nil
}

type labelValue struct {
	label string
	value string
}

// keyValue draws one label/value row: the label column is its text
// width plus a small pad, the value right-aligns in the remainder of
// the line.
func (s *ReceiptService) keyValue(c document.Canvas, label, value string) {
	left, _, right := c.Margins()
	lw := c.StringWidth(label) + labelPad
	vw := c.Width() - left - right - lw
	c.Cell(lw, lineHeight, label, "L", false)
	c.Cell(vw, lineHeight, value, "R", true)
}

func (s *ReceiptService) renderHeader(c document.Canvas, h entity.BillHeader) {
	c.SetFont("B", 12)
	c.Cell(0, 6, h.RestaurantName, "C", true)
	c.SetFont("", 9)
	c.Cell(0, lineHeight, h.Address, "C", true)
	c.Cell(0, lineHeight, "Tel: "+h.Telephone, "C", true)
	c.Rule(ruleThickness)

	info := []labelValue{
		{"Bill #:", h.BillNumber},
		{"Date:", h.DisplayDate()},
		{"Table:", h.TableNumber},
		{"Waiter:", h.WaiterName},
		{"Order Type:", h.OrderType},
	}
	for _, lv := range info {
		s.keyValue(c, lv.label, lv.value)
	}
	c.Rule(ruleThickness)
}

func (s *ReceiptService) renderItems(c document.Canvas, items []entity.LineItem) {
	c.SetFont("B", 9)
	c.Cell(0, lineHeight, itemHeaderRow(), "L", true)
	c.Rule(ruleThickness)

	c.SetFont("", 9)
	for _, item := range items {
		c.Cell(0, lineHeight, itemRow(item), "L", true)
	}
	c.Rule(ruleThickness)
}

func itemHeaderRow() string {
	return padRight("ITEM", colItem) + padCenter("QTY", colQty) +
		padLeft("PRICE", colPrice) + padLeft("TOTAL", colTotal)
}

// itemRow formats one table row in fixed character columns. The
// description is truncated to its column; that is lossy for display
// only and never feeds back into the totals.
func itemRow(item entity.LineItem) string {
	return padRight(truncate(item.Description, colItem), colItem) +
		padCenter(strconv.Itoa(item.Quantity), colQty) +
		padLeft(formatAmount(item.UnitPrice, 0), colPrice) +
		padLeft(formatAmount(item.Total(), 2), colTotal)
}

func (s *ReceiptService) renderTotals(c document.Canvas, bill *entity.Bill, t entity.BillTotals) {
	rows := []labelValue{
		{"Subtotal:", formatAmount(t.Subtotal, 2)},
	}
	if t.TotalDiscount > 0 {
		rows = append(rows, labelValue{"Discount:", "-" + formatAmount(t.TotalDiscount, 2)})
	}
	rows = append(rows,
		labelValue{fmt.Sprintf("Tax (%d%%):", int(bill.TaxRate*100)), formatAmount(t.TaxAmount, 2)},
		labelValue{fmt.Sprintf("Service Charge (%d%%):", int(bill.ServiceChargeRate*100)), formatAmount(t.ServiceCharge, 2)},
		labelValue{"TOTAL:", formatAmount(t.GrandTotal, 2)},
	)

	c.SetFont("B", 9)
	for _, row := range rows {
		s.keyValue(c, row.label, row.value)
	}
	c.Rule(ruleThickness)
}

func (s *ReceiptService) renderPayment(c document.Canvas, method string, grandTotal float64) {
	if method == "" {
		method = "Cash"
	}
	c.SetFont("", 9)
	s.keyValue(c, "Payment Method:", method)
	s.keyValue(c, "Amount Paid:", formatAmount(grandTotal, 2))
	// Exact payment is assumed; tendered amounts are not modelled.
	s.keyValue(c, "Change:", "0.00")
	c.Rule(ruleThickness)
}

// renderQR places the scannable code 60mm from the page bottom,
// regardless of how much content sits above it. On unusually short
// bills it can overlap the footer region; flow mode places it after
// the payment band instead.
func (s *ReceiptService) renderQR(c document.Canvas, payload string) error {
	if payload == "" {
		return nil
	}
	y := c.Height() - qrBottomOffset
	if s.flowFooter {
		y = c.Y()
	}
	if err := document.EmbedQR(c, payload, y, qrWidth); err != nil {
		return apperror.NewRenderFailure(err)
	}
	if s.flowFooter {
		c.SetY(y + qrWidth + 2)
	}
	return nil
}

func (s *ReceiptService) renderFooter(c document.Canvas, note string) {
	if note == "" {
		note = "Thank you for dining with us!"
	}
	if !s.flowFooter {
		c.SetY(c.Height() - footerOffset)
	}
	c.Rule(ruleThickness)
	c.SetFont("I", 9)
	c.Cell(0, lineHeight, note, "C", true)
	c.Cell(0, lineHeight, "Powered by Vertex Systems", "C", true)
}
