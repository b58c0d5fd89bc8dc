package entity

import (
	"fmt"
	"time"

	"github.com/vertexlabs/billgen/pkg/apperror"
)

// BillHeader carries the identity and context printed at the top of a
// receipt. It is built once per bill group and not modified afterwards.
type BillHeader struct {
	RestaurantName string    `json:"restaurant_name"`
	Address        string    `json:"address,omitempty"`
	Telephone      string    `json:"telephone,omitempty"`
	BillNumber     string    `json:"bill_number"`
	IssuedAt       time.Time `json:"issued_at"`
	TableNumber    string    `json:"table_number,omitempty"`
	WaiterName     string    `json:"waiter,omitempty"`
	OrderType      string    `json:"order_type,omitempty"`
}

// Normalize fills display defaults for missing fields. A missing bill
// number falls back to a minute-precision timestamp; that fallback is
// only unique for single-process generation across distinct minutes,
// so batch inputs are expected to carry explicit bill identifiers.
func (h *BillHeader) Normalize(now time.Time) {
	if h.RestaurantName == "" {
		h.RestaurantName = "VERTEX RESTAURANT"
	}
	if h.Address == "" {
		h.Address = "123 Main St, Dar es Salaam"
	}
	if h.Telephone == "" {
		h.Telephone = "+255 123 456 789"
	}
	if h.IssuedAt.IsZero() {
		h.IssuedAt = now
	}
	if h.BillNumber == "" {
		h.BillNumber = "BILL-" + h.IssuedAt.Format("200601021504")
	}
	if h.TableNumber == "" {
		h.TableNumber = "-"
	}
	if h.WaiterName == "" {
		h.WaiterName = "Waiter"
	}
	if h.OrderType == "" {
		h.OrderType = "Dine-In"
	}
}

// DisplayDate returns the issue time in receipt display form.
func (h BillHeader) DisplayDate() string {
	return h.IssuedAt.Format("02 Jan 2006  03:04 PM")
}

// LineItem represents a single ordered product line.
type LineItem struct {
	Description     string  `json:"description"`
	Quantity        int     `json:"quantity"`
	UnitPrice       float64 `json:"unit_price"`
	DiscountPercent float64 `json:"discount_percent,omitempty"`
}

// Validate rejects malformed quantity or price. A discount percent
// outside [0,100] is accepted; the resulting negative line total is
// rendered as-is so bad input data stays visible.
func (li LineItem) Validate() error {
	if li.Quantity < 0 {
		return apperror.NewInvalidLineItem(fmt.Sprintf("line item %q: quantity must be non-negative, got %d", li.Description, li.Quantity))
	}
	if li.UnitPrice < 0 {
		return apperror.NewInvalidLineItem(fmt.Sprintf("line item %q: unit price must be non-negative, got %v", li.Description, li.UnitPrice))
	}
	return nil
}

// Discount returns the absolute discount amount for the line.
func (li LineItem) Discount() float64 {
	return float64(li.Quantity) * li.UnitPrice * li.DiscountPercent / 100
}

// Total returns the line amount after discount, before tax and service
// charge.
func (li LineItem) Total() float64 {
	return float64(li.Quantity)*li.UnitPrice - li.Discount()
}

// Bill is one bill group ready for aggregation and rendering. Rates
// are fractional (0.18 = 18%).
type Bill struct {
	Header            BillHeader `json:"header"`
	Items             []LineItem `json:"items"`
	TaxRate           float64    `json:"tax_rate"`
	ServiceChargeRate float64    `json:"service_charge_rate"`
	PaymentMethod     string     `json:"payment_method,omitempty"`
	FooterNote        string     `json:"footer_note,omitempty"`
	QRData            string     `json:"qr_data,omitempty"`
}

// BillTotals is the aggregate view of a bill. It is derived, never set
// directly, and treated as immutable once computed; the layout engine
// receives it as a value and never recomputes it.
type BillTotals struct {
	Subtotal      float64 `json:"subtotal"`
	TotalDiscount float64 `json:"total_discount"`
	TaxAmount     float64 `json:"tax_amount"`
	ServiceCharge float64 `json:"service_charge"`
	GrandTotal    float64 `json:"grand_total"`
}

// Aggregate computes the bill totals in a single pass over the items.
// An empty item set yields all-zero totals and no error.
func (b *Bill) Aggregate() (BillTotals, error) {
	var t BillTotals
	for _, item := range b.Items {
		if err := item.Validate(); err != nil {
			return BillTotals{}, err
		}
		t.Subtotal += item.Total()
		t.TotalDiscount += item.Discount()
	}
	t.TaxAmount = t.Subtotal * b.TaxRate
	t.ServiceCharge = t.Subtotal * b.ServiceChargeRate
	t.GrandTotal = t.Subtotal + t.TaxAmount + t.ServiceCharge
	return t, nil
}

// BillGroup is all source rows sharing one bill identifier: one
// customer transaction as loaded from the tabular data source.
type BillGroup struct {
	BillID        string
	CustomerName  string
	CustomerPhone string
	TableNumber   string
	Items         []LineItem
}
