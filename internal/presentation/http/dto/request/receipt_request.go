package request

// GenerateReceiptRequest is the request body for rendering a receipt
// on demand. Restaurant identity, rates and payment default to the
// configured values when omitted.
type GenerateReceiptRequest struct {
	RestaurantName    string               `json:"restaurant_name"`
	Address           string               `json:"address"`
	Telephone         string               `json:"telephone"`
	BillNumber        string               `json:"bill_number"`
	TableNumber       string               `json:"table_number"`
	Waiter            string               `json:"waiter"`
	OrderType         string               `json:"order_type"`
	PaymentMethod     string               `json:"payment_method"`
	FooterNote        string               `json:"footer_note"`
	TaxRate           *float64             `json:"tax_rate"`
	ServiceChargeRate *float64             `json:"service_charge_rate"`
	QRData            string               `json:"qr_data"`
	Items             []ReceiptItemRequest `json:"items"`
}

// ReceiptItemRequest is one line item of a receipt request.
type ReceiptItemRequest struct {
	Description     string  `json:"description" binding:"required"`
	Quantity        int     `json:"quantity"`
	UnitPrice       float64 `json:"unit_price"`
	DiscountPercent float64 `json:"discount_percent"`
}
