package handler

import (
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/vertexlabs/billgen/internal/application/service"
	"github.com/vertexlabs/billgen/internal/config"
	"github.com/vertexlabs/billgen/internal/domain/entity"
	"github.com/vertexlabs/billgen/internal/presentation/http/dto/request"
	"github.com/vertexlabs/billgen/internal/presentation/http/dto/response"
)

// ReceiptHandler handles on-demand receipt rendering requests.
type ReceiptHandler struct {
	receiptService *service.ReceiptService
	cfg            *config.Config
}

// NewReceiptHandler creates a new receipt handler.
func NewReceiptHandler(receiptService *service.ReceiptService, cfg *config.Config) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService, cfg: cfg}
}

// Generate renders a receipt PDF from the request body and returns it
// as an attachment.
func (h *ReceiptHandler) Generate(c *gin.Context) {
	var req request.GenerateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	bill := h.billFromRequest(&req)
	totals, err := bill.Aggregate()
	if err != nil {
		response.Error(c, err)
		return
	}

	workDir := filepath.Join(os.TempDir(), "billgen-"+uuid.NewString())
	if err := os.MkdirAll(workDir, 0o755); err != nil {
		response.Error(c, err)
		return
	}
	defer os.RemoveAll(workDir)

	pdfPath := filepath.Join(workDir, bill.Header.BillNumber+".pdf")
	if err := h.receiptService.Render(bill, totals, pdfPath); err != nil {
		response.Error(c, err)
		return
	}

	c.FileAttachment(pdfPath, bill.Header.BillNumber+".pdf")
}

// Totals computes the bill totals without rendering, for pre-render
// previews.
func (h *ReceiptHandler) Totals(c *gin.Context) {
	var req request.GenerateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	bill := h.billFromRequest(&req)
	totals, err := bill.Aggregate()
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Totals computed", gin.H{
		"bill_number": bill.Header.BillNumber,
		"totals":      totals,
	})
}

// billFromRequest merges the request with the configured restaurant
// defaults.
func (h *ReceiptHandler) billFromRequest(req *request.GenerateReceiptRequest) *entity.Bill {
	rest := h.cfg.Restaurant

	header := entity.BillHeader{
		RestaurantName: firstNonEmpty(req.RestaurantName, rest.Name),
		Address:        firstNonEmpty(req.Address, rest.Address),
		Telephone:      firstNonEmpty(req.Telephone, rest.Telephone),
		BillNumber:     req.BillNumber,
		TableNumber:    req.TableNumber,
		WaiterName:     firstNonEmpty(req.Waiter, rest.Waiter),
		OrderType:      firstNonEmpty(req.OrderType, rest.OrderType),
	}
	header.Normalize(time.Now())

	taxRate := rest.TaxRate
	if req.TaxRate != nil {
		taxRate = *req.TaxRate
	}
	serviceRate := rest.ServiceChargeRate
	if req.ServiceChargeRate != nil {
		serviceRate = *req.ServiceChargeRate
	}

	items := make([]entity.LineItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, entity.LineItem{
			Description:     it.Description,
			Quantity:        it.Quantity,
			UnitPrice:       it.UnitPrice,
			DiscountPercent: it.DiscountPercent,
		})
	}

	return &entity.Bill{
		Header:            header,
		Items:             items,
		TaxRate:           taxRate,
		ServiceChargeRate: serviceRate,
		PaymentMethod:     firstNonEmpty(req.PaymentMethod, rest.PaymentMethod),
		FooterNote:        firstNonEmpty(req.FooterNote, rest.FooterNote),
		QRData:            req.QRData,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
