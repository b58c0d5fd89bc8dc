package service

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/vertexlabs/billgen/internal/config"
	"github.com/vertexlabs/billgen/internal/domain/entity"
	"github.com/vertexlabs/billgen/internal/domain/repository"
	"github.com/vertexlabs/billgen/pkg/console"
)

// Rasterizer converts a finalized PDF into one raster image per page.
type Rasterizer interface {
	Rasterize(pdfPath, outputDir string, dpi int) ([]string, error)
}

// BatchService drives the generation pipeline: load bill groups,
// render one receipt PDF per group, then rasterize every produced PDF
// into page images.
type BatchService struct {
	cfg      *config.Config
	source   repository.BillSource
	receipts *ReceiptService
	raster   Rasterizer
}

// NewBatchService creates a new batch pipeline.
func NewBatchService(cfg *config.Config, source repository.BillSource, receipts *ReceiptService, raster Rasterizer) *BatchService {
	return &BatchService{
		cfg:      cfg,
		source:   source,
		receipts: receipts,
		raster:   raster,
	}
}

// Run processes every bill group in the input. Each group is rendered
// independently with no shared mutable state; a failing group is
// logged and skipped while the rest of the batch continues.
func (s *BatchService) Run() error {
	groups, err := s.source.Load(s.cfg.Pipeline.InputPath)
	if err != nil {
		return fmt.Errorf("batch: failed to load bill groups: %w", err)
	}
	if err := os.MkdirAll(s.cfg.Pipeline.OutputDir, 0o755); err != nil {
		return fmt.Errorf("batch: failed to create output directory: %w", err)
	}

	console.Header()
	now := time.Now()

	var rendered []string
	for _, group := range groups {
		bill := s.billFromGroup(group, now)
		outPath := filepath.Join(s.cfg.Pipeline.OutputDir, group.BillID+".pdf")

		totals, err := bill.Aggregate()
		if err != nil {
			console.Failure(outPath, err)
			continue
		}
		if err := s.receipts.Render(bill, totals, outPath); err != nil {
			console.Failure(outPath, err)
			continue
		}
		rendered = append(rendered, outPath)
		console.Success(outPath)
	}

	for _, pdfPath := range rendered {
		images, err := s.raster.Rasterize(pdfPath, s.cfg.Pipeline.ImagesDir, s.cfg.Pipeline.DPI)
		if err != nil {
			console.Failure(pdfPath, err)
			continue
		}
		for _, img := range images {
			console.Success(img)
		}
	}
	return nil
}

// billFromGroup merges the per-group source fields with the configured
// restaurant identity and billing defaults.
func (s *BatchService) billFromGroup(group entity.BillGroup, now time.Time) *entity.Bill {
	header := entity.BillHeader{
		RestaurantName: s.cfg.Restaurant.Name,
		Address:        s.cfg.Restaurant.Address,
		Telephone:      s.cfg.Restaurant.Telephone,
		BillNumber:     group.BillID,
		IssuedAt:       now,
		TableNumber:    group.TableNumber,
		WaiterName:     s.cfg.Restaurant.Waiter,
		OrderType:      s.cfg.Restaurant.OrderType,
	}
	header.Normalize(now)

	return &entity.Bill{
		Header:            header,
		Items:             group.Items,
		TaxRate:           s.cfg.Restaurant.TaxRate,
		ServiceChargeRate: s.cfg.Restaurant.ServiceChargeRate,
		PaymentMethod:     s.cfg.Restaurant.PaymentMethod,
		FooterNote:        s.cfg.Restaurant.FooterNote,
		QRData:            s.cfg.Restaurant.QRBaseURL + "/" + group.BillID,
	}
}
