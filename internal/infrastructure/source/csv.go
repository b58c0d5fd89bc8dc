package source

import (
	"fmt"
	"math"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/vertexlabs/billgen/internal/domain/entity"
	"github.com/vertexlabs/billgen/pkg/apperror"
)

// orderRecord mirrors one row of the order export.
type orderRecord struct {
	BillID        string  `csv:"bill_id"`
	CustomerName  string  `csv:"customer_name"`
	CustomerPhone string  `csv:"customer_phone"`
	TableNumber   string  `csv:"table_number"`
	Description   string  `csv:"description"`
	Quantity      float64 `csv:"quantity"`
	UnitPrice     float64 `csv:"unit_price"`
	Discount      float64 `csv:"discount"`
}

// CSVSource loads bill groups from a CSV order export.
type CSVSource struct{}

// NewCSVSource creates a new CSV bill source.
func NewCSVSource() *CSVSource {
	return &CSVSource{}
}

// Load reads the export and groups rows by bill_id, preserving the
// order in which bills first appear in the file.
func (s *CSVSource) Load(path string) ([]entity.BillGroup, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("source: failed to open %s: %w", path, err)
	}
	defer f.Close()

	var records []*orderRecord
	if err := gocsv.UnmarshalFile(f, &records); err != nil {
		return nil, fmt.Errorf("source: failed to parse %s: %w", path, err)
	}

	var groups []entity.BillGroup
	index := make(map[string]int)
	for i, rec := range records {
		if rec.BillID == "" {
			return nil, apperror.NewMissingBillIdentifier(fmt.Sprintf("row %d has no bill_id", i+1))
		}
		item, err := rec.lineItem()
		if err != nil {
			return nil, err
		}
		pos, ok := index[rec.BillID]
		if !ok {
			pos = len(groups)
			index[rec.BillID] = pos
			groups = append(groups, entity.BillGroup{
				BillID:        rec.BillID,
				CustomerName:  rec.CustomerName,
				CustomerPhone: rec.CustomerPhone,
				TableNumber:   rec.TableNumber,
			})
		}
		groups[pos].Items = append(groups[pos].Items, item)
	}
	return groups, nil
}

// lineItem converts a row into a line item. The CSV carries quantity
// as a float column, so integrality is enforced here rather than in
// the entity.
func (r *orderRecord) lineItem() (entity.LineItem, error) {
	if r.Quantity != math.Trunc(r.Quantity) {
		return entity.LineItem{}, apperror.NewInvalidLineItem(fmt.Sprintf("line item %q: quantity %v is not an integer", r.Description, r.Quantity))
	}
	item := entity.LineItem{
		Description:     r.Description,
		Quantity:        int(r.Quantity),
		UnitPrice:       r.UnitPrice,
		DiscountPercent: r.Discount,
	}
	if err := item.Validate(); err != nil {
		return entity.LineItem{}, err
	}
	return item, nil
}
