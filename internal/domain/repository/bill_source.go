package repository

import (
	"github.com/vertexlabs/billgen/internal/domain/entity"
)

// BillSource yields bill groups from a tabular data source, already
// grouped by bill identifier in first-seen order.
type BillSource interface {
	Load(path string) ([]entity.BillGroup, error)
}
