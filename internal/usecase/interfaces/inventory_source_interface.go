package interfaces

import (
	"context"

	"clima_hogar/internal/domain/entities"
)

// IInventorySource abstracts the public inventory endpoint maintained by the
// admin backend. It may be unavailable; callers own the fallback policy.

type IInventorySource interface {
	FetchInventory(ctx context.Context) ([]entities.InventoryRecord, error)
}
