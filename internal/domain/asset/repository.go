package asset

import "context"

type Repository interface {
	Create(ctx context.Context, asset *Asset) error
	GetByID(ctx context.Context, id uint) (*Asset, error)
	Update(ctx context.Context, asset *Asset) error
	// Delete removes the asset together with its history rows.
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]*Asset, error)
	// ExistsByCode reports whether another asset (id != excludeID) uses code.
	ExistsByCode(ctx context.Context, code string, excludeID uint) (bool, error)
	CountByCategory(ctx context.Context, categoryID uint) (int64, error)
}

type HistoryRepository interface {
	Create(ctx context.Context, entry *HistoryEntry) error
	GetByID(ctx context.Context, id uint) (*HistoryEntry, error)
	Update(ctx context.Context, entry *HistoryEntry) error
	Delete(ctx context.Context, id uint) error
	// ListByAssetID returns entries newest date first, ties broken by newest id.
	ListByAssetID(ctx context.Context, assetID uint) ([]*HistoryEntry, error)
}
