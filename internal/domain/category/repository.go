package category

import "context"

type Repository interface {
	Create(ctx context.Context, c *Category) error
	GetByID(ctx context.Context, id uint) (*Category, error)
	Update(ctx context.Context, c *Category) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]*Category, error)
	// ExistsByName and ExistsByCode ignore the row with excludeID.
	ExistsByName(ctx context.Context, name string, excludeID uint) (bool, error)
	ExistsByCode(ctx context.Context, code string, excludeID uint) (bool, error)
}

type TicketCategoryRepository interface {
	Create(ctx context.Context, c *TicketCategory) error
	GetByID(ctx context.Context, id uint) (*TicketCategory, error)
	GetByIDs(ctx context.Context, ids []uint) ([]*TicketCategory, error)
	Update(ctx context.Context, c *TicketCategory) error
	Delete(ctx context.Context, id uint) error
	// List returns categories ordered by id.
	List(ctx context.Context, activeOnly bool) ([]*TicketCategory, error)
	ExistsByName(ctx context.Context, name string, excludeID uint) (bool, error)
	ExistsByCode(ctx context.Context, code string, excludeID uint) (bool, error)
	CountTickets(ctx context.Context, id uint) (int64, error)
}
