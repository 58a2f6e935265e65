package user

import "context"

// Repository defines the interface for user data operations
type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	// GetByIDs returns the users that exist; missing ids are skipped.
	GetByIDs(ctx context.Context, ids []uint) ([]*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	List(ctx context.Context) ([]*User, error)
	Delete(ctx context.Context, id uint) error
}
