package http

import (
	"gorm.io/gorm"

	"github.com/opsdesk-inc/opsdesk/internal/domain/asset"
	"github.com/opsdesk-inc/opsdesk/internal/domain/category"
	"github.com/opsdesk-inc/opsdesk/internal/domain/printlog"
	"github.com/opsdesk-inc/opsdesk/internal/domain/ticket"
	"github.com/opsdesk-inc/opsdesk/internal/domain/user"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/repository"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	userRepo           user.Repository
	ticketRepo         ticket.TicketRepository
	commentRepo        ticket.CommentRepository
	assetRepo          asset.Repository
	historyRepo        asset.HistoryRepository
	categoryRepo       category.Repository
	ticketCategoryRepo category.TicketCategoryRepository
	printLogRepo       printlog.Repository
}

// newRepositories creates all repository instances from the database connection.
func newRepositories(db *gorm.DB) *repositories {
	return &repositories{
		userRepo:           repository.NewUserRepository(db),
		ticketRepo:         repository.NewTicketRepository(db),
		commentRepo:        repository.NewCommentRepository(db),
		assetRepo:          repository.NewAssetRepository(db),
		historyRepo:        repository.NewAssetHistoryRepository(db),
		categoryRepo:       repository.NewCategoryRepository(db),
		ticketCategoryRepo: repository.NewTicketCategoryRepository(db),
		printLogRepo:       repository.NewPrintLogRepository(db),
	}
}
