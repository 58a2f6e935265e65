package http

import (
	"github.com/opsdesk-inc/opsdesk/internal/interfaces/http/handlers"
	assetHandlers "github.com/opsdesk-inc/opsdesk/internal/interfaces/http/handlers/asset"
	categoryHandlers "github.com/opsdesk-inc/opsdesk/internal/interfaces/http/handlers/category"
	employeeHandlers "github.com/opsdesk-inc/opsdesk/internal/interfaces/http/handlers/employee"
	printlogHandlers "github.com/opsdesk-inc/opsdesk/internal/interfaces/http/handlers/printlog"
	ticketHandlers "github.com/opsdesk-inc/opsdesk/internal/interfaces/http/handlers/ticket"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	// User & Auth
	userHandler *handlers.UserHandler
	authHandler *handlers.AuthHandler

	// Ticket
	ticketHandler     *ticketHandlers.TicketHandler
	attachmentHandler *handlers.AttachmentHandler

	// Asset
	assetHandler *assetHandlers.AssetHandler

	// Category
	categoryHandler *categoryHandlers.CategoryHandler

	// Employee
	employeeHandler *employeeHandlers.EmployeeHandler

	// Print log
	printLogHandler *printlogHandlers.PrintLogHandler
}

func (c *Container) newHandlers() *allHandlers {
	u := c.ucs
	log := c.log

	return &allHandlers{
		userHandler: handlers.NewUserHandler(u.users, log),
		authHandler: handlers.NewAuthHandler(u.login, log),

		ticketHandler: ticketHandlers.NewTicketHandler(ticketHandlers.UseCases{
			Create:     u.createTicket,
			ListMine:   u.listMyTickets,
			Manage:     u.manageTickets,
			ListOpen:   u.listOpenTickets,
			Get:        u.getTicket,
			Update:     u.updateTicket,
			Delete:     u.deleteTicket,
			AddComment: u.addComment,
			Stats:      u.getTicketStats,
			Export:     u.exportTickets,
			Upload:     u.uploadAttachments,
		}, log),
		attachmentHandler: handlers.NewAttachmentHandler(c.blobStore, log),

		assetHandler: assetHandlers.NewAssetHandler(assetHandlers.UseCases{
			Create:        u.createAsset,
			Update:        u.updateAsset,
			Delete:        u.deleteAsset,
			List:          u.listAssets,
			Get:           u.getAsset,
			ListHistory:   u.listHistory,
			AddHistory:    u.addHistory,
			UpdateHistory: u.updateHistory,
			DeleteHistory: u.deleteHistory,
		}, log),

		categoryHandler: categoryHandlers.NewCategoryHandler(u.assetCategories, u.ticketCategories, log),

		employeeHandler: employeeHandlers.NewEmployeeHandler(u.listEmployees, log),

		printLogHandler: printlogHandlers.NewPrintLogHandler(u.printLogs, log),
	}
}
