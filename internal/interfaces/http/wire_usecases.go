package http

import (
	assetUsecases "github.com/opsdesk-inc/opsdesk/internal/application/asset/usecases"
	categoryUsecases "github.com/opsdesk-inc/opsdesk/internal/application/category/usecases"
	employeeUsecases "github.com/opsdesk-inc/opsdesk/internal/application/employee/usecases"
	printlogUsecases "github.com/opsdesk-inc/opsdesk/internal/application/printlog/usecases"
	ticketUsecases "github.com/opsdesk-inc/opsdesk/internal/application/ticket/usecases"
	userUsecases "github.com/opsdesk-inc/opsdesk/internal/application/user/usecases"
)

// allUseCases holds every use case the HTTP layer dispatches to.
type allUseCases struct {
	// Tickets
	createTicket      *ticketUsecases.CreateTicketUseCase
	listMyTickets     *ticketUsecases.ListMyTicketsUseCase
	manageTickets     *ticketUsecases.ManageTicketsUseCase
	listOpenTickets   *ticketUsecases.ListOpenTicketsUseCase
	getTicket         *ticketUsecases.GetTicketUseCase
	updateTicket      *ticketUsecases.UpdateTicketUseCase
	deleteTicket      *ticketUsecases.DeleteTicketUseCase
	addComment        *ticketUsecases.AddCommentUseCase
	getTicketStats    *ticketUsecases.GetTicketStatsUseCase
	exportTickets     *ticketUsecases.ExportTicketsUseCase
	uploadAttachments *ticketUsecases.UploadAttachmentsUseCase

	// Assets
	createAsset   *assetUsecases.CreateAssetUseCase
	updateAsset   *assetUsecases.UpdateAssetUseCase
	deleteAsset   *assetUsecases.DeleteAssetUseCase
	listAssets    *assetUsecases.ListAssetsUseCase
	getAsset      *assetUsecases.GetAssetUseCase
	listHistory   *assetUsecases.ListHistoryUseCase
	addHistory    *assetUsecases.AddHistoryUseCase
	updateHistory *assetUsecases.UpdateHistoryUseCase
	deleteHistory *assetUsecases.DeleteHistoryUseCase

	// Categories
	assetCategories  *categoryUsecases.AssetCategoryUseCases
	ticketCategories *categoryUsecases.TicketCategoryUseCases

	// Users & Auth
	login *userUsecases.LoginUseCase
	users *userUsecases.UserAdminUseCases

	// HR directory
	listEmployees *employeeUsecases.ListEmployeesUseCase

	// ID card print log
	printLogs *printlogUsecases.PrintLogUseCases
}

func (c *Container) newUseCases() *allUseCases {
	r := c.repos
	log := c.log
	checker := c.enforcer

	exportSettings := ticketUsecases.ExportSettings{
		UTCOffsetHours: c.cfg.Export.UTCOffsetHours,
		BatchSize:      c.cfg.Export.BatchSize,
	}

	return &allUseCases{
		createTicket:    ticketUsecases.NewCreateTicketUseCase(r.ticketRepo, log),
		listMyTickets:   ticketUsecases.NewListMyTicketsUseCase(r.ticketRepo, r.userRepo, r.ticketCategoryRepo, log),
		manageTickets:   ticketUsecases.NewManageTicketsUseCase(r.ticketRepo, r.userRepo, r.ticketCategoryRepo, checker, log),
		listOpenTickets: ticketUsecases.NewListOpenTicketsUseCase(r.ticketRepo, r.userRepo, r.ticketCategoryRepo, checker, log),
		getTicket: ticketUsecases.NewGetTicketUseCase(
			r.ticketRepo, r.commentRepo, r.userRepo, r.ticketCategoryRepo, checker, c.markdown, log,
		),
		updateTicket: ticketUsecases.NewUpdateTicketUseCase(
			r.ticketRepo, r.commentRepo, r.userRepo, r.ticketCategoryRepo, checker, c.txMgr, c.metrics, log,
		),
		deleteTicket: ticketUsecases.NewDeleteTicketUseCase(r.ticketRepo, c.blobStore, checker, log),
		addComment: ticketUsecases.NewAddCommentUseCase(
			r.ticketRepo, r.commentRepo, r.userRepo, r.ticketCategoryRepo, checker, c.markdown, c.txMgr, c.metrics, log,
		),
		getTicketStats: ticketUsecases.NewGetTicketStatsUseCase(r.ticketRepo, checker, log),
		exportTickets: ticketUsecases.NewExportTicketsUseCase(
			r.ticketRepo, r.userRepo, r.ticketCategoryRepo, checker, c.reportWriter, c.metrics, exportSettings, log,
		),
		uploadAttachments: ticketUsecases.NewUploadAttachmentsUseCase(c.blobStore, c.cfg.Storage.MaxFileBytes, log),

		createAsset:   assetUsecases.NewCreateAssetUseCase(r.assetRepo, r.historyRepo, checker, c.txMgr, log),
		updateAsset:   assetUsecases.NewUpdateAssetUseCase(r.assetRepo, r.historyRepo, checker, c.txMgr, log),
		deleteAsset:   assetUsecases.NewDeleteAssetUseCase(r.assetRepo, checker, log),
		listAssets:    assetUsecases.NewListAssetsUseCase(r.assetRepo, checker, log),
		getAsset:      assetUsecases.NewGetAssetUseCase(r.assetRepo, checker, log),
		listHistory:   assetUsecases.NewListHistoryUseCase(r.assetRepo, r.historyRepo, checker, log),
		addHistory:    assetUsecases.NewAddHistoryUseCase(r.assetRepo, r.historyRepo, checker, log),
		updateHistory: assetUsecases.NewUpdateHistoryUseCase(r.historyRepo, checker, log),
		deleteHistory: assetUsecases.NewDeleteHistoryUseCase(r.historyRepo, checker, log),

		assetCategories:  categoryUsecases.NewAssetCategoryUseCases(r.categoryRepo, r.assetRepo, checker, log),
		ticketCategories: categoryUsecases.NewTicketCategoryUseCases(r.ticketCategoryRepo, checker, c.txMgr, log),

		login: userUsecases.NewLoginUseCase(r.userRepo, c.hasher, c.jwtSvc, log),
		users: userUsecases.NewUserAdminUseCases(r.userRepo, c.hasher, checker, log),

		listEmployees: employeeUsecases.NewListEmployeesUseCase(c.directory, checker, log),

		printLogs: printlogUsecases.NewPrintLogUseCases(r.printLogRepo, checker, c.txMgr, log),
	}
}
