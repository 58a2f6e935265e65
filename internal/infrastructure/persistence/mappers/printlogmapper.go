package mappers

import (
	"github.com/opsdesk-inc/opsdesk/internal/domain/printlog"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/persistence/models"
)

func CardPrintToModel(p *printlog.CardPrint) *models.PrintLogModel {
	return &models.PrintLogModel{
		ID:           p.ID(),
		EmployeeID:   p.EmployeeID(),
		EmployeeName: p.EmployeeName(),
		Department:   p.Department(),
		JobTitle:     p.JobTitle(),
		Reason:       p.Reason(),
		PrintedBy:    p.PrintedBy(),
		PrintedAt:    p.PrintedAt(),
	}
}

func ToolPrintToModel(p *printlog.ToolPrint) *models.ToolPrintLogModel {
	return &models.ToolPrintLogModel{
		ID:           p.ID(),
		CardType:     p.CardType(),
		SerialNumber: p.SerialNumber(),
		Orientation:  p.Orientation(),
		Quantity:     p.Quantity(),
		PrintedBy:    p.PrintedBy(),
		PrintedAt:    p.PrintedAt(),
	}
}
