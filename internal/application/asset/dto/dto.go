package dto

import (
	"time"

	"github.com/opsdesk-inc/opsdesk/internal/domain/asset"
	"github.com/opsdesk-inc/opsdesk/internal/shared/biztime"
)

type AssignmentDTO struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Department   string `json:"department"`
}

type AssetDTO struct {
	ID           uint           `json:"id"`
	AssetCode    string         `json:"asset_code"`
	CategoryID   *uint          `json:"category_id"`
	Type         string         `json:"type"`
	Model        string         `json:"model"`
	HealthStatus string         `json:"health_status"`
	UsageStatus  string         `json:"usage_status"`
	PurchaseDate *string        `json:"purchase_date"`
	Notes        string         `json:"notes"`
	Specs        map[string]any `json:"specs"`
	Software     map[string]any `json:"software"`
	Monitor      map[string]any `json:"monitor"`
	AssignedTo   *AssignmentDTO `json:"assigned_to"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

type HistoryDTO struct {
	ID          uint   `json:"id"`
	AssetID     uint   `json:"asset_id"`
	Date        string `json:"date"`
	ActionType  string `json:"action_type"`
	Description string `json:"description"`
	PerformedBy string `json:"performed_by"`
}

func (a *AssignmentDTO) ToDomain() *asset.Assignment {
	if a == nil {
		return nil
	}
	return &asset.Assignment{
		EmployeeID:   a.EmployeeID,
		EmployeeName: a.EmployeeName,
		Department:   a.Department,
	}
}

func ToAssetDTO(a *asset.Asset) *AssetDTO {
	if a == nil {
		return nil
	}
	result := &AssetDTO{
		ID:           a.ID(),
		AssetCode:    a.AssetCode(),
		CategoryID:   a.CategoryID(),
		Type:         a.Type(),
		Model:        a.Model(),
		HealthStatus: a.HealthStatus().String(),
		UsageStatus:  a.UsageStatus().String(),
		Notes:        a.Notes(),
		Specs:        a.Specs(),
		Software:     a.Software(),
		Monitor:      a.Monitor(),
		CreatedAt:    a.CreatedAt(),
		UpdatedAt:    a.UpdatedAt(),
	}
	if a.PurchaseDate() != nil {
		d := a.PurchaseDate().Format(biztime.DateLayout)
		result.PurchaseDate = &d
	}
	if as := a.AssignedTo(); as != nil {
		result.AssignedTo = &AssignmentDTO{
			EmployeeID:   as.EmployeeID,
			EmployeeName: as.EmployeeName,
			Department:   as.Department,
		}
	}
	return result
}

func ToAssetDTOs(assets []*asset.Asset) []*AssetDTO {
	out := make([]*AssetDTO, 0, len(assets))
	for _, a := range assets {
		out = append(out, ToAssetDTO(a))
	}
	return out
}

func ToHistoryDTO(h *asset.HistoryEntry) *HistoryDTO {
	return &HistoryDTO{
		ID:          h.ID(),
		AssetID:     h.AssetID(),
		Date:        h.Date().Format(biztime.DateLayout),
		ActionType:  h.ActionType(),
		Description: h.Description(),
		PerformedBy: h.PerformedBy(),
	}
}

func ToHistoryDTOs(entries []*asset.HistoryEntry) []*HistoryDTO {
	out := make([]*HistoryDTO, 0, len(entries))
	for _, h := range entries {
		out = append(out, ToHistoryDTO(h))
	}
	return out
}
