package asset

import (
	assetdto "github.com/opsdesk-inc/opsdesk/internal/application/asset/dto"
	"github.com/opsdesk-inc/opsdesk/internal/application/asset/usecases"
	"github.com/opsdesk-inc/opsdesk/internal/domain/policy"
)

type CreateAssetRequest struct {
	AssetCode    string                  `json:"asset_code" binding:"required,max=64"`
	CategoryID   *uint                   `json:"category_id"`
	Type         string                  `json:"type" binding:"max=64"`
	Model        string                  `json:"model" binding:"max=255"`
	HealthStatus string                  `json:"health_status" binding:"omitempty,health_status"`
	UsageStatus  string                  `json:"usage_status" binding:"omitempty,usage_status"`
	PurchaseDate *string                 `json:"purchase_date"`
	Notes        string                  `json:"notes"`
	Specs        map[string]any          `json:"specs"`
	Software     map[string]any          `json:"software"`
	Monitor      map[string]any          `json:"monitor"`
	AssignedTo   *assetdto.AssignmentDTO `json:"assigned_to"`
}

func (r *CreateAssetRequest) ToCommand(principal policy.Principal) usecases.CreateAssetCommand {
	return usecases.CreateAssetCommand{
		Principal:    principal,
		AssetCode:    r.AssetCode,
		CategoryID:   r.CategoryID,
		Type:         r.Type,
		Model:        r.Model,
		HealthStatus: r.HealthStatus,
		UsageStatus:  r.UsageStatus,
		PurchaseDate: r.PurchaseDate,
		Notes:        r.Notes,
		Specs:        r.Specs,
		Software:     r.Software,
		Monitor:      r.Monitor,
		AssignedTo:   r.AssignedTo,
	}
}

// UpdateAssetRequest is a partial update; absent fields are left untouched.
type UpdateAssetRequest struct {
	AssetCode    *string                 `json:"asset_code" binding:"omitempty,min=1,max=64"`
	CategoryID   *uint                   `json:"category_id"`
	Type         *string                 `json:"type" binding:"omitempty,max=64"`
	Model        *string                 `json:"model" binding:"omitempty,max=255"`
	HealthStatus *string                 `json:"health_status" binding:"omitempty,health_status"`
	UsageStatus  *string                 `json:"usage_status" binding:"omitempty,usage_status"`
	PurchaseDate *string                 `json:"purchase_date"`
	Notes        *string                 `json:"notes"`
	Specs        map[string]any          `json:"specs"`
	Software     map[string]any          `json:"software"`
	Monitor      map[string]any          `json:"monitor"`
	AssignedTo   *assetdto.AssignmentDTO `json:"assigned_to"`
}

// ToCommand needs assignedToSet because JSON null and an absent key both decode to nil.
func (r *UpdateAssetRequest) ToCommand(assetID uint, principal policy.Principal, assignedToSet bool) usecases.UpdateAssetCommand {
	return usecases.UpdateAssetCommand{
		Principal:     principal,
		AssetID:       assetID,
		AssetCode:     r.AssetCode,
		CategoryID:    r.CategoryID,
		Type:          r.Type,
		Model:         r.Model,
		HealthStatus:  r.HealthStatus,
		UsageStatus:   r.UsageStatus,
		PurchaseDate:  r.PurchaseDate,
		Notes:         r.Notes,
		Specs:         r.Specs,
		Software:      r.Software,
		Monitor:       r.Monitor,
		AssignedToSet: assignedToSet,
		AssignedTo:    r.AssignedTo,
	}
}

type AddHistoryRequest struct {
	Date        string `json:"date"`
	ActionType  string `json:"action_type" binding:"required,max=64"`
	Description string `json:"description"`
	PerformedBy string `json:"performed_by" binding:"max=128"`
}

type UpdateHistoryRequest struct {
	Date        *string `json:"date"`
	ActionType  *string `json:"action_type" binding:"omitempty,min=1,max=64"`
	Description *string `json:"description"`
	PerformedBy *string `json:"performed_by" binding:"omitempty,max=128"`
}
