package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"github.com/opsdesk-inc/opsdesk/internal/domain/asset"
	vo "github.com/opsdesk-inc/opsdesk/internal/domain/asset/valueobjects"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/persistence/models"
)

// AssetMapper converts assets and their history rows.
type AssetMapper interface {
	ToModel(a *asset.Asset) (*models.AssetModel, error)
	ToDomain(model *models.AssetModel) (*asset.Asset, error)
	HistoryToModel(h *asset.HistoryEntry) *models.AssetHistoryModel
	HistoryToDomain(model *models.AssetHistoryModel) *asset.HistoryEntry
}

type AssetMapperImpl struct{}

func NewAssetMapper() AssetMapper {
	return &AssetMapperImpl{}
}

type assignmentJSON struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Department   string `json:"department"`
}

func (m *AssetMapperImpl) ToModel(a *asset.Asset) (*models.AssetModel, error) {
	model := &models.AssetModel{
		ID:           a.ID(),
		AssetCode:    a.AssetCode(),
		CategoryID:   a.CategoryID(),
		Type:         a.Type(),
		Model:        a.Model(),
		HealthStatus: a.HealthStatus().String(),
		UsageStatus:  a.UsageStatus().String(),
		Notes:        a.Notes(),
		CreatedAt:    a.CreatedAt(),
		UpdatedAt:    a.UpdatedAt(),
	}

	if a.PurchaseDate() != nil {
		d := datatypes.Date(*a.PurchaseDate())
		model.PurchaseDate = &d
	}

	var err error
	if model.Specs, err = marshalDocument(a.Specs()); err != nil {
		return nil, fmt.Errorf("failed to marshal asset specs (id=%d): %w", a.ID(), err)
	}
	if model.Software, err = marshalDocument(a.Software()); err != nil {
		return nil, fmt.Errorf("failed to marshal asset software (id=%d): %w", a.ID(), err)
	}
	if model.Monitor, err = marshalDocument(a.Monitor()); err != nil {
		return nil, fmt.Errorf("failed to marshal asset monitor (id=%d): %w", a.ID(), err)
	}
	if holder := a.AssignedTo(); holder != nil {
		raw, err := json.Marshal(assignmentJSON{
			EmployeeID:   holder.EmployeeID,
			EmployeeName: holder.EmployeeName,
			Department:   holder.Department,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to marshal asset assignment (id=%d): %w", a.ID(), err)
		}
		model.AssignedTo = raw
	}

	return model, nil
}

func (m *AssetMapperImpl) ToDomain(model *models.AssetModel) (*asset.Asset, error) {
	spec := asset.Spec{
		AssetCode:    model.AssetCode,
		CategoryID:   model.CategoryID,
		Type:         model.Type,
		Model:        model.Model,
		HealthStatus: vo.HealthStatus(model.HealthStatus),
		UsageStatus:  vo.UsageStatus(model.UsageStatus),
		Notes:        model.Notes,
	}

	if model.PurchaseDate != nil {
		d := dateOnly(time.Time(*model.PurchaseDate))
		spec.PurchaseDate = &d
	}

	var err error
	if spec.Specs, err = unmarshalDocument(model.Specs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal asset specs (id=%d): %w", model.ID, err)
	}
	if spec.Software, err = unmarshalDocument(model.Software); err != nil {
		return nil, fmt.Errorf("failed to unmarshal asset software (id=%d): %w", model.ID, err)
	}
	if spec.Monitor, err = unmarshalDocument(model.Monitor); err != nil {
		return nil, fmt.Errorf("failed to unmarshal asset monitor (id=%d): %w", model.ID, err)
	}
	if len(model.AssignedTo) > 0 && string(model.AssignedTo) != "null" {
		var holder assignmentJSON
		if err := json.Unmarshal(model.AssignedTo, &holder); err != nil {
			return nil, fmt.Errorf("failed to unmarshal asset assignment (id=%d): %w", model.ID, err)
		}
		spec.AssignedTo = &asset.Assignment{
			EmployeeID:   holder.EmployeeID,
			EmployeeName: holder.EmployeeName,
			Department:   holder.Department,
		}
	}

	return asset.ReconstructAsset(model.ID, spec, model.CreatedAt.UTC(), model.UpdatedAt.UTC())
}

func (m *AssetMapperImpl) HistoryToModel(h *asset.HistoryEntry) *models.AssetHistoryModel {
	return &models.AssetHistoryModel{
		ID:          h.ID(),
		AssetID:     h.AssetID(),
		Date:        datatypes.Date(h.Date()),
		ActionType:  h.ActionType(),
		Description: h.Description(),
		PerformedBy: h.PerformedBy(),
	}
}

func (m *AssetMapperImpl) HistoryToDomain(model *models.AssetHistoryModel) *asset.HistoryEntry {
	return asset.ReconstructHistoryEntry(
		model.ID,
		model.AssetID,
		dateOnly(time.Time(model.Date)),
		model.ActionType,
		model.Description,
		model.PerformedBy,
	)
}

func marshalDocument(doc map[string]any) (datatypes.JSON, error) {
	if doc == nil {
		return nil, nil
	}
	return json.Marshal(doc)
}

func unmarshalDocument(raw datatypes.JSON) (map[string]any, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// dateOnly drops the clock and zone that drivers attach to DATE columns.
func dateOnly(t time.Time) time.Time {
	y, mo, d := t.Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
}
