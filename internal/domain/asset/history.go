package asset

import (
	"fmt"
	"strings"
	"time"
)

const (
	ActionPurchase     = "purchase"
	ActionAssign       = "assign"
	ActionCheckin      = "checkin"
	ActionStatusChange = "status_change"
	ActionBroken       = "broken"
)

const (
	// PerformerSystem labels rows written automatically on create and update.
	PerformerSystem = "System"
	// PerformerDefaultManual labels manual rows that name no performer.
	PerformerDefaultManual = "IT Admin"
)

const purchaseDescription = "New asset created in system"

// HistoryEntry is one audit event in an asset's life.
type HistoryEntry struct {
	id          uint
	assetID     uint
	date        time.Time
	actionType  string
	description string
	performedBy string
}

func NewHistoryEntry(assetID uint, date time.Time, actionType, description, performedBy string) (*HistoryEntry, error) {
	if assetID == 0 {
		return nil, fmt.Errorf("asset ID is required")
	}
	actionType = strings.TrimSpace(actionType)
	if actionType == "" {
		return nil, fmt.Errorf("action type is required")
	}
	if strings.TrimSpace(performedBy) == "" {
		performedBy = PerformerDefaultManual
	}
	return &HistoryEntry{
		assetID:     assetID,
		date:        date,
		actionType:  actionType,
		description: description,
		performedBy: performedBy,
	}, nil
}

// NewPurchaseEntry records the registration of a new asset, dated to its purchase date
// when known.
func NewPurchaseEntry(a *Asset, today time.Time) (*HistoryEntry, error) {
	date := today
	if a.PurchaseDate() != nil {
		date = *a.PurchaseDate()
	}
	return NewHistoryEntry(a.ID(), date, ActionPurchase, purchaseDescription, PerformerSystem)
}

func ReconstructHistoryEntry(id, assetID uint, date time.Time, actionType, description, performedBy string) *HistoryEntry {
	return &HistoryEntry{
		id:          id,
		assetID:     assetID,
		date:        date,
		actionType:  actionType,
		description: description,
		performedBy: performedBy,
	}
}

func (h *HistoryEntry) ID() uint {
	return h.id
}

func (h *HistoryEntry) AssetID() uint {
	return h.assetID
}

func (h *HistoryEntry) Date() time.Time {
	return h.date
}

func (h *HistoryEntry) ActionType() string {
	return h.actionType
}

func (h *HistoryEntry) Description() string {
	return h.description
}

func (h *HistoryEntry) PerformedBy() string {
	return h.performedBy
}

func (h *HistoryEntry) SetID(id uint) error {
	if h.id != 0 {
		return fmt.Errorf("history entry ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("history entry ID cannot be zero")
	}
	h.id = id
	return nil
}

// HistoryCorrection edits a manual entry; nil fields are kept.
type HistoryCorrection struct {
	Date        *time.Time
	ActionType  *string
	Description *string
	PerformedBy *string
}

func (h *HistoryEntry) Correct(c HistoryCorrection) error {
	if c.ActionType != nil && strings.TrimSpace(*c.ActionType) == "" {
		return fmt.Errorf("action type cannot be empty")
	}
	if c.Date != nil {
		h.date = *c.Date
	}
	if c.ActionType != nil {
		h.actionType = strings.TrimSpace(*c.ActionType)
	}
	if c.Description != nil {
		h.description = *c.Description
	}
	if c.PerformedBy != nil {
		h.performedBy = *c.PerformedBy
	}
	return nil
}
