package asset

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/opsdesk-inc/opsdesk/internal/domain/asset/valueobjects"
)

// Assignment is the employee currently holding the asset. Employees live in the external
// HR directory, so the record is denormalized rather than a foreign key.
type Assignment struct {
	EmployeeID   string
	EmployeeName string
	Department   string
}

func (a *Assignment) employeeID() string {
	if a == nil {
		return ""
	}
	return strings.TrimSpace(a.EmployeeID)
}

type Asset struct {
	id           uint
	assetCode    string
	categoryID   *uint
	assetType    string
	model        string
	healthStatus vo.HealthStatus
	usageStatus  vo.UsageStatus
	purchaseDate *time.Time
	notes        string
	specs        map[string]any
	software     map[string]any
	monitor      map[string]any
	assignedTo   *Assignment
	createdAt    time.Time
	updatedAt    time.Time
}

// Spec groups the attributes supplied when registering an asset.
type Spec struct {
	AssetCode    string
	CategoryID   *uint
	Type         string
	Model        string
	HealthStatus vo.HealthStatus
	UsageStatus  vo.UsageStatus
	PurchaseDate *time.Time
	Notes        string
	Specs        map[string]any
	Software     map[string]any
	Monitor      map[string]any
	AssignedTo   *Assignment
}

func NewAsset(s Spec, now time.Time) (*Asset, error) {
	code := strings.TrimSpace(s.AssetCode)
	if code == "" {
		return nil, fmt.Errorf("asset code is required")
	}
	if s.HealthStatus == "" {
		s.HealthStatus = vo.HealthGood
	}
	if !s.HealthStatus.IsValid() {
		return nil, fmt.Errorf("invalid health status: %s", s.HealthStatus)
	}
	if s.UsageStatus == "" {
		s.UsageStatus = vo.UsageSpare
	}
	if !s.UsageStatus.IsValid() {
		return nil, fmt.Errorf("invalid usage status: %s", s.UsageStatus)
	}

	return &Asset{
		assetCode:    code,
		categoryID:   s.CategoryID,
		assetType:    s.Type,
		model:        s.Model,
		healthStatus: s.HealthStatus,
		usageStatus:  s.UsageStatus,
		purchaseDate: s.PurchaseDate,
		notes:        s.Notes,
		specs:        s.Specs,
		software:     s.Software,
		monitor:      s.Monitor,
		assignedTo:   s.AssignedTo,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructAsset(id uint, s Spec, createdAt, updatedAt time.Time) (*Asset, error) {
	if id == 0 {
		return nil, fmt.Errorf("asset ID cannot be zero")
	}
	return &Asset{
		id:           id,
		assetCode:    s.AssetCode,
		categoryID:   s.CategoryID,
		assetType:    s.Type,
		model:        s.Model,
		healthStatus: s.HealthStatus,
		usageStatus:  s.UsageStatus,
		purchaseDate: s.PurchaseDate,
		notes:        s.Notes,
		specs:        s.Specs,
		software:     s.Software,
		monitor:      s.Monitor,
		assignedTo:   s.AssignedTo,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (a *Asset) ID() uint {
	return a.id
}

func (a *Asset) AssetCode() string {
	return a.assetCode
}

func (a *Asset) CategoryID() *uint {
	return a.categoryID
}

func (a *Asset) Type() string {
	return a.assetType
}

func (a *Asset) Model() string {
	return a.model
}

func (a *Asset) HealthStatus() vo.HealthStatus {
	return a.healthStatus
}

func (a *Asset) UsageStatus() vo.UsageStatus {
	return a.usageStatus
}

func (a *Asset) PurchaseDate() *time.Time {
	return a.purchaseDate
}

func (a *Asset) Notes() string {
	return a.notes
}

func (a *Asset) Specs() map[string]any {
	return a.specs
}

func (a *Asset) Software() map[string]any {
	return a.software
}

func (a *Asset) Monitor() map[string]any {
	return a.monitor
}

func (a *Asset) AssignedTo() *Assignment {
	return a.assignedTo
}

func (a *Asset) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Asset) UpdatedAt() time.Time {
	return a.updatedAt
}

func (a *Asset) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("asset ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("asset ID cannot be zero")
	}
	a.id = id
	return nil
}

// AssignmentPatch distinguishes an absent assigned_to (Present false) from an explicit
// clear (Present true, Value nil).
type AssignmentPatch struct {
	Present bool
	Value   *Assignment
}

// Patch is a partial asset update; nil fields and an absent AssignedTo are untouched.
// A CategoryID pointing at 0 clears the category.
type Patch struct {
	AssetCode    *string
	CategoryID   *uint
	Type         *string
	Model        *string
	HealthStatus *vo.HealthStatus
	UsageStatus  *vo.UsageStatus
	PurchaseDate *time.Time
	Notes        *string
	Specs        map[string]any
	Software     map[string]any
	Monitor      map[string]any
	AssignedTo   AssignmentPatch
}

// Validate checks the patch values without touching the asset.
func (p Patch) Validate() error {
	if p.AssetCode != nil && strings.TrimSpace(*p.AssetCode) == "" {
		return fmt.Errorf("asset code cannot be empty")
	}
	if p.HealthStatus != nil && !p.HealthStatus.IsValid() {
		return fmt.Errorf("invalid health status: %s", *p.HealthStatus)
	}
	if p.UsageStatus != nil && !p.UsageStatus.IsValid() {
		return fmt.Errorf("invalid usage status: %s", *p.UsageStatus)
	}
	return nil
}

// Apply overwrites the fields present in p.
func (a *Asset) Apply(p Patch, now time.Time) error {
	if err := p.Validate(); err != nil {
		return err
	}

	if p.AssetCode != nil {
		a.assetCode = strings.TrimSpace(*p.AssetCode)
	}
	if p.CategoryID != nil {
		if *p.CategoryID == 0 {
			a.categoryID = nil
		} else {
			id := *p.CategoryID
			a.categoryID = &id
		}
	}
	if p.Type != nil {
		a.assetType = *p.Type
	}
	if p.Model != nil {
		a.model = *p.Model
	}
	if p.HealthStatus != nil {
		a.healthStatus = *p.HealthStatus
	}
	if p.UsageStatus != nil {
		a.usageStatus = *p.UsageStatus
	}
	if p.PurchaseDate != nil {
		d := *p.PurchaseDate
		a.purchaseDate = &d
	}
	if p.Notes != nil {
		a.notes = *p.Notes
	}
	if p.Specs != nil {
		a.specs = p.Specs
	}
	if p.Software != nil {
		a.software = p.Software
	}
	if p.Monitor != nil {
		a.monitor = p.Monitor
	}
	if p.AssignedTo.Present {
		a.assignedTo = p.AssignedTo.Value
	}

	a.updatedAt = now
	return nil
}
