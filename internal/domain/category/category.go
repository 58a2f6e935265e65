package category

import (
	"fmt"
	"strings"
	"time"
)

// Category classifies assets.
type Category struct {
	id          uint
	name        string
	code        string
	description string
}

func NewCategory(name, code, description string) (*Category, error) {
	c := &Category{}
	if err := c.Rename(name, code, description); err != nil {
		return nil, err
	}
	return c, nil
}

func ReconstructCategory(id uint, name, code, description string) *Category {
	return &Category{id: id, name: name, code: code, description: description}
}

func (c *Category) ID() uint {
	return c.id
}

func (c *Category) Name() string {
	return c.name
}

func (c *Category) Code() string {
	return c.code
}

func (c *Category) Description() string {
	return c.description
}

func (c *Category) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("category ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("category ID cannot be zero")
	}
	c.id = id
	return nil
}

// Rename replaces every attribute of the category.
func (c *Category) Rename(name, code, description string) error {
	name, code, err := normalizeNameCode(name, code)
	if err != nil {
		return err
	}
	c.name = name
	c.code = code
	c.description = description
	return nil
}

const DefaultSLAHours = 24

// TicketCategory classifies tickets and carries the advisory SLA.
type TicketCategory struct {
	id          uint
	name        string
	code        string
	description string
	slaHours    int
	isActive    bool
	createdAt   time.Time
}

func NewTicketCategory(name, code, description string, slaHours *int, isActive *bool, now time.Time) (*TicketCategory, error) {
	name, code, err := normalizeNameCode(name, code)
	if err != nil {
		return nil, err
	}
	tc := &TicketCategory{
		name:        name,
		code:        code,
		description: description,
		slaHours:    DefaultSLAHours,
		isActive:    true,
		createdAt:   now,
	}
	if slaHours != nil {
		if *slaHours <= 0 {
			return nil, fmt.Errorf("sla_hours must be positive")
		}
		tc.slaHours = *slaHours
	}
	if isActive != nil {
		tc.isActive = *isActive
	}
	return tc, nil
}

func ReconstructTicketCategory(id uint, name, code, description string, slaHours int, isActive bool, createdAt time.Time) *TicketCategory {
	return &TicketCategory{
		id:          id,
		name:        name,
		code:        code,
		description: description,
		slaHours:    slaHours,
		isActive:    isActive,
		createdAt:   createdAt,
	}
}

func (tc *TicketCategory) ID() uint {
	return tc.id
}

func (tc *TicketCategory) Name() string {
	return tc.name
}

func (tc *TicketCategory) Code() string {
	return tc.code
}

func (tc *TicketCategory) Description() string {
	return tc.description
}

func (tc *TicketCategory) SLAHours() int {
	return tc.slaHours
}

func (tc *TicketCategory) IsActive() bool {
	return tc.isActive
}

func (tc *TicketCategory) CreatedAt() time.Time {
	return tc.createdAt
}

func (tc *TicketCategory) SetID(id uint) error {
	if tc.id != 0 {
		return fmt.Errorf("ticket category ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket category ID cannot be zero")
	}
	tc.id = id
	return nil
}

// TicketCategoryPatch is a partial update; nil fields are kept.
type TicketCategoryPatch struct {
	Name        *string
	Code        *string
	Description *string
	SLAHours    *int
	IsActive    *bool
}

func (tc *TicketCategory) Apply(p TicketCategoryPatch) error {
	name, code := tc.name, tc.code
	if p.Name != nil {
		name = *p.Name
	}
	if p.Code != nil {
		code = *p.Code
	}
	name, code, err := normalizeNameCode(name, code)
	if err != nil {
		return err
	}
	if p.SLAHours != nil && *p.SLAHours <= 0 {
		return fmt.Errorf("sla_hours must be positive")
	}

	tc.name = name
	tc.code = code
	if p.Description != nil {
		tc.description = *p.Description
	}
	if p.SLAHours != nil {
		tc.slaHours = *p.SLAHours
	}
	if p.IsActive != nil {
		tc.isActive = *p.IsActive
	}
	return nil
}

// Archive hides the category from new tickets while keeping it for existing ones.
func (tc *TicketCategory) Archive() {
	tc.isActive = false
}

func normalizeNameCode(name, code string) (string, string, error) {
	name = strings.TrimSpace(name)
	code = strings.TrimSpace(code)
	if name == "" {
		return "", "", fmt.Errorf("name is required")
	}
	if code == "" {
		return "", "", fmt.Errorf("code is required")
	}
	return name, code, nil
}
