// Package printlog records ID-card print runs for audit and monthly reporting.
package printlog

import (
	"fmt"
	"strings"
	"time"
)

const (
	DefaultReason      = "New Issue"
	DefaultOrientation = "portrait"
)

// CardPrint is one employee ID card sent to the printer. Employee fields are
// copied at print time; there is no link to the HR directory row.
type CardPrint struct {
	id           uint
	employeeID   string
	employeeName string
	department   string
	jobTitle     string
	reason       string
	printedBy    string
	printedAt    time.Time
}

// NewCardPrint validates a card print. An empty reason falls back to DefaultReason.
func NewCardPrint(employeeID, employeeName, department, jobTitle, reason, printedBy string, printedAt time.Time) (*CardPrint, error) {
	employeeID = strings.TrimSpace(employeeID)
	if employeeID == "" {
		return nil, fmt.Errorf("employee id is required")
	}
	employeeName = strings.TrimSpace(employeeName)
	if employeeName == "" {
		return nil, fmt.Errorf("employee name is required for %s", employeeID)
	}
	if printedBy == "" {
		return nil, fmt.Errorf("printed by is required")
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = DefaultReason
	}
	return &CardPrint{
		employeeID:   employeeID,
		employeeName: employeeName,
		department:   strings.TrimSpace(department),
		jobTitle:     strings.TrimSpace(jobTitle),
		reason:       reason,
		printedBy:    printedBy,
		printedAt:    printedAt,
	}, nil
}

func (p *CardPrint) ID() uint             { return p.id }
func (p *CardPrint) EmployeeID() string   { return p.employeeID }
func (p *CardPrint) EmployeeName() string { return p.employeeName }
func (p *CardPrint) Department() string   { return p.department }
func (p *CardPrint) JobTitle() string     { return p.jobTitle }
func (p *CardPrint) Reason() string       { return p.reason }
func (p *CardPrint) PrintedBy() string    { return p.printedBy }
func (p *CardPrint) PrintedAt() time.Time { return p.printedAt }

func (p *CardPrint) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("card print ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("card print ID cannot be zero")
	}
	p.id = id
	return nil
}

// ToolPrint is a batch of non-employee cards (visitor, contractor, card backs).
type ToolPrint struct {
	id           uint
	cardType     string
	serialNumber string
	orientation  string
	quantity     int
	printedBy    string
	printedAt    time.Time
}

func NewToolPrint(cardType, serialNumber, orientation string, quantity int, printedBy string, printedAt time.Time) (*ToolPrint, error) {
	cardType = strings.TrimSpace(cardType)
	if cardType == "" {
		return nil, fmt.Errorf("card type is required")
	}
	if quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1")
	}
	if printedBy == "" {
		return nil, fmt.Errorf("printed by is required")
	}
	orientation = strings.ToLower(strings.TrimSpace(orientation))
	switch orientation {
	case "":
		orientation = DefaultOrientation
	case "portrait", "landscape":
	default:
		return nil, fmt.Errorf("invalid orientation: %s", orientation)
	}
	serialNumber = strings.TrimSpace(serialNumber)
	if serialNumber == "" {
		serialNumber = "N/A"
	}
	return &ToolPrint{
		cardType:     cardType,
		serialNumber: serialNumber,
		orientation:  orientation,
		quantity:     quantity,
		printedBy:    printedBy,
		printedAt:    printedAt,
	}, nil
}

func (p *ToolPrint) ID() uint             { return p.id }
func (p *ToolPrint) CardType() string     { return p.cardType }
func (p *ToolPrint) SerialNumber() string { return p.serialNumber }
func (p *ToolPrint) Orientation() string  { return p.orientation }
func (p *ToolPrint) Quantity() int        { return p.quantity }
func (p *ToolPrint) PrintedBy() string    { return p.printedBy }
func (p *ToolPrint) PrintedAt() time.Time { return p.printedAt }

func (p *ToolPrint) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("tool print ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("tool print ID cannot be zero")
	}
	p.id = id
	return nil
}
