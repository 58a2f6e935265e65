package valueobjects

import (
	"fmt"
	"strconv"
)

// Priority is an ordinal from Low (1) to Critical (4).
type Priority int

const (
	PriorityLow      Priority = 1
	PriorityMedium   Priority = 2
	PriorityHigh     Priority = 3
	PriorityCritical Priority = 4
)

const DefaultPriority = PriorityMedium

var priorityLabels = map[Priority]string{
	PriorityLow:      "Low",
	PriorityMedium:   "Medium",
	PriorityHigh:     "High",
	PriorityCritical: "Critical",
}

func (p Priority) Int() int {
	return int(p)
}

func (p Priority) IsValid() bool {
	_, ok := priorityLabels[p]
	return ok
}

func (p Priority) IsCritical() bool {
	return p == PriorityCritical
}

// Label returns the display name, or the bare number for out-of-range values.
func (p Priority) Label() string {
	if label, ok := priorityLabels[p]; ok {
		return label
	}
	return strconv.Itoa(int(p))
}

func (p Priority) String() string {
	return p.Label()
}

func NewPriority(v int) (Priority, error) {
	p := Priority(v)
	if !p.IsValid() {
		return 0, fmt.Errorf("invalid priority: %d (must be between 1 and 4)", v)
	}
	return p, nil
}

// ParsePriority accepts either the ordinal ("4") or the label ("Critical").
func ParsePriority(s string) (Priority, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return NewPriority(n)
	}
	for p, label := range priorityLabels {
		if label == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("invalid priority: %s", s)
}
