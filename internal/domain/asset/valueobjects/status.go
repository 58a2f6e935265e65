package valueobjects

import "fmt"

type HealthStatus string

const (
	HealthGood     HealthStatus = "Good"
	HealthFair     HealthStatus = "Fair"
	HealthCritical HealthStatus = "Critical"
)

func (h HealthStatus) String() string {
	return string(h)
}

func (h HealthStatus) IsValid() bool {
	switch h {
	case HealthGood, HealthFair, HealthCritical:
		return true
	}
	return false
}

func (h HealthStatus) IsCritical() bool {
	return h == HealthCritical
}

// NewHealthStatus defaults an empty value to Good.
func NewHealthStatus(s string) (HealthStatus, error) {
	if s == "" {
		return HealthGood, nil
	}
	h := HealthStatus(s)
	if !h.IsValid() {
		return "", fmt.Errorf("invalid health status: %s", s)
	}
	return h, nil
}

type UsageStatus string

const (
	UsageInUse  UsageStatus = "In Use"
	UsageSpare  UsageStatus = "Spare"
	UsageBroken UsageStatus = "Broken"
)

func (u UsageStatus) String() string {
	return string(u)
}

func (u UsageStatus) IsValid() bool {
	switch u {
	case UsageInUse, UsageSpare, UsageBroken:
		return true
	}
	return false
}

// NewUsageStatus defaults an empty value to Spare.
func NewUsageStatus(s string) (UsageStatus, error) {
	if s == "" {
		return UsageSpare, nil
	}
	u := UsageStatus(s)
	if !u.IsValid() {
		return "", fmt.Errorf("invalid usage status: %s", s)
	}
	return u, nil
}
