package asset

import (
	"fmt"
	"time"
)

// HistoryEvent is an audit row derived from an asset update, before it is bound to
// storage.
type HistoryEvent struct {
	Date        time.Time
	ActionType  string
	Description string
}

// ComputeHistoryEvents diffs the stored asset against a patch. Each rule fires
// independently, in this order:
//   - occupant employee changes: assign (new occupant) or checkin (cleared)
//   - usage status changes: status_change
//   - health status becomes Critical: broken
//
// Fields absent from the patch are not compared.
func ComputeHistoryEvents(old *Asset, patch Patch, date time.Time) []HistoryEvent {
	var events []HistoryEvent

	if patch.AssignedTo.Present {
		oldID := old.AssignedTo().employeeID()
		newID := patch.AssignedTo.Value.employeeID()
		if oldID != newID {
			if newID != "" {
				events = append(events, HistoryEvent{
					Date:        date,
					ActionType:  ActionAssign,
					Description: fmt.Sprintf("Handover to: %s", patch.AssignedTo.Value.EmployeeName),
				})
			} else {
				events = append(events, HistoryEvent{
					Date:        date,
					ActionType:  ActionCheckin,
					Description: "Returned to Stock",
				})
			}
		}
	}

	if patch.UsageStatus != nil && *patch.UsageStatus != old.UsageStatus() {
		events = append(events, HistoryEvent{
			Date:        date,
			ActionType:  ActionStatusChange,
			Description: fmt.Sprintf("Status: %s -> %s", old.UsageStatus(), *patch.UsageStatus),
		})
	}

	if patch.HealthStatus != nil && patch.HealthStatus.IsCritical() && *patch.HealthStatus != old.HealthStatus() {
		events = append(events, HistoryEvent{
			Date:        date,
			ActionType:  ActionBroken,
			Description: "Reported Critical",
		})
	}

	return events
}

// Entries binds events to the asset as System-performed history rows.
func Entries(assetID uint, events []HistoryEvent) ([]*HistoryEntry, error) {
	entries := make([]*HistoryEntry, 0, len(events))
	for _, e := range events {
		entry, err := NewHistoryEntry(assetID, e.Date, e.ActionType, e.Description, PerformerSystem)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
