package asset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/opsdesk-inc/opsdesk/internal/domain/asset/valueobjects"
)

var today = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func spareLaptop(t *testing.T, assigned *Assignment) *Asset {
	t.Helper()
	a, err := ReconstructAsset(5, Spec{
		AssetCode:    "LT-005",
		Type:         "Laptop",
		HealthStatus: vo.HealthGood,
		UsageStatus:  vo.UsageSpare,
		AssignedTo:   assigned,
	}, today, today)
	require.NoError(t, err)
	return a
}

func usage(u vo.UsageStatus) *vo.UsageStatus {
	return &u
}

func health(h vo.HealthStatus) *vo.HealthStatus {
	return &h
}

func actions(events []HistoryEvent) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.ActionType)
	}
	return out
}

func TestComputeHistoryEvents(t *testing.T) {
	alice := &Assignment{EmployeeID: "E001", EmployeeName: "Alice Tran", Department: "Finance"}
	bob := &Assignment{EmployeeID: "E002", EmployeeName: "Bob Le", Department: "Sales"}

	tests := []struct {
		name        string
		current     *Assignment
		patch       Patch
		wantActions []string
		wantDescs   []string
	}{
		{
			name:        "no changes",
			patch:       Patch{UsageStatus: usage(vo.UsageSpare), HealthStatus: health(vo.HealthGood)},
			wantActions: []string{},
		},
		{
			name:        "empty patch compares nothing",
			current:     alice,
			patch:       Patch{},
			wantActions: []string{},
		},
		{
			name: "assign and put in use",
			patch: Patch{
				UsageStatus: usage(vo.UsageInUse),
				AssignedTo:  AssignmentPatch{Present: true, Value: alice},
			},
			wantActions: []string{ActionAssign, ActionStatusChange},
			wantDescs:   []string{"Handover to: Alice Tran", "Status: Spare -> In Use"},
		},
		{
			name: "assign, in use and critical",
			patch: Patch{
				UsageStatus:  usage(vo.UsageInUse),
				HealthStatus: health(vo.HealthCritical),
				AssignedTo:   AssignmentPatch{Present: true, Value: alice},
			},
			wantActions: []string{ActionAssign, ActionStatusChange, ActionBroken},
			wantDescs:   []string{"Handover to: Alice Tran", "Status: Spare -> In Use", "Reported Critical"},
		},
		{
			name:        "cleared occupant is checkin",
			current:     alice,
			patch:       Patch{AssignedTo: AssignmentPatch{Present: true}},
			wantActions: []string{ActionCheckin},
			wantDescs:   []string{"Returned to Stock"},
		},
		{
			name:        "blank employee id counts as cleared",
			current:     alice,
			patch:       Patch{AssignedTo: AssignmentPatch{Present: true, Value: &Assignment{}}},
			wantActions: []string{ActionCheckin},
		},
		{
			name:        "handover between employees",
			current:     alice,
			patch:       Patch{AssignedTo: AssignmentPatch{Present: true, Value: bob}},
			wantActions: []string{ActionAssign},
			wantDescs:   []string{"Handover to: Bob Le"},
		},
		{
			name:        "same occupant re-sent",
			current:     alice,
			patch:       Patch{AssignedTo: AssignmentPatch{Present: true, Value: &Assignment{EmployeeID: "E001", EmployeeName: "Alice T."}}},
			wantActions: []string{},
		},
		{
			name:        "health to fair is not broken",
			patch:       Patch{HealthStatus: health(vo.HealthFair)},
			wantActions: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := ComputeHistoryEvents(spareLaptop(t, tt.current), tt.patch, today)

			assert.Equal(t, tt.wantActions, actions(events))
			for i, want := range tt.wantDescs {
				assert.Equal(t, want, events[i].Description)
			}
			for _, e := range events {
				assert.Equal(t, today, e.Date)
			}
		})
	}
}

func TestComputeHistoryEvents_CriticalAlreadyStored(t *testing.T) {
	a, err := ReconstructAsset(5, Spec{AssetCode: "LT-005", HealthStatus: vo.HealthCritical, UsageStatus: vo.UsageBroken}, today, today)
	require.NoError(t, err)

	events := ComputeHistoryEvents(a, Patch{HealthStatus: health(vo.HealthCritical)}, today)
	assert.Empty(t, events)
}

func TestEntries_AreSystemPerformed(t *testing.T) {
	entries, err := Entries(5, []HistoryEvent{{Date: today, ActionType: ActionBroken, Description: "Reported Critical"}})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, PerformerSystem, entries[0].PerformedBy())
	assert.Equal(t, uint(5), entries[0].AssetID())
}
