package asset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/opsdesk-inc/opsdesk/internal/domain/asset/valueobjects"
)

func TestNewAsset_Defaults(t *testing.T) {
	a, err := NewAsset(Spec{AssetCode: "  PC-001 "}, today)
	require.NoError(t, err)

	assert.Equal(t, "PC-001", a.AssetCode())
	assert.Equal(t, vo.HealthGood, a.HealthStatus())
	assert.Equal(t, vo.UsageSpare, a.UsageStatus())
}

func TestNewAsset_Invalid(t *testing.T) {
	_, err := NewAsset(Spec{AssetCode: " "}, today)
	assert.Error(t, err)

	_, err = NewAsset(Spec{AssetCode: "PC-1", UsageStatus: "Lost"}, today)
	assert.Error(t, err)
}

func TestApply_OnlyPresentFields(t *testing.T) {
	a := spareLaptop(t, &Assignment{EmployeeID: "E001", EmployeeName: "Alice"})
	model := "ThinkPad X1"
	later := today.Add(time.Hour)

	require.NoError(t, a.Apply(Patch{Model: &model}, later))

	assert.Equal(t, "ThinkPad X1", a.Model())
	assert.Equal(t, "Laptop", a.Type())
	require.NotNil(t, a.AssignedTo())
	assert.Equal(t, "E001", a.AssignedTo().EmployeeID)
	assert.Equal(t, later, a.UpdatedAt())
}

func TestApply_ClearAssignmentAndCategory(t *testing.T) {
	cat := uint(2)
	a, err := ReconstructAsset(5, Spec{AssetCode: "LT-5", CategoryID: &cat, AssignedTo: &Assignment{EmployeeID: "E1"}}, today, today)
	require.NoError(t, err)
	zero := uint(0)

	require.NoError(t, a.Apply(Patch{CategoryID: &zero, AssignedTo: AssignmentPatch{Present: true}}, today))
	assert.Nil(t, a.CategoryID())
	assert.Nil(t, a.AssignedTo())
}

func TestApply_InvalidLeavesAssetUntouched(t *testing.T) {
	a := spareLaptop(t, nil)
	bad := vo.UsageStatus("Lost")

	assert.Error(t, a.Apply(Patch{UsageStatus: &bad}, today))
	assert.Equal(t, vo.UsageSpare, a.UsageStatus())
}

func TestNewPurchaseEntry(t *testing.T) {
	purchased := time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)
	a, err := ReconstructAsset(9, Spec{AssetCode: "PC-9", PurchaseDate: &purchased}, today, today)
	require.NoError(t, err)

	entry, err := NewPurchaseEntry(a, today)
	require.NoError(t, err)
	assert.Equal(t, purchased, entry.Date())
	assert.Equal(t, ActionPurchase, entry.ActionType())
	assert.Equal(t, "New asset created in system", entry.Description())
	assert.Equal(t, PerformerSystem, entry.PerformedBy())

	b := spareLaptop(t, nil)
	entry, err = NewPurchaseEntry(b, today)
	require.NoError(t, err)
	assert.Equal(t, today, entry.Date())
}

func TestNewHistoryEntry_DefaultPerformer(t *testing.T) {
	entry, err := NewHistoryEntry(1, today, "repair", "Replaced battery", "")
	require.NoError(t, err)
	assert.Equal(t, PerformerDefaultManual, entry.PerformedBy())

	_, err = NewHistoryEntry(1, today, " ", "x", "")
	assert.Error(t, err)
}

func TestHistoryEntry_Correct(t *testing.T) {
	entry := ReconstructHistoryEntry(3, 1, today, "repair", "old", "IT Admin")
	desc := "Replaced keyboard"

	require.NoError(t, entry.Correct(HistoryCorrection{Description: &desc}))
	assert.Equal(t, "Replaced keyboard", entry.Description())
	assert.Equal(t, "repair", entry.ActionType())
}
