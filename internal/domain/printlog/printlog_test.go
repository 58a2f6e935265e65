package printlog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var printedAt = time.Date(2024, 5, 2, 3, 0, 0, 0, time.UTC)

func TestNewCardPrint(t *testing.T) {
	p, err := NewCardPrint(" E001 ", "Nguyen An", " IT ", "", "", "hr.lan", printedAt)
	require.NoError(t, err)
	assert.Equal(t, "E001", p.EmployeeID())
	assert.Equal(t, "IT", p.Department())
	assert.Equal(t, DefaultReason, p.Reason())
	assert.Equal(t, "hr.lan", p.PrintedBy())
	assert.Zero(t, p.ID())

	require.NoError(t, p.SetID(7))
	assert.Error(t, p.SetID(8))
}

func TestNewCardPrint_Invalid(t *testing.T) {
	tests := []struct {
		name       string
		employeeID string
		fullName   string
		printedBy  string
	}{
		{"missing employee id", " ", "Nguyen An", "hr.lan"},
		{"missing name", "E001", "", "hr.lan"},
		{"missing printer", "E001", "Nguyen An", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCardPrint(tt.employeeID, tt.fullName, "IT", "", "Pregnancy", tt.printedBy, printedAt)
			assert.Error(t, err)
		})
	}
}

func TestNewToolPrint(t *testing.T) {
	p, err := NewToolPrint("Visitor", "", "", 3, "hr.lan", printedAt)
	require.NoError(t, err)
	assert.Equal(t, DefaultOrientation, p.Orientation())
	assert.Equal(t, "N/A", p.SerialNumber())
	assert.Equal(t, 3, p.Quantity())

	p, err = NewToolPrint("Backside", "015", "Landscape", 1, "hr.lan", printedAt)
	require.NoError(t, err)
	assert.Equal(t, "landscape", p.Orientation())

	_, err = NewToolPrint("Visitor", "001", "sideways", 1, "hr.lan", printedAt)
	assert.Error(t, err)
	_, err = NewToolPrint("Visitor", "001", "portrait", 0, "hr.lan", printedAt)
	assert.Error(t, err)
	_, err = NewToolPrint("", "001", "portrait", 1, "hr.lan", printedAt)
	assert.Error(t, err)
}

func TestMergeMonths(t *testing.T) {
	got := MergeMonths(
		[]CardMonth{
			{Month: "2024-05", Pregnancy: 2, HasBaby: 1, Normal: 4},
			{Month: "2024-03", Normal: 1},
		},
		[]ToolMonth{
			{Month: "2024-05", Tools: 10},
			{Month: "2024-04", Tools: 3},
		},
	)

	assert.Equal(t, []MonthlyStats{
		{Month: "2024-03", Normal: 1, Total: 1},
		{Month: "2024-04", Tools: 3, Total: 3},
		{Month: "2024-05", Pregnancy: 2, HasBaby: 1, Normal: 4, Tools: 10, Total: 17},
	}, got)

	assert.Empty(t, MergeMonths(nil, nil))
}
