package category

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func TestNewCategory(t *testing.T) {
	c, err := NewCategory(" Laptop ", " LT ", "Portable computers")
	require.NoError(t, err)
	assert.Equal(t, "Laptop", c.Name())
	assert.Equal(t, "LT", c.Code())

	_, err = NewCategory("", "LT", "")
	assert.Error(t, err)
	_, err = NewCategory("Laptop", " ", "")
	assert.Error(t, err)
}

func TestNewTicketCategory_Defaults(t *testing.T) {
	tc, err := NewTicketCategory("Network", "NET", "", nil, nil, now)
	require.NoError(t, err)
	assert.Equal(t, DefaultSLAHours, tc.SLAHours())
	assert.True(t, tc.IsActive())
	assert.Equal(t, now, tc.CreatedAt())
}

func TestNewTicketCategory_Explicit(t *testing.T) {
	sla := 4
	inactive := false
	tc, err := NewTicketCategory("Hardware", "HW", "", &sla, &inactive, now)
	require.NoError(t, err)
	assert.Equal(t, 4, tc.SLAHours())
	assert.False(t, tc.IsActive())

	bad := 0
	_, err = NewTicketCategory("Hardware", "HW", "", &bad, nil, now)
	assert.Error(t, err)
}

func TestTicketCategory_ApplyAndArchive(t *testing.T) {
	tc := ReconstructTicketCategory(1, "Network", "NET", "", 24, true, now)
	sla := 8
	name := "Networking"

	require.NoError(t, tc.Apply(TicketCategoryPatch{Name: &name, SLAHours: &sla}))
	assert.Equal(t, "Networking", tc.Name())
	assert.Equal(t, "NET", tc.Code())
	assert.Equal(t, 8, tc.SLAHours())

	empty := ""
	assert.Error(t, tc.Apply(TicketCategoryPatch{Code: &empty}))
	assert.Equal(t, "NET", tc.Code())

	tc.Archive()
	assert.False(t, tc.IsActive())
}
