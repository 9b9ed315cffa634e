package alerts

import (
	"testing"

	"github.com/insightlabs/insighttrader-go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate_PopulatesAlert(t *testing.T) {
	store := NewStore("BTC/USD")

	alert := store.Create(70000, models.DirectionAbove)

	assert.NotEmpty(t, alert.ID)
	assert.Equal(t, "BTC/USD", alert.Asset)
	assert.Equal(t, 70000.0, alert.PriceLevel)
	assert.Equal(t, models.DirectionAbove, alert.Direction)
	assert.False(t, alert.Triggered)
	assert.False(t, alert.CreatedAt.IsZero())
}

func TestCreate_UniqueIDs(t *testing.T) {
	store := NewStore("BTC/USD")

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		alert := store.Create(100, models.DirectionBelow)
		assert.False(t, seen[alert.ID])
		seen[alert.ID] = true
	}
}

func TestCheck_StrictInequality(t *testing.T) {
	store := NewStore("BTC/USD")
	store.Create(100, models.DirectionAbove)

	// Exactly at the level must not fire
	assert.Empty(t, store.Check(100))
	assert.Len(t, store.ListActive(), 1)

	triggered := store.Check(100.01)
	require.Len(t, triggered, 1)
	assert.True(t, triggered[0].Triggered)

	// Fires exactly once; the alert is gone from the active set
	assert.Empty(t, store.Check(100.01))
	assert.Empty(t, store.ListActive())
}

func TestCheck_BelowDirection(t *testing.T) {
	store := NewStore("BTC/USD")
	store.Create(100, models.DirectionBelow)

	assert.Empty(t, store.Check(100))
	assert.Empty(t, store.Check(100.5))

	triggered := store.Check(99.99)
	require.Len(t, triggered, 1)
	assert.Equal(t, models.DirectionBelow, triggered[0].Direction)
}

func TestCheck_OnlyMatchingAlertsFire(t *testing.T) {
	store := NewStore("BTC/USD")
	above := store.Create(100, models.DirectionAbove)
	store.Create(50, models.DirectionBelow)

	triggered := store.Check(120)
	require.Len(t, triggered, 1)
	assert.Equal(t, above.ID, triggered[0].ID)

	active := store.ListActive()
	require.Len(t, active, 1)
	assert.Equal(t, models.DirectionBelow, active[0].Direction)
}

func TestDelete(t *testing.T) {
	store := NewStore("BTC/USD")
	alert := store.Create(100, models.DirectionAbove)

	require.NoError(t, store.Delete(alert.ID))
	assert.Empty(t, store.ListActive())

	assert.ErrorIs(t, store.Delete(alert.ID), ErrNotFound)
}

func TestDelete_UnknownIDLeavesStoreUnchanged(t *testing.T) {
	store := NewStore("BTC/USD")
	store.Create(100, models.DirectionAbove)

	assert.ErrorIs(t, store.Delete("no-such-id"), ErrNotFound)
	assert.Len(t, store.ListActive(), 1)
}

func TestListActive_EmptyStore(t *testing.T) {
	store := NewStore("BTC/USD")
	assert.Empty(t, store.ListActive())
}
