package availability

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"salonbook/models"

	"github.com/stretchr/testify/require"
)

func TestReserveThenConflict(t *testing.T) {
	store := NewStore()

	require.True(t, store.Reserve("2024-06-01", "9:00"))
	require.False(t, store.Reserve("2024-06-01", "9:00"))

	blocked := store.BlockedSlots("2024-06-01")
	require.Contains(t, blocked, "9:00")
	require.NotContains(t, blocked, "10:00")
}

func TestBlockedSlotsEmptyForUnknownDate(t *testing.T) {
	store := NewStore()
	require.Empty(t, store.BlockedSlots("2024-06-01"))
}

func TestConcurrentReserveSingleWinner(t *testing.T) {
	store := NewStore()

	const attempts = 64
	var wins int64
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if store.Reserve("2024-06-01", "9:00") {
				atomic.AddInt64(&wins, 1)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, int64(1), wins)
}

func TestDatesAreIndependent(t *testing.T) {
	store := NewStore()

	const dates = 28
	results := make([]bool, dates)
	var wg sync.WaitGroup
	for i := 0; i < dates; i++ {
		date := fmt.Sprintf("2024-06-%02d", i+1)
		wg.Add(1)
		go func(idx int, d string) {
			defer wg.Done()
			results[idx] = store.Reserve(d, "9:00")
		}(i, date)
	}
	wg.Wait()

	for i, ok := range results {
		require.True(t, ok, "reserve for date %d should not contend with other dates", i+1)
	}

	require.True(t, store.Reserve("2024-07-01", "9:00"))
	require.False(t, store.Reserve("2024-07-01", "9:00"))
	require.True(t, store.Reserve("2024-07-02", "9:00"))
}

func TestReleaseFreesSlot(t *testing.T) {
	store := NewStore()

	require.True(t, store.Reserve("2024-06-01", "9:00"))
	store.Release("2024-06-01", "9:00")
	require.Empty(t, store.BlockedSlots("2024-06-01"))
	require.True(t, store.Reserve("2024-06-01", "9:00"))

	// Releasing a date that was never seen is a no-op.
	store.Release("2030-01-01", "9:00")
}

func TestWarmPreloadsIndex(t *testing.T) {
	store := NewStore()
	store.Warm([]models.Booking{
		{Date: "2024-06-01", Time: "9:00"},
		{Date: "2024-06-01", Time: "10:00"},
		{Date: "2024-06-02", Time: "9:00"},
	})

	require.False(t, store.Reserve("2024-06-01", "9:00"))
	require.False(t, store.Reserve("2024-06-01", "10:00"))
	require.False(t, store.Reserve("2024-06-02", "9:00"))
	require.True(t, store.Reserve("2024-06-02", "10:00"))
}

func TestBlockedSlotsReturnsSnapshot(t *testing.T) {
	store := NewStore()
	require.True(t, store.Reserve("2024-06-01", "9:00"))

	blocked := store.BlockedSlots("2024-06-01")
	delete(blocked, "9:00")

	require.False(t, store.Reserve("2024-06-01", "9:00"))
}
