package utils_test

import (
	"testing"
	"time"

	"lms/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayStarts(t *testing.T) {
	now := time.Date(2025, 3, 15, 14, 30, 0, 0, time.UTC)

	starts := utils.DayStarts(now, 7)
	require.Len(t, starts, 8)

	// Oldest boundary first, one past today last
	assert.Equal(t, time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC), starts[0])
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), starts[6])
	assert.Equal(t, time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC), starts[7])

	// Consecutive boundaries are one day apart
	for i := 1; i < len(starts); i++ {
		assert.Equal(t, starts[i-1].AddDate(0, 0, 1), starts[i])
	}

	// The current moment falls in the last bucket
	assert.True(t, !now.Before(starts[6]) && now.Before(starts[7]))
}

func TestDayStartsSingleDay(t *testing.T) {
	now := time.Date(2025, 3, 15, 0, 0, 1, 0, time.UTC)

	starts := utils.DayStarts(now, 1)
	require.Len(t, starts, 2)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), starts[0])
	assert.Equal(t, time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC), starts[1])
}

func TestDayStartsCrossesMonthBoundary(t *testing.T) {
	now := time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)

	starts := utils.DayStarts(now, 7)
	assert.Equal(t, time.Date(2025, 2, 24, 0, 0, 0, 0, time.UTC), starts[0])
	assert.Equal(t, time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), starts[7])
}
