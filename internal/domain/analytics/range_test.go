package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"printdesk/internal/core/apperror"
)

func TestResolveRangeExplicit(t *testing.T) {
	now := time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)

	start, end, err := ResolveRange("2025-02-01", "2025-02-28", now)
	require.NoError(t, err)

	assert.Equal(t, day(2025, 2, 1), start)
	assert.Equal(t, day(2025, 2, 28), end)
}

func TestResolveRangeDefaults(t *testing.T) {
	now := time.Date(2025, 3, 15, 23, 45, 0, 0, time.UTC)

	start, end, err := ResolveRange("", "", now)
	require.NoError(t, err)

	assert.Equal(t, day(2025, 3, 1), start, "start defaults to first of current month")
	assert.Equal(t, day(2025, 3, 15), end, "end defaults to today")
}

func TestResolveRangeDefaultStartOnly(t *testing.T) {
	now := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	start, end, err := ResolveRange("", "2025-03-10", now)
	require.NoError(t, err)

	assert.Equal(t, day(2025, 3, 1), start)
	assert.Equal(t, day(2025, 3, 10), end)
}

func TestResolveRangeInverted(t *testing.T) {
	now := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	_, _, err := ResolveRange("2025-03-10", "2025-03-01", now)

	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInvalidDateRange, appErr.Code)
}

func TestResolveRangeUnparsable(t *testing.T) {
	now := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	_, _, err := ResolveRange("03/10/2025", "", now)
	require.Error(t, err)

	_, _, err = ResolveRange("", "not-a-date", now)
	require.Error(t, err)
}
