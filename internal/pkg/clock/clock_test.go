package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InvalidTimezone(t *testing.T) {
	_, err := New("Not/AZone")
	assert.Error(t, err)
}

func TestZoneClock_DayBoundaryFollowsZone(t *testing.T) {
	c, err := New("Asia/Seoul")
	require.NoError(t, err)

	now := c.Now()
	assert.Equal(t, "Asia/Seoul", now.Location().String())
	assert.Equal(t, now.Format("2006-01-02"), c.Today())
	assert.Equal(t, now.Format("2006-01"), c.Month())
}

func TestFixed(t *testing.T) {
	seoul, err := time.LoadLocation("Asia/Seoul")
	require.NoError(t, err)

	// 05:30 KST on the 16th is still the 15th in UTC; the civil day must
	// come from the pinned zone, not from UTC.
	f := Fixed{T: time.Date(2025, 3, 16, 5, 30, 0, 0, seoul)}
	assert.Equal(t, "2025-03-16", f.Today())
	assert.Equal(t, "2025-03", f.Month())
	assert.Equal(t, seoul, f.Location())
}
