package dedup

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindow_Cutoff(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	w := NewWindowWithClock(5*time.Minute, func() time.Time { return now })

	assert.Equal(t, now.Add(-5*time.Minute), w.Cutoff())
}

func TestNewWindow_DefaultCooldown(t *testing.T) {
	assert.Equal(t, DefaultCooldown, NewWindow(0).Duration())
	assert.Equal(t, DefaultCooldown, NewWindow(-time.Minute).Duration())
	assert.Equal(t, 10*time.Minute, NewWindow(10*time.Minute).Duration())
}

func TestWindow_ShouldRecord(t *testing.T) {
	w := NewWindow(5 * time.Minute)

	// события в окне нет - записываем
	ok, err := w.ShouldRecord(func(cutoff time.Time) (bool, error) { return false, nil })
	require.NoError(t, err)
	assert.True(t, ok)

	// событие в окне есть - пропускаем
	ok, err = w.ShouldRecord(func(cutoff time.Time) (bool, error) { return true, nil })
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestWindow_ShouldRecordError(t *testing.T) {
	w := NewWindow(5 * time.Minute)
	lookupErr := errors.New("query failed")

	ok, err := w.ShouldRecord(func(cutoff time.Time) (bool, error) { return false, lookupErr })
	assert.ErrorIs(t, err, lookupErr)
	assert.False(t, ok)
}

// Lookup получает границу именно текущего окна.
func TestWindow_LookupReceivesCutoff(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	w := NewWindowWithClock(2*time.Minute, func() time.Time { return now })

	var got time.Time
	_, err := w.ShouldRecord(func(cutoff time.Time) (bool, error) {
		got = cutoff
		return false, nil
	})
	require.NoError(t, err)
	assert.Equal(t, now.Add(-2*time.Minute), got)
}
