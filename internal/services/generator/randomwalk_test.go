package generator

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomWalk_RowCounts(t *testing.T) {
	gen := New(nil)

	for _, timeframe := range []string{"1m", "5m", "10m", "15m", "30m", "1h", "2h", "4h", "8h", "1d", "1w", "1M"} {
		klines, err := gen.RandomWalk(timeframe, 50)
		require.NoError(t, err, "timeframe %s", timeframe)
		assert.Len(t, klines, 50, "timeframe %s", timeframe)
	}
}

func TestRandomWalk_UnsupportedTimeframe(t *testing.T) {
	gen := New(nil)

	klines, err := gen.RandomWalk("3m", 10)
	require.Error(t, err)
	assert.Nil(t, klines)
	assert.True(t, errors.Is(err, ErrUnsupportedTimeframe))
	assert.Contains(t, err.Error(), "3m")
}

func TestRandomWalk_TimestampSpacing(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	gen := seededGenerator(7, now)

	klines, err := gen.RandomWalk("15m", 96)
	require.NoError(t, err)
	require.Len(t, klines, 96)

	for i := 1; i < len(klines); i++ {
		gap := klines[i].OpenTime.Sub(klines[i-1].OpenTime)
		require.Equal(t, 15*time.Minute, gap, "gap at index %d", i)
	}
}

func TestRandomWalk_CandleShape(t *testing.T) {
	gen := New(nil)

	klines, err := gen.RandomWalk("1h", 200)
	require.NoError(t, err)

	for i, k := range klines {
		// the spread noise keeps high strictly above low for this generator
		require.True(t, k.High.GreaterThan(k.Low), "high <= low at index %d", i)
		require.True(t, k.Volume.GreaterThanOrEqual(one), "volume too low at index %d", i)
		require.True(t, k.Volume.LessThan(thousand), "volume too high at index %d", i)
	}
}

func TestRandomWalk_SeededReproducibility(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	first, err := seededGenerator(42, now).RandomWalk("1h", 24)
	require.NoError(t, err)
	second, err := seededGenerator(42, now).RandomWalk("1h", 24)
	require.NoError(t, err)

	require.Len(t, second, len(first))
	for i := range first {
		require.True(t, first[i].Close.Equal(second[i].Close), "close differs at index %d", i)
	}

	other, err := seededGenerator(123, now).RandomWalk("1h", 24)
	require.NoError(t, err)

	differs := false
	for i := range first {
		if !first[i].Close.Equal(other[i].Close) {
			differs = true
			break
		}
	}
	assert.True(t, differs, "different seeds produced an identical walk")
}

func TestRandomWalk_ZeroPoints(t *testing.T) {
	gen := New(nil)

	klines, err := gen.RandomWalk("1h", 0)
	require.NoError(t, err)
	assert.Empty(t, klines)
}
