package tariff

import (
	"testing"

	"github.com/solarquote/solarquote/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRows = []types.TariffRow{
	{UsageKWH: 100, TotalRM: 39.20},
	{UsageKWH: 200, TotalRM: 78.40},
	{UsageKWH: 300, TotalRM: 129.20},
	{UsageKWH: 400, TotalRM: 201.37},
	{UsageKWH: 500, TotalRM: 271.48},
}

func TestResolveByAmount(t *testing.T) {
	t.Run("Closest Without Exceeding", func(t *testing.T) {
		row, err := ResolveByAmount(testRows, 150.0, 0)
		require.NoError(t, err)
		assert.Equal(t, 300.0, row.UsageKWH)
	})

	t.Run("Exact Match", func(t *testing.T) {
		row, err := ResolveByAmount(testRows, 78.40, 0)
		require.NoError(t, err)
		assert.Equal(t, 200.0, row.UsageKWH)
	})

	t.Run("Below Cheapest Falls Back To Lowest", func(t *testing.T) {
		row, err := ResolveByAmount(testRows, 5.0, 0)
		require.NoError(t, err)
		assert.Equal(t, 100.0, row.UsageKWH)
	})

	t.Run("Above Most Expensive Returns Highest", func(t *testing.T) {
		row, err := ResolveByAmount(testRows, 100000.0, 0)
		require.NoError(t, err)
		assert.Equal(t, 500.0, row.UsageKWH)
	})

	t.Run("AFA Rate Shifts Adjusted Totals", func(t *testing.T) {
		// with AFA of 0.10/kWh the 300 row costs 129.20+30 = 159.20 which now
		// exceeds the target, so resolution drops to the 200 row
		row, err := ResolveByAmount(testRows, 150.0, 0.10)
		require.NoError(t, err)
		assert.Equal(t, 200.0, row.UsageKWH)
	})

	t.Run("Negative AFA Rebate", func(t *testing.T) {
		// a rebate makes larger rows affordable
		row, err := ResolveByAmount(testRows, 250.0, -0.02)
		require.NoError(t, err)
		assert.Equal(t, 400.0, row.UsageKWH)
	})

	t.Run("Negative Amount Still Resolves", func(t *testing.T) {
		row, err := ResolveByAmount(testRows, -10.0, 0)
		require.NoError(t, err)
		assert.Equal(t, 100.0, row.UsageKWH)
	})

	t.Run("Empty Schedule", func(t *testing.T) {
		_, err := ResolveByAmount(nil, 100.0, 0)
		assert.ErrorIs(t, err, ErrEmptySchedule)
	})
}

func TestResolveByUsage(t *testing.T) {
	t.Run("Greatest Not Exceeding", func(t *testing.T) {
		row, err := ResolveByUsage(testRows, 250.0)
		require.NoError(t, err)
		assert.Equal(t, 200.0, row.UsageKWH)
	})

	t.Run("Exact Match", func(t *testing.T) {
		row, err := ResolveByUsage(testRows, 400.0)
		require.NoError(t, err)
		assert.Equal(t, 400.0, row.UsageKWH)
	})

	t.Run("Zero Usage Falls Back To Lowest", func(t *testing.T) {
		row, err := ResolveByUsage(testRows, 0)
		require.NoError(t, err)
		assert.Equal(t, 100.0, row.UsageKWH)
	})

	t.Run("Negative Usage Falls Back To Lowest", func(t *testing.T) {
		row, err := ResolveByUsage(testRows, -50.0)
		require.NoError(t, err)
		assert.Equal(t, 100.0, row.UsageKWH)
	})

	t.Run("Below First Row Falls Back To Lowest", func(t *testing.T) {
		row, err := ResolveByUsage(testRows, 50.0)
		require.NoError(t, err)
		assert.Equal(t, 100.0, row.UsageKWH)
	})

	t.Run("Above Last Row Returns Highest", func(t *testing.T) {
		row, err := ResolveByUsage(testRows, 99999.0)
		require.NoError(t, err)
		assert.Equal(t, 500.0, row.UsageKWH)
	})

	t.Run("Empty Schedule", func(t *testing.T) {
		_, err := ResolveByUsage(nil, 100.0)
		assert.ErrorIs(t, err, ErrEmptySchedule)
	})
}

func TestResolveTotality(t *testing.T) {
	// every real-numbered input must resolve to some row
	amounts := []float64{-1e9, -1, 0, 0.01, 39.2, 100, 1e9}
	for _, a := range amounts {
		row, err := ResolveByAmount(testRows, a, 0.05)
		require.NoError(t, err)
		assert.NotZero(t, row.UsageKWH)
	}
	usages := []float64{-1e9, -1, 0, 0.5, 100, 450, 1e9}
	for _, u := range usages {
		row, err := ResolveByUsage(testRows, u)
		require.NoError(t, err)
		assert.NotZero(t, row.UsageKWH)
	}
}
