package engine

import (
	"testing"

	"github.com/solarquote/solarquote/pkg/types"
	"github.com/stretchr/testify/assert"
)

var (
	beforeRow = types.TariffRow{UsageKWH: 1200, UsageRM: 559.40, NetworkRM: 154.20, CapacityRM: 54.60, TaxRM: 30.73, LevyRM: 12.29, TotalRM: 811.22}
	afterRow  = types.TariffRow{UsageKWH: 550, UsageRM: 206.00, NetworkRM: 70.67, CapacityRM: 25.02, TaxRM: 0, LevyRM: 4.83, TotalRM: 306.52}
)

func TestMakeBill(t *testing.T) {
	bill := MakeBill(beforeRow, 0.05)
	assert.Equal(t, 1200.0, bill.UsageKWH)
	// 811.22 + 1200*0.05 = 871.22
	assert.InDelta(t, 871.22, bill.AmountRM, 0.001)

	// zero AFA leaves the schedule total untouched
	assert.InDelta(t, 811.22, MakeBill(beforeRow, 0).AmountRM, 0.001)
}

func TestDecomposeSavings(t *testing.T) {
	const afaRate = 0.05
	const exportKWH = 508.32
	const smp = 0.25

	before := MakeBill(beforeRow, afaRate)
	after := MakeBill(afterRow, afaRate)

	s := DecomposeSavings(before, after, exportKWH, smp, afaRate)

	t.Run("Components", func(t *testing.T) {
		// reduction: 871.22 - 334.02 = 537.20
		assert.InDelta(t, 537.20, s.BillReductionRM, 0.001)
		// AFA: (1200-550)*0.05 = 32.50
		assert.InDelta(t, 32.50, s.AFAImpactRM, 0.001)
		// export credit: 508.32*0.25 = 127.08
		assert.InDelta(t, 127.08, s.ExportCreditRM, 0.001)
	})

	t.Run("Decomposition Identity", func(t *testing.T) {
		assert.InDelta(t, s.BillReductionRM, s.AFAImpactRM+s.BaseBillReductionRM, 1e-9)
		assert.InDelta(t, s.TotalMonthlyRM, s.BillReductionRM+s.ExportCreditRM, 1e-9)
	})

	t.Run("Reduction Clamped At Zero", func(t *testing.T) {
		// a more expensive after bill yields zero reduction, not negative
		inverted := DecomposeSavings(after, before, 0, smp, afaRate)
		assert.Zero(t, inverted.BillReductionRM)
		assert.Zero(t, inverted.TotalMonthlyRM)
	})

	t.Run("Zero Export Zero Credit", func(t *testing.T) {
		s := DecomposeSavings(before, after, 0, smp, afaRate)
		assert.Zero(t, s.ExportCreditRM)
		assert.Equal(t, s.BillReductionRM, s.TotalMonthlyRM)
	})
}

func TestChargeDeltas(t *testing.T) {
	deltas := ChargeDeltas(beforeRow, afterRow, 0.05)
	byComponent := make(map[string]types.ChargeDelta, len(deltas))
	for _, d := range deltas {
		byComponent[d.Component] = d
	}

	assert.Len(t, deltas, 6)
	assert.InDelta(t, 559.40-206.00, byComponent["usage"].DeltaRM, 0.001)
	assert.InDelta(t, 154.20-70.67, byComponent["network"].DeltaRM, 0.001)
	assert.InDelta(t, 30.73, byComponent["tax"].DeltaRM, 0.001)
	// afa synthesized from the usage keys: (1200-550)*0.05
	assert.InDelta(t, 32.50, byComponent["afa"].DeltaRM, 0.001)

	for _, d := range deltas {
		assert.InDelta(t, d.BeforeRM-d.AfterRM, d.DeltaRM, 1e-9, d.Component)
	}
}
