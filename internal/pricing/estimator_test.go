package pricing

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sizedSystem() Inputs {
	return Inputs{
		Industry:      "hotel",
		State:         "CA",
		StorageKW:     250,
		StorageKWh:    1000,
		DurationHours: 4,
		PeakLoadKW:    1000,
	}
}

func TestPriceProducesSoundEconomics(t *testing.T) {
	est := NewInProcess(nil)
	q, err := est.Price(context.Background(), sizedSystem())
	require.NoError(t, err)

	assert.NotEmpty(t, q.QuoteID)
	assert.Greater(t, q.CapexUSD, 0.0)
	assert.Greater(t, q.AnnualSaving, 0.0)
	assert.Greater(t, q.PaybackYears, 0.0)
	assert.Less(t, q.PaybackYears, 100.0)
	assert.False(t, q.RateFallback)

	// Component sum equals total capex.
	assert.InDelta(t, q.CapexUSD, q.BatteryUSD+q.PCSUSD+q.BOSUSD+q.EPCUSD, 0.05)
	assert.Greater(t, q.USDPerKWh, 0.0)
}

func TestPriceCentsRounding(t *testing.T) {
	est := NewInProcess(nil)
	q, err := est.Price(context.Background(), sizedSystem())
	require.NoError(t, err)

	// Decimal math must land exactly on cents.
	assert.Equal(t, float64(int(q.CapexUSD*100+0.5))/100, q.CapexUSD)
}

func TestPriceUnknownStateFallsBack(t *testing.T) {
	in := sizedSystem()
	in.State = "ZZ"

	est := NewInProcess(nil)
	q, err := est.Price(context.Background(), in)
	require.NoError(t, err)

	assert.True(t, q.RateFallback)
	assert.InDelta(t, defaultRate.EnergyUSDPerKWh, q.EnergyRateUSDPerKWh, 1e-9)
}

func TestPriceRejectsZeroSizedSystem(t *testing.T) {
	in := sizedSystem()
	in.StorageKW = 0

	est := NewInProcess(nil)
	_, err := est.Price(context.Background(), in)
	assert.Error(t, err)
}

func TestPriceHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	est := NewInProcess(nil)
	_, err := est.Price(ctx, sizedSystem())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHigherDemandChargeRaisesSavings(t *testing.T) {
	est := NewInProcess(nil)

	ca := sizedSystem()
	tx := sizedSystem()
	tx.State = "TX"

	qCA, err := est.Price(context.Background(), ca)
	require.NoError(t, err)
	qTX, err := est.Price(context.Background(), tx)
	require.NoError(t, err)

	assert.Greater(t, qCA.AnnualSaving, qTX.AnnualSaving, "CA demand charges exceed TX")
	assert.Less(t, qCA.PaybackYears, qTX.PaybackYears)
}

func TestRateTableOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rates.yaml")
	content := []byte("rates:\n  CA:\n    energyUSDPerKWh: 0.30\n    demandUSDPerKW: 40.0\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	table := NewRateTable()
	require.NoError(t, table.LoadOverrides(path))

	r, fellBack := table.Lookup("CA")
	assert.False(t, fellBack)
	assert.InDelta(t, 0.30, r.EnergyUSDPerKWh, 1e-9)
	assert.InDelta(t, 40.0, r.DemandUSDPerKW, 1e-9)

	// States absent from the override file keep the built-ins.
	ny, fellBack := table.Lookup("NY")
	assert.False(t, fellBack)
	assert.InDelta(t, 0.17, ny.EnergyUSDPerKWh, 1e-9)
}

func TestRateTableMissingFile(t *testing.T) {
	table := NewRateTable()
	assert.Error(t, table.LoadOverrides("/nonexistent/rates.yaml"))
}
