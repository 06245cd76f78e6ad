// Package pricing turns a sized battery system into installed cost and
// savings figures. The in-process estimator ships as the working default;
// the Estimator interface lets deployments swap a remote service in
// without touching the quote orchestration.
//
// All money math runs on shopspring/decimal and is rounded to cents at
// the boundary.
package pricing

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Installed-cost model. Figures are 2025 US commercial BESS benchmarks.
const (
	// batteryUSDPerKWh covers cells, modules, and enclosure.
	batteryUSDPerKWh = 280.0

	// pcsUSDPerKW covers the power conversion system.
	pcsUSDPerKW = 90.0

	// bosFraction is balance-of-system as a fraction of equipment cost.
	bosFraction = 0.15

	// epcFraction is engineering/procurement/construction as a fraction of
	// equipment plus BOS.
	epcFraction = 0.20
)

// Savings model assumptions.
const (
	// demandReductionFraction is how much of the storage power rating
	// reliably clips billed demand.
	demandReductionFraction = 0.80

	// arbitrageSpreadUSDPerKWh is the assumed daily charge/discharge spread.
	arbitrageSpreadUSDPerKWh = 0.05

	// arbitrageCyclesPerYear assumes one cycle most days.
	arbitrageCyclesPerYear = 300

	monthsPerYear = 12
)

// Inputs is the sized system handed to the estimator.
type Inputs struct {
	Industry        string  `json:"industry"`
	State           string  `json:"state"`
	StorageKW       float64 `json:"storageKW"`
	StorageKWh      float64 `json:"storageKWh"`
	DurationHours   float64 `json:"durationHours"`
	PeakLoadKW      float64 `json:"peakLoadKW"`
	AnnualEnergyKWh float64 `json:"annualEnergyKWh"`
}

// Quote is the estimator's costed result.
type Quote struct {
	QuoteID string `json:"quoteId"`

	CapexUSD     float64 `json:"capexUSD"`
	BatteryUSD   float64 `json:"batteryUSD"`
	PCSUSD       float64 `json:"pcsUSD"`
	BOSUSD       float64 `json:"bosUSD"`
	EPCUSD       float64 `json:"epcUSD"`
	USDPerKWh    float64 `json:"usdPerKWh"`
	AnnualSaving float64 `json:"annualSavingsUSD"`
	PaybackYears float64 `json:"paybackYears"`

	EnergyRateUSDPerKWh  float64 `json:"energyRateUSDPerKWh"`
	DemandChargeUSDPerKW float64 `json:"demandChargeUSDPerKW"`

	// RateFallback reports that the state was missing from the tariff table
	// and the default rate was used.
	RateFallback bool `json:"rateFallback"`
}

// Estimator prices a sized system. Implementations must honor ctx
// cancellation.
type Estimator interface {
	Price(ctx context.Context, in Inputs) (Quote, error)
}

// InProcess is the default estimator, backed by the built-in cost model
// and rate table.
type InProcess struct {
	rates *RateTable
}

// NewInProcess returns an estimator over the given rate table; a nil
// table uses the built-in tariffs.
func NewInProcess(rates *RateTable) *InProcess {
	if rates == nil {
		rates = NewRateTable()
	}
	return &InProcess{rates: rates}
}

// Price computes installed cost, annual savings, and simple payback for
// the sized system.
func (e *InProcess) Price(ctx context.Context, in Inputs) (Quote, error) {
	if err := ctx.Err(); err != nil {
		return Quote{}, err
	}
	if in.StorageKW <= 0 || in.StorageKWh <= 0 {
		return Quote{}, fmt.Errorf("storage rating must be positive: %.1f kW / %.1f kWh", in.StorageKW, in.StorageKWh)
	}

	rate, fellBack := e.rates.Lookup(in.State)

	kw := decimal.NewFromFloat(in.StorageKW)
	kwh := decimal.NewFromFloat(in.StorageKWh)

	battery := kwh.Mul(decimal.NewFromFloat(batteryUSDPerKWh))
	pcs := kw.Mul(decimal.NewFromFloat(pcsUSDPerKW))
	equipment := battery.Add(pcs)
	bos := equipment.Mul(decimal.NewFromFloat(bosFraction))
	epc := equipment.Add(bos).Mul(decimal.NewFromFloat(epcFraction))
	capex := equipment.Add(bos).Add(epc)

	// Demand savings: clipped kW x demand charge x 12 months.
	demandSavings := kw.
		Mul(decimal.NewFromFloat(demandReductionFraction)).
		Mul(decimal.NewFromFloat(rate.DemandUSDPerKW)).
		Mul(decimal.NewFromInt(monthsPerYear))

	// Arbitrage savings: usable energy x spread x cycles.
	arbitrage := kwh.
		Mul(decimal.NewFromFloat(arbitrageSpreadUSDPerKWh)).
		Mul(decimal.NewFromInt(arbitrageCyclesPerYear))

	savings := demandSavings.Add(arbitrage)

	payback := decimal.Zero
	if savings.IsPositive() {
		payback = capex.Div(savings)
	}

	q := Quote{
		QuoteID:              uuid.NewString(),
		CapexUSD:             round2(capex),
		BatteryUSD:           round2(battery),
		PCSUSD:               round2(pcs),
		BOSUSD:               round2(bos),
		EPCUSD:               round2(epc),
		AnnualSaving:         round2(savings),
		PaybackYears:         round2(payback),
		EnergyRateUSDPerKWh:  rate.EnergyUSDPerKWh,
		DemandChargeUSDPerKW: rate.DemandUSDPerKW,
		RateFallback:         fellBack,
	}
	if in.StorageKWh > 0 {
		q.USDPerKWh = round2(capex.Div(kwh))
	}
	return q, nil
}

func round2(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}
