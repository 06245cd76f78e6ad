package quote

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunBatchPreservesOrder(t *testing.T) {
	industries := []string{"hotel", "car_wash", "gas_station", "office", "retail", "school"}
	reqs := make([]Params, 0, len(industries)*4)
	for i := 0; i < 4; i++ {
		for _, industry := range industries {
			reqs = append(reqs, Params{
				Industry: industry,
				Answers:  map[string]any{"facilitySize": 1000 * (i + 1)},
			})
		}
	}

	items, err := RunBatch(context.Background(), reqs, BatchOptions{Workers: 4})
	require.NoError(t, err)
	require.Len(t, items, len(reqs))

	for i, item := range items {
		assert.Equal(t, i, item.Index)
		assert.Equal(t, reqs[i].Industry, item.Contract.Industry)
		assert.Greater(t, item.Contract.LoadProfile.PeakLoadKW, 0.0)
		assert.Nil(t, item.Pricing, "pricing not requested")
	}
}

func TestRunBatchWithPricing(t *testing.T) {
	reqs := []Params{
		{Industry: "hotel", Answers: map[string]any{"numberOfRooms": 120}},
		{Industry: "ev_charging", Answers: map[string]any{"dcFastChargers": 6}},
	}

	items, err := RunBatch(context.Background(), reqs, BatchOptions{
		Pricer: NewPricer(nil, nil, 0),
		State:  "TX",
	})
	require.NoError(t, err)

	for _, item := range items {
		require.NotNil(t, item.Pricing)
		assert.Greater(t, item.Pricing.CapexUSD, 0.0)
	}
}

func TestRunBatchEmpty(t *testing.T) {
	_, err := RunBatch(context.Background(), nil, BatchOptions{})
	assert.ErrorIs(t, err, ErrEmptyBatch)
}

func TestRunBatchBadIndustriesDegradeNotFail(t *testing.T) {
	reqs := make([]Params, 50)
	for i := range reqs {
		reqs[i] = Params{Industry: fmt.Sprintf("bogus_%d", i)}
	}

	items, err := RunBatch(context.Background(), reqs, BatchOptions{Workers: 16})
	require.NoError(t, err, "unknown industries degrade to provisional results")
	for _, item := range items {
		assert.True(t, item.Contract.IsProvisional)
	}
}

func TestRunBatchCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := RunBatch(ctx, []Params{{Industry: "hotel"}}, BatchOptions{})
	assert.Error(t, err)
}
