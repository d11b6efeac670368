package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/charta/internal/core/domain"
)

func TestLinearRateEstimator_Estimate(t *testing.T) {
	tests := []struct {
		class domain.VesselClass
		want  float64
	}{
		{domain.Panamax, 250},
		{domain.Aframax, 375},
		{domain.Suezmax, 562.5},
		{domain.VLCC, 937.5},
		{domain.ULCC, 1250},
	}

	est := NewLinearRateEstimator(0.05)
	for _, tt := range tests {
		t.Run(string(tt.class), func(t *testing.T) {
			got, err := est.Estimate(context.Background(), domain.RateQuery{DistanceNM: 5000, VesselClass: tt.class})
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got.PerTonUSD, 1e-9)
			assert.Equal(t, tt.class, got.VesselClass)
			assert.Equal(t, "linear placeholder", got.Method)
		})
	}
}

func TestLinearRateEstimator_CaseInsensitiveClass(t *testing.T) {
	got, err := NewLinearRateEstimator(0.05).Estimate(context.Background(), domain.RateQuery{DistanceNM: 100, VesselClass: "vlcc"})

	require.NoError(t, err)
	assert.Equal(t, domain.VLCC, got.VesselClass)
}

func TestLinearRateEstimator_InvalidInput(t *testing.T) {
	est := NewLinearRateEstimator(0.05)
	ctx := context.Background()

	_, err := est.Estimate(ctx, domain.RateQuery{DistanceNM: 0, VesselClass: domain.VLCC})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = est.Estimate(ctx, domain.RateQuery{DistanceNM: 100, VesselClass: "Handysize"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLinearRateEstimator_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLinearRateEstimator(0.05).Estimate(ctx, domain.RateQuery{DistanceNM: 100, VesselClass: domain.VLCC})

	assert.ErrorIs(t, err, context.Canceled)
}
