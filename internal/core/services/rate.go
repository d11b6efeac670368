package services

import (
	"context"
	"fmt"
	"math"

	"github.com/custodia-labs/charta/internal/core/domain"
	"github.com/custodia-labs/charta/internal/core/ports/driven"
)

// Ensure LinearRateEstimator implements the interface.
var _ driven.RateEstimator = (*LinearRateEstimator)(nil)

// DefaultRatePerMile is the USD per ton per nautical mile used for a
// size factor of 1.
const DefaultRatePerMile = 0.05

// rateMethod labels estimates from the linear model.
const rateMethod = "linear placeholder"

// LinearRateEstimator scales distance by the vessel class size factor.
// It is an indicative placeholder and not a Worldscale tariff.
type LinearRateEstimator struct {
	perMile float64
}

// NewLinearRateEstimator creates an estimator. A non-positive rate uses
// DefaultRatePerMile.
func NewLinearRateEstimator(perMile float64) *LinearRateEstimator {
	if perMile <= 0 || math.IsNaN(perMile) {
		perMile = DefaultRatePerMile
	}
	return &LinearRateEstimator{perMile: perMile}
}

// Estimate returns distance × size factor × rate per mile, rounded to cents.
func (e *LinearRateEstimator) Estimate(ctx context.Context, q domain.RateQuery) (domain.RateEstimate, error) {
	if err := ctx.Err(); err != nil {
		return domain.RateEstimate{}, err
	}
	if q.DistanceNM <= 0 || math.IsNaN(q.DistanceNM) || math.IsInf(q.DistanceNM, 0) {
		return domain.RateEstimate{}, fmt.Errorf("%w: distance must be a positive number of nautical miles", domain.ErrInvalidInput)
	}
	profile, ok := domain.LookupVesselClass(string(q.VesselClass))
	if !ok {
		return domain.RateEstimate{}, fmt.Errorf("%w: unknown vessel class %q", domain.ErrInvalidInput, q.VesselClass)
	}

	perTon := q.DistanceNM * profile.SizeFactor * e.perMile
	return domain.RateEstimate{
		VesselClass: profile.Class,
		DistanceNM:  q.DistanceNM,
		PerTonUSD:   math.Round(perTon*100) / 100,
		Method:      rateMethod,
	}, nil
}
