package driven

import (
	"context"

	"github.com/custodia-labs/charta/internal/core/domain"
)

// RateEstimator produces a freight rate estimate for a voyage.
// It is isolated so a real tariff lookup can replace the placeholder.
type RateEstimator interface {
	Estimate(ctx context.Context, q domain.RateQuery) (domain.RateEstimate, error)
}
