package blacklitterman

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/aristath/black-litterman/pkg/algebra"
)

// EquilibriumCalculator derives the market-implied prior returns by
// reverse optimization: the return vector that would reproduce the
// observed market weights under mean-variance optimization.
type EquilibriumCalculator struct {
	log zerolog.Logger
}

// NewEquilibriumCalculator creates a new equilibrium return calculator.
func NewEquilibriumCalculator(log zerolog.Logger) *EquilibriumCalculator {
	if log.GetLevel() == zerolog.Disabled {
		log = zerolog.Nop()
	}
	return &EquilibriumCalculator{
		log: log.With().Str("component", "equilibrium").Logger(),
	}
}

// Calculate computes Π = δ · Σ · w.
// Where: δ = risk aversion, Σ = market covariance, w = market weights.
func (ec *EquilibriumCalculator) Calculate(
	riskAversion float64,
	marketCovariance [][]float64,
	marketCapWeights []float64,
) ([]float64, error) {
	n := len(marketCovariance)
	if n == 0 {
		return nil, fmt.Errorf("%w: market covariance matrix is empty", ErrDimensionMismatch)
	}
	for i, row := range marketCovariance {
		if len(row) != n {
			return nil, fmt.Errorf("%w: market covariance matrix is not square: row %d has %d columns, want %d",
				ErrDimensionMismatch, i, len(row), n)
		}
	}
	if len(marketCapWeights) != n {
		return nil, fmt.Errorf("%w: market covariance is %dx%d but market weights have length %d",
			ErrDimensionMismatch, n, n, len(marketCapWeights))
	}

	sigma := algebra.FromRows(marketCovariance)
	sigmaW := algebra.Mul(sigma, algebra.ColumnMatrix(marketCapWeights))
	pi := algebra.ToVector(algebra.Scale(riskAversion, sigmaW))

	ec.log.Debug().
		Int("num_assets", n).
		Float64("risk_aversion", riskAversion).
		Msg("Calculated equilibrium returns")

	return pi, nil
}
