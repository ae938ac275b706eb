package blacklitterman

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/aristath/black-litterman/pkg/algebra"
)

// PosteriorCalculator blends the equilibrium prior with investor views
// using the Black-Litterman master formula.
type PosteriorCalculator struct {
	log zerolog.Logger
}

// NewPosteriorCalculator creates a new posterior return calculator.
func NewPosteriorCalculator(log zerolog.Logger) *PosteriorCalculator {
	if log.GetLevel() == zerolog.Disabled {
		log = zerolog.Nop()
	}
	return &PosteriorCalculator{
		log: log.With().Str("component", "posterior").Logger(),
	}
}

// Calculate computes E[R] = Π + (τΣ)Pᵀ · [P(τΣ)Pᵀ + Ω]⁻¹ · (Q − PΠ).
//
// All dimension preconditions are checked before any algebra runs. The
// only mid-algorithm failure is the inversion of the confidence-blend
// matrix P(τΣ)Pᵀ + Ω, which is singular when the views carry no
// uncertainty and pick degenerate combinations of Σ.
func (pc *PosteriorCalculator) Calculate(
	tau float64,
	marketCovariance [][]float64,
	equilibriumReturns []float64,
	p [][]float64,
	q []float64,
	omega [][]float64,
) ([]float64, error) {
	n := len(marketCovariance)
	k := len(q)

	if n == 0 {
		return nil, fmt.Errorf("%w: market covariance matrix is empty", ErrDimensionMismatch)
	}
	for i, row := range marketCovariance {
		if len(row) != n {
			return nil, fmt.Errorf("%w: market covariance matrix is not square: row %d has %d columns, want %d",
				ErrDimensionMismatch, i, len(row), n)
		}
	}
	if len(p) != k {
		return nil, fmt.Errorf("%w: P has %d rows but Q has length %d (one row per view)",
			ErrDimensionMismatch, len(p), k)
	}
	for i, row := range p {
		if len(row) != n {
			return nil, fmt.Errorf("%w: P row %d has %d columns but the market covariance is %dx%d",
				ErrDimensionMismatch, i, len(row), n, n)
		}
	}
	if len(omega) != k {
		return nil, fmt.Errorf("%w: Omega has %d rows but there are %d views",
			ErrDimensionMismatch, len(omega), k)
	}
	for i, row := range omega {
		if len(row) != k {
			return nil, fmt.Errorf("%w: Omega row %d has %d columns, want %d",
				ErrDimensionMismatch, i, len(row), k)
		}
	}
	if len(equilibriumReturns) != n {
		return nil, fmt.Errorf("%w: equilibrium returns have length %d but the market covariance is %dx%d",
			ErrDimensionMismatch, len(equilibriumReturns), n, n)
	}

	// No views: the posterior is the prior
	if k == 0 {
		posterior := make([]float64, n)
		copy(posterior, equilibriumReturns)
		pc.log.Debug().
			Int("num_assets", n).
			Msg("No views supplied, returning equilibrium returns")
		return posterior, nil
	}

	sigma := algebra.FromRows(marketCovariance)
	pMat := algebra.FromRows(p)
	omegaMat := algebra.FromRows(omega)
	piCol := algebra.ColumnMatrix(equilibriumReturns)
	qCol := algebra.ColumnMatrix(q)

	// τΣ (N×N)
	tauSigma := algebra.Scale(tau, sigma)

	// Q − PΠ (K×1), the surprise between view targets and implied returns
	excess := algebra.Sub(qCol, algebra.Mul(pMat, piCol))

	// P(τΣ)Pᵀ + Ω (K×K)
	pT := algebra.Transpose(pMat)
	confidenceBlend := algebra.Add(algebra.Mul(algebra.Mul(pMat, tauSigma), pT), omegaMat)

	confidenceBlendInv, err := algebra.Inverse("confidence blend P(τΣ)Pᵀ + Ω", confidenceBlend)
	if err != nil {
		return nil, err
	}

	// (τΣ)Pᵀ · [P(τΣ)Pᵀ + Ω]⁻¹ (N×K), then its pull toward the views (N×1)
	adjustmentWeights := algebra.Mul(algebra.Mul(tauSigma, pT), confidenceBlendInv)
	adjustment := algebra.Mul(adjustmentWeights, excess)

	posterior := algebra.ToVector(algebra.Add(piCol, adjustment))

	pc.log.Debug().
		Int("num_assets", n).
		Int("num_views", k).
		Float64("tau", tau).
		Msg("Blended views with equilibrium returns")

	return posterior, nil
}
