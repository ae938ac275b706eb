package blacklitterman

import (
	"fmt"

	"github.com/aristath/black-litterman/pkg/algebra"
)

// PosteriorCovariance derives the full He-Litterman posterior
// covariance:
//
//	Σ_post = Σ + (τΣ − (τΣ)Pᵀ · [P(τΣ)Pᵀ + Ω]⁻¹ · P(τΣ))
//
// Calculate never uses this; its output carries the prior covariance
// unchanged. This derivation is opt-in for callers that want the
// uncertainty-adjusted covariance alongside the blended returns.
func (m *Model) PosteriorCovariance(
	tau float64,
	marketCovariance [][]float64,
	p [][]float64,
	omega [][]float64,
) ([][]float64, error) {
	n := len(marketCovariance)
	k := len(p)

	if n == 0 {
		return nil, fmt.Errorf("%w: market covariance matrix is empty", ErrDimensionMismatch)
	}
	for i, row := range marketCovariance {
		if len(row) != n {
			return nil, fmt.Errorf("%w: market covariance matrix is not square: row %d has %d columns, want %d",
				ErrDimensionMismatch, i, len(row), n)
		}
	}
	if k == 0 {
		return nil, fmt.Errorf("%w: P has no rows (at least one view required)", ErrDimensionMismatch)
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

	sigma := algebra.FromRows(marketCovariance)
	pMat := algebra.FromRows(p)
	omegaMat := algebra.FromRows(omega)

	tauSigma := algebra.Scale(tau, sigma)
	pT := algebra.Transpose(pMat)
	pTauSigma := algebra.Mul(pMat, tauSigma)

	confidenceBlend := algebra.Add(algebra.Mul(pTauSigma, pT), omegaMat)
	confidenceBlendInv, err := algebra.Inverse("confidence blend P(τΣ)Pᵀ + Ω", confidenceBlend)
	if err != nil {
		return nil, err
	}

	// (τΣ)Pᵀ · [P(τΣ)Pᵀ + Ω]⁻¹ · P(τΣ): how much view information
	// shrinks the prior uncertainty (N×N)
	shrink := algebra.Mul(algebra.Mul(algebra.Mul(tauSigma, pT), confidenceBlendInv), pTauSigma)

	posteriorSigma := algebra.Add(sigma, algebra.Sub(tauSigma, shrink))

	m.log.Debug().
		Int("num_assets", n).
		Int("num_views", k).
		Msg("Derived full posterior covariance")

	return algebra.ToRows(posteriorSigma), nil
}
