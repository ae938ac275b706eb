// Package blacklitterman computes Black-Litterman blended expected
// returns: a market-implied equilibrium prior combined with investor
// views weighted by their uncertainty.
//
// The pipeline has two stages. EquilibriumCalculator reverse-optimizes
// the implied prior Π = δ·Σ·w from risk aversion, covariance and market
// weights. PosteriorCalculator blends that prior with the views
// (P, Q, Ω) to produce the posterior return vector. Model sequences the
// two from a single input bundle.
//
// Every call is a pure function over in-memory data: no I/O, no shared
// state between invocations, safe for concurrent use with disjoint
// inputs.
package blacklitterman

// Inputs bundles everything one Black-Litterman run needs. N is the
// number of assets and K the number of views; all fields sharing a
// dimension must agree on it, which the calculators verify before any
// algebra runs.
type Inputs struct {
	// Tau scales the market covariance when expressing uncertainty
	// about the equilibrium prior itself. Typically 0.05.
	Tau float64

	// P is the K×N view-picking matrix; each row encodes one view as a
	// linear combination of assets.
	P [][]float64

	// Q holds the K view target returns, one per row of P.
	Q []float64

	// Omega is the K×K view-uncertainty covariance matrix, typically
	// diagonal. Larger entries mean less confidence in that view.
	Omega [][]float64

	// MarketCovariance is the N×N asset covariance matrix Σ.
	MarketCovariance [][]float64

	// MarketCapWeights is the length-N market-capitalization weight
	// vector. It normally sums to 1 but this is not enforced.
	MarketCapWeights []float64

	// RiskAversion is the scalar δ in Π = δ·Σ·w. Typically positive.
	RiskAversion float64
}

// Outputs is the result bundle of one run.
type Outputs struct {
	// EquilibriumReturns is the implied prior Π (length N).
	EquilibriumReturns []float64

	// PosteriorReturns is the blended return vector E[R] (length N).
	PosteriorReturns []float64

	// PosteriorCovariance is a copy of the input market covariance,
	// not the full He-Litterman posterior. See Model.PosteriorCovariance
	// for the opt-in derivation.
	PosteriorCovariance [][]float64
}

func copyMatrix(m [][]float64) [][]float64 {
	out := make([][]float64, len(m))
	for i, row := range m {
		out[i] = make([]float64, len(row))
		copy(out[i], row)
	}
	return out
}
