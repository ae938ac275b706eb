package blacklitterman

import (
	"github.com/rs/zerolog"
)

// Model is the single entry point for the full Black-Litterman
// pipeline: equilibrium returns first, then the view-blended posterior.
type Model struct {
	equilibrium *EquilibriumCalculator
	posterior   *PosteriorCalculator
	log         zerolog.Logger
}

// NewModel creates a new Black-Litterman model.
func NewModel(log zerolog.Logger) *Model {
	if log.GetLevel() == zerolog.Disabled {
		log = zerolog.Nop()
	}
	return &Model{
		equilibrium: NewEquilibriumCalculator(log),
		posterior:   NewPosteriorCalculator(log),
		log:         log.With().Str("component", "black_litterman").Logger(),
	}
}

// Calculate runs both stages and assembles the output bundle. The
// returned PosteriorCovariance is a copy of the input market covariance
// (the prior passes through; see PosteriorCovariance for the full
// derivation). Calculator errors already name their cause, so they
// propagate without added context.
func (m *Model) Calculate(in Inputs) (*Outputs, error) {
	equilibriumReturns, err := m.equilibrium.Calculate(in.RiskAversion, in.MarketCovariance, in.MarketCapWeights)
	if err != nil {
		return nil, err
	}

	posteriorReturns, err := m.posterior.Calculate(in.Tau, in.MarketCovariance, equilibriumReturns, in.P, in.Q, in.Omega)
	if err != nil {
		return nil, err
	}

	return &Outputs{
		EquilibriumReturns:  equilibriumReturns,
		PosteriorReturns:    posteriorReturns,
		PosteriorCovariance: copyMatrix(in.MarketCovariance),
	}, nil
}
