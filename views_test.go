package blacklitterman

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildViewMatrices(t *testing.T) {
	symbols := []string{"AAA", "BBB", "CCC"}

	views := []View{
		{
			Type:       ViewRelative,
			Symbol1:    "AAA",
			Symbol2:    "BBB",
			Return:     0.01,
			Confidence: 0.8,
		},
		{
			Type:       ViewAbsolute,
			Symbol:     "CCC",
			Return:     0.04,
			Confidence: 0.5,
		},
	}

	p, q, omega, err := BuildViewMatrices(views, symbols, 0.01)
	require.NoError(t, err)

	assert.Equal(t, [][]float64{
		{1, -1, 0},
		{0, 0, 1},
	}, p)
	assert.Equal(t, []float64{0.01, 0.04}, q)

	// Diagonal Omega from (1 - confidence) * baseUncertainty
	require.Len(t, omega, 2)
	assert.InDelta(t, 0.002, omega[0][0], 1e-15)
	assert.InDelta(t, 0.005, omega[1][1], 1e-15)
	assert.Equal(t, 0.0, omega[0][1])
	assert.Equal(t, 0.0, omega[1][0])
}

func TestBuildViewMatrices_FullConfidenceClampsUncertainty(t *testing.T) {
	views := []View{
		{Type: ViewAbsolute, Symbol: "AAA", Return: 0.05, Confidence: 1.0},
	}

	_, _, omega, err := BuildViewMatrices(views, []string{"AAA", "BBB"}, 0.01)
	require.NoError(t, err)

	// Never zero, so a single fully confident view cannot make Omega singular
	assert.Equal(t, 1e-6, omega[0][0])
}

func TestBuildViewMatrices_Errors(t *testing.T) {
	t.Run("empty views", func(t *testing.T) {
		_, _, _, err := BuildViewMatrices(nil, []string{"AAA"}, 0.01)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "views cannot be empty")
	})

	t.Run("unknown view type", func(t *testing.T) {
		views := []View{{Type: "conditional", Symbol: "AAA", Return: 0.05}}
		_, _, _, err := BuildViewMatrices(views, []string{"AAA"}, 0.01)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown view type")
	})

	t.Run("absolute view with unknown symbol", func(t *testing.T) {
		views := []View{{Type: ViewAbsolute, Symbol: "ZZZ", Return: 0.05, Confidence: 0.5}}
		_, _, _, err := BuildViewMatrices(views, []string{"AAA", "BBB"}, 0.01)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown symbol ZZZ")
	})

	t.Run("relative view with unknown outperformer", func(t *testing.T) {
		views := []View{{Type: ViewRelative, Symbol1: "ZZZ", Symbol2: "BBB", Return: 0.01, Confidence: 0.5}}
		_, _, _, err := BuildViewMatrices(views, []string{"AAA", "BBB"}, 0.01)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown symbol ZZZ")
	})

	t.Run("relative view with unknown underperformer", func(t *testing.T) {
		views := []View{{Type: ViewRelative, Symbol1: "AAA", Symbol2: "YYY", Return: 0.01, Confidence: 0.5}}
		_, _, _, err := BuildViewMatrices(views, []string{"AAA", "BBB"}, 0.01)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown symbol YYY")
	})
}

func TestBuildViewMatrices_FeedsModel(t *testing.T) {
	symbols := []string{"AAA", "BBB", "CCC"}
	views := []View{
		{Type: ViewRelative, Symbol1: "AAA", Symbol2: "BBB", Return: 0.01, Confidence: 0.8},
		{Type: ViewAbsolute, Symbol: "CCC", Return: 0.04, Confidence: 0.7},
	}

	p, q, omega, err := BuildViewMatrices(views, symbols, 0.01)
	require.NoError(t, err)

	m := NewModel(zerolog.Nop())
	out, err := m.Calculate(Inputs{
		Tau:              0.05,
		P:                p,
		Q:                q,
		Omega:            omega,
		MarketCovariance: threeAssetCovariance(),
		MarketCapWeights: []float64{0.5, 0.3, 0.2},
		RiskAversion:     3.0,
	})
	require.NoError(t, err)
	require.Len(t, out.PosteriorReturns, 3)

	// The positive absolute view on CCC pulls it above equilibrium
	assert.Greater(t, out.PosteriorReturns[2], out.EquilibriumReturns[2])
}
