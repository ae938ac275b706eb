package blacklitterman

import "fmt"

// View types.
const (
	ViewAbsolute = "absolute"
	ViewRelative = "relative"
)

// View represents a Black-Litterman view (investor opinion).
type View struct {
	Type       string  // ViewAbsolute or ViewRelative
	Symbol     string  // For absolute views
	Symbol1    string  // For relative views (outperformer)
	Symbol2    string  // For relative views (underperformer)
	Return     float64 // Expected return (absolute) or outperformance (relative)
	Confidence float64 // Confidence level (0.0 to 1.0)
}

// BuildViewMatrices converts symbolic views into the P, Q and Omega
// inputs the posterior calculator consumes. Omega is diagonal with each
// entry derived from the view's confidence scaled by baseUncertainty,
// clamped below at 1e-6 so a fully confident view cannot make Omega
// singular on its own. A view referencing a symbol that is not in
// symbols is an error; it would otherwise become an all-zero P row and
// drop out of the blend unnoticed. Callers that already hold P, Q and
// Omega can fill Inputs directly; this helper is purely a convenience.
func BuildViewMatrices(
	views []View,
	symbols []string,
	baseUncertainty float64,
) (p [][]float64, q []float64, omega [][]float64, err error) {
	if len(views) == 0 {
		return nil, nil, nil, fmt.Errorf("views cannot be empty")
	}

	k := len(views)
	n := len(symbols)
	p = make([][]float64, k)
	q = make([]float64, k)
	omega = make([][]float64, k)

	for i, view := range views {
		p[i] = make([]float64, n)
		omega[i] = make([]float64, k)
		q[i] = view.Return

		uncertainty := (1.0 - view.Confidence) * baseUncertainty
		if uncertainty < 1e-6 {
			uncertainty = 1e-6
		}
		omega[i][i] = uncertainty

		switch view.Type {
		case ViewAbsolute:
			// Absolute view: single security
			matched := false
			for j, symbol := range symbols {
				if symbol == view.Symbol {
					p[i][j] = 1.0
					matched = true
					break
				}
			}
			if !matched {
				return nil, nil, nil, fmt.Errorf("view %d references unknown symbol %s", i, view.Symbol)
			}
		case ViewRelative:
			// Relative view: Symbol1 outperforms Symbol2
			matched1, matched2 := false, false
			for j, symbol := range symbols {
				if symbol == view.Symbol1 {
					p[i][j] = 1.0
					matched1 = true
				} else if symbol == view.Symbol2 {
					p[i][j] = -1.0
					matched2 = true
				}
			}
			if !matched1 {
				return nil, nil, nil, fmt.Errorf("view %d references unknown symbol %s", i, view.Symbol1)
			}
			if !matched2 {
				return nil, nil, nil, fmt.Errorf("view %d references unknown symbol %s", i, view.Symbol2)
			}
		default:
			return nil, nil, nil, fmt.Errorf("unknown view type: %s", view.Type)
		}
	}

	return p, q, omega, nil
}
