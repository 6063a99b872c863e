package mode

// Individual is one member of a MODE population: a decision vector and its
// evaluated objective+constraint row. Grounded on the framework.Individual
// shape used by the pack's own NSGA-II reference
// (pkg/multiobjective/framework in the scheduler-plugins example), trimmed
// to what MODE's ranking and selection actually need.
type Individual struct {
	X []float64
	Y []float64 // len nobj+ncon
}

func collectX(inds []Individual) [][]float64 {
	out := make([][]float64, len(inds))
	for i, ind := range inds {
		out[i] = ind.X
	}
	return out
}

func collectY(inds []Individual) [][]float64 {
	out := make([][]float64, len(inds))
	for i, ind := range inds {
		out[i] = ind.Y
	}
	return out
}
