package mode

import (
	"math"
	"sort"
)

// argsortAsc returns the permutation of indices that sorts v ascending.
func argsortAsc(v []float64) []int {
	order := make([]int, len(v))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool { return v[order[i]] < v[order[j]] })
	return order
}

func column(y [][]float64, offset, d int) []float64 {
	out := make([]float64, len(y))
	for i, row := range y {
		out[i] = row[offset+d]
	}
	return out
}

func maxOf(v []float64) float64 {
	m := math.Inf(-1)
	for _, x := range v {
		if x > m {
			m = x
		}
	}
	return m
}

// dominates reports whether a strictly Pareto-dominates b: no worse in
// every dimension, strictly better in at least one (minimization).
func dominates(a, b []float64) bool {
	betterInAny := false
	for k := range a {
		if a[k] > b[k] {
			return false
		}
		if a[k] < b[k] {
			betterInAny = true
		}
	}
	return betterInAny
}

// paretoLevels assigns each individual in yobj the count of individuals it
// strictly dominates, per §4.7 step 5 / §9's open question: the outer
// index only advances past individuals already marked dominated by an
// earlier pivot (bound checked before the mask lookup), and an individual
// already marked dominated is excluded from being dominated again so each
// individual is attributed to at most one dominator.
func paretoLevels(yobj [][]float64) []float64 {
	n := len(yobj)
	dom := make([]float64, n)
	mask := make([]bool, n)

	index := 0
	for index < n {
		if mask[index] {
			index++
			continue
		}
		count := 0
		for j := 0; j < n; j++ {
			if j == index || mask[j] {
				continue
			}
			if dominates(yobj[index], yobj[j]) {
				mask[j] = true
				count++
			}
		}
		dom[index] = float64(count)
		index++
	}
	return dom
}

// objRanks sums, for each individual, its ascending rank position along
// every objective dimension.
func objRanks(yobj [][]float64) []float64 {
	n := len(yobj)
	sum := make([]float64, n)
	if n == 0 {
		return sum
	}
	nobj := len(yobj[0])
	for d := 0; d < nobj; d++ {
		order := argsortAsc(column(yobj, 0, d))
		for pos, idx := range order {
			sum[idx] += float64(pos)
		}
	}
	return sum
}

// constraintRanks implements §4.7 step 3: per-constraint ascending rank,
// zeroed for satisfying individuals, weighted by the fraction of
// constraints each individual violates, summed across constraints.
func constraintRanks(ycon [][]float64, ncon int) []float64 {
	n := len(ycon)
	csum := make([]float64, n)
	if ncon == 0 {
		return csum
	}

	alpha := make([]float64, n)
	for i := 0; i < n; i++ {
		for j := 0; j < ncon; j++ {
			if ycon[i][j] > 0 {
				alpha[i]++
			}
		}
	}

	rankSum := make([]float64, n)
	for j := 0; j < ncon; j++ {
		vals := column(ycon, 0, j)
		order := argsortAsc(vals)
		rank := make([]float64, n)
		for pos, idx := range order {
			if vals[idx] <= 0 {
				rank[idx] = 0
			} else {
				rank[idx] = float64(pos)
			}
		}
		for i := 0; i < n; i++ {
			rankSum[i] += rank[i]
		}
	}

	for i := 0; i < n; i++ {
		csum[i] = rankSum[i] * alpha[i] / float64(ncon)
	}
	return csum
}

// Pareto computes the per-individual domination score of §4.7: strictly
// larger means strictly more preferred. y[i] has length nobj+ncon.
func Pareto(y [][]float64, nobj, ncon int) []float64 {
	n := len(y)
	yobj := make([][]float64, n)
	for i, row := range y {
		yobj[i] = row[:nobj]
	}

	if ncon == 0 {
		return paretoLevels(yobj)
	}

	ycon := make([][]float64, n)
	for i, row := range y {
		ycon[i] = row[nobj : nobj+ncon]
	}

	feasible := make([]bool, n)
	anyFeasible := false
	for i := range ycon {
		feasible[i] = maxOf(ycon[i]) <= 0
		anyFeasible = anyFeasible || feasible[i]
	}

	csum := constraintRanks(ycon, ncon)
	if anyFeasible {
		obj := objRanks(yobj)
		for i := range csum {
			csum[i] += obj[i]
		}
	}

	score := make([]float64, n)

	var infeasIdx []int
	for i, f := range feasible {
		if !f {
			infeasIdx = append(infeasIdx, i)
		}
	}
	sort.Slice(infeasIdx, func(a, b int) bool { return csum[infeasIdx[a]] < csum[infeasIdx[b]] })
	maxcdom := float64(len(infeasIdx))
	for pos, idx := range infeasIdx {
		score[idx] = maxcdom - float64(pos)
	}

	if anyFeasible {
		var feasIdx []int
		for i, f := range feasible {
			if f {
				feasIdx = append(feasIdx, i)
			}
		}
		feasYobj := make([][]float64, len(feasIdx))
		for k, idx := range feasIdx {
			feasYobj[k] = yobj[idx]
		}
		levels := paretoLevels(feasYobj)
		for k, idx := range feasIdx {
			score[idx] = levels[k] + maxcdom + 1
		}
	}

	return score
}

// CrowdDist computes the first-objective-only crowding distance of §4.9:
// a deliberate approximation of full NSGA-II crowding, used only to break
// ties within a domination level during truncation.
func CrowdDist(y0 []float64) []float64 {
	n := len(y0)
	dist := make([]float64, n)
	if n <= 2 {
		for i := range dist {
			dist[i] = math.Inf(1)
		}
		return dist
	}

	order := argsortAsc(y0)
	diffs := make([]float64, n-1)
	allZero := true
	for i := 0; i < n-1; i++ {
		diffs[i] = y0[order[i+1]] - y0[order[i]]
		if diffs[i] != 0 {
			allZero = false
		}
	}
	if allZero {
		return dist
	}

	sorted := make([]float64, n)
	sorted[0] = math.Inf(1)
	sorted[n-1] = math.Inf(1)
	for i := 1; i < n-1; i++ {
		sorted[i] = diffs[i-1] + diffs[i]
	}
	for pos, idx := range order {
		dist[idx] = sorted[pos]
	}
	return dist
}
