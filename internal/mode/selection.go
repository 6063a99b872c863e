package mode

import "sort"

// popUpdate implements §4.9: rank the 2*popsize candidate pool by
// domination score and greedily accept whole levels from highest to
// lowest, breaking the level that would overflow popsize by descending
// crowding distance on the first objective (by ascending objective value
// when nobj=1). Returns the new popsize
// survivors ordered descending by score (index 0 = best), per §4.6.2's
// requirement that survivors be stored in that order for r3 biasing.
func popUpdate(candidates []Individual, nobj, ncon, popsize int) []Individual {
	y := collectY(candidates)
	scores := Pareto(y, nobj, ncon)

	order := make([]int, len(candidates))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool { return scores[order[i]] > scores[order[j]] })

	survivors := make([]Individual, 0, popsize)
	i := 0
	for i < len(order) && len(survivors) < popsize {
		level := scores[order[i]]
		j := i
		for j < len(order) && scores[order[j]] == level {
			j++
		}
		levelIdx := order[i:j]

		if len(survivors)+len(levelIdx) <= popsize {
			for _, idx := range levelIdx {
				survivors = append(survivors, candidates[idx])
			}
		} else {
			need := popsize - len(survivors)
			y0 := make([]float64, len(levelIdx))
			for k, idx := range levelIdx {
				y0[k] = candidates[idx].Y[0]
			}
			within := make([]int, len(levelIdx))
			for k := range within {
				within[k] = k
			}
			if nobj == 1 {
				// A single objective is a total order: keep the best of the level.
				sort.SliceStable(within, func(a, b int) bool { return y0[within[a]] < y0[within[b]] })
			} else {
				crowd := CrowdDist(y0)
				sort.SliceStable(within, func(a, b int) bool { return crowd[within[a]] > crowd[within[b]] })
			}
			for k := 0; k < need; k++ {
				survivors = append(survivors, candidates[levelIdx[within[k]]])
			}
		}
		i = j
	}
	return survivors
}

// preSortSingleObjective implements the §4.7 special case: for nobj=1 the
// population is ordered ascending by that objective before scoring,
// regardless of ncon. paretoLevels then credits the first (best) member of
// a partition with every strictly worse member and leaves the rest at
// zero; the stable sorts and popUpdate's ascending single-objective
// truncation keep equally scored candidates in objective order, with ties
// broken deterministically by original position.
func preSortSingleObjective(candidates []Individual, nobj, ncon int) []Individual {
	if nobj != 1 {
		return candidates
	}
	out := make([]Individual, len(candidates))
	copy(out, candidates)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Y[0] < out[j].Y[0] })
	return out
}
