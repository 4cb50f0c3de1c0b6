package orderflow

import (
	"sort"

	"SectorPulse/internal/model"
)

// Weights carries the per-period weight maps for the two composites. The
// maps may name more periods than are currently fetched; extras are ignored.
type Weights struct {
	ShortTerm map[string]float64 `yaml:"short_term"`
	LongTerm  map[string]float64 `yaml:"long_term"`
}

// SortKey selects which score column orders a scored batch.
type SortKey int

const (
	ByLongTerm SortKey = iota
	ByShortTerm
)

// Score normalizes a batch cross-sectionally and computes the short-term and
// long-term order-flow composites for every snapshot. The result is sorted
// descending by LongTermScore; ties keep their input order. Use Sort to
// re-order by the other column.
func Score(snaps []model.SectorSnapshot, periods []string, w Weights, shortPeriods, longPeriods []string) []model.ScoredSnapshot {
	requested := make(map[string]bool, len(periods))
	for _, p := range periods {
		requested[p] = true
	}

	scored := make([]model.ScoredSnapshot, 0, len(snaps))
	for _, n := range Normalize(snaps, periods) {
		scored = append(scored, model.ScoredSnapshot{
			SectorSnapshot: n.Snapshot,
			ShortTermScore: composite(n, requested, w.ShortTerm, shortPeriods),
			LongTermScore:  composite(n, requested, w.LongTerm, longPeriods),
		})
	}
	Sort(scored, ByLongTerm)
	return scored
}

// composite sums weight × NormChange × NormVolume over the group's periods.
// Periods outside the requested set are skipped silently; a period missing
// from the weight map falls back to an equal share of the group.
func composite(n NormalizedSnapshot, requested map[string]bool, weights map[string]float64, group []string) float64 {
	if len(group) == 0 {
		return 0
	}
	score := 0.0
	for _, p := range group {
		if !requested[p] {
			continue
		}
		weight, ok := weights[p]
		if !ok {
			weight = 1.0 / float64(len(group))
		}
		m := n.Metrics[p]
		score += weight * Product(m.Change, m.Volume)
	}
	return score
}

// Sort orders a scored batch descending by the chosen score column, keeping
// input order for ties.
func Sort(scored []model.ScoredSnapshot, key SortKey) {
	sort.SliceStable(scored, func(i, j int) bool {
		if key == ByShortTerm {
			return scored[i].ShortTermScore > scored[j].ShortTermScore
		}
		return scored[i].LongTermScore > scored[j].LongTermScore
	})
}
