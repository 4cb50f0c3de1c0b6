package orderflow

import (
	"math"

	"SectorPulse/internal/model"
)

// NormalizedMetric holds the dimensionless per-period values the scorer
// consumes: price change scaled into [-1, 1] by the batch-wide maximum, and
// volume concentration (period sum over period average).
type NormalizedMetric struct {
	Change Value
	Volume Value
}

// NormalizedSnapshot pairs a snapshot with its normalized metrics per period.
type NormalizedSnapshot struct {
	Snapshot model.SectorSnapshot
	Metrics  map[string]NormalizedMetric
}

// MaxAbsChange returns the largest absolute percent change for one period
// across the whole batch. This is the cross-sectional reduction: it depends
// on every ticker in the batch, so normalizing against a different universe
// changes every result.
func MaxAbsChange(snaps []model.SectorSnapshot, period string) float64 {
	maxAbs := 0.0
	for i := range snaps {
		if abs := math.Abs(snaps[i].Metric(period).PercentChange); abs > maxAbs {
			maxAbs = abs
		}
	}
	return maxAbs
}

// Normalize applies cross-sectional normalization to a batch of snapshots.
// Pass one computes the per-period max absolute change over the batch; pass
// two scales each snapshot against it. A degenerate period (max of zero)
// normalizes to zero change for every ticker rather than dividing by zero.
func Normalize(snaps []model.SectorSnapshot, periods []string) []NormalizedSnapshot {
	maxAbs := make(map[string]float64, len(periods))
	for _, p := range periods {
		maxAbs[p] = MaxAbsChange(snaps, p)
	}

	out := make([]NormalizedSnapshot, len(snaps))
	for i := range snaps {
		metrics := make(map[string]NormalizedMetric, len(periods))
		for _, p := range periods {
			m := snaps[i].Metric(p)
			change := Value{Num: 0, Valid: true}
			if maxAbs[p] != 0 {
				change = NewValue(m.PercentChange / maxAbs[p])
			}
			metrics[p] = NormalizedMetric{
				Change: change,
				Volume: NewValue(m.VolumeSum / m.AvgVolume),
			}
		}
		out[i] = NormalizedSnapshot{Snapshot: snaps[i], Metrics: metrics}
	}
	return out
}
