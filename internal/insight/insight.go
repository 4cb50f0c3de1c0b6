// Package insight derives descriptive market statements from a scored
// sector batch: rotation between leaders, per-sector momentum shifts, and
// the overall market bias.
package insight

import (
	"fmt"
	"strings"

	"SectorPulse/internal/model"
	"SectorPulse/internal/orderflow"
)

// Fallback is returned when no statement qualifies.
const Fallback = "No significant market insights detected."

// Generate builds the newline-joined insight text for a scored batch.
// Momentum statements follow the order of the batch passed in, so callers
// feeding the output of orderflow.Score get them ranked by long-term score.
// neutralThreshold is reserved and currently unused.
func Generate(scored []model.ScoredSnapshot, periods []string, momentumThreshold, biasThreshold, neutralThreshold float64) string {
	if len(scored) == 0 {
		return Fallback
	}

	var insights []string

	// Rotation: the short-term leader breaking away from the long-term one.
	shortTop := top(scored, orderflow.ByShortTerm)
	longTop := top(scored, orderflow.ByLongTerm)
	if shortTop.Sector != longTop.Sector {
		insights = append(insights, fmt.Sprintf(
			"Market is shifting out of %s (long: %.2f) to %s (short: %.2f) in the short term.",
			longTop.Sector, longTop.LongTermScore, shortTop.Sector, shortTop.ShortTermScore))
	}

	// Momentum: sectors whose short-term flow has pulled away from long-term.
	for _, s := range scored {
		switch {
		case s.ShortTermScore > s.LongTermScore+momentumThreshold:
			insights = append(insights, fmt.Sprintf(
				"%s is experiencing accelerating momentum (short: %.2f > long: %.2f).",
				s.Sector, s.ShortTermScore, s.LongTermScore))
		case s.ShortTermScore < s.LongTermScore-momentumThreshold:
			insights = append(insights, fmt.Sprintf(
				"%s is experiencing reduced momentum (short: %.2f < long: %.2f).",
				s.Sector, s.ShortTermScore, s.LongTermScore))
		}
	}

	// Overall bias from the cross-sectional score means. Exactly equal means
	// fall through every branch and emit nothing.
	avgShort, avgLong := scoreMeans(scored)
	switch {
	case avgShort > biasThreshold && avgLong > biasThreshold:
		insights = append(insights, fmt.Sprintf(
			"Overall market shows strong bullish flow in both short and long term (short avg: %.2f, long avg: %.2f).",
			avgShort, avgLong))
	case avgShort < -biasThreshold && avgLong < -biasThreshold:
		insights = append(insights, fmt.Sprintf(
			"Overall market shows strong bearish flow in both short and long term (short avg: %.2f, long avg: %.2f).",
			avgShort, avgLong))
	case avgShort > avgLong:
		insights = append(insights, fmt.Sprintf(
			"Short-term flow is more bullish than long-term, indicating potential recovery (short avg: %.2f, long avg: %.2f).",
			avgShort, avgLong))
	case avgShort < avgLong:
		insights = append(insights, fmt.Sprintf(
			"Short-term flow is more bearish than long-term, indicating potential pullback (short avg: %.2f, long avg: %.2f).",
			avgShort, avgLong))
	}

	if len(insights) == 0 {
		return Fallback
	}
	return strings.Join(insights, "\n")
}

// top returns the first snapshot carrying the maximum of the chosen score
// column, scanning in batch order.
func top(scored []model.ScoredSnapshot, key orderflow.SortKey) model.ScoredSnapshot {
	best := scored[0]
	for _, s := range scored[1:] {
		if key == orderflow.ByShortTerm && s.ShortTermScore > best.ShortTermScore {
			best = s
		}
		if key == orderflow.ByLongTerm && s.LongTermScore > best.LongTermScore {
			best = s
		}
	}
	return best
}

func scoreMeans(scored []model.ScoredSnapshot) (avgShort, avgLong float64) {
	for _, s := range scored {
		avgShort += s.ShortTermScore
		avgLong += s.LongTermScore
	}
	n := float64(len(scored))
	return avgShort / n, avgLong / n
}
