package orderflow

import (
	"math"
	"sort"
	"time"

	"SectorPulse/internal/calculator"
	"SectorPulse/internal/model"
)

// replayWindowBars caps the history considered per day: one year of trading
// days plus one bar for the year-over-year delta.
const replayWindowBars = 253

// Replay re-derives the order-flow scores for every business day in
// [start, end], producing one HistoricalScorePoint per surviving ticker per
// day. For each day it windows every ticker's series to the observations at
// or before that day, rebuilds the per-period metrics, and scores the day's
// tickers cross-sectionally against each other only.
//
// A ticker with fewer than 2 observations as of a day is excluded from that
// day entirely. Tickers absent from the sectors map are never scored. An
// empty range, or a range where no day survives, returns an empty slice.
//
// Cost is O(days × tickers × periods) with a trailing-window scan per ticker
// per day. Fine for a year of daily replay over a dozen tickers; longer
// backfills would need incremental rolling windows instead.
func Replay(series []model.SectorSeries, sectors map[string]string, periods []string, w Weights, shortPeriods, longPeriods []string, start, end time.Time) []model.HistoricalScorePoint {
	var points []model.HistoricalScorePoint

	for _, day := range calculator.BusinessDays(start, end) {
		var snaps []model.SectorSnapshot
		for i := range series {
			sector, ok := sectors[series[i].Ticker]
			if !ok {
				continue
			}
			snap, ok := snapshotAsOf(&series[i], sector, day, periods)
			if !ok {
				continue
			}
			snaps = append(snaps, snap)
		}
		if len(snaps) == 0 {
			continue
		}

		for _, s := range Score(snaps, periods, w, shortPeriods, longPeriods) {
			if !finite(s.ShortTermScore) || !finite(s.LongTermScore) {
				continue
			}
			points = append(points, model.HistoricalScorePoint{
				Date:           day,
				Ticker:         s.Ticker,
				Sector:         s.Sector,
				ShortTermScore: s.ShortTermScore,
				LongTermScore:  s.LongTermScore,
			})
		}
	}
	return points
}

// snapshotAsOf rebuilds the snapshot a ticker would have shown at end of day,
// from the trailing year of observations at or before it. Reports false when
// fewer than 2 observations exist, which excludes the ticker for that day.
func snapshotAsOf(s *model.SectorSeries, sector string, day time.Time, periods []string) (model.SectorSnapshot, bool) {
	bars := calculator.TailBars(barsThrough(s.Bars, day), replayWindowBars)
	if len(bars) < 2 {
		return model.SectorSnapshot{}, false
	}

	metrics := make(map[string]model.PeriodMetric, len(periods))
	for _, p := range periods {
		metrics[p] = calculator.WindowMetric(bars, calculator.TradingDays(p))
	}
	last := bars[len(bars)-1]
	return model.SectorSnapshot{
		Ticker:       s.Ticker,
		Sector:       sector,
		Metrics:      metrics,
		LatestPrice:  last.Close,
		LatestVolume: last.Volume,
	}, true
}

// barsThrough returns the prefix of bars dated at or before day. Bars are
// ascending by date, so this is a binary search for the cut point.
func barsThrough(bars []model.DailyBar, day time.Time) []model.DailyBar {
	cutoff := calculator.Midnight(day).AddDate(0, 0, 1)
	n := sort.Search(len(bars), func(i int) bool {
		return !bars[i].Date.Before(cutoff)
	})
	return bars[:n]
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
