package model

import "time"

// PeriodMetric holds the raw figures for one ticker over one lookback period.
// A zero-valued PeriodMetric is the sentinel for insufficient data.
type PeriodMetric struct {
	PercentChange float64 // close-to-close change over the period, in percent
	VolumeSum     float64
	AvgVolume     float64
}

// SectorSnapshot is the current state of one sector ETF across all requested
// periods. Every requested period has an entry in Metrics; periods without
// enough history carry the zero sentinel.
type SectorSnapshot struct {
	Ticker       string
	Sector       string
	Metrics      map[string]PeriodMetric // keyed by period label, e.g. "1mo"
	LatestPrice  float64
	LatestVolume float64
}

// Metric returns the metric for a period, or the zero sentinel when absent.
func (s *SectorSnapshot) Metric(period string) PeriodMetric {
	return s.Metrics[period]
}

// ScoredSnapshot is a SectorSnapshot with its composite order-flow scores.
// Scores combine only periods designated short-term or long-term by config.
type ScoredSnapshot struct {
	SectorSnapshot
	ShortTermScore float64
	LongTermScore  float64
}

// HistoricalScorePoint is one row of the historical replay: the order-flow
// scores one ticker would have shown on one past trading day.
type HistoricalScorePoint struct {
	Date           time.Time
	Ticker         string
	Sector         string
	ShortTermScore float64
	LongTermScore  float64
}
