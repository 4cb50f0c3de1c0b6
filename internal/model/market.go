package model

import "time"

// DailyBar is one trading day of close/volume data for a ticker.
type DailyBar struct {
	Date   time.Time
	Close  float64
	Volume float64
}

// SectorSeries holds daily history for one sector ETF, ascending by date.
// Weekends and holidays are naturally absent; no gap filling is performed.
type SectorSeries struct {
	Ticker    string
	Sector    string
	Bars      []DailyBar
	FetchedAt time.Time
}
