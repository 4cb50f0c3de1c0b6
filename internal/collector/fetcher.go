package collector

import (
	"time"

	"SectorPulse/internal/model"
)

// Fetcher defines the interface for fetching sector ETF market data.
type Fetcher interface {
	// FetchPeriodBars returns daily bars covering one lookback period label
	// (e.g. "1mo"), ascending by date.
	FetchPeriodBars(ticker, period string) ([]model.DailyBar, error)
	// FetchDailyHistory returns daily bars in [start, end], ascending by date.
	FetchDailyHistory(ticker string, start, end time.Time) ([]model.DailyBar, error)
	Name() string
}
