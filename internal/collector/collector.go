package collector

import (
	"fmt"
	"log"
	"time"

	"SectorPulse/internal/calculator"
	"SectorPulse/internal/config"
	"SectorPulse/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Bars    map[string][]model.DailyBar // keyed by ticker; nil entries simulate fetch failure
	BaseVal float64
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchPeriodBars(ticker, period string) ([]model.DailyBar, error) {
	return m.tickerBars(ticker, calculator.TradingDays(period)+1)
}

func (m *MockFetcher) FetchDailyHistory(ticker string, start, end time.Time) ([]model.DailyBar, error) {
	return m.tickerBars(ticker, len(calculator.BusinessDays(start, end)))
}

func (m *MockFetcher) tickerBars(ticker string, count int) ([]model.DailyBar, error) {
	if m.Bars != nil {
		bars, ok := m.Bars[ticker]
		if !ok {
			return nil, fmt.Errorf("mock: no data for %s", ticker)
		}
		return bars, nil
	}
	base := m.BaseVal
	if base == 0 {
		base = 100
	}
	bars := make([]model.DailyBar, count)
	for i := 0; i < count; i++ {
		bars[i] = model.DailyBar{
			Date:   calculator.Midnight(time.Now().AddDate(0, 0, -(count - i))),
			Close:  base * (1 + float64(i-count/2)*0.001),
			Volume: 1000000,
		}
	}
	return bars, nil
}

// Collector orchestrates data fetching and snapshot construction.
type Collector struct {
	Fetcher Fetcher
	ETFs    []config.ETF
}

// NewCollector creates a new Collector over the configured ETF universe.
func NewCollector(fetcher Fetcher, etfs []config.ETF) *Collector {
	return &Collector{Fetcher: fetcher, ETFs: etfs}
}

// CollectSnapshots fetches current data and builds one SectorSnapshot per
// ticker. Every requested period gets a metric entry, zero-filled when fewer
// than 2 bars are available. A ticker whose latest price cannot be determined
// at all is dropped; the rest of the batch proceeds.
func (c *Collector) CollectSnapshots(periods []string) ([]model.SectorSnapshot, error) {
	var snaps []model.SectorSnapshot
	for _, etf := range c.ETFs {
		snap, ok := c.snapshot(etf, periods)
		if !ok {
			log.Printf("[WARN] no usable data for %s, excluding from batch", etf.Ticker)
			continue
		}
		snaps = append(snaps, snap)
	}
	if len(snaps) == 0 {
		return nil, fmt.Errorf("no sector data collected from %s", c.Fetcher.Name())
	}
	return snaps, nil
}

func (c *Collector) snapshot(etf config.ETF, periods []string) (model.SectorSnapshot, bool) {
	metrics := make(map[string]model.PeriodMetric, len(periods))
	var lastBars []model.DailyBar

	for _, period := range periods {
		bars, metric, err := c.periodMetric(etf.Ticker, period)
		if err != nil {
			log.Printf("[WARN] fetch %s %s: %v, zero-filling", etf.Ticker, period, err)
			metrics[period] = model.PeriodMetric{}
			continue
		}
		if metric == (model.PeriodMetric{}) {
			log.Printf("[WARN] insufficient data for %s in period %s", etf.Ticker, period)
		}
		metrics[period] = metric
		if len(bars) > 0 {
			lastBars = bars
		}
	}

	if len(lastBars) == 0 {
		return model.SectorSnapshot{}, false
	}
	last := lastBars[len(lastBars)-1]
	return model.SectorSnapshot{
		Ticker:       etf.Ticker,
		Sector:       etf.Sector,
		Metrics:      metrics,
		LatestPrice:  last.Close,
		LatestVolume: last.Volume,
	}, true
}

// periodMetric fetches one period's bars and derives its metric. The 1d
// period is computed from the last two closes of a 5-day fetch so a single
// daily bar (or a weekend run) still yields a previous-close delta.
func (c *Collector) periodMetric(ticker, period string) ([]model.DailyBar, model.PeriodMetric, error) {
	if period == "1d" {
		bars, err := c.Fetcher.FetchPeriodBars(ticker, "5d")
		if err != nil {
			return nil, model.PeriodMetric{}, err
		}
		return bars, lastCloseMetric(bars), nil
	}
	bars, err := c.Fetcher.FetchPeriodBars(ticker, period)
	if err != nil {
		return nil, model.PeriodMetric{}, err
	}
	return bars, calculator.WindowMetric(bars, len(bars)), nil
}

// lastCloseMetric derives the one-day metric: change of the last close
// against the previous one, last bar's volume, average volume over the bars.
func lastCloseMetric(bars []model.DailyBar) model.PeriodMetric {
	if len(bars) < 2 {
		return model.PeriodMetric{}
	}
	prev := bars[len(bars)-2].Close
	last := bars[len(bars)-1]
	if prev == 0 {
		return model.PeriodMetric{}
	}
	var sum float64
	for _, b := range bars {
		sum += b.Volume
	}
	return model.PeriodMetric{
		PercentChange: (last.Close - prev) / prev * 100,
		VolumeSum:     last.Volume,
		AvgVolume:     sum / float64(len(bars)),
	}
}

// CollectHistory fetches the daily series for every configured ticker over
// [start, end]. Tickers that fail to fetch are skipped with a warning.
func (c *Collector) CollectHistory(start, end time.Time) ([]model.SectorSeries, error) {
	var series []model.SectorSeries
	for _, etf := range c.ETFs {
		bars, err := c.Fetcher.FetchDailyHistory(etf.Ticker, start, end)
		if err != nil {
			log.Printf("[WARN] fetch history %s: %v, skipping", etf.Ticker, err)
			continue
		}
		if len(bars) == 0 {
			log.Printf("[WARN] no historical data for %s from %s to %s",
				etf.Ticker, start.Format("2006-01-02"), end.Format("2006-01-02"))
			continue
		}
		series = append(series, model.SectorSeries{
			Ticker:    etf.Ticker,
			Sector:    etf.Sector,
			Bars:      bars,
			FetchedAt: time.Now(),
		})
	}
	if len(series) == 0 {
		return nil, fmt.Errorf("no historical data retrieved for any ticker")
	}
	return series, nil
}
