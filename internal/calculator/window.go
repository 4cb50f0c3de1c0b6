package calculator

import "SectorPulse/internal/model"

// periodTradingDays maps a period label to an approximate trading-day count.
// These are fixed approximations (a month is taken as 20 trading days), not
// calendar-exact conversions.
var periodTradingDays = map[string]int{
	"1d":  1,
	"5d":  5,
	"1mo": 20,
	"3mo": 60,
	"6mo": 120,
	"1y":  252,
}

// TradingDays returns the approximate trading-day count for a period label.
// Unknown labels default to 1.
func TradingDays(period string) int {
	if d, ok := periodTradingDays[period]; ok {
		return d
	}
	return 1
}

// WindowMetric computes change and volume figures over the trailing days+1
// bars of a daily series. Fewer than 2 bars in the window, or a zero first
// close, yields the zero sentinel metric rather than an error.
func WindowMetric(bars []model.DailyBar, days int) model.PeriodMetric {
	window := TailBars(bars, days+1)
	if len(window) < 2 {
		return model.PeriodMetric{}
	}
	first := window[0].Close
	last := window[len(window)-1].Close
	if first == 0 {
		return model.PeriodMetric{}
	}

	var sum float64
	for _, b := range window {
		sum += b.Volume
	}
	return model.PeriodMetric{
		PercentChange: (last - first) / first * 100,
		VolumeSum:     sum,
		AvgVolume:     sum / float64(len(window)),
	}
}

// TailBars returns at most the last n bars of a series.
func TailBars(bars []model.DailyBar, n int) []model.DailyBar {
	if n <= 0 {
		return nil
	}
	if len(bars) > n {
		return bars[len(bars)-n:]
	}
	return bars
}
