package calculator

import (
	"testing"
	"time"

	"SectorPulse/internal/model"
)

func bars(closes ...float64) []model.DailyBar {
	out := make([]model.DailyBar, len(closes))
	base := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	for i, c := range closes {
		out[i] = model.DailyBar{Date: base.AddDate(0, 0, i), Close: c, Volume: 100}
	}
	return out
}

func TestWindowMetric_Basic(t *testing.T) {
	// 5 bars, 2-day window: last 3 bars, change 110 -> 121 = +10%.
	m := WindowMetric(bars(100, 105, 110, 115.5, 121), 2)
	if m.PercentChange != 10 {
		t.Errorf("expected +10%% change, got %v", m.PercentChange)
	}
	if m.VolumeSum != 300 {
		t.Errorf("expected volume sum 300, got %v", m.VolumeSum)
	}
	if m.AvgVolume != 100 {
		t.Errorf("expected avg volume 100, got %v", m.AvgVolume)
	}
}

func TestWindowMetric_WholeSeriesWhenShort(t *testing.T) {
	// Window larger than the series: use everything available.
	m := WindowMetric(bars(100, 110), 252)
	if m.PercentChange != 10 {
		t.Errorf("expected +10%% over the whole series, got %v", m.PercentChange)
	}
}

func TestWindowMetric_InsufficientDataZeroFills(t *testing.T) {
	if m := WindowMetric(bars(100), 5); m != (model.PeriodMetric{}) {
		t.Errorf("single bar must zero-fill, got %+v", m)
	}
	if m := WindowMetric(nil, 5); m != (model.PeriodMetric{}) {
		t.Errorf("no bars must zero-fill, got %+v", m)
	}
}

func TestWindowMetric_ZeroFirstClose(t *testing.T) {
	if m := WindowMetric(bars(0, 100), 1); m != (model.PeriodMetric{}) {
		t.Errorf("zero first close must zero-fill, got %+v", m)
	}
}

func TestTradingDays(t *testing.T) {
	tests := []struct {
		period string
		days   int
	}{
		{"1d", 1},
		{"5d", 5},
		{"1mo", 20},
		{"3mo", 60},
		{"6mo", 120},
		{"1y", 252},
		{"2wk", 1}, // unknown labels default to 1
	}
	for _, tt := range tests {
		if got := TradingDays(tt.period); got != tt.days {
			t.Errorf("TradingDays(%q): expected %d, got %d", tt.period, tt.days, got)
		}
	}
}

func TestBusinessDays(t *testing.T) {
	// Fri 2024-03-01 .. Tue 2024-03-05: Fri, Mon, Tue.
	days := BusinessDays(
		time.Date(2024, 3, 1, 15, 30, 0, 0, time.UTC),
		time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
	)
	if len(days) != 3 {
		t.Fatalf("expected 3 business days, got %d: %v", len(days), days)
	}
	for _, d := range days {
		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			t.Errorf("weekend included: %v", d)
		}
		if d.Hour() != 0 {
			t.Errorf("expected midnight, got %v", d)
		}
	}
}

func TestBusinessDays_EmptyRange(t *testing.T) {
	if days := BusinessDays(day(2024, 3, 5), day(2024, 3, 1)); len(days) != 0 {
		t.Errorf("inverted range must be empty, got %v", days)
	}
	// Saturday-to-Sunday range holds no business day.
	if days := BusinessDays(day(2024, 3, 2), day(2024, 3, 3)); len(days) != 0 {
		t.Errorf("weekend-only range must be empty, got %v", days)
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
