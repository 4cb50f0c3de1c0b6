package orderflow

import (
	"testing"
	"time"

	"SectorPulse/internal/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// week of Mon 2024-01-08 .. Fri 2024-01-12, preceded by Fri 2024-01-05
var testWeek = []time.Time{
	day(2024, 1, 8), day(2024, 1, 9), day(2024, 1, 10), day(2024, 1, 11), day(2024, 1, 12),
}

func seriesOf(ticker string, dates []time.Time, startClose float64) model.SectorSeries {
	bars := make([]model.DailyBar, len(dates))
	for i, d := range dates {
		bars[i] = model.DailyBar{Date: d, Close: startClose + float64(i), Volume: 1000}
	}
	return model.SectorSeries{Ticker: ticker, Bars: bars}
}

var replayWeights = Weights{
	ShortTerm: map[string]float64{"1d": 1.0},
	LongTerm:  map[string]float64{"1d": 1.0},
}

func TestReplay_SingleTicker(t *testing.T) {
	dates := append([]time.Time{day(2024, 1, 5)}, testWeek...)
	series := []model.SectorSeries{seriesOf("XLK", dates, 100)}
	sectors := map[string]string{"XLK": "Technology"}

	points := Replay(series, sectors, []string{"1d"}, replayWeights,
		[]string{"1d"}, []string{"1d"}, day(2024, 1, 8), day(2024, 1, 12))

	if len(points) != 5 {
		t.Fatalf("expected 5 points (one per business day), got %d", len(points))
	}
	for i, p := range points {
		if !p.Date.Equal(testWeek[i]) {
			t.Errorf("point %d: expected date %v, got %v", i, testWeek[i], p.Date)
		}
		if p.Sector != "Technology" {
			t.Errorf("point %d: expected sector from map, got %q", i, p.Sector)
		}
	}
	// Day one: closes 100 -> 101, equal volumes. NormChange = 1 (only
	// ticker), NormVolume = 2000/1000 = 2, weight 1 => score 2.
	if got := points[0].ShortTermScore; got != 2.0 {
		t.Errorf("expected day-one short score 2.0, got %v", got)
	}
}

func TestReplay_WeekendsExcluded(t *testing.T) {
	dates := append([]time.Time{day(2024, 1, 5)}, testWeek...)
	series := []model.SectorSeries{seriesOf("XLK", dates, 100)}
	sectors := map[string]string{"XLK": "Technology"}

	// Range spanning the weekend before the test week.
	points := Replay(series, sectors, []string{"1d"}, replayWeights,
		[]string{"1d"}, []string{"1d"}, day(2024, 1, 6), day(2024, 1, 9))

	for _, p := range points {
		if wd := p.Date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			t.Errorf("weekend date emitted: %v", p.Date)
		}
	}
	if len(points) != 2 {
		t.Errorf("expected Mon+Tue only, got %d points", len(points))
	}
}

func TestReplay_TickerBelowTwoRowsExcluded(t *testing.T) {
	// XLE trades for the whole window; XBI lists on Monday, so Monday has a
	// single prior observation and must emit nothing, Tuesday onward does.
	xleDates := append([]time.Time{day(2024, 1, 5)}, testWeek...)
	series := []model.SectorSeries{
		seriesOf("XLE", xleDates, 50),
		seriesOf("XBI", testWeek, 80),
	}
	sectors := map[string]string{"XLE": "Energy", "XBI": "Biotechnology"}

	points := Replay(series, sectors, []string{"1d"}, replayWeights,
		[]string{"1d"}, []string{"1d"}, day(2024, 1, 8), day(2024, 1, 12))

	byDay := map[string][]string{}
	for _, p := range points {
		key := p.Date.Format("2006-01-02")
		byDay[key] = append(byDay[key], p.Ticker)
	}
	if got := byDay["2024-01-08"]; len(got) != 1 || got[0] != "XLE" {
		t.Errorf("Monday must carry XLE only, got %v", got)
	}
	if got := byDay["2024-01-09"]; len(got) != 2 {
		t.Errorf("Tuesday must carry both tickers, got %v", got)
	}
}

func TestReplay_UnmappedTickerSkipped(t *testing.T) {
	dates := append([]time.Time{day(2024, 1, 5)}, testWeek...)
	series := []model.SectorSeries{
		seriesOf("XLK", dates, 100),
		seriesOf("SPY", dates, 400), // not in the sector map
	}
	sectors := map[string]string{"XLK": "Technology"}

	points := Replay(series, sectors, []string{"1d"}, replayWeights,
		[]string{"1d"}, []string{"1d"}, day(2024, 1, 8), day(2024, 1, 8))
	for _, p := range points {
		if p.Ticker == "SPY" {
			t.Error("ticker outside the sector map must not be scored")
		}
	}
	if len(points) != 1 {
		t.Errorf("expected 1 point, got %d", len(points))
	}
}

func TestReplay_EmptyRange(t *testing.T) {
	dates := append([]time.Time{day(2024, 1, 5)}, testWeek...)
	series := []model.SectorSeries{seriesOf("XLK", dates, 100)}
	sectors := map[string]string{"XLK": "Technology"}

	// A weekend-only range has no business days.
	points := Replay(series, sectors, []string{"1d"}, replayWeights,
		[]string{"1d"}, []string{"1d"}, day(2024, 1, 6), day(2024, 1, 7))
	if len(points) != 0 {
		t.Errorf("expected empty result for weekend-only range, got %d", len(points))
	}

	// No data at all in range: every day excludes every ticker.
	points = Replay(series, sectors, []string{"1d"}, replayWeights,
		[]string{"1d"}, []string{"1d"}, day(2020, 1, 6), day(2020, 1, 10))
	if len(points) != 0 {
		t.Errorf("expected empty result when no ticker survives, got %d", len(points))
	}
}

func TestReplay_InsufficientPeriodZeroFills(t *testing.T) {
	// Only 3 observations but a 1mo (20-day) period requested: the period
	// window still has >= 2 rows, so it computes; a 1y window computes over
	// whatever is available too. The day must not abort.
	dates := []time.Time{day(2024, 1, 8), day(2024, 1, 9), day(2024, 1, 10)}
	series := []model.SectorSeries{seriesOf("XLV", dates, 100)}
	sectors := map[string]string{"XLV": "Health Care"}

	points := Replay(series, sectors, []string{"1d", "1mo"},
		Weights{ShortTerm: map[string]float64{"1d": 1.0}, LongTerm: map[string]float64{"1mo": 1.0}},
		[]string{"1d"}, []string{"1mo"}, day(2024, 1, 10), day(2024, 1, 10))
	if len(points) != 1 {
		t.Fatalf("expected 1 point, got %d", len(points))
	}
}
