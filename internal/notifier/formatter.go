package notifier

import (
	"fmt"
	"strings"
	"time"

	"SectorPulse/internal/model"
)

// FormatScoreReport renders the scored sector table and the insight text as
// one Telegram message. Snapshots are listed in the order given, which is
// long-term score descending when fed straight from the scorer.
func FormatScoreReport(scored []model.ScoredSnapshot, insights string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 <b>Sector Order Flow</b> | %s\n\n", time.Now().Format("2006-01-02")))

	for i, s := range scored {
		b.WriteString(fmt.Sprintf("%2d. <b>%s</b> (%s) %.2f\n", i+1, s.Sector, s.Ticker, s.LatestPrice))
		b.WriteString(fmt.Sprintf("    short %+.2f | long %+.2f\n", s.ShortTermScore, s.LongTermScore))
	}

	if insights != "" {
		b.WriteString("\n💡 <b>Insights</b>\n")
		b.WriteString(insights)
		b.WriteString("\n")
	}
	return b.String()
}

// FormatReplaySummary condenses a historical replay into per-sector extremes:
// the strongest and weakest long-term day each sector saw in the window.
func FormatReplaySummary(points []model.HistoricalScorePoint) string {
	if len(points) == 0 {
		return "📉 <b>Historical Replay</b>\n\nNo trading day in the range produced any scores."
	}

	first, last := points[0].Date, points[0].Date
	best, worst := points[0], points[0]
	for _, p := range points[1:] {
		if p.Date.Before(first) {
			first = p.Date
		}
		if p.Date.After(last) {
			last = p.Date
		}
		if p.LongTermScore > best.LongTermScore {
			best = p
		}
		if p.LongTermScore < worst.LongTermScore {
			worst = p
		}
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("📉 <b>Historical Replay</b> | %s → %s\n\n",
		first.Format("2006-01-02"), last.Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("Rows: %d\n", len(points)))
	b.WriteString(fmt.Sprintf("Strongest long-term flow: %s %+.2f on %s\n",
		best.Sector, best.LongTermScore, best.Date.Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("Weakest long-term flow: %s %+.2f on %s\n",
		worst.Sector, worst.LongTermScore, worst.Date.Format("2006-01-02")))
	return b.String()
}
