package recorder

import "SectorPulse/internal/model"

// ScoreReport holds one scoring run: the ranked snapshots and the insight
// text generated from them.
type ScoreReport struct {
	Scored   []model.ScoredSnapshot
	Insights string
}

// Recorder persists scoring history for later analysis. Recording is
// observational only: the scoring pipeline never reads anything back, so a
// failed or absent recorder cannot affect results.
type Recorder interface {
	RecordScores(report *ScoreReport) error
	RecordHistory(points []model.HistoricalScorePoint) error
	Close() error
}
