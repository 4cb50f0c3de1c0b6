package recorder

import "SectorPulse/internal/model"

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordScores(_ *ScoreReport) error                  { return nil }
func (n *NoopRecorder) RecordHistory(_ []model.HistoricalScorePoint) error { return nil }
func (n *NoopRecorder) Close() error                                       { return nil }
