package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"SectorPulse/internal/collector"
	"SectorPulse/internal/config"
	"SectorPulse/internal/insight"
	"SectorPulse/internal/notifier"
	"SectorPulse/internal/orderflow"
	"SectorPulse/internal/recorder"
)

// Scheduler manages the cron tasks: the daily scoring run and the periodic
// historical replay.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Notifier  *notifier.TelegramNotifier
	Recorder  recorder.Recorder
	Cfg       *config.Config
	Ctx       context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, col *collector.Collector, tn *notifier.TelegramNotifier, rec recorder.Recorder, cfg *config.Config) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Collector: col,
		Notifier:  tn,
		Recorder:  rec,
		Cfg:       cfg,
		Ctx:       ctx,
	}
}

// RegisterAll registers the daily scoring task and the replay task.
func (s *Scheduler) RegisterAll(dailyCron, replayCron string) error {
	if _, err := s.Cron.AddFunc(dailyCron, s.dailyTask); err != nil {
		return fmt.Errorf("register daily task: %w", err)
	}
	if _, err := s.Cron.AddFunc(replayCron, s.replayTask); err != nil {
		return fmt.Errorf("register replay task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunDailyNow executes the daily scoring task immediately (manual trigger /
// RUN_ON_START).
func (s *Scheduler) RunDailyNow() {
	s.dailyTask()
}

func (s *Scheduler) dailyTask() {
	log.Println("[INFO] running daily scoring task")
	report, err := s.scoreOnce()
	if err != nil {
		log.Printf("[ERROR] daily scoring: %v", err)
		s.trySend(fmt.Sprintf("❌ Daily scoring failed: %v", err))
		return
	}

	s.trySend(notifier.FormatScoreReport(report.Scored, report.Insights))

	if err := s.Recorder.RecordScores(report); err != nil {
		log.Printf("[ERROR] record scores: %v", err)
	}
}

// scoreOnce runs the full current-snapshot pipeline: fetch, score, insights.
func (s *Scheduler) scoreOnce() (*recorder.ScoreReport, error) {
	sc := s.Cfg.Scoring
	snaps, err := s.Collector.CollectSnapshots(sc.Periods)
	if err != nil {
		return nil, fmt.Errorf("collect snapshots: %w", err)
	}

	scored := orderflow.Score(snaps, sc.Periods, sc.PeriodWeights, sc.ShortTermPeriods, sc.LongTermPeriods)
	insights := insight.Generate(scored, sc.Periods,
		sc.Thresholds.Momentum, sc.Thresholds.Bias, sc.Thresholds.Neutral)
	return &recorder.ScoreReport{Scored: scored, Insights: insights}, nil
}

func (s *Scheduler) replayTask() {
	log.Println("[INFO] running historical replay task")
	summary, err := s.replayOnce()
	if err != nil {
		log.Printf("[ERROR] replay: %v", err)
		s.trySend(fmt.Sprintf("❌ Historical replay failed: %v", err))
		return
	}
	s.trySend(summary)
}

// replayOnce backfills scores over the configured lookback window. History is
// fetched from a year before the window start so every replay day has its
// full trailing context.
func (s *Scheduler) replayOnce() (string, error) {
	sc := s.Cfg.Scoring
	end := time.Now()
	start := end.AddDate(0, 0, -s.Cfg.Replay.LookbackDays)
	fetchStart := start.AddDate(-1, 0, -7)

	series, err := s.Collector.CollectHistory(fetchStart, end)
	if err != nil {
		return "", fmt.Errorf("collect history: %w", err)
	}

	points := orderflow.Replay(series, s.Cfg.Sectors(), sc.Periods, sc.PeriodWeights,
		sc.ShortTermPeriods, sc.LongTermPeriods, start, end)
	log.Printf("[INFO] replay produced %d score points over %d days lookback",
		len(points), s.Cfg.Replay.LookbackDays)

	if err := s.Recorder.RecordHistory(points); err != nil {
		log.Printf("[ERROR] record history: %v", err)
	}
	return notifier.FormatReplaySummary(points), nil
}

// Commands lists the chat commands this bot answers; the notifier's command
// loop dispatches to them and replies with the command list for anything else.
func (s *Scheduler) Commands() []notifier.Command {
	return []notifier.Command{
		{Name: "/scores", About: "current sector order-flow ranking", Run: s.scoresCommand},
		{Name: "/insights", About: "insight statements for the current snapshot", Run: s.insightsCommand},
		{Name: "/replay", About: "historical replay over the lookback window", Run: s.replayCommand},
	}
}

func (s *Scheduler) scoresCommand() string {
	report, err := s.scoreOnce()
	if err != nil {
		return fmt.Sprintf("❌ scoring failed: %v", err)
	}
	return notifier.FormatScoreReport(report.Scored, report.Insights)
}

func (s *Scheduler) insightsCommand() string {
	report, err := s.scoreOnce()
	if err != nil {
		return fmt.Sprintf("❌ scoring failed: %v", err)
	}
	return "💡 <b>Insights</b>\n" + report.Insights
}

func (s *Scheduler) replayCommand() string {
	summary, err := s.replayOnce()
	if err != nil {
		return fmt.Sprintf("❌ replay failed: %v", err)
	}
	return summary
}

func (s *Scheduler) trySend(text string) {
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] telegram send: %v", err)
	}
}
