package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"SectorPulse/internal/model"
)

// SQLiteRecorder persists scoring history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so the score history stays readable while a recording is in flight.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS sector_scores (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp     INTEGER NOT NULL,
			ticker        TEXT NOT NULL,
			sector        TEXT,
			latest_price  REAL,
			latest_volume REAL,
			short_score   REAL,
			long_score    REAL,
			rank          INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_scores_ts ON sector_scores(timestamp)`,

		`CREATE TABLE IF NOT EXISTS insight_reports (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp INTEGER NOT NULL,
			insights  TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_insights_ts ON insight_reports(timestamp)`,

		`CREATE TABLE IF NOT EXISTS historical_scores (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			recorded_at INTEGER NOT NULL,
			date        TEXT NOT NULL,
			ticker      TEXT NOT NULL,
			sector      TEXT,
			short_score REAL,
			long_score  REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_hist_date ON historical_scores(date)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordScores(report *ScoreReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().Unix()
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	for i, s := range report.Scored {
		if _, err := tx.Exec(`INSERT INTO sector_scores
			(timestamp, ticker, sector, latest_price, latest_volume, short_score, long_score, rank)
			VALUES (?,?,?,?,?,?,?,?)`,
			now, s.Ticker, s.Sector, s.LatestPrice, s.LatestVolume,
			s.ShortTermScore, s.LongTermScore, i+1,
		); err != nil {
			tx.Rollback()
			return err
		}
	}
	if _, err := tx.Exec(`INSERT INTO insight_reports (timestamp, insights) VALUES (?,?)`,
		now, report.Insights,
	); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (r *SQLiteRecorder) RecordHistory(points []model.HistoricalScorePoint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().Unix()
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	for _, p := range points {
		if _, err := tx.Exec(`INSERT INTO historical_scores
			(recorded_at, date, ticker, sector, short_score, long_score)
			VALUES (?,?,?,?,?,?)`,
			now, p.Date.Format("2006-01-02"), p.Ticker, p.Sector,
			p.ShortTermScore, p.LongTermScore,
		); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
