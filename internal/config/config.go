package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"SectorPulse/internal/orderflow"
)

// ETF pairs a ticker with the sector it represents. The universe is ordered;
// scoring and reporting follow this order for ties.
type ETF struct {
	Ticker string `yaml:"ticker"`
	Sector string `yaml:"sector"`
}

// Thresholds drive the insight generator. Neutral is reserved for a future
// neutral-market statement and currently unused.
type Thresholds struct {
	Momentum float64 `yaml:"momentum"`
	Bias     float64 `yaml:"bias"`
	Neutral  float64 `yaml:"neutral"`
}

// Config holds all application configuration.
type Config struct {
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	DataSource struct {
		BaseURL string `yaml:"base_url"`
		APIKey  string `yaml:"api_key"`
	} `yaml:"data_source"`
	ETFs    []ETF `yaml:"etfs"`
	Scoring struct {
		Periods          []string          `yaml:"periods"`
		ShortTermPeriods []string          `yaml:"short_term_periods"`
		LongTermPeriods  []string          `yaml:"long_term_periods"`
		PeriodWeights    orderflow.Weights `yaml:"period_weights"`
		Thresholds       Thresholds        `yaml:"thresholds"`
	} `yaml:"scoring"`
	Replay struct {
		LookbackDays int `yaml:"lookback_days"`
	} `yaml:"replay"`
	Schedule struct {
		DailyCron  string `yaml:"daily_cron"`
		ReplayCron string `yaml:"replay_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("DATA_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("DATA_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("CRON_DAILY"); v != "" {
		cfg.Schedule.DailyCron = v
	}
	if v := os.Getenv("CRON_REPLAY"); v != "" {
		cfg.Schedule.ReplayCron = v
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if len(c.ETFs) == 0 {
		c.ETFs = DefaultETFs()
	}
	if len(c.Scoring.Periods) == 0 {
		c.Scoring.Periods = []string{"1d", "5d", "1mo", "3mo", "6mo", "1y"}
	}
	if len(c.Scoring.ShortTermPeriods) == 0 {
		c.Scoring.ShortTermPeriods = []string{"1d", "5d", "1mo"}
	}
	if len(c.Scoring.LongTermPeriods) == 0 {
		c.Scoring.LongTermPeriods = []string{"3mo", "6mo", "1y"}
	}
	if c.Scoring.Thresholds.Momentum == 0 {
		c.Scoring.Thresholds.Momentum = 0.2
	}
	if c.Scoring.Thresholds.Bias == 0 {
		c.Scoring.Thresholds.Bias = 0.5
	}
	if c.Scoring.Thresholds.Neutral == 0 {
		c.Scoring.Thresholds.Neutral = 0.1
	}
	if c.Replay.LookbackDays == 0 {
		c.Replay.LookbackDays = 90
	}
	// After US market close on trading days
	if c.Schedule.DailyCron == "" {
		c.Schedule.DailyCron = "0 30 21 * * 1-5"
	}
	// Weekend backfill
	if c.Schedule.ReplayCron == "" {
		c.Schedule.ReplayCron = "0 0 12 * * 6"
	}
	if c.Database.SQLitePath == "" {
		c.Database.SQLitePath = "data/sectorpulse.db"
	}
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required")
	}
	if c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required")
	}
	if len(c.ETFs) == 0 {
		return fmt.Errorf("at least one etf is required")
	}
	for _, e := range c.ETFs {
		if e.Ticker == "" {
			return fmt.Errorf("etf with empty ticker")
		}
	}
	if len(c.Scoring.Periods) == 0 {
		return fmt.Errorf("scoring.periods must not be empty")
	}
	return nil
}

// Tickers returns the configured tickers in universe order.
func (c *Config) Tickers() []string {
	out := make([]string, len(c.ETFs))
	for i, e := range c.ETFs {
		out[i] = e.Ticker
	}
	return out
}

// Sectors returns the ticker-to-sector mapping.
func (c *Config) Sectors() map[string]string {
	out := make(map[string]string, len(c.ETFs))
	for _, e := range c.ETFs {
		out[e.Ticker] = e.Sector
	}
	return out
}

// DefaultETFs is the SPDR sector universe plus biotech.
func DefaultETFs() []ETF {
	return []ETF{
		{Ticker: "XLV", Sector: "Health Care"},
		{Ticker: "XLI", Sector: "Industrials"},
		{Ticker: "XLK", Sector: "Technology"},
		{Ticker: "XLRE", Sector: "Real Estate"},
		{Ticker: "XLE", Sector: "Energy"},
		{Ticker: "XLP", Sector: "Consumer Staples"},
		{Ticker: "XLY", Sector: "Consumer Discretionary"},
		{Ticker: "XLF", Sector: "Financials"},
		{Ticker: "XLC", Sector: "Communication Services"},
		{Ticker: "XLU", Sector: "Utilities"},
		{Ticker: "XLB", Sector: "Materials"},
		{Ticker: "XBI", Sector: "Biotechnology"},
	}
}
