package insight

import (
	"strings"
	"testing"

	"SectorPulse/internal/model"
)

func scoredBatch(rows ...[3]interface{}) []model.ScoredSnapshot {
	out := make([]model.ScoredSnapshot, len(rows))
	for i, r := range rows {
		out[i] = model.ScoredSnapshot{
			SectorSnapshot: model.SectorSnapshot{Ticker: r[0].(string), Sector: r[0].(string)},
			ShortTermScore: r[1].(float64),
			LongTermScore:  r[2].(float64),
		}
	}
	return out
}

var periods = []string{"1d", "5d", "1mo", "3mo", "6mo", "1y"}

func TestGenerate_Rotation(t *testing.T) {
	batch := scoredBatch(
		[3]interface{}{"Energy", 1.5, 0.1},
		[3]interface{}{"Technology", 0.1, 1.2},
	)
	// Large thresholds keep momentum/bias quiet.
	got := Generate(batch, periods, 100, 100, 0.1)
	if !strings.Contains(got, "shifting out of Technology") || !strings.Contains(got, "to Energy") {
		t.Errorf("expected rotation from Technology to Energy, got %q", got)
	}
	if !strings.Contains(got, "(long: 1.20)") || !strings.Contains(got, "(short: 1.50)") {
		t.Errorf("expected scores to 2 decimals, got %q", got)
	}
}

func TestGenerate_NoRotationWhenSameLeader(t *testing.T) {
	batch := scoredBatch(
		[3]interface{}{"Technology", 2.0, 2.0},
		[3]interface{}{"Utilities", -1.0, -1.0},
	)
	got := Generate(batch, periods, 100, 100, 0.1)
	if strings.Contains(got, "shifting out of") {
		t.Errorf("same short/long leader must not emit rotation, got %q", got)
	}
}

func TestGenerate_Momentum(t *testing.T) {
	batch := scoredBatch(
		[3]interface{}{"Energy", 1.0, 0.5},      // accelerating: 1.0 > 0.5+0.2
		[3]interface{}{"Financials", -0.5, 0.3}, // reduced: -0.5 < 0.3-0.2
		[3]interface{}{"Utilities", 0.4, 0.3},   // within threshold: silent
	)
	got := Generate(batch, periods, 0.2, 100, 0.1)
	if !strings.Contains(got, "Energy is experiencing accelerating momentum (short: 1.00 > long: 0.50).") {
		t.Errorf("missing accelerating statement, got %q", got)
	}
	if !strings.Contains(got, "Financials is experiencing reduced momentum (short: -0.50 < long: 0.30).") {
		t.Errorf("missing reduced statement, got %q", got)
	}
	if strings.Contains(got, "Utilities is experiencing") {
		t.Errorf("within-threshold sector must stay silent, got %q", got)
	}
}

func TestGenerate_StrongBias(t *testing.T) {
	bull := scoredBatch(
		[3]interface{}{"A", 1.0, 1.0},
		[3]interface{}{"B", 0.8, 0.9},
	)
	got := Generate(bull, periods, 100, 0.5, 0.1)
	if !strings.Contains(got, "strong bullish flow") {
		t.Errorf("expected strong bullish bias, got %q", got)
	}

	bear := scoredBatch(
		[3]interface{}{"A", -1.0, -1.0},
		[3]interface{}{"B", -0.8, -0.9},
	)
	got = Generate(bear, periods, 100, 0.5, 0.1)
	if !strings.Contains(got, "strong bearish flow") {
		t.Errorf("expected strong bearish bias, got %q", got)
	}
}

func TestGenerate_RelativeBias(t *testing.T) {
	batch := scoredBatch(
		[3]interface{}{"A", 0.3, 0.1},
		[3]interface{}{"B", 0.1, -0.1},
	)
	got := Generate(batch, periods, 100, 0.5, 0.1)
	if !strings.Contains(got, "more bullish than long-term") {
		t.Errorf("expected more-bullish statement, got %q", got)
	}

	batch = scoredBatch(
		[3]interface{}{"A", -0.3, 0.1},
		[3]interface{}{"B", -0.1, -0.1},
	)
	got = Generate(batch, periods, 100, 0.5, 0.1)
	if !strings.Contains(got, "more bearish than long-term") {
		t.Errorf("expected more-bearish statement, got %q", got)
	}
}

func TestGenerate_EqualMeansEmitNoBias(t *testing.T) {
	// Equal short and long means fall through every bias branch.
	batch := scoredBatch(
		[3]interface{}{"A", 0.1, 0.1},
		[3]interface{}{"B", -0.1, -0.1},
	)
	got := Generate(batch, periods, 100, 0.5, 0.1)
	if got != Fallback {
		t.Errorf("equal means with quiet thresholds must yield the fallback, got %q", got)
	}
}

func TestGenerate_Fallback(t *testing.T) {
	if got := Generate(nil, periods, 0.2, 0.5, 0.1); got != Fallback {
		t.Errorf("empty batch must yield fallback, got %q", got)
	}
}

func TestGenerate_StatementsNewlineJoined(t *testing.T) {
	batch := scoredBatch(
		[3]interface{}{"Energy", 2.0, 0.1},
		[3]interface{}{"Technology", 0.1, 1.2},
	)
	got := Generate(batch, periods, 0.2, 100, 0.1)
	if lines := strings.Split(got, "\n"); len(lines) < 2 {
		t.Errorf("expected multiple newline-joined statements, got %q", got)
	}
}
