package engine

import (
	"os"
	"strconv"
	"time"
)

// Config holds all tunables for the recommendation engine.
type Config struct {
	LookbackDays     int
	RecentTaskDays   int
	CacheTTL         time.Duration
	OptimizationGate GatePolicy
	PredictionGate   GatePolicy
}

// DefaultConfig returns the reference thresholds.
func DefaultConfig() Config {
	return Config{
		LookbackDays:     90,
		RecentTaskDays:   30,
		CacheTTL:         time.Hour,
		OptimizationGate: OptimizationGate(),
		PredictionGate:   PredictionGate(),
	}
}

// LoadConfig reads engine configuration from environment variables, falling
// back to defaults for any unset or malformed values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if n, ok := envInt("TEMPO_LOOKBACK_DAYS"); ok && n > 0 {
		cfg.LookbackDays = n
	}
	if n, ok := envInt("TEMPO_RECENT_TASK_DAYS"); ok && n > 0 {
		cfg.RecentTaskDays = n
	}
	if n, ok := envInt("TEMPO_CACHE_TTL_MS"); ok && n > 0 {
		cfg.CacheTTL = time.Duration(n) * time.Millisecond
	}
	if f, ok := envFloat("TEMPO_OPT_MIN_CONFIDENCE"); ok {
		cfg.OptimizationGate.MinConfidence = f
	}
	if f, ok := envFloat("TEMPO_OPT_MIN_IMPACT"); ok {
		cfg.OptimizationGate.MinImpact = f
	}
	if n, ok := envInt("TEMPO_OPT_MAX_EXECUTIONS"); ok && n >= 0 {
		cfg.OptimizationGate.MaxSelected = n
	}
	if f, ok := envFloat("TEMPO_PREDICT_MIN_CONFIDENCE"); ok {
		cfg.PredictionGate.MinConfidence = f
	}
	if n, ok := envInt("TEMPO_PREDICT_MAX_AUTOCREATE"); ok && n >= 0 {
		cfg.PredictionGate.MaxSelected = n
		cfg.PredictionGate.ScanLimit = n
	}

	return cfg
}

func envInt(name string) (int, bool) {
	v := os.Getenv(name)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

func envFloat(name string) (float64, bool) {
	v := os.Getenv(name)
	if v == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 || f > 1 {
		return 0, false
	}
	return f, true
}
