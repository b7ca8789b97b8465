// Package config parses the three generator inputs from the command line.
package config

import (
	"flag"

	"github.com/pkg/errors"
	"github.com/vadiminshakov/synthmarket/internal/entity"
)

// Config holds the parsed generator inputs.
type Config struct {
	Scenario     entity.Scenario
	Timeframe    string
	DurationDays int
}

// Get parses and validates command-line flags. Scenario validation is strict;
// the timeframe is passed through as-is because the generator resolves
// unknown codes itself.
func Get() (Config, error) {
	scenario := flag.String("scenario", "sideways", "market scenario, one of: "+entity.ScenarioList())
	timeframe := flag.String("timeframe", "1h", "candle timeframe: 1m, 5m or 1h (unknown codes fall back to 1h)")
	days := flag.Int("days", 1, "number of days the series should span")
	flag.Parse()

	cfg := Config{
		Scenario:     entity.Scenario(*scenario),
		Timeframe:    *timeframe,
		DurationDays: *days,
	}

	if !cfg.Scenario.Valid() {
		return Config{}, errors.Errorf("invalid --scenario provided, --scenario=%s, choose one of: %s", *scenario, entity.ScenarioList())
	}

	return cfg, nil
}
