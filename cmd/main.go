// Command synthmarket prints a fabricated OHLCV series for a named market
// scenario. It is a test-data fixture tool, not a trading system.
//
// Usage:
//
//	synthmarket --scenario bull --timeframe 1h --days 7
package main

import (
	"fmt"
	"log"

	"github.com/vadiminshakov/synthmarket/config"
	"github.com/vadiminshakov/synthmarket/internal/services/generator"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Get()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	gen := generator.New(logger)
	klines, err := gen.Generate(cfg.Scenario, cfg.Timeframe, cfg.DurationDays)
	if err != nil {
		log.Fatal(err)
	}

	for i := range klines {
		fmt.Println(klines[i].String())
	}
}
