package generator

import (
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vadiminshakov/synthmarket/internal/entity"
	"go.uber.org/zap"
)

// ErrUnsupportedTimeframe is returned by RandomWalk for timeframe codes
// outside its map. Unlike Generate, RandomWalk does not fall back.
var ErrUnsupportedTimeframe = errors.New("unsupported timeframe")

// walkTimeframes covers the intervals backtests are usually run at.
// 1M approximates a 30-day month.
var walkTimeframes = map[string]int{
	"1m":  1,
	"5m":  5,
	"10m": 10,
	"15m": 15,
	"30m": 30,
	"1h":  60,
	"2h":  120,
	"4h":  240,
	"8h":  480,
	"1d":  1440,
	"1w":  10080,
	"1M":  43200,
}

// RandomWalk fabricates a candle series whose price path is a random walk
// around the base price, accumulating normally distributed steps per candle.
// The series holds exactly points candles, evenly spaced by the timeframe
// interval and ending one interval before the generation instant, oldest
// candle first.
func (g *Generator) RandomWalk(timeframe string, points int) ([]entity.Kline, error) {
	intervalMinutes, ok := walkTimeframes[timeframe]
	if !ok {
		return nil, errors.Wrapf(ErrUnsupportedTimeframe, "%q", timeframe)
	}
	if points < 0 {
		points = 0
	}

	interval := time.Duration(intervalMinutes) * time.Minute
	start := g.now().Add(-time.Duration(points) * interval)

	klines := make([]entity.Kline, points)
	price := float64(basePrice)
	for i := 0; i < points; i++ {
		price += g.rand.NormFloat64()
		klines[i] = entity.Kline{
			OpenTime: start.Add(time.Duration(i) * interval),
			Open:     decimal.NewFromFloat(price + g.uniform(-1, 1)),
			High:     decimal.NewFromFloat(price + g.uniform(0.5, 2.0)),
			Low:      decimal.NewFromFloat(price - g.uniform(0.5, 2.0)),
			Close:    decimal.NewFromFloat(price + g.uniform(-1, 1)),
			Volume:   decimal.NewFromInt(1 + g.rand.Int63n(999)),
		}
	}

	g.logger.Info("random walk series generated",
		zap.String("timeframe", timeframe),
		zap.Int("interval_minutes", intervalMinutes),
		zap.Int("klines", len(klines)))

	return klines, nil
}
