// Package generator produces fabricated OHLCV candle series for testing
// trading strategies against named market scenarios without touching a real
// exchange.
package generator

import (
	"math"
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vadiminshakov/synthmarket/internal/entity"
	"go.uber.org/zap"
)

// ErrInvalidScenario is returned when the requested scenario is not one of
// the recognized values.
var ErrInvalidScenario = errors.New("invalid scenario")

const basePrice = 100

// Generator fabricates synthetic kline series. It owns its random source, so
// a single Generator must not be shared between goroutines; construct one
// per caller instead.
type Generator struct {
	logger *zap.Logger
	rand   *rand.Rand
	now    func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithRand replaces the random source, allowing deterministic seeding in tests.
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) {
		g.rand = r
	}
}

// WithClock replaces the wall clock the series end time is taken from.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// New creates a Generator. A nil logger is replaced with a no-op one.
func New(logger *zap.Logger, opts ...Option) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	g := &Generator{
		logger: logger,
		rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
		now:    time.Now,
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

// Generate fabricates a candle series for the given market scenario covering
// the most recent durationDays up to now, one candle per timeframe interval,
// oldest candle first.
//
// Unrecognized timeframe codes fall back to a 60-minute interval. A non-positive
// duration yields an empty series. Only an unrecognized scenario is an error.
func (g *Generator) Generate(scenario entity.Scenario, timeframe string, durationDays int) ([]entity.Kline, error) {
	if !scenario.Valid() {
		return nil, errors.Wrapf(ErrInvalidScenario, "%q, choose one of: %s", scenario, entity.ScenarioList())
	}

	intervalMinutes := entity.IntervalMinutes(timeframe)
	interval := time.Duration(intervalMinutes) * time.Minute
	numPoints := durationDays * 24 * 60 / intervalMinutes
	if numPoints < 0 {
		numPoints = 0
	}

	// the newest candle carries the generation instant, every earlier candle
	// steps back one interval; trend index 0 belongs to the oldest candle.
	end := g.now()
	klines := make([]entity.Kline, numPoints)
	for i := 0; i < numPoints; i++ {
		trend := g.trend(scenario, i)
		klines[i] = entity.Kline{
			OpenTime: end.Add(-time.Duration(numPoints-1-i) * interval),
			Open:     decimal.NewFromFloat(trend + g.uniform(0, 2)),
			High:     decimal.NewFromFloat(trend - g.uniform(0, 1)),
			Low:      decimal.NewFromFloat(trend),
			Close:    decimal.NewFromFloat(trend),
			Volume:   decimal.NewFromInt(100 + g.rand.Int63n(9900)),
		}
	}

	g.logger.Info("synthetic series generated",
		zap.String("scenario", scenario.String()),
		zap.String("timeframe", timeframe),
		zap.Int("interval_minutes", intervalMinutes),
		zap.Int("klines", len(klines)))

	return klines, nil
}

// trend computes the base price for candle index i (oldest candle is index 0).
func (g *Generator) trend(scenario entity.Scenario, i int) float64 {
	switch scenario {
	case entity.ScenarioBull:
		return basePrice + float64(i)*0.1
	case entity.ScenarioBear:
		return basePrice - float64(i)*0.1
	case entity.ScenarioSideways:
		return basePrice + math.Sin(float64(i)/10)
	case entity.ScenarioHighVolatility:
		return basePrice + g.uniform(-10, 10)
	case entity.ScenarioLowVolatility:
		return basePrice + g.uniform(-2, 2)
	}
	return basePrice
}

// uniform draws from [min, max).
func (g *Generator) uniform(min, max float64) float64 {
	return min + g.rand.Float64()*(max-min)
}
