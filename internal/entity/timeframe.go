package entity

import "time"

// DefaultIntervalMinutes is the fallback interval for timeframe codes the
// scenario generator does not recognize.
const DefaultIntervalMinutes = 60

var scenarioTimeframes = map[string]int{
	"1m": 1,
	"5m": 5,
	"1h": 60,
}

// IntervalMinutes resolves a timeframe code to the number of minutes one
// candle spans. Unrecognized codes fall back to DefaultIntervalMinutes
// rather than failing; scenario validation is strict, timeframe resolution
// deliberately is not.
func IntervalMinutes(timeframe string) int {
	if minutes, ok := scenarioTimeframes[timeframe]; ok {
		return minutes
	}
	return DefaultIntervalMinutes
}

// Interval resolves a timeframe code to the duration between candles.
func Interval(timeframe string) time.Duration {
	return time.Duration(IntervalMinutes(timeframe)) * time.Minute
}
