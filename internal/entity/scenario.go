package entity

import "strings"

// Scenario selects how the base price of a synthetic series evolves over time.
type Scenario string

const (
	// ScenarioBull is a linear uptrend.
	ScenarioBull Scenario = "bull"
	// ScenarioBear is a linear downtrend.
	ScenarioBear Scenario = "bear"
	// ScenarioSideways oscillates around the base price.
	ScenarioSideways Scenario = "sideways"
	// ScenarioHighVolatility draws large independent noise per candle, no trend.
	ScenarioHighVolatility Scenario = "high_volatility"
	// ScenarioLowVolatility draws small independent noise per candle, no trend.
	ScenarioLowVolatility Scenario = "low_volatility"
)

// Scenarios lists every recognized scenario.
func Scenarios() []Scenario {
	return []Scenario{
		ScenarioBull,
		ScenarioBear,
		ScenarioSideways,
		ScenarioHighVolatility,
		ScenarioLowVolatility,
	}
}

// Valid reports whether s is one of the recognized scenarios.
func (s Scenario) Valid() bool {
	for _, known := range Scenarios() {
		if s == known {
			return true
		}
	}
	return false
}

func (s Scenario) String() string {
	return string(s)
}

// ScenarioList returns the recognized scenario names joined for error messages.
func ScenarioList() string {
	names := make([]string, 0, len(Scenarios()))
	for _, s := range Scenarios() {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}
