package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Kline represents a single candlestick data point of a synthetic series.
//
// The generators draw noise for each column independently, so High is not
// guaranteed to sit above Open, Low or Close. Consumers expecting strict
// OHLC ordering must reorder the columns themselves.
type Kline struct {
	OpenTime time.Time
	Open     decimal.Decimal
	High     decimal.Decimal
	Low      decimal.Decimal
	Close    decimal.Decimal
	Volume   decimal.Decimal
}

func (k *Kline) String() string {
	return fmt.Sprintf("%s o:%s h:%s l:%s c:%s v:%s",
		k.OpenTime.Format(time.RFC3339),
		k.Open.String(), k.High.String(), k.Low.String(), k.Close.String(), k.Volume.String())
}
