package check

import (
	"fmt"
	"time"
)

// Config carries the business constants of the engine. Values are
// configuration inputs rather than literals so operators can tune them per
// venue; defaults match the standard trading-desk setup.
type Config struct {
	// PnlTolerance is the maximum accepted difference between the expected
	// and the reported PnL of a trade.
	PnlTolerance float64 `env:"PNL_TOLERANCE" envDefault:"0.0001" yaml:"pnl_tolerance"`

	// PriceTolerance is the maximum accepted difference between a recorded
	// price and the reference price.
	PriceTolerance float64 `env:"PRICE_TOLERANCE" envDefault:"0.0001" yaml:"price_tolerance"`

	// ReferenceLookback is subtracted from the trade instant before looking
	// up the reference price bucket.
	ReferenceLookback time.Duration `env:"REFERENCE_LOOKBACK" envDefault:"60s" yaml:"reference_lookback"`

	// MarketOpen and MarketClose bound the accepted clock-time window for
	// entries and exits, in "HH:MM" wall-clock form.
	MarketOpen  string `env:"MARKET_OPEN" envDefault:"09:15" yaml:"market_open"`
	MarketClose string `env:"MARKET_CLOSE" envDefault:"15:25" yaml:"market_close"`
}

// DefaultConfig returns the standard engine configuration.
func DefaultConfig() Config {
	return Config{
		PnlTolerance:      1e-4,
		PriceTolerance:    1e-4,
		ReferenceLookback: 60 * time.Second,
		MarketOpen:        "09:15",
		MarketClose:       "15:25",
	}
}

// Validate checks tolerances and the market window for consistency.
func (c Config) Validate() error {
	if c.PnlTolerance < 0 {
		return fmt.Errorf("%w: pnl tolerance must not be negative", ErrInvalidConfig)
	}
	if c.PriceTolerance < 0 {
		return fmt.Errorf("%w: price tolerance must not be negative", ErrInvalidConfig)
	}
	if c.ReferenceLookback < 0 {
		return fmt.Errorf("%w: reference lookback must not be negative", ErrInvalidConfig)
	}
	open, err := parseClock(c.MarketOpen)
	if err != nil {
		return fmt.Errorf("%w: market open: %v", ErrInvalidConfig, err)
	}
	close, err := parseClock(c.MarketClose)
	if err != nil {
		return fmt.Errorf("%w: market close: %v", ErrInvalidConfig, err)
	}
	if open >= close {
		return fmt.Errorf("%w: market open %s is not before close %s", ErrInvalidConfig, c.MarketOpen, c.MarketClose)
	}
	return nil
}

// marketWindow returns the open and close bounds as seconds of day.
func (c Config) marketWindow() (open, close int, err error) {
	open, err = parseClock(c.MarketOpen)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: market open: %v", ErrInvalidConfig, err)
	}
	close, err = parseClock(c.MarketClose)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: market close: %v", ErrInvalidConfig, err)
	}
	return open, close, nil
}

// parseClock converts "HH:MM" to seconds of day.
func parseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, err
	}
	return t.Hour()*3600 + t.Minute()*60, nil
}
