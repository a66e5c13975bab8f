package pricing

import "github.com/shopspring/decimal"

// Params defines all configurable parameters for the default price calculator
type Params struct {
	// Bulk discount applies when the quantity reaches BulkThreshold
	BulkThreshold int
	BulkDiscount  decimal.Decimal

	// Speaker premium applies when the speaker count exceeds SpeakerThreshold
	SpeakerThreshold int
	SpeakerPremium   decimal.Decimal
}

// ParamsConfig allows overriding the default parameters when creating a new Params instance.
// Zero values keep the defaults.
type ParamsConfig struct {
	BulkThreshold    int
	BulkDiscount     float64
	SpeakerThreshold int
	SpeakerPremium   float64
}

// NewDefaultParams creates a new Params instance with default values
func NewDefaultParams() *Params {
	return &Params{
		BulkThreshold:    5,
		BulkDiscount:     decimal.RequireFromString("0.9"),
		SpeakerThreshold: 3,
		SpeakerPremium:   decimal.RequireFromString("1.2"),
	}
}

// NewParams creates a Params instance from the defaults, overriding any
// non-zero value set in cfg.
func NewParams(cfg ParamsConfig) *Params {
	p := NewDefaultParams()

	if cfg.BulkThreshold > 0 {
		p.BulkThreshold = cfg.BulkThreshold
	}
	if cfg.BulkDiscount > 0 {
		p.BulkDiscount = decimal.NewFromFloat(cfg.BulkDiscount)
	}
	if cfg.SpeakerThreshold > 0 {
		p.SpeakerThreshold = cfg.SpeakerThreshold
	}
	if cfg.SpeakerPremium > 0 {
		p.SpeakerPremium = decimal.NewFromFloat(cfg.SpeakerPremium)
	}

	return p
}
