// Package pricing computes ticket totals for events.
package pricing

import (
	"github.com/phrazzld/event-registry/internal/domain"
	"github.com/shopspring/decimal"
)

// Calculator maps an event and a ticket quantity to the total amount charged.
type Calculator func(evt *domain.Event, quantity int) decimal.Decimal

// Default returns the calculator built from NewDefaultParams.
func Default() Calculator {
	return NewCalculator(NewDefaultParams())
}

// NewCalculator returns a calculator computing
//
//	base price × quantity × bulk factor × speaker factor
//
// where the bulk factor is params.BulkDiscount once the quantity reaches
// params.BulkThreshold and the speaker factor is params.SpeakerPremium when the
// event has more than params.SpeakerThreshold speakers. Both factors are 1
// otherwise and are applied independently.
func NewCalculator(params *Params) Calculator {
	if params == nil {
		params = NewDefaultParams()
	}
	p := *params

	return func(evt *domain.Event, quantity int) decimal.Decimal {
		total := evt.TicketPrice().Mul(decimal.NewFromInt(int64(quantity)))
		return total.Mul(BulkFactor(&p, quantity)).Mul(SpeakerFactor(&p, evt.SpeakerCount()))
	}
}

// BulkFactor returns the multiplier applied for the given quantity.
func BulkFactor(params *Params, quantity int) decimal.Decimal {
	if quantity >= params.BulkThreshold {
		return params.BulkDiscount
	}
	return decimal.NewFromInt(1)
}

// SpeakerFactor returns the multiplier applied for the given speaker count.
func SpeakerFactor(params *Params, speakers int) decimal.Decimal {
	if speakers > params.SpeakerThreshold {
		return params.SpeakerPremium
	}
	return decimal.NewFromInt(1)
}
