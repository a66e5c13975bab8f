package service

import (
	"github.com/phrazzld/event-registry/internal/clock"
	"github.com/phrazzld/event-registry/internal/config"
	"github.com/phrazzld/event-registry/internal/domain/pricing"
	"github.com/phrazzld/event-registry/internal/domain/rules"
)

// Setup installs the baseline rules (future date, positive price, at least
// one speaker) and a calculator built from params. A nil params uses the
// default pricing. It returns the registry for chaining.
func Setup(r *Registry, c clock.Clock, params *pricing.Params) *Registry {
	for _, rule := range rules.Defaults(c) {
		r.AddNamedRule(rule.Name, rule.Check)
	}
	r.SetPriceCalculator(pricing.NewCalculator(params))
	return r
}

// Configure installs the rules enabled in rulesCfg and a calculator built
// from pricingCfg.
func Configure(r *Registry, c clock.Clock, rulesCfg config.RulesConfig, pricingCfg config.PricingConfig) *Registry {
	if rulesCfg.RequireFutureDate {
		r.AddNamedRule(rules.NameFutureDate, rules.FutureDate(c))
	}
	if rulesCfg.RequirePositivePrice {
		r.AddNamedRule(rules.NamePositivePrice, rules.PositivePrice())
	}
	switch {
	case rulesCfg.MinSpeakers == 1:
		r.AddNamedRule(rules.NameHasSpeakers, rules.HasSpeakers())
	case rulesCfg.MinSpeakers > 1:
		r.AddNamedRule(rules.NameMinSpeakers, rules.MinSpeakers(rulesCfg.MinSpeakers))
	}

	r.SetPriceCalculator(pricing.NewCalculator(pricing.NewParams(pricing.ParamsConfig{
		BulkThreshold:    pricingCfg.BulkThreshold,
		BulkDiscount:     pricingCfg.BulkDiscount,
		SpeakerThreshold: pricingCfg.SpeakerThreshold,
		SpeakerPremium:   pricingCfg.SpeakerPremium,
	})))
	return r
}
