package service

import (
	"context"
	"testing"
	"time"

	"github.com/phrazzld/event-registry/internal/clock"
	"github.com/phrazzld/event-registry/internal/config"
	"github.com/phrazzld/event-registry/internal/domain/pricing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupInstallsDefaults(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(t)
	assert.Same(t, r, Setup(r, clock.NewFixed(testNow), nil))

	err := r.AddEvent(context.Background(), newEvent(t, "Bad", newLocation(t, 1), 0, "0", testNow.Add(-time.Hour)))
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, []string{"future_date", "positive_price", "has_speakers"}, valErr.FailedRules)

	total, err := r.PurchaseTickets(context.Background(), newWorkshop(t, 10), 5)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("899.955")), "got %s", total)
}

func TestSetupWithParams(t *testing.T) {
	t.Parallel()

	r := Setup(newTestRegistry(t), clock.NewFixed(testNow), pricing.NewParams(pricing.ParamsConfig{BulkThreshold: 100}))

	total, err := r.PurchaseTickets(context.Background(), newWorkshop(t, 10), 5)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("999.95")), "got %s", total)
}

func TestConfigure(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cfg := config.Default()

	t.Run("defaults match Setup", func(t *testing.T) {
		r := Configure(newTestRegistry(t), clock.NewFixed(testNow), cfg.Rules, cfg.Pricing)

		err := r.AddEvent(ctx, newEvent(t, "Bad", newLocation(t, 1), 0, "0", testNow.Add(-time.Hour)))
		var valErr *ValidationError
		require.ErrorAs(t, err, &valErr)
		assert.Equal(t, []string{"future_date", "positive_price", "has_speakers"}, valErr.FailedRules)

		evt := newEvent(t, "Panel", newLocation(t, 10), 4, "100", testNow.Add(time.Hour))
		total, err := r.PurchaseTickets(ctx, evt, 5)
		require.NoError(t, err)
		assert.True(t, total.Equal(decimal.NewFromInt(540)), "got %s", total)
	})

	t.Run("rules disabled", func(t *testing.T) {
		rulesCfg := config.RulesConfig{MinSpeakers: 0}
		r := Configure(newTestRegistry(t), clock.NewFixed(testNow), rulesCfg, cfg.Pricing)

		require.NoError(t, r.AddEvent(ctx, newEvent(t, "Anything", newLocation(t, 1), 0, "0", testNow.Add(-time.Hour))))
	})

	t.Run("min speakers above one", func(t *testing.T) {
		rulesCfg := config.RulesConfig{MinSpeakers: 2}
		r := Configure(newTestRegistry(t), clock.NewFixed(testNow), rulesCfg, cfg.Pricing)

		err := r.AddEvent(ctx, newEvent(t, "Solo", newLocation(t, 1), 1, "1", testNow.Add(time.Hour)))
		var valErr *ValidationError
		require.ErrorAs(t, err, &valErr)
		assert.Equal(t, []string{"min_speakers"}, valErr.FailedRules)

		require.NoError(t, r.AddEvent(ctx, newEvent(t, "Duo", newLocation(t, 1), 2, "1", testNow.Add(time.Hour))))
	})

	t.Run("custom pricing", func(t *testing.T) {
		pricingCfg := config.PricingConfig{
			BulkThreshold:    2,
			BulkDiscount:     0.5,
			SpeakerThreshold: 1,
			SpeakerPremium:   2,
		}
		r := Configure(newTestRegistry(t), clock.NewFixed(testNow), config.RulesConfig{}, pricingCfg)

		evt := newEvent(t, "Duo", newLocation(t, 10), 2, "10", testNow.Add(time.Hour))
		total, err := r.PurchaseTickets(ctx, evt, 2)
		require.NoError(t, err)
		assert.True(t, total.Equal(decimal.NewFromInt(20)), "got %s", total)
	})
}
