package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/phrazzld/event-registry/internal/catalog"
	"github.com/phrazzld/event-registry/internal/clock"
	"github.com/phrazzld/event-registry/internal/config"
	"github.com/phrazzld/event-registry/internal/domain"
	"github.com/phrazzld/event-registry/internal/events"
	"github.com/phrazzld/event-registry/internal/platform/metrics"
	"github.com/phrazzld/event-registry/internal/service"
	"github.com/prometheus/common/expfmt"
	"github.com/shopspring/decimal"
)

// application holds the wired components used by the demo.
type application struct {
	cfg      *config.Config
	logger   *slog.Logger
	clock    clock.Clock
	registry *service.Registry
	recorder *metrics.PrometheusRecorder
	out      io.Writer
}

// newApplication wires metrics, emitter and registry from cfg.
// Demo output goes to out.
func newApplication(cfg *config.Config, log *slog.Logger, clk clock.Clock, out io.Writer) (*application, error) {
	app := &application{
		cfg:    cfg,
		logger: log,
		clock:  clk,
		out:    out,
	}

	var recorder metrics.Recorder = metrics.Nop()
	if cfg.Metrics.Enabled {
		app.recorder = metrics.NewPrometheusRecorder(cfg.Metrics.Namespace)
		recorder = app.recorder
	}

	registry, err := service.NewRegistry(events.NewInMemoryEventEmitter(log), recorder, clk, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create registry: %w", err)
	}
	service.Configure(registry, clk, cfg.Rules, cfg.Pricing)
	registry.SubscribeFunc(func(evt *domain.Event, message string) {
		fmt.Fprintf(out, "New event added: %s - %s\n", evt.Title(), message)
	})
	app.registry = registry

	log.Debug("application initialized",
		"metrics_enabled", cfg.Metrics.Enabled,
		"min_speakers", cfg.Rules.MinSpeakers)

	return app, nil
}

// loadEvents returns the events of the catalog at path, or the sample
// workshop when path is empty.
func (a *application) loadEvents(path string) ([]*domain.Event, error) {
	if path == "" {
		evt, err := sampleWorkshop(a.clock.Now())
		if err != nil {
			return nil, fmt.Errorf("failed to build sample event: %w", err)
		}
		return []*domain.Event{evt}, nil
	}

	cat, err := catalog.Load(path, a.clock)
	if err != nil {
		return nil, err
	}
	a.logger.Info("catalog loaded",
		"path", path,
		"locations", len(cat.Locations),
		"events", len(cat.Events))
	return cat.Events, nil
}

func sampleWorkshop(now time.Time) (*domain.Event, error) {
	loc, err := domain.NewLocation("Tech Hub", "123 Main St", 100)
	if err != nil {
		return nil, err
	}
	speaker, err := domain.NewSpeaker("John Doe", "Tech Expert", "C# Modern Features")
	if err != nil {
		return nil, err
	}
	return domain.NewEvent(
		"C# Workshop",
		now.AddDate(0, 0, 30),
		loc,
		[]domain.Speaker{speaker},
		decimal.RequireFromString("199.99"),
	)
}

// run registers evts, then buys quantity tickets for the first event that
// was accepted and prints its state before and after the purchase.
// Rejected events and failed purchases are reported, not returned.
func (a *application) run(ctx context.Context, evts []*domain.Event, quantity int) error {
	var first *domain.Event
	for _, evt := range evts {
		if err := a.registry.AddEvent(ctx, evt); err != nil {
			var verr *service.ValidationError
			if errors.As(err, &verr) {
				fmt.Fprintf(a.out, "Rejected event %q: %v\n", evt.Title(), err)
				continue
			}
			return err
		}
		if first == nil {
			first = evt
		}
	}

	if first == nil {
		fmt.Fprintln(a.out, "No events registered")
		return nil
	}

	fmt.Fprintln(a.out, first.Location().Capacity())
	total, err := a.registry.PurchaseTickets(ctx, first, quantity)
	if err != nil {
		fmt.Fprintf(a.out, "Purchase failed: %v\n", err)
	} else {
		fmt.Fprintf(a.out, "Total: $%s\n", total.StringFixed(2))
	}
	fmt.Fprintln(a.out, first.Location().Capacity())

	fmt.Fprintln(a.out, first.DetailedString())
	fmt.Fprintf(a.out, "Is sold out: %t\n", first.IsSoldOut())
	return nil
}

// writeMetrics prints every collected metric family in text exposition format.
func (a *application) writeMetrics() error {
	if a.recorder == nil {
		return nil
	}
	families, err := a.recorder.Registry().Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(a.out, mf); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}
	return nil
}
