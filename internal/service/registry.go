package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/phrazzld/event-registry/internal/clock"
	"github.com/phrazzld/event-registry/internal/domain"
	"github.com/phrazzld/event-registry/internal/domain/pricing"
	"github.com/phrazzld/event-registry/internal/domain/rules"
	"github.com/phrazzld/event-registry/internal/events"
	"github.com/phrazzld/event-registry/internal/platform/logger"
	"github.com/phrazzld/event-registry/internal/platform/metrics"
	"github.com/shopspring/decimal"
)

const componentName = "event_registry"

// Registry owns the registered events, the validation rules, the active price
// calculator and the notification subscribers.
//
// Registry is safe for concurrent use. Rule evaluation and append are
// serialized, as are the capacity check and decrement of a purchase. Rules and
// subscribers run without the registry lock held, so both may read from the
// registry and subscribers may also purchase tickets or add further events.
// Notifications are delivered exactly once, in registration order.
type Registry struct {
	mu         sync.Mutex
	events     []*domain.Event
	rules      *rules.Set
	calculator pricing.Calculator

	// pending holds notifications not yet delivered; delivering is set while
	// one AddEvent call drains the queue.
	pending    []*events.EventAddedNotification
	delivering bool

	// addMu serializes rule evaluation with the append that follows it.
	addMu sync.Mutex

	emitter events.EventEmitter
	metrics metrics.Recorder
	clock   clock.Clock
	logger  *slog.Logger
}

// NewRegistry creates an empty Registry with no rules and no price calculator.
// It returns an error if the emitter is nil. A nil recorder records nothing,
// a nil clock uses the system clock and a nil logger uses slog.Default.
func NewRegistry(
	emitter events.EventEmitter,
	recorder metrics.Recorder,
	clk clock.Clock,
	log *slog.Logger,
) (*Registry, error) {
	if emitter == nil {
		return nil, &RegistryError{
			Operation: "create_registry",
			Message:   "emitter cannot be nil",
		}
	}
	if recorder == nil {
		recorder = metrics.Nop()
	}
	if clk == nil {
		clk = clock.NewSystem()
	}
	if log == nil {
		log = slog.Default()
	}

	return &Registry{
		rules:   &rules.Set{},
		emitter: emitter,
		metrics: recorder,
		clock:   clk,
		logger:  log.With("component", componentName),
	}, nil
}

// AddValidationRule appends a rule. It applies to every later AddEvent call
// and is never re-evaluated against events already registered.
func (r *Registry) AddValidationRule(rule rules.Rule) {
	r.AddNamedRule("", rule)
}

// AddNamedRule appends a rule under a name reported in ValidationError.
func (r *Registry) AddNamedRule(name string, rule rules.Rule) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rules.Add(name, rule)
	r.logger.Debug("validation rule added", "rule", name, "rule_count", r.rules.Len())
}

// SetPriceCalculator replaces the active price calculator. Passing nil leaves
// the registry unconfigured for purchases.
func (r *Registry) SetPriceCalculator(calc pricing.Calculator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calculator = calc
	r.logger.Debug("price calculator set", "configured", calc != nil)
}

// Subscribe registers a handler for notifications about added events.
func (r *Registry) Subscribe(handler events.EventHandler) {
	r.emitter.RegisterHandler(handler)
}

// SubscribeFunc registers a plain callback receiving the added event and a
// human-readable message.
func (r *Registry) SubscribeFunc(fn func(evt *domain.Event, message string)) {
	r.Subscribe(events.HandlerFunc(fn))
}

// ListEvents returns the registered events in registration order.
// The returned slice is a copy; the events themselves are shared.
func (r *Registry) ListEvents() []*domain.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*domain.Event(nil), r.events...)
}

// AddEvent validates evt against every registered rule and, if all pass,
// appends it and notifies subscribers.
//
// Before any rule runs, evt must be structurally valid (see
// domain.Event.Validate): it needs an ID, a title, a date, a location, a
// non-negative price and named speakers. This holds even when no rules are
// registered. A nil, malformed or rejected event yields a *ValidationError and
// leaves the registry untouched.
//
// Subscribers are notified before AddEvent returns, unless another AddEvent
// call is already delivering notifications (a concurrent caller, or the
// subscriber that called AddEvent). That call then delivers this
// notification after the ones queued before it. Subscriber failures are
// logged and do not fail the call: the event is registered by the time
// subscribers run.
//
// Rules must not call AddEvent.
func (r *Registry) AddEvent(ctx context.Context, evt *domain.Event) error {
	log := r.loggerFrom(ctx)

	if evt == nil {
		return &ValidationError{Err: ErrNilEvent}
	}
	if err := evt.Validate(); err != nil {
		log.WarnContext(ctx, "event failed structural validation",
			"error", err,
			"event_id", evt.ID(),
			"title", evt.Title())
		return &ValidationError{Title: evt.Title(), Err: err}
	}

	count, deliver, failed := r.register(evt)
	if len(failed) > 0 {
		r.metrics.EventRejected(failed)
		log.InfoContext(ctx, "event rejected by validation rules",
			"event_id", evt.ID(),
			"title", evt.Title(),
			"failed_rules", failed)
		return &ValidationError{Title: evt.Title(), FailedRules: failed}
	}

	r.metrics.EventAdded()
	log.InfoContext(ctx, "event added",
		"event_id", evt.ID(),
		"title", evt.Title(),
		"event_count", count)

	if deliver {
		r.deliverPending(ctx, log)
	}
	return nil
}

// register evaluates a snapshot of the rules outside the registry lock and,
// if they all pass, appends evt and queues its notification. deliver reports
// whether the caller must drain the notification queue.
func (r *Registry) register(evt *domain.Event) (count int, deliver bool, failed []string) {
	r.addMu.Lock()
	defer r.addMu.Unlock()

	r.mu.Lock()
	ruleSet := r.rules.Clone()
	r.mu.Unlock()

	if failed = ruleSet.Evaluate(evt); len(failed) > 0 {
		return 0, false, failed
	}

	n := events.NewEventAddedNotification(evt, r.clock.Now())

	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, evt)
	r.pending = append(r.pending, n)
	if !r.delivering {
		r.delivering = true
		deliver = true
	}
	return len(r.events), deliver, nil
}

// deliverPending emits queued notifications in order until the queue is empty.
func (r *Registry) deliverPending(ctx context.Context, log *slog.Logger) {
	defer func() {
		if p := recover(); p != nil {
			// Undelivered notifications stay queued for the next AddEvent.
			r.mu.Lock()
			r.delivering = false
			r.mu.Unlock()
			panic(p)
		}
	}()

	for {
		r.mu.Lock()
		if len(r.pending) == 0 {
			r.delivering = false
			r.mu.Unlock()
			return
		}
		n := r.pending[0]
		r.pending[0] = nil
		r.pending = r.pending[1:]
		r.mu.Unlock()

		if err := r.emitter.EmitEvent(ctx, n); err != nil {
			log.WarnContext(ctx, "subscriber failed to handle added event",
				"error", err,
				"event_id", n.Event.ID(),
				"notification_id", n.ID)
		}
	}
}

// loggerFrom returns the logger carried by ctx, tagged with the registry
// component, or the registry's own logger.
func (r *Registry) loggerFrom(ctx context.Context) *slog.Logger {
	if l := logger.FromContextOr(ctx, nil); l != nil {
		return l.With("component", componentName)
	}
	return r.logger
}

// PurchaseTickets reserves quantity tickets at the event's location and
// returns the total computed by the active price calculator.
//
// The capacity is decremented on the shared Location, so every holder of the
// event observes the new value. On any error the capacity is unchanged.
func (r *Registry) PurchaseTickets(ctx context.Context, evt *domain.Event, quantity int) (decimal.Decimal, error) {
	log := r.loggerFrom(ctx)

	if evt == nil || evt.Location() == nil {
		return decimal.Zero, ErrNilEvent
	}
	if quantity <= 0 {
		r.metrics.PurchaseFailed(metrics.ReasonInvalidQuantity)
		return decimal.Zero, ErrInvalidQuantity
	}

	r.mu.Lock()
	calc := r.calculator
	if calc == nil {
		r.mu.Unlock()
		r.metrics.PurchaseFailed(metrics.ReasonNotConfigured)
		log.ErrorContext(ctx, "ticket purchase attempted without a price calculator",
			"event_id", evt.ID())
		return decimal.Zero, ErrNotConfigured
	}
	err := evt.Location().Reserve(quantity)
	r.mu.Unlock()

	if err != nil {
		if errors.Is(err, domain.ErrInsufficientCapacity) {
			available := evt.Location().Capacity()
			r.metrics.PurchaseFailed(metrics.ReasonInsufficientCapacity)
			log.InfoContext(ctx, "not enough tickets available",
				"event_id", evt.ID(),
				"requested", quantity,
				"available", available)
			return decimal.Zero, &InsufficientCapacityError{
				Title:     evt.Title(),
				Requested: quantity,
				Available: available,
			}
		}
		return decimal.Zero, &RegistryError{
			Operation: "purchase_tickets",
			Message:   "failed to reserve capacity",
			Err:       err,
		}
	}

	total := calc(evt, quantity)
	r.metrics.TicketsSold(quantity, total)
	log.InfoContext(ctx, "tickets purchased",
		"event_id", evt.ID(),
		"quantity", quantity,
		"total", total.String(),
		"remaining", evt.Location().Capacity())

	return total, nil
}
