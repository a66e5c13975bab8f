package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/phrazzld/event-registry/internal/clock"
	"github.com/phrazzld/event-registry/internal/config"
	"github.com/phrazzld/event-registry/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestApplication(t *testing.T, cfg *config.Config) (*application, *bytes.Buffer, *logger.TestLogBuffer) {
	t.Helper()

	log, logs := logger.GetTestLogger(t)
	var out bytes.Buffer
	app, err := newApplication(cfg, log, clock.NewFixed(testNow), &out)
	require.NoError(t, err)
	return app, &out, logs
}

func TestRunSampleWorkshop(t *testing.T) {
	t.Parallel()

	app, out, _ := newTestApplication(t, config.Default())

	evts, err := app.loadEvents("")
	require.NoError(t, err)
	require.Len(t, evts, 1)

	require.NoError(t, app.run(context.Background(), evts, 10))

	got := out.String()
	assert.Contains(t, got, "New event added: C# Workshop - Successfully added event \"C# Workshop\" \n")
	assert.Contains(t, got, "100\nTotal: $1799.91\n90\n")
	assert.Contains(t, got, "Event: C# Workshop,")
	assert.Contains(t, got, "Venue: Tech Hub,")
	assert.Contains(t, got, "Speakers: John Doe,")
	assert.Contains(t, got, "Price: $199.99")
	assert.Contains(t, got, "Is sold out: false\n")

	assert.Len(t, app.registry.ListEvents(), 1)
}

func TestRunReportsFailedPurchase(t *testing.T) {
	t.Parallel()

	app, out, _ := newTestApplication(t, config.Default())

	evts, err := app.loadEvents("")
	require.NoError(t, err)

	require.NoError(t, app.run(context.Background(), evts, 1000))

	got := out.String()
	assert.Contains(t, got, "Purchase failed:")
	assert.Contains(t, got, "100\nPurchase failed:")
	assert.NotContains(t, got, "Total:")
	assert.Contains(t, got, "Is sold out: false\n")
	assert.Equal(t, 100, evts[0].Location().Capacity())
}

func TestRunSellsOut(t *testing.T) {
	t.Parallel()

	app, out, _ := newTestApplication(t, config.Default())

	evts, err := app.loadEvents("")
	require.NoError(t, err)

	require.NoError(t, app.run(context.Background(), evts, 100))

	assert.Contains(t, out.String(), "Is sold out: true\n")
}

func TestRunWithCatalog(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "events.yaml")
	content := `
locations:
  - key: hall
    venue: Main Hall
    capacity: 20
events:
  - title: Past Meetup
    date: "-48h"
    location: hall
    price: "10"
    speakers:
      - name: Ann
  - title: Go Night
    date: "+48h"
    location: hall
    price: "10"
    speakers:
      - name: Bob
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	app, out, logs := newTestApplication(t, config.Default())

	evts, err := app.loadEvents(path)
	require.NoError(t, err)
	require.Len(t, evts, 2)

	require.NoError(t, app.run(context.Background(), evts, 2))

	got := out.String()
	assert.Contains(t, got, "Rejected event \"Past Meetup\"")
	assert.Contains(t, got, "future_date")
	assert.Contains(t, got, "New event added: Go Night")
	assert.Contains(t, got, "20\nTotal: $20.00\n18\n")
	assert.Contains(t, logs.String(), "catalog loaded")
}

func TestRunNoEventsRegistered(t *testing.T) {
	t.Parallel()

	app, out, _ := newTestApplication(t, config.Default())

	require.NoError(t, app.run(context.Background(), nil, 1))
	assert.Equal(t, "No events registered\n", out.String())
}

func TestLoadEventsMissingCatalog(t *testing.T) {
	t.Parallel()

	app, _, _ := newTestApplication(t, config.Default())

	_, err := app.loadEvents(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestWriteMetrics(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Metrics.Enabled = true
	cfg.Metrics.Namespace = "demo"

	app, out, _ := newTestApplication(t, cfg)
	require.NotNil(t, app.recorder)

	evts, err := app.loadEvents("")
	require.NoError(t, err)
	require.NoError(t, app.run(context.Background(), evts, 10))

	out.Reset()
	require.NoError(t, app.writeMetrics())

	got := out.String()
	assert.Contains(t, got, "demo_registry_events_added_total 1")
	assert.Contains(t, got, "demo_tickets_sold_total 10")
}

func TestWriteMetricsDisabled(t *testing.T) {
	t.Parallel()

	app, out, _ := newTestApplication(t, config.Default())
	assert.Nil(t, app.recorder)

	require.NoError(t, app.writeMetrics())
	assert.Empty(t, out.String())
}

func TestRootCommand(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	var stdout, stderr bytes.Buffer

	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs([]string{"--quantity", "5", "--metrics", "--log-level", "debug"})
	require.NoError(t, cmd.Execute())

	got := stdout.String()
	assert.Contains(t, got, "Total: $899.96\n")
	assert.Contains(t, got, "events_registry_events_added_total 1")
	logs := stderr.String()
	assert.Contains(t, logs, "application initialized")
	assert.Contains(t, logs, `"msg":"event added"`)
	assert.Contains(t, logs, `"run_id":`)
	assert.Contains(t, logs, `"component":"event_registry"`)
}

func TestRootCommandRejectsArgs(t *testing.T) {
	var stdout, stderr bytes.Buffer

	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs([]string{"unexpected"})
	assert.Error(t, cmd.Execute())
}

func TestRootCommandBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: loud\n"), 0o600))

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs([]string{"--config", path})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}
