package cli

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/almanac/internal/calendar/application"
	"github.com/felixgeelhaar/almanac/internal/calendar/builtin"
	"github.com/felixgeelhaar/almanac/internal/calendar/infrastructure/ics"
	"github.com/felixgeelhaar/almanac/pkg/config"
)

const sampleICS = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//almanac//test//EN
BEGIN:VEVENT
UID:cli-test-1@almanac
DTSTART:20240215T100000Z
DTEND:20240215T110000Z
SUMMARY:Standup
END:VEVENT
END:VCALENDAR
`

func newTestApp(t *testing.T) *App {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	cfg := config.Default()
	engine := application.NewEngine(application.Options{Config: cfg, Logger: logger})
	builtin.RegisterAll(engine.ItemTypes())

	return &App{
		Engine:   engine,
		Importer: ics.NewImporter(logger),
		Config:   cfg,
	}
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		icsFile = ""
		monthDate = ""
		weekDate = ""
		dayDate = ""
	}()

	err := rootCmd.Execute()
	return out.String(), err
}

func writeSampleICS(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "sample.ics")
	require.NoError(t, os.WriteFile(path, []byte(sampleICS), 0o644))
	return path
}

func TestMonthCommand(t *testing.T) {
	SetApp(newTestApp(t))
	defer SetApp(nil)

	out, err := runCommand(t, "month", "--date", "2024-02-15", "--ics", writeSampleICS(t))
	require.NoError(t, err)

	assert.Contains(t, out, "February 2024")
	assert.Contains(t, out, "Sun")
	// The imported event shows up as a count on its day.
	assert.Contains(t, out, "15 (1)")
}

func TestDayCommand(t *testing.T) {
	SetApp(newTestApp(t))
	defer SetApp(nil)

	out, err := runCommand(t, "day", "--date", "2024-02-15", "--ics", writeSampleICS(t))
	require.NoError(t, err)

	assert.Contains(t, out, "Thursday, February 15, 2024")
	assert.Contains(t, out, "Standup")
}

func TestWeekCommand(t *testing.T) {
	SetApp(newTestApp(t))
	defer SetApp(nil)

	out, err := runCommand(t, "week", "--date", "2024-02-15", "--ics", writeSampleICS(t))
	require.NoError(t, err)

	// The week spans Sunday the 11th through Saturday the 17th.
	assert.Contains(t, out, "Sunday, February 11, 2024")
	assert.Contains(t, out, "Saturday, February 17, 2024")
	assert.Contains(t, out, "Standup")
}

func TestTypesCommand(t *testing.T) {
	SetApp(newTestApp(t))
	defer SetApp(nil)

	out, err := runCommand(t, "types")
	require.NoError(t, err)

	for _, key := range []string{"event", "task", "meal", "vacation", "appointment", "meeting"} {
		assert.Contains(t, out, key)
	}
}

func TestImportCommand(t *testing.T) {
	SetApp(newTestApp(t))
	defer SetApp(nil)

	out, err := runCommand(t, "import", writeSampleICS(t))
	require.NoError(t, err)

	assert.Contains(t, out, "imported 1 items")
	assert.Contains(t, out, "2024-02-15")
}

func TestCommandsWithoutApp(t *testing.T) {
	SetApp(nil)

	_, err := runCommand(t, "month")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not initialized")
}

func TestParseDateFlag(t *testing.T) {
	got, err := parseDateFlag("2024-02-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.February, 15, 0, 0, 0, 0, time.Local), got)

	_, err = parseDateFlag("15/02/2024")
	require.Error(t, err)

	now, err := parseDateFlag("")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), now, time.Minute)
}
