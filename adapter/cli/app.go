package cli

import (
	"fmt"
	"os"

	"github.com/felixgeelhaar/almanac/internal/calendar/application"
	"github.com/felixgeelhaar/almanac/internal/calendar/domain"
	"github.com/felixgeelhaar/almanac/internal/calendar/infrastructure/ics"
	"github.com/felixgeelhaar/almanac/pkg/config"
)

// App holds the CLI application dependencies.
type App struct {
	Engine   *application.Engine
	Importer *ics.Importer
	Config   *config.Config
}

// loadItems reads the items for this invocation from the --ics flag, or
// returns an empty list when no file was given.
func (a *App) loadItems() ([]*domain.Item, error) {
	if icsFile == "" {
		return nil, nil
	}

	body, err := os.ReadFile(icsFile)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", icsFile, err)
	}

	items, err := a.Importer.Import(body)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", icsFile, err)
	}

	a.Engine.SetItems(items)
	return items, nil
}

func requireApp() (*App, error) {
	a := GetApp()
	if a == nil || a.Engine == nil {
		return nil, fmt.Errorf("application not initialized")
	}
	return a, nil
}
