package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-library-sync/internal/logger"
	"github.com/MKhiriev/go-library-sync/internal/service"
)

// Browser is the interactive part of the client.
type Browser interface {
	Run(ctx context.Context) error
}

type App struct {
	services *service.ClientServices
	browser  Browser

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, browser Browser, logger *logger.Logger) (*App, error) {
	if services == nil || services.LibraryService == nil {
		return nil, errors.New("client services are not initialised")
	}
	if browser == nil {
		return nil, errors.New("browser is not initialised")
	}

	return &App{services: services, browser: browser, logger: logger}, nil
}

// Run synchronizes the library once and then hands the terminal to the
// browser. A failed initial sync is logged and the browser still opens on
// the local copy.
func (a *App) Run(ctx context.Context) error {
	pulled, err := a.services.LibraryService.SyncNow(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Msg("initial library sync failed")
	} else {
		a.logger.Info().Int("pulled", len(pulled)).Msg("initial library sync done")
	}

	if err = a.browser.Run(ctx); err != nil {
		return fmt.Errorf("browser: %w", err)
	}
	return nil
}
