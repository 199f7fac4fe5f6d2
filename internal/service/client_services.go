package service

import (
	"github.com/MKhiriev/go-library-sync/internal/adapter"
	"github.com/MKhiriev/go-library-sync/internal/config"
	"github.com/MKhiriev/go-library-sync/internal/logger"
	"github.com/MKhiriev/go-library-sync/internal/store"
	"github.com/MKhiriev/go-library-sync/models"
)

type ClientServices struct {
	SyncService    ClientLibrarySyncService
	LibraryService ClientLibraryService
	AddonService   ClientAddonService
}

func NewClientServices(
	storages *store.ClientStorages,
	addonTransport adapter.AddonTransport,
	datastoreAdapter adapter.DatastoreAdapter,
	cfg *config.ClientConfig,
	logger *logger.Logger,
) *ClientServices {
	syncSvc := NewClientLibrarySyncService(datastoreAdapter, cfg.App.Collection, logger)
	session := models.Session{AuthKey: cfg.App.AuthKey}

	return &ClientServices{
		SyncService:    syncSvc,
		LibraryService: NewClientLibraryService(storages.LibraryRepository, syncSvc, session, logger),
		AddonService:   NewClientAddonService(addonTransport, cfg.Adapter.AddonURL, logger),
	}
}
