package service

import (
	"fmt"

	"github.com/MKhiriev/go-library-sync/internal/config"
	"github.com/MKhiriev/go-library-sync/internal/logger"
	"github.com/MKhiriev/go-library-sync/internal/store"
)

type Services struct {
	AuthService      AuthService
	DatastoreService DatastoreService
	AppInfoService   AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.ServerConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	datastore := NewDatastoreService(storages.DatastoreRepository, logger, cfg.App.Collection)

	return &Services{
		AuthService:      NewAuthService(cfg.App, logger),
		DatastoreService: NewDatastoreValidationService().Wrap(datastore),
		AppInfoService:   appInfo,
	}, nil
}
