package service

import (
	"context"

	"github.com/MKhiriev/go-library-sync/models"
)

// DatastoreService serves the datastore commands of one authenticated owner.
type DatastoreService interface {
	Meta(ctx context.Context, ownerID string, req models.DatastoreRequest) ([]models.LibMTime, error)
	Get(ctx context.Context, ownerID string, req models.DatastoreRequest) ([]models.LibItem, error)
	Put(ctx context.Context, ownerID string, req models.DatastoreRequest) error
}

// AuthService issues and verifies the session keys sent as authKey.
type AuthService interface {
	IssueSessionKey(ctx context.Context, ownerID string) (models.Token, error)
	ParseSessionKey(ctx context.Context, authKey string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// DatastoreServiceWrapper defines middleware composition for DatastoreService.
// Implementations wrap an existing DatastoreService to add behavior such as
// validation.
type DatastoreServiceWrapper interface {
	Wrap(DatastoreService) DatastoreService // returns a decorated DatastoreService applying additional behavior
}
