package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-library-sync/internal/logger"
	"github.com/MKhiriev/go-library-sync/internal/mock"
	"github.com/MKhiriev/go-library-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// stubLibrarySyncer — простой мок ClientLibrarySyncService, не требует mockgen (избегаем цикл импортов).
type stubLibrarySyncer struct {
	gotLocal   models.LibraryIndex
	gotSession models.Session
	pulled     []models.LibItem
	err        error
}

func (s *stubLibrarySyncer) Sync(_ context.Context, local models.LibraryIndex, session models.Session) ([]models.LibItem, error) {
	s.gotLocal = local
	s.gotSession = session
	return s.pulled, s.err
}

func (s *stubLibrarySyncer) PushItem(context.Context, models.LibItem, models.Session) error {
	return ErrNotImplemented
}

func (s *stubLibrarySyncer) PullItem(context.Context, string, models.Session) (models.LibItem, error) {
	return models.LibItem{}, ErrNotImplemented
}

func newTestLibrarySvc(t *testing.T) (ClientLibraryService, *mock.MockLocalLibraryRepository, *stubLibrarySyncer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockLocalLibraryRepository(ctrl)
	syncer := &stubLibrarySyncer{}
	return NewClientLibraryService(repo, syncer, testSession, logger.Nop()), repo, syncer
}

func TestClientLibraryService_Index(t *testing.T) {
	svc, repo, _ := newTestLibrarySvc(t)
	ctx := context.Background()
	index := models.NewLibraryIndex(libItem("X", 1))

	repo.EXPECT().LoadIndex(ctx).Return(index, nil)

	got, err := svc.Index(ctx)

	require.NoError(t, err)
	assert.Equal(t, index, got)
}

func TestClientLibraryService_Index_Error(t *testing.T) {
	svc, repo, _ := newTestLibrarySvc(t)
	ctx := context.Background()
	dbErr := errors.New("database is locked")

	repo.EXPECT().LoadIndex(ctx).Return(nil, dbErr)

	_, err := svc.Index(ctx)

	assert.ErrorIs(t, err, dbErr)
}

func TestClientLibraryService_SyncNow_SavesPulledItems(t *testing.T) {
	svc, repo, syncer := newTestLibrarySvc(t)
	ctx := context.Background()

	local := models.NewLibraryIndex(libItem("X", 5))
	pulledY := libItem("Y", 7)
	syncer.pulled = []models.LibItem{pulledY}

	repo.EXPECT().LoadIndex(ctx).Return(local, nil)
	repo.EXPECT().SaveItems(ctx, pulledY).Return(nil)

	pulled, err := svc.SyncNow(ctx)

	require.NoError(t, err)
	assert.Equal(t, []models.LibItem{pulledY}, pulled)
	assert.Equal(t, testSession, syncer.gotSession)
	// движок получает снимок индекса без полученных элементов
	assert.Len(t, syncer.gotLocal, 1)
}

func TestClientLibraryService_SyncNow_NothingPulled(t *testing.T) {
	svc, repo, syncer := newTestLibrarySvc(t)
	ctx := context.Background()
	syncer.pulled = []models.LibItem{}

	repo.EXPECT().LoadIndex(ctx).Return(models.LibraryIndex{}, nil)
	// SaveItems не вызывается

	pulled, err := svc.SyncNow(ctx)

	require.NoError(t, err)
	assert.Empty(t, pulled)
}

func TestClientLibraryService_SyncNow_SyncFails(t *testing.T) {
	svc, repo, syncer := newTestLibrarySvc(t)
	ctx := context.Background()
	syncer.err = ErrSessionInvalid

	repo.EXPECT().LoadIndex(ctx).Return(models.LibraryIndex{}, nil)

	_, err := svc.SyncNow(ctx)

	assert.ErrorIs(t, err, ErrSessionInvalid)
}

func TestClientLibraryService_SyncNow_SaveFails(t *testing.T) {
	svc, repo, syncer := newTestLibrarySvc(t)
	ctx := context.Background()
	syncer.pulled = []models.LibItem{libItem("Y", 7)}
	dbErr := errors.New("disk full")

	repo.EXPECT().LoadIndex(ctx).Return(models.LibraryIndex{}, nil)
	repo.EXPECT().SaveItems(ctx, gomock.Any()).Return(dbErr)

	_, err := svc.SyncNow(ctx)

	assert.ErrorIs(t, err, dbErr)
}
