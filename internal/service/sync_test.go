package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/apivault/apivault/internal/logger"
	"github.com/apivault/apivault/internal/mock"
	"github.com/apivault/apivault/internal/store"
	"github.com/apivault/apivault/models"
)

type syncFixture struct {
	storages *store.Storages
	svc      *SyncService
	facade   *mock.MockRemoteFacade
	merger   *mock.MockSnapshotMerger
}

func newSyncFixture(t *testing.T) *syncFixture {
	t.Helper()
	ctx := context.Background()

	storages, err := store.NewStorages(ctx, ":memory:", logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	ctrl := gomock.NewController(t)
	merger := mock.NewMockSnapshotMerger(ctrl)
	facade := mock.NewMockRemoteFacade(ctrl)

	svc := NewSyncService(storages, merger, logger.Nop())
	svc.client = facade

	return &syncFixture{storages: storages, svc: svc, facade: facade, merger: merger}
}

func TestSync_NoProviderConfigured(t *testing.T) {
	ctx := context.Background()
	storages, err := store.NewStorages(ctx, ":memory:", logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	svc := NewSyncService(storages, mock.NewMockSnapshotMerger(gomock.NewController(t)), logger.Nop())

	require.ErrorIs(t, svc.PushOnce(ctx), ErrNoProvider)
	require.ErrorIs(t, svc.PullOnce(ctx), ErrNoProvider)
	require.ErrorIs(t, svc.FullSync(ctx), ErrNoProvider)
}

func TestPushOnce_UploadsUnsyncedCollection(t *testing.T) {
	ctx := context.Background()
	f := newSyncFixture(t)

	col := models.NewCollection("Payments", "", nil)
	require.NoError(t, f.storages.Collections.Save(ctx, col))

	f.facade.EXPECT().SupportsItemOps().Return(true)
	f.facade.EXPECT().PushCollection(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, pushed models.Collection) (string, error) {
			assert.Equal(t, col.ID, pushed.ID)
			assert.Empty(t, pushed.CloudID)
			assert.Equal(t, int64(1), pushed.Version)
			return "C1", nil
		}).Times(1)

	require.NoError(t, f.svc.PushOnce(ctx))

	stored, err := f.storages.Collections.Get(ctx, col.ID)
	require.NoError(t, err)
	assert.True(t, stored.Synced)
	assert.Equal(t, "C1", stored.CloudID)
	assert.Equal(t, int64(1), stored.Version)

	// Nothing left to push.
	unsynced, err := f.storages.Collections.GetUnsynced(ctx)
	require.NoError(t, err)
	assert.Empty(t, unsynced)
}

func TestPushOnce_ResumableAfterFailure(t *testing.T) {
	ctx := context.Background()
	f := newSyncFixture(t)

	col := models.NewCollection("Payments", "", nil)
	require.NoError(t, f.storages.Collections.Save(ctx, col))
	req := models.NewHTTPRequest("Charge", "POST", "https://api.test.io/charge")
	require.NoError(t, f.storages.Requests.Save(ctx, req))

	f.facade.EXPECT().SupportsItemOps().Return(true)
	f.facade.EXPECT().PushCollection(ctx, gomock.Any()).Return("C1", nil)
	f.facade.EXPECT().PushRequest(ctx, gomock.Any()).Return("", errors.New("remote unavailable"))

	err := f.svc.PushOnce(ctx)
	require.Error(t, err)
	require.Contains(t, err.Error(), "push request")

	// The collection synced before the failure stays synced; the request
	// remains pending for the next attempt.
	storedCol, err := f.storages.Collections.Get(ctx, col.ID)
	require.NoError(t, err)
	assert.True(t, storedCol.Synced)

	storedReq, err := f.storages.Requests.Get(ctx, req.ID)
	require.NoError(t, err)
	assert.False(t, storedReq.Synced)
	assert.Zero(t, storedReq.Version)

	// Retry resumes with only the remaining record.
	f.facade.EXPECT().SupportsItemOps().Return(true)
	f.facade.EXPECT().PushRequest(ctx, gomock.Any()).Return("R1", nil)

	require.NoError(t, f.svc.PushOnce(ctx))

	storedReq, err = f.storages.Requests.Get(ctx, req.ID)
	require.NoError(t, err)
	assert.True(t, storedReq.Synced)
	assert.Equal(t, "R1", storedReq.CloudID)
}

func TestPushOnce_BulkAdoptsLocalIDAsCloudID(t *testing.T) {
	ctx := context.Background()
	f := newSyncFixture(t)

	col := models.NewCollection("Payments", "", nil)
	require.NoError(t, f.storages.Collections.Save(ctx, col))

	f.facade.EXPECT().SupportsItemOps().Return(false)
	f.facade.EXPECT().PushSync(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, collections []models.Collection, requests []models.HTTPRequest, environments []models.Environment) error {
			require.Len(t, collections, 1)
			assert.Equal(t, col.ID.String(), collections[0].CloudID)
			assert.Equal(t, int64(1), collections[0].Version)
			assert.Empty(t, requests)
			assert.Empty(t, environments)
			return nil
		}).Times(1)

	require.NoError(t, f.svc.PushOnce(ctx))

	stored, err := f.storages.Collections.Get(ctx, col.ID)
	require.NoError(t, err)
	assert.True(t, stored.Synced)
	assert.Equal(t, col.ID.String(), stored.CloudID)
	assert.Equal(t, int64(1), stored.Version)
}

func TestPushOnce_BulkSendsAlreadySyncedRecordsUntouched(t *testing.T) {
	ctx := context.Background()
	f := newSyncFixture(t)

	col := models.NewCollection("Payments", "", nil)
	require.NoError(t, f.storages.Collections.Save(ctx, col))
	require.NoError(t, f.storages.Collections.MarkSynced(ctx, col.ID, "C9", 3))

	f.facade.EXPECT().SupportsItemOps().Return(false)
	f.facade.EXPECT().PushSync(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, collections []models.Collection, _ []models.HTTPRequest, _ []models.Environment) error {
			require.Len(t, collections, 1)
			assert.Equal(t, "C9", collections[0].CloudID)
			assert.Equal(t, int64(3), collections[0].Version, "synced records keep their version")
			return nil
		})

	require.NoError(t, f.svc.PushOnce(ctx))
}

func TestPullOnce_MergesSnapshotAndStampsLastSync(t *testing.T) {
	ctx := context.Background()
	f := newSyncFixture(t)

	snapshot := models.NewSyncSnapshot([]models.Collection{models.NewCollection("Remote", "", nil)}, nil, nil)

	f.facade.EXPECT().PullSync(ctx).Return(snapshot, nil)
	f.facade.EXPECT().IsAuthenticated().Return(true)
	f.merger.EXPECT().MergeAll(ctx, snapshot).Return(nil)

	require.NoError(t, f.svc.PullOnce(ctx))

	status, err := f.svc.Status(ctx)
	require.NoError(t, err)
	require.NotNil(t, status.LastSync)
	assert.WithinDuration(t, time.Now().UTC(), *status.LastSync, 5*time.Second)
}

func TestPullOnce_MergeFailureLeavesLastSyncUnset(t *testing.T) {
	ctx := context.Background()
	f := newSyncFixture(t)

	f.facade.EXPECT().PullSync(ctx).Return(models.SyncSnapshot{}, nil)
	f.merger.EXPECT().MergeAll(ctx, gomock.Any()).Return(errors.New("merge failed"))
	f.facade.EXPECT().IsAuthenticated().Return(true)

	require.Error(t, f.svc.PullOnce(ctx))

	status, err := f.svc.Status(ctx)
	require.NoError(t, err)
	assert.Nil(t, status.LastSync)
}

func TestFullSync_PushesBeforePulling(t *testing.T) {
	ctx := context.Background()
	f := newSyncFixture(t)

	col := models.NewCollection("Payments", "", nil)
	require.NoError(t, f.storages.Collections.Save(ctx, col))

	gomock.InOrder(
		f.facade.EXPECT().SupportsItemOps().Return(true),
		f.facade.EXPECT().PushCollection(ctx, gomock.Any()).Return("C1", nil),
		f.facade.EXPECT().PullSync(ctx).Return(models.SyncSnapshot{}, nil),
	)
	f.merger.EXPECT().MergeAll(ctx, gomock.Any()).Return(nil)

	require.NoError(t, f.svc.FullSync(ctx))
}

func TestFullSync_AbortsOnPushFailure(t *testing.T) {
	ctx := context.Background()
	f := newSyncFixture(t)

	col := models.NewCollection("Payments", "", nil)
	require.NoError(t, f.storages.Collections.Save(ctx, col))

	f.facade.EXPECT().SupportsItemOps().Return(true)
	f.facade.EXPECT().PushCollection(ctx, gomock.Any()).Return("", errors.New("boom"))

	err := f.svc.FullSync(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "full sync push phase")
}

func TestStatus_CountsPendingChanges(t *testing.T) {
	ctx := context.Background()
	f := newSyncFixture(t)

	require.NoError(t, f.storages.Collections.Save(ctx, models.NewCollection("A", "", nil)))
	require.NoError(t, f.storages.Requests.Save(ctx, models.NewHTTPRequest("R", "GET", "https://test.io")))
	require.NoError(t, f.storages.Requests.Save(ctx, models.NewHTTPRequest("R2", "GET", "https://test.io")))
	require.NoError(t, f.storages.Environments.Save(ctx, models.NewEnvironment("Prod", nil)))

	f.facade.EXPECT().IsAuthenticated().Return(true)

	status, err := f.svc.Status(ctx)
	require.NoError(t, err)

	assert.True(t, status.IsAuthenticated)
	assert.Equal(t, 1, status.UnsyncedCollections)
	assert.Equal(t, 2, status.UnsyncedRequests)
	assert.Equal(t, 1, status.UnsyncedEnvironments)
	assert.Nil(t, status.LastSync)
}
