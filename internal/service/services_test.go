package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tmurov/reqdesk/internal/logger"
	"github.com/tmurov/reqdesk/internal/mock"
	"github.com/tmurov/reqdesk/internal/notify"
	"github.com/tmurov/reqdesk/internal/store"
	"github.com/tmurov/reqdesk/models"
)

func newServicesFixture(t *testing.T) (*mock.MockRecordSource, *mock.MockTagSetRepository, *Services) {
	ctrl := gomock.NewController(t)
	src := mock.NewMockRecordSource(ctrl)
	repo := mock.NewMockTagSetRepository(ctrl)

	repo.EXPECT().Load(gomock.Any(), store.TagSetProcessed).Return(nil, nil)
	repo.EXPECT().Load(gomock.Any(), store.TagSetUnseen).Return(nil, nil)

	services := NewServices(
		context.Background(),
		src,
		&store.Storages{TagSets: repo},
		notify.NopSoundPlayer{},
		notify.NopDesktopNotifier{Perm: models.PermissionDenied},
		logger.Nop(),
	)
	return src, repo, services
}

// ── NewServices ──────────────────────────────────────────────────────────────

func TestNewServices_WiresAllComponents(t *testing.T) {
	_, _, services := newServicesFixture(t)

	require.NotNil(t, services.Records)
	require.NotNil(t, services.Tags)
	require.NotNil(t, services.Differ)
	require.NotNil(t, services.Dispatcher)
	require.NotNil(t, services.Orchestrator)
	require.NotNil(t, services.Job)
	require.NotNil(t, services.Transitions)
	require.NotNil(t, services.Toasts)
}

func TestServices_PollThenAdvance_EndToEnd(t *testing.T) {
	src, repo, services := newServicesFixture(t)
	ctx := context.Background()

	src.EXPECT().FetchAll(ctx).Return(models.Snapshot{
		rec("1", models.StatusApproved),
	}, nil)
	services.Orchestrator.PollOnce(ctx, false)
	require.Equal(t, 1, services.Records.Len())

	repo.EXPECT().Add(ctx, store.TagSetProcessed, "1").Return(nil)
	src.EXPECT().UpdateStatus(ctx, "1", models.StatusForSigning).Return(nil)
	require.NoError(t, services.Transitions.AdvanceToSigning(ctx, "1"))

	got, ok := services.Records.Get("1")
	require.True(t, ok)
	assert.Equal(t, models.StatusForSigning, got.Status)
	assert.True(t, services.Tags.IsProcessed("1"))
}

func TestServices_Ordered_AppliesProcessedPartition(t *testing.T) {
	src, repo, services := newServicesFixture(t)
	ctx := context.Background()

	src.EXPECT().FetchAll(ctx).Return(models.Snapshot{
		rec("a", models.StatusPending),
		rec("b", models.StatusPending),
	}, nil)
	services.Orchestrator.PollOnce(ctx, true)

	repo.EXPECT().Add(ctx, store.TagSetProcessed, "a").Return(nil)
	src.EXPECT().UpdateStatus(ctx, "a", models.StatusForSigning).Return(nil)
	require.NoError(t, services.Transitions.AdvanceToSigning(ctx, "a"))

	ordered := services.Ordered()
	require.Len(t, ordered, 2)
	assert.Equal(t, "b", ordered[0].ID)
	assert.Equal(t, "a", ordered[1].ID)
}
