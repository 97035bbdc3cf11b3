package dispatch_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/manoslocales/marketwatch/internal/dispatch"
	notifymocks "github.com/manoslocales/marketwatch/internal/notify/mocks"
	"github.com/manoslocales/marketwatch/internal/store/mocks"
	domain "github.com/manoslocales/marketwatch/pkg/types"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func priceDropEvent() *domain.ChangeEvent {
	oldPrice, newPrice := 35.50, 29.99
	return &domain.ChangeEvent{
		Kind:       domain.ChangePriceDecreased,
		EntityID:   "prod-1",
		EntityName: "Pan de yema",
		ProviderID: "prov-1",
		OldPrice:   &oldPrice,
		NewPrice:   &newPrice,
		DetectedAt: time.Now(),
	}
}

func TestDispatcher_Handle_PersistsAndPushes(t *testing.T) {
	t.Parallel()

	ms := mocks.NewMockStore(t)
	mn := notifymocks.NewMockNotifier(t)

	var persisted *domain.NotificationItem
	ms.EXPECT().
		CreateNotification(mock.Anything, mock.Anything).
		Run(func(_ context.Context, n *domain.NotificationItem) {
			persisted = n
		}).
		Return(true, nil).
		Once()
	ms.EXPECT().
		CountUnreadNotifications(mock.Anything, "user-1").
		Return(1, nil).
		Once()
	mn.EXPECT().
		PostNotification(mock.Anything, mock.Anything).
		Return(nil).
		Once()

	d := dispatch.New("user-1", ms, testLogger(), dispatch.WithNotifier(mn))
	require.NoError(t, d.Handle(context.Background(), priceDropEvent()))

	require.NotNil(t, persisted)
	assert.Equal(t, "user-1", persisted.UserID)
	assert.Equal(t, "¡Cambio de precio!", persisted.Title)
	assert.Equal(t, "Pan de yema bajó a $29.99", persisted.Message)
	assert.Equal(t, "prod-1", persisted.RelatedEntityID)
	assert.Equal(t, "prod-1|price_decreased|29.99", persisted.DedupKey)
}

func TestDispatcher_Handle_MessageVariants(t *testing.T) {
	t.Parallel()

	oldPrice, newPrice := 35.50, 42.00

	tests := []struct {
		name        string
		event       *domain.ChangeEvent
		wantTitle   string
		wantMessage string
	}{
		{
			name: "price increase",
			event: &domain.ChangeEvent{
				Kind:       domain.ChangePriceIncreased,
				EntityID:   "prod-1",
				EntityName: "Pan de yema",
				OldPrice:   &oldPrice,
				NewPrice:   &newPrice,
			},
			wantTitle:   "¡Cambio de precio!",
			wantMessage: "Pan de yema subió a $42.00",
		},
		{
			name: "new product",
			event: &domain.ChangeEvent{
				Kind:       domain.ChangeNewProduct,
				EntityID:   "prod-2",
				EntityName: "Concha de vainilla",
				ProviderID: "prov-1",
			},
			wantTitle:   "¡Nuevo producto!",
			wantMessage: "Nuevo en tus favoritos: Concha de vainilla",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := mocks.NewMockStore(t)

			var persisted *domain.NotificationItem
			ms.EXPECT().
				CreateNotification(mock.Anything, mock.Anything).
				Run(func(_ context.Context, n *domain.NotificationItem) {
					persisted = n
				}).
				Return(true, nil).
				Once()
			ms.EXPECT().
				CountUnreadNotifications(mock.Anything, "user-1").
				Return(1, nil).
				Once()

			d := dispatch.New("user-1", ms, testLogger())
			require.NoError(t, d.Handle(context.Background(), tt.event))

			require.NotNil(t, persisted)
			assert.Equal(t, tt.wantTitle, persisted.Title)
			assert.Equal(t, tt.wantMessage, persisted.Message)
		})
	}
}

func TestDispatcher_Handle_DedupHitDropsSilently(t *testing.T) {
	t.Parallel()

	ms := mocks.NewMockStore(t)
	mn := notifymocks.NewMockNotifier(t)

	// Insert declined: no push, no unread refresh.
	ms.EXPECT().
		CreateNotification(mock.Anything, mock.Anything).
		Return(false, nil).
		Once()

	d := dispatch.New("user-1", ms, testLogger(), dispatch.WithNotifier(mn))
	require.NoError(t, d.Handle(context.Background(), priceDropEvent()))
}

func TestDispatcher_Handle_PersistenceFailure(t *testing.T) {
	t.Parallel()

	ms := mocks.NewMockStore(t)
	ms.EXPECT().
		CreateNotification(mock.Anything, mock.Anything).
		Return(false, errors.New("db down")).
		Once()

	d := dispatch.New("user-1", ms, testLogger())
	err := d.Handle(context.Background(), priceDropEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "persisting notification")
}

func TestDispatcher_Handle_PushFailureDegrades(t *testing.T) {
	t.Parallel()

	ms := mocks.NewMockStore(t)
	mn := notifymocks.NewMockNotifier(t)

	ms.EXPECT().
		CreateNotification(mock.Anything, mock.Anything).
		Return(true, nil).
		Once()
	ms.EXPECT().
		CountUnreadNotifications(mock.Anything, "user-1").
		Return(1, nil).
		Once()
	mn.EXPECT().
		PostNotification(mock.Anything, mock.Anything).
		Return(errors.New("gateway down")).
		Once()

	d := dispatch.New("user-1", ms, testLogger(), dispatch.WithNotifier(mn))

	// The notification is persisted; only the push is lost.
	require.NoError(t, d.Handle(context.Background(), priceDropEvent()))
}

func TestDispatcher_Handle_UnknownKind(t *testing.T) {
	t.Parallel()

	ms := mocks.NewMockStore(t)
	d := dispatch.New("user-1", ms, testLogger())

	err := d.Handle(context.Background(), &domain.ChangeEvent{Kind: domain.ChangeKind("banana")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown change kind")
}

func TestDispatcher_Items(t *testing.T) {
	t.Parallel()

	ms := mocks.NewMockStore(t)
	ms.EXPECT().
		ListNotifications(mock.Anything, "user-1", 10).
		Return([]domain.NotificationItem{{ID: "n-1"}}, nil).
		Once()
	ms.EXPECT().
		ListNotifications(mock.Anything, "user-1", 100).
		Return(nil, nil).
		Once()

	d := dispatch.New("user-1", ms, testLogger())

	items, err := d.Items(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, items, 1)

	// Non-positive limit falls back to the default.
	_, err = d.Items(context.Background(), 0)
	require.NoError(t, err)
}

func TestDispatcher_MarkAllRead(t *testing.T) {
	t.Parallel()

	ms := mocks.NewMockStore(t)
	ms.EXPECT().
		MarkAllNotificationsRead(mock.Anything, "user-1").
		Return(nil).
		Once()
	ms.EXPECT().
		CountUnreadNotifications(mock.Anything, "user-1").
		Return(0, nil).
		Once()

	d := dispatch.New("user-1", ms, testLogger())

	ch, cancel := d.SubscribeUnread()
	defer cancel()

	require.NoError(t, d.MarkAllRead(context.Background()))

	select {
	case count := <-ch:
		assert.Equal(t, 0, count)
	case <-time.After(time.Second):
		t.Fatal("no unread update published")
	}
}

func TestDispatcher_ClearAll(t *testing.T) {
	t.Parallel()

	ms := mocks.NewMockStore(t)
	ms.EXPECT().
		DeleteAllNotifications(mock.Anything, "user-1").
		Return(nil).
		Once()
	ms.EXPECT().
		CountUnreadNotifications(mock.Anything, "user-1").
		Return(0, nil).
		Once()

	d := dispatch.New("user-1", ms, testLogger())
	require.NoError(t, d.ClearAll(context.Background()))
}

func TestDispatcher_UnreadCount(t *testing.T) {
	t.Parallel()

	ms := mocks.NewMockStore(t)
	ms.EXPECT().
		CountUnreadNotifications(mock.Anything, "user-1").
		Return(3, nil).
		Once()

	d := dispatch.New("user-1", ms, testLogger())
	count, err := d.UnreadCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestDispatcher_SubscribeUnread_SlowConsumerGetsLatest(t *testing.T) {
	t.Parallel()

	ms := mocks.NewMockStore(t)
	ms.EXPECT().
		CreateNotification(mock.Anything, mock.Anything).
		Return(true, nil).
		Twice()
	ms.EXPECT().
		CountUnreadNotifications(mock.Anything, "user-1").
		Return(1, nil).
		Once()
	ms.EXPECT().
		CountUnreadNotifications(mock.Anything, "user-1").
		Return(2, nil).
		Once()

	d := dispatch.New("user-1", ms, testLogger())

	ch, cancel := d.SubscribeUnread()
	defer cancel()

	// Two mutations without the consumer draining in between: the
	// pending value is replaced, not queued.
	ev := priceDropEvent()
	require.NoError(t, d.Handle(context.Background(), ev))

	second := priceDropEvent()
	second.EntityID = "prod-2"
	require.NoError(t, d.Handle(context.Background(), second))

	select {
	case count := <-ch:
		assert.Equal(t, 2, count)
	case <-time.After(time.Second):
		t.Fatal("no unread update published")
	}
}

func TestDispatcher_SubscribeUnread_Cancel(t *testing.T) {
	t.Parallel()

	ms := mocks.NewMockStore(t)
	d := dispatch.New("user-1", ms, testLogger())

	ch, cancel := d.SubscribeUnread()
	cancel()

	_, open := <-ch
	assert.False(t, open, "canceled subscription channel should be closed")

	// Double cancel is safe.
	cancel()
}

func TestDispatcher_Close(t *testing.T) {
	t.Parallel()

	ms := mocks.NewMockStore(t)
	d := dispatch.New("user-1", ms, testLogger())

	ch, _ := d.SubscribeUnread()
	d.Close()

	_, open := <-ch
	assert.False(t, open)
}
