package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"luxride/internal/models"
)

func TestInbox(t *testing.T) {
	store := newStore(t)
	n := &recordingNotifier{}
	inbox := NewInbox(store, n)
	ctx := context.Background()

	note := &models.Notification{UserID: "u1", Type: models.NotifBookingConfirmed, Title: "t", Timestamp: testNow}
	require.NoError(t, store.CreateNotification(ctx, note))

	count, err := inbox.UnreadCount(ctx, "u1")
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	require.NoError(t, inbox.MarkRead(ctx, "u1", note.ID))
	require.NoError(t, inbox.MarkRead(ctx, "u1", note.ID))
	require.NoError(t, inbox.MarkRead(ctx, "u1", "missing"))

	list, err := inbox.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].Read)

	count, err = inbox.UnreadCount(ctx, "u1")
	require.NoError(t, err)
	assert.Zero(t, count)

	require.NoError(t, inbox.Remove(ctx, "u1", note.ID))
	list, err = inbox.List(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Equal(t, []string{CollectionNotifications, CollectionNotifications, CollectionNotifications, CollectionNotifications}, n.collections())
}
