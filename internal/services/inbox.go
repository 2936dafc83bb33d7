package services

import (
	"context"

	"luxride/internal/changes"
	"luxride/internal/models"
	"luxride/internal/repository"
)

type Inbox struct {
	store    repository.NotificationStore
	notifier changes.Notifier
}

func NewInbox(store repository.NotificationStore, notifier changes.Notifier) *Inbox {
	return &Inbox{store: store, notifier: notifier}
}

// List returns the user's notifications, newest first.
func (i *Inbox) List(ctx context.Context, userID string) ([]models.Notification, error) {
	return i.store.Notifications(ctx, userID)
}

// MarkRead is idempotent and ignores unknown ids.
func (i *Inbox) MarkRead(ctx context.Context, userID, id string) error {
	if err := i.store.MarkRead(ctx, userID, id); err != nil {
		return err
	}
	changes.Announce(ctx, i.notifier, changes.Change{UserID: userID, Collection: CollectionNotifications, Action: changes.ActionUpdated, ID: id})
	return nil
}

func (i *Inbox) Remove(ctx context.Context, userID, id string) error {
	if err := i.store.DeleteNotification(ctx, userID, id); err != nil {
		return err
	}
	changes.Announce(ctx, i.notifier, changes.Change{UserID: userID, Collection: CollectionNotifications, Action: changes.ActionDeleted, ID: id})
	return nil
}

func (i *Inbox) UnreadCount(ctx context.Context, userID string) (int64, error) {
	return i.store.UnreadCount(ctx, userID)
}
