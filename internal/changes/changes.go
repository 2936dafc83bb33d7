// Package changes tells connected clients that one of their collections was
// written, so other open tabs can refresh instead of polling.
package changes

import (
	"context"
	"encoding/json"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Channel is the Postgres NOTIFY channel carrying changes.
const Channel = "luxride_changes"

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

type Change struct {
	UserID     string `json:"user_id"`
	Collection string `json:"collection"`
	Action     string `json:"action"`
	ID         string `json:"id,omitempty"`
}

// Notifier announces a committed write.
type Notifier interface {
	Notify(ctx context.Context, c Change) error
}

// Local publishes straight to an in-process hub.
type Local struct {
	hub *Hub
}

func NewLocal(hub *Hub) *Local {
	return &Local{hub: hub}
}

func (l *Local) Notify(_ context.Context, c Change) error {
	l.hub.Publish(c)
	return nil
}

// Postgres sends pg_notify so every server instance listening on Channel
// receives the change.
type Postgres struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *Postgres {
	return &Postgres{db: db}
}

func (p *Postgres) Notify(ctx context.Context, c Change) error {
	payload, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return p.db.WithContext(ctx).Exec("SELECT pg_notify(?, ?)", Channel, string(payload)).Error
}

// Announce sends c and logs instead of failing; the write it describes has
// already committed.
func Announce(ctx context.Context, n Notifier, c Change) {
	if n == nil {
		return
	}
	if err := n.Notify(ctx, c); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"user_id":    c.UserID,
			"collection": c.Collection,
			"action":     c.Action,
		}).Warn("Failed to announce change.")
	}
}
