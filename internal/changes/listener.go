package changes

import (
	"context"
	"encoding/json"
	"time"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

// Listen relays NOTIFY payloads on Channel into hub until ctx is done.
func Listen(ctx context.Context, dsn string, hub *Hub) error {
	listener := pq.NewListener(dsn, 10*time.Second, time.Minute, func(ev pq.ListenerEventType, err error) {
		if err != nil {
			logrus.WithError(err).WithField("event", ev).Warn("Change listener connection event.")
		}
	})
	if err := listener.Listen(Channel); err != nil {
		listener.Close()
		return err
	}

	go func() {
		defer listener.Close()
		ping := time.NewTicker(90 * time.Second)
		defer ping.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case n := <-listener.Notify:
				if n == nil {
					// Reconnected; changes sent while down are lost.
					continue
				}
				c, err := decode(n.Extra)
				if err != nil {
					logrus.WithError(err).WithField("payload", n.Extra).Warn("Ignoring malformed change notification.")
					continue
				}
				hub.Publish(c)
			case <-ping.C:
				if err := listener.Ping(); err != nil {
					logrus.WithError(err).Warn("Change listener ping failed.")
				}
			}
		}
	}()
	return nil
}

func decode(payload string) (Change, error) {
	var c Change
	err := json.Unmarshal([]byte(payload), &c)
	return c, err
}
