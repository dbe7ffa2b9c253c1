package notif

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"gatherchat/internal/common"
)

// NotificationManager fans events out to its observers, one after another, in
// subscription order.
type NotificationManager struct {
	mu        sync.RWMutex
	observers []Observer
	log       *zap.Logger
}

func NewNotificationManager(log *zap.Logger) *NotificationManager {
	return &NotificationManager{log: log}
}

// Subscribe adds observer, replacing any observer with the same name.
func (nm *NotificationManager) Subscribe(observer Observer) {
	nm.mu.Lock()
	defer nm.mu.Unlock()

	for i, obs := range nm.observers {
		if obs.Name() == observer.Name() {
			nm.observers[i] = observer
			return
		}
	}
	nm.observers = append(nm.observers, observer)
	nm.log.Debug("observer subscribed", zap.String("observer", observer.Name()))
}

func (nm *NotificationManager) Unsubscribe(observer Observer) {
	nm.mu.Lock()
	defer nm.mu.Unlock()

	kept := nm.observers[:0]
	for _, obs := range nm.observers {
		if obs.Name() != observer.Name() {
			kept = append(kept, obs)
		}
	}
	nm.observers = kept
	nm.log.Debug("observer unsubscribed", zap.String("observer", observer.Name()))
}

// Notify delivers event to every observer. A failing observer does not stop
// the others; all failures are returned joined.
func (nm *NotificationManager) Notify(ctx context.Context, event common.NotificationEvent) error {
	nm.mu.RLock()
	observers := make([]Observer, len(nm.observers))
	copy(observers, nm.observers)
	nm.mu.RUnlock()

	var errs []error
	for _, observer := range observers {
		if err := observer.Update(ctx, event); err != nil {
			nm.log.Warn("observer update failed",
				zap.String("observer", observer.Name()),
				zap.String("type", string(event.Type)),
				zap.Error(err))
			errs = append(errs, fmt.Errorf("%s: %w", observer.Name(), err))
		}
	}
	return errors.Join(errs...)
}
