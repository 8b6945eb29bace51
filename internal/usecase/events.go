package usecase

import (
	"context"
	"time"

	"freelance_marketplace/internal/domain/entities"
	"freelance_marketplace/internal/usecase/interfaces"
)

// emit hands an event to the notification dispatcher when one is wired.
// Dispatch is fire-and-forget; the core functions with the collaborator
// absent.
func emit(ctx context.Context, n interfaces.INotificationDispatcher, ev entities.Event) {
	if n == nil {
		return
	}
	ev.At = time.Now().UTC()
	n.Dispatch(ctx, ev)
}
