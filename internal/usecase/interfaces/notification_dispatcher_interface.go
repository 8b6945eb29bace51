package interfaces

import (
	"context"

	"freelance_marketplace/internal/domain/entities"
)

// INotificationDispatcher hands lifecycle events to the notification
// collaborator. Dispatch is fire-and-forget: implementations bound their own
// delivery timeout and log failures; the core never blocks or fails on it.
type INotificationDispatcher interface {
	Dispatch(ctx context.Context, event entities.Event)
}
