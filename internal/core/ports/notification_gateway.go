package ports

import (
	"context"

	"eventsupply/internal/core/domain/model/kernel"
)

// NotificationGateway delivers a text to a phone over an out-of-band channel.
// Delivery is fire-and-forget, best effort: a send failure is surfaced as a
// warning to the caller and never fails the transition that triggered it.
// Channel failures are reported, not retried, by the core.
type NotificationGateway interface {
	Send(ctx context.Context, phone kernel.Phone, message string) error
}
