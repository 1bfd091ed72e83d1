package commands

import (
	"context"
	"fmt"
	"log/slog"

	"eventsupply/internal/core/domain/model/credential"
	"eventsupply/internal/core/domain/model/kernel"
	"eventsupply/internal/core/domain/model/order"
	"eventsupply/internal/core/ports"
	"eventsupply/internal/pkg/metrics"
)

func credentialMessage(c *credential.Credential) string {
	return fmt.Sprintf(
		"Your verification code is %s. It expires in %d minutes.",
		c.Code(),
		int(c.Purpose().TTL().Minutes()),
	)
}

func statusMessage(o *order.Order) string {
	switch o.Status() {
	case order.Approved:
		return fmt.Sprintf("Order %s has been approved.", o.OrderNumber())
	case order.Dispatched:
		return fmt.Sprintf("Order %s is on its way to %s.", o.OrderNumber(), o.EventName())
	case order.Delivered:
		return fmt.Sprintf("Order %s was delivered and received by %s.", o.OrderNumber(), o.RecipientName())
	default:
		return fmt.Sprintf("Order %s is now %s.", o.OrderNumber(), o.Status())
	}
}

// sendBestEffort hands a text to the notification gateway. A channel failure
// is logged as a warning and counted, never returned: notification delivery
// must not fail the transition that triggered it.
func sendBestEffort(ctx context.Context, gateway ports.NotificationGateway, logger *slog.Logger, phone kernel.Phone, message string) {
	metrics.NotificationsSentTotal.Inc()
	if err := gateway.Send(ctx, phone, message); err != nil {
		metrics.NotificationsFailedTotal.Inc()
		logger.WarnContext(ctx, "notification delivery failed", "error", err)
	}
}
