package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "lensauth/internal/delivery/context"
	"lensauth/internal/domain/service"

	"github.com/google/uuid"
)

// publishAuthEvent is best-effort: a broker outage never fails the request.
func publishAuthEvent(
	ctx context.Context,
	logger *slog.Logger,
	publisher service.EventPublisher,
	eventType service.AuthEventType,
	accountID uuid.UUID,
	email string,
	attributes map[string]string,
) {
	if publisher == nil {
		return
	}

	event := &service.AuthEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		AccountID:  accountID.String(),
		Email:      email,
		Attributes: attributes,
		OccurredAt: time.Now().UTC(),
	}
	if err := publisher.PublishAuthEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish auth event",
			slog.String("type", string(eventType)),
			slog.Any("accountID", accountID),
			slog.Any("error", err),
		)
	}
}
