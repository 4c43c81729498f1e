package pipeline

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/docflowhq/docflow/internal/delivery"
	"github.com/docflowhq/docflow/internal/entity"
)

// DeliveryHandler adapts the delivery service to the queue worker contract.
// Malformed payloads are logged and dropped rather than redelivered forever.
func DeliveryHandler(svc *delivery.Service, logger *slog.Logger) func(ctx context.Context, msg *entity.QueueMessage) error {
	if logger == nil {
		logger = slog.Default()
	}
	return func(ctx context.Context, msg *entity.QueueMessage) error {
		var m delivery.Message
		if err := json.Unmarshal(msg.Payload, &m); err != nil {
			logger.Error("malformed delivery message discarded", "msg_id", msg.ID.String(), "error", err)
			return nil
		}
		return svc.Handle(ctx, m)
	}
}
