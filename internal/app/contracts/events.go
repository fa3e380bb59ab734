package contracts

import (
	"context"
	"dr-portal/internal/app/models"
)

type EventPublisher interface {
	Publish(ctx context.Context, event models.DiagnosisEvent) error
}
