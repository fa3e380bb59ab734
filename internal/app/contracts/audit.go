package contracts

import (
	"context"
	"dr-portal/internal/app/models"
)

type AuditRepository interface {
	Insert(ctx context.Context, entry models.AuditEntry) error
	FindByDiagnosisID(ctx context.Context, diagnosisID string) ([]models.AuditEntry, error)
}
