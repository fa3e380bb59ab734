package models

import "time"

type AuditEntry struct {
	ID          string    `bson:"_id" json:"id"`
	Action      string    `bson:"action" json:"action"`
	DiagnosisID string    `bson:"diagnosis_id,omitempty" json:"diagnosis_id,omitempty"`
	ActorRole   Role      `bson:"actor_role" json:"actor_role"`
	ActorUserID string    `bson:"actor_user_id,omitempty" json:"actor_user_id,omitempty"`
	OccurredAt  time.Time `bson:"occurred_at" json:"occurred_at"`
	Outcome     string    `bson:"outcome" json:"outcome"`
}
