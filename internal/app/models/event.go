package models

import "time"

type DiagnosisEvent struct {
	Type        string    `json:"type"`
	DiagnosisID string    `json:"diagnosis_id,omitempty"`
	ActorUserID string    `json:"actor_user_id,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
	MaskObject  string    `json:"mask_object,omitempty"`
}
