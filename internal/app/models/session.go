package models

import "dr-portal/internal/pkg/constvars"

type Role string

const (
	RoleNone    Role = ""
	RoleDoctor  Role = constvars.RoleDoctor
	RolePatient Role = constvars.RolePatient
)

// Session is the persisted client state. Token and Role are always written
// and cleared together.
type Session struct {
	Token   string  `json:"token"`
	Role    Role    `json:"role"`
	Profile Profile `json:"profile,omitempty"`
}

// Profile holds the login payload identifiers the dashboards query with.
type Profile struct {
	UserID    string `json:"user_id,omitempty"`
	DoctorID  string `json:"doctor_id,omitempty"`
	PatientID string `json:"patient_id,omitempty"`
}

func (s Session) HasToken() bool {
	return s.Token != ""
}

// IsPartial reports a session where exactly one of token and role is set.
func (s Session) IsPartial() bool {
	return (s.Token == "") != (s.Role == RoleNone)
}

func (s Session) IsEmpty() bool {
	return s.Token == "" && s.Role == RoleNone
}
