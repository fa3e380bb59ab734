package responses

import "github.com/goccy/go-json"

// View is what every guarded page returns: the matched route and its model.
type View struct {
	Name   string            `json:"name"`
	Path   string            `json:"path"`
	Params map[string]string `json:"params,omitempty"`
	Data   interface{}       `json:"data,omitempty"`
}

type DoctorHome struct {
	Stats           json.RawMessage `json:"stats"`
	PendingCases    json.RawMessage `json:"pending_cases"`
	RecentDiagnoses json.RawMessage `json:"recent_diagnoses"`
}

type Settings struct {
	Role      string `json:"role"`
	UserID    string `json:"user_id,omitempty"`
	DoctorID  string `json:"doctor_id,omitempty"`
	PatientID string `json:"patient_id,omitempty"`
}

// Segmentation carries the mask exactly as the AI service returned it.
type Segmentation struct {
	Mask        []byte
	ContentType string
	MaskObject  string
}
