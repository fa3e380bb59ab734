package responses

type Login struct {
	Role       string `json:"role"`
	UserID     string `json:"user_id,omitempty"`
	DoctorID   string `json:"doctor_id,omitempty"`
	PatientID  string `json:"patient_id,omitempty"`
	RedirectTo string `json:"redirect_to"`
}
