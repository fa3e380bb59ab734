package constvars

const (
	RoutePathRoot             = "/"
	RoutePathLogin            = "/login"
	RoutePathDoctorDashboard  = "/dashboard/doctor"
	RoutePathPatientDashboard = "/dashboard/patient"
)

const (
	RouteNameLogin            = "Login"
	RouteNameDoctorDashboard  = "DoctorDashboard"
	RouteNameNewDiagnosis     = "NewDiagnosis"
	RouteNameDiagnosisHistory = "DiagnosisHistory"
	RouteNamePendingReports   = "PendingReports"
	RouteNameReportsList      = "ReportsList"
	RouteNameReportDetail     = "ReportDetail"
	RouteNameSettings         = "Settings"
	RouteNamePatientDashboard = "PatientDashboard"
)

const (
	URLParamID          = "id"
	URLParamName        = "name"
	URLQueryConfirmed   = "confirmed"
	URLQueryDoctorID    = "doctor_id"
	URLQueryPatientID   = "patient_id"
	MultipartFieldImage = "image"
)
