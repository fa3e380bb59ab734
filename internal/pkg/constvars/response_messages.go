package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	LoginSuccessMessage            = "successfully login"
	LogoutSuccessMessage           = "successfully logout"
	GetViewSuccessMessage          = "view loaded successfully"
	AnalyzeImageSuccessMessage     = "image analyzed successfully"
	SubmitDiagnosisSuccessMessage  = "diagnosis submitted successfully"
	ConfirmDiagnosisSuccessMessage = "diagnosis confirmed successfully"
	DeleteDiagnosisSuccessMessage  = "diagnosis returned successfully"
	GetDiagnosisSuccessMessage     = "diagnosis fetched successfully"
	GetDiagnosisHistoryMessage     = "diagnosis history fetched successfully"
	GetDiagnosisReportMessage      = "diagnosis report fetched successfully"
	ListUsersSuccessMessage        = "users fetched successfully"
	CreateUserSuccessMessage       = "user created successfully"
)
