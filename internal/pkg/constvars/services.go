package constvars

// DB API endpoints, relative to the configured base URL.
const (
	DBAPIPathLogin           = "/auth/login"
	DBAPIPathDoctorStats     = "/doctor/stats"
	DBAPIPathDoctorPending   = "/doctor/pending_cases"
	DBAPIPathDoctorRecent    = "/doctor/recent"
	DBAPIPathDoctorHistory   = "/doctor/history"
	DBAPIPathPatientReports  = "/patient/reports"
	DBAPIPathSubmitDiagnosis = "/auth/submit_diagnosis"
	DBAPIPathDiagnosis       = "/auth/diagnosis"
	DBAPIPathUsers           = "/users/"
)

// AI service endpoints, relative to the configured base URL.
const (
	AIAPIPathAnalyze          = "/diagnosis/analyze"
	AIAPIPathSegment          = "/segment"
	AIAPIPathDiagnosisHistory = "/diagnosis/history"
	AIAPIPathDiagnosisReports = "/diagnosis/reports"
)

// Diagnostic labels logged once per failed API call.
const (
	LabelLogin                     = "login request failed"
	LabelGetDoctorStats            = "doctor stats request failed"
	LabelGetDoctorPendingCases     = "doctor pending cases request failed"
	LabelGetDoctorRecentDiagnoses  = "doctor recent diagnoses request failed"
	LabelGetDoctorDiagnosisHistory = "doctor diagnosis history request failed"
	LabelGetPatientReports         = "patient reports request failed"
	LabelSubmitDiagnosis           = "submit diagnosis failed"
	LabelGetDiagnosisDetail        = "get diagnosis detail failed"
	LabelConfirmDiagnosis          = "confirm diagnosis failed"
	LabelDeleteDiagnosis           = "delete diagnosis failed"
	LabelListUsers                 = "list users failed"
	LabelCreateUser                = "create user failed"
	LabelUploadImageForDiagnosis   = "diagnosis request failed"
	LabelUploadImageForSegment     = "segmentation request failed"
	LabelGetDiagnosisHistory       = "get diagnosis history failed"
	LabelGetDiagnosisReport        = "get diagnosis report failed"
)

const (
	MongoCollectionReviewAudits = "review_audits"
	MaskObjectPrefix            = "masks/"
	MaskObjectExtension         = ".png"
)

const (
	EventAnalysisCompleted     = "analysis.completed"
	EventSegmentationCompleted = "segmentation.completed"
	EventDiagnosisSubmitted    = "diagnosis.submitted"
	EventDiagnosisConfirmed    = "diagnosis.confirmed"
	EventDiagnosisDeleted      = "diagnosis.deleted"
)

const (
	AuditActionSubmit  = "submit"
	AuditActionConfirm = "confirm"
	AuditActionDelete  = "delete"

	AuditOutcomeSucceeded = "succeeded"
	AuditOutcomeFailed    = "failed"
)
