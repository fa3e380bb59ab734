package contracts

import (
	"context"
	"dr-portal/internal/app/services/shared/apiclient"
	"dr-portal/internal/pkg/dto/requests"
	"net/url"

	"github.com/goccy/go-json"
)

// DBAPIClient is the JSON client of the DB API. Every method returns the
// response body unmodified.
type DBAPIClient interface {
	Login(ctx context.Context, credentials requests.Login) (json.RawMessage, error)
	GetDoctorStats(ctx context.Context, doctorID string) (json.RawMessage, error)
	GetDoctorPendingCases(ctx context.Context, doctorID string) (json.RawMessage, error)
	GetDoctorRecentDiagnoses(ctx context.Context, doctorID string) (json.RawMessage, error)
	GetDoctorDiagnosisHistory(ctx context.Context, doctorID string, confirmed *bool) (json.RawMessage, error)
	GetPatientReports(ctx context.Context, patientID string) (json.RawMessage, error)
	SubmitDiagnosis(ctx context.Context, diagnosis json.RawMessage) (json.RawMessage, error)
	GetDiagnosisDetail(ctx context.Context, diagnosisID string) (json.RawMessage, error)
	ConfirmDiagnosis(ctx context.Context, diagnosisID string) (json.RawMessage, error)
	DeleteDiagnosis(ctx context.Context, diagnosisID string) (json.RawMessage, error)
	ListUsers(ctx context.Context) (json.RawMessage, error)
	CreateUser(ctx context.Context, user requests.CreateUser) (json.RawMessage, error)
}

// AIAPIClient is the multipart client of the AI service.
type AIAPIClient interface {
	UploadImageForDiagnosis(ctx context.Context, image apiclient.Image) (json.RawMessage, error)
	UploadImageForSegmentation(ctx context.Context, image apiclient.Image) ([]byte, error)
	GetDiagnosisHistory(ctx context.Context, params url.Values) (json.RawMessage, error)
	GetDiagnosisReport(ctx context.Context, reportID string) (json.RawMessage, error)
}
