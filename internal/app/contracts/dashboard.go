package contracts

import (
	"context"
	"dr-portal/internal/app/models"
	"dr-portal/internal/app/services/shared/apiclient"
	"dr-portal/internal/pkg/dto/responses"
	"net/url"

	"github.com/goccy/go-json"
)

// DashboardUsecase builds the view models of the dashboards and runs the
// doctor's review actions for the given session.
type DashboardUsecase interface {
	DoctorHome(ctx context.Context, session models.Session) (*responses.DoctorHome, error)
	DoctorHistory(ctx context.Context, session models.Session, confirmed *bool) (json.RawMessage, error)
	PendingReports(ctx context.Context, session models.Session) (json.RawMessage, error)
	ReportsList(ctx context.Context, session models.Session, params url.Values) (json.RawMessage, error)
	ReportDetail(ctx context.Context, session models.Session, diagnosisID string) (json.RawMessage, error)
	PatientReports(ctx context.Context, session models.Session) (json.RawMessage, error)
	Settings(ctx context.Context, session models.Session) responses.Settings

	AnalyzeImage(ctx context.Context, session models.Session, image apiclient.Image) (json.RawMessage, error)
	SegmentImage(ctx context.Context, session models.Session, image apiclient.Image) (*responses.Segmentation, error)
	Submit(ctx context.Context, session models.Session, diagnosis json.RawMessage) (json.RawMessage, error)
	Confirm(ctx context.Context, session models.Session, diagnosisID string) (json.RawMessage, error)
	Delete(ctx context.Context, session models.Session, diagnosisID string) (json.RawMessage, error)
	AIReport(ctx context.Context, session models.Session, reportID string) (json.RawMessage, error)
	AuditTrail(ctx context.Context, diagnosisID string) ([]models.AuditEntry, error)
	MaskUrl(ctx context.Context, objectName string) (string, error)
}
