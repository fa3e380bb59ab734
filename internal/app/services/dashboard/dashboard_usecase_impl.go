package dashboard

import (
	"context"
	"dr-portal/internal/app/contracts"
	"dr-portal/internal/app/models"
	"dr-portal/internal/app/services/shared/apiclient"
	"dr-portal/internal/pkg/constvars"
	"dr-portal/internal/pkg/dto/responses"
	"dr-portal/internal/pkg/exceptions"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var _ contracts.DashboardUsecase = (*Usecase)(nil)

// Usecase turns API client calls into view models. Archive, Events and
// Audit are optional; their failures are logged and never change the
// result of the API call.
type Usecase struct {
	DBAPI   contracts.DBAPIClient
	AIAPI   contracts.AIAPIClient
	Archive contracts.MaskArchive
	Events  contracts.EventPublisher
	Audit   contracts.AuditRepository
	Log     *zap.Logger
	Now     func() time.Time
}

func NewDashboardUsecase(
	dbapiClient contracts.DBAPIClient,
	aiapiClient contracts.AIAPIClient,
	archive contracts.MaskArchive,
	events contracts.EventPublisher,
	audit contracts.AuditRepository,
	logger *zap.Logger,
) *Usecase {
	return &Usecase{
		DBAPI:   dbapiClient,
		AIAPI:   aiapiClient,
		Archive: archive,
		Events:  events,
		Audit:   audit,
		Log:     logger,
		Now:     time.Now,
	}
}

// DoctorHome loads stats, pending cases and recent diagnoses concurrently
// and fails on the first error.
func (uc *Usecase) DoctorHome(ctx context.Context, session models.Session) (*responses.DoctorHome, error) {
	doctorID := session.Profile.DoctorID
	home := new(responses.DoctorHome)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		stats, err := uc.DBAPI.GetDoctorStats(gctx, doctorID)
		home.Stats = stats
		return err
	})
	g.Go(func() error {
		pending, err := uc.DBAPI.GetDoctorPendingCases(gctx, doctorID)
		home.PendingCases = pending
		return err
	})
	g.Go(func() error {
		recent, err := uc.DBAPI.GetDoctorRecentDiagnoses(gctx, doctorID)
		home.RecentDiagnoses = recent
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return home, nil
}

func (uc *Usecase) DoctorHistory(ctx context.Context, session models.Session, confirmed *bool) (json.RawMessage, error) {
	return uc.DBAPI.GetDoctorDiagnosisHistory(ctx, session.Profile.DoctorID, confirmed)
}

func (uc *Usecase) PendingReports(ctx context.Context, session models.Session) (json.RawMessage, error) {
	return uc.DBAPI.GetDoctorPendingCases(ctx, session.Profile.DoctorID)
}

// ReportsList lists the AI service reports, forwarding params unchanged.
func (uc *Usecase) ReportsList(ctx context.Context, session models.Session, params url.Values) (json.RawMessage, error) {
	return uc.AIAPI.GetDiagnosisHistory(ctx, params)
}

func (uc *Usecase) ReportDetail(ctx context.Context, session models.Session, diagnosisID string) (json.RawMessage, error) {
	return uc.DBAPI.GetDiagnosisDetail(ctx, diagnosisID)
}

func (uc *Usecase) PatientReports(ctx context.Context, session models.Session) (json.RawMessage, error) {
	return uc.DBAPI.GetPatientReports(ctx, session.Profile.PatientID)
}

func (uc *Usecase) Settings(ctx context.Context, session models.Session) responses.Settings {
	return responses.Settings{
		Role:      string(session.Role),
		UserID:    session.Profile.UserID,
		DoctorID:  session.Profile.DoctorID,
		PatientID: session.Profile.PatientID,
	}
}

func (uc *Usecase) AIReport(ctx context.Context, session models.Session, reportID string) (json.RawMessage, error) {
	return uc.AIAPI.GetDiagnosisReport(ctx, reportID)
}

func (uc *Usecase) AnalyzeImage(ctx context.Context, session models.Session, image apiclient.Image) (json.RawMessage, error) {
	result, err := uc.AIAPI.UploadImageForDiagnosis(ctx, image)
	if err != nil {
		return nil, err
	}

	uc.publish(ctx, models.DiagnosisEvent{
		Type:        constvars.EventAnalysisCompleted,
		ActorUserID: session.Profile.UserID,
	})
	return result, nil
}

// SegmentImage returns the mask exactly as received. When an archive is
// configured the mask is also stored and its object name reported.
func (uc *Usecase) SegmentImage(ctx context.Context, session models.Session, image apiclient.Image) (*responses.Segmentation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	mask, err := uc.AIAPI.UploadImageForSegmentation(ctx, image)
	if err != nil {
		return nil, err
	}

	segmentation := &responses.Segmentation{
		Mask:        mask,
		ContentType: http.DetectContentType(mask),
	}

	if uc.Archive != nil {
		objectName, err := uc.Archive.ArchiveMask(ctx, mask, segmentation.ContentType)
		if err != nil {
			uc.Log.Error("dashboardUsecase.SegmentImage error archiving mask",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		} else {
			segmentation.MaskObject = objectName
			uc.Log.Info("dashboardUsecase.SegmentImage archived mask",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingObjectKey, objectName),
				zap.Int(constvars.LoggingResponseLenKey, len(mask)),
			)
		}
	}

	uc.publish(ctx, models.DiagnosisEvent{
		Type:        constvars.EventSegmentationCompleted,
		ActorUserID: session.Profile.UserID,
		MaskObject:  segmentation.MaskObject,
	})
	return segmentation, nil
}

func (uc *Usecase) Submit(ctx context.Context, session models.Session, diagnosis json.RawMessage) (json.RawMessage, error) {
	result, err := uc.DBAPI.SubmitDiagnosis(ctx, diagnosis)
	diagnosisID := peekDiagnosisID(result)
	if diagnosisID == "" {
		diagnosisID = peekDiagnosisID(diagnosis)
	}

	uc.audit(ctx, session, constvars.AuditActionSubmit, diagnosisID, err)
	if err != nil {
		return nil, err
	}

	uc.publish(ctx, models.DiagnosisEvent{
		Type:        constvars.EventDiagnosisSubmitted,
		DiagnosisID: diagnosisID,
		ActorUserID: session.Profile.UserID,
	})
	return result, nil
}

func (uc *Usecase) Confirm(ctx context.Context, session models.Session, diagnosisID string) (json.RawMessage, error) {
	result, err := uc.DBAPI.ConfirmDiagnosis(ctx, diagnosisID)
	uc.audit(ctx, session, constvars.AuditActionConfirm, diagnosisID, err)
	if err != nil {
		return nil, err
	}

	uc.publish(ctx, models.DiagnosisEvent{
		Type:        constvars.EventDiagnosisConfirmed,
		DiagnosisID: diagnosisID,
		ActorUserID: session.Profile.UserID,
	})
	return result, nil
}

func (uc *Usecase) Delete(ctx context.Context, session models.Session, diagnosisID string) (json.RawMessage, error) {
	result, err := uc.DBAPI.DeleteDiagnosis(ctx, diagnosisID)
	uc.audit(ctx, session, constvars.AuditActionDelete, diagnosisID, err)
	if err != nil {
		return nil, err
	}

	uc.publish(ctx, models.DiagnosisEvent{
		Type:        constvars.EventDiagnosisDeleted,
		DiagnosisID: diagnosisID,
		ActorUserID: session.Profile.UserID,
	})
	return result, nil
}

func (uc *Usecase) AuditTrail(ctx context.Context, diagnosisID string) ([]models.AuditEntry, error) {
	if uc.Audit == nil {
		return []models.AuditEntry{}, nil
	}
	return uc.Audit.FindByDiagnosisID(ctx, diagnosisID)
}

func (uc *Usecase) MaskUrl(ctx context.Context, objectName string) (string, error) {
	if uc.Archive == nil {
		return "", exceptions.ErrRouteNotFound(objectName)
	}
	return uc.Archive.GetMaskUrl(ctx, objectName)
}

func (uc *Usecase) audit(ctx context.Context, session models.Session, action, diagnosisID string, callErr error) {
	if uc.Audit == nil {
		return
	}
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	outcome := constvars.AuditOutcomeSucceeded
	if callErr != nil {
		outcome = constvars.AuditOutcomeFailed
	}

	err := uc.Audit.Insert(ctx, models.AuditEntry{
		ID:          uuid.New().String(),
		Action:      action,
		DiagnosisID: diagnosisID,
		ActorRole:   session.Role,
		ActorUserID: session.Profile.UserID,
		OccurredAt:  uc.Now().UTC(),
		Outcome:     outcome,
	})
	if err != nil {
		uc.Log.Error("dashboardUsecase.audit error inserting audit entry",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDiagnosisIDKey, diagnosisID),
			zap.Error(err),
		)
	}
}

func (uc *Usecase) publish(ctx context.Context, event models.DiagnosisEvent) {
	if uc.Events == nil {
		return
	}
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	event.OccurredAt = uc.Now().UTC()
	err := uc.Events.Publish(ctx, event)
	if err != nil {
		uc.Log.Error("dashboardUsecase.publish error publishing event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventTypeKey, event.Type),
			zap.Error(err),
		)
	}
}

// peekDiagnosisID reads "diagnosis_id" or "id" from a JSON object, if any.
// It is only used to label audit entries and events.
func peekDiagnosisID(payload json.RawMessage) string {
	if len(payload) == 0 {
		return ""
	}
	var fields map[string]interface{}
	if err := json.Unmarshal(payload, &fields); err != nil {
		return ""
	}
	for _, key := range []string{"diagnosis_id", "id"} {
		switch value := fields[key].(type) {
		case string:
			return value
		case float64:
			return fmt.Sprintf("%.0f", value)
		}
	}
	return ""
}
