package dashboard

import (
	"bytes"
	"context"
	"dr-portal/internal/app/models"
	"dr-portal/internal/app/services/shared/apiclient"
	"encoding/json"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var fixedNow = time.Date(2024, 6, 1, 8, 30, 0, 0, time.UTC)

var doctorSession = models.Session{
	Token:   "abc",
	Role:    models.RoleDoctor,
	Profile: models.Profile{UserID: "1", DoctorID: "4"},
}

type fixture struct {
	db      *MockDBAPIClient
	ai      *MockAIAPIClient
	archive *MockMaskArchive
	events  *MockEventPublisher
	audit   *MockAuditRepository
	usecase *Usecase
}

func newFixture() *fixture {
	f := &fixture{
		db:      new(MockDBAPIClient),
		ai:      new(MockAIAPIClient),
		archive: new(MockMaskArchive),
		events:  new(MockEventPublisher),
		audit:   new(MockAuditRepository),
	}
	f.usecase = NewDashboardUsecase(f.db, f.ai, f.archive, f.events, f.audit, zap.NewNop())
	f.usecase.Now = func() time.Time { return fixedNow }
	return f
}

func (f *fixture) assertExpectations(t *testing.T) {
	f.db.AssertExpectations(t)
	f.ai.AssertExpectations(t)
	f.archive.AssertExpectations(t)
	f.events.AssertExpectations(t)
	f.audit.AssertExpectations(t)
}

func TestUsecase_DoctorHome(t *testing.T) {
	f := newFixture()
	f.db.On("GetDoctorStats", mock.Anything, "4").Return(json.RawMessage(`{"total":3}`), nil)
	f.db.On("GetDoctorPendingCases", mock.Anything, "4").Return(json.RawMessage(`[1]`), nil)
	f.db.On("GetDoctorRecentDiagnoses", mock.Anything, "4").Return(json.RawMessage(`[2]`), nil)

	home, err := f.usecase.DoctorHome(context.Background(), doctorSession)

	require.NoError(t, err)
	assert.Equal(t, `{"total":3}`, string(home.Stats))
	assert.Equal(t, `[1]`, string(home.PendingCases))
	assert.Equal(t, `[2]`, string(home.RecentDiagnoses))
	f.assertExpectations(t)
}

func TestUsecase_DoctorHome_FailsOnFirstError(t *testing.T) {
	f := newFixture()
	apiErr := &apiclient.Error{StatusCode: 500, Err: apiclient.ErrUnexpectedStatus}
	f.db.On("GetDoctorStats", mock.Anything, "4").Return(nil, apiErr)
	f.db.On("GetDoctorPendingCases", mock.Anything, "4").Return(json.RawMessage(`[]`), nil)
	f.db.On("GetDoctorRecentDiagnoses", mock.Anything, "4").Return(json.RawMessage(`[]`), nil)

	home, err := f.usecase.DoctorHome(context.Background(), doctorSession)

	assert.Nil(t, home)
	assert.Same(t, apiErr, err)
}

func TestUsecase_Views(t *testing.T) {
	confirmed := true

	t.Run("DoctorHistory", func(t *testing.T) {
		f := newFixture()
		f.db.On("GetDoctorDiagnosisHistory", mock.Anything, "4", &confirmed).Return(json.RawMessage(`[]`), nil)
		got, err := f.usecase.DoctorHistory(context.Background(), doctorSession, &confirmed)
		require.NoError(t, err)
		assert.Equal(t, `[]`, string(got))
		f.assertExpectations(t)
	})

	t.Run("PendingReports", func(t *testing.T) {
		f := newFixture()
		f.db.On("GetDoctorPendingCases", mock.Anything, "4").Return(json.RawMessage(`[9]`), nil)
		got, err := f.usecase.PendingReports(context.Background(), doctorSession)
		require.NoError(t, err)
		assert.Equal(t, `[9]`, string(got))
	})

	t.Run("ReportsList forwards params", func(t *testing.T) {
		f := newFixture()
		params := url.Values{"page": {"2"}}
		f.ai.On("GetDiagnosisHistory", mock.Anything, params).Return(json.RawMessage(`{"items":[]}`), nil)
		got, err := f.usecase.ReportsList(context.Background(), doctorSession, params)
		require.NoError(t, err)
		assert.Equal(t, `{"items":[]}`, string(got))
	})

	t.Run("ReportDetail", func(t *testing.T) {
		f := newFixture()
		f.db.On("GetDiagnosisDetail", mock.Anything, "17").Return(json.RawMessage(`{"id":17}`), nil)
		got, err := f.usecase.ReportDetail(context.Background(), doctorSession, "17")
		require.NoError(t, err)
		assert.Equal(t, `{"id":17}`, string(got))
	})

	t.Run("PatientReports", func(t *testing.T) {
		f := newFixture()
		patient := models.Session{Token: "t", Role: models.RolePatient, Profile: models.Profile{PatientID: "8"}}
		f.db.On("GetPatientReports", mock.Anything, "8").Return(json.RawMessage(`[]`), nil)
		_, err := f.usecase.PatientReports(context.Background(), patient)
		require.NoError(t, err)
		f.assertExpectations(t)
	})

	t.Run("AIReport", func(t *testing.T) {
		f := newFixture()
		f.ai.On("GetDiagnosisReport", mock.Anything, "r-1").Return(json.RawMessage(`{}`), nil)
		_, err := f.usecase.AIReport(context.Background(), doctorSession, "r-1")
		require.NoError(t, err)
		f.assertExpectations(t)
	})

	t.Run("Settings", func(t *testing.T) {
		f := newFixture()
		settings := f.usecase.Settings(context.Background(), doctorSession)
		assert.Equal(t, "doctor", settings.Role)
		assert.Equal(t, "4", settings.DoctorID)
		assert.Equal(t, "1", settings.UserID)
	})
}

func TestUsecase_AnalyzeImage(t *testing.T) {
	f := newFixture()
	image := apiclient.Image{Filename: "a.png", Data: bytes.NewReader([]byte("img"))}
	f.ai.On("UploadImageForDiagnosis", mock.Anything, image).Return(json.RawMessage(`{"label":"nevus"}`), nil)
	f.events.On("Publish", mock.Anything, models.DiagnosisEvent{
		Type:        "analysis.completed",
		ActorUserID: "1",
		OccurredAt:  fixedNow,
	}).Return(nil)

	got, err := f.usecase.AnalyzeImage(context.Background(), doctorSession, image)

	require.NoError(t, err)
	assert.Equal(t, `{"label":"nevus"}`, string(got))
	f.assertExpectations(t)
}

func TestUsecase_AnalyzeImage_FailureSkipsEvent(t *testing.T) {
	f := newFixture()
	image := apiclient.Image{Filename: "a.png"}
	apiErr := &apiclient.Error{Timeout: true, Err: context.DeadlineExceeded}
	f.ai.On("UploadImageForDiagnosis", mock.Anything, image).Return(nil, apiErr)

	_, err := f.usecase.AnalyzeImage(context.Background(), doctorSession, image)

	assert.Same(t, apiErr, err)
	f.events.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestUsecase_SegmentImage_ArchivesAndReturnsMaskUnchanged(t *testing.T) {
	f := newFixture()
	image := apiclient.Image{Filename: "a.png"}
	mask := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	f.ai.On("UploadImageForSegmentation", mock.Anything, image).Return(mask, nil)
	f.archive.On("ArchiveMask", mock.Anything, mask, "image/png").Return("masks/m-1.png", nil)
	f.events.On("Publish", mock.Anything, mock.MatchedBy(func(e models.DiagnosisEvent) bool {
		return e.Type == "segmentation.completed" && e.MaskObject == "masks/m-1.png"
	})).Return(nil)

	got, err := f.usecase.SegmentImage(context.Background(), doctorSession, image)

	require.NoError(t, err)
	assert.Equal(t, mask, got.Mask)
	assert.Equal(t, "image/png", got.ContentType)
	assert.Equal(t, "masks/m-1.png", got.MaskObject)
	f.assertExpectations(t)
}

func TestUsecase_SegmentImage_SideEffectFailuresDoNotMaskResult(t *testing.T) {
	f := newFixture()
	image := apiclient.Image{Filename: "a.png"}
	mask := []byte{0x00, 0x01, 0x02}
	f.ai.On("UploadImageForSegmentation", mock.Anything, image).Return(mask, nil)
	f.archive.On("ArchiveMask", mock.Anything, mask, mock.Anything).Return("", errors.New("minio down"))
	f.events.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker down"))

	got, err := f.usecase.SegmentImage(context.Background(), doctorSession, image)

	require.NoError(t, err)
	assert.Equal(t, mask, got.Mask)
	assert.Empty(t, got.MaskObject)
}

func TestUsecase_SegmentImage_WithoutInfrastructure(t *testing.T) {
	db := new(MockDBAPIClient)
	ai := new(MockAIAPIClient)
	usecase := NewDashboardUsecase(db, ai, nil, nil, nil, zap.NewNop())
	image := apiclient.Image{Filename: "a.png"}
	ai.On("UploadImageForSegmentation", mock.Anything, image).Return([]byte("mask"), nil)

	got, err := usecase.SegmentImage(context.Background(), doctorSession, image)

	require.NoError(t, err)
	assert.Equal(t, []byte("mask"), got.Mask)

	trail, err := usecase.AuditTrail(context.Background(), "1")
	require.NoError(t, err)
	assert.Empty(t, trail)

	_, err = usecase.MaskUrl(context.Background(), "masks/x.png")
	assert.Error(t, err)
}

func TestUsecase_Submit(t *testing.T) {
	f := newFixture()
	diagnosis := json.RawMessage(`{"image_id":3,"label":"nevus"}`)
	f.db.On("SubmitDiagnosis", mock.Anything, diagnosis).Return(json.RawMessage(`{"diagnosis_id":42}`), nil)
	f.audit.On("Insert", mock.Anything, mock.MatchedBy(func(e models.AuditEntry) bool {
		return e.Action == "submit" && e.DiagnosisID == "42" && e.Outcome == "succeeded" &&
			e.ActorRole == models.RoleDoctor && e.ActorUserID == "1" && e.OccurredAt.Equal(fixedNow) && e.ID != ""
	})).Return(nil)
	f.events.On("Publish", mock.Anything, models.DiagnosisEvent{
		Type:        "diagnosis.submitted",
		DiagnosisID: "42",
		ActorUserID: "1",
		OccurredAt:  fixedNow,
	}).Return(nil)

	got, err := f.usecase.Submit(context.Background(), doctorSession, diagnosis)

	require.NoError(t, err)
	assert.Equal(t, `{"diagnosis_id":42}`, string(got))
	f.assertExpectations(t)
}

func TestUsecase_ConfirmFailureIsAudited(t *testing.T) {
	f := newFixture()
	apiErr := &apiclient.Error{StatusCode: 404, Err: apiclient.ErrUnexpectedStatus}
	f.db.On("ConfirmDiagnosis", mock.Anything, "42").Return(nil, apiErr)
	f.audit.On("Insert", mock.Anything, mock.MatchedBy(func(e models.AuditEntry) bool {
		return e.Action == "confirm" && e.Outcome == "failed"
	})).Return(nil)

	_, err := f.usecase.Confirm(context.Background(), doctorSession, "42")

	assert.Same(t, apiErr, err)
	f.events.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestUsecase_Delete_AuditFailureDoesNotMaskResult(t *testing.T) {
	f := newFixture()
	f.db.On("DeleteDiagnosis", mock.Anything, "42").Return(json.RawMessage(`{"deleted":true}`), nil)
	f.audit.On("Insert", mock.Anything, mock.Anything).Return(errors.New("mongo down"))
	f.events.On("Publish", mock.Anything, mock.MatchedBy(func(e models.DiagnosisEvent) bool {
		return e.Type == "diagnosis.deleted" && e.DiagnosisID == "42"
	})).Return(nil)

	got, err := f.usecase.Delete(context.Background(), doctorSession, "42")

	require.NoError(t, err)
	assert.Equal(t, `{"deleted":true}`, string(got))
	f.assertExpectations(t)
}

func TestUsecase_AuditTrailAndMaskUrl(t *testing.T) {
	f := newFixture()
	entries := []models.AuditEntry{{ID: "a-1", Action: "submit"}}
	f.audit.On("FindByDiagnosisID", mock.Anything, "42").Return(entries, nil)
	f.archive.On("GetMaskUrl", mock.Anything, "masks/m.png").Return("http://minio/masks/m.png?sig", nil)

	trail, err := f.usecase.AuditTrail(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, entries, trail)

	maskURL, err := f.usecase.MaskUrl(context.Background(), "masks/m.png")
	require.NoError(t, err)
	assert.Equal(t, "http://minio/masks/m.png?sig", maskURL)
}

func TestPeekDiagnosisID(t *testing.T) {
	assert.Equal(t, "42", peekDiagnosisID(json.RawMessage(`{"diagnosis_id":42}`)))
	assert.Equal(t, "d-1", peekDiagnosisID(json.RawMessage(`{"id":"d-1"}`)))
	assert.Equal(t, "", peekDiagnosisID(json.RawMessage(`[1,2]`)))
	assert.Equal(t, "", peekDiagnosisID(nil))
}
