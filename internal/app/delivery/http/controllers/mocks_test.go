package controllers

import (
	"context"
	"dr-portal/internal/app/models"
	"dr-portal/internal/app/services/shared/apiclient"
	"dr-portal/internal/pkg/dto/requests"
	"dr-portal/internal/pkg/dto/responses"
	"encoding/json"
	"net/url"

	"github.com/stretchr/testify/mock"
)

type MockDashboardUsecase struct {
	mock.Mock
}

func rawOrNil(v interface{}) json.RawMessage {
	if v == nil {
		return nil
	}
	return v.(json.RawMessage)
}

func (m *MockDashboardUsecase) DoctorHome(ctx context.Context, session models.Session) (*responses.DoctorHome, error) {
	args := m.Called(ctx, session)
	home, _ := args.Get(0).(*responses.DoctorHome)
	return home, args.Error(1)
}

func (m *MockDashboardUsecase) DoctorHistory(ctx context.Context, session models.Session, confirmed *bool) (json.RawMessage, error) {
	args := m.Called(ctx, session, confirmed)
	return rawOrNil(args.Get(0)), args.Error(1)
}

func (m *MockDashboardUsecase) PendingReports(ctx context.Context, session models.Session) (json.RawMessage, error) {
	args := m.Called(ctx, session)
	return rawOrNil(args.Get(0)), args.Error(1)
}

func (m *MockDashboardUsecase) ReportsList(ctx context.Context, session models.Session, params url.Values) (json.RawMessage, error) {
	args := m.Called(ctx, session, params)
	return rawOrNil(args.Get(0)), args.Error(1)
}

func (m *MockDashboardUsecase) ReportDetail(ctx context.Context, session models.Session, diagnosisID string) (json.RawMessage, error) {
	args := m.Called(ctx, session, diagnosisID)
	return rawOrNil(args.Get(0)), args.Error(1)
}

func (m *MockDashboardUsecase) PatientReports(ctx context.Context, session models.Session) (json.RawMessage, error) {
	args := m.Called(ctx, session)
	return rawOrNil(args.Get(0)), args.Error(1)
}

func (m *MockDashboardUsecase) Settings(ctx context.Context, session models.Session) responses.Settings {
	args := m.Called(ctx, session)
	return args.Get(0).(responses.Settings)
}

func (m *MockDashboardUsecase) AnalyzeImage(ctx context.Context, session models.Session, image apiclient.Image) (json.RawMessage, error) {
	args := m.Called(ctx, session, image)
	return rawOrNil(args.Get(0)), args.Error(1)
}

func (m *MockDashboardUsecase) SegmentImage(ctx context.Context, session models.Session, image apiclient.Image) (*responses.Segmentation, error) {
	args := m.Called(ctx, session, image)
	segmentation, _ := args.Get(0).(*responses.Segmentation)
	return segmentation, args.Error(1)
}

func (m *MockDashboardUsecase) Submit(ctx context.Context, session models.Session, diagnosis json.RawMessage) (json.RawMessage, error) {
	args := m.Called(ctx, session, diagnosis)
	return rawOrNil(args.Get(0)), args.Error(1)
}

func (m *MockDashboardUsecase) Confirm(ctx context.Context, session models.Session, diagnosisID string) (json.RawMessage, error) {
	args := m.Called(ctx, session, diagnosisID)
	return rawOrNil(args.Get(0)), args.Error(1)
}

func (m *MockDashboardUsecase) Delete(ctx context.Context, session models.Session, diagnosisID string) (json.RawMessage, error) {
	args := m.Called(ctx, session, diagnosisID)
	return rawOrNil(args.Get(0)), args.Error(1)
}

func (m *MockDashboardUsecase) AIReport(ctx context.Context, session models.Session, reportID string) (json.RawMessage, error) {
	args := m.Called(ctx, session, reportID)
	return rawOrNil(args.Get(0)), args.Error(1)
}

func (m *MockDashboardUsecase) AuditTrail(ctx context.Context, diagnosisID string) ([]models.AuditEntry, error) {
	args := m.Called(ctx, diagnosisID)
	entries, _ := args.Get(0).([]models.AuditEntry)
	return entries, args.Error(1)
}

func (m *MockDashboardUsecase) MaskUrl(ctx context.Context, objectName string) (string, error) {
	args := m.Called(ctx, objectName)
	return args.String(0), args.Error(1)
}

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Current(ctx context.Context) (models.Session, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.Session), args.Error(1)
}

func (m *MockSessionService) Login(ctx context.Context, username, password string, role models.Role) (models.Session, error) {
	args := m.Called(ctx, username, password, role)
	return args.Get(0).(models.Session), args.Error(1)
}

func (m *MockSessionService) Logout(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockDBAPIClient struct {
	mock.Mock
}

func (m *MockDBAPIClient) call(method string, args ...interface{}) (json.RawMessage, error) {
	ret := m.MethodCalled(method, args...)
	return rawOrNil(ret.Get(0)), ret.Error(1)
}

func (m *MockDBAPIClient) Login(ctx context.Context, request requests.Login) (json.RawMessage, error) {
	return m.call("Login", ctx, request)
}

func (m *MockDBAPIClient) GetDoctorStats(ctx context.Context, doctorID string) (json.RawMessage, error) {
	return m.call("GetDoctorStats", ctx, doctorID)
}

func (m *MockDBAPIClient) GetDoctorPendingCases(ctx context.Context, doctorID string) (json.RawMessage, error) {
	return m.call("GetDoctorPendingCases", ctx, doctorID)
}

func (m *MockDBAPIClient) GetDoctorRecentDiagnoses(ctx context.Context, doctorID string) (json.RawMessage, error) {
	return m.call("GetDoctorRecentDiagnoses", ctx, doctorID)
}

func (m *MockDBAPIClient) GetDoctorDiagnosisHistory(ctx context.Context, doctorID string, confirmed *bool) (json.RawMessage, error) {
	return m.call("GetDoctorDiagnosisHistory", ctx, doctorID, confirmed)
}

func (m *MockDBAPIClient) GetPatientReports(ctx context.Context, patientID string) (json.RawMessage, error) {
	return m.call("GetPatientReports", ctx, patientID)
}

func (m *MockDBAPIClient) SubmitDiagnosis(ctx context.Context, diagnosis json.RawMessage) (json.RawMessage, error) {
	return m.call("SubmitDiagnosis", ctx, diagnosis)
}

func (m *MockDBAPIClient) GetDiagnosisDetail(ctx context.Context, diagnosisID string) (json.RawMessage, error) {
	return m.call("GetDiagnosisDetail", ctx, diagnosisID)
}

func (m *MockDBAPIClient) ConfirmDiagnosis(ctx context.Context, diagnosisID string) (json.RawMessage, error) {
	return m.call("ConfirmDiagnosis", ctx, diagnosisID)
}

func (m *MockDBAPIClient) DeleteDiagnosis(ctx context.Context, diagnosisID string) (json.RawMessage, error) {
	return m.call("DeleteDiagnosis", ctx, diagnosisID)
}

func (m *MockDBAPIClient) ListUsers(ctx context.Context) (json.RawMessage, error) {
	return m.call("ListUsers", ctx)
}

func (m *MockDBAPIClient) CreateUser(ctx context.Context, user requests.CreateUser) (json.RawMessage, error) {
	return m.call("CreateUser", ctx, user)
}
