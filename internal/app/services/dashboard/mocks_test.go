package dashboard

import (
	"context"
	"dr-portal/internal/app/models"
	"dr-portal/internal/app/services/shared/apiclient"
	"dr-portal/internal/pkg/dto/requests"
	"encoding/json"
	"net/url"

	"github.com/stretchr/testify/mock"
)

func raw(args mock.Arguments) json.RawMessage {
	if v := args.Get(0); v != nil {
		return v.(json.RawMessage)
	}
	return nil
}

type MockDBAPIClient struct {
	mock.Mock
}

func (m *MockDBAPIClient) Login(ctx context.Context, credentials requests.Login) (json.RawMessage, error) {
	args := m.Called(ctx, credentials)
	return raw(args), args.Error(1)
}

func (m *MockDBAPIClient) GetDoctorStats(ctx context.Context, doctorID string) (json.RawMessage, error) {
	args := m.Called(ctx, doctorID)
	return raw(args), args.Error(1)
}

func (m *MockDBAPIClient) GetDoctorPendingCases(ctx context.Context, doctorID string) (json.RawMessage, error) {
	args := m.Called(ctx, doctorID)
	return raw(args), args.Error(1)
}

func (m *MockDBAPIClient) GetDoctorRecentDiagnoses(ctx context.Context, doctorID string) (json.RawMessage, error) {
	args := m.Called(ctx, doctorID)
	return raw(args), args.Error(1)
}

func (m *MockDBAPIClient) GetDoctorDiagnosisHistory(ctx context.Context, doctorID string, confirmed *bool) (json.RawMessage, error) {
	args := m.Called(ctx, doctorID, confirmed)
	return raw(args), args.Error(1)
}

func (m *MockDBAPIClient) GetPatientReports(ctx context.Context, patientID string) (json.RawMessage, error) {
	args := m.Called(ctx, patientID)
	return raw(args), args.Error(1)
}

func (m *MockDBAPIClient) SubmitDiagnosis(ctx context.Context, diagnosis json.RawMessage) (json.RawMessage, error) {
	args := m.Called(ctx, diagnosis)
	return raw(args), args.Error(1)
}

func (m *MockDBAPIClient) GetDiagnosisDetail(ctx context.Context, diagnosisID string) (json.RawMessage, error) {
	args := m.Called(ctx, diagnosisID)
	return raw(args), args.Error(1)
}

func (m *MockDBAPIClient) ConfirmDiagnosis(ctx context.Context, diagnosisID string) (json.RawMessage, error) {
	args := m.Called(ctx, diagnosisID)
	return raw(args), args.Error(1)
}

func (m *MockDBAPIClient) DeleteDiagnosis(ctx context.Context, diagnosisID string) (json.RawMessage, error) {
	args := m.Called(ctx, diagnosisID)
	return raw(args), args.Error(1)
}

func (m *MockDBAPIClient) ListUsers(ctx context.Context) (json.RawMessage, error) {
	args := m.Called(ctx)
	return raw(args), args.Error(1)
}

func (m *MockDBAPIClient) CreateUser(ctx context.Context, user requests.CreateUser) (json.RawMessage, error) {
	args := m.Called(ctx, user)
	return raw(args), args.Error(1)
}

type MockAIAPIClient struct {
	mock.Mock
}

func (m *MockAIAPIClient) UploadImageForDiagnosis(ctx context.Context, image apiclient.Image) (json.RawMessage, error) {
	args := m.Called(ctx, image)
	return raw(args), args.Error(1)
}

func (m *MockAIAPIClient) UploadImageForSegmentation(ctx context.Context, image apiclient.Image) ([]byte, error) {
	args := m.Called(ctx, image)
	if v := args.Get(0); v != nil {
		return v.([]byte), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAIAPIClient) GetDiagnosisHistory(ctx context.Context, params url.Values) (json.RawMessage, error) {
	args := m.Called(ctx, params)
	return raw(args), args.Error(1)
}

func (m *MockAIAPIClient) GetDiagnosisReport(ctx context.Context, reportID string) (json.RawMessage, error) {
	args := m.Called(ctx, reportID)
	return raw(args), args.Error(1)
}

type MockMaskArchive struct {
	mock.Mock
}

func (m *MockMaskArchive) ArchiveMask(ctx context.Context, mask []byte, contentType string) (string, error) {
	args := m.Called(ctx, mask, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockMaskArchive) GetMaskUrl(ctx context.Context, objectName string) (string, error) {
	args := m.Called(ctx, objectName)
	return args.String(0), args.Error(1)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, event models.DiagnosisEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MockAuditRepository struct {
	mock.Mock
}

func (m *MockAuditRepository) Insert(ctx context.Context, entry models.AuditEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAuditRepository) FindByDiagnosisID(ctx context.Context, diagnosisID string) ([]models.AuditEntry, error) {
	args := m.Called(ctx, diagnosisID)
	if v := args.Get(0); v != nil {
		return v.([]models.AuditEntry), args.Error(1)
	}
	return nil, args.Error(1)
}
