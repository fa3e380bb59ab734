package dbapi

import (
	"context"
	"dr-portal/internal/app/contracts"
	"dr-portal/internal/app/services/shared/apiclient"
	"dr-portal/internal/pkg/constvars"
	"dr-portal/internal/pkg/dto/requests"
	"net/url"
	"strconv"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var _ contracts.DBAPIClient = (*Client)(nil)

// Client talks JSON to the DB API. Responses are returned exactly as received
// and a failed call leaves a single error entry, written by apiclient.Call.
type Client struct {
	Transport *apiclient.Transport
	Log       *zap.Logger
}

func NewClient(transport *apiclient.Transport, logger *zap.Logger) *Client {
	return &Client{
		Transport: transport,
		Log:       logger,
	}
}

func (c *Client) Login(ctx context.Context, credentials requests.Login) (json.RawMessage, error) {
	return apiclient.Call(ctx, c.Log, constvars.LabelLogin, func(ctx context.Context) (json.RawMessage, error) {
		return c.Transport.SendJSON(ctx, constvars.MethodPost, constvars.DBAPIPathLogin, credentials)
	})
}

func (c *Client) GetDoctorStats(ctx context.Context, doctorID string) (json.RawMessage, error) {
	return apiclient.Call(ctx, c.Log, constvars.LabelGetDoctorStats, func(ctx context.Context) (json.RawMessage, error) {
		return c.Transport.GetJSON(ctx, constvars.DBAPIPathDoctorStats, doctorQuery(doctorID))
	})
}

func (c *Client) GetDoctorPendingCases(ctx context.Context, doctorID string) (json.RawMessage, error) {
	return apiclient.Call(ctx, c.Log, constvars.LabelGetDoctorPendingCases, func(ctx context.Context) (json.RawMessage, error) {
		return c.Transport.GetJSON(ctx, constvars.DBAPIPathDoctorPending, doctorQuery(doctorID))
	})
}

func (c *Client) GetDoctorRecentDiagnoses(ctx context.Context, doctorID string) (json.RawMessage, error) {
	return apiclient.Call(ctx, c.Log, constvars.LabelGetDoctorRecentDiagnoses, func(ctx context.Context) (json.RawMessage, error) {
		return c.Transport.GetJSON(ctx, constvars.DBAPIPathDoctorRecent, doctorQuery(doctorID))
	})
}

// GetDoctorDiagnosisHistory sends confirmed only when it is not nil.
func (c *Client) GetDoctorDiagnosisHistory(ctx context.Context, doctorID string, confirmed *bool) (json.RawMessage, error) {
	query := doctorQuery(doctorID)
	if confirmed != nil {
		query.Set(constvars.URLQueryConfirmed, strconv.FormatBool(*confirmed))
	}
	return apiclient.Call(ctx, c.Log, constvars.LabelGetDoctorDiagnosisHistory, func(ctx context.Context) (json.RawMessage, error) {
		return c.Transport.GetJSON(ctx, constvars.DBAPIPathDoctorHistory, query)
	})
}

func (c *Client) GetPatientReports(ctx context.Context, patientID string) (json.RawMessage, error) {
	query := url.Values{constvars.URLQueryPatientID: {patientID}}
	return apiclient.Call(ctx, c.Log, constvars.LabelGetPatientReports, func(ctx context.Context) (json.RawMessage, error) {
		return c.Transport.GetJSON(ctx, constvars.DBAPIPathPatientReports, query)
	})
}

func (c *Client) SubmitDiagnosis(ctx context.Context, diagnosis json.RawMessage) (json.RawMessage, error) {
	return apiclient.Call(ctx, c.Log, constvars.LabelSubmitDiagnosis, func(ctx context.Context) (json.RawMessage, error) {
		return c.Transport.SendJSON(ctx, constvars.MethodPost, constvars.DBAPIPathSubmitDiagnosis, diagnosis)
	})
}

func (c *Client) GetDiagnosisDetail(ctx context.Context, diagnosisID string) (json.RawMessage, error) {
	return apiclient.Call(ctx, c.Log, constvars.LabelGetDiagnosisDetail, func(ctx context.Context) (json.RawMessage, error) {
		return c.Transport.GetJSON(ctx, apiclient.PathWithID(constvars.DBAPIPathDiagnosis, diagnosisID), nil)
	})
}

func (c *Client) ConfirmDiagnosis(ctx context.Context, diagnosisID string) (json.RawMessage, error) {
	return apiclient.Call(ctx, c.Log, constvars.LabelConfirmDiagnosis, func(ctx context.Context) (json.RawMessage, error) {
		return c.Transport.SendJSON(ctx, constvars.MethodPut, apiclient.PathWithID(constvars.DBAPIPathDiagnosis, diagnosisID, "confirm"), nil)
	})
}

func (c *Client) DeleteDiagnosis(ctx context.Context, diagnosisID string) (json.RawMessage, error) {
	return apiclient.Call(ctx, c.Log, constvars.LabelDeleteDiagnosis, func(ctx context.Context) (json.RawMessage, error) {
		return c.Transport.SendJSON(ctx, constvars.MethodDelete, apiclient.PathWithID(constvars.DBAPIPathDiagnosis, diagnosisID), nil)
	})
}

func (c *Client) ListUsers(ctx context.Context) (json.RawMessage, error) {
	return apiclient.Call(ctx, c.Log, constvars.LabelListUsers, func(ctx context.Context) (json.RawMessage, error) {
		return c.Transport.GetJSON(ctx, constvars.DBAPIPathUsers, nil)
	})
}

func (c *Client) CreateUser(ctx context.Context, user requests.CreateUser) (json.RawMessage, error) {
	return apiclient.Call(ctx, c.Log, constvars.LabelCreateUser, func(ctx context.Context) (json.RawMessage, error) {
		return c.Transport.SendJSON(ctx, constvars.MethodPost, constvars.DBAPIPathUsers, user)
	})
}

func doctorQuery(doctorID string) url.Values {
	return url.Values{constvars.URLQueryDoctorID: {doctorID}}
}
