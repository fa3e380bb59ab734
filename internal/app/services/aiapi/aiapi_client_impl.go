package aiapi

import (
	"context"
	"dr-portal/internal/app/contracts"
	"dr-portal/internal/app/services/shared/apiclient"
	"dr-portal/internal/pkg/constvars"
	"net/url"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var _ contracts.AIAPIClient = (*Client)(nil)

// Client sends images to the AI service as multipart forms. A failed call
// leaves a single error entry, written by apiclient.Call.
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

func (c *Client) UploadImageForDiagnosis(ctx context.Context, image apiclient.Image) (json.RawMessage, error) {
	return apiclient.Call(ctx, c.Log, constvars.LabelUploadImageForDiagnosis, func(ctx context.Context) (json.RawMessage, error) {
		body, err := c.Transport.PostImage(ctx, constvars.AIAPIPathAnalyze, image)
		if err != nil {
			return nil, err
		}
		return json.RawMessage(body), nil
	})
}

// UploadImageForSegmentation returns the mask bytes untouched.
func (c *Client) UploadImageForSegmentation(ctx context.Context, image apiclient.Image) ([]byte, error) {
	return apiclient.Call(ctx, c.Log, constvars.LabelUploadImageForSegment, func(ctx context.Context) ([]byte, error) {
		return c.Transport.PostImage(ctx, constvars.AIAPIPathSegment, image)
	})
}

// GetDiagnosisHistory forwards params as the query string.
func (c *Client) GetDiagnosisHistory(ctx context.Context, params url.Values) (json.RawMessage, error) {
	return apiclient.Call(ctx, c.Log, constvars.LabelGetDiagnosisHistory, func(ctx context.Context) (json.RawMessage, error) {
		return c.Transport.GetJSON(ctx, constvars.AIAPIPathDiagnosisHistory, params)
	})
}

func (c *Client) GetDiagnosisReport(ctx context.Context, reportID string) (json.RawMessage, error) {
	return apiclient.Call(ctx, c.Log, constvars.LabelGetDiagnosisReport, func(ctx context.Context) (json.RawMessage, error) {
		return c.Transport.GetJSON(ctx, apiclient.PathWithID(constvars.AIAPIPathDiagnosisReports, reportID), nil)
	})
}
