package aiapi

import (
	"bytes"
	"context"
	"dr-portal/internal/app/services/shared/apiclient"
	"dr-portal/internal/pkg/constvars"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *observer.ObservedLogs) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	core, logs := observer.New(zapcore.DebugLevel)
	transport := apiclient.NewMultipartTransport(apiclient.Config{BaseUrl: server.URL})
	return NewClient(transport, zap.New(core)), logs
}

func failingHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusInternalServerError)
	w.Write([]byte("model crashed"))
}

func testImage() apiclient.Image {
	return apiclient.Image{
		Filename:    "lesion.jpg",
		ContentType: "image/jpeg",
		Data:        bytes.NewReader([]byte{0xff, 0xd8, 0xff, 0xe0}),
	}
}

func TestClient_UploadImageForDiagnosis(t *testing.T) {
	client, logs := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/diagnosis/analyze", r.URL.Path)

		file, _, err := r.FormFile("image")
		if !assert.NoError(t, err) {
			return
		}
		defer file.Close()
		data, _ := io.ReadAll(file)
		assert.Equal(t, []byte{0xff, 0xd8, 0xff, 0xe0}, data)

		w.Write([]byte(`{"prediction":"melanoma","confidence":0.91}`))
	})

	got, err := client.UploadImageForDiagnosis(context.Background(), testImage())

	require.NoError(t, err)
	assert.Equal(t, `{"prediction":"melanoma","confidence":0.91}`, string(got))
	assert.Zero(t, logs.Len())
}

func TestClient_UploadImageForSegmentation_ReturnsBinaryUnchanged(t *testing.T) {
	mask := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0x00, 0x00, 0xff, 0x7f}

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/segment", r.URL.Path)
		w.Header().Set("Content-Type", "image/png")
		w.Write(mask)
	})

	got, err := client.UploadImageForSegmentation(context.Background(), testImage())

	require.NoError(t, err)
	assert.Equal(t, mask, got)
}

func TestClient_GetDiagnosisHistory_ForwardsParams(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/diagnosis/history", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "melanoma", r.URL.Query().Get("label"))
		w.Write([]byte(`[]`))
	})

	got, err := client.GetDiagnosisHistory(context.Background(), url.Values{"page": {"2"}, "label": {"melanoma"}})

	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))
}

func TestClient_GetDiagnosisReport(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/diagnosis/reports/r-9", r.URL.Path)
		w.Write([]byte(`{"id":"r-9"}`))
	})

	got, err := client.GetDiagnosisReport(context.Background(), "r-9")

	require.NoError(t, err)
	assert.Equal(t, `{"id":"r-9"}`, string(got))
}

func TestClient_FailuresLogOnce(t *testing.T) {
	tests := []struct {
		name  string
		call  func(c *Client) error
		label string
	}{
		{
			name: "UploadImageForDiagnosis",
			call: func(c *Client) error {
				_, err := c.UploadImageForDiagnosis(context.Background(), testImage())
				return err
			},
			label: constvars.LabelUploadImageForDiagnosis,
		},
		{
			name: "UploadImageForSegmentation",
			call: func(c *Client) error {
				_, err := c.UploadImageForSegmentation(context.Background(), testImage())
				return err
			},
			label: constvars.LabelUploadImageForSegment,
		},
		{
			name: "GetDiagnosisHistory",
			call: func(c *Client) error {
				_, err := c.GetDiagnosisHistory(context.Background(), nil)
				return err
			},
			label: constvars.LabelGetDiagnosisHistory,
		},
		{
			name: "GetDiagnosisReport",
			call: func(c *Client) error {
				_, err := c.GetDiagnosisReport(context.Background(), "r-1")
				return err
			},
			label: constvars.LabelGetDiagnosisReport,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, logs := newTestClient(t, failingHandler)

			err := tt.call(client)

			var apiErr *apiclient.Error
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
			assert.Equal(t, "model crashed", string(apiErr.Body))
			require.Equal(t, 1, logs.Len())
			assert.Equal(t, tt.label, logs.All()[0].Message)
		})
	}
}
