package utils

import (
	"context"
	"dr-portal/internal/app/services/session"
	"dr-portal/internal/app/services/shared/apiclient"
	"dr-portal/internal/pkg/constvars"
	"dr-portal/internal/pkg/exceptions"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestToCustomError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "upstream server error",
			err:        &apiclient.Error{Method: "GET", URL: "http://db/doctor/stats", StatusCode: 500, Err: apiclient.ErrUnexpectedStatus},
			wantStatus: constvars.StatusBadGateway,
		},
		{
			name:       "upstream rejects",
			err:        &apiclient.Error{Method: "POST", URL: "http://db/auth/login", StatusCode: 401, Err: apiclient.ErrUnexpectedStatus},
			wantStatus: constvars.StatusUnauthorized,
		},
		{
			name:       "upstream timeout",
			err:        &apiclient.Error{Method: "GET", URL: "http://ai/segment", Timeout: true, Err: context.DeadlineExceeded},
			wantStatus: constvars.StatusGatewayTimeout,
		},
		{
			name:       "network failure",
			err:        &apiclient.Error{Method: "GET", URL: "http://db/doctor/stats", Err: errors.New("connection refused")},
			wantStatus: constvars.StatusBadGateway,
		},
		{
			name:       "wrapped upstream error",
			err:        fmt.Errorf("loading view: %w", &apiclient.Error{StatusCode: 404, Err: apiclient.ErrUnexpectedStatus}),
			wantStatus: constvars.StatusNotFound,
		},
		{
			name:       "custom error kept",
			err:        exceptions.ErrRouteNotFound("/nowhere"),
			wantStatus: constvars.StatusNotFound,
		},
		{
			name:       "inconsistent session",
			err:        session.ErrInconsistentSession,
			wantStatus: constvars.StatusUnauthorized,
		},
		{
			name:       "deadline",
			err:        context.DeadlineExceeded,
			wantStatus: constvars.StatusGatewayTimeout,
		},
		{
			name:       "anything else",
			err:        errors.New("boom"),
			wantStatus: constvars.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			customErr := ToCustomError(tt.err)
			assert.Equal(t, tt.wantStatus, customErr.StatusCode)
		})
	}
}

func TestBuildErrorResponse_HidesDevMessageInProduction(t *testing.T) {
	t.Cleanup(func() { ConfigureErrorResponses(constvars.AppEnvDevelopment) })

	for _, env := range []string{constvars.AppEnvDevelopment, constvars.AppEnvProduction} {
		ConfigureErrorResponses(env)
		rr := httptest.NewRecorder()

		BuildErrorResponse(zap.NewNop(), rr, errors.New("boom"))

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, false, body["success"])
		_, hasDev := body["dev_message"]
		assert.Equal(t, env != constvars.AppEnvProduction, hasDev, env)
	}
}
