package controllers

import (
	"dr-portal/internal/app/config"
	"dr-portal/internal/app/models"
	"dr-portal/internal/app/services/shared/apiclient"
	"dr-portal/internal/pkg/constvars"
	"dr-portal/internal/pkg/utils"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuthController(sessions *MockSessionService) *AuthController {
	return NewAuthController(zap.NewNop(), sessions, &config.InternalConfig{
		Session: config.AppSession{ExpiredTimeInHours: 2},
		JWT:     config.AppJWT{Secret: "auth-test-secret"},
	})
}

func sessionCookie(rr *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range rr.Result().Cookies() {
		if cookie.Name == constvars.SessionCookieName {
			return cookie
		}
	}
	return nil
}

func TestAuthController_Login(t *testing.T) {
	t.Run("issues the session cookie", func(t *testing.T) {
		sessions := new(MockSessionService)
		sessions.On("Login", mock.Anything, "drwho", "pw", models.RoleDoctor).Return(doctorSession, nil)

		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"username":" drwho","password":"pw","role":"Doctor"}`))
		newAuthController(sessions).Login(rr, req)

		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
		assert.Contains(t, rr.Body.String(), `"redirect_to":"/dashboard/doctor"`)

		cookie := sessionCookie(rr)
		require.NotNil(t, cookie)
		assert.True(t, cookie.HttpOnly)
		assert.Equal(t, 2*60*60, cookie.MaxAge)

		sessionID, err := utils.ParseSessionJWT(cookie.Value, "auth-test-secret")
		require.NoError(t, err)
		assert.NotEmpty(t, sessionID)
	})

	t.Run("rejects a missing password", func(t *testing.T) {
		sessions := new(MockSessionService)

		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"username":"drwho","role":"doctor"}`))
		newAuthController(sessions).Login(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "password is required")
		sessions.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("keeps the upstream rejection status", func(t *testing.T) {
		sessions := new(MockSessionService)
		sessions.On("Login", mock.Anything, "drwho", "bad", models.RolePatient).
			Return(models.Session{}, &apiclient.Error{Method: "POST", URL: "http://db/auth/login", StatusCode: 401, Err: apiclient.ErrUnexpectedStatus})

		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"username":"drwho","password":"bad","role":"patient"}`))
		newAuthController(sessions).Login(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Nil(t, sessionCookie(rr))
	})
}

func TestAuthController_Logout(t *testing.T) {
	sessions := new(MockSessionService)
	sessions.On("Logout", mock.Anything).Return(nil)

	rr := httptest.NewRecorder()
	newAuthController(sessions).Logout(rr, httptest.NewRequest(http.MethodPost, "/auth/logout", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	cookie := sessionCookie(rr)
	require.NotNil(t, cookie)
	assert.Equal(t, -1, cookie.MaxAge)
	sessions.AssertExpectations(t)
}
