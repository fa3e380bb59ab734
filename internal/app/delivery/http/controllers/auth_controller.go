package controllers

import (
	"dr-portal/internal/app/config"
	"dr-portal/internal/app/contracts"
	"dr-portal/internal/app/models"
	"dr-portal/internal/app/services/navigation"
	"dr-portal/internal/app/services/session"
	"dr-portal/internal/pkg/constvars"
	"dr-portal/internal/pkg/dto/requests"
	"dr-portal/internal/pkg/dto/responses"
	"dr-portal/internal/pkg/exceptions"
	"dr-portal/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthController struct {
	Log            *zap.Logger
	Sessions       contracts.SessionService
	InternalConfig *config.InternalConfig
}

func NewAuthController(logger *zap.Logger, sessions contracts.SessionService, internalConfig *config.InternalConfig) *AuthController {
	return &AuthController{
		Log:            logger,
		Sessions:       sessions,
		InternalConfig: internalConfig,
	}
}

// Login opens a session for a new visitor id and hands the id back in a
// signed cookie. The reply tells the client which dashboard to open.
func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("AuthController.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	// Bind body to request
	request := new(requests.Login)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeLoginRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	sessionID := uuid.New().String()
	ctx := session.WithVisitor(r.Context(), sessionID)

	current, err := ctrl.Sessions.Login(ctx, request.Username, request.Password, models.Role(request.Role))
	if err != nil {
		ctrl.Log.Error("AuthController.Login error from session service",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	expiryInHours := ctrl.InternalConfig.Session.ExpiredTimeInHours
	token, err := utils.GenerateSessionJWT(sessionID, ctrl.InternalConfig.JWT.Secret, expiryInHours)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     constvars.SessionCookieName,
		Value:    token,
		Path:     constvars.RoutePathRoot,
		MaxAge:   int((time.Duration(expiryInHours) * time.Hour).Seconds()),
		HttpOnly: true,
		Secure:   ctrl.InternalConfig.Session.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	ctrl.Log.Info("AuthController.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, string(current.Role)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginSuccessMessage, responses.Login{
		Role:       string(current.Role),
		UserID:     current.Profile.UserID,
		DoctorID:   current.Profile.DoctorID,
		PatientID:  current.Profile.PatientID,
		RedirectTo: navigation.DashboardFor(current.Role),
	})
}

func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("AuthController.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	err := ctrl.Sessions.Logout(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     constvars.SessionCookieName,
		Value:    "",
		Path:     constvars.RoutePathRoot,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   ctrl.InternalConfig.Session.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LogoutSuccessMessage, nil)
}
