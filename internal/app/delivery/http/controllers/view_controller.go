package controllers

import (
	"dr-portal/internal/app/contracts"
	"dr-portal/internal/app/models"
	"dr-portal/internal/app/services/navigation"
	"dr-portal/internal/pkg/constvars"
	"dr-portal/internal/pkg/dto/responses"
	"dr-portal/internal/pkg/exceptions"
	"dr-portal/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

// ViewController serves the pages of the route table. It runs after the
// navigation guard, so the route match is already in the context.
type ViewController struct {
	Log       *zap.Logger
	Dashboard contracts.DashboardUsecase
	Sessions  contracts.SessionReader
}

func NewViewController(logger *zap.Logger, dashboard contracts.DashboardUsecase, sessions contracts.SessionReader) *ViewController {
	return &ViewController{
		Log:       logger,
		Dashboard: dashboard,
		Sessions:  sessions,
	}
}

func (ctrl *ViewController) Show(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())

	match, ok := navigation.MatchFromContext(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrRouteNotFound(r.URL.Path))
		return
	}
	ctrl.Log.Debug("ViewController.Show called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingToPathKey, match.Path),
	)

	current, err := ctrl.Sessions.Current(r.Context())
	if err != nil {
		current = models.Session{}
	}

	data, err := ctrl.load(r, match, current)
	if err != nil {
		ctrl.Log.Error("ViewController.Show error loading view",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingToPathKey, match.Path),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetViewSuccessMessage, responses.View{
		Name:   match.Route.Name,
		Path:   match.Path,
		Params: match.Params,
		Data:   data,
	})
}

func (ctrl *ViewController) load(r *http.Request, match *navigation.Match, current models.Session) (interface{}, error) {
	ctx := r.Context()
	switch match.Route.Name {
	case constvars.RouteNameDoctorDashboard:
		return ctrl.Dashboard.DoctorHome(ctx, current)
	case constvars.RouteNameDiagnosisHistory:
		confirmed, err := utils.ParseConfirmedQuery(r)
		if err != nil {
			return nil, err
		}
		return ctrl.Dashboard.DoctorHistory(ctx, current, confirmed)
	case constvars.RouteNamePendingReports:
		return ctrl.Dashboard.PendingReports(ctx, current)
	case constvars.RouteNameReportsList:
		return ctrl.Dashboard.ReportsList(ctx, current, r.URL.Query())
	case constvars.RouteNameReportDetail:
		return ctrl.Dashboard.ReportDetail(ctx, current, match.Params[constvars.URLParamID])
	case constvars.RouteNameSettings:
		return ctrl.Dashboard.Settings(ctx, current), nil
	case constvars.RouteNamePatientDashboard:
		return ctrl.Dashboard.PatientReports(ctx, current)
	}
	// Login and NewDiagnosis carry no data of their own.
	return nil, nil
}
