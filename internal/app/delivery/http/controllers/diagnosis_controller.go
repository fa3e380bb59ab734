package controllers

import (
	"dr-portal/internal/app/config"
	"dr-portal/internal/app/contracts"
	"dr-portal/internal/pkg/constvars"
	"dr-portal/internal/pkg/exceptions"
	"dr-portal/internal/pkg/utils"
	"errors"
	"io"
	"net/http"
	"path"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const (
	HeaderMaskObject       = "X-Mask-Object"
	defaultUploadMemoryCap = 10 << 20
)

var errInvalidDiagnosisPayload = errors.New("diagnosis payload is not valid JSON")

// DiagnosisController runs the doctor's actions on images and diagnoses.
type DiagnosisController struct {
	Log            *zap.Logger
	Dashboard      contracts.DashboardUsecase
	Sessions       contracts.SessionReader
	InternalConfig *config.InternalConfig
}

func NewDiagnosisController(logger *zap.Logger, dashboard contracts.DashboardUsecase, sessions contracts.SessionReader, internalConfig *config.InternalConfig) *DiagnosisController {
	return &DiagnosisController{
		Log:            logger,
		Dashboard:      dashboard,
		Sessions:       sessions,
		InternalConfig: internalConfig,
	}
}

func (ctrl *DiagnosisController) Analyze(w http.ResponseWriter, r *http.Request) {
	current, err := ctrl.Sessions.Current(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	image, closer, err := utils.ParseImageUpload(r, ctrl.uploadMemoryCap())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	defer closer.Close()

	result, err := ctrl.Dashboard.AnalyzeImage(r.Context(), current, image)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AnalyzeImageSuccessMessage, result)
}

// Segment answers with the mask bytes exactly as the AI service produced
// them. The archived object name, when there is one, travels in a header.
func (ctrl *DiagnosisController) Segment(w http.ResponseWriter, r *http.Request) {
	current, err := ctrl.Sessions.Current(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	image, closer, err := utils.ParseImageUpload(r, ctrl.uploadMemoryCap())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	defer closer.Close()

	segmentation, err := ctrl.Dashboard.SegmentImage(r.Context(), current, image)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if segmentation.MaskObject != "" {
		w.Header().Set(HeaderMaskObject, segmentation.MaskObject)
	}
	utils.BuildBinaryResponse(w, constvars.StatusOK, segmentation.ContentType, segmentation.Mask)
}

func (ctrl *DiagnosisController) Submit(w http.ResponseWriter, r *http.Request) {
	current, err := ctrl.Sessions.Current(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if !json.Valid(body) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(errInvalidDiagnosisPayload))
		return
	}

	result, err := ctrl.Dashboard.Submit(r.Context(), current, body)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SubmitDiagnosisSuccessMessage, result)
}

func (ctrl *DiagnosisController) Detail(w http.ResponseWriter, r *http.Request) {
	current, err := ctrl.Sessions.Current(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	result, err := ctrl.Dashboard.ReportDetail(r.Context(), current, chi.URLParam(r, constvars.URLParamID))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDiagnosisSuccessMessage, result)
}

func (ctrl *DiagnosisController) Confirm(w http.ResponseWriter, r *http.Request) {
	current, err := ctrl.Sessions.Current(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	result, err := ctrl.Dashboard.Confirm(r.Context(), current, chi.URLParam(r, constvars.URLParamID))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ConfirmDiagnosisSuccessMessage, result)
}

func (ctrl *DiagnosisController) Delete(w http.ResponseWriter, r *http.Request) {
	current, err := ctrl.Sessions.Current(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	result, err := ctrl.Dashboard.Delete(r.Context(), current, chi.URLParam(r, constvars.URLParamID))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteDiagnosisSuccessMessage, result)
}

func (ctrl *DiagnosisController) AuditTrail(w http.ResponseWriter, r *http.Request) {
	entries, err := ctrl.Dashboard.AuditTrail(r.Context(), chi.URLParam(r, constvars.URLParamID))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDiagnosisSuccessMessage, entries)
}

func (ctrl *DiagnosisController) AIHistory(w http.ResponseWriter, r *http.Request) {
	current, err := ctrl.Sessions.Current(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	result, err := ctrl.Dashboard.ReportsList(r.Context(), current, r.URL.Query())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDiagnosisHistoryMessage, result)
}

func (ctrl *DiagnosisController) AIReport(w http.ResponseWriter, r *http.Request) {
	current, err := ctrl.Sessions.Current(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	result, err := ctrl.Dashboard.AIReport(r.Context(), current, chi.URLParam(r, constvars.URLParamID))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDiagnosisReportMessage, result)
}

// Mask redirects to a short lived link for an archived mask.
func (ctrl *DiagnosisController) Mask(w http.ResponseWriter, r *http.Request) {
	name := path.Base(chi.URLParam(r, constvars.URLParamName))
	maskUrl, err := ctrl.Dashboard.MaskUrl(r.Context(), constvars.MaskObjectPrefix+name)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildRedirectResponse(w, r, maskUrl)
}

func (ctrl *DiagnosisController) uploadMemoryCap() int64 {
	if limit := ctrl.InternalConfig.App.RequestBodyLimitInMegabyte; limit > 0 {
		return int64(limit) << 20
	}
	return defaultUploadMemoryCap
}
