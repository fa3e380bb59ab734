package utils

import (
	"dr-portal/internal/pkg/constvars"
	"dr-portal/internal/pkg/dto/responses"
	"dr-portal/internal/pkg/exceptions"
	"errors"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var exposeDevMessage = true

// ConfigureErrorResponses hides dev messages and locations in production.
func ConfigureErrorResponses(appEnv string) {
	exposeDevMessage = appEnv != constvars.AppEnvProduction
}

func BuildSuccessResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	response := responses.ResponseDTO{
		Success: true,
		Message: message,
		Data:    data,
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

// BuildBinaryResponse writes body untouched with its content type.
func BuildBinaryResponse(w http.ResponseWriter, code int, contentType string, body []byte) {
	if contentType == "" {
		contentType = constvars.MIMEOctetStream
	}
	w.Header().Set(constvars.HeaderContentType, contentType)
	w.WriteHeader(code)
	w.Write(body)
}

func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	customErr := ToCustomError(err)

	location := map[string]interface{}{}
	if customErr.Location != nil {
		location = map[string]interface{}{
			"file":          customErr.Location.File,
			"line":          customErr.Location.Line,
			"function_name": customErr.Location.FunctionName,
		}
	}
	log.Error(customErr.DevMessage,
		zap.Int(constvars.LoggingStatusCodeKey, customErr.StatusCode),
		zap.Any("location", location),
	)

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(customErr.StatusCode)
	response := exceptions.CustomError{
		StatusCode:    customErr.StatusCode,
		Success:       false,
		ClientMessage: customErr.ClientMessage,
	}

	if exposeDevMessage {
		response.DevMessage = customErr.DevMessage
		response.Location = customErr.Location
	}
	json.NewEncoder(w).Encode(response)
}

// BuildRedirectResponse answers a guarded navigation with 302 and Location.
func BuildRedirectResponse(w http.ResponseWriter, r *http.Request, location string) {
	http.Redirect(w, r, location, constvars.StatusFound)
}

func isCustomError(err error) (*exceptions.CustomError, bool) {
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		return customErr, true
	}
	return nil, false
}
