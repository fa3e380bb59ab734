package utils

import (
	"context"
	"dr-portal/internal/app/services/shared/apiclient"
	"dr-portal/internal/pkg/constvars"
	"dr-portal/internal/pkg/exceptions"
	"io"
	"net/http"
	"strconv"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.New().String()
}

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string); ok {
		return requestID
	}
	return ""
}

// ParseConfirmedQuery reads the optional "confirmed" filter. An absent or
// empty value means no filter.
func ParseConfirmedQuery(r *http.Request) (*bool, error) {
	value := r.URL.Query().Get(constvars.URLQueryConfirmed)
	if value == "" {
		return nil, nil
	}
	confirmed, err := strconv.ParseBool(value)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	return &confirmed, nil
}

// ParseImageUpload reads the multipart field "image". The caller closes the
// returned closer once the image has been sent on.
func ParseImageUpload(r *http.Request, maxBytes int64) (apiclient.Image, io.Closer, error) {
	err := r.ParseMultipartForm(maxBytes)
	if err != nil {
		return apiclient.Image{}, nil, exceptions.ErrCannotParseMultipartForm(err)
	}

	file, header, err := r.FormFile(constvars.MultipartFieldImage)
	if err != nil {
		return apiclient.Image{}, nil, exceptions.ErrCannotParseMultipartForm(err)
	}

	image := apiclient.Image{
		Filename:    header.Filename,
		ContentType: header.Header.Get(constvars.HeaderContentType),
		Data:        file,
	}
	return image, file, nil
}
