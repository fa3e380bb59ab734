package utils

import (
	"context"
	"dr-portal/internal/app/services/session"
	"dr-portal/internal/app/services/shared/apiclient"
	"dr-portal/internal/pkg/constvars"
	"dr-portal/internal/pkg/exceptions"
	"errors"
)

// ToCustomError maps any error to the response it should produce. Errors
// from the API client layer become 504 on timeout, keep the upstream status
// on 4xx, and 502 otherwise.
func ToCustomError(err error) *exceptions.CustomError {
	var apiErr *apiclient.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Timeout:
			return exceptions.ErrUpstreamTimeout(err)
		case apiErr.IsClientError():
			return exceptions.ErrUpstreamRejected(err, apiErr.StatusCode)
		default:
			return exceptions.ErrUpstreamRequest(err, constvars.StatusBadGateway)
		}
	}

	if customErr, ok := isCustomError(err); ok {
		return customErr
	}

	switch {
	case errors.Is(err, session.ErrInconsistentSession), errors.Is(err, session.ErrNoVisitor):
		return exceptions.ErrSessionInconsistent(err)
	case errors.Is(err, context.DeadlineExceeded):
		return exceptions.ErrServerDeadlineExceeded(err)
	}
	return exceptions.ErrServerProcess(err)
}
