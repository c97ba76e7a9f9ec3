package service

import "errors"

var (
	ErrInvalidRequest      = errors.New("invalid request")
	ErrApplicationNotFound = errors.New("application not found")
	ErrSubmissionNotFound  = errors.New("submission not found")
	ErrInvalidStatus       = errors.New("invalid status")
	ErrFlowUnsupported     = errors.New("payment flow is not supported")
)
