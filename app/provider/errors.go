package provider

import (
	"errors"
	"fmt"
)

var (
	ErrNetwork        = errors.New("payment initiation request failed")
	ErrRemoteRejected = errors.New("payment initiation was rejected")
)

// NetworkError means the endpoint could not be reached or its response could
// not be read.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", ErrNetwork.Error(), e.Err)
}

func (e *NetworkError) Unwrap() []error {
	return []error{ErrNetwork, e.Err}
}

// RemoteRejectedError is a non-success answer from the endpoint. Body holds the
// raw response for logging.
type RemoteRejectedError struct {
	StatusCode int
	Body       string
}

func (e *RemoteRejectedError) Error() string {
	return fmt.Sprintf("%s: status=%d body=%s", ErrRemoteRejected.Error(), e.StatusCode, e.Body)
}

func (e *RemoteRejectedError) Unwrap() error {
	return ErrRemoteRejected
}
