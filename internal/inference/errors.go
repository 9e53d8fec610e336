package inference

import (
	"errors"
	"fmt"
)

const (
	DefaultErrorText   = "Unknown error"
	DefaultDetailsText = "No details"
)

// APIError: 추론 서버에 도달했지만 2xx가 아닌 상태 코드를 반환한 경우
type APIError struct {
	StatusCode int
	ErrorText  string
	Details    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("inference api returned status %d: %s - %s", e.StatusCode, e.ErrorText, e.Details)
}

// TransportError: 응답을 받기 전에 호출이 실패한 경우 (타임아웃, 연결 거부 등)
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "inference request failed: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Message composes the user-facing text for an error returned by Predict.
func Message(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("ML API Error: %s - %s", apiErr.ErrorText, apiErr.Details)
	}
	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return "Server Error: " + transportErr.Err.Error()
	}
	return "Server Error: " + err.Error()
}
