package relay

import (
	"context"
	"errors"

	"StrokeRiskAssessment/internal/assessment"
	"StrokeRiskAssessment/internal/flash"
	"StrokeRiskAssessment/internal/inference"
	"StrokeRiskAssessment/internal/models"

	"github.com/rs/zerolog"
)

// 요청 하나의 최종 상태
type Status int

const (
	StatusSucceeded Status = iota
	StatusValidationFailed
	StatusAPIError
	StatusTransportError
)

func (s Status) String() string {
	switch s {
	case StatusSucceeded:
		return "succeeded"
	case StatusValidationFailed:
		return "validation_failed"
	case StatusAPIError:
		return "api_error"
	case StatusTransportError:
		return "transport_error"
	default:
		return "unknown"
	}
}

// Predictor is the outbound call to the inference endpoint.
type Predictor interface {
	Predict(ctx context.Context, req models.AssessmentRequest) (*models.AssessmentResult, error)
}

// Outcome is the terminal state of one submission.
type Outcome struct {
	Status     Status
	Result     *models.AssessmentResult
	Validation assessment.Errors
	Err        error
	Old        map[string]string
}

// Message is the user-facing error text, empty on success.
func (o Outcome) Message() string {
	switch o.Status {
	case StatusValidationFailed:
		return o.Validation.Error()
	case StatusAPIError, StatusTransportError:
		return inference.Message(o.Err)
	default:
		return ""
	}
}

// Flash converts the outcome into the state shown on the next page.
func (o Outcome) Flash() flash.State {
	switch o.Status {
	case StatusSucceeded:
		return flash.State{Success: &flash.Success{
			RiskLevel:       o.Result.RiskLevel,
			RiskProbability: o.Result.RiskProbability,
			ResultText:      o.Result.Message,
		}, Old: o.Old}
	case StatusValidationFailed:
		return flash.State{Errors: o.Validation.ByField(), Old: o.Old}
	default:
		return flash.State{Error: o.Message(), Old: o.Old}
	}
}

type Service struct {
	predictor Predictor
	logger    zerolog.Logger
}

func NewService(predictor Predictor, logger zerolog.Logger) *Service {
	return &Service{predictor: predictor, logger: logger}
}

// Assess validates the form and, only when it is valid, makes exactly one
// call to the predictor. Every path ends in a terminal Outcome.
func (s *Service) Assess(ctx context.Context, form assessment.Form) Outcome {
	old := form.Old()

	result := assessment.Validate(form)
	req, ok := result.Request()
	if !ok {
		s.logger.Info().Strs("errors", result.Errors().Messages()).Msg("Service.Assess(): validation failed")
		return Outcome{Status: StatusValidationFailed, Validation: result.Errors(), Old: old}
	}

	prediction, err := s.predictor.Predict(ctx, req)
	if err != nil {
		status := StatusTransportError
		var apiErr *inference.APIError
		if errors.As(err, &apiErr) {
			status = StatusAPIError
		}
		s.logger.Warn().Err(err).Stringer("status", status).Msg("Service.Assess(): prediction failed")
		return Outcome{Status: status, Err: err, Old: old}
	}

	s.logger.Info().
		Str("risk_level", prediction.RiskLevel).
		Float64("risk_probability", prediction.RiskProbability).
		Msg("Service.Assess(): prediction succeeded")
	return Outcome{Status: StatusSucceeded, Result: prediction, Old: old}
}
