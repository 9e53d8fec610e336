package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"StrokeRiskAssessment/internal/assessment"
	"StrokeRiskAssessment/internal/inference"
	"StrokeRiskAssessment/internal/relay"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error string `json:"error" example:"에러 원인 및 설명"`
}

type APIErrorResponse struct {
	Error   string `json:"error" example:"model unavailable"`
	Details string `json:"details" example:"No details"`
}

type ValidationErrorResponse struct {
	Error  string              `json:"error" example:"validation failed"`
	Fields map[string][]string `json:"fields"`
}

type HealthResponse struct {
	Status  string `json:"status" example:"ok"`
	Service string `json:"service" example:"stroke-risk"`
}

// PredictAPI godoc
// @Summary      위험도 예측 (JSON)
// @Description  폼과 같은 필드를 JSON으로 받아 추론 서버에 한 번 요청하고 결과를 그대로 반환합니다.
// @Description  체크 필드(hypertension, heart_disease)는 true/1/"on"/"yes" 일 때 1, 그 외 또는 누락 시 0.
// @Tags         API
// @Accept       json
// @Produce      json
// @Param        request body object true "환자 입력 (age, gender, hypertension, heart_disease, avg_glucose_level, bmi, ever_married, Residence_type, work_type, smoking_status)"
// @Success      200 {object} models.AssessmentResult
// @Failure      400 {object} handler.ErrorResponse "잘못된 JSON"
// @Failure      422 {object} handler.ValidationErrorResponse "필드 검증 실패"
// @Failure      429 {object} handler.ErrorResponse "요청 한도 초과"
// @Failure      502 {object} handler.APIErrorResponse "추론 서버 오류 응답"
// @Failure      503 {object} handler.ErrorResponse "추론 서버 연결 실패"
// @Router       /api/predict [post]
func (h *PredictionHandler) PredictAPI(c *gin.Context) {
	rawData, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Failed to read request body"})
		return
	}
	var payload map[string]any
	if err := json.Unmarshal(rawData, &payload); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "JSON parsing error: " + err.Error()})
		return
	}

	outcome := h.relay.Assess(c.Request.Context(), assessment.FormFromJSON(payload))

	switch outcome.Status {
	case relay.StatusSucceeded:
		c.JSON(http.StatusOK, outcome.Result)
	case relay.StatusValidationFailed:
		c.JSON(http.StatusUnprocessableEntity, ValidationErrorResponse{
			Error:  "validation failed",
			Fields: outcome.Validation.ByField(),
		})
	case relay.StatusAPIError:
		var apiErr *inference.APIError
		if errors.As(outcome.Err, &apiErr) {
			c.JSON(http.StatusBadGateway, APIErrorResponse{Error: apiErr.ErrorText, Details: apiErr.Details})
			return
		}
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: outcome.Message()})
	default:
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: outcome.Message()})
	}
}

func APIRateLimited(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorResponse{Error: "Too many requests"})
}

// Health godoc
// @Summary      상태 확인
// @Tags         API
// @Produce      json
// @Success      200 {object} handler.HealthResponse
// @Router       /health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok", Service: "stroke-risk"})
}
