/**
* Name: 			prediction_handler.go
* Description: 		Gin 프레임워크의 HTTP 핸들러
* Workflow: 		입력 폼 렌더링, 예측 요청 중계, flash 상태와 함께 리다이렉트
 */
package handler

import (
	"errors"
	"net/http"
	"sort"

	"StrokeRiskAssessment/internal/assessment"
	"StrokeRiskAssessment/internal/flash"
	"StrokeRiskAssessment/internal/middleware"
	"StrokeRiskAssessment/internal/relay"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const maxFormMemory = 1 << 20

type PredictionHandler struct {
	relay  *relay.Service
	flash  *flash.Codec
	logger zerolog.Logger
}

func NewPredictionHandler(svc *relay.Service, codec *flash.Codec, logger zerolog.Logger) *PredictionHandler {
	return &PredictionHandler{
		relay:  svc,
		flash:  codec,
		logger: logger,
	}
}

// index.html 렌더링에 쓰이는 값
type indexView struct {
	Success   *flash.Success
	Error     string
	Errors    map[string][]string
	Messages  []string
	Old       map[string]string
	Options   assessment.Catalog
	CSRFField string
	CSRFToken string
}

func newIndexView(state flash.State, csrfToken string) indexView {
	return indexView{
		CSRFField: middleware.CSRFFieldName,
		CSRFToken: csrfToken,
		Success:   state.Success,
		Error:     state.Error,
		Errors:    state.Errors,
		Messages:  orderedMessages(state.Errors),
		Old:       state.Old,
		Options:   assessment.GetCatalog(),
	}
}

// 폼 필드 순서대로, 알 수 없는 키는 이름순으로 뒤에 붙임
func orderedMessages(errs map[string][]string) []string {
	if len(errs) == 0 {
		return nil
	}
	var out []string
	seen := make(map[string]bool, len(errs))
	for _, field := range assessment.FieldNames {
		out = append(out, errs[field]...)
		seen[field] = true
	}
	var rest []string
	for field := range errs {
		if !seen[field] {
			rest = append(rest, field)
		}
	}
	sort.Strings(rest)
	for _, field := range rest {
		out = append(out, errs[field]...)
	}
	return out
}

// Index godoc
// @Summary      입력 폼 (Form)
// @Description  환자 정보 입력 폼을 렌더링합니다. 직전 요청의 결과/오류(flash)가 있으면 한 번만 표시합니다.
// @Tags         Form
// @Produce      html
// @Success      200 {string} string "HTML page"
// @Router       / [get]
func (h *PredictionHandler) Index(c *gin.Context) {
	state, err := h.flash.Take(c)
	if err != nil {
		h.logger.Warn().Err(err).Msg("PredictionHandler.Index(): discarded flash state")
	}
	c.HTML(http.StatusOK, "index.html", newIndexView(state, middleware.CSRFToken(c)))
}

// Predict godoc
// @Summary      위험도 예측 (Form submit)
// @Description  폼 입력을 검증하고 추론 서버에 한 번 요청한 뒤, 결과를 flash 쿠키에 담아 / 로 리다이렉트합니다.
// @Tags         Form
// @Accept       x-www-form-urlencoded
// @Param        _token            formData string true  "폼에 포함된 CSRF 토큰"
// @Param        name              formData string false "이름 (최대 255자)"
// @Param        age               formData number true  "나이 (0-120)"
// @Param        gender            formData string true  "Male | Female"
// @Param        hypertension      formData string false "체크 시 존재"
// @Param        heart_disease     formData string false "체크 시 존재"
// @Param        avg_glucose_level formData number true  "평균 혈당 (>= 0)"
// @Param        bmi               formData number true  "BMI (>= 0)"
// @Param        ever_married      formData string true  "Yes | No"
// @Param        Residence_type    formData string true  "Urban | Rural"
// @Param        work_type         formData string true  "Private | Govt_job | Self-employed | Never_worked | children"
// @Param        smoking_status    formData string true  "never smoked | formerly smoked | smokes | Unknown"
// @Success      303 {string} string "Redirect to /"
// @Router       /predict [post]
func (h *PredictionHandler) Predict(c *gin.Context) {
	if err := c.Request.ParseMultipartForm(maxFormMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		h.logger.Warn().Err(err).Msg("PredictionHandler.Predict(): failed to parse form")
		h.redirect(c, flash.State{Error: "Invalid request"})
		return
	}

	form := assessment.FormFromValues(c.Request.PostForm)
	outcome := h.relay.Assess(c.Request.Context(), form)
	h.redirect(c, outcome.Flash())
}

// RateLimited is the form-side response when a client exceeds its quota.
func (h *PredictionHandler) RateLimited(c *gin.Context) {
	h.redirect(c, flash.State{Error: "Too many requests, please wait a moment and try again."})
	c.Abort()
}

// CSRFFailed answers a form post whose token is missing or stale.
func (h *PredictionHandler) CSRFFailed(c *gin.Context) {
	h.logger.Warn().Err(middleware.CSRFFailure(c)).Str("client_ip", c.ClientIP()).Msg("PredictionHandler.CSRFFailed(): rejected form post")
	h.redirect(c, flash.State{Error: "Your session has expired. Please reload the page and try again."})
}

func (h *PredictionHandler) redirect(c *gin.Context, state flash.State) {
	if err := h.flash.Put(c, state); err != nil {
		h.logger.Error().Err(err).Msg("PredictionHandler.redirect(): failed to encode flash state")
	}
	c.Redirect(http.StatusSeeOther, "/")
}
