package assessment

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"StrokeRiskAssessment/internal/models"

	"github.com/go-playground/validator/v10"
)

// 필드 단위 검증 실패 메시지
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Errors []FieldError

func (e Errors) Error() string {
	return strings.Join(e.Messages(), " ")
}

func (e Errors) Messages() []string {
	out := make([]string, 0, len(e))
	for _, fe := range e {
		out = append(out, fe.Message)
	}
	return out
}

func (e Errors) ByField() map[string][]string {
	if len(e) == 0 {
		return nil
	}
	out := make(map[string][]string, len(e))
	for _, fe := range e {
		out[fe.Field] = append(out[fe.Field], fe.Message)
	}
	return out
}

func (e Errors) has(field string) bool {
	for _, fe := range e {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// Result is either Valid (carrying the normalized request) or Invalid
// (carrying every field error). Exactly one side is set.
type Result struct {
	request *models.AssessmentRequest
	errors  Errors
}

func Valid(req models.AssessmentRequest) Result {
	return Result{request: &req}
}

func Invalid(errs Errors) Result {
	return Result{errors: errs}
}

func (r Result) IsValid() bool {
	return r.request != nil
}

func (r Result) Request() (models.AssessmentRequest, bool) {
	if r.request == nil {
		return models.AssessmentRequest{}, false
	}
	return *r.request, true
}

func (r Result) Errors() Errors {
	return r.errors
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// 에러의 필드명을 form/json 태그 이름으로 사용
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"form", "json"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})

	sets := map[string][]Option{
		"gender":         catalog.Gender,
		"ever_married":   catalog.EverMarried,
		"Residence_type": catalog.ResidenceType,
		"work_type":      catalog.WorkType,
		"smoking_status": catalog.SmokingStatus,
	}
	if err := v.RegisterValidation("decimal", func(fl validator.FieldLevel) bool {
		return isNumber(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("assessment: register decimal validation: %v", err))
	}
	if err := v.RegisterValidation("option", func(fl validator.FieldLevel) bool {
		_, ok := GetLabel(sets[fl.Param()], fl.Field().String())
		return ok
	}); err != nil {
		panic(fmt.Sprintf("assessment: register option validation: %v", err))
	}
	return v
}

// Validate checks every field of the form and, when all pass, returns the
// normalized request. Checkbox presence becomes 1, absence 0.
func Validate(f Form) Result {
	var errs Errors
	collect(&errs, validate.Struct(f))

	req := models.AssessmentRequest{
		Gender:        f.Gender,
		Hypertension:  flag(f.Hypertension),
		HeartDisease:  flag(f.HeartDisease),
		EverMarried:   f.EverMarried,
		ResidenceType: f.ResidenceType,
		WorkType:      f.WorkType,
		SmokingStatus: f.SmokingStatus,
	}
	req.Age = parseNumber(&errs, "age", f.Age)
	req.AvgGlucoseLevel = parseNumber(&errs, "avg_glucose_level", f.AvgGlucoseLevel)
	req.BMI = parseNumber(&errs, "bmi", f.BMI)

	// 범위 검사는 숫자 형식을 통과한 필드에만 적용
	var rangeErrs Errors
	collect(&rangeErrs, validate.Struct(req))
	for _, fe := range rangeErrs {
		if !errs.has(fe.Field) {
			errs = append(errs, fe)
		}
	}

	if len(errs) > 0 {
		return Invalid(errs)
	}
	return Valid(req)
}

func collect(errs *Errors, err error) {
	if err == nil {
		return
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		*errs = append(*errs, FieldError{Message: err.Error()})
		return
	}
	for _, fe := range verrs {
		*errs = append(*errs, FieldError{Field: fe.Field(), Message: message(fe)})
	}
}

// 유한한 10진수 실수만 허용 (".5", "5.", "1e2" 포함, 16진수/구분자/Inf/NaN 제외)
func isNumber(s string) bool {
	if strings.ContainsAny(s, "xX_") {
		return false
	}
	n, err := strconv.ParseFloat(s, 64)
	return err == nil && !math.IsInf(n, 0) && !math.IsNaN(n)
}

func parseNumber(errs *Errors, field, raw string) float64 {
	if errs.has(field) {
		return 0
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil || !isNumber(raw) {
		*errs = append(*errs, FieldError{Field: field, Message: fmt.Sprintf("The %s field must be a number.", attribute(field))})
		return 0
	}
	return n
}

func message(fe validator.FieldError) string {
	attr := attribute(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", attr)
	case "decimal":
		return fmt.Sprintf("The %s field must be a number.", attr)
	case "option":
		return fmt.Sprintf("The selected %s is invalid.", attr)
	case "gte":
		return fmt.Sprintf("The %s field must be at least %s.", attr, fe.Param())
	case "lte":
		return fmt.Sprintf("The %s field must not be greater than %s.", attr, fe.Param())
	case "max":
		return fmt.Sprintf("The %s field must not be greater than %s characters.", attr, fe.Param())
	default:
		return fmt.Sprintf("The %s field is invalid.", attr)
	}
}

// "avg_glucose_level" -> "avg glucose level"
func attribute(field string) string {
	return strings.ToLower(strings.ReplaceAll(field, "_", " "))
}

func flag(b bool) int {
	if b {
		return 1
	}
	return 0
}
