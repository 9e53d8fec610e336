package assessment

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// 폼(또는 JSON)으로 들어온 검증 전 원시 입력
// 체크박스 필드는 값이 아닌 "존재 여부"만 기록한다
type Form struct {
	Name            string `form:"name" validate:"max=255"`
	Age             string `form:"age" validate:"required,decimal"`
	Gender          string `form:"gender" validate:"required,option=gender"`
	Hypertension    bool   `form:"hypertension"`
	HeartDisease    bool   `form:"heart_disease"`
	AvgGlucoseLevel string `form:"avg_glucose_level" validate:"required,decimal"`
	BMI             string `form:"bmi" validate:"required,decimal"`
	EverMarried     string `form:"ever_married" validate:"required,option=ever_married"`
	ResidenceType   string `form:"Residence_type" validate:"required,option=Residence_type"`
	WorkType        string `form:"work_type" validate:"required,option=work_type"`
	SmokingStatus   string `form:"smoking_status" validate:"required,option=smoking_status"`
}

// FormFromValues builds a Form from a url-encoded submission. A checkbox counts
// as checked whenever its key is present, whatever the value.
func FormFromValues(values url.Values) Form {
	get := func(keys ...string) string {
		for _, k := range keys {
			if v := strings.TrimSpace(values.Get(k)); v != "" {
				return v
			}
		}
		return ""
	}
	_, hypertension := values["hypertension"]
	_, heartDisease := values["heart_disease"]

	return Form{
		Name:            get("name"),
		Age:             get("age"),
		Gender:          get("gender"),
		Hypertension:    hypertension,
		HeartDisease:    heartDisease,
		AvgGlucoseLevel: get("avg_glucose_level"),
		BMI:             get("bmi"),
		EverMarried:     get("ever_married"),
		ResidenceType:   get("Residence_type", "residence_type"),
		WorkType:        get("work_type"),
		SmokingStatus:   get("smoking_status"),
	}
}

// FormFromJSON builds a Form from a decoded JSON object. Numbers may arrive as
// JSON numbers or strings; booleans are read by truthiness rather than presence.
func FormFromJSON(payload map[string]any) Form {
	get := func(keys ...string) string {
		for _, k := range keys {
			if v := scalarString(payload[k]); v != "" {
				return v
			}
		}
		return ""
	}
	return Form{
		Name:            get("name"),
		Age:             get("age"),
		Gender:          get("gender"),
		Hypertension:    truthy(payload["hypertension"]),
		HeartDisease:    truthy(payload["heart_disease"]),
		AvgGlucoseLevel: get("avg_glucose_level"),
		BMI:             get("bmi"),
		EverMarried:     get("ever_married"),
		ResidenceType:   get("Residence_type", "residence_type"),
		WorkType:        get("work_type"),
		SmokingStatus:   get("smoking_status"),
	}
}

// 재표시 값 한 개의 최대 길이 (rune 기준)
const MaxOldValueLength = 255

// 재표시용 이전 입력값 (체크된 체크박스는 "1", 긴 값은 잘라냄)
func (f Form) Old() map[string]string {
	old := map[string]string{
		"name":              f.Name,
		"age":               f.Age,
		"gender":            f.Gender,
		"avg_glucose_level": f.AvgGlucoseLevel,
		"bmi":               f.BMI,
		"ever_married":      f.EverMarried,
		"Residence_type":    f.ResidenceType,
		"work_type":         f.WorkType,
		"smoking_status":    f.SmokingStatus,
	}
	if f.Hypertension {
		old["hypertension"] = "1"
	}
	if f.HeartDisease {
		old["heart_disease"] = "1"
	}
	for k, v := range old {
		if v == "" {
			delete(old, k)
			continue
		}
		if r := []rune(v); len(r) > MaxOldValueLength {
			old[k] = string(r[:MaxOldValueLength])
		}
	}
	return old
}

func scalarString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}

func truthy(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case float64:
		return t == 1
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "1", "on", "true", "yes":
			return true
		}
	}
	return false
}
