package models

// 추론 서버로 전달되는 검증된 환자 입력
type AssessmentRequest struct {
	Age             float64 `json:"age" validate:"gte=0,lte=120"`
	Gender          string  `json:"gender"`
	Hypertension    int     `json:"hypertension"`
	HeartDisease    int     `json:"heart_disease"`
	AvgGlucoseLevel float64 `json:"avg_glucose_level" validate:"gte=0"`
	BMI             float64 `json:"bmi" validate:"gte=0"`
	EverMarried     string  `json:"ever_married"`
	ResidenceType   string  `json:"Residence_type"`
	WorkType        string  `json:"work_type"`
	SmokingStatus   string  `json:"smoking_status"`
}

// 추론 서버 응답을 기본값 적용 후 매핑한 결과
type AssessmentResult struct {
	RiskLevel       string  `json:"risk_level"`
	RiskProbability float64 `json:"risk_probability"`
	Message         string  `json:"message"`
}

const (
	DefaultRiskLevel = "Unknown"
	DefaultMessage   = "Unknown"
)
