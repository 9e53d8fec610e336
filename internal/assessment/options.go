package assessment

// 선택형 필드의 허용 값과 화면 표시용 라벨
type Option struct {
	Value string
	Label string
}

// 템플릿에서 select 렌더링에 사용하는 전체 옵션 목록
type Catalog struct {
	Gender        []Option
	EverMarried   []Option
	ResidenceType []Option
	WorkType      []Option
	SmokingStatus []Option
}

var catalog = Catalog{
	Gender: []Option{
		{Value: "Male", Label: "Male"},
		{Value: "Female", Label: "Female"},
	},
	EverMarried: []Option{
		{Value: "Yes", Label: "Yes"},
		{Value: "No", Label: "No"},
	},
	ResidenceType: []Option{
		{Value: "Urban", Label: "Urban"},
		{Value: "Rural", Label: "Rural"},
	},
	WorkType: []Option{
		{Value: "Private", Label: "Private"},
		{Value: "Govt_job", Label: "Government Job"},
		{Value: "Self-employed", Label: "Self-employed"},
		{Value: "Never_worked", Label: "Never Worked"},
		{Value: "children", Label: "Children"},
	},
	SmokingStatus: []Option{
		{Value: "never smoked", Label: "Never Smoked"},
		{Value: "formerly smoked", Label: "Formerly Smoked"},
		{Value: "smokes", Label: "Smokes"},
		{Value: "Unknown", Label: "Unknown"},
	},
}

// 폼에 나타나는 순서대로의 필드 이름
var FieldNames = []string{
	"age", "gender", "hypertension", "heart_disease", "avg_glucose_level",
	"bmi", "ever_married", "Residence_type", "work_type", "smoking_status",
}

func GetCatalog() Catalog {
	return catalog
}

// 값에 해당하는 라벨 조회, 없으면 false
func GetLabel(options []Option, value string) (string, bool) {
	for _, opt := range options {
		if opt.Value == value {
			return opt.Label, true
		}
	}
	return "", false
}
