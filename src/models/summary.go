package models

// Grade ระดับผลการประเมิน
type Grade int

const (
	GradeNeedsImprovement Grade = iota
	GradeFair
	GradeGood
	GradeExcellent
)

func (g Grade) String() string {
	switch g {
	case GradeExcellent:
		return "Excellent"
	case GradeGood:
		return "Good"
	case GradeFair:
		return "Fair"
	default:
		return "Needs Improvement"
	}
}

// Thai ข้อความที่แสดงในเอกสาร
func (g Grade) Thai() string {
	switch g {
	case GradeExcellent:
		return "ดีเยี่ยม"
	case GradeGood:
		return "ดี"
	case GradeFair:
		return "พอใช้"
	default:
		return "ต้องปรับปรุง"
	}
}

func (g Grade) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// UnmarshalText ค่าที่ไม่รู้จักถือเป็น GradeNeedsImprovement
func (g *Grade) UnmarshalText(b []byte) error {
	switch string(b) {
	case "Excellent":
		*g = GradeExcellent
	case "Good":
		*g = GradeGood
	case "Fair":
		*g = GradeFair
	default:
		*g = GradeNeedsImprovement
	}
	return nil
}

// ScoreSummary ผลรวมคะแนนของแบบประเมิน
type ScoreSummary struct {
	QualityScore  float64 `json:"qualityScore"`
	BehaviorScore float64 `json:"behaviorScore"`
	TotalScore    float64 `json:"totalScore"`
	Percentage    float64 `json:"percentage"`
	Grade         Grade   `json:"grade"`
}

// ScoreSummaryResponse ผลสรุปที่ส่งกลับให้หน้าฟอร์ม
type ScoreSummaryResponse struct {
	ScoreSummary
	QualityPercent  string `json:"qualityPercent"`
	BehaviorPercent string `json:"behaviorPercent"`
	TotalPercent    string `json:"totalPercent"`
	CurrentPercent  string `json:"currentPercent"`
	GradeLabel      string `json:"gradeLabel"`
}
