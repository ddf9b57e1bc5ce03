package evaluations

// Criterion หัวข้อการประเมินหนึ่งข้อ
type Criterion struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

const (
	MaxCriterionScore = 10
	MinCriterionScore = 1

	MaxQualityScore  = 50
	MaxBehaviorScore = 100
	MaxTotalScore    = MaxQualityScore + MaxBehaviorScore

	// ค่าที่แสดงเมื่อหัวข้อยังไม่ได้ให้คะแนน
	DefaultDisplayScore = 10
)

// 2.1 ด้านคุณภาพ (50)
var QualityCriteria = []Criterion{
	{Key: "goalAchievement", Label: "2.1.1 งานที่ทำสำเร็จเป็นไปตามเป้าหมายที่กำหนด"},
	{Key: "skills", Label: "2.1.2 ทักษะ ความรู้ ที่จำเป็นต่อการทำงาน"},
	{Key: "understanding", Label: "2.1.3 ความรู้ความเข้าใจในการปฏิบัติงาน"},
	{Key: "accuracy", Label: "2.1.4 ความละเอียดรอบคอบ ความถูกต้องของงาน"},
	{Key: "speed", Label: "2.1.5 ความรวดเร็ว งานที่ทำแล้วเสร็จในระยะเวลาที่กำหนด"},
}

// 2.2 ด้านพฤติกรรม (100)
var BehaviorCriteria = []Criterion{
	{Key: "discipline", Label: "2.2.1 การปฏิบัติตามระเบียบ วินัย ตรงต่อเวลา"},
	{Key: "learning", Label: "2.2.2 ความสามารถในการเรียนรู้งาน"},
	{Key: "creativity", Label: "2.2.3 ความคิดริเริ่มสร้างสรรค์"},
	{Key: "cooperation", Label: "2.2.4 ความร่วมมือ การประสานงาน การมีส่วนร่วม"},
	{Key: "volunteer", Label: "2.2.5 ความมีจิตอาสา ช่วยเหลือผู้อื่น"},
	{Key: "generosity", Label: "2.2.6 ความเอื้อเฟื้อเผื่อแผ่"},
	{Key: "relationship", Label: "2.2.7 ความมีมนุษยสัมพันธ์"},
	{Key: "dedication", Label: "2.2.8 ความเสียสละและอุทิศเวลาให้กับงาน"},
	{Key: "enthusiasm", Label: "2.2.9 ความกระตือรือร้น ความมานะพยายาม"},
	{Key: "decision", Label: "2.2.10 การตัดสินใจและการแก้ปัญหา"},
}

// ThaiMonths ชื่อเดือนสำหรับช่อง "ประจำเดือน"
var ThaiMonths = []string{
	"มกราคม", "กุมภาพันธ์", "มีนาคม", "เมษายน", "พฤษภาคม", "มิถุนายน",
	"กรกฎาคม", "สิงหาคม", "กันยายน", "ตุลาคม", "พฤศจิกายน", "ธันวาคม",
}

var criterionLabels = func() map[string]string {
	m := make(map[string]string, len(QualityCriteria)+len(BehaviorCriteria))
	for _, c := range QualityCriteria {
		m[c.Key] = c.Label
	}
	for _, c := range BehaviorCriteria {
		m[c.Key] = c.Label
	}
	return m
}()

// CriterionLabel คืนชื่อหัวข้อ ถ้าไม่รู้จัก key ให้แสดง key เดิม
func CriterionLabel(key string) string {
	if label, ok := criterionLabels[key]; ok {
		return label
	}
	return key
}
