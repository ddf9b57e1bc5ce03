package evaluations

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"html/template"
	"sort"
	"strings"

	"Evaluation-System/src/models"
	"Evaluation-System/src/qrcode"
)

const (
	DefaultOrgName    = "สภาเครือข่ายช่วยเหลือด้านมนุษยธรรม สำนักจุฬาราชมนตรี"
	DefaultFontCSSURL = "https://fonts.googleapis.com/css2?family=Noto+Sans+Thai:wght@300;400;500;600&display=swap"

	placeholderField     = "............................................"
	placeholderPeriodEnd = "............................"
	placeholderMonthYear = "......"
	placeholderEvaluator = "........................................"
	defaultEvaluatorRole = "หัวหน้างาน / ผู้จัดการ / ผู้อำนวยการ"
	noResponsibilities   = "ไม่ได้ระบุหน้าที่ความรับผิดชอบ"

	fingerprintLength = 16
	qrSize            = 96
)

var lateFrequencyText = map[models.LateFrequency]string{
	models.LateNever:      "(✓) ไม่เคยมาสาย ( ) มาสาย 1-3 ครั้ง ( ) มาสายมากกว่า 3 ครั้ง",
	models.LateOneToThree: "( ) ไม่เคยมาสาย (✓) มาสาย 1-3 ครั้ง ( ) มาสายมากกว่า 3 ครั้ง",
	models.LateMoreThree:  "( ) ไม่เคยมาสาย ( ) มาสาย 1-3 ครั้ง (✓) มาสายมากกว่า 3 ครั้ง",
}

// RenderOptions ค่าที่ไม่ได้มาจากฟอร์ม
type RenderOptions struct {
	OrgName     string
	FontCSSURL  string
	Fingerprint bool // แสดงรหัสเอกสารพร้อม QR Code ท้ายเอกสาร
}

// ScoreRow หนึ่งแถวในตารางคะแนน
type ScoreRow struct {
	Key   string
	Label string
	Score string
}

// SummaryView ตัวเลขในส่วนที่ 3 ที่จัดรูปแบบแล้ว
type SummaryView struct {
	QualityScore    string
	QualityPercent  string
	BehaviorScore   string
	BehaviorPercent string
	TotalScore      string
	TotalPercent    string
	CurrentPercent  string
	Grade           models.Grade
	GradeLabel      string
}

// Sheet ข้อมูลที่ใส่ค่าเริ่มต้นครบแล้ว พร้อมส่งเข้า template
type Sheet struct {
	OrgName    string
	FontCSSURL string
	Month      string
	Year       string

	EmployeeName string
	Department   string
	Position     string
	Salary       string
	Period       string

	SickLeave     string
	PersonalLeave string
	OtherLeave    string
	Absent        string
	LateFrequency string

	Responsibilities []string

	QualityRows  []ScoreRow
	BehaviorRows []ScoreRow

	Summary SummaryView

	Comments []string

	EvaluatorName     string
	EvaluatorPosition string

	Fingerprint   string
	FingerprintQR template.URL
}

// Prepare ใส่ค่าเริ่มต้นทุกช่องในที่เดียว
// คะแนนรวมคำนวณจากค่าดิบ (ไม่มีค่า = 0) ส่วนคะแนนที่แสดงรายข้อใช้ 10
func Prepare(record models.EvaluationRecord, opts RenderOptions) Sheet {
	summary := Summarize(record)

	sheet := Sheet{
		OrgName:    orDefault(opts.OrgName, DefaultOrgName),
		FontCSSURL: opts.FontCSSURL,
		Month:      orDefault(record.EvaluationMonth, placeholderMonthYear),
		Year:       orDefault(record.EvaluationYear, placeholderMonthYear),

		EmployeeName: orDefault(record.EmployeeName, placeholderField),
		Department:   orDefault(record.Department, placeholderField),
		Position:     orDefault(record.Position, placeholderField),
		Salary:       placeholderField,
		Period:       placeholderField,

		SickLeave:     formatNumber(float64(record.SickLeave)),
		PersonalLeave: formatNumber(float64(record.PersonalLeave)),
		OtherLeave:    formatNumber(float64(record.OtherLeave)),
		Absent:        formatNumber(float64(record.Absent)),
		LateFrequency: lateFrequencyText[record.LateFrequency.Normalize()],

		Responsibilities: responsibilityLines(record),

		QualityRows:  scoreRows(record.Quality, QualityCriteria),
		BehaviorRows: scoreRows(record.Behavior, BehaviorCriteria),

		Summary: SummaryView{
			QualityScore:    formatNumber(summary.QualityScore),
			QualityPercent:  ToFixed(Percentage(summary.QualityScore, MaxQualityScore), 0),
			BehaviorScore:   formatNumber(summary.BehaviorScore),
			BehaviorPercent: ToFixed(Percentage(summary.BehaviorScore, MaxBehaviorScore), 0),
			TotalScore:      formatNumber(summary.TotalScore),
			TotalPercent:    ToFixed(summary.Percentage, 0),
			CurrentPercent:  ToFixed(summary.Percentage, 2),
			Grade:           summary.Grade,
			GradeLabel:      summary.Grade.Thai(),
		},

		Comments: splitLines(record.AdditionalComments),

		EvaluatorName:     orDefault(record.EvaluatorName, placeholderEvaluator),
		EvaluatorPosition: orDefault(record.EvaluatorPosition, defaultEvaluatorRole),
	}

	if record.Salary != "" {
		sheet.Salary = record.Salary + " บาท"
	}
	if record.ProbationStart != "" {
		sheet.Period = fmt.Sprintf("%s ถึงวันที่ %s", record.ProbationStart, orDefault(record.ProbationEnd, placeholderPeriodEnd))
	}

	if opts.Fingerprint {
		sheet.Fingerprint = Fingerprint(record)
		if uri, err := qrcode.DataURI(sheet.Fingerprint, qrSize); err == nil {
			sheet.FingerprintQR = template.URL(uri)
		}
	}

	return sheet
}

// Fingerprint รหัสสั้นของข้อมูลแบบประเมิน ข้อมูลเดียวกันได้รหัสเดียวกันเสมอ
func Fingerprint(record models.EvaluationRecord) string {
	// json.Marshal เรียง key ของ map ให้อยู่แล้ว
	b, err := json.Marshal(record)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(b)
	return strings.ToUpper(hex.EncodeToString(sum[:]))[:fingerprintLength]
}

// responsibilityLines ใส่เลขข้อ ตัดบรรทัดว่าง และไม่ตัดทิ้งข้อใดเลย
func responsibilityLines(record models.EvaluationRecord) []string {
	lines := make([]string, 0, len(record.Responsibilities))
	for _, item := range record.Responsibilities {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf("%d. %s", len(lines)+1, item))
	}
	if len(lines) > 0 {
		return lines
	}

	// รูปแบบเดิมที่ส่งมาเป็นข้อความเดียว
	if legacy := splitLines(record.WorkResponsibilities); len(legacy) > 0 {
		return legacy
	}
	return []string{noResponsibilities}
}

func scoreRows(scores models.ScoreSet, criteria []Criterion) []ScoreRow {
	rows := make([]ScoreRow, 0, len(criteria))
	for _, c := range criteria {
		rows = append(rows, ScoreRow{
			Key:   c.Key,
			Label: c.Label,
			Score: formatNumber(scores[c.Key].OrDefault(DefaultDisplayScore)),
		})
	}

	// key ที่ไม่อยู่ในรายการถูกนับในคะแนนรวมด้วย จึงแสดงต่อท้ายเรียงตามชื่อ
	known := make(map[string]bool, len(criteria))
	for _, c := range criteria {
		known[c.Key] = true
	}
	extra := make([]string, 0)
	for k := range scores {
		if !known[k] {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	for _, k := range extra {
		rows = append(rows, ScoreRow{
			Key:   k,
			Label: CriterionLabel(k),
			Score: formatNumber(scores[k].OrDefault(DefaultDisplayScore)),
		})
	}
	return rows
}

func splitLines(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.Split(s, "\n")
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
