package evaluations

import (
	"errors"
	"fmt"
	"strings"

	"Evaluation-System/src/models"
)

// MinResponsibilities จำนวนช่องหน้าที่ความรับผิดชอบขั้นต่ำของฟอร์ม
const MinResponsibilities = 10

var (
	ErrUnknownField        = errors.New("unknown form field")
	ErrUnknownCriterion    = errors.New("unknown criterion")
	ErrResponsibilityIndex = errors.New("responsibility index out of range")
	ErrMinResponsibilities = fmt.Errorf("responsibilities cannot go below %d rows", MinResponsibilities)
)

// Form สถานะของฟอร์มหนึ่งชุด ระหว่างที่ผู้ใช้กรอกข้อมูล
// แต่ละฟอร์มเป็นเจ้าของข้อมูลของตัวเอง ไม่ใช้ตัวแปรกลางร่วมกัน
type Form struct {
	record           models.EvaluationRecord
	responsibilities []string
}

// NewForm สร้างฟอร์มพร้อมค่าเริ่มต้น: คะแนนทุกข้อ 10, ไม่เคยมาสาย, หน้าที่ 10 ช่องว่าง
func NewForm() *Form {
	f := &Form{
		record: models.EvaluationRecord{
			LateFrequency: models.LateNever,
			Quality:       make(models.ScoreSet, len(QualityCriteria)),
			Behavior:      make(models.ScoreSet, len(BehaviorCriteria)),
		},
		responsibilities: make([]string, MinResponsibilities),
	}
	for _, c := range QualityCriteria {
		f.record.Quality[c.Key] = models.NewScore(MaxCriterionScore)
	}
	for _, c := range BehaviorCriteria {
		f.record.Behavior[c.Key] = models.NewScore(MaxCriterionScore)
	}
	return f
}

// SetField กำหนดค่าช่องข้อความตามชื่อ json ของช่อง
func (f *Form) SetField(name, value string) error {
	r := &f.record
	switch name {
	case "employeeName":
		r.EmployeeName = value
	case "department":
		r.Department = value
	case "position":
		r.Position = value
	case "salary":
		r.Salary = value
	case "probationStart":
		r.ProbationStart = value
	case "probationEnd":
		r.ProbationEnd = value
	case "evaluationMonth":
		r.EvaluationMonth = value
	case "evaluationYear":
		r.EvaluationYear = value
	case "evaluatorName":
		r.EvaluatorName = value
	case "evaluatorPosition":
		r.EvaluatorPosition = value
	case "additionalComments":
		r.AdditionalComments = value
	case "lateFrequency":
		r.LateFrequency = models.LateFrequency(value).Normalize()
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	return nil
}

// SetLeave กำหนดจำนวนวันลา ค่าติดลบปรับเป็น 0
func (f *Form) SetLeave(name string, days float64) error {
	if days < 0 {
		days = 0
	}
	r := &f.record
	switch name {
	case "sickLeave":
		r.SickLeave = models.Count(days)
	case "personalLeave":
		r.PersonalLeave = models.Count(days)
	case "otherLeave":
		r.OtherLeave = models.Count(days)
	case "absent":
		r.Absent = models.Count(days)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	return nil
}

// SetQuality ให้คะแนนด้านคุณภาพ ค่าถูกจำกัดไว้ที่ 1–10
func (f *Form) SetQuality(key string, score int) error {
	return setScore(f.record.Quality, QualityCriteria, key, score)
}

// SetBehavior ให้คะแนนด้านพฤติกรรม ค่าถูกจำกัดไว้ที่ 1–10
func (f *Form) SetBehavior(key string, score int) error {
	return setScore(f.record.Behavior, BehaviorCriteria, key, score)
}

func setScore(scores models.ScoreSet, criteria []Criterion, key string, score int) error {
	for _, c := range criteria {
		if c.Key == key {
			scores[key] = models.NewScore(float64(clamp(score, MinCriterionScore, MaxCriterionScore)))
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownCriterion, key)
}

// AddResponsibility เพิ่มช่องว่างต่อท้าย
func (f *Form) AddResponsibility() {
	f.responsibilities = append(f.responsibilities, "")
}

// UpdateResponsibility แก้ข้อความช่องที่ index
func (f *Form) UpdateResponsibility(index int, value string) error {
	if index < 0 || index >= len(f.responsibilities) {
		return ErrResponsibilityIndex
	}
	f.responsibilities[index] = value
	return nil
}

// RemoveResponsibility ลบช่องที่ index ได้เฉพาะเมื่อมีมากกว่า 10 ช่อง
func (f *Form) RemoveResponsibility(index int) error {
	if index < 0 || index >= len(f.responsibilities) {
		return ErrResponsibilityIndex
	}
	if len(f.responsibilities) <= MinResponsibilities {
		return ErrMinResponsibilities
	}
	f.responsibilities = append(f.responsibilities[:index], f.responsibilities[index+1:]...)
	return nil
}

// Responsibilities สำเนาของช่องหน้าที่ทั้งหมด รวมช่องว่าง
func (f *Form) Responsibilities() []string {
	out := make([]string, len(f.responsibilities))
	copy(out, f.responsibilities)
	return out
}

// Snapshot ข้อมูลปัจจุบันของฟอร์ม ใช้แสดงคะแนนระหว่างกรอก
func (f *Form) Snapshot() models.EvaluationRecord {
	r := f.record
	r.Quality = copyScores(f.record.Quality)
	r.Behavior = copyScores(f.record.Behavior)
	r.Responsibilities = f.Responsibilities()
	return r
}

// Commit ตรวจข้อมูลแล้วคืน record ที่พร้อมส่งไปสร้างเอกสาร ช่องหน้าที่ที่ว่างจะถูกตัดออก
func (f *Form) Commit() (models.EvaluationRecord, error) {
	r := f.Snapshot()
	filled := make([]string, 0, len(r.Responsibilities))
	for _, item := range r.Responsibilities {
		if strings.TrimSpace(item) != "" {
			filled = append(filled, item)
		}
	}
	r.Responsibilities = filled

	if err := Validate(&r); err != nil {
		return models.EvaluationRecord{}, err
	}
	return r, nil
}

func copyScores(in models.ScoreSet) models.ScoreSet {
	out := make(models.ScoreSet, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
