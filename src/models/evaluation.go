package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// LateFrequency ความถี่การมาสาย
type LateFrequency string

const (
	LateNever      LateFrequency = "never"
	LateOneToThree LateFrequency = "1-3"
	LateMoreThree  LateFrequency = "more3"
)

// Normalize คืนค่าที่รู้จัก ถ้าไม่รู้จักหรือว่างให้ถือเป็น never
func (l LateFrequency) Normalize() LateFrequency {
	switch l {
	case LateNever, LateOneToThree, LateMoreThree:
		return l
	default:
		return LateNever
	}
}

// Score คะแนนหนึ่งหัวข้อตามที่ส่งมาจากฟอร์ม
// Set เป็น false เมื่อค่าเป็น null ไม่มีค่า หรือไม่ใช่ตัวเลข
type Score struct {
	Value float64
	Set   bool
}

// NewScore สร้างคะแนนที่มีค่า
func NewScore(v float64) Score {
	return Score{Value: v, Set: true}
}

// UnmarshalJSON รับได้ทั้งตัวเลขและข้อความที่เป็นตัวเลข ค่าอื่นไม่ถือเป็น error
func (s *Score) UnmarshalJSON(b []byte) error {
	*s = Score{}
	if v, ok := parseLenientNumber(b); ok {
		s.Value, s.Set = v, true
	}
	return nil
}

func (s Score) MarshalJSON() ([]byte, error) {
	if !s.Set {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(s.Value, 'f', -1, 64)), nil
}

// Number ค่าที่ใช้ตอนรวมคะแนน (ไม่มีค่า = 0)
func (s Score) Number() float64 {
	if !s.Set {
		return 0
	}
	return s.Value
}

// OrDefault ค่าที่ใช้แสดงผล ถ้าไม่มีค่าหรือเป็น 0 ให้ใช้ def
func (s Score) OrDefault(def float64) float64 {
	if !s.Set || s.Value == 0 {
		return def
	}
	return s.Value
}

// ScoreSet คะแนนแยกตามหัวข้อ (key ภายใน → คะแนน)
type ScoreSet map[string]Score

// Count จำนวนวันลา รับตัวเลขหรือข้อความตัวเลข ค่าอื่นเป็น 0
type Count float64

func (c *Count) UnmarshalJSON(b []byte) error {
	v, _ := parseLenientNumber(b)
	*c = Count(v)
	return nil
}

// EvaluationRecord ข้อมูลแบบประเมินหนึ่งฉบับ
type EvaluationRecord struct {
	// ข้อมูลพนักงาน
	EmployeeName   string `json:"employeeName" validate:"notblank"`
	Department     string `json:"department" validate:"notblank"`
	Position       string `json:"position"`
	Salary         string `json:"salary"`
	ProbationStart string `json:"probationStart"`
	ProbationEnd   string `json:"probationEnd"`

	// สถิติการลา
	SickLeave     Count         `json:"sickLeave" validate:"gte=0"`
	PersonalLeave Count         `json:"personalLeave" validate:"gte=0"`
	OtherLeave    Count         `json:"otherLeave" validate:"gte=0"`
	Absent        Count         `json:"absent" validate:"gte=0"`
	LateFrequency LateFrequency `json:"lateFrequency"`

	// หน้าที่ความรับผิดชอบ
	Responsibilities     []string `json:"responsibilities,omitempty"`
	WorkResponsibilities string   `json:"workResponsibilities,omitempty"`

	// คะแนน
	Quality  ScoreSet `json:"quality"`
	Behavior ScoreSet `json:"behavior"`

	// อื่นๆ
	EvaluationMonth    string `json:"evaluationMonth"`
	EvaluationYear     string `json:"evaluationYear"`
	EvaluatorName      string `json:"evaluatorName"`
	EvaluatorPosition  string `json:"evaluatorPosition"`
	AdditionalComments string `json:"additionalComments"`
}

func parseLenientNumber(b []byte) (float64, bool) {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return 0, false
	}

	var v float64
	switch x := raw.(type) {
	case float64:
		v = x
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		v = f
	default:
		return 0, false
	}

	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
