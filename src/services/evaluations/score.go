package evaluations

import (
	"math"
	"sort"

	"Evaluation-System/src/models"
)

// Sum รวมคะแนนทุกหัวข้อ ค่าที่ไม่มีหรือไม่ใช่ตัวเลขนับเป็น 0
func Sum(scores models.ScoreSet) float64 {
	keys := make([]string, 0, len(scores))
	for k := range scores {
		keys = append(keys, k)
	}
	// เรียง key ให้ผลบวกทศนิยมเหมือนเดิมทุกครั้ง
	sort.Strings(keys)

	total := 0.0
	for _, k := range keys {
		total += scores[k].Number()
	}
	return total
}

// Percentage คะแนนคิดเป็นร้อยละของคะแนนเต็ม
func Percentage(score, full float64) float64 {
	if full == 0 {
		return 0
	}
	return score / full * 100
}

// Summarize คำนวณคะแนนรวม ร้อยละ และระดับผลการประเมิน
func Summarize(record models.EvaluationRecord) models.ScoreSummary {
	quality := Sum(record.Quality)
	behavior := Sum(record.Behavior)
	total := quality + behavior
	pct := Percentage(total, MaxTotalScore)

	return models.ScoreSummary{
		QualityScore:  quality,
		BehaviorScore: behavior,
		TotalScore:    total,
		Percentage:    pct,
		Grade:         Classify(pct),
	}
}

// Classify แบ่งระดับตามร้อยละ ค่าที่ตรงขอบให้อยู่ระดับที่สูงกว่า
func Classify(pct float64) models.Grade {
	switch {
	case math.IsNaN(pct):
		return models.GradeNeedsImprovement
	case pct >= 90:
		return models.GradeExcellent
	case pct >= 80:
		return models.GradeGood
	case pct >= 70:
		return models.GradeFair
	default:
		return models.GradeNeedsImprovement
	}
}

// SummaryResponse สรุปคะแนนพร้อมรูปแบบตัวเลขที่ใช้ในเอกสาร
func SummaryResponse(record models.EvaluationRecord) models.ScoreSummaryResponse {
	s := Summarize(record)
	return models.ScoreSummaryResponse{
		ScoreSummary:    s,
		QualityPercent:  ToFixed(Percentage(s.QualityScore, MaxQualityScore), 0),
		BehaviorPercent: ToFixed(Percentage(s.BehaviorScore, MaxBehaviorScore), 0),
		TotalPercent:    ToFixed(s.Percentage, 0),
		CurrentPercent:  ToFixed(s.Percentage, 2),
		GradeLabel:      s.Grade.Thai(),
	}
}
