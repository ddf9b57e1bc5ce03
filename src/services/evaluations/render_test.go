package evaluations

import (
	"strings"
	"testing"
	"time"

	"Evaluation-System/src/models"
	"Evaluation-System/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepareDefaults(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("Sheet Default Tests")
	defer suiteResult.PrintSummary()

	suiteResult.Run(t, "Empty Record Placeholders", 50*time.Millisecond, func(t *testing.T) {
		sheet := Prepare(models.EvaluationRecord{}, RenderOptions{})

		assert.Equal(t, DefaultOrgName, sheet.OrgName)
		assert.Equal(t, placeholderMonthYear, sheet.Month)
		assert.Equal(t, placeholderMonthYear, sheet.Year)
		assert.Equal(t, placeholderField, sheet.EmployeeName)
		assert.Equal(t, placeholderField, sheet.Salary)
		assert.Equal(t, placeholderField, sheet.Period)
		assert.Equal(t, placeholderEvaluator, sheet.EvaluatorName)
		assert.Equal(t, defaultEvaluatorRole, sheet.EvaluatorPosition)
		assert.Equal(t, []string{noResponsibilities}, sheet.Responsibilities)
		assert.Equal(t, "0", sheet.SickLeave)
		assert.Nil(t, sheet.Comments)
		assert.Empty(t, sheet.Fingerprint)
	})

	suiteResult.Run(t, "Display And Sum Fallbacks Differ", 50*time.Millisecond, func(t *testing.T) {
		sheet := Prepare(models.EvaluationRecord{}, RenderOptions{})

		// แสดงรายข้อเป็น 10 แต่คะแนนรวมนับเป็น 0
		require.Len(t, sheet.QualityRows, len(QualityCriteria))
		require.Len(t, sheet.BehaviorRows, len(BehaviorCriteria))
		for _, row := range append(sheet.QualityRows, sheet.BehaviorRows...) {
			assert.Equal(t, "10", row.Score, row.Key)
		}
		assert.Equal(t, "0", sheet.Summary.TotalScore)
		assert.Equal(t, "0.00", sheet.Summary.CurrentPercent)
		assert.Equal(t, models.GradeNeedsImprovement, sheet.Summary.Grade)
		assert.Equal(t, "ต้องปรับปรุง", sheet.Summary.GradeLabel)
	})

	suiteResult.Run(t, "Zero Score Displays Ten", 50*time.Millisecond, func(t *testing.T) {
		r := fullRecord()
		r.Quality["skills"] = models.NewScore(0)

		sheet := Prepare(r, RenderOptions{})

		assert.Equal(t, "10", sheet.QualityRows[1].Score)
		assert.Equal(t, "40", sheet.Summary.QualityScore)
	})

	suiteResult.Run(t, "Salary And Period", 50*time.Millisecond, func(t *testing.T) {
		r := fullRecord()
		r.Salary = "15000"
		r.ProbationStart = "1 มกราคม 2567"

		sheet := Prepare(r, RenderOptions{OrgName: "บริษัท ทดสอบ"})

		assert.Equal(t, "บริษัท ทดสอบ", sheet.OrgName)
		assert.Equal(t, "15000 บาท", sheet.Salary)
		assert.Equal(t, "1 มกราคม 2567 ถึงวันที่ "+placeholderPeriodEnd, sheet.Period)

		r.ProbationEnd = "31 มีนาคม 2567"
		assert.Equal(t, "1 มกราคม 2567 ถึงวันที่ 31 มีนาคม 2567", Prepare(r, RenderOptions{}).Period)
	})

	suiteResult.Run(t, "Late Frequency Marks", 50*time.Millisecond, func(t *testing.T) {
		r := fullRecord()

		r.LateFrequency = models.LateOneToThree
		assert.Equal(t, "( ) ไม่เคยมาสาย (✓) มาสาย 1-3 ครั้ง ( ) มาสายมากกว่า 3 ครั้ง", Prepare(r, RenderOptions{}).LateFrequency)

		r.LateFrequency = models.LateMoreThree
		assert.Equal(t, "( ) ไม่เคยมาสาย ( ) มาสาย 1-3 ครั้ง (✓) มาสายมากกว่า 3 ครั้ง", Prepare(r, RenderOptions{}).LateFrequency)

		r.LateFrequency = "sometimes"
		assert.Equal(t, "(✓) ไม่เคยมาสาย ( ) มาสาย 1-3 ครั้ง ( ) มาสายมากกว่า 3 ครั้ง", Prepare(r, RenderOptions{}).LateFrequency)
	})

	suiteResult.Run(t, "Responsibilities Numbered", 50*time.Millisecond, func(t *testing.T) {
		r := fullRecord()
		r.Responsibilities = []string{"ดูแลเอกสาร", "", "   ", "ประสานงานโครงการ"}

		assert.Equal(t, []string{"1. ดูแลเอกสาร", "2. ประสานงานโครงการ"}, Prepare(r, RenderOptions{}).Responsibilities)
	})

	suiteResult.Run(t, "Legacy Responsibilities Text", 50*time.Millisecond, func(t *testing.T) {
		r := fullRecord()
		r.WorkResponsibilities = "1. งานแรก\r\n2. งานที่สอง"

		assert.Equal(t, []string{"1. งานแรก", "2. งานที่สอง"}, Prepare(r, RenderOptions{}).Responsibilities)
	})

	suiteResult.Run(t, "Unknown Score Keys Appended", 50*time.Millisecond, func(t *testing.T) {
		r := fullRecord()
		r.Behavior["zeal"] = models.NewScore(7)
		r.Behavior["attitude"] = models.NewScore(6)

		rows := Prepare(r, RenderOptions{}).BehaviorRows

		require.Len(t, rows, len(BehaviorCriteria)+2)
		assert.Equal(t, "attitude", rows[len(rows)-2].Label)
		assert.Equal(t, "6", rows[len(rows)-2].Score)
		assert.Equal(t, "zeal", rows[len(rows)-1].Label)
	})

	suiteResult.Run(t, "Fingerprint", 500*time.Millisecond, func(t *testing.T) {
		r := fullRecord()
		sheet := Prepare(r, RenderOptions{Fingerprint: true})

		assert.Len(t, sheet.Fingerprint, fingerprintLength)
		assert.Equal(t, Fingerprint(r), sheet.Fingerprint)
		assert.True(t, strings.HasPrefix(string(sheet.FingerprintQR), "data:image/png;base64,"))

		r.EmployeeName = "สมหญิง ใจดี"
		assert.NotEqual(t, sheet.Fingerprint, Fingerprint(r))
	})
}

func TestRenderHTML(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("Evaluation Render Tests")
	defer suiteResult.PrintSummary()

	suiteResult.Run(t, "Full Scores Document", 100*time.Millisecond, func(t *testing.T) {
		r := fullRecord()
		r.EvaluationMonth = "มกราคม"
		r.EvaluationYear = "2567"

		html, err := RenderHTML(r, RenderOptions{})
		require.NoError(t, err)

		assert.Contains(t, html, "แบบประเมินการทำงานจ้างเหมาจำเพาะ")
		assert.Contains(t, html, DefaultOrgName)
		assert.Contains(t, html, "ประจำเดือน มกราคม พ.ศ. 2567")
		assert.Contains(t, html, "สมชาย ใจดี")
		assert.Contains(t, html, "คะแนนปัจจุบัน 150/150 (100.00%)")
		assert.Contains(t, html, "ดีเยี่ยม")
		assert.Contains(t, html, noResponsibilities)
		assert.Contains(t, html, `class="page-break"`)
		assert.NotContains(t, html, "ความเห็นเพิ่มเติม")
	})

	suiteResult.Run(t, "Sections In Order", 100*time.Millisecond, func(t *testing.T) {
		html, err := RenderHTML(fullRecord(), RenderOptions{})
		require.NoError(t, err)

		first := strings.Index(html, "ส่วนที่ 1")
		second := strings.Index(html, "ส่วนที่ 2")
		third := strings.Index(html, "ส่วนที่ 3")
		signature := strings.Index(html, "ผู้ประเมิน</p>")

		assert.True(t, first > 0 && first < second && second < third && third < signature)
		assert.True(t, strings.Index(html, QualityCriteria[0].Label) < strings.Index(html, BehaviorCriteria[0].Label))
	})

	suiteResult.Run(t, "Escapes User Text", 100*time.Millisecond, func(t *testing.T) {
		r := fullRecord()
		r.EmployeeName = "<script>alert(1)</script>"
		r.AdditionalComments = "บรรทัดแรก\nบรรทัดที่สอง"

		html, err := RenderHTML(r, RenderOptions{})
		require.NoError(t, err)

		assert.NotContains(t, html, "<script>alert(1)</script>")
		assert.Contains(t, html, "&lt;script&gt;")
		assert.Contains(t, html, "ความเห็นเพิ่มเติม")
		assert.Contains(t, html, "บรรทัดแรก<br>บรรทัดที่สอง")
	})

	suiteResult.Run(t, "Same Input Same Output", 200*time.Millisecond, func(t *testing.T) {
		r := fullRecord()
		r.Quality["bonus"] = models.NewScore(3)
		r.Behavior["extra"] = models.NewScore(4)

		a, err := RenderHTML(r, RenderOptions{Fingerprint: true})
		require.NoError(t, err)
		b, err := RenderHTML(r, RenderOptions{Fingerprint: true})
		require.NoError(t, err)

		assert.Equal(t, a, b)
	})

	suiteResult.Run(t, "Font Stylesheet Optional", 100*time.Millisecond, func(t *testing.T) {
		without, err := RenderHTML(fullRecord(), RenderOptions{})
		require.NoError(t, err)
		assert.NotContains(t, without, "fonts.googleapis.com")

		with, err := RenderHTML(fullRecord(), RenderOptions{FontCSSURL: DefaultFontCSSURL})
		require.NoError(t, err)
		assert.Contains(t, with, "fonts.googleapis.com")
	})
}
