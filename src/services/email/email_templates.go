package email

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"strings"

	"Evaluation-System/src/models"
	"Evaluation-System/src/services/evaluations"
)

type EvaluationEmailData struct {
	RecipientName string
	EmployeeName  string
	Department    string
	Month         string
	Year          string
	TotalScore    string
	Percent       string
	GradeLabel    string
	Note          string
	Fingerprint   string
}

//go:embed evaluation_email.html
var evaluationEmailHTML string

var evaluationEmailTmpl = template.Must(
	template.New("evaluation-email").Parse(evaluationEmailHTML),
)

// NewEvaluationEmailData สรุปคะแนนจากแบบประเมินสำหรับเนื้อหาอีเมล
func NewEvaluationEmailData(record models.EvaluationRecord, recipientName, note, fingerprint string) EvaluationEmailData {
	s := evaluations.SummaryResponse(record)
	return EvaluationEmailData{
		RecipientName: strings.TrimSpace(recipientName),
		EmployeeName:  record.EmployeeName,
		Department:    record.Department,
		Month:         orDash(record.EvaluationMonth),
		Year:          orDash(record.EvaluationYear),
		TotalScore:    fmt.Sprintf("%g", s.TotalScore),
		Percent:       s.CurrentPercent + "%",
		GradeLabel:    s.GradeLabel,
		Note:          strings.TrimSpace(note),
		Fingerprint:   fingerprint,
	}
}

// EvaluationSubject หัวเรื่องอีเมล
func EvaluationSubject(data EvaluationEmailData) string {
	return fmt.Sprintf("แบบประเมินการทำงาน %s ประจำเดือน %s %s", data.EmployeeName, data.Month, data.Year)
}

func RenderEvaluationEmailHTML(data EvaluationEmailData) (string, error) {
	var buf bytes.Buffer
	if err := evaluationEmailTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
