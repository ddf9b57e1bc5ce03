package evaluations

import (
	_ "embed"
	"html/template"
	"io"
	"strings"

	"Evaluation-System/src/models"
)

//go:embed evaluation_form.html
var evaluationFormHTML string

var evaluationFormTmpl = template.Must(template.New("evaluation").Parse(evaluationFormHTML))

// Render เขียนเอกสาร HTML ของแบบประเมินลง w
func Render(w io.Writer, sheet Sheet) error {
	return evaluationFormTmpl.Execute(w, sheet)
}

// RenderHTML ใส่ค่าเริ่มต้นแล้วสร้างเอกสาร HTML เป็น string
func RenderHTML(record models.EvaluationRecord, opts RenderOptions) (string, error) {
	var b strings.Builder
	if err := Render(&b, Prepare(record, opts)); err != nil {
		return "", err
	}
	return b.String(), nil
}
