package jobs

import (
	"encoding/json"
	"strings"
	"time"

	"Evaluation-System/src/models"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

const TypeEmailEvaluation = "evaluation:email"

const (
	emailMaxRetry = 3
	emailTimeout  = 3 * time.Minute
)

var payloadValidate = validator.New(validator.WithRequiredStructEnabled())

// EmailEvaluationPayload งานส่งแบบประเมินเป็นไฟล์แนบทางอีเมล
type EmailEvaluationPayload struct {
	To            string                  `json:"to"`
	RecipientName string                  `json:"recipientName"`
	Note          string                  `json:"note"`
	Record        models.EvaluationRecord `json:"record"`
}

func (p *EmailEvaluationPayload) Normalize() {
	p.To = strings.TrimSpace(p.To)
	p.RecipientName = strings.TrimSpace(p.RecipientName)
	p.Note = strings.TrimSpace(p.Note)
}

// Validate ตรวจเฉพาะที่อยู่อีเมล ส่วนข้อมูลแบบประเมินตรวจตอนสร้าง PDF
func (p *EmailEvaluationPayload) Validate() error {
	return payloadValidate.Var(p.To, "required,email")
}

func NewEmailEvaluationTask(payload EmailEvaluationPayload) (*asynq.Task, error) {
	payload.Normalize()

	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeEmailEvaluation, b,
		asynq.MaxRetry(emailMaxRetry),
		asynq.Timeout(emailTimeout),
	), nil
}

// EmailEvaluationTaskID ID ของงานแต่ละครั้ง
func EmailEvaluationTaskID() string {
	return "evaluation-email-" + uuid.NewString()
}
