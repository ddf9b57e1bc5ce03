package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"Evaluation-System/src/database"
	"Evaluation-System/src/models"
	"Evaluation-System/src/services/email"
	"Evaluation-System/src/services/evaluations"
	"Evaluation-System/src/services/reports"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// DocumentGenerator สร้างไฟล์ PDF จากแบบประเมิน (reports.Service)
type DocumentGenerator interface {
	Generate(ctx context.Context, record models.EvaluationRecord) (*reports.Document, error)
}

// Enqueuer ส่งงานเข้าคิว (*asynq.Client)
type Enqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// EnqueueEmailEvaluation ตรวจที่อยู่อีเมลแล้วส่งงานเข้าคิว
func EnqueueEmailEvaluation(q Enqueuer, payload EmailEvaluationPayload) (*asynq.TaskInfo, error) {
	payload.Normalize()
	if err := payload.Validate(); err != nil {
		return nil, fmt.Errorf("invalid recipient: %w", err)
	}

	task, err := NewEmailEvaluationTask(payload)
	if err != nil {
		return nil, err
	}
	return q.Enqueue(task, asynq.TaskID(EmailEvaluationTaskID()))
}

// HandleEmailEvaluation สร้าง PDF แล้วส่งอีเมลพร้อมไฟล์แนบ
// ข้อมูลที่ผิดตั้งแต่ต้นจะไม่ลองใหม่ ส่วน error อื่นให้ asynq retry ตามปกติ
func HandleEmailEvaluation(gen DocumentGenerator, sender email.MailSender, logger *zap.Logger) asynq.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(ctx context.Context, t *asynq.Task) error {
		var p EmailEvaluationPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			logger.Error("❌ Payload decode error", zap.Error(err))
			return fmt.Errorf("decode payload: %v: %w", err, asynq.SkipRetry)
		}
		p.Normalize()
		if err := p.Validate(); err != nil {
			return fmt.Errorf("invalid recipient %q: %v: %w", p.To, err, asynq.SkipRetry)
		}

		doc, err := gen.Generate(ctx, p.Record)
		if err != nil {
			var verr *evaluations.ValidationError
			if errors.As(err, &verr) {
				logger.Warn("⚠️ Invalid evaluation in email task. Skipping.", zap.String("to", p.To), zap.Error(err))
				return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
			}
			return err
		}

		data := email.NewEvaluationEmailData(p.Record, p.RecipientName, p.Note, doc.Fingerprint)
		body, err := email.RenderEvaluationEmailHTML(data)
		if err != nil {
			return fmt.Errorf("render email: %w", err)
		}

		err = sender.Send(p.To, email.EvaluationSubject(data), body, email.Attachment{
			Name:        doc.FileName,
			ContentType: doc.ContentType,
			Data:        doc.Bytes,
		})
		if err != nil {
			logger.Error("❌ Send evaluation email failed", zap.String("to", p.To), zap.Error(err))
			return fmt.Errorf("send email: %w", err)
		}

		logger.Info("✅ Evaluation email sent", zap.String("to", p.To), zap.String("file", doc.FileName))
		return nil
	}
}

// RegisterHandlers ลงทะเบียน handler ทั้งหมดของ worker
func RegisterHandlers(mux *asynq.ServeMux, gen DocumentGenerator, sender email.MailSender, logger *zap.Logger) {
	mux.HandleFunc(TypeEmailEvaluation, HandleEmailEvaluation(gen, sender, logger))
}

// NewServer สร้าง asynq worker บน Redis เดียวกับ client
// คืน nil ถ้าไม่มี Redis (development mode)
func NewServer(logger *zap.Logger, concurrency int) *asynq.Server {
	if database.RedisClient == nil || database.RedisURI == "" {
		return nil
	}
	if concurrency <= 0 {
		// เปิด Chrome พร้อมกันหลายตัวกินหน่วยความจำมาก
		concurrency = 2
	}
	return asynq.NewServer(database.AsynqRedisOpt(), asynq.Config{
		Concurrency: concurrency,
		Logger:      logger.Sugar(),
	})
}
