package controllers

import (
	"context"
	"errors"

	"Evaluation-System/src/jobs"
	"Evaluation-System/src/middleware"
	"Evaluation-System/src/models"
	"Evaluation-System/src/services/evaluations"
	"Evaluation-System/src/services/reports"
	"Evaluation-System/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ReportService ส่วนที่ controller ใช้จาก reports.Service
type ReportService interface {
	Generate(ctx context.Context, record models.EvaluationRecord) (*reports.Document, error)
	Preview(record models.EvaluationRecord) (string, error)
}

type EvaluationController struct {
	reports ReportService
	queue   jobs.Enqueuer
	logger  *zap.Logger
}

// NewEvaluationController queue เป็น nil ได้ (ไม่มี Redis) ตอนนั้น endpoint ส่งอีเมลจะตอบ 503
func NewEvaluationController(reports ReportService, queue jobs.Enqueuer, logger *zap.Logger) *EvaluationController {
	if reports == nil {
		panic("nil ReportService provided to NewEvaluationController")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EvaluationController{reports: reports, queue: queue, logger: logger.Named("evaluation")}
}

// FormDefaults ค่าเริ่มต้นของฟอร์มพร้อมรายการหัวข้อ
type FormDefaults struct {
	Record           models.EvaluationRecord     `json:"record"`
	Responsibilities []string                    `json:"responsibilities"`
	QualityCriteria  []evaluations.Criterion     `json:"qualityCriteria"`
	BehaviorCriteria []evaluations.Criterion     `json:"behaviorCriteria"`
	Months           []string                    `json:"months"`
	Summary          models.ScoreSummaryResponse `json:"summary"`
}

// EmailRequest คำขอส่งแบบประเมินทางอีเมล
type EmailRequest struct {
	To            string                  `json:"to"`
	RecipientName string                  `json:"recipientName"`
	Note          string                  `json:"note"`
	Record        models.EvaluationRecord `json:"record"`
}

// @Summary      Generate evaluation PDF
// @Description  สร้างไฟล์ PDF แบบประเมินการทำงานจากข้อมูลในฟอร์ม
// @Tags         evaluations
// @Accept       json
// @Produce      application/pdf
// @Param        download  query     bool                     false  "ตอบเป็นไฟล์แนบแทนการเปิดในเบราว์เซอร์"
// @Param        body      body      models.EvaluationRecord  true   "ข้อมูลแบบประเมิน"
// @Success      200       {file}    binary
// @Failure      400       {object}  models.ErrorResponse
// @Failure      500       {object}  models.ErrorResponse
// @Router       /generate-pdf [post]
func (h *EvaluationController) GeneratePDF(c *fiber.Ctx) error {
	var record models.EvaluationRecord
	if err := c.BodyParser(&record); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	doc, err := h.reports.Generate(c.UserContext(), record)
	if err != nil {
		var verr *evaluations.ValidationError
		if errors.As(err, &verr) {
			return utils.HandleValidationError(c, "Invalid evaluation data", verr.Fields)
		}
		h.logger.Error("❌ Error generating PDF",
			zap.String("requestId", middleware.RequestID(c)),
			zap.Error(err),
		)
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to generate PDF")
	}

	disposition := "inline"
	if c.QueryBool("download") {
		disposition = "attachment"
	}
	c.Set(fiber.HeaderContentType, doc.ContentType)
	c.Set(fiber.HeaderContentDisposition, utils.ContentDisposition(disposition, doc.FileName))
	if doc.Fingerprint != "" {
		c.Set("X-Document-Fingerprint", doc.Fingerprint)
	}
	if doc.Cached {
		c.Set("X-Cache", "HIT")
	} else {
		c.Set("X-Cache", "MISS")
	}
	return c.Status(fiber.StatusOK).Send(doc.Bytes)
}

// @Summary      Preview evaluation document
// @Description  แสดงเอกสาร HTML ก่อนสร้าง PDF (ไม่ตรวจช่องบังคับ)
// @Tags         evaluations
// @Accept       json
// @Produce      html
// @Param        body  body      models.EvaluationRecord  true  "ข้อมูลแบบประเมิน"
// @Success      200   {string}  string
// @Failure      400   {object}  models.ErrorResponse
// @Failure      500   {object}  models.ErrorResponse
// @Router       /evaluations/preview [post]
func (h *EvaluationController) Preview(c *fiber.Ctx) error {
	var record models.EvaluationRecord
	if err := c.BodyParser(&record); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	html, err := h.reports.Preview(record)
	if err != nil {
		h.logger.Error("❌ Error rendering preview", zap.Error(err))
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to render document")
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(html)
}

// @Summary      Score summary
// @Description  คำนวณคะแนนรวม ร้อยละ และผลการประเมิน
// @Tags         evaluations
// @Accept       json
// @Produce      json
// @Param        body  body      models.EvaluationRecord  true  "ข้อมูลแบบประเมิน"
// @Success      200   {object}  models.ScoreSummaryResponse
// @Failure      400   {object}  models.ErrorResponse
// @Router       /evaluations/summary [post]
func (h *EvaluationController) Summary(c *fiber.Ctx) error {
	var record models.EvaluationRecord
	if err := c.BodyParser(&record); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	return c.JSON(evaluations.SummaryResponse(record))
}

// @Summary      Default form state
// @Description  ค่าเริ่มต้นของฟอร์ม รายการหัวข้อประเมิน และชื่อเดือน
// @Tags         evaluations
// @Produce      json
// @Success      200  {object}  controllers.FormDefaults
// @Router       /evaluations/form [get]
func (h *EvaluationController) FormDefaults(c *fiber.Ctx) error {
	form := evaluations.NewForm()
	record := form.Snapshot()
	return c.JSON(FormDefaults{
		Record:           record,
		Responsibilities: form.Responsibilities(),
		QualityCriteria:  evaluations.QualityCriteria,
		BehaviorCriteria: evaluations.BehaviorCriteria,
		Months:           evaluations.ThaiMonths,
		Summary:          evaluations.SummaryResponse(record),
	})
}

// @Summary      Email evaluation PDF
// @Description  ส่งไฟล์ PDF แบบประเมินทางอีเมล (ทำงานเบื้องหลังผ่านคิว)
// @Tags         evaluations
// @Accept       json
// @Produce      json
// @Param        body  body      controllers.EmailRequest  true  "ผู้รับและข้อมูลแบบประเมิน"
// @Success      202   {object}  map[string]interface{}
// @Failure      400   {object}  models.ErrorResponse
// @Failure      503   {object}  models.ErrorResponse
// @Router       /evaluations/email [post]
func (h *EvaluationController) Email(c *fiber.Ctx) error {
	if h.queue == nil {
		return utils.HandleError(c, fiber.StatusServiceUnavailable, "Email queue is not configured")
	}

	var req EmailRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	// ตรวจข้อมูลก่อนเข้าคิว จะได้รู้ผลทันทีไม่ต้องรอ worker
	if err := evaluations.Validate(&req.Record); err != nil {
		var verr *evaluations.ValidationError
		if errors.As(err, &verr) {
			return utils.HandleValidationError(c, "Invalid evaluation data", verr.Fields)
		}
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid evaluation data")
	}

	payload := jobs.EmailEvaluationPayload{
		To:            req.To,
		RecipientName: req.RecipientName,
		Note:          req.Note,
		Record:        req.Record,
	}
	payload.Normalize()
	if err := payload.Validate(); err != nil {
		return utils.HandleValidationError(c, "Invalid recipient", map[string]string{"to": "อีเมลไม่ถูกต้อง"})
	}

	info, err := jobs.EnqueueEmailEvaluation(h.queue, payload)
	if err != nil {
		h.logger.Error("❌ Enqueue email task failed", zap.Error(err))
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to queue email")
	}

	h.logger.Info("📧 Email task queued", zap.String("taskId", info.ID), zap.String("to", payload.To))
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"message": "Email queued",
		"taskId":  info.ID,
	})
}
