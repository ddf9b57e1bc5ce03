package routes

import (
	"Evaluation-System/src/controllers"

	"github.com/gofiber/fiber/v2"
)

func evaluationRoutes(router fiber.Router, h *controllers.EvaluationController) {
	router.Post("/generate-pdf", h.GeneratePDF) // สร้าง PDF แบบประเมิน

	evaluation := router.Group("/evaluations")
	evaluation.Get("/form", h.FormDefaults) // ค่าเริ่มต้นของฟอร์ม
	evaluation.Post("/summary", h.Summary)  // สรุปคะแนน
	evaluation.Post("/preview", h.Preview)  // ดูเอกสาร HTML
	evaluation.Post("/email", h.Email)      // ส่ง PDF ทางอีเมล
}
