package evaluations

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"Evaluation-System/src/models"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// ข้อความแจ้งเตือนรายช่อง ตามที่หน้าฟอร์มแสดง
var fieldMessages = map[string]string{
	"employeeName": "กรุณาระบุชื่อ-สกุล",
	"department":   "กรุณาระบุฝ่าย/แผนก",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

// ValidationError ข้อผิดพลาดรายช่องของฟอร์ม (ชื่อช่อง → ข้อความ)
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return "validation failed: " + strings.Join(names, ", ")
}

// Validate ตรวจข้อมูลก่อนสร้างเอกสาร ช่องที่ไม่บังคับจะใช้ค่าเริ่มต้นตอนแสดงผล
func Validate(record *models.EvaluationRecord) error {
	if record == nil {
		return &ValidationError{Fields: map[string]string{"record": "ไม่พบข้อมูลแบบประเมิน"}}
	}

	err := validate.Struct(record)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate evaluation: %w", err)
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = messageFor(fe)
	}
	return &ValidationError{Fields: fields}
}

func messageFor(fe validator.FieldError) string {
	if msg, ok := fieldMessages[fe.Field()]; ok && fe.Tag() == "notblank" {
		return msg
	}
	switch fe.Tag() {
	case "gte":
		return "ต้องไม่น้อยกว่า " + fe.Param()
	case "notblank", "required":
		return "กรุณาระบุข้อมูล"
	default:
		return "ข้อมูลไม่ถูกต้อง"
	}
}
