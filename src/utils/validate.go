package utils

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func init() {
	// ใช้ชื่อ field ตาม json tag ในข้อความ error
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// hex 8-64 ตัว ไม่มี prefix 0x ตัวพิมพ์ใหญ่ได้ (ถูก lower ตอนใช้)
	if err := validate.RegisterValidation("fingerprint", func(fl validator.FieldLevel) bool {
		return ValidFingerprint(strings.ToLower(fl.Field().String()))
	}); err != nil {
		panic(err)
	}
}

// ValidateVar ตรวจค่าเดี่ยวด้วย tag เดียวกับ struct เช่น ValidateVar(v, "email")
func ValidateVar(v interface{}, tag string) error {
	err := validate.Var(v, tag)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidInput, describe(verrs[0]))
	}
	return err
}

// ValidateStruct คืน map field -> reason หรือ nil ถ้าผ่าน
func ValidateStruct(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"_": err.Error()}
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fieldPath(fe)] = describe(fe)
	}
	return out
}

// fieldPath ตัดชื่อ struct ตัวนอกสุดออก เช่น "AnalyticsBatchRequest.events[0].name" -> "events[0].name"
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 && i+1 < len(ns) {
		return ns[i+1:]
	}
	return fe.Field()
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "min":
		return "must be at least " + fe.Param()
	case "email":
		return "must be a valid email"
	case "url":
		return "must be a valid URL"
	case "startswith":
		return "must start with " + fe.Param()
	case "hexadecimal":
		return "must be hexadecimal"
	case "fingerprint":
		return "must be 8-64 hex characters"
	default:
		return "failed " + fe.Tag() + " check"
	}
}
