// File: internal/validation/validation.go
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"auth-service/internal/domain"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps go-playground/validator for Echo
// 驗證失敗時回傳 domain.FieldErrors，一次帶出所有欄位錯誤
type CustomValidator struct {
	validate *validator.Validate
}

func New() *CustomValidator {
	v := validator.New()
	// 欄位名稱取 json tag，對外訊息不暴露 Go 欄位名
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &CustomValidator{validate: v}
}

// Validate 實作 echo.Validator
func (cv *CustomValidator) Validate(i interface{}) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fieldErrs := domain.FieldErrors{}
	for _, fe := range verrs {
		fieldErrs[fe.Field()] = fieldMessage(fe)
	}
	return fieldErrs
}

// fieldMessage 對應到固定的欄位錯誤訊息
func fieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "email":
		return "Invalid email format"
	case "password":
		if fe.Tag() == "min" {
			return "Password must be at least 8 characters"
		}
		return "Password is required"
	case "name":
		return "Name must be between 2 and 100 characters"
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}
