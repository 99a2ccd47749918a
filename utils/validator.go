package utils

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator 封装 go-playground/validator，错误信息使用JSON字段名
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	validate := validator.New()

	// notblank: 去掉空白后非空
	_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: validate}
}

// Validate 校验结构体
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}
	if errs, ok := err.(validator.ValidationErrors); ok {
		return NewValidationError(errs)
	}
	return err
}

// ValidationError 字段名 -> 错误描述
type ValidationError struct {
	Errors map[string]string `json:"errors"`
}

func (e *ValidationError) Error() string {
	messages := make([]string, 0, len(e.Errors))
	for field, message := range e.Errors {
		messages = append(messages, fmt.Sprintf("%s: %s", field, message))
	}
	sort.Strings(messages)
	return "validation failed: " + strings.Join(messages, ", ")
}

func NewValidationError(errs validator.ValidationErrors) *ValidationError {
	out := make(map[string]string, len(errs))
	for _, err := range errs {
		field := err.Namespace()
		// 去掉顶层结构体名
		if idx := strings.Index(field, "."); idx >= 0 {
			field = field[idx+1:]
		}

		switch err.Tag() {
		case "required":
			out[field] = "不能为空"
		case "notblank":
			out[field] = "不能为空白"
		case "oneof":
			out[field] = "取值必须为: " + err.Param()
		case "min":
			out[field] = "至少需要 " + err.Param() + " 项"
		default:
			out[field] = "校验失败: " + err.Tag()
		}
	}
	return &ValidationError{Errors: out}
}
