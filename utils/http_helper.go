package utils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"gtm_portal/models"
)

// 请求体大小上限
const maxBodyBytes = 1 << 20

// WriteFormattedJSON 格式化JSON输出，使其更易读
func WriteFormattedJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "    ") // 使用4个空格缩进
	encoder.Encode(data)
}

// WriteStatusResponse 以指定HTTP状态码写入响应
func WriteStatusResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "    ")
	encoder.Encode(data)
}

// WriteSuccessResponse 写入成功响应
func WriteSuccessResponse(w http.ResponseWriter, data interface{}) {
	WriteFormattedJSON(w, models.NewSuccessResponse(data))
}

// WriteErrorResponse 写入错误响应
func WriteErrorResponse(w http.ResponseWriter, code int, data interface{}) {
	WriteFormattedJSON(w, models.NewErrorResponse(code, data))
}

// WriteCustomErrorResponse 写入自定义错误消息的响应
func WriteCustomErrorResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	WriteFormattedJSON(w, models.NewCustomErrorResponse(code, message, data))
}

// HandleServiceError 处理服务层错误的通用函数
func HandleServiceError(w http.ResponseWriter, err error) {
	code := ErrorCode(err)
	if code == models.CodeServerError {
		WriteCustomErrorResponse(w, code, err.Error(), map[string]interface{}{})
		return
	}
	WriteErrorResponse(w, code, map[string]interface{}{})
}

// DecodeJSONBody 解析并校验请求体，失败时已写入错误响应
func DecodeJSONBody(w http.ResponseWriter, r *http.Request, v *Validator, dst interface{}) bool {
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			WriteErrorResponse(w, models.CodeMissingParams, map[string]interface{}{})
			return false
		}
		WriteCustomErrorResponse(w, models.CodeInvalidParams, "请求体格式错误: "+err.Error(), map[string]interface{}{})
		return false
	}

	if err := v.Validate(dst); err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			WriteErrorResponse(w, models.CodeInvalidParams, verr.Errors)
			return false
		}
		WriteCustomErrorResponse(w, models.CodeInvalidParams, err.Error(), map[string]interface{}{})
		return false
	}
	return true
}
