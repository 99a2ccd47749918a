package utils

import (
	"database/sql"
	"errors"

	"gtm_portal/models"
)

// IsSQLNoRowsError 检查错误是否为SQL无结果错误
func IsSQLNoRowsError(err error) bool {
	return err != nil && errors.Is(err, sql.ErrNoRows)
}

// ErrorCode 将服务层错误映射为响应码
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, models.ErrUnknownKind):
		return models.CodeUnknownKind
	case errors.Is(err, models.ErrItemNotFound), IsSQLNoRowsError(err):
		return models.CodeItemNotFound
	case errors.Is(err, models.ErrAssistantUnavailable):
		return models.CodeAssistantUnavailable
	case errors.Is(err, models.ErrAssistantFailed):
		return models.CodeThirdPartyAPIError
	default:
		return models.CodeServerError
	}
}
