package models

import "errors"

var (
	ErrUnknownKind          = errors.New("unknown catalog kind")
	ErrItemNotFound         = errors.New("catalog item not found")
	ErrAssistantUnavailable = errors.New("assistant is not configured")
	ErrAssistantFailed      = errors.New("assistant request failed")
)
