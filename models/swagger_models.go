package models

// APIResponse 通用API响应
type APIResponse struct {
	Code    int         `json:"code" example:"0"`
	Message string      `json:"message" example:"success"`
	Data    interface{} `json:"data,omitempty"`
}

// ChatRequest 助手对话请求体
type ChatRequest struct {
	Message string             `json:"message" validate:"required,notblank" example:"推荐几个汽车行业的解决方案"`
	History []ConversationTurn `json:"history" validate:"dive"`
}

// TextRequest 智能导入和润色的请求体
type TextRequest struct {
	Text string `json:"text" validate:"required,notblank" example:"某车企通过数字化平台……"`
}

// EngageRequest 互动计数请求体
type EngageRequest struct {
	Metric string `json:"metric" validate:"required,oneof=likes favorites comments views downloads" example:"likes"`
}

// CatalogPageResponse 列表查询响应
type CatalogPageResponse struct {
	Code    int         `json:"code" example:"0"`
	Message string      `json:"message" example:"success"`
	Data    CatalogPage `json:"data"`
}

// AssistantReplyResponse 助手回复响应
type AssistantReplyResponse struct {
	Code    int            `json:"code" example:"0"`
	Message string         `json:"message" example:"success"`
	Data    AssistantReply `json:"data"`
}
