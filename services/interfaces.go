package services

import (
	"context"

	"gtm_portal/models"
)

// GenerateRequest 发往生成式AI服务的一次请求
type GenerateRequest struct {
	SystemInstruction string
	History           []models.ConversationTurn
	Message           string
	// JSONOutput 要求模型只输出 application/json
	JSONOutput bool
}

// ChatModel 生成式AI服务边界
type ChatModel interface {
	// 返回模型的原始文本输出
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}

// Assistant AI助手服务接口
type Assistant interface {
	// 对话，永不返回错误，失败时降级为纯文本
	Chat(ctx context.Context, message string, history []models.ConversationTurn) models.AssistantReply

	// 智能导入：把原始文本整理为文章草稿
	Import(ctx context.Context, raw string) (models.ImportDraft, error)

	// 润色文本
	Polish(ctx context.Context, text string) (string, error)
}

// Catalog 列表页服务接口
type Catalog interface {
	List(ctx context.Context, kind models.Kind, q models.CatalogQuery) (models.CatalogPage, error)
	Get(ctx context.Context, kind models.Kind, id string) (models.CatalogItem, error)
	Engage(ctx context.Context, kind models.Kind, id, metric string) (models.CatalogItem, error)
	Battlemap(ctx context.Context, q models.CatalogQuery) (models.BattleMap, error)
}
