package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"google.golang.org/genai"

	"gtm_portal/config"
	"gtm_portal/logger"
	"gtm_portal/models"
	"gtm_portal/utils"
)

// 单次模型调用超时
const geminiTimeout = 60 * time.Second

// GeminiModel 基于 google.golang.org/genai 的 ChatModel 实现。
// API Key 在每次调用时从配置读取，Key 变化时重建客户端。
type GeminiModel struct {
	cfg *config.Config

	mu        sync.Mutex
	client    *genai.Client
	clientKey string
}

func NewGeminiModel(cfg *config.Config) *GeminiModel {
	return &GeminiModel{cfg: cfg}
}

// clientFor 返回与当前Key对应的客户端，未配置Key时返回 ErrAssistantUnavailable
func (g *GeminiModel) clientFor(ctx context.Context) (*genai.Client, error) {
	key := strings.TrimSpace(g.cfg.Gemini.APIKey)
	if key == "" {
		return nil, models.ErrAssistantUnavailable
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.client != nil && g.clientKey == key {
		return g.client, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	g.client = client
	g.clientKey = key
	logger.Info("Gemini客户端已创建", "model", g.cfg.Gemini.Model)
	return client, nil
}

// Generate 发送 历史对话 + 新消息，返回模型原始输出
func (g *GeminiModel) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	client, err := g.clientFor(ctx)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, geminiTimeout)
	defer cancel()

	logger.Info("调用Gemini",
		"model", g.cfg.Gemini.Model,
		"history_turns", len(req.History),
		"json_output", req.JSONOutput,
		"message_preview", utils.Preview(req.Message, 100))

	startTime := time.Now()
	result, err := client.Models.GenerateContent(ctx, g.cfg.Gemini.Model, buildContents(req), buildGenerateConfig(req))
	duration := time.Since(startTime)
	if err != nil {
		logger.Error("Gemini请求失败", "error", err, "duration_ms", duration.Milliseconds())
		return "", fmt.Errorf("%w: %v", models.ErrAssistantFailed, err)
	}

	text, err := extractTextFromResponse(result)
	if err != nil {
		logger.Error("Gemini响应中没有内容", "duration_ms", duration.Milliseconds())
		return "", fmt.Errorf("%w: %v", models.ErrAssistantFailed, err)
	}

	logger.Info("成功获取Gemini响应",
		"duration_ms", duration.Milliseconds(),
		"response_size", len(text),
		"content_preview", utils.Preview(text, 200))
	return text, nil
}

// buildContents 历史对话按顺序在前，新消息在最后
func buildContents(req GenerateRequest) []*genai.Content {
	contents := make([]*genai.Content, 0, len(req.History)+1)
	for _, turn := range req.History {
		role := genai.Role(genai.RoleUser)
		if turn.Role == models.RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(turn.Text, role))
	}
	return append(contents, genai.NewContentFromText(req.Message, genai.RoleUser))
}

func buildGenerateConfig(req GenerateRequest) *genai.GenerateContentConfig {
	gc := &genai.GenerateContentConfig{}
	if req.SystemInstruction != "" {
		gc.SystemInstruction = genai.NewContentFromText(req.SystemInstruction, genai.RoleUser)
	}
	if req.JSONOutput {
		gc.ResponseMIMEType = "application/json"
	}
	return gc
}

// extractTextFromResponse 拼接首个候选的所有文本片段
func extractTextFromResponse(result *genai.GenerateContentResponse) (string, error) {
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated")
	}

	var sb strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			sb.WriteString(part.Text)
		}
	}
	return sb.String(), nil
}
