package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"gtm_portal/config"
	"gtm_portal/logger"
	"gtm_portal/metrics"
	"gtm_portal/models"
	"gtm_portal/utils"
)

// 面向用户的固定提示
const (
	UnavailableText = "AI助手暂未配置（缺少 GEMINI_API_KEY），请联系管理员开通后再试。"
	FailedText      = "抱歉，AI助手请求失败，请稍后再试。"
)

// coverSentinel 模型表示"需要生成封面"的占位值
const coverSentinel = "GENERATE"

// 导入草稿允许的类别
var importCategories = map[string]bool{"解决方案": true, "案例": true, "资讯": true, "资料": true}

// 调用模式，用于日志和指标
const (
	modeChat   = "chat"
	modeImport = "import"
	modePolish = "polish"
)

// AssistantService 封装对话、智能导入和润色三种调用
type AssistantService struct {
	cfg       *config.Config
	model     ChatModel
	knowledge *KnowledgeService
	validate  *utils.Validator
	sanitizer *utils.Sanitizer
}

func NewAssistantService(cfg *config.Config, model ChatModel, knowledge *KnowledgeService, validate *utils.Validator, sanitizer *utils.Sanitizer) *AssistantService {
	return &AssistantService{
		cfg:       cfg,
		model:     model,
		knowledge: knowledge,
		validate:  validate,
		sanitizer: sanitizer,
	}
}

// available Key 在调用时读取，未配置时不发起任何请求
func (s *AssistantService) available() bool {
	return s.model != nil && strings.TrimSpace(s.cfg.Gemini.APIKey) != ""
}

// Chat 发送历史对话和新消息，解析为推荐卡片/图表；任何失败都降级为纯文本
func (s *AssistantService) Chat(ctx context.Context, message string, history []models.ConversationTurn) models.AssistantReply {
	if !s.available() {
		logger.Warn("AI助手未配置，跳过请求", "mode", modeChat)
		metrics.RecordAssistant(modeChat, "unavailable", 0)
		return models.PlainText(UnavailableText)
	}

	if limit := s.cfg.Assistant.HistoryWarnTurns; limit > 0 && len(history) > limit {
		logger.Warn("对话历史过长，仍完整发送", "turns", len(history), "warn_turns", limit)
	}

	snapshot, err := s.knowledge.Snapshot(ctx)
	if err != nil {
		logger.Warn("知识库快照生成失败，仅使用分类体系", "error", err)
		snapshot = "## 分类体系\n" + s.knowledge.Taxonomy().Render()
	}

	startTime := time.Now()
	raw, err := s.model.Generate(ctx, GenerateRequest{
		SystemInstruction: buildChatInstruction(snapshot),
		History:           history,
		Message:           message,
		JSONOutput:        true,
	})
	elapsed := time.Since(startTime).Seconds()
	if err != nil {
		if errors.Is(err, models.ErrAssistantUnavailable) {
			metrics.RecordAssistant(modeChat, "unavailable", 0)
			return models.PlainText(UnavailableText)
		}
		logger.Error("AI助手请求失败", "mode", modeChat, "error", err)
		metrics.RecordAssistant(modeChat, "failed", elapsed)
		return models.PlainText(FailedText)
	}

	reply := s.ParseReply(raw)
	metrics.RecordAssistant(modeChat, string(reply.Kind), elapsed)
	return reply
}

// chatPayload 模型输出的顶层结构，子项单独解码以便逐个丢弃无效项
type chatPayload struct {
	Text            *string           `json:"text"`
	Recommendations []json.RawMessage `json:"recommendations"`
	ChartData       json.RawMessage   `json:"chartData"`
}

// ParseReply 严格解析模型输出。
// 非法JSON或缺少text时返回 PlainText(raw)；无效的推荐卡片、图表单独丢弃。
func (s *AssistantService) ParseReply(raw string) models.AssistantReply {
	var payload chatPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		logger.Warn("模型输出不是合法JSON，按纯文本处理", "error", err, "raw_preview", utils.Preview(raw, 200))
		return models.PlainText(raw)
	}
	if payload.Text == nil || strings.TrimSpace(*payload.Text) == "" {
		logger.Warn("模型输出缺少text字段，按纯文本处理", "raw_preview", utils.Preview(raw, 200))
		return models.PlainText(raw)
	}

	var recs []models.RecommendationItem
	for i, item := range payload.Recommendations {
		var rec models.RecommendationItem
		if err := json.Unmarshal(item, &rec); err != nil {
			logger.Debug("丢弃无法解析的推荐卡片", "index", i, "error", err)
			continue
		}
		if err := s.validate.Validate(rec); err != nil {
			logger.Debug("丢弃无效的推荐卡片", "index", i, "error", err)
			continue
		}
		recs = append(recs, rec)
	}

	var chart *models.ChartSpec
	if len(payload.ChartData) > 0 && string(payload.ChartData) != "null" {
		var spec models.ChartSpec
		if err := json.Unmarshal(payload.ChartData, &spec); err != nil {
			logger.Debug("丢弃无法解析的图表数据", "error", err)
		} else if err := s.validate.Validate(spec); err != nil {
			logger.Debug("丢弃无效的图表数据", "error", err)
		} else {
			chart = &spec
		}
	}

	return models.StructuredReply(*payload.Text, recs, chart)
}

// importPayload 智能导入模式的输出结构
type importPayload struct {
	Title      string `json:"title"`
	Summary    string `json:"summary"`
	Content    string `json:"content"`
	Author     string `json:"author"`
	Date       string `json:"date"`
	IndustryL1 string `json:"industryL1"`
	IndustryL2 string `json:"industryL2"`
	ScenarioL1 string `json:"scenarioL1"`
	ScenarioL2 string `json:"scenarioL2"`
	Category   string `json:"category"`
	CoverImage string `json:"coverImage"`
}

// Import 把原始资料整理为文章草稿。
// 输出无法解析时返回 Structured=false 的草稿，正文为模型原始输出。
func (s *AssistantService) Import(ctx context.Context, raw string) (models.ImportDraft, error) {
	requestID := uuid.NewString()
	if !s.available() {
		logger.Warn("AI助手未配置，跳过请求", "mode", modeImport)
		metrics.RecordAssistant(modeImport, "unavailable", 0)
		return models.ImportDraft{}, models.ErrAssistantUnavailable
	}

	startTime := time.Now()
	out, err := s.model.Generate(ctx, GenerateRequest{
		SystemInstruction: buildImportInstruction(s.knowledge.Taxonomy().Render()),
		Message:           raw,
		JSONOutput:        true,
	})
	elapsed := time.Since(startTime).Seconds()
	if err != nil {
		if errors.Is(err, models.ErrAssistantUnavailable) {
			metrics.RecordAssistant(modeImport, "unavailable", 0)
			return models.ImportDraft{}, err
		}
		logger.Error("智能导入请求失败", "request_id", requestID, "error", err)
		metrics.RecordAssistant(modeImport, "failed", elapsed)
		return models.ImportDraft{}, fmt.Errorf("%w: %v", models.ErrAssistantFailed, err)
	}

	var payload importPayload
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		logger.Warn("智能导入输出无法解析，返回原文", "request_id", requestID, "error", err)
		metrics.RecordAssistant(modeImport, string(models.ReplyPlainText), elapsed)
		return models.ImportDraft{
			Content:   s.sanitizer.SanitizeHTML(out),
			RequestID: requestID,
		}, nil
	}

	draft := s.normalizeDraft(payload)
	draft.RequestID = requestID
	logger.Info("智能导入完成",
		"request_id", requestID,
		"title", draft.Title,
		"industry", draft.IndustryL1+"/"+draft.IndustryL2,
		"scenario", draft.ScenarioL1+"/"+draft.ScenarioL2)
	metrics.RecordAssistant(modeImport, string(models.ReplyStructured), elapsed)
	return draft, nil
}

// normalizeDraft 清洗正文，把分类限定在分类体系内，补全封面
func (s *AssistantService) normalizeDraft(p importPayload) models.ImportDraft {
	tax := s.knowledge.Taxonomy()

	draft := models.ImportDraft{
		Title:      strings.TrimSpace(p.Title),
		Summary:    strings.TrimSpace(p.Summary),
		Content:    s.sanitizer.SanitizeHTML(p.Content),
		Author:     strings.TrimSpace(p.Author),
		Structured: true,
	}

	if d := strings.TrimSpace(p.Date); d != "" {
		if _, err := time.Parse("2006-01-02", d); err == nil {
			draft.Date = d
		}
	}

	draft.IndustryL1, draft.IndustryL2 = classify(tax.Industries, p.IndustryL1, p.IndustryL2)
	draft.ScenarioL1, draft.ScenarioL2 = classify(tax.Scenarios, p.ScenarioL1, p.ScenarioL2)

	if c := strings.TrimSpace(p.Category); importCategories[c] {
		draft.Category = c
	}

	draft.CoverImage = strings.TrimSpace(p.CoverImage)
	if !isImageURL(draft.CoverImage) {
		draft.CoverImage = placeholderCover(draft.Title)
	}
	return draft
}

// Polish 润色文本，模型的完整输出即为新文本
func (s *AssistantService) Polish(ctx context.Context, text string) (string, error) {
	if !s.available() {
		logger.Warn("AI助手未配置，跳过请求", "mode", modePolish)
		metrics.RecordAssistant(modePolish, "unavailable", 0)
		return "", models.ErrAssistantUnavailable
	}

	startTime := time.Now()
	out, err := s.model.Generate(ctx, GenerateRequest{
		SystemInstruction: buildPolishInstruction(),
		Message:           text,
	})
	elapsed := time.Since(startTime).Seconds()
	if err != nil {
		if errors.Is(err, models.ErrAssistantUnavailable) {
			metrics.RecordAssistant(modePolish, "unavailable", 0)
			return "", err
		}
		logger.Error("润色请求失败", "error", err)
		metrics.RecordAssistant(modePolish, "failed", elapsed)
		return "", fmt.Errorf("%w: %v", models.ErrAssistantFailed, err)
	}

	metrics.RecordAssistant(modePolish, string(models.ReplyPlainText), elapsed)
	return out, nil
}
