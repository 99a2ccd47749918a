package models

// 对话角色
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ConversationTurn 一轮对话，只追加不修改
type ConversationTurn struct {
	Role string `json:"role" validate:"required,oneof=user assistant"`
	Text string `json:"text"`
}

// ReplyKind 助手回复的变体标记
type ReplyKind string

const (
	ReplyPlainText  ReplyKind = "plain_text"
	ReplyStructured ReplyKind = "structured"
)

// RecommendationItem 助手返回的推荐卡片，用于跳转到对应列表页
type RecommendationItem struct {
	ID    string `json:"id" validate:"required"`
	Type  string `json:"type" validate:"required,oneof=solution case app review resource"`
	Title string `json:"title" validate:"required"`
	Desc  string `json:"desc,omitempty"`
	Tag   string `json:"tag,omitempty"`
}

// ChartPoint 图表中的一个数据点
type ChartPoint struct {
	Name  string  `json:"name" validate:"required"`
	Value float64 `json:"value"`
}

// ChartSpec 可直接渲染的聚合数据
type ChartSpec struct {
	Type  string       `json:"type" validate:"required,oneof=bar pie line"`
	Title string       `json:"title"`
	Data  []ChartPoint `json:"data" validate:"required,min=1,dive"`
}

// AssistantReply 解析后的助手回复：PlainText 只有文本，Structured 可带推荐卡片和图表
type AssistantReply struct {
	Kind            ReplyKind            `json:"kind"`
	Text            string               `json:"text"`
	Recommendations []RecommendationItem `json:"recommendations,omitempty"`
	ChartData       *ChartSpec           `json:"chartData,omitempty"`
}

// PlainText 构造纯文本回复
func PlainText(text string) AssistantReply {
	return AssistantReply{Kind: ReplyPlainText, Text: text}
}

// StructuredReply 构造结构化回复
func StructuredReply(text string, recs []RecommendationItem, chart *ChartSpec) AssistantReply {
	return AssistantReply{Kind: ReplyStructured, Text: text, Recommendations: recs, ChartData: chart}
}

// ImportDraft 智能导入生成的文章草稿
type ImportDraft struct {
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
	Structured bool   `json:"structured"` // 模型输出无法解析时为false，Content为原始输出
	RequestID  string `json:"requestId"`
}
