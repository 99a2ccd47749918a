package models

import "fmt"

// Kind 门户中的内容类型，每种类型对应一个列表页
type Kind string

const (
	KindSolution Kind = "solution" // 解决方案
	KindCase     Kind = "case"     // 案例与资讯
	KindApp      Kind = "app"      // AI应用
	KindResource Kind = "resource" // 资料库
	KindReview   Kind = "review"   // 赢单/丢单复盘
	KindClient   Kind = "client"   // 作战地图客户
)

// AllKinds 按页面顺序列出所有内容类型
var AllKinds = []Kind{KindSolution, KindCase, KindApp, KindResource, KindReview, KindClient}

var kindLabels = map[Kind]string{
	KindSolution: "解决方案",
	KindCase:     "案例与资讯",
	KindApp:      "AI应用",
	KindResource: "资料库",
	KindReview:   "赢单/丢单复盘",
	KindClient:   "作战地图客户",
}

// Label 中文名称，用于提示词
func (k Kind) Label() string {
	if l, ok := kindLabels[k]; ok {
		return l
	}
	return string(k)
}

// ParseKind 校验并转换类型字符串
func ParseKind(s string) (Kind, error) {
	for _, k := range AllKinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// 常用facet维度
const (
	FacetIndustry    = "industry"
	FacetSubIndustry = "subIndustry"
	FacetScene       = "scene"
	FacetRole        = "role"
	FacetProduct     = "product"
	FacetSourceType  = "sourceType"
	FacetResult      = "result"
	FacetCategory    = "category"
)

// 常用指标
const (
	MetricLikes     = "likes"
	MetricFavorites = "favorites"
	MetricComments  = "comments"
	MetricViews     = "views"
	MetricDownloads = "downloads"
)

// CatalogItem 所有列表页共享的条目结构
type CatalogItem struct {
	ID      string              `json:"id"`
	Kind    Kind                `json:"kind"`
	Title   string              `json:"title"`
	Summary string              `json:"summary"`
	Facets  map[string][]string `json:"facets"`
	Metrics map[string]int      `json:"metrics"`
	Date    string              `json:"date"`
	Attrs   map[string]string   `json:"attrs,omitempty"`
}

// Tags 返回条目所有facet维度下的标签
func (c CatalogItem) Tags() []string {
	var tags []string
	for _, values := range c.Facets {
		tags = append(tags, values...)
	}
	return tags
}

// WithMetrics 返回叠加了本地增量指标的副本，原条目不变
func (c CatalogItem) WithMetrics(delta map[string]int) CatalogItem {
	merged := make(map[string]int, len(c.Metrics)+len(delta))
	for k, v := range c.Metrics {
		merged[k] = v
	}
	for k, v := range delta {
		merged[k] += v
	}
	c.Metrics = merged
	return c
}

// FacetSelection 每个维度上选中的标签集合，空集合表示不限制
type FacetSelection map[string][]string

// Active 返回有选中值的维度
func (s FacetSelection) Active() []string {
	var dims []string
	for dim, values := range s {
		if len(values) > 0 {
			dims = append(dims, dim)
		}
	}
	return dims
}

// Reset 清空所有维度
func (s FacetSelection) Reset() {
	for dim := range s {
		delete(s, dim)
	}
}

// Toggle 切换某个维度下的一个标签
func (s FacetSelection) Toggle(dim, value string) {
	values := s[dim]
	for i, v := range values {
		if v == value {
			s[dim] = append(values[:i:i], values[i+1:]...)
			return
		}
	}
	s[dim] = append(values, value)
}

// CatalogQuery 列表页的一次查询
type CatalogQuery struct {
	Text       string         `json:"q"`
	Selections FacetSelection `json:"selections"`
	Sort       string         `json:"sort"`
}

// CatalogPage 列表查询结果
type CatalogPage struct {
	Kind  Kind          `json:"kind"`
	Sort  string        `json:"sort"`
	Total int           `json:"total"`
	Items []CatalogItem `json:"items"`
}

// BattleMapGroup 作战地图二级分组
type BattleMapGroup struct {
	Label string        `json:"label"`
	Items []CatalogItem `json:"items"`
}

// BattleMapSection 作战地图一级分组
type BattleMapSection struct {
	Label  string           `json:"label"`
	Total  int              `json:"total"`
	Groups []BattleMapGroup `json:"groups"`
}

// BattleMap 按行业分组的客户视图，只含非空分组
type BattleMap struct {
	Sort     string             `json:"sort"`
	Total    int                `json:"total"`
	Sections []BattleMapSection `json:"sections"`
}
