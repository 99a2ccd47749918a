package utils

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer 清洗模型生成的HTML正文
type Sanitizer struct {
	policy *bluemonday.Policy
}

func NewSanitizer() *Sanitizer {
	// UGCPolicy 保留 p、a、strong、em、列表、表格等常见标签
	p := bluemonday.UGCPolicy()
	p.RequireNoFollowOnLinks(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)

	return &Sanitizer{policy: p}
}

// SanitizeHTML 清洗并去掉首尾空白
func (s *Sanitizer) SanitizeHTML(html string) string {
	return strings.TrimSpace(s.policy.Sanitize(html))
}
