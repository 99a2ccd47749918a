package utils

import (
	"strings"
)

// DeduplicateSlice 去重字符串切片
func DeduplicateSlice(input []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0)

	for _, val := range input {
		val = strings.TrimSpace(val)
		if val != "" && !seen[val] {
			result = append(result, val)
			seen[val] = true
		}
	}

	return result
}

// CalculateTokens 估算文本的token数量：中文字符2token，英文单词1token
func CalculateTokens(text string) int {
	chinese := 0

	// 计算中文字符数
	for _, r := range text {
		if r >= '一' && r <= '龥' {
			chinese++
		}
	}

	// 计算英文单词数
	english := len(strings.FieldsFunc(text, func(r rune) bool {
		return !(r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z')
	}))

	return chinese*2 + english
}

// Preview 截取前n个字符用于日志，避免日志过长
func Preview(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n]) + "..."
}
