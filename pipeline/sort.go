package pipeline

import (
	"cmp"
	"strings"
	"time"
)

var dateLayouts = []string{"2006-01-02", "2006-1-2", "2006/01/02", "2006/1/2", "2006-01", time.RFC3339}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ByDateDesc 日期倒序；无法解析的日期按字符串比较
func ByDateDesc[T any](date func(T) string) Comparator[T] {
	return func(a, b T) int {
		da, db := date(a), date(b)
		ta, okA := parseDate(da)
		tb, okB := parseDate(db)
		if okA && okB {
			return tb.Compare(ta)
		}
		return strings.Compare(db, da)
	}
}

// ByMetricDesc 按单个指标倒序
func ByMetricDesc[T any](metric func(T, string) int, name string) Comparator[T] {
	return func(a, b T) int {
		return cmp.Compare(metric(b, name), metric(a, name))
	}
}

// HeatScore 热度 = 主指标 + k*次指标
func HeatScore(primary, secondary, k int) int {
	return primary + k*secondary
}

// ByHeatDesc 按热度倒序
func ByHeatDesc[T any](metric func(T, string) int, primary, secondary string, k int) Comparator[T] {
	score := func(it T) int {
		return HeatScore(metric(it, primary), metric(it, secondary), k)
	}
	return func(a, b T) int {
		return cmp.Compare(score(b), score(a))
	}
}

// Digits 去掉所有非数字字符和前导零
func Digits(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	return strings.TrimLeft(sb.String(), "0")
}

// CompareSemiNumeric 比较去掉非数字字符后的数值，不受位数限制
func CompareSemiNumeric(a, b string) int {
	da, db := Digits(a), Digits(b)
	if c := cmp.Compare(len(da), len(db)); c != 0 {
		return c
	}
	return strings.Compare(da, db)
}

// BySemiNumericDesc 按半数字字段倒序，例如"¥1,200万"
func BySemiNumericDesc[T any](field func(T) string) Comparator[T] {
	return func(a, b T) int {
		return CompareSemiNumeric(field(b), field(a))
	}
}
