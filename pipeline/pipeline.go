// Package pipeline implements the faceted filter/sort computation shared by every catalog
// page: free-text OR tag match, AND across facet dimensions, then a stable sort.
//
// A Pipeline is a pure function of its input. It never mutates the item slice and an empty
// result is a normal outcome, not an error.
package pipeline

import (
	"slices"
	"strings"
)

// TagMatch 文本查询与标签的匹配方向
type TagMatch int

const (
	// QueryInTag 标签包含查询词
	QueryInTag TagMatch = iota
	// TagInQuery 查询词包含标签
	TagInQuery
	// EitherWay 任一方向包含即可
	EitherWay
)

// MatchMode 选中值与条目标签的比较方式
type MatchMode int

const (
	MatchExact MatchMode = iota
	// MatchSubstring 条目标签包含选中值
	MatchSubstring
)

// Facet 描述一个筛选维度
type Facet[T any] struct {
	Values func(T) []string
	Mode   MatchMode
	// Wildcard 为真的标签满足该维度的任意选择，例如"通用"
	Wildcard func(tag string) bool
}

// Comparator 返回负数表示a排在b前
type Comparator[T any] func(a, b T) int

// Query 一次筛选请求，Selections 中的空集合表示该维度不限制
type Query struct {
	Text       string
	Selections map[string][]string
	Sort       string
}

// Pipeline 可按页面配置的筛选排序流程
type Pipeline[T any] struct {
	Text        func(T) []string
	Tags        func(T) []string
	TagMatch    TagMatch
	Facets      map[string]Facet[T]
	Sorts       map[string]Comparator[T]
	DefaultSort string
}

// Run 返回可见条目的新切片
func (p *Pipeline[T]) Run(items []T, q Query) []T {
	needle := strings.ToLower(strings.TrimSpace(q.Text))

	out := make([]T, 0, len(items))
	for _, it := range items {
		if p.matchText(it, needle) && p.matchFacets(it, q.Selections) {
			out = append(out, it)
		}
	}

	if cmp := p.comparator(q.Sort); cmp != nil {
		slices.SortStableFunc(out, cmp)
	}
	return out
}

// SortKey 返回实际生效的排序键，未知键退回默认值
func (p *Pipeline[T]) SortKey(key string) string {
	if _, ok := p.Sorts[key]; ok {
		return key
	}
	return p.DefaultSort
}

// SortKeys 列出支持的排序键，默认键在前
func (p *Pipeline[T]) SortKeys() []string {
	keys := make([]string, 0, len(p.Sorts))
	if _, ok := p.Sorts[p.DefaultSort]; ok {
		keys = append(keys, p.DefaultSort)
	}
	rest := make([]string, 0, len(p.Sorts))
	for k := range p.Sorts {
		if k != p.DefaultSort {
			rest = append(rest, k)
		}
	}
	slices.Sort(rest)
	return append(keys, rest...)
}

// FacetNames 列出已配置的维度
func (p *Pipeline[T]) FacetNames() []string {
	names := make([]string, 0, len(p.Facets))
	for name := range p.Facets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (p *Pipeline[T]) comparator(key string) Comparator[T] {
	return p.Sorts[p.SortKey(key)]
}

func (p *Pipeline[T]) matchText(it T, needle string) bool {
	if needle == "" {
		return true
	}
	if p.Text != nil {
		for _, field := range p.Text(it) {
			if strings.Contains(strings.ToLower(field), needle) {
				return true
			}
		}
	}
	if p.Tags != nil {
		for _, tag := range p.Tags(it) {
			if p.tagMatches(strings.ToLower(tag), needle) {
				return true
			}
		}
	}
	return false
}

func (p *Pipeline[T]) tagMatches(tag, needle string) bool {
	if tag == "" {
		return false
	}
	switch p.TagMatch {
	case TagInQuery:
		return strings.Contains(needle, tag)
	case EitherWay:
		return strings.Contains(tag, needle) || strings.Contains(needle, tag)
	default:
		return strings.Contains(tag, needle)
	}
}

// matchFacets 维度内为OR，维度间为AND；未配置的维度不会被任何条目满足
func (p *Pipeline[T]) matchFacets(it T, selections map[string][]string) bool {
	for dim, selected := range selections {
		if len(selected) == 0 {
			continue
		}
		facet, ok := p.Facets[dim]
		if !ok || facet.Values == nil {
			return false
		}
		if !facet.match(facet.Values(it), selected) {
			return false
		}
	}
	return true
}

func (f Facet[T]) match(tags, selected []string) bool {
	for _, tag := range tags {
		if f.Wildcard != nil && f.Wildcard(tag) {
			return true
		}
		for _, want := range selected {
			switch f.Mode {
			case MatchSubstring:
				if want != "" && strings.Contains(tag, want) {
					return true
				}
			default:
				if tag == want {
					return true
				}
			}
		}
	}
	return false
}

// Equals 构造匹配固定标签的通配判断
func Equals(value string) func(string) bool {
	return func(tag string) bool { return tag == value }
}
