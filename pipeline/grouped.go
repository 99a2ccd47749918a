package pipeline

import "gtm_portal/taxonomy"

// Group 二级分组
type Group[T any] struct {
	Label string `json:"label"`
	Items []T    `json:"items"`
}

// Section 一级分组
type Section[T any] struct {
	Label  string     `json:"label"`
	Groups []Group[T] `json:"groups"`
}

// Grouped 按分类体系分组后的结果
type Grouped[T any] []Section[T]

// GroupByTaxonomy 按分类体系顺序把已筛选排序的条目分到 一级→二级 分组。
// 所有分组都会创建（可能为空），不在体系内的条目归入"其他"，每个条目恰好出现一次。
func GroupByTaxonomy[T any](items []T, tree taxonomy.Tree, l1, l2 func(T) string) Grouped[T] {
	grouped := make(Grouped[T], 0, len(tree)+1)
	for _, node := range tree {
		section := Section[T]{Label: node.Label, Groups: make([]Group[T], 0, len(node.Children)+1)}
		for _, child := range node.Children {
			section.Groups = append(section.Groups, Group[T]{Label: child})
		}
		section.Groups = append(section.Groups, Group[T]{Label: taxonomy.Other})
		grouped = append(grouped, section)
	}
	grouped = append(grouped, Section[T]{
		Label:  taxonomy.Other,
		Groups: []Group[T]{{Label: taxonomy.Other}},
	})

	for _, it := range items {
		si, gi := locate(tree, l1(it), l2(it))
		g := &grouped[si].Groups[gi]
		g.Items = append(g.Items, it)
	}
	return grouped
}

// locate 返回分组下标，"其他"分组总是各自切片的最后一个
func locate(tree taxonomy.Tree, l1, l2 string) (int, int) {
	for si, node := range tree {
		if node.Label != l1 {
			continue
		}
		for gi, child := range node.Children {
			if child == l2 {
				return si, gi
			}
		}
		return si, len(node.Children)
	}
	return len(tree), 0
}

// NonEmpty 去掉空分组，用于展示
func (g Grouped[T]) NonEmpty() Grouped[T] {
	out := make(Grouped[T], 0, len(g))
	for _, section := range g {
		var groups []Group[T]
		for _, group := range section.Groups {
			if len(group.Items) > 0 {
				groups = append(groups, group)
			}
		}
		if len(groups) > 0 {
			out = append(out, Section[T]{Label: section.Label, Groups: groups})
		}
	}
	return out
}

// Flatten 按分组顺序展开所有条目
func (g Grouped[T]) Flatten() []T {
	var out []T
	for _, section := range g {
		for _, group := range section.Groups {
			out = append(out, group.Items...)
		}
	}
	return out
}

// Count 条目总数
func (g Grouped[T]) Count() int {
	n := 0
	for _, section := range g {
		for _, group := range section.Groups {
			n += len(group.Items)
		}
	}
	return n
}
