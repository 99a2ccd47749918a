// Package taxonomy holds the controlled vocabulary shared by the catalog filters and the
// assistant prompts. The data is static and never mutated after init.
package taxonomy

import (
	"fmt"
	"strings"
)

// Other 不在分类体系内的标签归入该分组
const Other = "其他"

// General 通用标签，部分页面视为匹配任意选择
const General = "通用"

// Node 一级标签及其有序的二级标签
type Node struct {
	Label    string   `json:"label"`
	Children []string `json:"children"`
}

// Tree 两级分类
type Tree []Node

// L1 返回一级标签，保持定义顺序
func (t Tree) L1() []string {
	labels := make([]string, 0, len(t))
	for _, n := range t {
		labels = append(labels, n.Label)
	}
	return labels
}

// Children 返回一级标签下的二级标签
func (t Tree) Children(l1 string) []string {
	for _, n := range t {
		if n.Label == l1 {
			return n.Children
		}
	}
	return nil
}

// HasL1 判断一级标签是否存在
func (t Tree) HasL1(l1 string) bool {
	for _, n := range t {
		if n.Label == l1 {
			return true
		}
	}
	return false
}

// Contains 判断 l1/l2 组合是否存在
func (t Tree) Contains(l1, l2 string) bool {
	for _, c := range t.Children(l1) {
		if c == l2 {
			return true
		}
	}
	return false
}

// ParentOf 返回二级标签所属的一级标签
func (t Tree) ParentOf(l2 string) (string, bool) {
	for _, n := range t {
		for _, c := range n.Children {
			if c == l2 {
				return n.Label, true
			}
		}
	}
	return "", false
}

func (t Tree) render(sb *strings.Builder) {
	for _, n := range t {
		fmt.Fprintf(sb, "- %s: %s\n", n.Label, strings.Join(n.Children, "、"))
	}
}

// Taxonomy 门户使用的完整分类体系
type Taxonomy struct {
	Industries Tree     `json:"industries"`
	Scenarios  Tree     `json:"scenarios"`
	Roles      []string `json:"roles"`
	Products   []string `json:"products"`
}

// Render 将分类体系序列化为提示词片段，使模型的分类结果落在受控词表内
func (t *Taxonomy) Render() string {
	var sb strings.Builder
	sb.WriteString("行业分类（一级: 二级）:\n")
	t.Industries.render(&sb)
	sb.WriteString("业务场景（一级: 二级）:\n")
	t.Scenarios.render(&sb)
	fmt.Fprintf(&sb, "角色: %s\n", strings.Join(t.Roles, "、"))
	fmt.Fprintf(&sb, "产品: %s\n", strings.Join(t.Products, "、"))
	return sb.String()
}

var defaultTaxonomy = Taxonomy{
	Industries: Tree{
		{Label: "大制造", Children: []string{"汽车产业链", "装备制造", "电子信息", "化工材料"}},
		{Label: "金融", Children: []string{"银行", "保险", "证券"}},
		{Label: "能源", Children: []string{"电力", "石油石化", "新能源"}},
		{Label: "零售消费", Children: []string{"快消品", "商超连锁", "电商"}},
		{Label: "政务", Children: []string{"数字政府", "智慧城市"}},
		{Label: "医疗健康", Children: []string{"医院", "医药"}},
	},
	Scenarios: Tree{
		{Label: "营销服务", Children: []string{"智能客服", "精准营销", "销售助手"}},
		{Label: "研发设计", Children: []string{"仿真设计", "研发知识管理"}},
		{Label: "生产制造", Children: []string{"质量检测", "设备运维", "排产优化"}},
		{Label: "经营管理", Children: []string{"财务分析", "供应链协同", "人力资源"}},
	},
	Roles:    []string{"销售", "售前", "交付", "管理层"},
	Products: []string{"大模型平台", "企业知识库", "智能体平台", "数据中台"},
}

// Default 返回内置的分类体系，调用方不得修改
func Default() *Taxonomy {
	return &defaultTaxonomy
}
