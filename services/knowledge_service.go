package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"gtm_portal/logger"
	"gtm_portal/models"
	"gtm_portal/repository"
	"gtm_portal/taxonomy"
	"gtm_portal/utils"
)

// 并发读取数据源的上限
const snapshotConcurrency = 3

// KnowledgeService 生成嵌入提示词的知识库快照
type KnowledgeService struct {
	provider repository.CatalogProvider
	tax      *taxonomy.Taxonomy
	maxItems int
}

// NewKnowledgeService maxItems 为每种类型最多写入快照的条目数，<=0 表示不限制
func NewKnowledgeService(provider repository.CatalogProvider, tax *taxonomy.Taxonomy, maxItems int) *KnowledgeService {
	return &KnowledgeService{provider: provider, tax: tax, maxItems: maxItems}
}

// Taxonomy 返回分类体系
func (k *KnowledgeService) Taxonomy() *taxonomy.Taxonomy {
	return k.tax
}

// Snapshot 按页面顺序汇总所有类型的条目摘要，附带分类体系
func (k *KnowledgeService) Snapshot(ctx context.Context) (string, error) {
	lists := make([][]models.CatalogItem, len(models.AllKinds))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(snapshotConcurrency)
	for i, kind := range models.AllKinds {
		g.Go(func() error {
			items, err := k.provider.ListItems(gctx, kind)
			if err != nil {
				return fmt.Errorf("list %s: %w", kind, err)
			}
			lists[i] = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	var sb strings.Builder
	total := 0
	for i, kind := range models.AllKinds {
		items := lists[i]
		if k.maxItems > 0 && len(items) > k.maxItems {
			items = items[:k.maxItems]
		}
		fmt.Fprintf(&sb, "## %s（type=%s）\n", kind.Label(), kind)
		for _, it := range items {
			writeSnapshotItem(&sb, it)
		}
		sb.WriteString("\n")
		total += len(items)
	}

	sb.WriteString("## 分类体系\n")
	sb.WriteString(k.tax.Render())

	snapshot := sb.String()
	logger.Debug("知识库快照已生成", "items", total, "estimated_tokens", utils.CalculateTokens(snapshot))
	return snapshot, nil
}

func writeSnapshotItem(sb *strings.Builder, it models.CatalogItem) {
	fmt.Fprintf(sb, "- [%s] %s：%s", it.ID, it.Title, it.Summary)

	tags := utils.DeduplicateSlice(it.Tags())
	sort.Strings(tags)
	if len(tags) > 0 {
		fmt.Fprintf(sb, "（标签：%s）", strings.Join(tags, "、"))
	}

	keys := make([]string, 0, len(it.Attrs))
	for key := range it.Attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Fprintf(sb, " %s=%s", key, it.Attrs[key])
	}
	sb.WriteString("\n")
}
