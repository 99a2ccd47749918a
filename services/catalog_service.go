package services

import (
	"context"
	"fmt"

	"gtm_portal/logger"
	"gtm_portal/metrics"
	"gtm_portal/models"
	"gtm_portal/pipeline"
	"gtm_portal/repository"
	"gtm_portal/taxonomy"
)

// 允许通过门户累加的互动指标
var engageMetrics = map[string]bool{
	models.MetricLikes:     true,
	models.MetricFavorites: true,
	models.MetricComments:  true,
	models.MetricViews:     true,
	models.MetricDownloads: true,
}

// CatalogService 列表页查询：数据源 + 互动增量 + 筛选排序
type CatalogService struct {
	provider   repository.CatalogProvider
	engagement repository.EngagementStore
	tax        *taxonomy.Taxonomy
}

func NewCatalogService(provider repository.CatalogProvider, engagement repository.EngagementStore, tax *taxonomy.Taxonomy) *CatalogService {
	return &CatalogService{provider: provider, engagement: engagement, tax: tax}
}

// load 读取条目并叠加互动增量，增量读取失败时使用原始指标
func (s *CatalogService) load(ctx context.Context, kind models.Kind) ([]models.CatalogItem, error) {
	items, err := s.provider.ListItems(ctx, kind)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return items, nil
	}

	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	deltas, err := s.engagement.Deltas(ctx, kind, ids)
	if err != nil {
		logger.Warn("读取互动增量失败，使用原始指标", "kind", kind, "error", err)
		return items, nil
	}

	for i, it := range items {
		if d, ok := deltas[it.ID]; ok {
			items[i] = it.WithMetrics(d)
		}
	}
	return items, nil
}

// List 返回某个列表页的筛选排序结果，无结果时 Items 为空切片
func (s *CatalogService) List(ctx context.Context, kind models.Kind, q models.CatalogQuery) (models.CatalogPage, error) {
	p, err := pipeline.ForKind(kind)
	if err != nil {
		return models.CatalogPage{}, err
	}

	items, err := s.load(ctx, kind)
	if err != nil {
		return models.CatalogPage{}, fmt.Errorf("load %s: %w", kind, err)
	}

	out := p.Run(items, pipeline.Query{Text: q.Text, Selections: q.Selections, Sort: q.Sort})
	metrics.RecordCatalogQuery(string(kind), "list", len(out))

	return models.CatalogPage{
		Kind:  kind,
		Sort:  p.SortKey(q.Sort),
		Total: len(out),
		Items: out,
	}, nil
}

// Get 返回单个条目
func (s *CatalogService) Get(ctx context.Context, kind models.Kind, id string) (models.CatalogItem, error) {
	if _, err := models.ParseKind(string(kind)); err != nil {
		return models.CatalogItem{}, err
	}

	it, err := repository.FindItem(ctx, s.provider, kind, id)
	if err != nil {
		return models.CatalogItem{}, err
	}

	deltas, err := s.engagement.Deltas(ctx, kind, []string{id})
	if err != nil {
		logger.Warn("读取互动增量失败，使用原始指标", "kind", kind, "id", id, "error", err)
		return it, nil
	}
	return it.WithMetrics(deltas[id]), nil
}

// Engage 累加一次互动，返回更新后的条目
func (s *CatalogService) Engage(ctx context.Context, kind models.Kind, id, metric string) (models.CatalogItem, error) {
	if !engageMetrics[metric] {
		return models.CatalogItem{}, fmt.Errorf("unsupported metric %q", metric)
	}
	if _, err := s.Get(ctx, kind, id); err != nil {
		return models.CatalogItem{}, err
	}

	if _, err := s.engagement.Incr(ctx, kind, id, metric); err != nil {
		return models.CatalogItem{}, fmt.Errorf("record engagement: %w", err)
	}
	metrics.RecordEngagement(string(kind), metric)
	logger.Debug("记录互动", "kind", kind, "id", id, "metric", metric)

	return s.Get(ctx, kind, id)
}

// Battlemap 作战地图：客户筛选排序后按行业分组，只返回非空分组
func (s *CatalogService) Battlemap(ctx context.Context, q models.CatalogQuery) (models.BattleMap, error) {
	p, err := pipeline.ForKind(models.KindClient)
	if err != nil {
		return models.BattleMap{}, err
	}

	items, err := s.load(ctx, models.KindClient)
	if err != nil {
		return models.BattleMap{}, fmt.Errorf("load clients: %w", err)
	}

	out := p.Run(items, pipeline.Query{Text: q.Text, Selections: q.Selections, Sort: q.Sort})
	grouped := pipeline.GroupClients(out, s.tax.Industries).NonEmpty()
	metrics.RecordCatalogQuery(string(models.KindClient), "battlemap", len(out))

	bm := models.BattleMap{
		Sort:     p.SortKey(q.Sort),
		Total:    grouped.Count(),
		Sections: make([]models.BattleMapSection, 0, len(grouped)),
	}
	for _, section := range grouped {
		sec := models.BattleMapSection{Label: section.Label}
		for _, group := range section.Groups {
			sec.Groups = append(sec.Groups, models.BattleMapGroup{Label: group.Label, Items: group.Items})
			sec.Total += len(group.Items)
		}
		bm.Sections = append(bm.Sections, sec)
	}
	return bm, nil
}
