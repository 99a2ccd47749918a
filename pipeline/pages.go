package pipeline

import (
	"fmt"

	"gtm_portal/models"
	"gtm_portal/taxonomy"
)

// 排序键
const (
	SortLatest    = "latest"
	SortHot       = "hot"
	SortLikes     = "likes"
	SortViews     = "views"
	SortDownloads = "downloads"
	SortDealSize  = "dealSize"
	SortValue     = "value"
)

// 热度公式中次指标的权重
const heatWeight = 2

// CatalogPipeline 作用于门户条目的流程
type CatalogPipeline = Pipeline[models.CatalogItem]

func itemText(it models.CatalogItem) []string { return []string{it.Title, it.Summary} }
func itemTags(it models.CatalogItem) []string { return it.Tags() }
func itemDate(it models.CatalogItem) string   { return it.Date }

func itemMetric(it models.CatalogItem, name string) int { return it.Metrics[name] }

func facet(dim string) func(models.CatalogItem) []string {
	return func(it models.CatalogItem) []string { return it.Facets[dim] }
}

func attr(name string) func(models.CatalogItem) string {
	return func(it models.CatalogItem) string { return it.Attrs[name] }
}

func exact(dim string) Facet[models.CatalogItem] {
	return Facet[models.CatalogItem]{Values: facet(dim)}
}

func withGeneral(dim string) Facet[models.CatalogItem] {
	return Facet[models.CatalogItem]{Values: facet(dim), Wildcard: Equals(taxonomy.General)}
}

func newCatalogPipeline(tagMatch TagMatch, facets map[string]Facet[models.CatalogItem], defaultSort string, sorts map[string]Comparator[models.CatalogItem]) *CatalogPipeline {
	return &CatalogPipeline{
		Text:        itemText,
		Tags:        itemTags,
		TagMatch:    tagMatch,
		Facets:      facets,
		Sorts:       sorts,
		DefaultSort: defaultSort,
	}
}

var pages = map[models.Kind]*CatalogPipeline{
	models.KindSolution: newCatalogPipeline(QueryInTag,
		map[string]Facet[models.CatalogItem]{
			models.FacetIndustry: withGeneral(models.FacetIndustry),
			models.FacetScene:    withGeneral(models.FacetScene),
			models.FacetRole:     exact(models.FacetRole),
			models.FacetProduct:  exact(models.FacetProduct),
		},
		SortLatest,
		map[string]Comparator[models.CatalogItem]{
			SortLatest: ByDateDesc(itemDate),
			SortHot:    ByHeatDesc(itemMetric, models.MetricLikes, models.MetricComments, heatWeight),
			SortLikes:  ByMetricDesc(itemMetric, models.MetricLikes),
		}),

	models.KindCase: newCatalogPipeline(QueryInTag,
		map[string]Facet[models.CatalogItem]{
			models.FacetIndustry:   exact(models.FacetIndustry),
			models.FacetSourceType: exact(models.FacetSourceType),
		},
		SortLatest,
		map[string]Comparator[models.CatalogItem]{
			SortLatest: ByDateDesc(itemDate),
			SortViews:  ByMetricDesc(itemMetric, models.MetricViews),
		}),

	models.KindApp: newCatalogPipeline(QueryInTag,
		map[string]Facet[models.CatalogItem]{
			models.FacetScene: {Values: facet(models.FacetScene), Mode: MatchSubstring},
			models.FacetRole:  withGeneral(models.FacetRole),
		},
		SortHot,
		map[string]Comparator[models.CatalogItem]{
			SortHot:    ByHeatDesc(itemMetric, models.MetricLikes, models.MetricFavorites, heatWeight),
			SortLatest: ByDateDesc(itemDate),
		}),

	models.KindResource: newCatalogPipeline(QueryInTag,
		map[string]Facet[models.CatalogItem]{
			models.FacetCategory: exact(models.FacetCategory),
			models.FacetProduct:  exact(models.FacetProduct),
			models.FacetRole:     exact(models.FacetRole),
		},
		SortLatest,
		map[string]Comparator[models.CatalogItem]{
			SortLatest:    ByDateDesc(itemDate),
			SortDownloads: ByMetricDesc(itemMetric, models.MetricDownloads),
			SortViews:     ByMetricDesc(itemMetric, models.MetricViews),
		}),

	models.KindReview: newCatalogPipeline(QueryInTag,
		map[string]Facet[models.CatalogItem]{
			models.FacetIndustry: exact(models.FacetIndustry),
			models.FacetResult:   exact(models.FacetResult),
			models.FacetProduct:  exact(models.FacetProduct),
		},
		SortLatest,
		map[string]Comparator[models.CatalogItem]{
			SortLatest:   ByDateDesc(itemDate),
			SortDealSize: BySemiNumericDesc(attr("dealSize")),
		}),

	models.KindClient: newCatalogPipeline(EitherWay,
		map[string]Facet[models.CatalogItem]{
			models.FacetIndustry:    exact(models.FacetIndustry),
			models.FacetSubIndustry: exact(models.FacetSubIndustry),
			models.FacetRole:        exact(models.FacetRole),
		},
		SortValue,
		map[string]Comparator[models.CatalogItem]{
			SortValue:  BySemiNumericDesc(attr("value")),
			SortLatest: ByDateDesc(itemDate),
		}),
}

// ForKind 返回某个列表页的流程配置
func ForKind(kind models.Kind) (*CatalogPipeline, error) {
	p, ok := pages[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", models.ErrUnknownKind, kind)
	}
	return p, nil
}

func firstFacet(dim string) func(models.CatalogItem) string {
	return func(it models.CatalogItem) string {
		if values := it.Facets[dim]; len(values) > 0 {
			return values[0]
		}
		return ""
	}
}

// GroupClients 作战地图：按行业一级、二级分组
func GroupClients(items []models.CatalogItem, tree taxonomy.Tree) Grouped[models.CatalogItem] {
	return GroupByTaxonomy(items, tree, firstFacet(models.FacetIndustry), firstFacet(models.FacetSubIndustry))
}
