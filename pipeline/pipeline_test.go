package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gtm_portal/models"
)

func item(id, title, date string, facets map[string][]string, metrics map[string]int) models.CatalogItem {
	return models.CatalogItem{ID: id, Title: title, Summary: title + " 概述", Date: date, Facets: facets, Metrics: metrics}
}

func ids(items []models.CatalogItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func solutionFixtures() []models.CatalogItem {
	return []models.CatalogItem{
		item("s1", "汽车供应链质检方案", "2025-10-01",
			map[string][]string{"industry": {"大制造", "汽车产业链"}, "scene": {"质量检测"}, "role": {"售前"}},
			map[string]int{"likes": 10, "comments": 5}),
		item("s2", "银行智能客服", "2025-11-15",
			map[string][]string{"industry": {"金融", "银行"}, "scene": {"智能客服"}, "role": {"销售"}},
			map[string]int{"likes": 12, "comments": 0}),
		item("s3", "企业知识库通用方案", "2025-09-20",
			map[string][]string{"industry": {"通用"}, "scene": {"研发知识管理"}, "role": {"售前", "交付"}},
			map[string]int{"likes": 3, "comments": 1}),
	}
}

func solutions(t *testing.T) *CatalogPipeline {
	t.Helper()
	p, err := ForKind(models.KindSolution)
	require.NoError(t, err)
	return p
}

func TestEmptyQueryReturnsAllItemsSortedOnly(t *testing.T) {
	p := solutions(t)
	items := solutionFixtures()

	out := p.Run(items, Query{Sort: SortLatest})

	assert.Equal(t, []string{"s2", "s1", "s3"}, ids(out))
	assert.Equal(t, []string{"s1", "s2", "s3"}, ids(items), "input must not be reordered")
}

func TestFacetSelectionIncludesAndExcludes(t *testing.T) {
	p := solutions(t)
	items := solutionFixtures()[:1]

	included := p.Run(items, Query{Selections: map[string][]string{"industry": {"大制造"}}})
	assert.Equal(t, []string{"s1"}, ids(included))

	excluded := p.Run(items, Query{Selections: map[string][]string{"industry": {"金融"}}})
	assert.Empty(t, excluded)
}

func TestFacetsCombineWithAndWithinOr(t *testing.T) {
	p := solutions(t)
	items := solutionFixtures()[:2]

	out := p.Run(items, Query{Selections: map[string][]string{
		"industry": {"大制造", "金融"},
		"role":     {"销售"},
	}})

	require.Len(t, out, 1)
	assert.Equal(t, "s2", out[0].ID)
	for _, it := range out {
		assert.Contains(t, it.Facets["industry"], "金融")
		assert.Contains(t, it.Facets["role"], "销售")
	}
}

func TestGeneralSentinelMatchesAnyIndustry(t *testing.T) {
	p := solutions(t)

	out := p.Run(solutionFixtures(), Query{Selections: map[string][]string{"industry": {"能源"}}})

	assert.Equal(t, []string{"s3"}, ids(out))
}

func TestEmptySelectionSetImposesNoConstraint(t *testing.T) {
	p := solutions(t)

	out := p.Run(solutionFixtures(), Query{Selections: map[string][]string{"industry": {}, "role": nil}})

	assert.Len(t, out, 3)
}

func TestUnknownDimensionMatchesNothing(t *testing.T) {
	p := solutions(t)

	out := p.Run(solutionFixtures(), Query{Selections: map[string][]string{"budget": {"高"}}})

	assert.Empty(t, out)
}

func TestTextQueryIsCaseInsensitive(t *testing.T) {
	p := solutions(t)
	items := []models.CatalogItem{
		item("a", "ABC Platform", "2025-01-01", nil, nil),
		item("b", "abc toolkit", "2025-01-02", nil, nil),
		item("c", "other", "2025-01-03", nil, nil),
	}

	lower := p.Run(items, Query{Text: "abc"})
	upper := p.Run(items, Query{Text: "ABC"})

	assert.Equal(t, ids(lower), ids(upper))
	assert.ElementsMatch(t, []string{"a", "b"}, ids(lower))
}

func TestTextQueryMatchesTags(t *testing.T) {
	p := solutions(t)

	out := p.Run(solutionFixtures(), Query{Text: "汽车"})
	assert.Equal(t, []string{"s1"}, ids(out))

	out = p.Run(solutionFixtures(), Query{Text: "交付"})
	assert.Equal(t, []string{"s3"}, ids(out))
}

func TestTagMatchDirections(t *testing.T) {
	it := item("x", "无关标题", "2025-01-01", map[string][]string{"industry": {"银行"}}, nil)
	base := Pipeline[models.CatalogItem]{Text: itemText, Tags: itemTags}

	base.TagMatch = QueryInTag
	assert.Len(t, base.Run([]models.CatalogItem{it}, Query{Text: "银"}), 1)
	assert.Empty(t, base.Run([]models.CatalogItem{it}, Query{Text: "招商银行"}))

	base.TagMatch = TagInQuery
	assert.Empty(t, base.Run([]models.CatalogItem{it}, Query{Text: "银"}))
	assert.Len(t, base.Run([]models.CatalogItem{it}, Query{Text: "招商银行"}), 1)

	base.TagMatch = EitherWay
	assert.Len(t, base.Run([]models.CatalogItem{it}, Query{Text: "银"}), 1)
	assert.Len(t, base.Run([]models.CatalogItem{it}, Query{Text: "招商银行"}), 1)
}

func TestHeatSort(t *testing.T) {
	p := solutions(t)
	items := []models.CatalogItem{
		item("B", "b", "2025-01-01", nil, map[string]int{"likes": 12, "comments": 0}),
		item("A", "a", "2025-01-01", nil, map[string]int{"likes": 10, "comments": 5}),
	}

	out := p.Run(items, Query{Sort: SortHot})

	assert.Equal(t, 20, HeatScore(10, 5, 2))
	assert.Equal(t, 12, HeatScore(12, 0, 2))
	assert.Equal(t, []string{"A", "B"}, ids(out))
}

func TestSortIsStableAndIdempotent(t *testing.T) {
	p := solutions(t)
	items := []models.CatalogItem{
		item("1", "t", "2025-05-01", nil, map[string]int{"likes": 1}),
		item("2", "t", "2025-05-01", nil, map[string]int{"likes": 1}),
		item("3", "t", "2025-06-01", nil, map[string]int{"likes": 1}),
		item("4", "t", "2025-05-01", nil, map[string]int{"likes": 1}),
	}

	once := p.Run(items, Query{Sort: SortLatest})
	twice := p.Run(once, Query{Sort: SortLatest})

	assert.Equal(t, []string{"3", "1", "2", "4"}, ids(once))
	assert.Equal(t, ids(once), ids(twice))
}

func TestUnknownSortFallsBackToDefault(t *testing.T) {
	p := solutions(t)

	assert.Equal(t, SortLatest, p.SortKey("bogus"))
	assert.Equal(t, SortHot, p.SortKey(SortHot))
	assert.Equal(t, []string{SortLatest, SortHot, SortLikes}, p.SortKeys())
}

func TestReviewsSortByDateDescending(t *testing.T) {
	p, err := ForKind(models.KindReview)
	require.NoError(t, err)
	items := []models.CatalogItem{
		item("older", "复盘A", "2025-11-01", nil, nil),
		item("newer", "复盘B", "2025-12-01", nil, nil),
	}

	out := p.Run(items, Query{Sort: SortLatest})

	assert.Equal(t, []string{"newer", "older"}, ids(out))
}

func TestReviewsSortByDealSize(t *testing.T) {
	p, err := ForKind(models.KindReview)
	require.NoError(t, err)
	items := []models.CatalogItem{
		{ID: "small", Attrs: map[string]string{"dealSize": "¥980万"}},
		{ID: "large", Attrs: map[string]string{"dealSize": "¥1,200万"}},
		{ID: "none", Attrs: map[string]string{"dealSize": "待定"}},
	}

	out := p.Run(items, Query{Sort: SortDealSize})

	assert.Equal(t, []string{"large", "small", "none"}, ids(out))
}

func TestEmptyCatalogNeverFails(t *testing.T) {
	for _, kind := range models.AllKinds {
		p, err := ForKind(kind)
		require.NoError(t, err)

		out := p.Run(nil, Query{Text: "x", Selections: map[string][]string{"industry": {"金融"}}, Sort: "hot"})
		assert.NotNil(t, out)
		assert.Empty(t, out)
	}
}

func TestForKindUnknown(t *testing.T) {
	_, err := ForKind("news")
	assert.ErrorIs(t, err, models.ErrUnknownKind)
}

func TestCompareSemiNumeric(t *testing.T) {
	assert.Equal(t, 1, CompareSemiNumeric("¥1,200万", "980万"))
	assert.Equal(t, 0, CompareSemiNumeric("007", "7"))
	assert.Equal(t, -1, CompareSemiNumeric("", "1"))
	assert.Equal(t, 1, CompareSemiNumeric("99999999999999999999999", "1"))
	assert.Equal(t, "1200", Digits("¥1,200万"))
}

func TestByDateDescHandlesLooseDates(t *testing.T) {
	cmp := ByDateDesc(func(s string) string { return s })

	assert.Less(t, cmp("2025-12-1", "2025-11-30"), 0)
	assert.Greater(t, cmp("2025/01/02", "2025-03-01"), 0)
	assert.Equal(t, 0, cmp("2025-01-01", "2025-1-1"))
}

func TestWildcardInSubstringFacet(t *testing.T) {
	p, err := ForKind(models.KindApp)
	require.NoError(t, err)
	items := []models.CatalogItem{
		{ID: "bot", Facets: map[string][]string{"scene": {"营销服务/智能客服"}, "role": {"通用"}}},
		{ID: "qc", Facets: map[string][]string{"scene": {"生产制造/质量检测"}, "role": {"交付"}}},
	}

	out := p.Run(items, Query{Selections: map[string][]string{"scene": {"智能客服"}, "role": {"销售"}}})

	assert.Equal(t, []string{"bot"}, ids(out))
}
