package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gtm_portal/models"
	"gtm_portal/repository"
	"gtm_portal/taxonomy"
)

func newTestCatalog() *CatalogService {
	return NewCatalogService(repository.NewMemoryProvider(nil), repository.NewMemoryEngagementStore(), taxonomy.Default())
}

func itemIDs(items []models.CatalogItem) []string {
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ids
}

func TestCatalogListFiltersAndSorts(t *testing.T) {
	svc := newTestCatalog()

	page, err := svc.List(context.Background(), models.KindSolution, models.CatalogQuery{
		Selections: models.FacetSelection{models.FacetIndustry: {"大制造"}},
	})
	require.NoError(t, err)

	assert.Equal(t, "latest", page.Sort)
	assert.Equal(t, []string{"sol-001", "sol-003"}, itemIDs(page.Items))
	assert.Equal(t, 2, page.Total)
}

func TestCatalogListEmptyResult(t *testing.T) {
	page, err := newTestCatalog().List(context.Background(), models.KindCase, models.CatalogQuery{Text: "不存在的关键词"})
	require.NoError(t, err)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
}

func TestCatalogListUnknownKind(t *testing.T) {
	_, err := newTestCatalog().List(context.Background(), "news", models.CatalogQuery{})
	assert.ErrorIs(t, err, models.ErrUnknownKind)
}

func TestEngageIsSummedIntoMetrics(t *testing.T) {
	svc := newTestCatalog()
	ctx := context.Background()

	before, err := svc.Get(ctx, models.KindSolution, "sol-004")
	require.NoError(t, err)

	for i := 0; i < 30; i++ {
		_, err = svc.Engage(ctx, models.KindSolution, "sol-004", models.MetricLikes)
		require.NoError(t, err)
	}
	after, err := svc.Get(ctx, models.KindSolution, "sol-004")
	require.NoError(t, err)
	assert.Equal(t, before.Metrics[models.MetricLikes]+30, after.Metrics[models.MetricLikes])

	// 增量参与排序：sol-004 从18升到48
	page, err := svc.List(ctx, models.KindSolution, models.CatalogQuery{Sort: "likes"})
	require.NoError(t, err)
	assert.Equal(t, []string{"sol-002", "sol-004", "sol-001", "sol-003"}, itemIDs(page.Items))
}

func TestEngageErrors(t *testing.T) {
	svc := newTestCatalog()
	ctx := context.Background()

	_, err := svc.Engage(ctx, models.KindSolution, "sol-001", "shares")
	assert.Error(t, err)

	_, err = svc.Engage(ctx, models.KindSolution, "sol-404", models.MetricLikes)
	assert.ErrorIs(t, err, models.ErrItemNotFound)

	_, err = svc.Engage(ctx, "news", "sol-001", models.MetricLikes)
	assert.ErrorIs(t, err, models.ErrUnknownKind)
}

func TestBattlemapGroupsByIndustry(t *testing.T) {
	bm, err := newTestCatalog().Battlemap(context.Background(), models.CatalogQuery{})
	require.NoError(t, err)

	assert.Equal(t, "value", bm.Sort)
	assert.Equal(t, 4, bm.Total)
	require.Len(t, bm.Sections, 3)

	assert.Equal(t, "大制造", bm.Sections[0].Label)
	assert.Equal(t, 2, bm.Sections[0].Total)
	require.Len(t, bm.Sections[0].Groups, 2)
	assert.Equal(t, "汽车产业链", bm.Sections[0].Groups[0].Label)
	assert.Equal(t, "装备制造", bm.Sections[0].Groups[1].Label)

	assert.Equal(t, "金融", bm.Sections[1].Label)
	assert.Equal(t, "能源", bm.Sections[2].Label)
}

func TestBattlemapFiltered(t *testing.T) {
	bm, err := newTestCatalog().Battlemap(context.Background(), models.CatalogQuery{
		Selections: models.FacetSelection{models.FacetIndustry: {"金融"}},
	})
	require.NoError(t, err)

	require.Len(t, bm.Sections, 1)
	assert.Equal(t, "金融", bm.Sections[0].Label)
	assert.Equal(t, "cli-002", bm.Sections[0].Groups[0].Items[0].ID)
}
