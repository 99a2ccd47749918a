package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gtm_portal/config"
	"gtm_portal/models"
)

func TestParseFacetFlags(t *testing.T) {
	sel, err := parseFacetFlags([]string{"industry=大制造, 金融", "industry=能源", "role=销售"})
	require.NoError(t, err)
	assert.Equal(t, []string{"大制造", "金融", "能源"}, sel["industry"])
	assert.Equal(t, []string{"销售"}, sel["role"])

	_, err = parseFacetFlags([]string{"industry"})
	assert.Error(t, err)
	_, err = parseFacetFlags([]string{"=金融"})
	assert.Error(t, err)
}

func TestPrintPage(t *testing.T) {
	var buf bytes.Buffer
	err := printPage(&buf, models.CatalogPage{
		Kind:  models.KindReview,
		Sort:  "dealSize",
		Total: 1,
		Items: []models.CatalogItem{{ID: "rev-003", Title: "复盘", Date: "2025-10-20", Metrics: map[string]int{"views": 3, "likes": 1}}},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "共1条")
	assert.Contains(t, out, "rev-003")
	assert.Contains(t, out, "likes=1 views=3")
}

func TestBuildAppMemorySource(t *testing.T) {
	cfg := &config.Config{}
	cfg.Catalog.Source = "memory"

	a, err := buildApp(context.Background(), cfg)
	require.NoError(t, err)
	defer a.Close()

	assert.Nil(t, a.cached)
	page, err := a.catalog.List(context.Background(), models.KindReview, models.CatalogQuery{Sort: "dealSize"})
	require.NoError(t, err)
	assert.Equal(t, "rev-003", page.Items[0].ID)
}

func TestBuildAppUnknownSource(t *testing.T) {
	cfg := &config.Config{}
	cfg.Catalog.Source = "mongo"

	_, err := buildApp(context.Background(), cfg)
	assert.Error(t, err)
}
