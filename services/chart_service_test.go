package services

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gtm_portal/models"
)

var pngMagic = []byte("\x89PNG")

func TestRenderChartTypes(t *testing.T) {
	data := []models.ChartPoint{{Name: "Q1", Value: 120}, {Name: "Q2", Value: 80}, {Name: "Q3", Value: 150}}
	svc := NewChartService()

	for _, typ := range []string{"bar", "pie", "line"} {
		t.Run(typ, func(t *testing.T) {
			png, err := svc.Render(models.ChartSpec{Type: typ, Title: "季度签约", Data: data})
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(png, pngMagic))
		})
	}
}

func TestRenderSingleBar(t *testing.T) {
	png, err := NewChartService().Render(models.ChartSpec{Type: "bar", Data: []models.ChartPoint{{Name: "A", Value: 5}}})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic))
}

func TestRenderRejectsBadInput(t *testing.T) {
	svc := NewChartService()

	_, err := svc.Render(models.ChartSpec{Type: "bar"})
	assert.ErrorIs(t, err, ErrEmptyChart)

	_, err = svc.Render(models.ChartSpec{Type: "radar", Data: []models.ChartPoint{{Name: "A", Value: 1}}})
	assert.Error(t, err)

	_, err = svc.Render(models.ChartSpec{Type: "line", Data: []models.ChartPoint{{Name: "A", Value: 1}}})
	assert.Error(t, err)

	_, err = svc.Render(models.ChartSpec{Type: "pie", Data: []models.ChartPoint{{Name: "A", Value: 0}}})
	assert.Error(t, err)
}
