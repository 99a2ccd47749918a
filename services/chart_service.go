package services

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"gtm_portal/models"
)

const (
	chartWidth  = 800
	chartHeight = 400
)

// ErrEmptyChart 图表没有数据点
var ErrEmptyChart = errors.New("chart has no data points")

// ChartService 把助手返回的图表数据渲染为PNG
type ChartService struct{}

func NewChartService() *ChartService {
	return &ChartService{}
}

// Render 按 spec.Type 渲染 bar/pie/line
func (c *ChartService) Render(spec models.ChartSpec) ([]byte, error) {
	if len(spec.Data) == 0 {
		return nil, ErrEmptyChart
	}

	var (
		buf bytes.Buffer
		err error
	)
	switch spec.Type {
	case "bar":
		err = renderBar(spec, &buf)
	case "pie":
		err = renderPie(spec, &buf)
	case "line":
		err = renderLine(spec, &buf)
	default:
		return nil, fmt.Errorf("unsupported chart type %q", spec.Type)
	}
	if err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}

func chartValues(spec models.ChartSpec) []chart.Value {
	values := make([]chart.Value, len(spec.Data))
	for i, p := range spec.Data {
		values[i] = chart.Value{Label: p.Name, Value: p.Value}
	}
	return values
}

// valueRange 包含0的Y轴范围，避免只有一个值时范围为零
func valueRange(spec models.ChartSpec) *chart.ContinuousRange {
	lo, hi := 0.0, 0.0
	for _, p := range spec.Data {
		lo = min(lo, p.Value)
		hi = max(hi, p.Value)
	}
	if hi == lo {
		hi = lo + 1
	}
	return &chart.ContinuousRange{Min: lo, Max: hi}
}

func renderBar(spec models.ChartSpec, buf *bytes.Buffer) error {
	graph := chart.BarChart{
		Title:  spec.Title,
		Width:  chartWidth,
		Height: chartHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		YAxis:    chart.YAxis{Range: valueRange(spec)},
		BarWidth: 40,
		Bars:     chartValues(spec),
	}
	return graph.Render(chart.PNG, buf)
}

func renderPie(spec models.ChartSpec, buf *bytes.Buffer) error {
	total := 0.0
	for _, p := range spec.Data {
		if p.Value < 0 {
			return fmt.Errorf("pie chart value for %q is negative", p.Name)
		}
		total += p.Value
	}
	if total == 0 {
		return errors.New("pie chart values sum to zero")
	}

	graph := chart.PieChart{
		Title:  spec.Title,
		Width:  chartHeight,
		Height: chartHeight,
		Values: chartValues(spec),
	}
	return graph.Render(chart.PNG, buf)
}

func renderLine(spec models.ChartSpec, buf *bytes.Buffer) error {
	if len(spec.Data) < 2 {
		return fmt.Errorf("line chart needs at least 2 points, got %d", len(spec.Data))
	}

	xValues := make([]float64, len(spec.Data))
	yValues := make([]float64, len(spec.Data))
	ticks := make([]chart.Tick, len(spec.Data))
	for i, p := range spec.Data {
		xValues[i] = float64(i)
		yValues[i] = p.Value
		ticks[i] = chart.Tick{Value: float64(i), Label: p.Name}
	}

	graph := chart.Chart{
		Title:  spec.Title,
		Width:  chartWidth,
		Height: chartHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{Ticks: ticks},
		YAxis: chart.YAxis{Range: valueRange(spec)},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name: spec.Title,
				Style: chart.Style{
					StrokeColor: drawing.ColorFromHex("2563eb"),
					StrokeWidth: 2.5,
				},
				XValues: xValues,
				YValues: yValues,
			},
		},
	}
	return graph.Render(chart.PNG, buf)
}
