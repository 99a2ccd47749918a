// Package metrics 门户的Prometheus指标
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CatalogQueries 列表查询次数
	CatalogQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gtm_portal",
			Name:      "catalog_queries_total",
			Help:      "Total number of catalog list queries",
		},
		[]string{"kind", "view"},
	)

	// CatalogResultSize 每次查询返回的条目数
	CatalogResultSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "gtm_portal",
			Name:      "catalog_result_size",
			Help:      "Distribution of filtered result sizes",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250},
		},
		[]string{"kind"},
	)

	// Engagements 门户内产生的互动
	Engagements = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gtm_portal",
			Name:      "engagements_total",
			Help:      "Total number of recorded engagements",
		},
		[]string{"kind", "metric"},
	)

	// AssistantRequests 助手调用次数，outcome: structured/plain_text/unavailable/failed
	AssistantRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gtm_portal",
			Name:      "assistant_requests_total",
			Help:      "Total number of assistant requests",
		},
		[]string{"mode", "outcome"},
	)

	// AssistantDuration 外部模型调用耗时
	AssistantDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "gtm_portal",
			Name:      "assistant_duration_seconds",
			Help:      "Duration of generative model calls in seconds",
			Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 20, 40},
		},
		[]string{"mode"},
	)

	// CacheRefreshes 调度器刷新缓存次数
	CacheRefreshes = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "gtm_portal",
			Name:      "cache_refreshes_total",
			Help:      "Total number of scheduled catalog cache refreshes",
		},
	)
)

// RecordCatalogQuery 记录一次列表查询
func RecordCatalogQuery(kind, view string, size int) {
	CatalogQueries.WithLabelValues(kind, view).Inc()
	CatalogResultSize.WithLabelValues(kind).Observe(float64(size))
}

// RecordAssistant 记录一次助手调用
func RecordAssistant(mode, outcome string, seconds float64) {
	AssistantRequests.WithLabelValues(mode, outcome).Inc()
	if seconds > 0 {
		AssistantDuration.WithLabelValues(mode).Observe(seconds)
	}
}

// RecordEngagement 记录一次互动
func RecordEngagement(kind, metric string) {
	Engagements.WithLabelValues(kind, metric).Inc()
}
