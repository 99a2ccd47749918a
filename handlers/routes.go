package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/time/rate"

	"gtm_portal/config"
	_ "gtm_portal/docs" // 导入 swagger 文档
	"gtm_portal/services"
	"gtm_portal/taxonomy"
	"gtm_portal/utils"
)

// Deps 路由依赖的服务
type Deps struct {
	Config    *config.Config
	Catalog   services.Catalog
	Assistant services.Assistant
	Charts    *services.ChartService
	Taxonomy  *taxonomy.Taxonomy
	Validator *utils.Validator
}

// RegisterRoutes 注册所有路由，返回助手接口使用的限流器
func RegisterRoutes(r *chi.Mux, d Deps) *RateLimiter {
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"), // Swagger JSON 的 URL
	))
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/api/taxonomy", func(w http.ResponseWriter, r *http.Request) {
		TaxonomyHandler(w, r, d)
	})

	r.Get("/api/catalog/{kind}", func(w http.ResponseWriter, r *http.Request) {
		ListCatalogHandler(w, r, d)
	})
	r.Get("/api/catalog/{kind}/{id}", func(w http.ResponseWriter, r *http.Request) {
		GetCatalogItemHandler(w, r, d)
	})
	r.Post("/api/catalog/{kind}/{id}/engage", func(w http.ResponseWriter, r *http.Request) {
		EngageHandler(w, r, d)
	})
	r.Get("/api/battlemap", func(w http.ResponseWriter, r *http.Request) {
		BattlemapHandler(w, r, d)
	})

	// 助手接口每次都会调用外部模型，按IP限流
	limiter := NewRateLimiter(rate.Limit(d.Config.RateLimit.PerSecond), d.Config.RateLimit.Burst)
	r.Group(func(r chi.Router) {
		r.Use(limiter.Middleware)

		r.Post("/api/assistant/chat", func(w http.ResponseWriter, r *http.Request) {
			ChatHandler(w, r, d)
		})
		r.Post("/api/assistant/import", func(w http.ResponseWriter, r *http.Request) {
			ImportHandler(w, r, d)
		})
		r.Post("/api/assistant/polish", func(w http.ResponseWriter, r *http.Request) {
			PolishHandler(w, r, d)
		})
		r.Post("/api/assistant/chart", func(w http.ResponseWriter, r *http.Request) {
			ChartHandler(w, r, d)
		})
	})
	return limiter
}
