package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"gtm_portal/handlers"
	"gtm_portal/logger"
	"gtm_portal/scheduler"
	"gtm_portal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "启动HTTP服务",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	// 初始化日志系统
	if err := logger.Init(cfg); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	logger.Info("日志系统初始化成功", "level", cfg.Log.Level, "format", cfg.Log.Format, "output", cfg.Log.Output)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := buildApp(ctx, cfg)
	if err != nil {
		logger.Error("初始化失败", "error", err)
		return err
	}
	defer a.Close()

	if cfg.Gemini.APIKey == "" {
		logger.Warn("未配置 GEMINI_API_KEY，AI助手将返回不可用提示")
	}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	limiter := handlers.RegisterRoutes(r, handlers.Deps{
		Config:    cfg,
		Catalog:   a.catalog,
		Assistant: a.assistant,
		Charts:    services.NewChartService(),
		Taxonomy:  a.tax,
		Validator: a.validator,
	})
	defer limiter.Stop()

	// 内存数据源没有缓存，不需要刷新任务
	var purger scheduler.Purger
	if a.cached != nil {
		purger = a.cached
	}
	scheduler.NewScheduler(cfg, purger, a.knowledge).Start(ctx)

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              serverAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("服务器启动", "address", serverAddr)
		logger.Info("Swagger文档可访问", "url", fmt.Sprintf("http://%s/swagger/index.html", serverAddr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("服务器异常退出", "error", err)
			return err
		}
	case <-ctx.Done():
		logger.Info("收到退出信号，正在关闭服务器")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("关闭服务器失败", "error", err)
			return err
		}
	}
	return nil
}
