package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"gtm_portal/config"
	"gtm_portal/db"
	"gtm_portal/logger"
	"gtm_portal/repository"
	"gtm_portal/services"
	"gtm_portal/taxonomy"
	"gtm_portal/utils"
)

// app 各子命令共享的依赖
type app struct {
	cfg        *config.Config
	tax        *taxonomy.Taxonomy
	provider   repository.CatalogProvider
	cached     *repository.CachedProvider // 仅 mysql 数据源
	engagement repository.EngagementStore
	catalog    *services.CatalogService
	knowledge  *services.KnowledgeService
	assistant  *services.AssistantService
	validator  *utils.Validator
	closers    []func()
}

func buildApp(ctx context.Context, cfg *config.Config) (*app, error) {
	a := &app{cfg: cfg, tax: taxonomy.Default(), validator: utils.NewValidator()}

	switch cfg.Catalog.Source {
	case "memory":
		a.provider = repository.NewMemoryProvider(nil)
		logger.Info("使用内置示例数据")
	case "mysql":
		conn, err := db.InitMySQLWithConfig(cfg)
		if err != nil {
			return nil, fmt.Errorf("init mysql: %w", err)
		}
		a.closers = append(a.closers, db.Close)
		logger.Info("MySQL连接成功",
			"max_open_conns", cfg.DB.MaxOpenConns,
			"max_idle_conns", cfg.DB.MaxIdleConns,
			"conn_max_lifetime", cfg.DB.ConnMaxLifetime)

		cached, err := repository.NewCachedProvider(repository.NewMySQLProvider(conn), cfg.Cache.Size)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("init cache: %w", err)
		}
		a.cached = cached
		a.provider = cached
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Catalog.Source)
	}

	a.engagement = newEngagementStore(ctx, cfg, a)

	a.catalog = services.NewCatalogService(a.provider, a.engagement, a.tax)
	a.knowledge = services.NewKnowledgeService(a.provider, a.tax, cfg.Assistant.SnapshotMaxItems)
	a.assistant = services.NewAssistantService(cfg, services.NewGeminiModel(cfg), a.knowledge, a.validator, utils.NewSanitizer())
	return a, nil
}

// newEngagementStore 配置了Redis且可连接时使用Redis，否则退回进程内计数
func newEngagementStore(ctx context.Context, cfg *config.Config, a *app) repository.EngagementStore {
	if cfg.Redis.Addr == "" {
		return repository.NewMemoryEngagementStore()
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		logger.Warn("Redis不可用，互动计数仅保存在内存中", "addr", cfg.Redis.Addr, "error", err)
		_ = rdb.Close()
		return repository.NewMemoryEngagementStore()
	}

	a.closers = append(a.closers, func() { _ = rdb.Close() })
	logger.Info("Redis连接成功", "addr", cfg.Redis.Addr)
	return repository.NewRedisEngagementStore(rdb)
}

// Close 释放连接，逆序执行
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}
