package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"gtm_portal/config"
	"gtm_portal/logger"
	"gtm_portal/metrics"
)

// 预热快照的超时
const warmTimeout = 30 * time.Second

// 将秒数转换为时间间隔
func secondsToDuration(seconds int) time.Duration {
	return time.Duration(seconds) * time.Second
}

// Purger 可清空的缓存
type Purger interface {
	Purge()
}

// Warmer 清空缓存后重新加载数据
type Warmer interface {
	Snapshot(ctx context.Context) (string, error)
}

// 任务类型
type TaskType int

const (
	TaskCatalogRefresh TaskType = iota
)

// 任务状态
type TaskStatus struct {
	LastRun     time.Time
	NextRun     time.Time
	IsRunning   bool
	Description string
}

// 任务调度器
type Scheduler struct {
	cfg    *config.Config
	cache  Purger
	warmer Warmer
	tasks  map[TaskType]*TaskStatus
	mutex  sync.Mutex
	wg     sync.WaitGroup
}

// NewScheduler cache 为nil时（内存数据源）不注册刷新任务
func NewScheduler(cfg *config.Config, cache Purger, warmer Warmer) *Scheduler {
	return &Scheduler{
		cfg:    cfg,
		cache:  cache,
		warmer: warmer,
		tasks:  make(map[TaskType]*TaskStatus),
	}
}

// Start 初始化任务并启动主循环，ctx 取消后退出
func (s *Scheduler) Start(ctx context.Context) {
	s.initTasks(time.Now())

	go s.run(ctx)

	logger.Info("调度器已启动", "check_interval_sec", s.cfg.Scheduler.CheckIntervalSec)
}

// 初始化任务
func (s *Scheduler) initTasks(now time.Time) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.cache != nil {
		interval := secondsToDuration(s.cfg.Scheduler.CatalogRefreshSec)
		s.tasks[TaskCatalogRefresh] = &TaskStatus{
			LastRun:     now,
			NextRun:     now.Add(interval),
			Description: fmt.Sprintf("类目缓存刷新 (每%d秒)", s.cfg.Scheduler.CatalogRefreshSec),
		}
	}

	logger.Info("定时任务初始化完成", "task_count", len(s.tasks))
}

// 主循环
func (s *Scheduler) run(ctx context.Context) {
	ticker := time.NewTicker(secondsToDuration(s.cfg.Scheduler.CheckIntervalSec))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.wg.Wait()
			logger.Info("调度器已停止")
			return
		case now := <-ticker.C:
			s.checkTasks(ctx, now)
		}
	}
}

// 检查任务
func (s *Scheduler) checkTasks(ctx context.Context, now time.Time) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for taskType, status := range s.tasks {
		// 如果任务正在运行，跳过
		if status.IsRunning {
			continue
		}

		// 如果任务的NextRun为零值，跳过（表示不需要定期调度）
		if status.NextRun.IsZero() {
			continue
		}

		// 如果到达或超过下次运行时间，执行任务
		if !now.Before(status.NextRun) {
			status.IsRunning = true
			s.wg.Add(1)
			go s.runTask(ctx, taskType, now)
		}
	}
}

// 运行任务
func (s *Scheduler) runTask(ctx context.Context, taskType TaskType, now time.Time) {
	defer s.wg.Done()
	defer func() {
		s.mutex.Lock()
		defer s.mutex.Unlock()

		status := s.tasks[taskType]
		status.IsRunning = false
		status.LastRun = now

		// 更新下次运行时间
		switch taskType {
		case TaskCatalogRefresh:
			status.NextRun = now.Add(secondsToDuration(s.cfg.Scheduler.CatalogRefreshSec))
		}

		logger.Info("任务执行完成", "task", status.Description, "next_run", status.NextRun.Format("2006-01-02 15:04:05"))
	}()

	switch taskType {
	case TaskCatalogRefresh:
		s.refreshCatalog(ctx)
	}
}

// refreshCatalog 清空类目缓存并重新生成知识库快照，让下一次请求命中新数据
func (s *Scheduler) refreshCatalog(ctx context.Context) {
	s.cache.Purge()
	metrics.CacheRefreshes.Inc()

	if s.warmer == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, warmTimeout)
	defer cancel()

	snapshot, err := s.warmer.Snapshot(ctx)
	if err != nil {
		logger.Error("预热知识库快照失败", "error", err)
		return
	}
	logger.Info("知识库快照已预热", "size", len(snapshot))
}

// Status 返回任务状态的副本
func (s *Scheduler) Status() map[TaskType]TaskStatus {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	out := make(map[TaskType]TaskStatus, len(s.tasks))
	for k, v := range s.tasks {
		out[k] = *v
	}
	return out
}
