package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gtm_portal/config"
)

type countingPurger struct{ n atomic.Int32 }

func (c *countingPurger) Purge() { c.n.Add(1) }

type countingWarmer struct {
	n   atomic.Int32
	err error
}

func (c *countingWarmer) Snapshot(context.Context) (string, error) {
	c.n.Add(1)
	return "snapshot", c.err
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Scheduler.CheckIntervalSec = 1
	cfg.Scheduler.CatalogRefreshSec = 60
	return cfg
}

func TestCatalogRefreshRunsWhenDue(t *testing.T) {
	purger := &countingPurger{}
	warmer := &countingWarmer{}
	s := NewScheduler(testConfig(), purger, warmer)

	start := time.Date(2025, 12, 1, 10, 0, 0, 0, time.UTC)
	s.initTasks(start)

	// 未到期
	s.checkTasks(context.Background(), start.Add(30*time.Second))
	s.wg.Wait()
	assert.Equal(t, int32(0), purger.n.Load())

	due := start.Add(60 * time.Second)
	s.checkTasks(context.Background(), due)
	s.wg.Wait()

	assert.Equal(t, int32(1), purger.n.Load())
	assert.Equal(t, int32(1), warmer.n.Load())

	status := s.Status()[TaskCatalogRefresh]
	assert.False(t, status.IsRunning)
	assert.Equal(t, due, status.LastRun)
	assert.Equal(t, due.Add(60*time.Second), status.NextRun)
}

func TestWarmFailureStillReschedules(t *testing.T) {
	purger := &countingPurger{}
	s := NewScheduler(testConfig(), purger, &countingWarmer{err: errors.New("db down")})

	start := time.Now()
	s.initTasks(start)
	s.checkTasks(context.Background(), start.Add(time.Hour))
	s.wg.Wait()

	assert.Equal(t, int32(1), purger.n.Load())
	assert.False(t, s.Status()[TaskCatalogRefresh].IsRunning)
}

func TestNoCacheRegistersNoTask(t *testing.T) {
	s := NewScheduler(testConfig(), nil, nil)
	s.initTasks(time.Now())

	assert.Empty(t, s.Status())
}

func TestStartStopsWithContext(t *testing.T) {
	purger := &countingPurger{}
	cfg := testConfig()
	cfg.Scheduler.CatalogRefreshSec = 0
	s := NewScheduler(cfg, purger, nil)

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)

	require.Eventually(t, func() bool { return purger.n.Load() >= 1 }, 5*time.Second, 50*time.Millisecond)
	cancel()
}
