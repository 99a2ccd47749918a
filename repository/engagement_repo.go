package repository

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/redis/go-redis/v9"

	"gtm_portal/models"
)

// EngagementStore 记录门户内产生的互动增量（点赞、收藏、下载等）。
// 展示时与数据源中外部统计的指标相加。
type EngagementStore interface {
	Incr(ctx context.Context, kind models.Kind, id, metric string) (int, error)
	Deltas(ctx context.Context, kind models.Kind, ids []string) (map[string]map[string]int, error)
}

// MemoryEngagementStore 进程内计数，未配置Redis时使用
type MemoryEngagementStore struct {
	mu     sync.Mutex
	counts map[string]map[string]int
}

func NewMemoryEngagementStore() *MemoryEngagementStore {
	return &MemoryEngagementStore{counts: make(map[string]map[string]int)}
}

func (m *MemoryEngagementStore) Incr(_ context.Context, kind models.Kind, id, metric string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := engagementKey(kind, id)
	if m.counts[key] == nil {
		m.counts[key] = make(map[string]int)
	}
	m.counts[key][metric]++
	return m.counts[key][metric], nil
}

func (m *MemoryEngagementStore) Deltas(_ context.Context, kind models.Kind, ids []string) (map[string]map[string]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make(map[string]map[string]int)
	for _, id := range ids {
		counts, ok := m.counts[engagementKey(kind, id)]
		if !ok {
			continue
		}
		delta := make(map[string]int, len(counts))
		for k, v := range counts {
			delta[k] = v
		}
		out[id] = delta
	}
	return out, nil
}

// RedisEngagementStore 每个条目一个hash：engagement:{kind}:{id} -> metric:count
type RedisEngagementStore struct {
	rdb *redis.Client
}

func NewRedisEngagementStore(rdb *redis.Client) *RedisEngagementStore {
	return &RedisEngagementStore{rdb: rdb}
}

func (r *RedisEngagementStore) Incr(ctx context.Context, kind models.Kind, id, metric string) (int, error) {
	n, err := r.rdb.HIncrBy(ctx, engagementKey(kind, id), metric, 1).Result()
	if err != nil {
		return 0, fmt.Errorf("redis hincrby: %w", err)
	}
	return int(n), nil
}

func (r *RedisEngagementStore) Deltas(ctx context.Context, kind models.Kind, ids []string) (map[string]map[string]int, error) {
	if len(ids) == 0 {
		return map[string]map[string]int{}, nil
	}

	pipe := r.rdb.Pipeline()
	cmds := make([]*redis.MapStringStringCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.HGetAll(ctx, engagementKey(kind, id))
	}
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("redis pipeline: %w", err)
	}

	out := make(map[string]map[string]int)
	for i, cmd := range cmds {
		values, err := cmd.Result()
		if err != nil || len(values) == 0 {
			continue
		}
		delta := make(map[string]int, len(values))
		for metric, raw := range values {
			if n, err := strconv.Atoi(raw); err == nil {
				delta[metric] = n
			}
		}
		out[ids[i]] = delta
	}
	return out, nil
}

func engagementKey(kind models.Kind, id string) string {
	return "engagement:" + string(kind) + ":" + id
}
