package repository

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Metrics stores API metrics in Redis. A nil *Metrics records nothing.
type Metrics struct {
	client *redis.Client
}

// APIStats represents statistics for an API endpoint
type APIStats struct {
	Path         string  `json:"path"`
	TotalCalls   int64   `json:"total_calls"`
	SuccessCalls int64   `json:"success_calls"`
	ErrorCalls   int64   `json:"error_calls"`
	AvgLatencyMs float64 `json:"avg_latency_ms"`
	CacheHits    int64   `json:"cache_hits"`
	CacheMisses  int64   `json:"cache_misses"`
}

// OverallStats represents overall system statistics
type OverallStats struct {
	TotalAPICalls int64      `json:"total_api_calls"`
	AvgLatencyMs  float64    `json:"avg_latency_ms"`
	CacheHitRate  float64    `json:"cache_hit_rate"`
	ErrorRate     float64    `json:"error_rate"`
	TopEndpoints  []APIStats `json:"top_endpoints"`
	Uptime        int64      `json:"uptime_seconds"`
}

// NewMetrics creates a new Metrics instance
func NewMetrics(redisURL string) (*Metrics, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)
	return &Metrics{client: client}, nil
}

// RecordAPICall records an API call
func (m *Metrics) RecordAPICall(ctx context.Context, path string, statusCode int, latencyMs float64, cacheHit bool) error {
	if m == nil {
		return nil
	}

	pipe := m.client.Pipeline()

	pathKey := fmt.Sprintf("metrics:path:%s", path)
	pipe.HIncrBy(ctx, pathKey, "total", 1)
	pipe.HIncrByFloat(ctx, pathKey, "latency_sum", latencyMs)

	if statusCode >= 200 && statusCode < 400 {
		pipe.HIncrBy(ctx, pathKey, "success", 1)
	} else {
		pipe.HIncrBy(ctx, pathKey, "error", 1)
	}

	if cacheHit {
		pipe.HIncrBy(ctx, pathKey, "cache_hits", 1)
	} else {
		pipe.HIncrBy(ctx, pathKey, "cache_misses", 1)
	}

	pipe.Incr(ctx, "metrics:global:total")
	pipe.IncrByFloat(ctx, "metrics:global:latency_sum", latencyMs)
	pipe.SAdd(ctx, "metrics:paths", path)

	_, err := pipe.Exec(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to record metrics")
	}
	return err
}

// GetAPIStats gets statistics for a specific API path
func (m *Metrics) GetAPIStats(ctx context.Context, path string) (*APIStats, error) {
	if m == nil {
		return &APIStats{Path: path}, nil
	}

	pathKey := fmt.Sprintf("metrics:path:%s", path)

	result, err := m.client.HGetAll(ctx, pathKey).Result()
	if err != nil {
		return nil, err
	}

	if len(result) == 0 {
		return &APIStats{Path: path}, nil
	}

	total, _ := strconv.ParseInt(result["total"], 10, 64)
	success, _ := strconv.ParseInt(result["success"], 10, 64)
	errors, _ := strconv.ParseInt(result["error"], 10, 64)
	latencySum, _ := strconv.ParseFloat(result["latency_sum"], 64)
	cacheHits, _ := strconv.ParseInt(result["cache_hits"], 10, 64)
	cacheMisses, _ := strconv.ParseInt(result["cache_misses"], 10, 64)

	avgLatency := 0.0
	if total > 0 {
		avgLatency = latencySum / float64(total)
	}

	return &APIStats{
		Path:         path,
		TotalCalls:   total,
		SuccessCalls: success,
		ErrorCalls:   errors,
		AvgLatencyMs: avgLatency,
		CacheHits:    cacheHits,
		CacheMisses:  cacheMisses,
	}, nil
}

// GetOverallStats gets overall system statistics
func (m *Metrics) GetOverallStats(ctx context.Context) (*OverallStats, error) {
	stats := &OverallStats{}
	if m == nil {
		return stats, nil
	}

	total, _ := m.client.Get(ctx, "metrics:global:total").Int64()
	latencySum, _ := m.client.Get(ctx, "metrics:global:latency_sum").Float64()
	stats.TotalAPICalls = total

	if total > 0 {
		stats.AvgLatencyMs = latencySum / float64(total)
	}

	paths, _ := m.client.SMembers(ctx, "metrics:paths").Result()
	var allStats []APIStats
	var totalCacheHits, totalCacheMisses, totalErrors int64

	for _, path := range paths {
		pathStats, err := m.GetAPIStats(ctx, path)
		if err == nil && pathStats.TotalCalls > 0 {
			allStats = append(allStats, *pathStats)
			totalCacheHits += pathStats.CacheHits
			totalCacheMisses += pathStats.CacheMisses
			totalErrors += pathStats.ErrorCalls
		}
	}

	sort.Slice(allStats, func(i, j int) bool {
		return allStats[i].TotalCalls > allStats[j].TotalCalls
	})

	if len(allStats) > 10 {
		stats.TopEndpoints = allStats[:10]
	} else {
		stats.TopEndpoints = allStats
	}

	totalCacheOps := totalCacheHits + totalCacheMisses
	if totalCacheOps > 0 {
		stats.CacheHitRate = float64(totalCacheHits) / float64(totalCacheOps) * 100
	}

	if total > 0 {
		stats.ErrorRate = float64(totalErrors) / float64(total) * 100
	}

	startTime, err := m.client.Get(ctx, "metrics:server:start_time").Int64()
	if err == nil && startTime > 0 {
		stats.Uptime = time.Now().Unix() - startTime
	}

	return stats, nil
}

// RecordServerStart records server start time
func (m *Metrics) RecordServerStart(ctx context.Context) {
	if m == nil {
		return
	}
	m.client.Set(ctx, "metrics:server:start_time", time.Now().Unix(), 0)
}

// ResetMetrics resets all metrics
func (m *Metrics) ResetMetrics(ctx context.Context) error {
	if m == nil {
		return nil
	}

	keys, err := m.client.Keys(ctx, "metrics:*").Result()
	if err != nil {
		return err
	}

	if len(keys) > 0 {
		return m.client.Del(ctx, keys...).Err()
	}

	return nil
}

// Close closes the Redis connection
func (m *Metrics) Close() error {
	if m == nil {
		return nil
	}
	return m.client.Close()
}
