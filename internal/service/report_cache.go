package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"clinic-report-service/internal/delivery/dto"
	"clinic-report-service/internal/domain/entity"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// Redis key prefix for cached voice reports: voice_report:<category>:<hash>
	ReportCacheKeyPrefix = "voice_report:"

	// Timeout for individual Redis operations
	reportCacheTimeout = 2 * time.Second

	// Keys deleted per SCAN/DEL round trip during invalidation
	invalidateBatchSize = 500
)

// ReportCache stores voice report results in Redis. Every failure is logged
// and reported as a miss so the caller falls back to the database.
type ReportCache interface {
	Get(ctx context.Context, key string) (*dto.VoiceReportResponse, bool)
	Set(ctx context.Context, key string, res *dto.VoiceReportResponse)
	Invalidate(ctx context.Context, category entity.ReportCategory) (int, error)
	Enabled() bool
}

type reportCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *logrus.Logger
}

// NewReportCache returns a cache with the given TTL. A nil client or a TTL
// of zero or less disables caching.
func NewReportCache(client *redis.Client, ttl time.Duration, log *logrus.Logger) ReportCache {
	return &reportCache{
		client: client,
		ttl:    ttl,
		log:    log,
	}
}

// ReportCacheKey identifies the data behind an interpretation: category,
// period and filters. Paraphrases resolving to the same query share a key.
func ReportCacheKey(q *entity.QueryInterpretation, limit int) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s|%s|%s|%d|", q.Category, dayKey(q.DateRange.Start), dayKey(q.DateRange.End), limit)
	if q.Filters.Status != nil {
		fmt.Fprintf(h, "status=%s|", *q.Filters.Status)
	}
	if q.Filters.PatientName != nil {
		fmt.Fprintf(h, "patient=%s|", *q.Filters.PatientName)
	}
	if q.Filters.MinAmount != nil {
		fmt.Fprintf(h, "min=%s|", q.Filters.MinAmount.String())
	}
	if q.Filters.MaxAmount != nil {
		fmt.Fprintf(h, "max=%s|", q.Filters.MaxAmount.String())
	}
	return ReportCacheKeyPrefix + string(q.Category) + ":" + hex.EncodeToString(h.Sum(nil))
}

func dayKey(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format("2006-01-02")
}

func (c *reportCache) Enabled() bool {
	return c.client != nil && c.ttl > 0
}

func (c *reportCache) Get(ctx context.Context, key string) (*dto.VoiceReportResponse, bool) {
	if !c.Enabled() {
		return nil, false
	}

	ctx, cancel := context.WithTimeout(ctx, reportCacheTimeout)
	defer cancel()

	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warnf("Failed to read report cache %s: %+v", key, err)
		}
		return nil, false
	}

	var res dto.VoiceReportResponse
	if err := json.Unmarshal(raw, &res); err != nil {
		c.log.Warnf("Failed to decode report cache %s: %+v", key, err)
		return nil, false
	}

	return &res, true
}

func (c *reportCache) Set(ctx context.Context, key string, res *dto.VoiceReportResponse) {
	if !c.Enabled() || res == nil {
		return
	}

	raw, err := json.Marshal(res)
	if err != nil {
		c.log.Warnf("Failed to encode report cache %s: %+v", key, err)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, reportCacheTimeout)
	defer cancel()

	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.log.Warnf("Failed to write report cache %s: %+v", key, err)
	}
}

// Invalidate drops every cached report of category, or of all categories
// when category is UNKNOWN. It scans in batches and deletes each batch in
// one pipeline.
func (c *reportCache) Invalidate(ctx context.Context, category entity.ReportCategory) (int, error) {
	if c.client == nil {
		return 0, nil
	}

	pattern := ReportCacheKeyPrefix + "*"
	if category.IsKnown() {
		pattern = ReportCacheKeyPrefix + string(category) + ":*"
	}

	deleted := 0
	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, pattern, invalidateBatchSize).Result()
		if err != nil {
			c.log.Warnf("Failed to scan report cache: %+v", err)
			return deleted, fmt.Errorf("scan report cache: %w", err)
		}

		if len(keys) > 0 {
			pipe := c.client.Pipeline()
			for _, key := range keys {
				pipe.Del(ctx, key)
			}
			if _, err := pipe.Exec(ctx); err != nil {
				c.log.Warnf("Failed to delete report cache batch: %+v", err)
				return deleted, fmt.Errorf("delete report cache batch: %w", err)
			}
			deleted += len(keys)
		}

		cursor = next
		if cursor == 0 {
			break
		}
	}

	c.log.Infof("Invalidated %d cached reports (%s)", deleted, pattern)
	return deleted, nil
}
