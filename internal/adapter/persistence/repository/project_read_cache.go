package repository

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"time"

	"freelance_marketplace/internal/domain/entities"
	"freelance_marketplace/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const defaultProjectCacheTTLSeconds = 30

// ProjectReadCache decorates a project repository with a Redis read-through
// cache. Only GetByID is cached; writes through this repository invalidate
// the key. Status transitions happen in the ledger store and bypass this
// decorator, so a cached project can lag such a transition by at most the
// TTL. The use cases tolerate that: every transition is re-checked by a
// condition expression at the write.

type ProjectReadCache struct {
	inner interfaces.IProjectRepository
	rdb   *redis.Client
	ttl   time.Duration
}

var _ interfaces.IProjectRepository = (*ProjectReadCache)(nil)

func NewProjectReadCache(inner interfaces.IProjectRepository, rdb *redis.Client) *ProjectReadCache {
	ttl := defaultProjectCacheTTLSeconds
	if raw := getenvDefault("PROJECT_CACHE_TTL_SECONDS", ""); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			ttl = parsed
		}
	}
	return &ProjectReadCache{
		inner: inner,
		rdb:   rdb,
		ttl:   time.Duration(ttl) * time.Second,
	}
}

func projectCacheKey(id string) string {
	return "project:" + id
}

func (c *ProjectReadCache) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	created, err := c.inner.Create(ctx, p)
	if err != nil {
		return entities.Project{}, err
	}
	c.invalidate(ctx, created.ID)
	return created, nil
}

func (c *ProjectReadCache) GetByID(ctx context.Context, id string) (entities.Project, error) {
	key := projectCacheKey(id)
	if raw, err := c.rdb.Get(ctx, key).Bytes(); err == nil {
		var cached entities.Project
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
		log.Printf("[project][cache] corrupt entry dropped key=%s", key)
		c.rdb.Del(ctx, key)
	} else if err != redis.Nil {
		log.Printf("[project][cache] read failed key=%s err=%v", key, err)
	}

	project, err := c.inner.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}

	if raw, err := json.Marshal(project); err == nil {
		if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
			log.Printf("[project][cache] write failed key=%s err=%v", key, err)
		}
	}
	return project, nil
}

func (c *ProjectReadCache) ListOpen(ctx context.Context) ([]entities.Project, error) {
	return c.inner.ListOpen(ctx)
}

func (c *ProjectReadCache) RequestRevision(ctx context.Context, id string) (entities.Project, error) {
	project, err := c.inner.RequestRevision(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	c.invalidate(ctx, id)
	return project, nil
}

func (c *ProjectReadCache) SetApprovedSubmission(ctx context.Context, id, submissionID string) (entities.Project, error) {
	project, err := c.inner.SetApprovedSubmission(ctx, id, submissionID)
	if err != nil {
		return entities.Project{}, err
	}
	c.invalidate(ctx, id)
	return project, nil
}

func (c *ProjectReadCache) invalidate(ctx context.Context, id string) {
	if err := c.rdb.Del(ctx, projectCacheKey(id)).Err(); err != nil {
		log.Printf("[project][cache] invalidate failed id=%s err=%v", id, err)
	}
}
