package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/portfolio-hub/portfolio-backend/internal/github"
	"github.com/portfolio-hub/portfolio-backend/internal/projects"
	"github.com/portfolio-hub/portfolio-backend/internal/projects/domain"
)

const (
	// Key for the JSON-encoded project list: portfolio:catalog:{username}
	catalogKeyPrefix = "portfolio:catalog:"
)

// RepoLister is the slice of the GitHub client the catalog needs.
type RepoLister interface {
	ListUserRepos(ctx context.Context, username string) ([]github.Repo, error)
}

// Catalog serves the project list. With a configured GitHub account it maps
// the account's repositories into projects, caching the mapped set in redis;
// without one it serves the built-in fixtures. The redis client is optional;
// a nil client just means every List hits the upstream.
type Catalog struct {
	username string
	cacheTTL time.Duration
	client   RepoLister
	rdb      *redis.Client
	now      func() time.Time
}

func NewCatalog(username string, cacheTTL time.Duration, client RepoLister, rdb *redis.Client) *Catalog {
	return &Catalog{
		username: username,
		cacheTTL: cacheTTL,
		client:   client,
		rdb:      rdb,
		now:      time.Now,
	}
}

// List returns the current project set. Cached results are served as-is; a
// cache miss triggers a live fetch through the adapter. When no account is
// configured the fixture set is returned and no upstream call is made.
func (c *Catalog) List(ctx context.Context) ([]domain.Project, error) {
	if c.username == "" {
		return projects.Fixtures(), nil
	}

	if cached, ok := c.cached(ctx); ok {
		return cached, nil
	}

	return c.Refresh(ctx)
}

// Get returns one project by id or domain.ErrProjectNotFound.
func (c *Catalog) Get(ctx context.Context, id string) (*domain.Project, error) {
	items, err := c.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			p := items[i]
			return &p, nil
		}
	}
	return nil, domain.ErrProjectNotFound
}

// Refresh fetches the account's repositories, maps them and rewrites the
// cache. Used by List on a cache miss and by the background refresh job.
func (c *Catalog) Refresh(ctx context.Context) ([]domain.Project, error) {
	if c.username == "" {
		return nil, domain.ErrAccountNotSet
	}

	repos, err := c.client.ListUserRepos(ctx, c.username)
	if err != nil {
		return nil, fmt.Errorf("list repos for %s: %w", c.username, err)
	}

	mapped := github.MapRepos(repos, c.now().UTC())
	c.store(ctx, mapped)
	return mapped, nil
}

func (c *Catalog) cached(ctx context.Context) ([]domain.Project, bool) {
	if c.rdb == nil {
		return nil, false
	}

	data, err := c.rdb.Get(ctx, c.catalogKey()).Result()
	if err != nil {
		// redis.Nil is just a cold cache; anything else degrades to a
		// live fetch as well.
		return nil, false
	}

	var items []domain.Project
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		return nil, false
	}
	return items, true
}

func (c *Catalog) store(ctx context.Context, items []domain.Project) {
	if c.rdb == nil {
		return
	}
	data, err := json.Marshal(items)
	if err != nil {
		return
	}
	// Last write wins; concurrent refreshes produce equivalent sets.
	c.rdb.Set(ctx, c.catalogKey(), data, c.cacheTTL)
}

func (c *Catalog) catalogKey() string {
	return catalogKeyPrefix + c.username
}
