package cache

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Kind names an artifact cached per user.
type Kind string

const (
	KindPlan     Kind = "plan"
	KindPlanDays Kind = "plan_days"
	KindShopping Kind = "shopping"
)

const keyPrefix = "sehrimilan_"

const (
	defaultSize = 1000
	defaultTTL  = 30 * time.Minute
)

// Cache is an advisory per-user scratch store. It is never the source of truth.
type Cache interface {
	Get(kind Kind, userID string) (any, bool)
	Set(kind Kind, userID string, value any)
	Remove(kind Kind, userID string)
	// Purge drops every artifact of userID.
	Purge(userID string)
	Len() int
}

type Config struct {
	Size int
	TTL  time.Duration
}

type lruCache struct {
	lru *expirable.LRU[string, any]
}

// New creates an expiring LRU cache. Zero values fall back to defaults.
func New(cfg Config) Cache {
	if cfg.Size <= 0 {
		cfg.Size = defaultSize
	}
	if cfg.TTL <= 0 {
		cfg.TTL = defaultTTL
	}
	return &lruCache{
		lru: expirable.NewLRU[string, any](cfg.Size, nil, cfg.TTL),
	}
}

// Key builds the storage key, e.g. "sehrimilan_plan_days_<uid>".
func Key(kind Kind, userID string) string {
	return keyPrefix + string(kind) + "_" + userID
}

func (c *lruCache) Get(kind Kind, userID string) (any, bool) {
	return c.lru.Get(Key(kind, userID))
}

func (c *lruCache) Set(kind Kind, userID string, value any) {
	c.lru.Add(Key(kind, userID), value)
}

func (c *lruCache) Remove(kind Kind, userID string) {
	c.lru.Remove(Key(kind, userID))
}

func (c *lruCache) Purge(userID string) {
	for _, k := range []Kind{KindPlan, KindPlanDays, KindShopping} {
		c.Remove(k, userID)
	}
}

func (c *lruCache) Len() int {
	return c.lru.Len()
}
