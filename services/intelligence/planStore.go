// File: services/intelligence/planStore.go
package ai

import (
	"context"
	"encoding/json"
	"time"

	"courseware/models"

	"github.com/go-redis/redis/v8"
)

const planCachePrefix = "lp:plan:"

// RedisPlanStore caches the latest rendered lesson plan per course so
// repeated downloads by the document renderer skip regeneration.
type RedisPlanStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisPlanStore(client *redis.Client, ttl time.Duration) *RedisPlanStore {
	return &RedisPlanStore{client: client, ttl: ttl}
}

// Get returns the cached plan for a course, or nil when none is cached.
func (s *RedisPlanStore) Get(ctx context.Context, courseID string) (*models.LessonPlan, error) {
	key := planCachePrefix + courseID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var plan models.LessonPlan
	if err := json.Unmarshal([]byte(data), &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (s *RedisPlanStore) Set(ctx context.Context, courseID string, plan *models.LessonPlan) error {
	key := planCachePrefix + courseID
	b, err := json.Marshal(plan)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, b, s.ttl).Err()
}

func (s *RedisPlanStore) Clear(ctx context.Context, courseID string) error {
	key := planCachePrefix + courseID
	return s.client.Del(ctx, key).Err()
}
