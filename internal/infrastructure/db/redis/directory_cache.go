package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/englishlessons/classroom-api/internal/core/domain"
)

const directoryTTL = time.Minute

// DirectoryCache is a read-through cache for directory lookups backed by
// Redis. Entries are JSON-encoded and expire after directoryTTL; class and
// lesson data only changes out of band, so a short TTL is the staleness bound.
//
// Key formats: directory:classes:<user_id>, directory:lessons:<class_id>
type DirectoryCache struct {
	client *redis.Client
}

// NewDirectoryCache creates a DirectoryCache wrapping the given Redis client.
func NewDirectoryCache(client *redis.Client) *DirectoryCache {
	return &DirectoryCache{client: client}
}

// GetClasses returns the cached class list for a student, or (nil, nil) on a
// cache miss.
func (c *DirectoryCache) GetClasses(ctx context.Context, userID string) ([]domain.Class, error) {
	var classes []domain.Class
	if err := c.get(ctx, c.classKey(userID), &classes); err != nil || classes == nil {
		return nil, err
	}
	return classes, nil
}

// SetClasses caches the class list for a student.
func (c *DirectoryCache) SetClasses(ctx context.Context, userID string, classes []domain.Class) error {
	return c.set(ctx, c.classKey(userID), classes)
}

// GetLessons returns the cached lesson list for a class, or (nil, nil) on a
// cache miss.
func (c *DirectoryCache) GetLessons(ctx context.Context, classID string) ([]domain.Lesson, error) {
	var lessons []domain.Lesson
	if err := c.get(ctx, c.lessonKey(classID), &lessons); err != nil || lessons == nil {
		return nil, err
	}
	return lessons, nil
}

// SetLessons caches the lesson list for a class.
func (c *DirectoryCache) SetLessons(ctx context.Context, classID string, lessons []domain.Lesson) error {
	return c.set(ctx, c.lessonKey(classID), lessons)
}

func (c *DirectoryCache) get(ctx context.Context, key string, out any) error {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}
		return fmt.Errorf("cache get %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("cache decode %s: %w", key, err)
	}
	return nil
}

func (c *DirectoryCache) set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache encode %s: %w", key, err)
	}
	if err := c.client.Set(ctx, key, raw, directoryTTL).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}

func (c *DirectoryCache) classKey(userID string) string {
	return "directory:classes:" + userID
}

func (c *DirectoryCache) lessonKey(classID string) string {
	return "directory:lessons:" + classID
}
