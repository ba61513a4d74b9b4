package service

import (
	"context"
	"course_cms_backend/internal/model"
	"course_cms_backend/pkg/logger"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const courseCacheKeyPrefix = "course:"

// CourseCache 单课程读取的Redis缓存。
// 只服务读路径，任何针对该聚合的变更都会删除缓存键；
// 变更流程始终直读数据库，不经过缓存
type CourseCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewCourseCache(rdb *redis.Client, ttl time.Duration) *CourseCache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &CourseCache{rdb: rdb, ttl: ttl}
}

func (c *CourseCache) Get(id string) (*model.Course, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	val, err := c.rdb.Get(context.Background(), courseCacheKeyPrefix+id).Result()
	if err != nil {
		return nil, false
	}
	var course model.Course
	if err := json.Unmarshal([]byte(val), &course); err != nil {
		return nil, false
	}
	return &course, true
}

func (c *CourseCache) Set(course *model.Course) {
	if c == nil || c.rdb == nil || course == nil {
		return
	}
	data, err := json.Marshal(course)
	if err != nil {
		return
	}
	if err := c.rdb.Set(context.Background(), courseCacheKeyPrefix+course.ID, data, c.ttl).Err(); err != nil {
		logger.Log.Warn("course cache set failed", zap.String("courseId", course.ID), zap.Error(err))
	}
}

func (c *CourseCache) Invalidate(id string) {
	if c == nil || c.rdb == nil {
		return
	}
	c.rdb.Del(context.Background(), courseCacheKeyPrefix+id)
}
