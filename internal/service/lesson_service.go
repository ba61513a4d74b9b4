package service

import (
	"course_cms_backend/internal/model"
	"course_cms_backend/internal/util"
	"strings"
)

// LessonService 课时CRUD，操作位于课程聚合内某个章节下的课时列表

type LessonService struct {
	store CourseStore
	guard AccessGuard
	cache *CourseCache
}

func NewLessonService(store CourseStore, guard AccessGuard, cache *CourseCache) *LessonService {
	return &LessonService{store: store, guard: guard, cache: cache}
}

// findSection 读路径的课程+章节联合查找。变更操作不走这里：
// 所有权校验必须先于章节存在性检查
func (s *LessonService) findSection(courseID, sectionID string) (*model.Course, *model.Section, error) {
	course, err := s.store.FindByID(courseID)
	if err != nil {
		return nil, nil, err
	}
	section := course.FindSection(sectionID)
	if section == nil {
		return nil, nil, util.ErrSectionNotFound
	}
	return course, section, nil
}

// ListLessons 返回章节的全部课时
func (s *LessonService) ListLessons(courseID, sectionID string) ([]model.Lesson, error) {
	_, section, err := s.findSection(courseID, sectionID)
	if err != nil {
		return nil, err
	}
	if section.Lessons == nil {
		return []model.Lesson{}, nil
	}
	return section.Lessons, nil
}

// GetLesson 按ID读取单个课时
func (s *LessonService) GetLesson(courseID, sectionID, lessonID string) (*model.Lesson, error) {
	_, section, err := s.findSection(courseID, sectionID)
	if err != nil {
		return nil, err
	}
	lesson := section.FindLesson(lessonID)
	if lesson == nil {
		return nil, util.ErrLessonNotFound
	}
	return lesson, nil
}

// AddLesson 追加课时，order = 当前课时数，type 默认 video
func (s *LessonService) AddLesson(callerID, courseID, sectionID string, req model.CreateLessonRequest) (*model.Lesson, error) {
	course, err := s.store.FindByID(courseID)
	if err != nil {
		return nil, err
	}
	if err := s.guard.Authorize(course, callerID); err != nil {
		return nil, err
	}
	section := course.FindSection(sectionID)
	if section == nil {
		return nil, util.ErrSectionNotFound
	}

	if strings.TrimSpace(req.Title) == "" {
		return nil, util.Invalid("Lesson title is required")
	}
	lessonType := req.Type
	if lessonType == "" {
		lessonType = model.LessonVideo
	}
	if err := validateLessonType(lessonType); err != nil {
		return nil, err
	}

	lesson := model.Lesson{
		ID:        model.GenerateUUID(),
		Title:     req.Title,
		Type:      lessonType,
		Content:   req.Content,
		VideoURL:  req.VideoURL,
		Duration:  req.Duration,
		IsPreview: req.IsPreview,
		Order:     len(section.Lessons),
	}
	section.Lessons = append(section.Lessons, lesson)

	if err := s.store.Save(course); err != nil {
		return nil, err
	}
	s.cache.Invalidate(courseID)
	return &section.Lessons[len(section.Lessons)-1], nil
}

// ReplaceLesson 整体替换课时(PUT)。缺省的可选字段重置为创建时的默认值，
// order 例外：未提供时保留原值
func (s *LessonService) ReplaceLesson(callerID, courseID, sectionID, lessonID string, req model.ReplaceLessonRequest) (*model.Lesson, error) {
	course, err := s.store.FindByID(courseID)
	if err != nil {
		return nil, err
	}
	if err := s.guard.Authorize(course, callerID); err != nil {
		return nil, err
	}
	section := course.FindSection(sectionID)
	if section == nil {
		return nil, util.ErrSectionNotFound
	}

	lesson := section.FindLesson(lessonID)
	if lesson == nil {
		return nil, util.ErrLessonNotFound
	}

	if strings.TrimSpace(req.Title) == "" {
		return nil, util.Invalid("Lesson title is required")
	}
	lessonType := req.Type
	if lessonType == "" {
		lessonType = model.LessonVideo
	}
	if err := validateLessonType(lessonType); err != nil {
		return nil, err
	}

	lesson.Title = req.Title
	lesson.Type = lessonType
	lesson.Content = req.Content
	lesson.VideoURL = req.VideoURL
	lesson.Duration = req.Duration
	lesson.IsPreview = req.IsPreview
	if req.Order != nil {
		lesson.Order = *req.Order
	}

	if err := s.store.Save(course); err != nil {
		return nil, err
	}
	s.cache.Invalidate(courseID)
	return lesson, nil
}

// PatchLesson 部分更新课时，各字段独立生效，仅应用请求中出现的键
func (s *LessonService) PatchLesson(callerID, courseID, sectionID, lessonID string, req model.PatchLessonRequest) (*model.Lesson, error) {
	course, err := s.store.FindByID(courseID)
	if err != nil {
		return nil, err
	}
	if err := s.guard.Authorize(course, callerID); err != nil {
		return nil, err
	}
	section := course.FindSection(sectionID)
	if section == nil {
		return nil, util.ErrSectionNotFound
	}

	lesson := section.FindLesson(lessonID)
	if lesson == nil {
		return nil, util.ErrLessonNotFound
	}

	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return nil, util.Invalid("Lesson title is required")
	}
	if req.Type != nil {
		if err := validateLessonType(*req.Type); err != nil {
			return nil, err
		}
	}

	if req.Title != nil {
		lesson.Title = *req.Title
	}
	if req.Type != nil {
		lesson.Type = *req.Type
	}
	if req.Content != nil {
		lesson.Content = *req.Content
	}
	if req.VideoURL != nil {
		lesson.VideoURL = *req.VideoURL
	}
	if req.Duration != nil {
		lesson.Duration = *req.Duration
	}
	if req.IsPreview != nil {
		lesson.IsPreview = *req.IsPreview
	}
	if req.Order != nil {
		lesson.Order = *req.Order
	}

	if err := s.store.Save(course); err != nil {
		return nil, err
	}
	s.cache.Invalidate(courseID)
	return lesson, nil
}

// DeleteLesson 按ID删除课时，剩余课时按原相对顺序重排为 0..n-1
func (s *LessonService) DeleteLesson(callerID, courseID, sectionID, lessonID string) error {
	course, err := s.store.FindByID(courseID)
	if err != nil {
		return err
	}
	if err := s.guard.Authorize(course, callerID); err != nil {
		return err
	}
	section := course.FindSection(sectionID)
	if section == nil {
		return util.ErrSectionNotFound
	}

	if !section.RemoveLesson(lessonID) {
		return util.ErrLessonNotFound
	}

	if err := s.store.Save(course); err != nil {
		return err
	}
	s.cache.Invalidate(courseID)
	return nil
}
