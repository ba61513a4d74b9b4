package service

import (
	"course_cms_backend/internal/model"
	"course_cms_backend/internal/util"
	"strings"
)

// SectionService 章节CRUD。章节没有独立存在，所有操作都
// 加载整个课程聚合、原地修改、整体写回

type SectionService struct {
	store CourseStore
	guard AccessGuard
	cache *CourseCache
}

func NewSectionService(store CourseStore, guard AccessGuard, cache *CourseCache) *SectionService {
	return &SectionService{store: store, guard: guard, cache: cache}
}

// ListSections 返回课程的全部章节
func (s *SectionService) ListSections(courseID string) ([]model.Section, error) {
	course, err := s.store.FindByID(courseID)
	if err != nil {
		return nil, err
	}
	if course.Sections == nil {
		return []model.Section{}, nil
	}
	return course.Sections, nil
}

// GetSection 按ID读取单个章节
func (s *SectionService) GetSection(courseID, sectionID string) (*model.Section, error) {
	course, err := s.store.FindByID(courseID)
	if err != nil {
		return nil, err
	}
	section := course.FindSection(sectionID)
	if section == nil {
		return nil, util.ErrSectionNotFound
	}
	return section, nil
}

// AddSection 追加章节，order = 当前章节数
func (s *SectionService) AddSection(callerID, courseID string, req model.CreateSectionRequest) (*model.Section, error) {
	course, err := s.store.FindByID(courseID)
	if err != nil {
		return nil, err
	}
	if err := s.guard.Authorize(course, callerID); err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Title) == "" {
		return nil, util.Invalid("Section title is required")
	}

	section := model.Section{
		ID:          model.GenerateUUID(),
		Title:       req.Title,
		Description: req.Description,
		Lessons:     []model.Lesson{},
		Order:       len(course.Sections),
	}
	course.Sections = append(course.Sections, section)

	if err := s.store.Save(course); err != nil {
		return nil, err
	}
	s.cache.Invalidate(courseID)
	return &course.Sections[len(course.Sections)-1], nil
}

// ReplaceSections 整体替换章节列表(PUT集合)，用于批量更新和重排序。
// 逐项校验后整表替换，order 按新列表位置重排
func (s *SectionService) ReplaceSections(callerID, courseID string, inputs []model.SectionInput) ([]model.Section, error) {
	course, err := s.store.FindByID(courseID)
	if err != nil {
		return nil, err
	}
	if err := s.guard.Authorize(course, callerID); err != nil {
		return nil, err
	}

	// 缺省的 sections 键拒绝而不是清空；显式空数组才是合法的整表清除
	if inputs == nil {
		return nil, util.Invalid("Sections array is required")
	}
	if err := validateSectionInputs(inputs); err != nil {
		return nil, err
	}

	course.Sections = buildSections(inputs)

	if err := s.store.Save(course); err != nil {
		return nil, err
	}
	s.cache.Invalidate(courseID)
	return course.Sections, nil
}

// ReplaceSection 整体替换单个章节(PUT)。lessons 缺省时保留现有课时，
// 提供时整体替换课时列表
func (s *SectionService) ReplaceSection(callerID, courseID, sectionID string, req model.ReplaceSectionRequest) (*model.Section, error) {
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
		return nil, util.Invalid("Section title is required")
	}
	if req.Lessons != nil {
		if err := validateLessonInputs(*req.Lessons); err != nil {
			return nil, err
		}
	}

	section.Title = req.Title
	section.Description = req.Description
	if req.Lessons != nil {
		section.Lessons = buildLessons(*req.Lessons)
	}

	if err := s.store.Save(course); err != nil {
		return nil, err
	}
	s.cache.Invalidate(courseID)
	return section, nil
}

// PatchSection 部分更新章节，仅应用请求中出现的键(id除外)。
// lessons 中任何一条缺标题则整个补丁拒绝，不应用任何字段
func (s *SectionService) PatchSection(callerID, courseID, sectionID string, req model.PatchSectionRequest) (*model.Section, error) {
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

	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return nil, util.Invalid("Section title is required")
	}
	if req.Lessons != nil {
		if err := validateLessonInputs(*req.Lessons); err != nil {
			return nil, err
		}
	}

	if req.Title != nil {
		section.Title = *req.Title
	}
	if req.Description != nil {
		section.Description = *req.Description
	}
	if req.Lessons != nil {
		section.Lessons = buildLessons(*req.Lessons)
	}
	if req.Order != nil {
		section.Order = *req.Order
	}

	if err := s.store.Save(course); err != nil {
		return nil, err
	}
	s.cache.Invalidate(courseID)
	return section, nil
}

// DeleteSection 按ID删除章节，剩余章节按原相对顺序重排为 0..n-1
func (s *SectionService) DeleteSection(callerID, courseID, sectionID string) error {
	course, err := s.store.FindByID(courseID)
	if err != nil {
		return err
	}
	if err := s.guard.Authorize(course, callerID); err != nil {
		return err
	}

	if !course.RemoveSection(sectionID) {
		return util.ErrSectionNotFound
	}

	if err := s.store.Save(course); err != nil {
		return err
	}
	s.cache.Invalidate(courseID)
	return nil
}
