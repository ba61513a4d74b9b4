package service

import (
	"course_cms_backend/internal/model"
	"course_cms_backend/internal/util"
	"strings"

	"gorm.io/datatypes"
)

// CourseService 课程聚合的CRUD与目录查询。
// 每个变更操作都是对单个聚合的一次 读取-修改-写回

type CourseService struct {
	store CourseStore
	guard AccessGuard
	cache *CourseCache
}

func NewCourseService(store CourseStore, guard AccessGuard, cache *CourseCache) *CourseService {
	return &CourseService{store: store, guard: guard, cache: cache}
}

// CreateCourse 创建课程，status 固定为 draft，属主为调用者
func (s *CourseService) CreateCourse(callerID string, req model.CreateCourseRequest) (*model.Course, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, util.Invalid("Title is required")
	}
	if req.Price < 0 {
		return nil, util.Invalid("Price must be greater than or equal to 0")
	}

	level := req.Level
	if level == "" {
		level = model.LevelBeginner
	}
	if err := validateLevel(level); err != nil {
		return nil, err
	}

	category := req.Category
	if category == "" {
		category = model.DefaultCategory
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	course := &model.Course{
		Title:        req.Title,
		Description:  req.Description,
		Price:        req.Price,
		ThumbnailURL: req.ThumbnailURL,
		Level:        level,
		Category:     category,
		Tags:         datatypes.JSONSlice[string](tags),
		Status:       model.StatusDraft,
		OwnerID:      callerID,
		Sections:     model.SectionList{},
		Ratings:      model.Ratings{},
	}
	course.ID = model.GenerateUUID()

	if err := s.store.Create(course); err != nil {
		return nil, err
	}
	return course, nil
}

// GetCourse 读取单个课程，读路径走缓存
func (s *CourseService) GetCourse(id string) (*model.Course, error) {
	if course, ok := s.cache.Get(id); ok {
		return course, nil
	}

	course, err := s.store.FindByID(id)
	if err != nil {
		return nil, err
	}
	s.cache.Set(course)
	return course, nil
}

// ListCourses 目录查询。owner 支持 self 别名，解析为调用者身份
func (s *CourseService) ListCourses(callerID string, f model.CourseFilter) ([]model.Course, int64, error) {
	if f.Owner == "self" || f.Owner == "me" {
		f.Owner = callerID
	}
	return s.store.Search(f)
}

// ReplaceCourse 整体替换(PUT)。title 必填；缺省的可选字段保留当前值。
// 所有校验先于任何变更执行，校验失败时存储中的聚合保持不变
func (s *CourseService) ReplaceCourse(callerID, id string, req model.ReplaceCourseRequest) (*model.Course, error) {
	course, err := s.store.FindByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.guard.Authorize(course, callerID); err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Title) == "" {
		return nil, util.Invalid("Title is required")
	}
	if err := validateCourseFields(req.Price, req.Level, req.Status); err != nil {
		return nil, err
	}
	if req.Sections != nil {
		if err := validateSectionInputs(*req.Sections); err != nil {
			return nil, err
		}
	}

	course.Title = req.Title
	if req.Description != nil {
		course.Description = *req.Description
	}
	if req.Price != nil {
		course.Price = *req.Price
	}
	if req.ThumbnailURL != nil {
		course.ThumbnailURL = *req.ThumbnailURL
	}
	if req.Level != nil {
		course.Level = *req.Level
	}
	if req.Category != nil {
		course.Category = *req.Category
	}
	if req.Tags != nil {
		course.Tags = datatypes.JSONSlice[string](*req.Tags)
	}
	if req.Status != nil {
		course.Status = *req.Status
	}
	if req.Sections != nil {
		course.Sections = buildSections(*req.Sections)
	}

	if err := s.store.Save(course); err != nil {
		return nil, err
	}
	s.cache.Invalidate(id)
	return course, nil
}

// PatchCourse 部分更新(PATCH)，仅应用请求中出现的键。
// sections 为键级替换：提供即整体替换章节列表，不做深合并
func (s *CourseService) PatchCourse(callerID, id string, req model.PatchCourseRequest) (*model.Course, error) {
	course, err := s.store.FindByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.guard.Authorize(course, callerID); err != nil {
		return nil, err
	}

	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return nil, util.Invalid("Title is required")
	}
	if err := validateCourseFields(req.Price, req.Level, req.Status); err != nil {
		return nil, err
	}
	if req.Sections != nil {
		if err := validateSectionInputs(*req.Sections); err != nil {
			return nil, err
		}
	}

	if req.Title != nil {
		course.Title = *req.Title
	}
	if req.Description != nil {
		course.Description = *req.Description
	}
	if req.Price != nil {
		course.Price = *req.Price
	}
	if req.ThumbnailURL != nil {
		course.ThumbnailURL = *req.ThumbnailURL
	}
	if req.Level != nil {
		course.Level = *req.Level
	}
	if req.Category != nil {
		course.Category = *req.Category
	}
	if req.Tags != nil {
		course.Tags = datatypes.JSONSlice[string](*req.Tags)
	}
	if req.Status != nil {
		course.Status = *req.Status
	}
	if req.Sections != nil {
		course.Sections = buildSections(*req.Sections)
	}

	if err := s.store.Save(course); err != nil {
		return nil, err
	}
	s.cache.Invalidate(id)
	return course, nil
}

// DeleteCourse 删除整个聚合，章节与课时随文档级联删除
func (s *CourseService) DeleteCourse(callerID, id string) error {
	course, err := s.store.FindByID(id)
	if err != nil {
		return err
	}
	if err := s.guard.Authorize(course, callerID); err != nil {
		return err
	}

	if err := s.store.Delete(id); err != nil {
		return err
	}
	s.cache.Invalidate(id)
	return nil
}

func validateLevel(level model.CourseLevel) error {
	switch level {
	case model.LevelBeginner, model.LevelIntermediate, model.LevelAdvanced:
		return nil
	}
	return util.Invalid("Invalid course level")
}

func validateStatus(status model.CourseStatus) error {
	switch status {
	case model.StatusDraft, model.StatusPublished, model.StatusArchived:
		return nil
	}
	return util.Invalid("Invalid course status")
}

func validateLessonType(t model.LessonType) error {
	switch t {
	case model.LessonVideo, model.LessonText, model.LessonQuiz:
		return nil
	}
	return util.Invalid("Invalid lesson type")
}

func validateCourseFields(price *float64, level *model.CourseLevel, status *model.CourseStatus) error {
	if price != nil && *price < 0 {
		return util.Invalid("Price must be greater than or equal to 0")
	}
	if level != nil {
		if err := validateLevel(*level); err != nil {
			return err
		}
	}
	if status != nil {
		if err := validateStatus(*status); err != nil {
			return err
		}
	}
	return nil
}

// validateSectionInputs 递归校验章节输入：每个章节和其中每个课时都必须有标题
func validateSectionInputs(inputs []model.SectionInput) error {
	for _, sec := range inputs {
		if strings.TrimSpace(sec.Title) == "" {
			return util.Invalid("Each section must have a title")
		}
		if err := validateLessonInputs(sec.Lessons); err != nil {
			return err
		}
	}
	return nil
}

func validateLessonInputs(inputs []model.LessonInput) error {
	for _, l := range inputs {
		if strings.TrimSpace(l.Title) == "" {
			return util.Invalid("Each lesson must have a title")
		}
		if l.Type != "" {
			if err := validateLessonType(l.Type); err != nil {
				return err
			}
		}
	}
	return nil
}

// buildSections 把章节输入转为内嵌文档。保留传入的ID(重排序场景)，
// 空ID视为新章节并生成；order 统一按列表位置重排为 0..n-1
func buildSections(inputs []model.SectionInput) model.SectionList {
	sections := make(model.SectionList, 0, len(inputs))
	for i, in := range inputs {
		id := in.ID
		if id == "" {
			id = model.GenerateUUID()
		}
		sections = append(sections, model.Section{
			ID:          id,
			Title:       in.Title,
			Description: in.Description,
			Lessons:     buildLessons(in.Lessons),
			Order:       i,
		})
	}
	return sections
}

func buildLessons(inputs []model.LessonInput) []model.Lesson {
	lessons := make([]model.Lesson, 0, len(inputs))
	for i, in := range inputs {
		id := in.ID
		if id == "" {
			id = model.GenerateUUID()
		}
		lessonType := in.Type
		if lessonType == "" {
			lessonType = model.LessonVideo
		}
		lessons = append(lessons, model.Lesson{
			ID:        id,
			Title:     in.Title,
			Type:      lessonType,
			Content:   in.Content,
			VideoURL:  in.VideoURL,
			Duration:  in.Duration,
			IsPreview: in.IsPreview,
			Order:     i,
		})
	}
	return lessons
}
