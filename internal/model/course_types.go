package model

// 请求载荷类型。PATCH 类载荷全部使用指针字段：nil 表示请求中未出现该键。
// 可修改字段采用显式白名单，id/ownerId 以及统计计数不可通过请求修改。

// CreateCourseRequest 创建课程
type CreateCourseRequest struct {
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	Price        float64     `json:"price"`
	ThumbnailURL string      `json:"thumbnailUrl"`
	Level        CourseLevel `json:"level"`
	Category     string      `json:"category"`
	Tags         []string    `json:"tags"`
}

// ReplaceCourseRequest 整体替换课程(PUT)。title 必填，
// 其余字段缺省时保留课程当前值而不是重置为默认值。
type ReplaceCourseRequest struct {
	Title        string          `json:"title"`
	Description  *string         `json:"description"`
	Price        *float64        `json:"price"`
	ThumbnailURL *string         `json:"thumbnailUrl"`
	Level        *CourseLevel    `json:"level"`
	Category     *string         `json:"category"`
	Tags         *[]string       `json:"tags"`
	Status       *CourseStatus   `json:"status"`
	Sections     *[]SectionInput `json:"sections"`
}

// PatchCourseRequest 部分更新课程(PATCH)，仅应用请求中出现的键。
// sections 为键级整体替换：提供即替换整个章节列表。
type PatchCourseRequest struct {
	Title        *string         `json:"title"`
	Description  *string         `json:"description"`
	Price        *float64        `json:"price"`
	ThumbnailURL *string         `json:"thumbnailUrl"`
	Level        *CourseLevel    `json:"level"`
	Category     *string         `json:"category"`
	Tags         *[]string       `json:"tags"`
	Status       *CourseStatus   `json:"status"`
	Sections     *[]SectionInput `json:"sections"`
}

// SectionInput 章节输入。ID 为空表示新章节，进入时生成
type SectionInput struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Lessons     []LessonInput `json:"lessons"`
}

// LessonInput 课时输入
type LessonInput struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Type      LessonType `json:"type"`
	Content   string     `json:"content"`
	VideoURL  string     `json:"videoUrl"`
	Duration  float64    `json:"duration"`
	IsPreview bool       `json:"isPreview"`
}

// CreateSectionRequest 新增章节
type CreateSectionRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ReplaceSectionRequest 整体替换章节(PUT)。lessons 缺省时保留现有课时
type ReplaceSectionRequest struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Lessons     *[]LessonInput `json:"lessons"`
}

// PatchSectionRequest 部分更新章节
type PatchSectionRequest struct {
	Title       *string        `json:"title"`
	Description *string        `json:"description"`
	Lessons     *[]LessonInput `json:"lessons"`
	Order       *int           `json:"order"`
}

// ReplaceSectionsRequest 整体替换课程的章节列表(PUT集合)
type ReplaceSectionsRequest struct {
	Sections []SectionInput `json:"sections"`
}

// CreateLessonRequest 新增课时
type CreateLessonRequest struct {
	Title     string     `json:"title"`
	Type      LessonType `json:"type"`
	Content   string     `json:"content"`
	VideoURL  string     `json:"videoUrl"`
	Duration  float64    `json:"duration"`
	IsPreview bool       `json:"isPreview"`
}

// ReplaceLessonRequest 整体替换课时(PUT)。缺省字段重置为默认值，order 例外：
// 未提供时保留原值
type ReplaceLessonRequest struct {
	Title     string     `json:"title"`
	Type      LessonType `json:"type"`
	Content   string     `json:"content"`
	VideoURL  string     `json:"videoUrl"`
	Duration  float64    `json:"duration"`
	IsPreview bool       `json:"isPreview"`
	Order     *int       `json:"order"`
}

// PatchLessonRequest 部分更新课时，各字段独立生效
type PatchLessonRequest struct {
	Title     *string     `json:"title"`
	Type      *LessonType `json:"type"`
	Content   *string     `json:"content"`
	VideoURL  *string     `json:"videoUrl"`
	Duration  *float64    `json:"duration"`
	IsPreview *bool       `json:"isPreview"`
	Order     *int        `json:"order"`
}

// CourseFilter 课程列表的过滤/排序/分页条件，条件之间为 AND 关系
type CourseFilter struct {
	Owner    string
	Status   string
	Category string
	Search   string
	PriceMin *float64
	PriceMax *float64
	SortBy   string
	SortDesc bool
	Page     int
	Limit    int
}

// RegisterRequest 注册
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest 登录
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
