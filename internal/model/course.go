package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
)

type CourseLevel string

const (
	LevelBeginner     CourseLevel = "beginner"
	LevelIntermediate CourseLevel = "intermediate"
	LevelAdvanced     CourseLevel = "advanced"
)

type CourseStatus string

const (
	StatusDraft     CourseStatus = "draft"
	StatusPublished CourseStatus = "published"
	StatusArchived  CourseStatus = "archived"
)

type LessonType string

const (
	LessonVideo LessonType = "video"
	LessonText  LessonType = "text"
	LessonQuiz  LessonType = "quiz"
)

const DefaultCategory = "Other"

// Lesson 课时，作为章节内嵌文档存在，没有独立的表
type Lesson struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Type      LessonType `json:"type"`
	Content   string     `json:"content"`
	VideoURL  string     `json:"videoUrl"`
	Duration  float64    `json:"duration"` // 分钟
	IsPreview bool       `json:"isPreview"`
	Order     int        `json:"order"`
}

// Section 章节，内嵌于课程文档
type Section struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Lessons     []Lesson `json:"lessons"`
	Order       int      `json:"order"`
}

// FindLesson 按ID查找课时，不存在返回 nil
func (s *Section) FindLesson(lessonID string) *Lesson {
	for i := range s.Lessons {
		if s.Lessons[i].ID == lessonID {
			return &s.Lessons[i]
		}
	}
	return nil
}

// RemoveLesson 按ID删除课时并重排剩余课时的 order，返回是否删除成功
func (s *Section) RemoveLesson(lessonID string) bool {
	for i := range s.Lessons {
		if s.Lessons[i].ID == lessonID {
			s.Lessons = append(s.Lessons[:i], s.Lessons[i+1:]...)
			s.ReindexLessons()
			return true
		}
	}
	return false
}

// ReindexLessons 重排课时顺序为连续的 0..n-1，保持原相对顺序
func (s *Section) ReindexLessons() {
	for i := range s.Lessons {
		s.Lessons[i].Order = i
	}
}

// SectionList 以JSON列整体存储的章节列表
type SectionList []Section

func (l SectionList) Value() (driver.Value, error) {
	if l == nil {
		l = SectionList{}
	}
	return json.Marshal(l)
}

func (l *SectionList) Scan(value interface{}) error {
	if value == nil {
		*l = SectionList{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for SectionList: %T", value)
	}
	if len(data) == 0 {
		*l = SectionList{}
		return nil
	}
	return json.Unmarshal(data, l)
}

// Ratings 课程评分汇总
type Ratings struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// Course 课程聚合根：章节与课时全部内嵌，作为单个文档整体读写
// swagger:model
type Course struct {
	UUIDBase
	Title            string                       `gorm:"size:255;not null" json:"title"`
	Description      string                       `gorm:"type:text" json:"description"`
	Price            float64                      `json:"price"`
	ThumbnailURL     string                       `gorm:"size:512" json:"thumbnailUrl"`
	Level            CourseLevel                  `gorm:"size:20;index" json:"level"`
	Category         string                       `gorm:"size:100;index" json:"category"`
	Tags             datatypes.JSONSlice[string]  `json:"tags"`
	Status           CourseStatus                 `gorm:"size:20;index" json:"status"`
	OwnerID          string                       `gorm:"column:owner_id;type:varchar(36);index" json:"ownerId"`
	Sections         SectionList                  `gorm:"type:json" json:"sections"`
	EnrolledStudents int                          `json:"enrolledStudents"`
	Ratings          Ratings                      `gorm:"embedded;embeddedPrefix:rating_" json:"ratings"`
}

// FindSection 按ID查找章节，不存在返回 nil
func (c *Course) FindSection(sectionID string) *Section {
	for i := range c.Sections {
		if c.Sections[i].ID == sectionID {
			return &c.Sections[i]
		}
	}
	return nil
}

// RemoveSection 按ID删除章节并重排剩余章节的 order，返回是否删除成功
func (c *Course) RemoveSection(sectionID string) bool {
	for i := range c.Sections {
		if c.Sections[i].ID == sectionID {
			c.Sections = append(c.Sections[:i], c.Sections[i+1:]...)
			c.ReindexSections()
			return true
		}
	}
	return false
}

// ReindexSections 重排章节顺序为连续的 0..n-1，保持原相对顺序
func (c *Course) ReindexSections() {
	for i := range c.Sections {
		c.Sections[i].Order = i
	}
}
