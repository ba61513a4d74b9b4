package repository

import (
	"course_cms_backend/internal/model"
	"course_cms_backend/internal/util"
	"errors"
	"strings"

	"gorm.io/gorm"
)

// CourseRepository 课程聚合的数据访问。聚合按ID整行读取、整行写回，
// 章节与课时作为JSON列随行一起持久化

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

// Create 创建课程聚合
func (r *CourseRepository) Create(course *model.Course) error {
	return r.DB.Create(course).Error
}

// FindByID 按ID加载完整聚合，不存在时返回 util.ErrCourseNotFound
func (r *CourseRepository) FindByID(id string) (*model.Course, error) {
	var course model.Course
	err := r.DB.First(&course, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}
	return &course, nil
}

// Save 整体写回聚合
func (r *CourseRepository) Save(course *model.Course) error {
	return r.DB.Save(course).Error
}

// Delete 删除整个聚合(章节与课时随文档级联消失)
func (r *CourseRepository) Delete(id string) error {
	result := r.DB.Delete(&model.Course{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return util.ErrCourseNotFound
	}
	return nil
}

// 可排序字段白名单：JSON字段名 -> 数据库列名
var sortColumns = map[string]string{
	"title":            "title",
	"price":            "price",
	"level":            "level",
	"category":         "category",
	"status":           "status",
	"enrolledStudents": "enrolled_students",
	"createdAt":        "created_at",
	"updatedAt":        "updated_at",
}

// Search 按过滤条件查询课程列表，返回当前页与忽略分页的总数
func (r *CourseRepository) Search(f model.CourseFilter) ([]model.Course, int64, error) {
	q := r.DB.Model(&model.Course{})

	if f.Owner != "" {
		q = q.Where("owner_id = ?", f.Owner)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.PriceMin != nil {
		q = q.Where("price >= ?", *f.PriceMin)
	}
	if f.PriceMax != nil {
		q = q.Where("price <= ?", *f.PriceMax)
	}
	if f.Search != "" {
		pattern := "%" + strings.ToLower(f.Search) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column, ok := sortColumns[f.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "ASC"
	if f.SortDesc {
		direction = "DESC"
	}

	page := f.Page
	if page < 1 {
		page = 1
	}
	limit := f.Limit
	if limit < 1 {
		limit = 10
	}

	var courses []model.Course
	err := q.Order(column + " " + direction).
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&courses).Error
	if err != nil {
		return nil, 0, err
	}

	return courses, total, nil
}
