package service

import "course_cms_backend/internal/model"

// CourseStore 课程聚合的存取原语：按ID整体加载、整体写回。
// 由 repository.CourseRepository 实现；FindByID/Delete 在聚合
// 不存在时返回 util.ErrCourseNotFound
type CourseStore interface {
	Create(course *model.Course) error
	FindByID(id string) (*model.Course, error)
	Save(course *model.Course) error
	Delete(id string) error
	Search(f model.CourseFilter) ([]model.Course, int64, error)
}

// UserStore 用户存取，由 repository.UserRepository 实现
type UserStore interface {
	Create(user *model.User) error
	FindByID(id string) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
}
