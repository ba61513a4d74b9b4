package service

import (
	"course_cms_backend/internal/model"
	"course_cms_backend/internal/util"
	"encoding/json"
)

// fakeCourseStore 内存实现，按ID存取深拷贝，模拟真实存储的读写隔离
type fakeCourseStore struct {
	courses map[string]*model.Course
}

func newFakeCourseStore() *fakeCourseStore {
	return &fakeCourseStore{courses: make(map[string]*model.Course)}
}

func cloneCourse(c *model.Course) *model.Course {
	data, _ := json.Marshal(c)
	var out model.Course
	_ = json.Unmarshal(data, &out)
	out.ID = c.ID
	out.CreatedAt = c.CreatedAt
	out.UpdatedAt = c.UpdatedAt
	return &out
}

func (f *fakeCourseStore) Create(course *model.Course) error {
	f.courses[course.ID] = cloneCourse(course)
	return nil
}

func (f *fakeCourseStore) FindByID(id string) (*model.Course, error) {
	course, ok := f.courses[id]
	if !ok {
		return nil, util.ErrCourseNotFound
	}
	return cloneCourse(course), nil
}

func (f *fakeCourseStore) Save(course *model.Course) error {
	f.courses[course.ID] = cloneCourse(course)
	return nil
}

func (f *fakeCourseStore) Delete(id string) error {
	if _, ok := f.courses[id]; !ok {
		return util.ErrCourseNotFound
	}
	delete(f.courses, id)
	return nil
}

func (f *fakeCourseStore) Search(filter model.CourseFilter) ([]model.Course, int64, error) {
	var out []model.Course
	for _, c := range f.courses {
		if filter.Owner != "" && c.OwnerID != filter.Owner {
			continue
		}
		if filter.Status != "" && string(c.Status) != filter.Status {
			continue
		}
		out = append(out, *cloneCourse(c))
	}
	return out, int64(len(out)), nil
}

// stored 直接读取底层存储，绕过深拷贝，用于断言持久化状态
func (f *fakeCourseStore) stored(id string) *model.Course {
	return f.courses[id]
}
