package service

import (
	"course_cms_backend/internal/model"
	"course_cms_backend/internal/util"
)

// AccessGuard 所有权校验：变更操作只允许课程属主执行。
// 必须在确认聚合存在之后调用，存在性失败是 NotFound 而不是 Forbidden
type AccessGuard interface {
	Authorize(course *model.Course, callerID string) error
}

type ownerGuard struct{}

func NewOwnerGuard() AccessGuard {
	return ownerGuard{}
}

func (ownerGuard) Authorize(course *model.Course, callerID string) error {
	if course.OwnerID != callerID {
		return util.ErrNotCourseOwner
	}
	return nil
}
