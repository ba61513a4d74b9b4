package controller

import (
	"course_cms_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

// respondError 把服务层错误映射为HTTP响应。
// 校验错误 -> 400，存在性错误 -> 404，权限错误 -> 403，其余 -> 500
func respondError(c *gin.Context, err error) {
	var ve *util.ValidationError
	switch {
	case errors.As(err, &ve):
		util.BadRequest(c, ve.Message)
	case errors.Is(err, util.ErrEmailRegistered):
		util.BadRequest(c, err.Error())
	case errors.Is(err, util.ErrCourseNotFound),
		errors.Is(err, util.ErrSectionNotFound),
		errors.Is(err, util.ErrLessonNotFound),
		errors.Is(err, util.ErrUserNotFound):
		util.NotFound(c, err.Error())
	case errors.Is(err, util.ErrNotCourseOwner):
		util.Forbidden(c, err.Error())
	default:
		util.LogInternalError(c, err)
	}
}
