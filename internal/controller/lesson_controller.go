package controller

import (
	"course_cms_backend/internal/model"
	"course_cms_backend/internal/service"
	"course_cms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// LessonController 处理课时子资源的API请求

type LessonController struct {
	LessonService *service.LessonService
}

func NewLessonController(lessonService *service.LessonService) *LessonController {
	return &LessonController{LessonService: lessonService}
}

// checkLessonPath 校验课程/章节/课时三级路径参数格式
func checkLessonPath(ctx *gin.Context) (courseID, sectionID, lessonID string, ok bool) {
	courseID = ctx.Param("courseId")
	if !model.IsValidID(courseID) {
		util.BadRequest(ctx, "Invalid course ID")
		return "", "", "", false
	}
	sectionID = ctx.Param("sectionId")
	if !model.IsValidID(sectionID) {
		util.BadRequest(ctx, "Invalid ID format")
		return "", "", "", false
	}
	lessonID = ctx.Param("lessonId")
	if !model.IsValidID(lessonID) {
		util.BadRequest(ctx, "Invalid ID format")
		return "", "", "", false
	}
	return courseID, sectionID, lessonID, true
}

// @Summary 课时列表
// @Tags 课时
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path string true "课程ID"
// @Param sectionId path string true "章节ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/courses/{courseId}/sections/{sectionId}/lessons [get]
func (c *LessonController) ListLessons(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	courseID, sectionID, ok := checkSectionPath(ctx)
	if !ok {
		return
	}

	lessons, err := c.LessonService.ListLessons(courseID, sectionID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, "", gin.H{"lessons": lessons})
}

// @Summary 添加课时
// @Description 在章节末尾追加课时，order 自动为当前课时数，type 默认 video
// @Tags 课时
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path string true "课程ID"
// @Param sectionId path string true "章节ID"
// @Param lesson body model.CreateLessonRequest true "课时信息"
// @Success 201 {object} map[string]interface{}
// @Router /api/courses/{courseId}/sections/{sectionId}/lessons [post]
func (c *LessonController) AddLesson(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	courseID, sectionID, ok := checkSectionPath(ctx)
	if !ok {
		return
	}

	var req model.CreateLessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	lesson, err := c.LessonService.AddLesson(user.UserID, courseID, sectionID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Created(ctx, "Lesson added successfully", gin.H{"lesson": lesson})
}

// @Summary 课时详情
// @Tags 课时
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path string true "课程ID"
// @Param sectionId path string true "章节ID"
// @Param lessonId path string true "课时ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/courses/{courseId}/sections/{sectionId}/lessons/{lessonId} [get]
func (c *LessonController) GetLesson(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	courseID, sectionID, lessonID, ok := checkLessonPath(ctx)
	if !ok {
		return
	}

	lesson, err := c.LessonService.GetLesson(courseID, sectionID, lessonID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, "", gin.H{"lesson": lesson})
}

// @Summary 整体更新课时
// @Description PUT整体替换，title 必填，缺省的可选字段恢复默认值(order 除外)
// @Tags 课时
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path string true "课程ID"
// @Param sectionId path string true "章节ID"
// @Param lessonId path string true "课时ID"
// @Param lesson body model.ReplaceLessonRequest true "课时信息"
// @Success 200 {object} map[string]interface{}
// @Router /api/courses/{courseId}/sections/{sectionId}/lessons/{lessonId} [put]
func (c *LessonController) ReplaceLesson(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	courseID, sectionID, lessonID, ok := checkLessonPath(ctx)
	if !ok {
		return
	}

	var req model.ReplaceLessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	lesson, err := c.LessonService.ReplaceLesson(user.UserID, courseID, sectionID, lessonID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, "Lesson updated successfully", gin.H{"lesson": lesson})
}

// @Summary 部分更新课时
// @Description PATCH仅应用请求中出现的键
// @Tags 课时
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path string true "课程ID"
// @Param sectionId path string true "章节ID"
// @Param lessonId path string true "课时ID"
// @Param lesson body model.PatchLessonRequest true "要更新的字段"
// @Success 200 {object} map[string]interface{}
// @Router /api/courses/{courseId}/sections/{sectionId}/lessons/{lessonId} [patch]
func (c *LessonController) PatchLesson(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	courseID, sectionID, lessonID, ok := checkLessonPath(ctx)
	if !ok {
		return
	}

	var req model.PatchLessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	lesson, err := c.LessonService.PatchLesson(user.UserID, courseID, sectionID, lessonID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, "Lesson updated successfully", gin.H{"lesson": lesson})
}

// @Summary 删除课时
// @Description 删除课时，剩余课时order重排为 0..n-1
// @Tags 课时
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path string true "课程ID"
// @Param sectionId path string true "章节ID"
// @Param lessonId path string true "课时ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/courses/{courseId}/sections/{sectionId}/lessons/{lessonId} [delete]
func (c *LessonController) DeleteLesson(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	courseID, sectionID, lessonID, ok := checkLessonPath(ctx)
	if !ok {
		return
	}

	if err := c.LessonService.DeleteLesson(user.UserID, courseID, sectionID, lessonID); err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, "Lesson deleted successfully", nil)
}
