package controller

import (
	"course_cms_backend/internal/model"
	"course_cms_backend/internal/service"
	"course_cms_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

// CourseController 处理课程聚合的API请求

type CourseController struct {
	CourseService *service.CourseService
}

func NewCourseController(courseService *service.CourseService) *CourseController {
	return &CourseController{CourseService: courseService}
}

// @Summary 课程列表
// @Description 按条件过滤/排序/分页查询课程
// @Tags 课程
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param owner query string false "属主ID，self 表示当前用户"
// @Param status query string false "状态" enums(draft,published,archived)
// @Param category query string false "分类"
// @Param price_min query number false "价格下限(含)"
// @Param price_max query number false "价格上限(含)"
// @Param search query string false "标题/描述模糊搜索"
// @Param sort query string false "排序字段，默认 createdAt"
// @Param order query string false "排序方向" enums(asc,desc)
// @Param page query int false "页码，从1开始"
// @Param limit query int false "每页条数"
// @Success 200 {object} map[string]interface{}
// @Router /api/courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	filter := model.CourseFilter{
		Owner:    ctx.Query("owner"),
		Status:   ctx.Query("status"),
		Category: ctx.Query("category"),
		Search:   ctx.Query("search"),
		SortBy:   ctx.DefaultQuery("sort", "createdAt"),
		SortDesc: ctx.DefaultQuery("order", "desc") != "asc",
	}

	if v := ctx.Query("price_min"); v != "" {
		min, err := strconv.ParseFloat(v, 64)
		if err != nil {
			util.BadRequest(ctx, "Invalid price_min")
			return
		}
		filter.PriceMin = &min
	}
	if v := ctx.Query("price_max"); v != "" {
		max, err := strconv.ParseFloat(v, 64)
		if err != nil {
			util.BadRequest(ctx, "Invalid price_max")
			return
		}
		filter.PriceMax = &max
	}

	page, err := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		util.BadRequest(ctx, "Invalid page")
		return
	}
	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		util.BadRequest(ctx, "Invalid limit")
		return
	}
	filter.Page = page
	filter.Limit = limit

	courses, total, err := c.CourseService.ListCourses(user.UserID, filter)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, "", gin.H{"courses": courses, "count": total})
}

// @Summary 创建课程
// @Description 创建课程，初始状态为 draft，属主为当前用户
// @Tags 课程
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param course body model.CreateCourseRequest true "课程信息"
// @Success 201 {object} map[string]interface{}
// @Router /api/courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req model.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.CourseService.CreateCourse(user.UserID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Created(ctx, "Course created successfully", gin.H{"course": course})
}

// @Summary 课程详情
// @Tags 课程
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path string true "课程ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/courses/{courseId} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	courseID := ctx.Param("courseId")
	if !model.IsValidID(courseID) {
		util.BadRequest(ctx, "Invalid course ID")
		return
	}

	course, err := c.CourseService.GetCourse(courseID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, "", gin.H{"course": course})
}

// @Summary 整体更新课程
// @Description PUT整体替换，title 必填，缺省的可选字段保留当前值
// @Tags 课程
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path string true "课程ID"
// @Param course body model.ReplaceCourseRequest true "课程信息"
// @Success 200 {object} map[string]interface{}
// @Router /api/courses/{courseId} [put]
func (c *CourseController) ReplaceCourse(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	courseID := ctx.Param("courseId")
	if !model.IsValidID(courseID) {
		util.BadRequest(ctx, "Invalid course ID")
		return
	}

	var req model.ReplaceCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.CourseService.ReplaceCourse(user.UserID, courseID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, "Course updated successfully", gin.H{"course": course})
}

// @Summary 部分更新课程
// @Description PATCH仅应用请求中出现的键；sections 为键级整体替换
// @Tags 课程
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path string true "课程ID"
// @Param course body model.PatchCourseRequest true "要更新的字段"
// @Success 200 {object} map[string]interface{}
// @Router /api/courses/{courseId} [patch]
func (c *CourseController) PatchCourse(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	courseID := ctx.Param("courseId")
	if !model.IsValidID(courseID) {
		util.BadRequest(ctx, "Invalid course ID")
		return
	}

	var req model.PatchCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.CourseService.PatchCourse(user.UserID, courseID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, "Course updated successfully", gin.H{"course": course})
}

// @Summary 删除课程
// @Description 删除整个课程聚合，章节与课时级联删除
// @Tags 课程
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path string true "课程ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/courses/{courseId} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	courseID := ctx.Param("courseId")
	if !model.IsValidID(courseID) {
		util.BadRequest(ctx, "Invalid course ID")
		return
	}

	if err := c.CourseService.DeleteCourse(user.UserID, courseID); err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, "Course deleted successfully", nil)
}
