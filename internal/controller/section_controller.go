package controller

import (
	"course_cms_backend/internal/model"
	"course_cms_backend/internal/service"
	"course_cms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// SectionController 处理章节子资源的API请求

type SectionController struct {
	SectionService *service.SectionService
}

func NewSectionController(sectionService *service.SectionService) *SectionController {
	return &SectionController{SectionService: sectionService}
}

// checkSectionPath 校验课程与章节的路径参数格式，通过时返回两个ID
func checkSectionPath(ctx *gin.Context) (courseID, sectionID string, ok bool) {
	courseID = ctx.Param("courseId")
	if !model.IsValidID(courseID) {
		util.BadRequest(ctx, "Invalid course ID")
		return "", "", false
	}
	sectionID = ctx.Param("sectionId")
	if !model.IsValidID(sectionID) {
		util.BadRequest(ctx, "Invalid ID format")
		return "", "", false
	}
	return courseID, sectionID, true
}

// @Summary 章节列表
// @Tags 章节
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path string true "课程ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/courses/{courseId}/sections [get]
func (c *SectionController) ListSections(ctx *gin.Context) {
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

	sections, err := c.SectionService.ListSections(courseID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, "", gin.H{"sections": sections})
}

// @Summary 添加章节
// @Description 在课程末尾追加章节，order 自动为当前章节数
// @Tags 章节
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path string true "课程ID"
// @Param section body model.CreateSectionRequest true "章节信息"
// @Success 201 {object} map[string]interface{}
// @Router /api/courses/{courseId}/sections [post]
func (c *SectionController) AddSection(ctx *gin.Context) {
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

	var req model.CreateSectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	section, err := c.SectionService.AddSection(user.UserID, courseID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Created(ctx, "Section added successfully", gin.H{"section": section})
}

// @Summary 批量替换章节
// @Description 整体替换课程的章节列表，用于批量编辑和重排序
// @Tags 章节
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path string true "课程ID"
// @Param sections body model.ReplaceSectionsRequest true "新章节列表"
// @Success 200 {object} map[string]interface{}
// @Router /api/courses/{courseId}/sections [put]
func (c *SectionController) ReplaceSections(ctx *gin.Context) {
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

	var req model.ReplaceSectionsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	sections, err := c.SectionService.ReplaceSections(user.UserID, courseID, req.Sections)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, "Sections updated successfully", gin.H{"sections": sections})
}

// @Summary 章节详情
// @Tags 章节
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path string true "课程ID"
// @Param sectionId path string true "章节ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/courses/{courseId}/sections/{sectionId} [get]
func (c *SectionController) GetSection(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	courseID, sectionID, ok := checkSectionPath(ctx)
	if !ok {
		return
	}

	section, err := c.SectionService.GetSection(courseID, sectionID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, "", gin.H{"section": section})
}

// @Summary 整体更新章节
// @Description PUT整体替换，title 必填；lessons 缺省保留，提供则整体替换
// @Tags 章节
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path string true "课程ID"
// @Param sectionId path string true "章节ID"
// @Param section body model.ReplaceSectionRequest true "章节信息"
// @Success 200 {object} map[string]interface{}
// @Router /api/courses/{courseId}/sections/{sectionId} [put]
func (c *SectionController) ReplaceSection(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	courseID, sectionID, ok := checkSectionPath(ctx)
	if !ok {
		return
	}

	var req model.ReplaceSectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	section, err := c.SectionService.ReplaceSection(user.UserID, courseID, sectionID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, "Section updated successfully", gin.H{"section": section})
}

// @Summary 部分更新章节
// @Description PATCH仅应用请求中出现的键
// @Tags 章节
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path string true "课程ID"
// @Param sectionId path string true "章节ID"
// @Param section body model.PatchSectionRequest true "要更新的字段"
// @Success 200 {object} map[string]interface{}
// @Router /api/courses/{courseId}/sections/{sectionId} [patch]
func (c *SectionController) PatchSection(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	courseID, sectionID, ok := checkSectionPath(ctx)
	if !ok {
		return
	}

	var req model.PatchSectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	section, err := c.SectionService.PatchSection(user.UserID, courseID, sectionID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, "Section updated successfully", gin.H{"section": section})
}

// @Summary 删除章节
// @Description 删除章节及其全部课时，剩余章节order重排为 0..n-1
// @Tags 章节
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path string true "课程ID"
// @Param sectionId path string true "章节ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/courses/{courseId}/sections/{sectionId} [delete]
func (c *SectionController) DeleteSection(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	courseID, sectionID, ok := checkSectionPath(ctx)
	if !ok {
		return
	}

	if err := c.SectionService.DeleteSection(user.UserID, courseID, sectionID); err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, "Section deleted successfully", nil)
}
