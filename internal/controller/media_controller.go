package controller

import (
	"course_cms_backend/internal/service"
	"course_cms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// MediaController 处理视频上传

type MediaController struct {
	MediaService *service.MediaService
}

func NewMediaController(mediaService *service.MediaService) *MediaController {
	return &MediaController{MediaService: mediaService}
}

// @Summary 上传课时视频
// @Description 上传视频文件到配置的存储后端，返回可填入课时videoUrl的地址和时长(分钟)
// @Tags 媒体
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param video formData file true "视频文件"
// @Success 201 {object} map[string]interface{}
// @Router /api/upload/video [post]
func (c *MediaController) UploadVideo(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	file, err := ctx.FormFile("video")
	if err != nil {
		util.BadRequest(ctx, "Video file is required")
		return
	}

	result, err := c.MediaService.UploadVideo(ctx.Request.Context(), file)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Created(ctx, "Video uploaded successfully", gin.H{
		"url":      result.URL,
		"duration": result.Duration,
	})
}
