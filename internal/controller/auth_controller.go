package controller

import (
	"course_cms_backend/internal/model"
	"course_cms_backend/internal/service"
	"course_cms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthController 处理注册/登录/个人信息

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// @Summary 用户注册
// @Tags 认证
// @Accept json
// @Produce json
// @Param user body model.RegisterRequest true "注册信息"
// @Success 201 {object} map[string]interface{}
// @Router /api/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req model.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.AuthService.Register(req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Created(ctx, "User registered successfully", gin.H{"user": user})
}

// @Summary 用户登录
// @Tags 认证
// @Accept json
// @Produce json
// @Param user body model.LoginRequest true "登录信息"
// @Success 200 {object} map[string]interface{}
// @Router /api/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req model.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, user, err := c.AuthService.Login(req)
	if err != nil {
		if err == util.ErrInvalidCredentials {
			util.Unauthorized(ctx)
			return
		}
		respondError(ctx, err)
		return
	}

	util.Success(ctx, "", gin.H{"token": token, "user": user})
}

// @Summary 当前用户信息
// @Tags 认证
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} map[string]interface{}
// @Router /api/profile [get]
func (c *AuthController) GetProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	user, err := c.AuthService.GetProfile(claims.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, "", gin.H{"user": user})
}
