package app

import (
	"course_cms_backend/internal/config"
	"course_cms_backend/internal/middleware"
	"course_cms_backend/internal/util"
	"course_cms_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	router.GET("/metrics", monitoring.PrometheusHandler())

	// 未匹配路由/方法的统一响应
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(ctx *gin.Context) {
		util.MethodNotAllowed(ctx)
	})
	router.NoRoute(func(ctx *gin.Context) {
		util.NotFound(ctx, "Resource not found")
	})

	// 公共路由(无需登录)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.Health)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}

	// 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/profile", c.auth.GetProfile)

		authGroup.POST("/upload/video", c.media.UploadVideo)

		courses := authGroup.Group("/courses")
		{
			courses.GET("", c.course.ListCourses)
			courses.POST("", c.course.CreateCourse)
			courses.GET("/:courseId", c.course.GetCourse)
			courses.PUT("/:courseId", c.course.ReplaceCourse)
			courses.PATCH("/:courseId", c.course.PatchCourse)
			courses.DELETE("/:courseId", c.course.DeleteCourse)

			sections := courses.Group("/:courseId/sections")
			{
				sections.GET("", c.section.ListSections)
				sections.POST("", c.section.AddSection)
				sections.PUT("", c.section.ReplaceSections)
				sections.GET("/:sectionId", c.section.GetSection)
				sections.PUT("/:sectionId", c.section.ReplaceSection)
				sections.PATCH("/:sectionId", c.section.PatchSection)
				sections.DELETE("/:sectionId", c.section.DeleteSection)

				lessons := sections.Group("/:sectionId/lessons")
				{
					lessons.GET("", c.lesson.ListLessons)
					lessons.POST("", c.lesson.AddLesson)
					lessons.GET("/:lessonId", c.lesson.GetLesson)
					lessons.PUT("/:lessonId", c.lesson.ReplaceLesson)
					lessons.PATCH("/:lessonId", c.lesson.PatchLesson)
					lessons.DELETE("/:lessonId", c.lesson.DeleteLesson)
				}
			}
		}
	}
}
