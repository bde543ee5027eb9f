package app

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"thanawya_backend/docs"
	"thanawya_backend/internal/middleware"
	"thanawya_backend/pkg/monitoring"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/health", c.health.HealthCheck)

	api := router.Group("/api/v1")
	api.Use(middleware.ActivityMiddleware(a.services.stats))
	{
		// 首页
		api.GET("/dashboard", c.dashboard.Summary)
		api.PUT("/dashboard/exam-date", c.dashboard.SetExamDate)

		// 任务
		api.GET("/tasks", c.task.List)
		api.POST("/tasks", c.task.Create)
		api.POST("/tasks/smart", c.task.SmartAdd)
		api.PUT("/tasks/:id", c.task.Update)
		api.POST("/tasks/:id/toggle", c.task.Toggle)
		api.DELETE("/tasks/:id", c.task.Delete)

		// 课程地图
		api.GET("/courses", c.curriculum.List)
		api.POST("/courses", c.curriculum.CreateCourse)
		api.DELETE("/courses/:id", c.curriculum.DeleteCourse)
		api.POST("/courses/:id/units", c.curriculum.AddUnit)
		api.DELETE("/courses/:id/units/:unitId", c.curriculum.DeleteUnit)
		api.POST("/courses/:id/units/:unitId/lessons", c.curriculum.AddLesson)
		api.DELETE("/courses/:id/units/:unitId/lessons/:lessonId", c.curriculum.DeleteLesson)
		api.POST("/courses/:id/units/:unitId/lessons/:lessonId/cycle", c.curriculum.CycleLesson)

		// 总评预测
		api.GET("/predictor", c.predictor.Summary)
		api.PUT("/predictor/courses/:id", c.predictor.UpdateGrades)
		api.GET("/predictor/simulate", c.predictor.Simulate)

		// 补课规划
		api.GET("/backlog", c.backlog.State)
		api.PUT("/backlog/track", c.backlog.SetTrack)
		api.DELETE("/backlog/track", c.backlog.ResetTrack)
		api.PUT("/backlog/config", c.backlog.SaveConfig)
		api.POST("/backlog/plan", c.backlog.GeneratePlan)

		// 日程 + 礼拜 + 记诵
		api.GET("/schedule", c.schedule.List)
		api.POST("/schedule", c.schedule.AddBlock)
		api.DELETE("/schedule/:id", c.schedule.DeleteBlock)
		api.GET("/schedule/prayers", c.schedule.Prayers)
		api.PUT("/schedule/prayers/notifications", c.schedule.SetNotifications)
		api.GET("/schedule/athkar/:category", c.schedule.Athkar)
		api.POST("/schedule/athkar/:category/:index", c.schedule.AthkarIncrement)
		api.DELETE("/schedule/athkar/:category", c.schedule.AthkarReset)

		// AI对话
		api.GET("/chat/sessions", c.chat.Sessions)
		api.POST("/chat/sessions", c.chat.NewSession)
		api.GET("/chat/sessions/:id", c.chat.Session)
		api.DELETE("/chat/sessions/:id", c.chat.DeleteSession)
		api.POST("/chat/sessions/:id/messages", c.chat.Send)

		// 资料库
		api.GET("/resources", c.resource.List)
		api.POST("/resources", c.resource.Add)
		api.POST("/resources/upload", c.resource.Upload)
		api.DELETE("/resources/:id", c.resource.Delete)

		// 视频库
		api.GET("/videos", c.video.Lessons)
		api.GET("/videos/teachers", c.video.Teachers)

		// 成长
		api.GET("/stats", c.stats.Get)
		api.POST("/stats/focus", c.stats.FocusSession)
	}
}
