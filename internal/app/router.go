package app

import (
	"solo_edu_backend/docs"
	"solo_edu_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 系统
	router.GET("/", c.health.Home)
	router.GET("/health", c.health.HealthCheck)

	// 知识组件
	router.POST("/submit_kc", c.kc.SubmitKC)
	router.GET("/get_kc", c.kc.GetKC)
	router.GET("/list_kcs", c.kc.ListKCs)

	// 分析与历史
	router.POST("/analyze-response", c.analysis.AnalyzeResponse)
	router.POST("/store-history", c.history.StoreHistory)
	router.GET("/get-student-history", c.history.GetStudentHistory)

	// 情境任务推荐
	router.POST("/generate-reaction", c.reaction.GenerateReaction)
}
