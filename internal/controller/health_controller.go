package controller

import (
	"solo_edu_backend/internal/config"
	"solo_edu_backend/internal/repository"
	"solo_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	cfg     *config.Config
	kcs     *repository.KCRepository
	history *repository.HistoryRepository
}

func NewHealthController(cfg *config.Config, kcs *repository.KCRepository, history *repository.HistoryRepository) *HealthController {
	return &HealthController{cfg: cfg, kcs: kcs, history: history}
}

// Home godoc
// @Summary 存活检查
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Router / [get]
func (c *HealthController) Home(ctx *gin.Context) {
	util.Success(ctx, gin.H{
		"message": "Backend is live!",
	})
}

// HealthCheck godoc
// @Summary 健康检查
// @Description 报告内存存储规模与外部供应商配置情况
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	util.Success(ctx, gin.H{
		"status": "ok",
		"components": gin.H{
			"kc_store":      gin.H{"status": "up", "count": len(c.kcs.List())},
			"history_store": gin.H{"status": "up", "count": c.history.Len()},
			"providers": gin.H{
				"geocoding": c.cfg.Geocoding.APIKey != "",
				"weather":   c.cfg.Weather.APIKey != "",
				"places":    c.cfg.Places.APIKey != "",
			},
		},
	})
}
