package controller

import (
	"errors"
	"fmt"

	"solo_edu_backend/internal/model"
	"solo_edu_backend/internal/service"
	"solo_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type KCController struct {
	service *service.KCService
}

func NewKCController(s *service.KCService) *KCController {
	return &KCController{service: s}
}

type SubmitKCRequest struct {
	KCID            string `json:"kc_id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	TargetSOLOLevel string `json:"target_SOLO_level"`
	Approved        bool   `json:"approved"`
}

// SubmitKC godoc
// @Summary 提交知识组件
// @Description 仅接收教师审批通过(approved=true)的知识组件，缺 kc_id 时自动生成
// @Tags 知识组件
// @Accept json
// @Produce json
// @Param body body SubmitKCRequest true "知识组件"
// @Success 200 {object} util.Response{data=model.KnowledgeComponent}
// @Failure 400 {object} util.Response
// @Router /submit_kc [post]
func (c *KCController) SubmitKC(ctx *gin.Context) {
	var req SubmitKCRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	kc, err := c.service.Submit(model.KnowledgeComponent{
		KCID:            req.KCID,
		Title:           req.Title,
		Description:     req.Description,
		TargetSOLOLevel: req.TargetSOLOLevel,
		Approved:        req.Approved,
	})
	if err != nil {
		if errors.Is(err, util.ErrApprovalRequired) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"message": fmt.Sprintf("Knowledge component %s received", kc.KCID),
		"kc":      kc,
	})
}

// GetKC godoc
// @Summary 查询知识组件元数据
// @Tags 知识组件
// @Produce json
// @Param kc_id query string true "知识组件ID"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /get_kc [get]
func (c *KCController) GetKC(ctx *gin.Context) {
	kcID := ctx.Query("kc_id")
	if kcID == "" {
		util.BadRequest(ctx, "kc_id parameter is required")
		return
	}

	kc, err := c.service.Get(kcID)
	if err != nil {
		if errors.Is(err, util.ErrKCNotFound) {
			util.NotFound(ctx, fmt.Sprintf("KC with ID %s not found", kcID))
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	// 只回关键元数据字段
	util.Success(ctx, gin.H{
		"kc_id":             kc.KCID,
		"title":             kc.Title,
		"target_SOLO_level": kc.TargetSOLOLevel,
	})
}

// ListKCs godoc
// @Summary 列出全部知识组件
// @Tags 知识组件
// @Produce json
// @Success 200 {object} util.Response
// @Router /list_kcs [get]
func (c *KCController) ListKCs(ctx *gin.Context) {
	kcs := c.service.List()
	util.Success(ctx, gin.H{
		"kcs":   kcs,
		"count": len(kcs),
	})
}
