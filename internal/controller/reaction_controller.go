package controller

import (
	"errors"

	"solo_edu_backend/internal/service"
	"solo_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ReactionController struct {
	service *service.ReactionService
}

func NewReactionController(s *service.ReactionService) *ReactionController {
	return &ReactionController{service: s}
}

type GenerateReactionRequest struct {
	KCID      string `json:"kc_id"`
	StudentID string `json:"student_id"`
}

// GenerateReaction godoc
// @Summary 生成情境学习任务推荐
// @Description 基于最近一条测评记录的位置，结合附近站点、距离与天气给出 Indoor/Outdoor/Virtual 任务
// @Tags 推荐
// @Accept json
// @Produce json
// @Param body body GenerateReactionRequest true "学生与知识组件"
// @Success 200 {object} util.Response{data=service.Reaction}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /generate-reaction [post]
func (c *ReactionController) GenerateReaction(ctx *gin.Context) {
	var req GenerateReactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if req.KCID == "" || req.StudentID == "" {
		util.BadRequest(ctx, "kc_id and student_id are required")
		return
	}

	reaction, err := c.service.GenerateReaction(ctx.Request.Context(), req.StudentID, req.KCID)
	if err != nil {
		if errors.Is(err, util.ErrNoHistoryForPair) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, reaction)
}
