package controller

import (
	"strings"

	"solo_edu_backend/internal/service"
	"solo_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AnalysisController struct {
	solo *service.SOLOService
}

func NewAnalysisController(solo *service.SOLOService) *AnalysisController {
	return &AnalysisController{solo: solo}
}

type AnalyzeResponseRequest struct {
	KCID             string `json:"kc_id"`
	StudentID        string `json:"student_id"`
	StudentResponse  string `json:"student_response"`
	EducationalGrade string `json:"educational_grade"`
}

// AnalyzeResponse godoc
// @Summary 对学生回答做 SOLO 层级分类
// @Description 固定关键词优先级匹配，结果不入库
// @Tags 分析
// @Accept json
// @Produce json
// @Param body body AnalyzeResponseRequest true "学生回答"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /analyze-response [post]
func (c *AnalysisController) AnalyzeResponse(ctx *gin.Context) {
	var req AnalyzeResponseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result := c.solo.Classify(req.StudentResponse)

	util.Success(ctx, gin.H{
		"kc_id":             req.KCID,
		"student_id":        req.StudentID,
		"educational_grade": strings.ToLower(req.EducationalGrade),
		"SOLO_level":        result.Level,
		"justification":     result.Justification,
		"misconceptions":    nil,
	})
}
