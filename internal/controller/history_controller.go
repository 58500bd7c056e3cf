package controller

import (
	"errors"
	"fmt"
	"strings"

	"solo_edu_backend/internal/service"
	"solo_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type HistoryController struct {
	service *service.HistoryService
}

func NewHistoryController(s *service.HistoryService) *HistoryController {
	return &HistoryController{service: s}
}

type StoreHistoryRequest struct {
	StudentID        string   `json:"student_id"`
	KCID             string   `json:"kc_id"`
	SOLOLevel        string   `json:"SOLO_level"`
	StudentResponse  string   `json:"student_response"`
	Justification    string   `json:"justification"`
	Misconceptions   *string  `json:"misconceptions"`
	TargetSOLOLevel  string   `json:"target_SOLO_level"`
	EducationalGrade string   `json:"educational_grade"`
	Location         string   `json:"location"`
	Latitude         *float64 `json:"latitude"`
	Longitude        *float64 `json:"longitude"`
}

// StoreHistory godoc
// @Summary 写入一条学生测评历史
// @Description 位置必须可解析成坐标，否则拒绝写入；时间戳按解析到的时区落在当地时间
// @Tags 历史
// @Accept json
// @Produce json
// @Param body body StoreHistoryRequest true "测评记录"
// @Success 200 {object} util.Response{data=model.AssessmentRecord}
// @Failure 400 {object} util.Response
// @Router /store-history [post]
func (c *HistoryController) StoreHistory(ctx *gin.Context) {
	var req StoreHistoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	var missing []string
	if req.StudentID == "" {
		missing = append(missing, "student_id")
	}
	if req.KCID == "" {
		missing = append(missing, "kc_id")
	}
	if req.SOLOLevel == "" {
		missing = append(missing, "SOLO_level")
	}
	if req.Location == "" && (req.Latitude == nil || req.Longitude == nil) {
		missing = append(missing, "location")
	}
	if len(missing) > 0 {
		util.BadRequest(ctx, fmt.Sprintf("Missing required fields: %s", strings.Join(missing, ", ")))
		return
	}

	rec, err := c.service.Store(ctx.Request.Context(), service.StoreHistoryInput{
		StudentID:        req.StudentID,
		KCID:             req.KCID,
		SOLOLevel:        req.SOLOLevel,
		StudentResponse:  req.StudentResponse,
		Justification:    req.Justification,
		Misconceptions:   req.Misconceptions,
		TargetSOLOLevel:  req.TargetSOLOLevel,
		EducationalGrade: req.EducationalGrade,
		Location:         req.Location,
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
	})
	if err != nil {
		if errors.Is(err, util.ErrUnresolvableLocation) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"message": "Student assessment history stored.",
		"record":  rec,
	})
}

// GetStudentHistory godoc
// @Summary 查询学生测评历史
// @Description 按插入逆序返回，latest=true 只回最近一条
// @Tags 历史
// @Produce json
// @Param student_id query string true "学生ID"
// @Param kc_id query string false "知识组件ID"
// @Param latest query bool false "只取最近一条"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /get-student-history [get]
func (c *HistoryController) GetStudentHistory(ctx *gin.Context) {
	studentID := ctx.Query("student_id")
	if studentID == "" {
		util.BadRequest(ctx, "student_id is required")
		return
	}

	latest := strings.EqualFold(ctx.Query("latest"), "true")
	records := c.service.Find(studentID, ctx.Query("kc_id"), latest)

	util.Success(ctx, gin.H{
		"records": records,
		"count":   len(records),
	})
}
