package service

import (
	"context"

	"solo_edu_backend/internal/model"
	"solo_edu_backend/internal/repository"
	"solo_edu_backend/internal/util"
	"solo_edu_backend/pkg/logger"

	"go.uber.org/zap"
)

type HistoryService struct {
	repo     *repository.HistoryRepository
	location *LocationService
}

func NewHistoryService(repo *repository.HistoryRepository, location *LocationService) *HistoryService {
	return &HistoryService{repo: repo, location: location}
}

// StoreHistoryInput store-history 的归一化请求体
type StoreHistoryInput struct {
	StudentID        string
	KCID             string
	SOLOLevel        string
	StudentResponse  string
	Justification    string
	Misconceptions   *string
	TargetSOLOLevel  string
	EducationalGrade string
	Location         string
	Latitude         *float64
	Longitude        *float64
}

// Store 位置解析失败会拒绝整个请求：没有坐标的记录会让后续的
// generate-reaction 全部失效，这是唯一一处上游失败阻断写入的地方
func (s *HistoryService) Store(ctx context.Context, in StoreHistoryInput) (model.AssessmentRecord, error) {
	res := s.location.Resolve(ctx, LocationInput{
		Latitude:  in.Latitude,
		Longitude: in.Longitude,
		Location:  in.Location,
	})
	if !res.Resolved() {
		return model.AssessmentRecord{}, util.ErrUnresolvableLocation
	}

	// 时区/时间戳只在创建时解析一次，之后不再回算
	timestamp, timezone := ResolveLocalTime(res.Timezone)

	label := res.Label
	if label == "" {
		label = in.Location
	}

	rec := model.AssessmentRecord{
		StudentID:        in.StudentID,
		KCID:             in.KCID,
		SOLOLevel:        in.SOLOLevel,
		StudentResponse:  in.StudentResponse,
		Justification:    in.Justification,
		Misconceptions:   in.Misconceptions,
		TargetSOLOLevel:  in.TargetSOLOLevel,
		EducationalGrade: in.EducationalGrade,
		Location:         label,
		Coordinate:       *res.Coordinate,
		Timestamp:        timestamp,
		Timezone:         timezone,
	}

	s.repo.Append(rec)
	logger.Log.Info("assessment history stored",
		zap.String("student_id", rec.StudentID),
		zap.String("kc_id", rec.KCID),
		zap.String("timezone", rec.Timezone))
	return rec, nil
}

// Find 按插入逆序返回，latestOnly 截断为最近一条
func (s *HistoryService) Find(studentID, kcID string, latestOnly bool) []model.AssessmentRecord {
	records := s.repo.Find(studentID, kcID)
	if latestOnly && len(records) > 1 {
		records = records[:1]
	}
	if records == nil {
		records = []model.AssessmentRecord{}
	}
	return records
}
