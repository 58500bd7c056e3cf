package service

import (
	"solo_edu_backend/internal/model"
	"solo_edu_backend/internal/repository"
	"solo_edu_backend/internal/util"
	"solo_edu_backend/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type KCService struct {
	repo *repository.KCRepository
}

func NewKCService(repo *repository.KCRepository) *KCService {
	return &KCService{repo: repo}
}

// Submit 只接收教师审批通过的知识组件，缺 kc_id 时自动生成短标识
func (s *KCService) Submit(kc model.KnowledgeComponent) (model.KnowledgeComponent, error) {
	if !kc.Approved {
		return model.KnowledgeComponent{}, util.ErrApprovalRequired
	}

	if kc.KCID == "" {
		kc.KCID = "KC_" + uuid.NewString()[:8]
	}

	s.repo.Save(kc)
	logger.Log.Info("KC stored", zap.String("kc_id", kc.KCID))
	return kc, nil
}

func (s *KCService) Get(kcID string) (model.KnowledgeComponent, error) {
	kc, ok := s.repo.Get(kcID)
	if !ok {
		return model.KnowledgeComponent{}, util.ErrKCNotFound
	}
	return kc, nil
}

func (s *KCService) List() []model.KnowledgeComponent {
	return s.repo.List()
}
