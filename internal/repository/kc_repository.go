package repository

import (
	"sync"

	"solo_edu_backend/internal/model"
)

// KCRepository 知识组件注册表
// 进程内易失存储，重启即清空，无持久化约定
type KCRepository struct {
	mu    sync.RWMutex
	byID  map[string]model.KnowledgeComponent
	order []string
}

func NewKCRepository() *KCRepository {
	return &KCRepository{
		byID: make(map[string]model.KnowledgeComponent),
	}
}

func (r *KCRepository) Save(kc model.KnowledgeComponent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[kc.KCID]; !exists {
		r.order = append(r.order, kc.KCID)
	}
	r.byID[kc.KCID] = kc
}

func (r *KCRepository) Get(kcID string) (model.KnowledgeComponent, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kc, ok := r.byID[kcID]
	return kc, ok
}

// List 按提交顺序返回全部知识组件
func (r *KCRepository) List() []model.KnowledgeComponent {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.KnowledgeComponent, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}
