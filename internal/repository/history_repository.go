package repository

import (
	"sync"

	"solo_edu_backend/internal/model"
)

// HistoryRepository 测评历史的追加日志
// 只有追加和扫描两种操作，锁只覆盖这两步，不跨越任何外部 I/O
type HistoryRepository struct {
	mu      sync.RWMutex
	records []model.AssessmentRecord
}

func NewHistoryRepository() *HistoryRepository {
	return &HistoryRepository{}
}

func (r *HistoryRepository) Append(rec model.AssessmentRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, rec)
}

// Find 按插入逆序返回匹配记录，kcID 为空时只按学生过滤
func (r *HistoryRepository) Find(studentID, kcID string) []model.AssessmentRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.AssessmentRecord
	for i := len(r.records) - 1; i >= 0; i-- {
		rec := r.records[i]
		if rec.StudentID != studentID {
			continue
		}
		if kcID != "" && rec.KCID != kcID {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// Latest 逆序扫描返回第一条匹配记录，插入顺序是全序所以不存在并列
func (r *HistoryRepository) Latest(studentID, kcID string) (model.AssessmentRecord, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := len(r.records) - 1; i >= 0; i-- {
		rec := r.records[i]
		if rec.StudentID == studentID && rec.KCID == kcID {
			return rec, true
		}
	}
	return model.AssessmentRecord{}, false
}

func (r *HistoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}
