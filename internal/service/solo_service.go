package service

import (
	"strings"

	"solo_edu_backend/internal/model"
)

// SOLOService 固定关键词优先级的 SOLO 分类器
type SOLOService struct{}

func NewSOLOService() *SOLOService {
	return &SOLOService{}
}

// Classification 分类结果
type Classification struct {
	Level         string `json:"SOLO_level"`
	Justification string `json:"justification"`
}

// 多结构层级的特征词表
var multiStructuralKeywords = []string{"red", "blue", "window", "light"}

// Classify 按固定优先级匹配，首个命中即返回
func (s *SOLOService) Classify(responseText string) Classification {
	text := strings.ToLower(responseText)

	switch {
	case strings.Contains(text, "meaning") || strings.Contains(text, "symbol"):
		return Classification{
			Level:         model.SOLORelational,
			Justification: "Student connects elements to symbolic interpretation.",
		}
	case containsAny(text, multiStructuralKeywords):
		return Classification{
			Level:         model.SOLOMultiStructural,
			Justification: "Student lists multiple relevant features.",
		}
	case strings.TrimSpace(text) != "":
		return Classification{
			Level:         model.SOLOUniStructural,
			Justification: "Student mentions one relevant detail.",
		}
	default:
		return Classification{
			Level:         model.SOLOPreStructural,
			Justification: "Student response is incomplete or off-topic.",
		}
	}
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
