package model

// KnowledgeComponent 教师审批通过的知识组件
// swagger:model
type KnowledgeComponent struct {
	KCID            string `json:"kc_id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	TargetSOLOLevel string `json:"target_SOLO_level"`
	Approved        bool   `json:"approved"`
}
