package model

// TaskType 情境任务类型
type TaskType string

const (
	TaskVirtual TaskType = "Virtual"
	TaskIndoor  TaskType = "Indoor"
	TaskOutdoor TaskType = "Outdoor"
)

// TaskRecommendation 决策流程的输出，不落库
// swagger:model
type TaskRecommendation struct {
	TaskType         TaskType `json:"task_type"`
	Title            string   `json:"task_title"`
	Description      string   `json:"task_description"`
	Link             string   `json:"link,omitempty"`
	FeasibilityNotes string   `json:"feasibility_notes"`
	Reasoning        string   `json:"reasoning"`
}
