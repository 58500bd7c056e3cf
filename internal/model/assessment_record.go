package model

// AssessmentRecord 学生测评历史记录
// 入库后不可变、不可删除，仅随进程生命周期存在
// swagger:model
type AssessmentRecord struct {
	StudentID        string     `json:"student_id"`
	KCID             string     `json:"kc_id"`
	SOLOLevel        string     `json:"SOLO_level"`
	StudentResponse  string     `json:"student_response,omitempty"`
	Justification    string     `json:"justification,omitempty"`
	Misconceptions   *string    `json:"misconceptions"`
	TargetSOLOLevel  string     `json:"target_SOLO_level,omitempty"`
	EducationalGrade string     `json:"educational_grade,omitempty"`
	Location         string     `json:"location"`
	Coordinate       Coordinate `json:"coordinate"`
	Timestamp        string     `json:"timestamp"`
	Timezone         string     `json:"timezone"`
}
