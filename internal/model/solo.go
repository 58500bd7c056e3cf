package model

// SOLO 分类层级
const (
	SOLOPreStructural   = "Pre-structural"
	SOLOUniStructural   = "Uni-structural"
	SOLOMultiStructural = "Multi-structural"
	SOLORelational      = "Relational"
)
