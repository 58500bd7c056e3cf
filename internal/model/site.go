package model

// OpenStatus 站点开放状态
type OpenStatus string

const (
	SiteOpen        OpenStatus = "open"
	SiteClosed      OpenStatus = "closed"
	SiteOpenUnknown OpenStatus = "unknown"
)

// FeeStatus 站点收费状态
// 供应商的付费数据不可靠，只区分免费与未知
type FeeStatus string

const (
	SiteFree       FeeStatus = "free"
	SiteFeeUnknown FeeStatus = "unknown"
)

// SiteCandidate 附近兴趣点候选，每次推荐请求重新计算，不缓存
// swagger:model
type SiteCandidate struct {
	Name       string      `json:"name"`
	Address    string      `json:"address"`
	URL        string      `json:"url,omitempty"`
	Coordinate *Coordinate `json:"coordinate,omitempty"`
	OpenStatus OpenStatus  `json:"open_status"`
	FeeStatus  FeeStatus   `json:"fee_status"`
}

// UnknownSite 供应商无数据时的占位候选
func UnknownSite() SiteCandidate {
	return SiteCandidate{
		Name:       "unavailable",
		Address:    "unknown",
		OpenStatus: SiteOpenUnknown,
		FeeStatus:  SiteFeeUnknown,
	}
}
