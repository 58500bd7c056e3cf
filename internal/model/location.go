package model

// Coordinate 经纬度坐标，解析成功后不可变
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid 校验坐标范围
func (c Coordinate) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// LocationResolution 位置归一化结果
// Coordinate 为空表示无法解析，下游的距离/天气/站点查询必须按不可用处理
type LocationResolution struct {
	Coordinate *Coordinate `json:"coordinate,omitempty"`
	Label      string      `json:"formatted_label,omitempty"`
	Timezone   string      `json:"timezone_name,omitempty"`
}

// Resolved 是否解析出了坐标
func (r LocationResolution) Resolved() bool {
	return r.Coordinate != nil
}

// GeocodeResult 地理编码单条结果
type GeocodeResult struct {
	Formatted  string     `json:"formatted"`
	Coordinate Coordinate `json:"coordinate"`
	Timezone   string     `json:"timezone,omitempty"`
}
