package dto

// ── 校园地图模块 DTO ──

// LocationListRequest 地点列表查询参数
type LocationListRequest struct {
	Search string `form:"search" binding:"omitempty,max=100"`
}

// CoordinatesResponse 地图坐标
type CoordinatesResponse struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// LocationResponse 地点信息响应
type LocationResponse struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Type        string              `json:"type"`
	Coordinates CoordinatesResponse `json:"coordinates"`
	Description string              `json:"description"`
	Hours       string              `json:"hours,omitempty"`
}
