package dto

// ── 场地模块 DTO ──

// VenueListRequest 场地列表查询参数
// type 精确匹配，未知类型得到空列表
type VenueListRequest struct {
	Type string `form:"type"`
}

// VenueResponse 场地信息响应
type VenueResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Type      string   `json:"type"`
	Capacity  int      `json:"capacity"`
	Location  string   `json:"location"`
	Amenities []string `json:"amenities"`
	Available bool     `json:"available"`
	Image     string   `json:"image,omitempty"`
}
