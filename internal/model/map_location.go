package model

// 地图地点类型
const (
	LocationTypeBuilding = "building"
	LocationTypeFacility = "facility"
	LocationTypeParking  = "parking"
	LocationTypeDining   = "dining"
)

// Coordinates 校园地图上的相对坐标
type Coordinates struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// MapLocation 校园地图地点（只读）
type MapLocation struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Type        string      `json:"type"`
	Coordinates Coordinates `json:"coordinates"`
	Description string      `json:"description"`
	Hours       string      `json:"hours,omitempty"`
}
