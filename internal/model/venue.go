package model

// 场地类型
const (
	VenueTypeStudyRoom      = "study-room"
	VenueTypeConferenceHall = "conference-hall"
	VenueTypeLab            = "lab"
	VenueTypeAuditorium     = "auditorium"
)

// VenueTypes 场地类型筛选项
var VenueTypes = []string{VenueTypeStudyRoom, VenueTypeConferenceHall, VenueTypeLab, VenueTypeAuditorium}

// Venue 可预约场地（只读）
type Venue struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Type      string   `json:"type"`
	Capacity  int      `json:"capacity"`
	Location  string   `json:"location"`
	Amenities []string `json:"amenities"`
	Available bool     `json:"available"`
	Image     string   `json:"image,omitempty"`
}
