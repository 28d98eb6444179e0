package query

import "campus-connect/internal/model"

// FilterVenues 按场地类型筛选；"all" 或空串返回全部
func FilterVenues(venues []model.Venue, venueType string) []model.Venue {
	if IsAll(venueType) {
		return filter(venues, func(*model.Venue) bool { return true })
	}
	return filter(venues, func(v *model.Venue) bool { return v.Type == venueType })
}
