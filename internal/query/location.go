package query

import (
	"strings"

	"campus-connect/internal/model"
)

// SearchLocations 按名称或描述模糊匹配地图地点，不区分大小写
func SearchLocations(locations []model.MapLocation, text string) []model.MapLocation {
	term := strings.ToLower(text)
	return filter(locations, func(l *model.MapLocation) bool {
		return term == "" ||
			strings.Contains(strings.ToLower(l.Name), term) ||
			strings.Contains(strings.ToLower(l.Description), term)
	})
}
