package query

import (
	"strings"

	"campus-connect/internal/model"
)

// AnnouncementFilter 公告筛选条件，三者为"与"关系
type AnnouncementFilter struct {
	Category string
	Priority string
	Search   string
}

// FilterAnnouncements 按分类、优先级与关键字筛选公告
// 关键字不区分大小写，命中标题或正文任一即可；空关键字匹配全部
func FilterAnnouncements(announcements []model.Announcement, f AnnouncementFilter) []model.Announcement {
	term := strings.ToLower(f.Search)
	return filter(announcements, func(a *model.Announcement) bool {
		if !IsAll(f.Category) && a.Category != f.Category {
			return false
		}
		if !IsAll(f.Priority) && a.Priority != f.Priority {
			return false
		}
		return term == "" ||
			strings.Contains(strings.ToLower(a.Title), term) ||
			strings.Contains(strings.ToLower(a.Content), term)
	})
}

// DistinctCategories 公告分类筛选项，按首次出现顺序
func DistinctCategories(announcements []model.Announcement) []string {
	return distinct(announcements, func(a *model.Announcement) string { return a.Category })
}

// UnreadCount 未读公告数，每次调用重新计算
func UnreadCount(announcements []model.Announcement) int {
	n := 0
	for i := range announcements {
		if !announcements[i].IsRead {
			n++
		}
	}
	return n
}

// Recent 前 n 条公告
func Recent(announcements []model.Announcement, n int) []model.Announcement {
	return head(announcements, n)
}

func head[T any](items []T, n int) []T {
	if n <= 0 {
		return make([]T, 0)
	}
	if n > len(items) {
		n = len(items)
	}
	out := make([]T, n)
	copy(out, items[:n])
	return out
}
