package repository

import (
	"context"

	"campus-connect/internal/model"
)

// AnnouncementRepository 公告数据访问接口（IsRead 的唯一写入路径）
type AnnouncementRepository interface {
	List(ctx context.Context) ([]model.Announcement, error)
	MarkAsRead(ctx context.Context, id string) (bool, error)
}

type announcementRepo struct {
	s *Session
}

// NewAnnouncementRepo 创建 AnnouncementRepository 实例
func NewAnnouncementRepo(s *Session) AnnouncementRepository {
	return &announcementRepo{s: s}
}

func (r *announcementRepo) List(_ context.Context) ([]model.Announcement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return snapshot(r.s.announcements, false), nil
}

// MarkAsRead 仅允许 false → true；ID 不存在或已读时返回 false
func (r *announcementRepo) MarkAsRead(_ context.Context, id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.announcements {
		a := &r.s.announcements[i]
		if a.ID != id {
			continue
		}
		if a.IsRead {
			return false, nil
		}
		a.IsRead = true
		return true, nil
	}
	return false, nil
}
