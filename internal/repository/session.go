package repository

import (
	"errors"
	"sync"

	"github.com/jinzhu/copier"

	"campus-connect/internal/model"
	"campus-connect/internal/seed"
)

// ErrNotFound 按 ID 查询的记录不存在
var ErrNotFound = errors.New("记录不存在")

// Session 会话状态的唯一持有者
//
// 所有集合共用一把锁：每个写操作在锁内执行完毕后才处理下一个事件，
// 从而在并发的 HTTP 请求下保持"事件串行、运行到完成"的语义。
// 派生视图（筛选结果、未读数）不在此缓存，每次读取时重新计算。
type Session struct {
	mu sync.RWMutex

	user          model.User
	announcements []model.Announcement
	bookings      []model.Booking
	venues        []model.Venue
	courses       []model.Course
	locations     []model.MapLocation
}

// NewSession 以初始数据创建会话；会话持有数据的独立副本
func NewSession(data *seed.Data) *Session {
	return &Session{
		user:          data.User,
		announcements: snapshot(data.Announcements, false),
		bookings:      snapshot(data.Bookings, false),
		venues:        snapshot(data.Venues, true),
		courses:       snapshot(data.Courses, false),
		locations:     snapshot(data.MapLocations, false),
	}
}

// snapshot 复制切片，调用方对返回值的修改不会影响会话状态
// deep 用于含切片字段的类型（如 Venue.Amenities）；含 time.Time 的类型必须浅拷贝
func snapshot[T any](src []T, deep bool) []T {
	out := make([]T, 0, len(src))
	if len(src) == 0 {
		return out
	}
	if err := copier.CopyWithOption(&out, &src, copier.Option{DeepCopy: deep}); err != nil {
		// copier 仅在类型不匹配时报错，同类型切片不会走到这里
		panic(err)
	}
	return out
}
