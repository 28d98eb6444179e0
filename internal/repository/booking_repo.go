package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"campus-connect/internal/model"
)

// BookingRepository 预约数据访问接口（预约集合的唯一写入路径）
type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) error
	CreateChecked(ctx context.Context, booking *model.Booking, check func(existing []model.Booking) error) error
	GetByID(ctx context.Context, id string) (*model.Booking, error)
	List(ctx context.Context) ([]model.Booking, error)
	Cancel(ctx context.Context, id string) (bool, error)
	ConfirmPendingBefore(ctx context.Context, cutoff time.Time) ([]model.Booking, error)
}

type bookingRepo struct {
	s *Session
}

// NewBookingRepo 创建 BookingRepository 实例
func NewBookingRepo(s *Session) BookingRepository {
	return &bookingRepo{s: s}
}

// Create 生成新 ID 并追加到集合末尾；Status 与 CreatedAt 由调用方设置
func (r *bookingRepo) Create(ctx context.Context, booking *model.Booking) error {
	return r.CreateChecked(ctx, booking, nil)
}

// CreateChecked 与 Create 相同，但先在同一把写锁内执行 check，check 返回错误时不写入。
// check 只能读取 existing，不得修改或在返回后持有它。
func (r *bookingRepo) CreateChecked(_ context.Context, booking *model.Booking, check func(existing []model.Booking) error) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if check != nil {
		if err := check(r.s.bookings); err != nil {
			return err
		}
	}

	booking.ID = r.newIDLocked()
	r.s.bookings = append(r.s.bookings, *booking)
	return nil
}

func (r *bookingRepo) newIDLocked() string {
	for {
		id := uuid.NewString()
		if r.indexLocked(id) < 0 {
			return id
		}
	}
}

func (r *bookingRepo) indexLocked(id string) int {
	for i := range r.s.bookings {
		if r.s.bookings[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *bookingRepo) GetByID(_ context.Context, id string) (*model.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	i := r.indexLocked(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	b := r.s.bookings[i]
	return &b, nil
}

// List 按插入顺序返回全部预约（含已取消）
func (r *bookingRepo) List(_ context.Context) ([]model.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return snapshot(r.s.bookings, false), nil
}

// Cancel 置为 cancelled；ID 不存在或已取消时返回 false
func (r *bookingRepo) Cancel(_ context.Context, id string) (bool, error) {
	return r.transition(id, model.BookingStatusCancelled), nil
}

func (r *bookingRepo) transition(id, next string) bool {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	i := r.indexLocked(id)
	if i < 0 || !r.s.bookings[i].CanTransitionTo(next) {
		return false
	}
	r.s.bookings[i].Status = next
	return true
}

// ConfirmPendingBefore 在一次加锁内确认所有创建时间早于 cutoff 的 pending 预约
func (r *bookingRepo) ConfirmPendingBefore(_ context.Context, cutoff time.Time) ([]model.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var confirmed []model.Booking
	for i := range r.s.bookings {
		b := &r.s.bookings[i]
		if !b.CanTransitionTo(model.BookingStatusConfirmed) || b.CreatedAt.After(cutoff) {
			continue
		}
		b.Status = model.BookingStatusConfirmed
		confirmed = append(confirmed, *b)
	}
	return confirmed, nil
}
