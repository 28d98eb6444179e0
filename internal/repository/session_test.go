package repository

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"campus-connect/internal/model"
	"campus-connect/internal/seed"
)

// ── 测试辅助 ──

func newTestRepository() *Repository {
	return NewRepository(NewSession(seed.Default()))
}

func newEmptyRepository() *Repository {
	return NewRepository(NewSession(&seed.Data{}))
}

// ── Session 隔离性 ──

func TestSession_CopiesSeedData(t *testing.T) {
	data := seed.Default()
	repo := NewRepository(NewSession(data))

	data.Venues[0].Amenities[0] = "已篡改"
	data.Announcements[0].IsRead = true

	v, err := repo.Venue.GetByID(context.Background(), data.Venues[0].ID)
	if err != nil {
		t.Fatalf("GetByID 应成功: %v", err)
	}
	if v.Amenities[0] == "已篡改" {
		t.Error("会话不应与初始数据共享 Amenities 底层数组")
	}

	list, _ := repo.Announcement.List(context.Background())
	if list[0].IsRead {
		t.Error("会话不应与初始数据共享公告切片")
	}
}

func TestSession_ListReturnsSnapshot(t *testing.T) {
	repo := newTestRepository()
	ctx := context.Background()

	venues, _ := repo.Venue.List(ctx)
	venues[0].Available = !venues[0].Available
	venues[0].Amenities[0] = "已篡改"

	again, _ := repo.Venue.List(ctx)
	if again[0].Available == venues[0].Available {
		t.Error("修改 List 返回值不应影响会话状态")
	}
	if again[0].Amenities[0] == "已篡改" {
		t.Error("Venue 快照应深拷贝 Amenities")
	}

	bookings, _ := repo.Booking.List(ctx)
	bookings[0].Status = model.BookingStatusCancelled
	fresh, _ := repo.Booking.GetByID(ctx, bookings[0].ID)
	if fresh.Status == model.BookingStatusCancelled {
		t.Error("修改预约快照不应影响会话状态")
	}
	if fresh.CreatedAt.IsZero() {
		t.Error("预约快照应保留 CreatedAt")
	}
}

func TestSession_EmptyCollections(t *testing.T) {
	repo := newEmptyRepository()

	bookings, err := repo.Booking.List(context.Background())
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if bookings == nil || len(bookings) != 0 {
		t.Errorf("空集合应返回非 nil 空切片，实际 %#v", bookings)
	}
}

// ── BookingRepository ──

func TestBookingRepo_Create_AssignsUniqueID(t *testing.T) {
	repo := newTestRepository()
	ctx := context.Background()

	seen := map[string]bool{}
	existing, _ := repo.Booking.List(ctx)
	for _, b := range existing {
		seen[b.ID] = true
	}

	for i := 0; i < 20; i++ {
		b := &model.Booking{VenueID: "v1", Status: model.BookingStatusPending}
		if err := repo.Booking.Create(ctx, b); err != nil {
			t.Fatalf("Create 应成功: %v", err)
		}
		if b.ID == "" || seen[b.ID] {
			t.Fatalf("ID 应非空且唯一，实际 %q", b.ID)
		}
		seen[b.ID] = true
	}

	all, _ := repo.Booking.List(ctx)
	if len(all) != len(existing)+20 {
		t.Errorf("期望 %d 条预约，实际 %d", len(existing)+20, len(all))
	}
}

func TestBookingRepo_Create_PreservesInsertionOrder(t *testing.T) {
	repo := newEmptyRepository()
	ctx := context.Background()

	var ids []string
	for _, purpose := range []string{"first", "second", "third"} {
		b := &model.Booking{Purpose: purpose, Status: model.BookingStatusPending}
		_ = repo.Booking.Create(ctx, b)
		ids = append(ids, b.ID)
	}

	all, _ := repo.Booking.List(ctx)
	for i, b := range all {
		if b.ID != ids[i] {
			t.Errorf("位置 %d 期望 %s，实际 %s", i, ids[i], b.ID)
		}
	}
}

func TestBookingRepo_CreateChecked_RejectsWithoutWrite(t *testing.T) {
	repo := newTestRepository()
	ctx := context.Background()
	before, _ := repo.Booking.List(ctx)

	errConflict := errors.New("conflict")
	var seen int
	b := &model.Booking{VenueID: "v1", Status: model.BookingStatusPending}
	err := repo.Booking.CreateChecked(ctx, b, func(existing []model.Booking) error {
		seen = len(existing)
		return errConflict
	})
	if !errors.Is(err, errConflict) {
		t.Fatalf("期望透传 check 错误，实际: %v", err)
	}
	if seen != len(before) {
		t.Errorf("check 应看到全部 %d 条预约，实际=%d", len(before), seen)
	}
	if b.ID != "" {
		t.Errorf("被拒绝时不应分配 ID，实际 %q", b.ID)
	}

	after, _ := repo.Booking.List(ctx)
	if len(after) != len(before) {
		t.Errorf("被拒绝时不应写入，期望 %d 条，实际 %d", len(before), len(after))
	}

	if err := repo.Booking.CreateChecked(ctx, b, func([]model.Booking) error { return nil }); err != nil {
		t.Fatalf("CreateChecked 应成功: %v", err)
	}
	if b.ID == "" {
		t.Error("期望生成新的预约ID")
	}
}

func TestBookingRepo_GetByID_NotFound(t *testing.T) {
	repo := newTestRepository()

	_, err := repo.Booking.GetByID(context.Background(), "nonexistent")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("期望 ErrNotFound，实际: %v", err)
	}
}

func TestBookingRepo_Cancel(t *testing.T) {
	repo := newTestRepository()
	ctx := context.Background()

	changed, err := repo.Booking.Cancel(ctx, "b1")
	if err != nil || !changed {
		t.Fatalf("首次取消应生效: changed=%v err=%v", changed, err)
	}

	changed, _ = repo.Booking.Cancel(ctx, "b1")
	if changed {
		t.Error("重复取消应为 no-op")
	}

	changed, _ = repo.Booking.Cancel(ctx, "nonexistent")
	if changed {
		t.Error("取消不存在的预约应为 no-op")
	}

	b, _ := repo.Booking.GetByID(ctx, "b1")
	if b.Status != model.BookingStatusCancelled {
		t.Errorf("期望 cancelled，实际 %s", b.Status)
	}
}

func TestBookingRepo_ConfirmPendingBefore(t *testing.T) {
	repo := newEmptyRepository()
	ctx := context.Background()
	now := time.Now()

	old := &model.Booking{Status: model.BookingStatusPending, CreatedAt: now.Add(-time.Hour)}
	recent := &model.Booking{Status: model.BookingStatusPending, CreatedAt: now}
	cancelled := &model.Booking{Status: model.BookingStatusCancelled, CreatedAt: now.Add(-time.Hour)}
	for _, b := range []*model.Booking{old, recent, cancelled} {
		_ = repo.Booking.Create(ctx, b)
	}

	confirmed, err := repo.Booking.ConfirmPendingBefore(ctx, now.Add(-time.Minute))
	if err != nil {
		t.Fatalf("ConfirmPendingBefore 应成功: %v", err)
	}
	if len(confirmed) != 1 || confirmed[0].ID != old.ID {
		t.Fatalf("应只确认较早的 pending 预约，实际 %+v", confirmed)
	}

	got, _ := repo.Booking.GetByID(ctx, recent.ID)
	if got.Status != model.BookingStatusPending {
		t.Error("较新的预约应保持 pending")
	}
	got, _ = repo.Booking.GetByID(ctx, cancelled.ID)
	if got.Status != model.BookingStatusCancelled {
		t.Error("已取消的预约不可被确认")
	}
}

func TestBookingRepo_ConcurrentCreate(t *testing.T) {
	repo := newEmptyRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repo.Booking.Create(ctx, &model.Booking{Status: model.BookingStatusPending})
		}()
	}
	wg.Wait()

	all, _ := repo.Booking.List(ctx)
	if len(all) != 50 {
		t.Errorf("并发创建后期望 50 条，实际 %d", len(all))
	}
}

// ── AnnouncementRepository ──

func TestAnnouncementRepo_MarkAsRead(t *testing.T) {
	repo := newTestRepository()
	ctx := context.Background()

	changed, err := repo.Announcement.MarkAsRead(ctx, "a1")
	if err != nil || !changed {
		t.Fatalf("未读公告应可标记已读: changed=%v err=%v", changed, err)
	}
	if changed, _ := repo.Announcement.MarkAsRead(ctx, "a1"); changed {
		t.Error("已读公告重复标记应为 no-op")
	}
	if changed, _ := repo.Announcement.MarkAsRead(ctx, "nonexistent"); changed {
		t.Error("不存在的公告应为 no-op")
	}

	list, _ := repo.Announcement.List(ctx)
	for _, a := range list {
		if a.ID == "a1" && !a.IsRead {
			t.Error("a1 应为已读")
		}
	}
}

// ── 只读仓库 ──

func TestVenueRepo_GetByID_NotFound(t *testing.T) {
	repo := newTestRepository()

	if _, err := repo.Venue.GetByID(context.Background(), "nonexistent"); !errors.Is(err, ErrNotFound) {
		t.Errorf("期望 ErrNotFound，实际: %v", err)
	}
}

func TestLocationRepo_GetByID(t *testing.T) {
	repo := newTestRepository()

	loc, err := repo.Location.GetByID(context.Background(), "l1")
	if err != nil {
		t.Fatalf("GetByID 应成功: %v", err)
	}
	if loc.Name != "Main Library" {
		t.Errorf("期望 Main Library，实际 %s", loc.Name)
	}
	if _, err := repo.Location.GetByID(context.Background(), "nonexistent"); !errors.Is(err, ErrNotFound) {
		t.Errorf("期望 ErrNotFound，实际: %v", err)
	}
}

func TestUserRepo_GetCurrent(t *testing.T) {
	repo := newTestRepository()

	u, err := repo.User.GetCurrent(context.Background())
	if err != nil {
		t.Fatalf("GetCurrent 应成功: %v", err)
	}
	if u.CreditsCompleted > u.TotalCredits {
		t.Errorf("已修学分不应超过总学分: %d > %d", u.CreditsCompleted, u.TotalCredits)
	}
}
