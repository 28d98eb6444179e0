package service

import (
	"context"
	"testing"

	"go.uber.org/zap"
)

func TestDashboardService_Get(t *testing.T) {
	repo := newTestRepo()
	svc := NewDashboardService(testBookingConfig(), repo, zap.NewNop())
	ctx := context.Background()

	d, err := svc.Get(ctx)
	if err != nil {
		t.Fatalf("Get 应成功: %v", err)
	}
	if d.User.Name != "Alex Johnson" {
		t.Errorf("期望User=Alex Johnson，实际=%s", d.User.Name)
	}
	if d.Stats.ConfirmedBookings != 2 {
		t.Errorf("期望已确认预约=2，实际=%d", d.Stats.ConfirmedBookings)
	}
	if d.Stats.UnreadCount != 4 {
		t.Errorf("期望UnreadCount=4，实际=%d", d.Stats.UnreadCount)
	}
	if len(d.RecentAnnouncements) != 3 || d.RecentAnnouncements[0].ID != "a1" {
		t.Errorf("期望最近 3 条公告以 a1 开头，实际=%+v", d.RecentAnnouncements)
	}
	if len(d.UpcomingBookings) != 2 {
		t.Errorf("期望即将到来的预约 2 条，实际=%d", len(d.UpcomingBookings))
	}
}

func TestDashboardService_Get_ReflectsMutations(t *testing.T) {
	repo := newTestRepo()
	svc := NewDashboardService(testBookingConfig(), repo, zap.NewNop())
	ctx := context.Background()

	if _, err := repo.Booking.Cancel(ctx, "b1"); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.Announcement.MarkAsRead(ctx, "a1"); err != nil {
		t.Fatal(err)
	}

	d, err := svc.Get(ctx)
	if err != nil {
		t.Fatalf("Get 应成功: %v", err)
	}
	if d.Stats.ConfirmedBookings != 1 {
		t.Errorf("期望已确认预约=1，实际=%d", d.Stats.ConfirmedBookings)
	}
	if d.Stats.UnreadCount != 3 {
		t.Errorf("期望UnreadCount=3，实际=%d", d.Stats.UnreadCount)
	}
	if len(d.UpcomingBookings) != 1 || d.UpcomingBookings[0].ID != "b3" {
		t.Errorf("期望即将到来的预约为 [b3]，实际=%+v", d.UpcomingBookings)
	}
}
