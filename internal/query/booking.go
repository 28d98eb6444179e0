package query

import "campus-connect/internal/model"

// ActiveBookings 排除已取消的预约，保持插入顺序
func ActiveBookings(bookings []model.Booking) []model.Booking {
	return filter(bookings, func(b *model.Booking) bool { return b.IsActive() })
}

// UpcomingBookings 已确认的预约中的前 limit 条；limit ≤ 0 返回空
func UpcomingBookings(bookings []model.Booking, limit int) []model.Booking {
	confirmed := filter(bookings, func(b *model.Booking) bool {
		return b.Status == model.BookingStatusConfirmed
	})
	return head(confirmed, limit)
}

// CountByStatus 指定状态的预约数
func CountByStatus(bookings []model.Booking, status string) int {
	n := 0
	for i := range bookings {
		if bookings[i].Status == status {
			n++
		}
	}
	return n
}
