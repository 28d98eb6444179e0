package model

import "time"

// 预约状态
//
//	pending ──(审批)──▶ confirmed
//	   │                   │
//	   └──────┬────────────┘
//	          ▼
//	      cancelled（终态）
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Booking 场地预约
type Booking struct {
	ID        string    `json:"id"`
	Venue     string    `json:"venue"` // 创建时冗余的场地名称
	VenueID   string    `json:"venue_id"`
	Date      string    `json:"date"`       // YYYY-MM-DD
	StartTime string    `json:"start_time"` // HH:MM
	EndTime   string    `json:"end_time"`   // HH:MM
	Status    string    `json:"status"`
	Purpose   string    `json:"purpose"`
	Attendees int       `json:"attendees"`
	CreatedAt time.Time `json:"created_at"`
}

// BookingInput 创建预约的输入（不含 ID）
// Status 字段会被忽略，新预约一律为 pending
type BookingInput struct {
	VenueID   string
	Date      string
	StartTime string
	EndTime   string
	Purpose   string
	Attendees int
	Status    string
}

// IsActive 未取消即为有效预约
func (b *Booking) IsActive() bool {
	return b.Status != BookingStatusCancelled
}

// CanTransitionTo 校验状态流转是否合法
func (b *Booking) CanTransitionTo(next string) bool {
	switch b.Status {
	case BookingStatusPending:
		return next == BookingStatusConfirmed || next == BookingStatusCancelled
	case BookingStatusConfirmed:
		return next == BookingStatusCancelled
	default:
		return false
	}
}
