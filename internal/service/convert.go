package service

import (
	"time"

	"campus-connect/internal/dto"
	"campus-connect/internal/model"
)

// ── 模型 → 响应 DTO 转换 ──

func toUserResponse(u *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:               u.ID,
		Name:             u.Name,
		Email:            u.Email,
		StudentID:        u.StudentID,
		GPA:              u.GPA,
		CreditsCompleted: u.CreditsCompleted,
		TotalCredits:     u.TotalCredits,
		Avatar:           u.Avatar,
	}
}

func toBookingResponse(b *model.Booking) dto.BookingResponse {
	return dto.BookingResponse{
		ID:        b.ID,
		Venue:     b.Venue,
		VenueID:   b.VenueID,
		Date:      b.Date,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		Status:    b.Status,
		Purpose:   b.Purpose,
		Attendees: b.Attendees,
		CreatedAt: b.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toBookingResponses(list []model.Booking) []dto.BookingResponse {
	out := make([]dto.BookingResponse, 0, len(list))
	for i := range list {
		out = append(out, toBookingResponse(&list[i]))
	}
	return out
}

func toAnnouncementResponses(list []model.Announcement) []dto.AnnouncementResponse {
	out := make([]dto.AnnouncementResponse, 0, len(list))
	for _, a := range list {
		out = append(out, dto.AnnouncementResponse{
			ID:       a.ID,
			Title:    a.Title,
			Content:  a.Content,
			Time:     a.Time,
			Priority: a.Priority,
			Category: a.Category,
			IsRead:   a.IsRead,
		})
	}
	return out
}

func toVenueResponse(v *model.Venue) dto.VenueResponse {
	amenities := v.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	return dto.VenueResponse{
		ID:        v.ID,
		Name:      v.Name,
		Type:      v.Type,
		Capacity:  v.Capacity,
		Location:  v.Location,
		Amenities: amenities,
		Available: v.Available,
		Image:     v.Image,
	}
}

func toCourseResponses(list []model.Course) []dto.CourseResponse {
	out := make([]dto.CourseResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.CourseResponse{
			ID:         c.ID,
			Code:       c.Code,
			Name:       c.Name,
			Credits:    c.Credits,
			Grade:      c.Grade,
			Semester:   c.Semester,
			Instructor: c.Instructor,
			Progress:   c.Progress,
		})
	}
	return out
}

func toLocationResponse(l *model.MapLocation) dto.LocationResponse {
	return dto.LocationResponse{
		ID:          l.ID,
		Name:        l.Name,
		Type:        l.Type,
		Coordinates: dto.CoordinatesResponse{X: l.Coordinates.X, Y: l.Coordinates.Y},
		Description: l.Description,
		Hours:       l.Hours,
	}
}
