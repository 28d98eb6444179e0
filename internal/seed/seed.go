package seed

import (
	"time"

	"campus-connect/internal/model"
)

// Data 会话初始数据
type Data struct {
	User          model.User
	Announcements []model.Announcement
	Bookings      []model.Booking
	Venues        []model.Venue
	Courses       []model.Course
	MapLocations  []model.MapLocation
}

func parseCreated(s string) time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return t
}

// Default 返回一份全新的演示数据，每次调用互不共享底层切片
func Default() *Data {
	return &Data{
		User: model.User{
			ID:               "u-2024001",
			Name:             "Alex Johnson",
			Email:            "alex.johnson@campus.edu",
			StudentID:        "2024001",
			GPA:              3.72,
			CreditsCompleted: 96,
			TotalCredits:     128,
		},
		Announcements: []model.Announcement{
			{
				ID:       "a1",
				Title:    "Final Exam Schedule Released",
				Content:  "The final examination timetable for this semester is now available on the registrar portal. Check your exam venues carefully.",
				Time:     "2 hours ago",
				Priority: model.PriorityHigh,
				Category: "Academic",
			},
			{
				ID:       "a2",
				Title:    "Library Extended Hours",
				Content:  "The main library will stay open until midnight during the exam period, starting next Monday.",
				Time:     "5 hours ago",
				Priority: model.PriorityMedium,
				Category: "Facilities",
			},
			{
				ID:       "a3",
				Title:    "Career Fair Registration Open",
				Content:  "Over 60 employers will attend the spring career fair in the Student Center. Register to reserve an interview slot.",
				Time:     "1 day ago",
				Priority: model.PriorityMedium,
				Category: "Events",
			},
			{
				ID:       "a4",
				Title:    "Parking Lot B Maintenance",
				Content:  "Parking Lot B will be closed this weekend for resurfacing. Please use Lot C near the stadium.",
				Time:     "2 days ago",
				Priority: model.PriorityLow,
				Category: "Facilities",
				IsRead:   true,
			},
			{
				ID:       "a5",
				Title:    "Scholarship Application Deadline",
				Content:  "Applications for the merit scholarship close on Friday. Late submissions will not be accepted.",
				Time:     "3 days ago",
				Priority: model.PriorityHigh,
				Category: "Financial Aid",
			},
			{
				ID:       "a6",
				Title:    "Dining Hall Menu Survey",
				Content:  "Help us improve campus dining by completing a five-minute survey about this semester's menu.",
				Time:     "1 week ago",
				Priority: model.PriorityLow,
				Category: "Campus Life",
				IsRead:   true,
			},
		},
		Bookings: []model.Booking{
			{
				ID:        "b1",
				Venue:     "Study Room A-101",
				VenueID:   "v1",
				Date:      "2024-12-20",
				StartTime: "14:00",
				EndTime:   "16:00",
				Status:    model.BookingStatusConfirmed,
				Purpose:   "Group project meeting",
				Attendees: 4,
				CreatedAt: parseCreated("2024-12-15T09:30:00Z"),
			},
			{
				ID:        "b2",
				Venue:     "Computer Lab C-204",
				VenueID:   "v3",
				Date:      "2024-12-22",
				StartTime: "10:00",
				EndTime:   "12:00",
				Status:    model.BookingStatusPending,
				Purpose:   "Programming workshop",
				Attendees: 15,
				CreatedAt: parseCreated("2024-12-16T14:05:00Z"),
			},
			{
				ID:        "b3",
				Venue:     "Conference Hall B",
				VenueID:   "v2",
				Date:      "2024-12-23",
				StartTime: "09:00",
				EndTime:   "11:00",
				Status:    model.BookingStatusConfirmed,
				Purpose:   "Student council session",
				Attendees: 30,
				CreatedAt: parseCreated("2024-12-16T16:40:00Z"),
			},
		},
		Venues: []model.Venue{
			{
				ID:        "v1",
				Name:      "Study Room A-101",
				Type:      model.VenueTypeStudyRoom,
				Capacity:  8,
				Location:  "Library Building, Floor 1",
				Amenities: []string{"Whiteboard", "Projector", "Wi-Fi"},
				Available: true,
			},
			{
				ID:        "v2",
				Name:      "Conference Hall B",
				Type:      model.VenueTypeConferenceHall,
				Capacity:  50,
				Location:  "Administration Building, Floor 2",
				Amenities: []string{"Audio System", "Video Conferencing", "Projector", "Wi-Fi"},
				Available: true,
			},
			{
				ID:        "v3",
				Name:      "Computer Lab C-204",
				Type:      model.VenueTypeLab,
				Capacity:  30,
				Location:  "Engineering Building, Floor 2",
				Amenities: []string{"30 Workstations", "Projector", "Printer"},
				Available: false,
			},
			{
				ID:        "v4",
				Name:      "Main Auditorium",
				Type:      model.VenueTypeAuditorium,
				Capacity:  300,
				Location:  "Arts Center",
				Amenities: []string{"Stage Lighting", "Sound System", "Projector"},
				Available: true,
			},
			{
				ID:        "v5",
				Name:      "Study Room A-205",
				Type:      model.VenueTypeStudyRoom,
				Capacity:  6,
				Location:  "Library Building, Floor 2",
				Amenities: []string{"Whiteboard", "Wi-Fi"},
				Available: true,
			},
			{
				ID:        "v6",
				Name:      "Chemistry Lab D-110",
				Type:      model.VenueTypeLab,
				Capacity:  20,
				Location:  "Science Building, Floor 1",
				Amenities: []string{"Fume Hoods", "Safety Showers", "Lab Benches"},
				Available: true,
			},
		},
		Courses: []model.Course{
			{ID: "c1", Code: "CS301", Name: "Data Structures and Algorithms", Credits: 4, Grade: model.GradeInProgress, Semester: "Fall 2024", Instructor: "Dr. Sarah Chen", Progress: 75},
			{ID: "c2", Code: "CS315", Name: "Database Systems", Credits: 3, Grade: model.GradeInProgress, Semester: "Fall 2024", Instructor: "Prof. Michael Brown", Progress: 68},
			{ID: "c3", Code: "MATH240", Name: "Linear Algebra", Credits: 3, Grade: model.GradeInProgress, Semester: "Fall 2024", Instructor: "Dr. Emily Davis", Progress: 82},
			{ID: "c4", Code: "CS201", Name: "Object-Oriented Programming", Credits: 4, Grade: "A", Semester: "Spring 2024", Instructor: "Dr. James Wilson", Progress: 100},
			{ID: "c5", Code: "CS210", Name: "Computer Architecture", Credits: 3, Grade: "B+", Semester: "Spring 2024", Instructor: "Prof. Linda Martinez", Progress: 100},
			{ID: "c6", Code: "ENG102", Name: "Technical Writing", Credits: 2, Grade: "A-", Semester: "Spring 2024", Instructor: "Dr. Robert Taylor", Progress: 100},
			{ID: "c7", Code: "MATH201", Name: "Discrete Mathematics", Credits: 3, Grade: "A", Semester: "Fall 2023", Instructor: "Dr. Emily Davis", Progress: 100},
		},
		MapLocations: []model.MapLocation{
			{
				ID:          "l1",
				Name:        "Main Library",
				Type:        model.LocationTypeBuilding,
				Coordinates: model.Coordinates{X: 30, Y: 40},
				Description: "Central library with study rooms, archives and a 24-hour reading room.",
				Hours:       "7:00 AM - 12:00 AM",
			},
			{
				ID:          "l2",
				Name:        "Engineering Building",
				Type:        model.LocationTypeBuilding,
				Coordinates: model.Coordinates{X: 60, Y: 25},
				Description: "Computer labs, lecture halls and faculty offices for the School of Engineering.",
			},
			{
				ID:          "l3",
				Name:        "Student Center",
				Type:        model.LocationTypeFacility,
				Coordinates: model.Coordinates{X: 45, Y: 60},
				Description: "Student services, clubs, bookstore and the career development office.",
				Hours:       "8:00 AM - 10:00 PM",
			},
			{
				ID:          "l4",
				Name:        "Parking Lot C",
				Type:        model.LocationTypeParking,
				Coordinates: model.Coordinates{X: 80, Y: 75},
				Description: "Open-air parking near the stadium with EV charging stations.",
			},
			{
				ID:          "l5",
				Name:        "Central Dining Hall",
				Type:        model.LocationTypeDining,
				Coordinates: model.Coordinates{X: 50, Y: 45},
				Description: "All-you-can-eat dining hall with vegetarian and halal options.",
				Hours:       "7:00 AM - 9:00 PM",
			},
			{
				ID:          "l6",
				Name:        "Recreation Center",
				Type:        model.LocationTypeFacility,
				Coordinates: model.Coordinates{X: 20, Y: 70},
				Description: "Gym, indoor pool and climbing wall open to all students.",
				Hours:       "6:00 AM - 11:00 PM",
			},
		},
	}
}
