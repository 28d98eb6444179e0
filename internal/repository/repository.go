package repository

// Repository 所有 Repository 的聚合入口，共享同一个 Session
type Repository struct {
	User         UserRepository
	Announcement AnnouncementRepository
	Booking      BookingRepository
	Venue        VenueRepository
	Course       CourseRepository
	Location     LocationRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(s *Session) *Repository {
	return &Repository{
		User:         NewUserRepo(s),
		Announcement: NewAnnouncementRepo(s),
		Booking:      NewBookingRepo(s),
		Venue:        NewVenueRepo(s),
		Course:       NewCourseRepo(s),
		Location:     NewLocationRepo(s),
	}
}
