package query

import (
	"reflect"
	"testing"

	"campus-connect/internal/model"
	"campus-connect/internal/seed"
)

// ── Venue ──

func TestFilterVenues_AllIsIdentity(t *testing.T) {
	venues := seed.Default().Venues

	for _, all := range []string{All, ""} {
		got := FilterVenues(venues, all)
		if !reflect.DeepEqual(got, venues) {
			t.Errorf("type=%q 应返回全部场地", all)
		}
	}
}

func TestFilterVenues_ByType(t *testing.T) {
	venues := []model.Venue{
		{ID: "v1", Type: model.VenueTypeLab, Capacity: 10, Available: true},
		{ID: "v2", Type: model.VenueTypeStudyRoom, Capacity: 4, Available: true},
		{ID: "v3", Type: model.VenueTypeLab, Capacity: 20, Available: false},
	}

	got := FilterVenues(venues, model.VenueTypeLab)
	if len(got) != 2 || got[0].ID != "v1" || got[1].ID != "v3" {
		t.Errorf("期望 [v1 v3]，实际 %+v", got)
	}

	if got := FilterVenues(venues, "gym"); len(got) != 0 {
		t.Errorf("未知类型应返回空，实际 %d 条", len(got))
	}
}

func TestFilterVenues_DoesNotMutateInput(t *testing.T) {
	venues := []model.Venue{{ID: "v1", Type: model.VenueTypeLab}, {ID: "v2", Type: model.VenueTypeAuditorium}}

	got := FilterVenues(venues, model.VenueTypeAuditorium)
	got[0].ID = "changed"

	if venues[1].ID != "v2" {
		t.Error("筛选结果不应与输入共享底层数组")
	}
}

// ── Announcement ──

func announcementsFixture() []model.Announcement {
	return []model.Announcement{
		{ID: "a1", Title: "Final Exam Schedule", Content: "Check the registrar portal", Priority: model.PriorityHigh, Category: "Academic"},
		{ID: "a2", Title: "Library Hours", Content: "Open until MIDNIGHT during exams", Priority: model.PriorityMedium, Category: "Facilities"},
		{ID: "a3", Title: "Career Fair", Content: "Employers on campus", Priority: model.PriorityMedium, Category: "Events", IsRead: true},
		{ID: "a4", Title: "Parking closure", Content: "Lot B closed", Priority: model.PriorityLow, Category: "Facilities", IsRead: true},
	}
}

func ids(items []model.Announcement) []string {
	out := make([]string, 0, len(items))
	for _, a := range items {
		out = append(out, a.ID)
	}
	return out
}

func TestFilterAnnouncements_NoFilter(t *testing.T) {
	list := announcementsFixture()

	got := FilterAnnouncements(list, AnnouncementFilter{Category: All, Priority: All})
	if len(got) != len(list) {
		t.Errorf("无筛选条件应返回全部，实际 %d 条", len(got))
	}
}

func TestFilterAnnouncements_Conjunction(t *testing.T) {
	list := announcementsFixture()

	got := FilterAnnouncements(list, AnnouncementFilter{Category: "Facilities", Priority: model.PriorityMedium})
	if !reflect.DeepEqual(ids(got), []string{"a2"}) {
		t.Errorf("期望 [a2]，实际 %v", ids(got))
	}
}

func TestFilterAnnouncements_SearchCaseInsensitive(t *testing.T) {
	list := announcementsFixture()

	got := FilterAnnouncements(list, AnnouncementFilter{Search: "midnight"})
	if !reflect.DeepEqual(ids(got), []string{"a2"}) {
		t.Errorf("正文命中应返回 a2，实际 %v", ids(got))
	}

	got = FilterAnnouncements(list, AnnouncementFilter{Search: "EXAM"})
	if !reflect.DeepEqual(ids(got), []string{"a1", "a2"}) {
		t.Errorf("标题或正文命中应返回 [a1 a2]，实际 %v", ids(got))
	}
}

func TestFilterAnnouncements_Idempotent(t *testing.T) {
	list := announcementsFixture()
	f := AnnouncementFilter{Category: "Facilities", Search: "o"}

	once := FilterAnnouncements(list, f)
	twice := FilterAnnouncements(once, f)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("重复筛选结果应一致: %v vs %v", ids(once), ids(twice))
	}
}

func TestDistinctCategories_FirstSeenOrder(t *testing.T) {
	got := DistinctCategories(announcementsFixture())
	want := []string{"Academic", "Facilities", "Events"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("期望 %v，实际 %v", want, got)
	}
}

func TestUnreadCount(t *testing.T) {
	list := []model.Announcement{{ID: "a1"}, {ID: "a2"}}
	if n := UnreadCount(list); n != 2 {
		t.Fatalf("期望 2，实际 %d", n)
	}

	list[0].IsRead = true
	if n := UnreadCount(list); n != 1 {
		t.Errorf("期望 1，实际 %d", n)
	}
}

func TestRecent(t *testing.T) {
	list := announcementsFixture()

	if got := Recent(list, 3); !reflect.DeepEqual(ids(got), []string{"a1", "a2", "a3"}) {
		t.Errorf("期望前 3 条，实际 %v", ids(got))
	}
	if got := Recent(list, 10); len(got) != len(list) {
		t.Errorf("n 超过长度时应返回全部，实际 %d", len(got))
	}
	if got := Recent(list, 0); got == nil || len(got) != 0 {
		t.Errorf("n=0 应返回非 nil 空切片，实际 %#v", got)
	}
}

// ── Course ──

func TestFilterCourses(t *testing.T) {
	courses := seed.Default().Courses

	if got := FilterCourses(courses, All); len(got) != len(courses) {
		t.Errorf("all 应返回全部课程，实际 %d", len(got))
	}

	got := FilterCourses(courses, "Spring 2024")
	for _, c := range got {
		if c.Semester != "Spring 2024" {
			t.Errorf("不应包含其他学期课程: %+v", c)
		}
	}
	if len(got) == 0 {
		t.Error("Spring 2024 应有课程")
	}
}

func TestDistinctSemesters(t *testing.T) {
	courses := []model.Course{
		{Semester: "Fall 2024"}, {Semester: "Spring 2024"}, {Semester: "Fall 2024"}, {Semester: "Fall 2023"},
	}
	want := []string{"Fall 2024", "Spring 2024", "Fall 2023"}
	if got := DistinctSemesters(courses); !reflect.DeepEqual(got, want) {
		t.Errorf("期望 %v，实际 %v", want, got)
	}
}

func TestInProgressCourses(t *testing.T) {
	courses := []model.Course{
		{ID: "c1", Grade: model.GradeInProgress},
		{ID: "c2", Grade: "A"},
	}
	got := InProgressCourses(courses)
	if len(got) != 1 || got[0].ID != "c1" {
		t.Errorf("期望 [c1]，实际 %+v", got)
	}
}

// ── Booking ──

func TestActiveBookings_ExcludesCancelled(t *testing.T) {
	bookings := []model.Booking{
		{ID: "b1", Status: model.BookingStatusConfirmed},
		{ID: "b2", Status: model.BookingStatusCancelled},
	}

	got := ActiveBookings(bookings)
	if len(got) != 1 || got[0].ID != "b1" {
		t.Errorf("期望只返回 b1，实际 %+v", got)
	}
}

func TestActiveBookings_PreservesOrder(t *testing.T) {
	bookings := []model.Booking{
		{ID: "b3", Status: model.BookingStatusPending},
		{ID: "b1", Status: model.BookingStatusCancelled},
		{ID: "b2", Status: model.BookingStatusConfirmed},
	}

	got := ActiveBookings(bookings)
	if len(got) != 2 || got[0].ID != "b3" || got[1].ID != "b2" {
		t.Errorf("应保持插入顺序，实际 %+v", got)
	}
}

func TestUpcomingBookings(t *testing.T) {
	bookings := []model.Booking{
		{ID: "b1", Status: model.BookingStatusConfirmed},
		{ID: "b2", Status: model.BookingStatusPending},
		{ID: "b3", Status: model.BookingStatusConfirmed},
		{ID: "b4", Status: model.BookingStatusConfirmed},
	}

	got := UpcomingBookings(bookings, 2)
	if len(got) != 2 || got[0].ID != "b1" || got[1].ID != "b3" {
		t.Errorf("期望 [b1 b3]，实际 %+v", got)
	}
	if got := UpcomingBookings(bookings, 0); len(got) != 0 {
		t.Errorf("limit=0 应返回空，实际 %d", len(got))
	}
	if got := UpcomingBookings(bookings, -1); len(got) != 0 {
		t.Errorf("limit<0 应返回空，实际 %d", len(got))
	}
}

func TestCountByStatus(t *testing.T) {
	bookings := seed.Default().Bookings
	if n := CountByStatus(bookings, model.BookingStatusConfirmed); n != 2 {
		t.Errorf("种子数据应有 2 条已确认预约，实际 %d", n)
	}
}

// ── Location ──

func TestSearchLocations(t *testing.T) {
	locations := seed.Default().MapLocations

	if got := SearchLocations(locations, ""); len(got) != len(locations) {
		t.Errorf("空关键字应返回全部，实际 %d", len(got))
	}

	got := SearchLocations(locations, "LIBRARY")
	if len(got) != 1 || got[0].ID != "l1" {
		t.Errorf("期望命中 Main Library，实际 %+v", got)
	}

	got = SearchLocations(locations, "ev charging")
	if len(got) != 1 || got[0].ID != "l4" {
		t.Errorf("描述命中应返回 l4，实际 %+v", got)
	}
}
