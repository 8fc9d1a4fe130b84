package domain

// MonthDelta holds a count for the current calendar month and the one before
// it, letting the dashboard render month-over-month trend arrows.
type MonthDelta struct {
	CurrentMonth int64 `json:"currentMonth"`
	LastMonth    int64 `json:"lastMonth"`
}

// RoleStats counts non-admin users, total and per month.
type RoleStats struct {
	Total        int64 `json:"total"`
	CurrentMonth int64 `json:"currentMonth"`
	LastMonth    int64 `json:"lastMonth"`
}

// DashboardStats is the headline block of the admin dashboard.
type DashboardStats struct {
	TotalUsers   int64      `json:"totalUsers"`
	UsersJoined  MonthDelta `json:"usersJoined"`
	TotalTrips   int64      `json:"totalTrips"`
	TripsCreated MonthDelta `json:"tripsCreated"`
	UserRole     RoleStats  `json:"userRole"`
}

// UserGrowth is one point of the signups-per-day chart.
// Day is formatted "2006-01-02".
type UserGrowth struct {
	Day   string `json:"day"`
	Count int64  `json:"count"`
}

// TripsByStyle is one bar of the trips-by-travel-style chart.
type TripsByStyle struct {
	TravelStyle string `json:"travelStyle"`
	Count       int64  `json:"count"`
}
