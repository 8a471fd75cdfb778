package domain

// TripStatistics is the derived per-trip summary view-model.
// TotalExpenses sums the expense collection only; activity costs are
// tracked separately on Trip.ActualSpent.
// Remaining may be negative when the trip is over budget; it is not clamped.
type TripStatistics struct {
	Trip               Trip               `json:"trip"`
	TotalStops         int                `json:"totalStops"`
	TotalActivities    int                `json:"totalActivities"`
	TotalExpenses      float64            `json:"totalExpenses"`
	Budget             float64            `json:"budget"`
	Remaining          float64            `json:"remaining"`
	ExpensesByCategory map[string]float64 `json:"expensesByCategory"`
}

// UserStatistics is the derived per-user summary across all of a user's trips.
// Countries and cities are counted distinctly; visiting Paris on three trips
// is still one city. A trip spanning the current instant is "ongoing": it is
// counted in TotalTrips but in neither UpcomingTrips nor PastTrips.
type UserStatistics struct {
	TotalTrips     int     `json:"totalTrips"`
	TotalCountries int     `json:"totalCountries"`
	TotalCities    int     `json:"totalCities"`
	TotalSpent     float64 `json:"totalSpent"`
	UpcomingTrips  int     `json:"upcomingTrips"`
	PastTrips      int     `json:"pastTrips"`
}
