package models

// Expense is a single spending record. TripID optionally ties it to a trip.
type Expense struct {
	ID          string  `json:"_id"`
	UserID      string  `json:"userId"`
	TripID      string  `json:"tripId,omitempty"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Date        Date    `json:"date"`
}

// ExpensePatch is a partial expense update; nil fields are left untouched.
type ExpensePatch struct {
	Amount      *float64
	Description *string
	Date        *Date
	TripID      *string
}

func (p ExpensePatch) Empty() bool {
	return p.Amount == nil && p.Description == nil && p.Date == nil && p.TripID == nil
}

// ExpenseFilter narrows expense listings. Empty fields do not filter.
type ExpenseFilter struct {
	UserID string
	TripID string
}

// Summary is the per-user dashboard snapshot.
type Summary struct {
	TripCount     int     `json:"tripCount"`
	UpcomingTrips []Trip  `json:"upcomingTrips"`
	ExpenseCount  int     `json:"expenseCount"`
	ExpenseTotal  float64 `json:"expenseTotal"`
}
