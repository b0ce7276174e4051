package models

import "time"

// Trip is a planned journey owned by the user whose uid is in UserUID.
type Trip struct {
	ID          string    `json:"_id"`
	TripName    string    `json:"tripName"`
	Destination string    `json:"destination"`
	StartDate   Date      `json:"startDate"`
	EndDate     Date      `json:"endDate"`
	UserUID     string    `json:"userUid,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TripPatch is a partial trip update; nil fields are left untouched.
type TripPatch struct {
	TripName    *string
	Destination *string
	StartDate   *Date
	EndDate     *Date
}

func (p TripPatch) Empty() bool {
	return p.TripName == nil && p.Destination == nil && p.StartDate == nil && p.EndDate == nil
}
