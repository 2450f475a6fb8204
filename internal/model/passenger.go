package model

// Passenger is a registered traveller. Bookings lists the ids of the
// passenger's bookings, newest last; cancelled bookings are removed.
type Passenger struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone"`
	Bookings []string `json:"bookings"`
}
