package domain

import "time"

// Feedback is a read-only record submitted from the mobile app.
type Feedback struct {
	ID        string
	Name      string
	Email     string
	Subject   string
	Message   string
	Rating    int
	CreatedAt time.Time
}
