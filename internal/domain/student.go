package domain

import "time"

// Student is the domain model for students registered with the mess.
type Student struct {
	ID           int64
	Name         string
	Enrollment   string
	PasswordHash string
	MessPass     string
	CreatedAt    time.Time
}

// StudentOverview joins a student with their latest subscription, for the admin roster.
type StudentOverview struct {
	Student
	SubscriptionDuration *string
	SubscriptionStatus   *string
}
