package project

import "time"

// Project is a billable project an employee can log time against.
type Project struct {
	ID        string
	Name      string
	ClientName *string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TaskCategory is the kind of work a row records (development, review,
// meetings, ...). A row is always a project plus a category.
type TaskCategory struct {
	ID        string
	Name      string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Assignment links a user to a project they may log time on.
type Assignment struct {
	UserID    string
	ProjectID string
	CreatedAt time.Time
}
