package entity

import "time"

// Group is a class of enrolled members owned by one administrator.
type Group struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	OwnerAddress string    `json:"owner_address" db:"owner_address"`
	Timezone     string    `json:"timezone" db:"timezone"` // IANA zone identifier
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Member is a registered user of the bot. Address is the transport address
// used for direct delivery; a member without one is unreachable but still
// accounted for in delivery summaries.
type Member struct {
	ID          int64     `json:"id" db:"id"`
	DisplayName string    `json:"display_name" db:"display_name"`
	Address     string    `json:"address" db:"address"`
	Role        string    `json:"role" db:"role"`
	IsActive    bool      `json:"is_active" db:"is_active"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// Reachable reports whether the member has a transport address to deliver to.
func (m *Member) Reachable() bool {
	return m.Address != ""
}

// Assignment is a unit of homework with a deadline, scoped to one group.
// DueAt and CreatedAt are always UTC; display conversion goes through the
// owning group's timezone.
type Assignment struct {
	ID          int64     `json:"id" db:"id"`
	GroupID     int64     `json:"group_id" db:"group_id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	DueAt       time.Time `json:"due_at" db:"due_at_utc"`
	CreatedAt   time.Time `json:"created_at" db:"created_at_utc"`
}

// ReminderJob is one scheduled, labeled notification instant derived from an
// assignment's deadline. The triple (assignment, fire instant, label) is
// unique; rows are never updated once written.
type ReminderJob struct {
	ID           int64     `json:"id" db:"id"`
	AssignmentID int64     `json:"assignment_id" db:"assignment_id"`
	FireAt       time.Time `json:"fire_at" db:"fire_at_utc"`
	Label        string    `json:"label" db:"label"`
}
