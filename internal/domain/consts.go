package domain

import "time"

// Offset labels, ordered from earliest to latest before the deadline
const (
	LabelT24h = "T-24h"
	LabelT3h  = "T-3h"
	LabelT15m = "T-15m"
	LabelT0   = "T0"
)

// ReminderOffset pairs a label with its lead time before the deadline
type ReminderOffset struct {
	Label string
	Lead  time.Duration
}

// ReminderOffsets is the fixed table of reminders derived from every deadline.
// A job's fire instant is the deadline minus the lead time.
var ReminderOffsets = []ReminderOffset{
	{Label: LabelT24h, Lead: 24 * time.Hour},
	{Label: LabelT3h, Lead: 3 * time.Hour},
	{Label: LabelT15m, Lead: 15 * time.Minute},
	{Label: LabelT0, Lead: 0},
}

// Member roles
const (
	RoleGlobalAdmin = "global_admin"
	RoleLocalAdmin  = "local_admin"
	RoleUser        = "user"
)

// RoleNames maps role identifiers to their display names
var RoleNames = map[string]string{
	RoleGlobalAdmin: "Global administrator",
	RoleLocalAdmin:  "Local administrator",
	RoleUser:        "User",
}

// DeadlineLayout is the wall-clock format used for deadline input and display
const DeadlineLayout = "2006-01-02 15:04"
