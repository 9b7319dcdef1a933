package contract

import (
	"context"
	"time"

	"github.com/classdesk/classbot/internal/domain/entity"
)

// ClassroomService is the administration surface used by the command handlers.
// Every operation authorizes the acting member by transport address before
// touching the store.
type ClassroomService interface {
	CreateGroup(ctx context.Context, actorAddress, name, timezone string) (*entity.Group, error)
	ListGroups(ctx context.Context, actorAddress string) ([]*entity.Group, error)
	RegisterStudent(ctx context.Context, actorAddress, displayName, address string) (*entity.Member, error)
	ListStudents(ctx context.Context, actorAddress string) ([]*entity.Member, error)
	Enroll(ctx context.Context, actorAddress string, memberID int64, groupName string) error
	Unenroll(ctx context.Context, actorAddress string, memberID int64, groupName string) error
	CreateAssignment(ctx context.Context, actorAddress, groupName, title, description string, dueAt time.Time) (*entity.Assignment, error)
	ListAssignments(ctx context.Context, actorAddress, groupName string) ([]*entity.Assignment, error)
	PurgeExpiredAssignments(ctx context.Context, actorAddress string) (int64, error)
	SetMemberRole(ctx context.Context, actorAddress string, memberID int64, role string) error
	SetMemberActive(ctx context.Context, actorAddress string, memberID int64, active bool) error
}

// ReminderScheduler turns an assignment's deadline into armed reminder jobs
// and re-arms persisted jobs after a restart.
type ReminderScheduler interface {
	ScheduleForAssignment(ctx context.Context, assignmentID int64) error
	Rehydrate(ctx context.Context) error
	Stop()
}

// Notifier delivers a fired reminder. All failures are contained inside the
// implementation; nothing propagates to the executor.
type Notifier interface {
	Deliver(ctx context.Context, assignmentID int64, label string)
}
