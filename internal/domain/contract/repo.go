package contract

import (
	"context"
	"time"

	"github.com/classdesk/classbot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Group() GroupRepo
	Member() MemberRepo
	Assignment() AssignmentRepo
	Reminder() ReminderRepo
}

// GroupRepo defines the contract for the group repository
type GroupRepo interface {
	Create(group *entity.Group) error
	GetByID(id int64) (*entity.Group, error)
	GetByName(name string) (*entity.Group, error)
	List() ([]*entity.Group, error)
}

// MemberRepo defines the contract for the member repository, including
// group enrollments
type MemberRepo interface {
	Create(member *entity.Member) error
	GetByID(id int64) (*entity.Member, error)
	GetByAddress(address string) (*entity.Member, error)
	List() ([]*entity.Member, error)
	ListByGroup(groupID int64) ([]*entity.Member, error)
	Enroll(memberID, groupID int64) error
	Unenroll(memberID, groupID int64) error
	SetActive(memberID int64, active bool) error
	SetRole(memberID int64, role string) error
}

// AssignmentRepo defines the contract for the assignment repository
type AssignmentRepo interface {
	Create(assignment *entity.Assignment) error
	GetByID(id int64) (*entity.Assignment, error)
	ListByGroup(groupID int64) ([]*entity.Assignment, error)
	Delete(id int64) error
	DeleteExpired(before time.Time) (int64, error)
}

// ReminderRepo defines the contract for the reminder job repository.
// Uniqueness of (assignment, fire instant, label) is enforced at the storage
// layer so concurrent scheduling attempts cannot produce duplicate rows.
type ReminderRepo interface {
	// CreateIfAbsent inserts the job unless an identical row already exists.
	// It reports whether a new row was written.
	CreateIfAbsent(job *entity.ReminderJob) (bool, error)
	ListByAssignment(assignmentID int64) ([]*entity.ReminderJob, error)
	// ListFiringAfter returns jobs whose fire instant is strictly after now.
	ListFiringAfter(now time.Time) ([]*entity.ReminderJob, error)
}
