package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/classdesk/classbot/internal/domain"
	"github.com/classdesk/classbot/internal/domain/contract"
	"github.com/classdesk/classbot/internal/domain/entity"
	"github.com/classdesk/classbot/internal/timeutil"
)

var (
	// ErrUnauthorized is returned when the acting member is unknown,
	// inactive or lacks the role an operation requires.
	ErrUnauthorized = errors.New("not authorized")

	// ErrRemindersIncomplete signals that the assignment row was saved but
	// at least one reminder job could not be persisted.
	ErrRemindersIncomplete = errors.New("assignment saved, reminders may be incomplete")
)

type classroomService struct {
	dm        contract.DataManager
	scheduler contract.ReminderScheduler
}

func newClassroom(dm contract.DataManager, scheduler contract.ReminderScheduler) *classroomService {
	return &classroomService{
		dm:        dm,
		scheduler: scheduler,
	}
}

// actor resolves and authorizes the acting member by transport address.
func (s *classroomService) actor(address string) (*entity.Member, error) {
	member, err := s.dm.Member().GetByAddress(address)
	if err != nil {
		return nil, fmt.Errorf("failed to look up actor: %w", err)
	}
	if member == nil || !member.IsActive {
		return nil, ErrUnauthorized
	}
	return member, nil
}

func (s *classroomService) adminActor(address string) (*entity.Member, error) {
	member, err := s.actor(address)
	if err != nil {
		return nil, err
	}
	if member.Role != domain.RoleGlobalAdmin && member.Role != domain.RoleLocalAdmin {
		return nil, ErrUnauthorized
	}
	return member, nil
}

func (s *classroomService) globalAdminActor(address string) (*entity.Member, error) {
	member, err := s.actor(address)
	if err != nil {
		return nil, err
	}
	if member.Role != domain.RoleGlobalAdmin {
		return nil, ErrUnauthorized
	}
	return member, nil
}

func (s *classroomService) CreateGroup(ctx context.Context, actorAddress, name, timezone string) (*entity.Group, error) {
	actor, err := s.adminActor(actorAddress)
	if err != nil {
		return nil, err
	}

	if name == "" {
		return nil, fmt.Errorf("group name is required")
	}
	if !timeutil.ValidZone(timezone) {
		return nil, fmt.Errorf("invalid timezone %q", timezone)
	}

	existing, err := s.dm.Group().GetByName(name)
	if err != nil {
		return nil, fmt.Errorf("failed to check group name: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("group %q already exists", name)
	}

	group := &entity.Group{
		Name:         name,
		OwnerAddress: actor.Address,
		Timezone:     timezone,
	}
	if err := s.dm.Group().Create(group); err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	return group, nil
}

func (s *classroomService) ListGroups(ctx context.Context, actorAddress string) ([]*entity.Group, error) {
	if _, err := s.actor(actorAddress); err != nil {
		return nil, err
	}
	return s.dm.Group().List()
}

func (s *classroomService) RegisterStudent(ctx context.Context, actorAddress, displayName, address string) (*entity.Member, error) {
	if _, err := s.adminActor(actorAddress); err != nil {
		return nil, err
	}

	if displayName == "" {
		return nil, fmt.Errorf("student name is required")
	}

	if address != "" {
		existing, err := s.dm.Member().GetByAddress(address)
		if err != nil {
			return nil, fmt.Errorf("failed to check student address: %w", err)
		}
		if existing != nil {
			return nil, fmt.Errorf("a member with that address already exists")
		}
	}

	member := &entity.Member{
		DisplayName: displayName,
		Address:     address,
		Role:        domain.RoleUser,
		IsActive:    true,
	}
	if err := s.dm.Member().Create(member); err != nil {
		return nil, fmt.Errorf("failed to register student: %w", err)
	}

	return member, nil
}

func (s *classroomService) ListStudents(ctx context.Context, actorAddress string) ([]*entity.Member, error) {
	if _, err := s.adminActor(actorAddress); err != nil {
		return nil, err
	}
	return s.dm.Member().List()
}

func (s *classroomService) Enroll(ctx context.Context, actorAddress string, memberID int64, groupName string) error {
	if _, err := s.adminActor(actorAddress); err != nil {
		return err
	}

	member, err := s.dm.Member().GetByID(memberID)
	if err != nil {
		return fmt.Errorf("failed to get member: %w", err)
	}
	if member == nil {
		return fmt.Errorf("member %d not found", memberID)
	}

	group, err := s.dm.Group().GetByName(groupName)
	if err != nil {
		return fmt.Errorf("failed to get group: %w", err)
	}
	if group == nil {
		return fmt.Errorf("group %q not found", groupName)
	}

	return s.dm.Member().Enroll(member.ID, group.ID)
}

func (s *classroomService) Unenroll(ctx context.Context, actorAddress string, memberID int64, groupName string) error {
	if _, err := s.adminActor(actorAddress); err != nil {
		return err
	}

	group, err := s.dm.Group().GetByName(groupName)
	if err != nil {
		return fmt.Errorf("failed to get group: %w", err)
	}
	if group == nil {
		return fmt.Errorf("group %q not found", groupName)
	}

	return s.dm.Member().Unenroll(memberID, group.ID)
}

// CreateAssignment saves the assignment and schedules its reminders. The
// deadline must be UTC and in the future. A scheduling persistence failure
// does not roll the assignment back; it is reported as ErrRemindersIncomplete
// together with the saved entity.
func (s *classroomService) CreateAssignment(ctx context.Context, actorAddress, groupName, title, description string, dueAt time.Time) (*entity.Assignment, error) {
	if _, err := s.adminActor(actorAddress); err != nil {
		return nil, err
	}

	if title == "" {
		return nil, fmt.Errorf("assignment title is required")
	}

	group, err := s.dm.Group().GetByName(groupName)
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %w", err)
	}
	if group == nil {
		return nil, fmt.Errorf("group %q not found", groupName)
	}

	assignment := &entity.Assignment{
		GroupID:     group.ID,
		Title:       title,
		Description: description,
		DueAt:       dueAt.UTC(),
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.dm.Assignment().Create(assignment); err != nil {
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}

	if err := s.scheduler.ScheduleForAssignment(ctx, assignment.ID); err != nil {
		return assignment, fmt.Errorf("%w: %v", ErrRemindersIncomplete, err)
	}

	return assignment, nil
}

func (s *classroomService) ListAssignments(ctx context.Context, actorAddress, groupName string) ([]*entity.Assignment, error) {
	if _, err := s.actor(actorAddress); err != nil {
		return nil, err
	}

	group, err := s.dm.Group().GetByName(groupName)
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %w", err)
	}
	if group == nil {
		return nil, fmt.Errorf("group %q not found", groupName)
	}

	return s.dm.Assignment().ListByGroup(group.ID)
}

// PurgeExpiredAssignments removes assignments whose deadline has passed.
// Reminder job rows are kept as the record of what fired or was missed.
func (s *classroomService) PurgeExpiredAssignments(ctx context.Context, actorAddress string) (int64, error) {
	if _, err := s.adminActor(actorAddress); err != nil {
		return 0, err
	}

	return s.dm.Assignment().DeleteExpired(time.Now().UTC())
}

func (s *classroomService) SetMemberRole(ctx context.Context, actorAddress string, memberID int64, role string) error {
	if _, err := s.globalAdminActor(actorAddress); err != nil {
		return err
	}

	if _, ok := domain.RoleNames[role]; !ok {
		return fmt.Errorf("unknown role %q", role)
	}

	return s.dm.Member().SetRole(memberID, role)
}

func (s *classroomService) SetMemberActive(ctx context.Context, actorAddress string, memberID int64, active bool) error {
	if _, err := s.globalAdminActor(actorAddress); err != nil {
		return err
	}

	return s.dm.Member().SetActive(memberID, active)
}
