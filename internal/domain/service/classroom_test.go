package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/classdesk/classbot/internal/domain"
	"github.com/classdesk/classbot/internal/domain/entity"
	"github.com/classdesk/classbot/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	teacher = &entity.Member{ID: 1, DisplayName: "Teacher", Address: "U_TEACHER", Role: domain.RoleLocalAdmin, IsActive: true}
	student = &entity.Member{ID: 2, DisplayName: "Alice", Address: "U_ALICE", Role: domain.RoleUser, IsActive: true}
	root    = &entity.Member{ID: 3, DisplayName: "Root", Address: "U_ROOT", Role: domain.RoleGlobalAdmin, IsActive: true}
)

func Test_classroomService_CreateGroup(t *testing.T) {
	t.Run("Should create a group owned by the acting admin", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		classroom := newClassroom(m.mockDataManager, mocks.NewMockReminderScheduler(ctrl))

		m.mockMemberRepo.EXPECT().GetByAddress("U_TEACHER").Return(teacher, nil)
		m.mockGroupRepo.EXPECT().GetByName("RoboticsA").Return(nil, nil)
		m.mockGroupRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(g *entity.Group) error {
			g.ID = 5
			return nil
		})

		group, err := classroom.CreateGroup(context.Background(), "U_TEACHER", "RoboticsA", "Europe/Moscow")
		require.NoError(t, err)

		assert.Equal(t, int64(5), group.ID)
		assert.Equal(t, "U_TEACHER", group.OwnerAddress)
		assert.Equal(t, "Europe/Moscow", group.Timezone)
	})

	t.Run("Should reject an invalid timezone", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		classroom := newClassroom(m.mockDataManager, mocks.NewMockReminderScheduler(ctrl))

		m.mockMemberRepo.EXPECT().GetByAddress("U_TEACHER").Return(teacher, nil)

		_, err := classroom.CreateGroup(context.Background(), "U_TEACHER", "RoboticsA", "Mars/Olympus")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid timezone")
	})

	t.Run("Should reject a duplicate name", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		classroom := newClassroom(m.mockDataManager, mocks.NewMockReminderScheduler(ctrl))

		m.mockMemberRepo.EXPECT().GetByAddress("U_TEACHER").Return(teacher, nil)
		m.mockGroupRepo.EXPECT().GetByName("RoboticsA").Return(&entity.Group{ID: 9, Name: "RoboticsA"}, nil)

		_, err := classroom.CreateGroup(context.Background(), "U_TEACHER", "RoboticsA", "UTC")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
	})

	t.Run("Should refuse a regular user", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		classroom := newClassroom(m.mockDataManager, mocks.NewMockReminderScheduler(ctrl))

		m.mockMemberRepo.EXPECT().GetByAddress("U_ALICE").Return(student, nil)

		_, err := classroom.CreateGroup(context.Background(), "U_ALICE", "RoboticsA", "UTC")
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("Should refuse an unknown actor", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		classroom := newClassroom(m.mockDataManager, mocks.NewMockReminderScheduler(ctrl))

		m.mockMemberRepo.EXPECT().GetByAddress("U_NOBODY").Return(nil, nil)

		_, err := classroom.CreateGroup(context.Background(), "U_NOBODY", "RoboticsA", "UTC")
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("Should refuse an inactive admin", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		classroom := newClassroom(m.mockDataManager, mocks.NewMockReminderScheduler(ctrl))

		inactive := &entity.Member{ID: 4, Address: "U_OLD", Role: domain.RoleLocalAdmin, IsActive: false}
		m.mockMemberRepo.EXPECT().GetByAddress("U_OLD").Return(inactive, nil)

		_, err := classroom.CreateGroup(context.Background(), "U_OLD", "RoboticsA", "UTC")
		assert.ErrorIs(t, err, ErrUnauthorized)
	})
}

func Test_classroomService_CreateAssignment(t *testing.T) {
	group := &entity.Group{ID: 5, Name: "RoboticsA", OwnerAddress: "U_TEACHER", Timezone: "Europe/Moscow"}
	dueAt := time.Date(2025, 9, 25, 18, 0, 0, 0, time.UTC)

	t.Run("Should save the assignment and schedule its reminders", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		schedulerMock := mocks.NewMockReminderScheduler(ctrl)
		classroom := newClassroom(m.mockDataManager, schedulerMock)

		m.mockMemberRepo.EXPECT().GetByAddress("U_TEACHER").Return(teacher, nil)
		m.mockGroupRepo.EXPECT().GetByName("RoboticsA").Return(group, nil)
		m.mockAssignmentRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(a *entity.Assignment) error {
			a.ID = 7
			return nil
		})
		schedulerMock.EXPECT().ScheduleForAssignment(gomock.Any(), int64(7)).Return(nil)

		assignment, err := classroom.CreateAssignment(context.Background(), "U_TEACHER", "RoboticsA", "Blink LED", "", dueAt)
		require.NoError(t, err)

		assert.Equal(t, int64(7), assignment.ID)
		assert.True(t, assignment.DueAt.Equal(dueAt))
	})

	t.Run("Should report incomplete reminders but keep the assignment", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		schedulerMock := mocks.NewMockReminderScheduler(ctrl)
		classroom := newClassroom(m.mockDataManager, schedulerMock)

		m.mockMemberRepo.EXPECT().GetByAddress("U_TEACHER").Return(teacher, nil)
		m.mockGroupRepo.EXPECT().GetByName("RoboticsA").Return(group, nil)
		m.mockAssignmentRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(a *entity.Assignment) error {
			a.ID = 7
			return nil
		})
		schedulerMock.EXPECT().ScheduleForAssignment(gomock.Any(), int64(7)).Return(fmt.Errorf("disk full"))

		assignment, err := classroom.CreateAssignment(context.Background(), "U_TEACHER", "RoboticsA", "Blink LED", "", dueAt)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrRemindersIncomplete)
		require.NotNil(t, assignment)
		assert.Equal(t, int64(7), assignment.ID)
	})

	t.Run("Should fail for a missing group", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		classroom := newClassroom(m.mockDataManager, mocks.NewMockReminderScheduler(ctrl))

		m.mockMemberRepo.EXPECT().GetByAddress("U_TEACHER").Return(teacher, nil)
		m.mockGroupRepo.EXPECT().GetByName("Ghosts").Return(nil, nil)

		_, err := classroom.CreateAssignment(context.Background(), "U_TEACHER", "Ghosts", "Blink LED", "", dueAt)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func Test_classroomService_SetMemberRole(t *testing.T) {
	t.Run("Should allow a global admin to change roles", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		classroom := newClassroom(m.mockDataManager, mocks.NewMockReminderScheduler(ctrl))

		m.mockMemberRepo.EXPECT().GetByAddress("U_ROOT").Return(root, nil)
		m.mockMemberRepo.EXPECT().SetRole(int64(2), domain.RoleLocalAdmin).Return(nil)

		err := classroom.SetMemberRole(context.Background(), "U_ROOT", 2, domain.RoleLocalAdmin)
		require.NoError(t, err)
	})

	t.Run("Should refuse a local admin", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		classroom := newClassroom(m.mockDataManager, mocks.NewMockReminderScheduler(ctrl))

		m.mockMemberRepo.EXPECT().GetByAddress("U_TEACHER").Return(teacher, nil)

		err := classroom.SetMemberRole(context.Background(), "U_TEACHER", 2, domain.RoleLocalAdmin)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("Should reject an unknown role", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		classroom := newClassroom(m.mockDataManager, mocks.NewMockReminderScheduler(ctrl))

		m.mockMemberRepo.EXPECT().GetByAddress("U_ROOT").Return(root, nil)

		err := classroom.SetMemberRole(context.Background(), "U_ROOT", 2, "emperor")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown role")
	})
}

func Test_classroomService_Enroll(t *testing.T) {
	group := &entity.Group{ID: 5, Name: "RoboticsA"}

	t.Run("Should enroll an existing student", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		classroom := newClassroom(m.mockDataManager, mocks.NewMockReminderScheduler(ctrl))

		m.mockMemberRepo.EXPECT().GetByAddress("U_TEACHER").Return(teacher, nil)
		m.mockMemberRepo.EXPECT().GetByID(int64(2)).Return(student, nil)
		m.mockGroupRepo.EXPECT().GetByName("RoboticsA").Return(group, nil)
		m.mockMemberRepo.EXPECT().Enroll(int64(2), int64(5)).Return(nil)

		err := classroom.Enroll(context.Background(), "U_TEACHER", 2, "RoboticsA")
		require.NoError(t, err)
	})

	t.Run("Should fail for an unknown student", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		classroom := newClassroom(m.mockDataManager, mocks.NewMockReminderScheduler(ctrl))

		m.mockMemberRepo.EXPECT().GetByAddress("U_TEACHER").Return(teacher, nil)
		m.mockMemberRepo.EXPECT().GetByID(int64(99)).Return(nil, nil)

		err := classroom.Enroll(context.Background(), "U_TEACHER", 99, "RoboticsA")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("Should unenroll from an existing group", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		classroom := newClassroom(m.mockDataManager, mocks.NewMockReminderScheduler(ctrl))

		m.mockMemberRepo.EXPECT().GetByAddress("U_TEACHER").Return(teacher, nil)
		m.mockGroupRepo.EXPECT().GetByName("RoboticsA").Return(group, nil)
		m.mockMemberRepo.EXPECT().Unenroll(int64(2), int64(5)).Return(nil)

		err := classroom.Unenroll(context.Background(), "U_TEACHER", 2, "RoboticsA")
		require.NoError(t, err)
	})
}
