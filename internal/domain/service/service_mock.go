package service

import (
	"testing"

	"github.com/classdesk/classbot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDataManager    *mocks.MockDataManager
	mockGroupRepo      *mocks.MockGroupRepo
	mockMemberRepo     *mocks.MockMemberRepo
	mockAssignmentRepo *mocks.MockAssignmentRepo
	mockReminderRepo   *mocks.MockReminderRepo
	mockSender         *mocks.MockSender
	mockNotifier       *mocks.MockNotifier
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	groupRepo := mocks.NewMockGroupRepo(ctrl)
	dm.EXPECT().Group().Return(groupRepo).AnyTimes()

	memberRepo := mocks.NewMockMemberRepo(ctrl)
	dm.EXPECT().Member().Return(memberRepo).AnyTimes()

	assignmentRepo := mocks.NewMockAssignmentRepo(ctrl)
	dm.EXPECT().Assignment().Return(assignmentRepo).AnyTimes()

	reminderRepo := mocks.NewMockReminderRepo(ctrl)
	dm.EXPECT().Reminder().Return(reminderRepo).AnyTimes()

	sender := mocks.NewMockSender(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)

	m = allMocks{
		mockDataManager:    dm,
		mockGroupRepo:      groupRepo,
		mockMemberRepo:     memberRepo,
		mockAssignmentRepo: assignmentRepo,
		mockReminderRepo:   reminderRepo,
		mockSender:         sender,
		mockNotifier:       notifier,
	}

	// validate service creation
	services := New(dm, sender)
	require.NotNil(t, services)

	return
}
