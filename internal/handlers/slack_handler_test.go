package handlers

import (
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/classdesk/classbot/internal/domain/entity"
	"github.com/classdesk/classbot/internal/domain/service"
	slackcmd "github.com/classdesk/classbot/internal/slack"
	"github.com/classdesk/classbot/mocks"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupHandlerTest(t *testing.T) (*SlackHandler, *mocks.MockClassroomService) {
	ctrl := gomock.NewController(t)
	classroom := mocks.NewMockClassroomService(ctrl)
	return New(classroom, "test-secret"), classroom
}

func slashFrom(userID string) *slack.SlashCommand {
	return &slack.SlashCommand{
		Command: "/classbot",
		UserID:  userID,
	}
}

func Test_handleCommand_classAdd(t *testing.T) {
	handler, classroom := setupHandlerTest(t)
	req := httptest.NewRequest("POST", "/slack/commands", nil)

	classroom.EXPECT().
		CreateGroup(gomock.Any(), "U100", "Robotics-A", "Europe/Moscow").
		Return(&entity.Group{ID: 1, Name: "Robotics-A", Timezone: "Europe/Moscow"}, nil)

	msg := handler.handleCommand(req, &slackcmd.Command{
		Type: slackcmd.CmdClassAdd,
		Args: []string{"Robotics-A", "Europe/Moscow"},
	}, slashFrom("U100"))

	require.NotNil(t, msg)
	assert.Equal(t, slack.ResponseTypeInChannel, msg.ResponseType)
	assert.Contains(t, msg.Text, "Robotics-A")
	assert.Contains(t, msg.Text, "Europe/Moscow")
}

func Test_handleCommand_classAdd_missingArgs(t *testing.T) {
	handler, _ := setupHandlerTest(t)
	req := httptest.NewRequest("POST", "/slack/commands", nil)

	msg := handler.handleCommand(req, &slackcmd.Command{
		Type: slackcmd.CmdClassAdd,
		Args: []string{"Robotics-A"},
	}, slashFrom("U100"))

	require.NotNil(t, msg)
	assert.Equal(t, slack.ResponseTypeEphemeral, msg.ResponseType)
	assert.Contains(t, msg.Text, "class add NAME TIMEZONE")
}

func Test_handleCommand_classAdd_unauthorized(t *testing.T) {
	handler, classroom := setupHandlerTest(t)
	req := httptest.NewRequest("POST", "/slack/commands", nil)

	classroom.EXPECT().
		CreateGroup(gomock.Any(), "U999", "Robotics-A", "Europe/Moscow").
		Return(nil, fmt.Errorf("actor: %w", service.ErrUnauthorized))

	msg := handler.handleCommand(req, &slackcmd.Command{
		Type: slackcmd.CmdClassAdd,
		Args: []string{"Robotics-A", "Europe/Moscow"},
	}, slashFrom("U999"))

	require.NotNil(t, msg)
	assert.Equal(t, slack.ResponseTypeEphemeral, msg.ResponseType)
	assert.Contains(t, msg.Text, "not authorized")
}

func Test_handleCommand_studentAdd_withMention(t *testing.T) {
	handler, classroom := setupHandlerTest(t)
	req := httptest.NewRequest("POST", "/slack/commands", nil)

	classroom.EXPECT().
		RegisterStudent(gomock.Any(), "U100", "Petya Ivanov", "U200").
		Return(&entity.Member{ID: 7, DisplayName: "Petya Ivanov", Address: "U200"}, nil)

	msg := handler.handleCommand(req, &slackcmd.Command{
		Type: slackcmd.CmdStudentAdd,
		Args: []string{"Petya", "Ivanov", "<@U200>"},
	}, slashFrom("U100"))

	require.NotNil(t, msg)
	assert.Contains(t, msg.Text, "Petya Ivanov")
	assert.Contains(t, msg.Text, "ID 7")
}

func Test_handleCommand_enroll(t *testing.T) {
	handler, classroom := setupHandlerTest(t)
	req := httptest.NewRequest("POST", "/slack/commands", nil)

	classroom.EXPECT().
		Enroll(gomock.Any(), "U100", int64(7), "Robotics-A").
		Return(nil)

	msg := handler.handleCommand(req, &slackcmd.Command{
		Type: slackcmd.CmdEnroll,
		Args: []string{"7", "Robotics-A"},
	}, slashFrom("U100"))

	require.NotNil(t, msg)
	assert.Contains(t, msg.Text, "enrolled")
}

func Test_handleCommand_enroll_badID(t *testing.T) {
	handler, _ := setupHandlerTest(t)
	req := httptest.NewRequest("POST", "/slack/commands", nil)

	msg := handler.handleCommand(req, &slackcmd.Command{
		Type: slackcmd.CmdEnroll,
		Args: []string{"seven", "Robotics-A"},
	}, slashFrom("U100"))

	require.NotNil(t, msg)
	assert.Contains(t, msg.Text, "Invalid student ID")
}

func Test_handleCommand_taskAdd(t *testing.T) {
	handler, classroom := setupHandlerTest(t)
	req := httptest.NewRequest("POST", "/slack/commands", nil)

	dueAt := time.Date(2027, 9, 25, 18, 0, 0, 0, time.UTC)
	classroom.EXPECT().
		CreateAssignment(gomock.Any(), "U100", "Robotics-A", "Lab report", "chapters 1-3", dueAt).
		Return(&entity.Assignment{ID: 3, Title: "Lab report", DueAt: dueAt}, nil)

	msg := handler.handleCommand(req, &slackcmd.Command{
		Type: slackcmd.CmdTaskAdd,
		Args: []string{"Robotics-A", "|", "Lab", "report", "|", "2027-09-25", "18:00", "|", "chapters", "1-3"},
	}, slashFrom("U100"))

	require.NotNil(t, msg)
	assert.Equal(t, slack.ResponseTypeInChannel, msg.ResponseType)
	assert.Contains(t, msg.Text, "Lab report")
}

func Test_handleCommand_taskAdd_badDeadline(t *testing.T) {
	handler, _ := setupHandlerTest(t)
	req := httptest.NewRequest("POST", "/slack/commands", nil)

	msg := handler.handleCommand(req, &slackcmd.Command{
		Type: slackcmd.CmdTaskAdd,
		Args: []string{"Robotics-A", "|", "Lab", "report", "|", "tomorrow"},
	}, slashFrom("U100"))

	require.NotNil(t, msg)
	assert.Contains(t, msg.Text, "Invalid deadline")
}

func Test_handleCommand_taskAdd_remindersIncomplete(t *testing.T) {
	handler, classroom := setupHandlerTest(t)
	req := httptest.NewRequest("POST", "/slack/commands", nil)

	dueAt := time.Date(2027, 9, 25, 18, 0, 0, 0, time.UTC)
	classroom.EXPECT().
		CreateAssignment(gomock.Any(), "U100", "Robotics-A", "Lab report", "", dueAt).
		Return(&entity.Assignment{ID: 3, Title: "Lab report", DueAt: dueAt},
			fmt.Errorf("%w: disk full", service.ErrRemindersIncomplete))

	msg := handler.handleCommand(req, &slackcmd.Command{
		Type: slackcmd.CmdTaskAdd,
		Args: []string{"Robotics-A", "|", "Lab", "report", "|", "2027-09-25", "18:00"},
	}, slashFrom("U100"))

	require.NotNil(t, msg)
	assert.Equal(t, slack.ResponseTypeEphemeral, msg.ResponseType)
	assert.Contains(t, msg.Text, "reminders may be incomplete")
}

func Test_handleCommand_purge(t *testing.T) {
	handler, classroom := setupHandlerTest(t)
	req := httptest.NewRequest("POST", "/slack/commands", nil)

	classroom.EXPECT().
		PurgeExpiredAssignments(gomock.Any(), "U100").
		Return(int64(2), nil)

	msg := handler.handleCommand(req, &slackcmd.Command{Type: slackcmd.CmdPurge}, slashFrom("U100"))

	require.NotNil(t, msg)
	assert.Contains(t, msg.Text, "Removed 2 expired assignments")
}

func Test_handleCommand_help(t *testing.T) {
	handler, _ := setupHandlerTest(t)
	req := httptest.NewRequest("POST", "/slack/commands", nil)

	msg := handler.handleCommand(req, &slackcmd.Command{Type: slackcmd.CmdHelp}, slashFrom("U100"))

	require.NotNil(t, msg)
	assert.Contains(t, msg.Text, "/classbot")
}
