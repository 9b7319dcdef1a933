package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/classdesk/classbot/internal/domain/contract"
	"github.com/classdesk/classbot/internal/domain/service"
	slackcmd "github.com/classdesk/classbot/internal/slack"
	"github.com/classdesk/classbot/internal/timeutil"
	"github.com/slack-go/slack"
)

type SlackHandler struct {
	classroom     contract.ClassroomService
	signingSecret string
}

func New(classroom contract.ClassroomService, signingSecret string) *SlackHandler {
	return &SlackHandler{
		classroom:     classroom,
		signingSecret: signingSecret,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, err.Error())
		return
	}

	response := h.handleCommand(r, cmd, &s)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *SlackHandler) handleCommand(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdClassAdd:
		return h.handleClassAdd(r, cmd, slashCmd)
	case slackcmd.CmdClassList:
		return h.handleClassList(r, slashCmd)
	case slackcmd.CmdStudentAdd:
		return h.handleStudentAdd(r, cmd, slashCmd)
	case slackcmd.CmdStudentList:
		return h.handleStudentList(r, slashCmd)
	case slackcmd.CmdEnroll:
		return h.handleEnroll(r, cmd, slashCmd)
	case slackcmd.CmdUnenroll:
		return h.handleUnenroll(r, cmd, slashCmd)
	case slackcmd.CmdTaskAdd:
		return h.handleTaskAdd(r, cmd, slashCmd)
	case slackcmd.CmdTaskList:
		return h.handleTaskList(r, cmd, slashCmd)
	case slackcmd.CmdPurge:
		return h.handlePurge(r, slashCmd)
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unknown command")
	}
}

func (h *SlackHandler) handleClassAdd(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) < 2 {
		return h.createErrorResponse("Use: `/classbot class add NAME TIMEZONE`")
	}

	group, err := h.classroom.CreateGroup(r.Context(), slashCmd.UserID, cmd.Args[0], cmd.Args[1])
	if err != nil {
		return h.serviceError("Could not create class", err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ Class *%s* created (%s)", group.Name, group.Timezone),
	}
}

func (h *SlackHandler) handleClassList(r *http.Request, slashCmd *slack.SlashCommand) *slack.Msg {
	groups, err := h.classroom.ListGroups(r.Context(), slashCmd.UserID)
	if err != nil {
		return h.serviceError("Could not list classes", err)
	}

	if len(groups) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "No classes yet. Use `/classbot class add NAME TIMEZONE` to create one.",
		}
	}

	var list strings.Builder
	list.WriteString("*Classes:*\n")
	for i, group := range groups {
		list.WriteString(fmt.Sprintf("%d. %s (%s)\n", i+1, group.Name, group.Timezone))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         list.String(),
	}
}

func (h *SlackHandler) handleStudentAdd(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Use: `/classbot student add NAME [@user]`")
	}

	// Last argument may be a mention <@U12345>; everything before is the name
	args := cmd.Args
	address := ""
	if last := args[len(args)-1]; strings.HasPrefix(last, "<@") {
		address = strings.TrimSuffix(strings.TrimPrefix(last, "<@"), ">")
		args = args[:len(args)-1]
	}
	name := strings.Join(args, " ")

	student, err := h.classroom.RegisterStudent(r.Context(), slashCmd.UserID, name, address)
	if err != nil {
		return h.serviceError("Could not register student", err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ Student *%s* registered with ID %d", student.DisplayName, student.ID),
	}
}

func (h *SlackHandler) handleStudentList(r *http.Request, slashCmd *slack.SlashCommand) *slack.Msg {
	students, err := h.classroom.ListStudents(r.Context(), slashCmd.UserID)
	if err != nil {
		return h.serviceError("Could not list students", err)
	}

	if len(students) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "No students yet. Use `/classbot student add NAME [@user]` to register one.",
		}
	}

	var list strings.Builder
	list.WriteString("*Students:*\n")
	for _, student := range students {
		reach := "—"
		if student.Reachable() {
			reach = fmt.Sprintf("<@%s>", student.Address)
		}
		list.WriteString(fmt.Sprintf("%d. %s (%s)\n", student.ID, student.DisplayName, reach))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         list.String(),
	}
}

func (h *SlackHandler) handleEnroll(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) < 2 {
		return h.createErrorResponse("Use: `/classbot enroll ID CLASS`")
	}

	memberID, err := strconv.ParseInt(cmd.Args[0], 10, 64)
	if err != nil {
		return h.createErrorResponse(fmt.Sprintf("Invalid student ID: %s", cmd.Args[0]))
	}
	groupName := strings.Join(cmd.Args[1:], " ")

	if err := h.classroom.Enroll(r.Context(), slashCmd.UserID, memberID, groupName); err != nil {
		return h.serviceError("Could not enroll student", err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ Student %d enrolled in *%s*", memberID, groupName),
	}
}

func (h *SlackHandler) handleUnenroll(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) < 2 {
		return h.createErrorResponse("Use: `/classbot unenroll ID CLASS`")
	}

	memberID, err := strconv.ParseInt(cmd.Args[0], 10, 64)
	if err != nil {
		return h.createErrorResponse(fmt.Sprintf("Invalid student ID: %s", cmd.Args[0]))
	}
	groupName := strings.Join(cmd.Args[1:], " ")

	if err := h.classroom.Unenroll(r.Context(), slashCmd.UserID, memberID, groupName); err != nil {
		return h.serviceError("Could not unenroll student", err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ Student %d removed from *%s*", memberID, groupName),
	}
}

func (h *SlackHandler) handleTaskAdd(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	// Pipe-separated: CLASS | TITLE | YYYY-MM-DD HH:MM | [description]
	fields := strings.Split(strings.Join(cmd.Args, " "), "|")
	if len(fields) < 3 {
		return h.createErrorResponse("Use: `/classbot task add CLASS | TITLE | YYYY-MM-DD HH:MM | [description]`")
	}

	groupName := strings.TrimSpace(fields[0])
	title := strings.TrimSpace(fields[1])
	dueRaw := strings.TrimSpace(fields[2])
	description := ""
	if len(fields) > 3 {
		description = strings.TrimSpace(fields[3])
	}

	dueAt, err := timeutil.ParseUTC(dueRaw)
	if err != nil {
		return h.createErrorResponse(fmt.Sprintf("Invalid deadline %q, expected `YYYY-MM-DD HH:MM` in UTC", dueRaw))
	}

	assignment, err := h.classroom.CreateAssignment(r.Context(), slashCmd.UserID, groupName, title, description, dueAt)
	if errors.Is(err, service.ErrRemindersIncomplete) {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         fmt.Sprintf("⚠️ Assignment *%s* saved, but reminders may be incomplete. Restart the bot to re-schedule.", assignment.Title),
		}
	}
	if err != nil {
		return h.serviceError("Could not create assignment", err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ Assignment *%s* for *%s*, due %s UTC", assignment.Title, groupName, dueRaw),
	}
}

func (h *SlackHandler) handleTaskList(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Use: `/classbot task list CLASS`")
	}
	groupName := strings.Join(cmd.Args, " ")

	assignments, err := h.classroom.ListAssignments(r.Context(), slashCmd.UserID, groupName)
	if err != nil {
		return h.serviceError("Could not list assignments", err)
	}

	if len(assignments) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         fmt.Sprintf("No assignments for *%s* yet.", groupName),
		}
	}

	var list strings.Builder
	list.WriteString(fmt.Sprintf("*Assignments for %s:*\n", groupName))
	for i, assignment := range assignments {
		list.WriteString(fmt.Sprintf("%d. %s — due %s UTC\n", i+1, assignment.Title, assignment.DueAt.Format("2006-01-02 15:04")))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         list.String(),
	}
}

func (h *SlackHandler) handlePurge(r *http.Request, slashCmd *slack.SlashCommand) *slack.Msg {
	deleted, err := h.classroom.PurgeExpiredAssignments(r.Context(), slashCmd.UserID)
	if err != nil {
		return h.serviceError("Could not purge assignments", err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("🧹 Removed %d expired assignments", deleted),
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

func (h *SlackHandler) serviceError(prefix string, err error) *slack.Msg {
	if errors.Is(err, service.ErrUnauthorized) {
		return h.createErrorResponse("You are not authorized for that")
	}
	return h.createErrorResponse(fmt.Sprintf("%s: %v", prefix, err))
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	response := h.createErrorResponse(message)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
