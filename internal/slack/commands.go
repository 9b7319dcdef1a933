package slack

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdClassAdd    CommandType = "class add"
	CmdClassList   CommandType = "class list"
	CmdStudentAdd  CommandType = "student add"
	CmdStudentList CommandType = "student list"
	CmdEnroll      CommandType = "enroll"
	CmdUnenroll    CommandType = "unenroll"
	CmdTaskAdd     CommandType = "task add"
	CmdTaskList    CommandType = "task list"
	CmdPurge       CommandType = "purge"
	CmdHelp        CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw: text,
	}

	switch parts[0] {
	case "class":
		return parseSub(cmd, parts, CmdClassAdd, CmdClassList)
	case "student":
		return parseSub(cmd, parts, CmdStudentAdd, CmdStudentList)
	case "task":
		return parseSub(cmd, parts, CmdTaskAdd, CmdTaskList)
	case "enroll":
		cmd.Type = CmdEnroll
		cmd.Args = parts[1:]
	case "unenroll":
		cmd.Type = CmdUnenroll
		cmd.Args = parts[1:]
	case "purge":
		cmd.Type = CmdPurge
	case "help", "":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

func parseSub(cmd *Command, parts []string, addType, listType CommandType) (*Command, error) {
	if len(parts) < 2 {
		return nil, fmt.Errorf("missing subcommand for %q (expected add or list)", parts[0])
	}

	switch parts[1] {
	case "add":
		cmd.Type = addType
		cmd.Args = parts[2:]
	case "list", "ls":
		cmd.Type = listType
	default:
		return nil, fmt.Errorf("unknown subcommand: %s %s", parts[0], parts[1])
	}

	return cmd, nil
}

func GetHelpText() string {
	return `*Available Commands:*

*Classes:*
• ` + "`/classbot class add NAME TIMEZONE`" + ` - Register a class (ex: RoboticsA Europe/Moscow)
• ` + "`/classbot class list`" + ` - List all classes

*Students:*
• ` + "`/classbot student add NAME [@user]`" + ` - Register a student, mention optional
• ` + "`/classbot student list`" + ` - List registered students
• ` + "`/classbot enroll ID CLASS`" + ` - Enroll student ID into a class
• ` + "`/classbot unenroll ID CLASS`" + ` - Remove student ID from a class

*Assignments:*
• ` + "`/classbot task add CLASS | TITLE | YYYY-MM-DD HH:MM | [description]`" + ` - Hand out homework (deadline in UTC)
• ` + "`/classbot task list CLASS`" + ` - List a class's assignments
• ` + "`/classbot purge`" + ` - Remove assignments past their deadline

Reminders go out 24h, 3h and 15m before each deadline, and at the deadline.`
}
