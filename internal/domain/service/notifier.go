package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/classdesk/classbot/internal/domain/contract"
	"github.com/classdesk/classbot/internal/domain/entity"
	"github.com/classdesk/classbot/internal/timeutil"
)

// sendTimeout bounds one delivery attempt so a hung transport call to one
// recipient cannot block the rest.
const sendTimeout = 10 * time.Second

// notifier reconstructs and delivers a fired reminder. The assignment and
// group are re-fetched fresh at fire time; a snapshot captured at scheduling
// time could be hours or days stale by now.
type notifier struct {
	dm     contract.DataManager
	sender contract.Sender
}

func newNotifier(dm contract.DataManager, sender contract.Sender) *notifier {
	return &notifier{
		dm:     dm,
		sender: sender,
	}
}

// Deliver sends the reminder to every reachable member of the assignment's
// group and then a summary to the group owner. Every failure is contained
// here: unreachable members are recorded in the owner summary, an owner
// delivery failure is only logged.
func (n *notifier) Deliver(ctx context.Context, assignmentID int64, label string) {
	assignment, err := n.dm.Assignment().GetByID(assignmentID)
	if err != nil {
		log.Printf("Failed to load assignment %d for reminder %s: %v", assignmentID, label, err)
		return
	}
	if assignment == nil {
		log.Printf("Skipping reminder %s: assignment %d no longer exists", label, assignmentID)
		return
	}

	group, err := n.dm.Group().GetByID(assignment.GroupID)
	if err != nil {
		log.Printf("Failed to load group %d for reminder %s: %v", assignment.GroupID, label, err)
		return
	}
	if group == nil {
		log.Printf("Skipping reminder %s: group %d no longer exists", label, assignment.GroupID)
		return
	}

	members, err := n.dm.Member().ListByGroup(group.ID)
	if err != nil {
		log.Printf("Failed to list members of group %d: %v", group.ID, err)
		return
	}

	body := n.formatBody(assignment, group, label)

	var unreached []string
	for _, member := range members {
		if !member.Reachable() {
			unreached = append(unreached, member.DisplayName)
			continue
		}
		if err := n.send(ctx, member.Address, body); err != nil {
			log.Printf("Failed to deliver reminder %s to %s: %v", label, member.DisplayName, err)
			unreached = append(unreached, member.DisplayName)
		}
	}

	summary := body
	if len(unreached) > 0 {
		summary += "\n\n⚠️ Not reached: " + strings.Join(unreached, ", ")
	}
	if err := n.send(ctx, group.OwnerAddress, summary); err != nil {
		log.Printf("Failed to deliver owner summary for assignment %d: %v", assignmentID, err)
	}
}

func (n *notifier) send(ctx context.Context, address, text string) error {
	sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	return n.sender.Send(sendCtx, address, text)
}

func (n *notifier) formatBody(assignment *entity.Assignment, group *entity.Group, label string) string {
	dueLocal := assignment.DueAt.Format("2006-01-02 15:04 UTC")
	if loc, err := timeutil.LoadZone(group.Timezone); err == nil {
		dueLocal = fmt.Sprintf("%s %s", timeutil.FormatLocal(assignment.DueAt, loc), group.Timezone)
	} else {
		// Zone validity is enforced when the group is created; falling
		// back to UTC keeps an edited-by-hand row from killing delivery.
		log.Printf("Invalid timezone %q for group %s, showing UTC", group.Timezone, group.Name)
	}

	description := assignment.Description
	if description == "" {
		description = "—"
	}

	return fmt.Sprintf(
		"⏰ *Reminder (%s)*\nClass: *%s*\nAssignment: *%s*\nDue: *%s*\n\nDescription: %s",
		label, group.Name, assignment.Title, dueLocal, description,
	)
}
