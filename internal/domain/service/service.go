package service

import (
	"github.com/classdesk/classbot/internal/domain/contract"
)

type Services struct {
	Classroom *classroomService
	Scheduler *scheduler
	Notifier  *notifier
}

func New(dm contract.DataManager, sender contract.Sender) *Services {
	notifier := newNotifier(dm, sender)
	scheduler := newScheduler(dm, notifier)

	return &Services{
		Classroom: newClassroom(dm, scheduler),
		Scheduler: scheduler,
		Notifier:  notifier,
	}
}
