package service

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/classdesk/classbot/internal/domain"
	"github.com/classdesk/classbot/internal/domain/contract"
	"github.com/classdesk/classbot/internal/domain/entity"
)

// scheduler translates assignment deadlines into armed one-shot timers.
// It owns the map of armed keys so a key recomputed from persisted state is
// never registered twice, which makes both Rehydrate and repeated
// ScheduleForAssignment calls idempotent.
type scheduler struct {
	dm       contract.DataManager
	notifier contract.Notifier

	mu      sync.Mutex
	timers  map[string]*time.Timer
	stopped bool
}

func newScheduler(dm contract.DataManager, notifier contract.Notifier) *scheduler {
	return &scheduler{
		dm:       dm,
		notifier: notifier,
		timers:   make(map[string]*time.Timer),
	}
}

// jobKey builds the deterministic executor key for a reminder job.
func jobKey(assignmentID int64, label string, fireAt time.Time) string {
	return fmt.Sprintf("task%d_%s_%d", assignmentID, label, fireAt.Unix())
}

// ScheduleForAssignment computes the reminder instants for one assignment,
// persists the ones not yet recorded and arms a timer for each. A vanished
// assignment or group is a benign race with deletion and is logged, not
// surfaced. A store write error aborts that job's arming and is returned:
// an unpersisted, unarmed reminder would otherwise silently never fire.
func (s *scheduler) ScheduleForAssignment(ctx context.Context, assignmentID int64) error {
	assignment, err := s.dm.Assignment().GetByID(assignmentID)
	if err != nil {
		return fmt.Errorf("failed to get assignment: %w", err)
	}
	if assignment == nil {
		log.Printf("Skipping scheduling: assignment %d no longer exists", assignmentID)
		return nil
	}

	group, err := s.dm.Group().GetByID(assignment.GroupID)
	if err != nil {
		return fmt.Errorf("failed to get group: %w", err)
	}
	if group == nil {
		log.Printf("Skipping scheduling: group %d for assignment %d no longer exists", assignment.GroupID, assignmentID)
		return nil
	}

	// One "now" for every offset comparison, so skip decisions stay
	// consistent across the table.
	now := time.Now().UTC()

	for _, job := range computeReminderJobs(assignmentID, assignment.DueAt, now) {
		// Persist-then-arm: a crash between the two is recovered by
		// Rehydrate, a crash before the insert leaves no orphaned timer.
		inserted, err := s.dm.Reminder().CreateIfAbsent(job)
		if err != nil {
			return fmt.Errorf("failed to persist reminder job %s for assignment %d: %w", job.Label, assignmentID, err)
		}
		if !inserted {
			continue
		}

		s.arm(assignmentID, job.Label, job.FireAt)
	}

	return nil
}

// computeReminderJobs applies the fixed offset table to one deadline.
// Instants at or before now are dropped: past reminders are never scheduled,
// including T0 when the assignment is created after its own deadline.
func computeReminderJobs(assignmentID int64, dueAt, now time.Time) []*entity.ReminderJob {
	var jobs []*entity.ReminderJob
	for _, offset := range domain.ReminderOffsets {
		fireAt := dueAt.Add(-offset.Lead)
		if !fireAt.After(now) {
			continue
		}
		jobs = append(jobs, &entity.ReminderJob{
			AssignmentID: assignmentID,
			FireAt:       fireAt,
			Label:        offset.Label,
		})
	}
	return jobs
}

// Rehydrate re-arms every persisted job whose fire instant is still in the
// future. Rows already in the past were missed during downtime and are
// intentionally left alone: reminders are at-most-once, never fired late.
// Run once at startup, before the command intake starts.
func (s *scheduler) Rehydrate(ctx context.Context) error {
	now := time.Now().UTC()

	jobs, err := s.dm.Reminder().ListFiringAfter(now)
	if err != nil {
		return fmt.Errorf("failed to load future reminder jobs: %w", err)
	}

	for _, job := range jobs {
		s.arm(job.AssignmentID, job.Label, job.FireAt)
	}

	log.Printf("Rehydrated %d reminder jobs", len(jobs))
	return nil
}

// Stop cancels all armed timers. Jobs stay persisted and become eligible for
// rehydration on the next start.
func (s *scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}
	s.stopped = true

	for key, timer := range s.timers {
		timer.Stop()
		delete(s.timers, key)
	}
	log.Println("Scheduler stopped")
}

// arm registers a one-shot timer under the job's deterministic key.
// Re-arming an already armed key is a no-op.
func (s *scheduler) arm(assignmentID int64, label string, fireAt time.Time) {
	key := jobKey(assignmentID, label, fireAt)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}
	if _, armed := s.timers[key]; armed {
		return
	}

	s.timers[key] = time.AfterFunc(time.Until(fireAt), func() {
		s.fire(key, assignmentID, label)
	})
}

// fire runs on the timer's own goroutine; delivery failures are the
// Notifier's concern and never re-arm the job.
func (s *scheduler) fire(key string, assignmentID int64, label string) {
	s.mu.Lock()
	delete(s.timers, key)
	stopped := s.stopped
	s.mu.Unlock()

	if stopped {
		return
	}

	log.Printf("Reminder %s fired for assignment %d", label, assignmentID)
	s.notifier.Deliver(context.Background(), assignmentID, label)
}

// armedCount reports how many timers are currently registered.
func (s *scheduler) armedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}
