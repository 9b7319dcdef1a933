package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/classdesk/classbot/internal/domain/contract"
	"github.com/classdesk/classbot/internal/domain/entity"
)

type reminderRepo struct {
	db dbConn
}

func newReminderRepo(db dbConn) contract.ReminderRepo {
	return &reminderRepo{db: db}
}

// CreateIfAbsent relies on the UNIQUE (assignment_id, fire_at_utc, label)
// constraint: a duplicate insert is ignored by SQLite and reported to the
// caller through the affected-rows count.
func (r *reminderRepo) CreateIfAbsent(job *entity.ReminderJob) (bool, error) {
	query := `
		INSERT OR IGNORE INTO reminder_jobs (assignment_id, fire_at_utc, label)
		VALUES (?, ?, ?)
	`

	result, err := r.db.Exec(query,
		job.AssignmentID,
		job.FireAt.UTC(),
		job.Label,
	)
	if err != nil {
		return false, fmt.Errorf("failed to create reminder job: %w", err)
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if inserted == 0 {
		return false, nil
	}

	id, err := result.LastInsertId()
	if err != nil {
		return false, fmt.Errorf("failed to get last insert id: %w", err)
	}

	job.ID = id
	return true, nil
}

func (r *reminderRepo) ListByAssignment(assignmentID int64) ([]*entity.ReminderJob, error) {
	query := `
		SELECT id, assignment_id, fire_at_utc, label
		FROM reminder_jobs
		WHERE assignment_id = ?
		ORDER BY fire_at_utc ASC
	`

	rows, err := r.db.Query(query, assignmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reminder jobs: %w", err)
	}
	defer rows.Close()

	return r.scanAll(rows)
}

func (r *reminderRepo) ListFiringAfter(now time.Time) ([]*entity.ReminderJob, error) {
	query := `
		SELECT id, assignment_id, fire_at_utc, label
		FROM reminder_jobs
		WHERE fire_at_utc > ?
		ORDER BY fire_at_utc ASC
	`

	rows, err := r.db.Query(query, now.UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to list future reminder jobs: %w", err)
	}
	defer rows.Close()

	return r.scanAll(rows)
}

func (r *reminderRepo) scanAll(rows *sql.Rows) ([]*entity.ReminderJob, error) {
	var jobs []*entity.ReminderJob
	for rows.Next() {
		job := &entity.ReminderJob{}
		err := rows.Scan(
			&job.ID,
			&job.AssignmentID,
			&job.FireAt,
			&job.Label,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reminder job: %w", err)
		}
		job.FireAt = job.FireAt.UTC()
		jobs = append(jobs, job)
	}

	return jobs, nil
}
