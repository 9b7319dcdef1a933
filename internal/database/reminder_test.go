package database

import (
	"testing"
	"time"

	"github.com/classdesk/classbot/internal/domain"
	"github.com/classdesk/classbot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAssignment(t *testing.T, db *DB) *entity.Assignment {
	t.Helper()

	groupRepo := newGroupRepo(db.conn)
	group := &entity.Group{
		Name:         "RoboticsA",
		OwnerAddress: "U_TEACHER",
		Timezone:     "Europe/Moscow",
	}
	require.NoError(t, groupRepo.Create(group))

	assignmentRepo := newAssignmentRepo(db.conn)
	assignment := &entity.Assignment{
		GroupID:   group.ID,
		Title:     "Blink LED",
		DueAt:     time.Date(2025, 9, 25, 18, 0, 0, 0, time.UTC),
		CreatedAt: time.Date(2025, 9, 20, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, assignmentRepo.Create(assignment))

	return assignment
}

func TestReminderRepository_CreateIfAbsent(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newReminderRepo(db.conn)
	assignment := testAssignment(t, db)

	job := &entity.ReminderJob{
		AssignmentID: assignment.ID,
		FireAt:       time.Date(2025, 9, 25, 15, 0, 0, 0, time.UTC),
		Label:        domain.LabelT3h,
	}

	inserted, err := repo.CreateIfAbsent(job)
	require.NoError(t, err, "Failed to create reminder job")
	assert.True(t, inserted, "Expected first insert to write a row")
	assert.NotZero(t, job.ID, "Expected job ID to be set after creation")

	// Same triple again: no new row, no error
	duplicate := &entity.ReminderJob{
		AssignmentID: assignment.ID,
		FireAt:       job.FireAt,
		Label:        domain.LabelT3h,
	}
	inserted, err = repo.CreateIfAbsent(duplicate)
	require.NoError(t, err, "Duplicate insert should be ignored, not fail")
	assert.False(t, inserted, "Expected duplicate insert to be a no-op")

	jobs, err := repo.ListByAssignment(assignment.ID)
	require.NoError(t, err)
	assert.Len(t, jobs, 1, "Expected exactly one persisted row")

	// Same instant under a different label is a different job
	other := &entity.ReminderJob{
		AssignmentID: assignment.ID,
		FireAt:       job.FireAt,
		Label:        domain.LabelT15m,
	}
	inserted, err = repo.CreateIfAbsent(other)
	require.NoError(t, err)
	assert.True(t, inserted)
}

func TestReminderRepository_ListFiringAfter(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newReminderRepo(db.conn)
	assignment := testAssignment(t, db)

	now := time.Date(2025, 9, 25, 17, 0, 0, 0, time.UTC)

	past := &entity.ReminderJob{
		AssignmentID: assignment.ID,
		FireAt:       now.Add(-time.Minute),
		Label:        domain.LabelT3h,
	}
	future := &entity.ReminderJob{
		AssignmentID: assignment.ID,
		FireAt:       now.Add(45 * time.Minute),
		Label:        domain.LabelT15m,
	}
	atNow := &entity.ReminderJob{
		AssignmentID: assignment.ID,
		FireAt:       now,
		Label:        domain.LabelT0,
	}

	for _, job := range []*entity.ReminderJob{past, future, atNow} {
		_, err := repo.CreateIfAbsent(job)
		require.NoError(t, err)
	}

	// Only strictly future rows come back; the one missed a minute ago
	// stays in the store but is never re-armed
	jobs, err := repo.ListFiringAfter(now)
	require.NoError(t, err)
	require.Len(t, jobs, 1)

	assert.Equal(t, domain.LabelT15m, jobs[0].Label)
	assert.True(t, jobs[0].FireAt.Equal(future.FireAt),
		"expected %s, got %s", future.FireAt, jobs[0].FireAt)
}

func TestReminderRepository_ListByAssignment(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newReminderRepo(db.conn)
	assignment := testAssignment(t, db)

	labels := []string{domain.LabelT24h, domain.LabelT3h, domain.LabelT15m, domain.LabelT0}
	leads := []time.Duration{24 * time.Hour, 3 * time.Hour, 15 * time.Minute, 0}

	for i, label := range labels {
		_, err := repo.CreateIfAbsent(&entity.ReminderJob{
			AssignmentID: assignment.ID,
			FireAt:       assignment.DueAt.Add(-leads[i]),
			Label:        label,
		})
		require.NoError(t, err)
	}

	jobs, err := repo.ListByAssignment(assignment.ID)
	require.NoError(t, err)
	require.Len(t, jobs, 4)

	// Ordered by fire instant
	assert.Equal(t, domain.LabelT24h, jobs[0].Label)
	assert.Equal(t, domain.LabelT0, jobs[3].Label)
	assert.True(t, jobs[0].FireAt.Equal(time.Date(2025, 9, 24, 18, 0, 0, 0, time.UTC)))

	none, err := repo.ListByAssignment(99999)
	require.NoError(t, err)
	assert.Empty(t, none)
}
