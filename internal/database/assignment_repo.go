package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/classdesk/classbot/internal/domain/contract"
	"github.com/classdesk/classbot/internal/domain/entity"
)

type assignmentRepo struct {
	db dbConn
}

func newAssignmentRepo(db dbConn) contract.AssignmentRepo {
	return &assignmentRepo{db: db}
}

func (r *assignmentRepo) Create(assignment *entity.Assignment) error {
	query := `
		INSERT INTO assignments (group_id, title, description, due_at_utc, created_at_utc)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		assignment.GroupID,
		assignment.Title,
		assignment.Description,
		assignment.DueAt.UTC(),
		assignment.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to create assignment: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	assignment.ID = id
	return nil
}

func (r *assignmentRepo) GetByID(id int64) (*entity.Assignment, error) {
	assignment := &entity.Assignment{}
	query := `
		SELECT id, group_id, title, description, due_at_utc, created_at_utc
		FROM assignments
		WHERE id = ?
	`

	err := r.db.QueryRow(query, id).Scan(
		&assignment.ID,
		&assignment.GroupID,
		&assignment.Title,
		&assignment.Description,
		&assignment.DueAt,
		&assignment.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}

	assignment.DueAt = assignment.DueAt.UTC()
	assignment.CreatedAt = assignment.CreatedAt.UTC()
	return assignment, nil
}

func (r *assignmentRepo) ListByGroup(groupID int64) ([]*entity.Assignment, error) {
	query := `
		SELECT id, group_id, title, description, due_at_utc, created_at_utc
		FROM assignments
		WHERE group_id = ?
		ORDER BY due_at_utc ASC
	`

	rows, err := r.db.Query(query, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	defer rows.Close()

	var assignments []*entity.Assignment
	for rows.Next() {
		assignment := &entity.Assignment{}
		err := rows.Scan(
			&assignment.ID,
			&assignment.GroupID,
			&assignment.Title,
			&assignment.Description,
			&assignment.DueAt,
			&assignment.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		assignment.DueAt = assignment.DueAt.UTC()
		assignment.CreatedAt = assignment.CreatedAt.UTC()
		assignments = append(assignments, assignment)
	}

	return assignments, nil
}

func (r *assignmentRepo) Delete(id int64) error {
	query := `DELETE FROM assignments WHERE id = ?`

	_, err := r.db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}

	return nil
}

func (r *assignmentRepo) DeleteExpired(before time.Time) (int64, error) {
	query := `DELETE FROM assignments WHERE due_at_utc < ?`

	result, err := r.db.Exec(query, before.UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired assignments: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return deleted, nil
}
