package database

import (
	"database/sql"
	"fmt"

	"github.com/classdesk/classbot/internal/domain/contract"
	"github.com/classdesk/classbot/internal/domain/entity"
)

type groupRepo struct {
	db dbConn
}

func newGroupRepo(db dbConn) contract.GroupRepo {
	return &groupRepo{db: db}
}

func (r *groupRepo) Create(group *entity.Group) error {
	query := `
		INSERT INTO groups (name, owner_address, timezone)
		VALUES (?, ?, ?)
	`

	result, err := r.db.Exec(query,
		group.Name,
		group.OwnerAddress,
		group.Timezone,
	)
	if err != nil {
		return fmt.Errorf("failed to create group: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	group.ID = id
	return nil
}

func (r *groupRepo) GetByID(id int64) (*entity.Group, error) {
	group := &entity.Group{}
	query := `
		SELECT id, name, owner_address, timezone, created_at
		FROM groups
		WHERE id = ?
	`

	err := r.db.QueryRow(query, id).Scan(
		&group.ID,
		&group.Name,
		&group.OwnerAddress,
		&group.Timezone,
		&group.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	return group, nil
}

func (r *groupRepo) GetByName(name string) (*entity.Group, error) {
	group := &entity.Group{}
	query := `
		SELECT id, name, owner_address, timezone, created_at
		FROM groups
		WHERE name = ?
	`

	err := r.db.QueryRow(query, name).Scan(
		&group.ID,
		&group.Name,
		&group.OwnerAddress,
		&group.Timezone,
		&group.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	return group, nil
}

func (r *groupRepo) List() ([]*entity.Group, error) {
	query := `
		SELECT id, name, owner_address, timezone, created_at
		FROM groups
		ORDER BY name ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	defer rows.Close()

	var groups []*entity.Group
	for rows.Next() {
		group := &entity.Group{}
		err := rows.Scan(
			&group.ID,
			&group.Name,
			&group.OwnerAddress,
			&group.Timezone,
			&group.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		groups = append(groups, group)
	}

	return groups, nil
}
