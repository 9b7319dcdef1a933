package database

import (
	"database/sql"
	"fmt"

	"github.com/classdesk/classbot/internal/domain/contract"
	"github.com/classdesk/classbot/internal/domain/entity"
)

type memberRepo struct {
	db dbConn
}

func newMemberRepo(db dbConn) contract.MemberRepo {
	return &memberRepo{db: db}
}

func (r *memberRepo) Create(member *entity.Member) error {
	query := `
		INSERT INTO members (display_name, address, role, is_active)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		member.DisplayName,
		member.Address,
		member.Role,
		member.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to create member: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	member.ID = id
	return nil
}

func (r *memberRepo) GetByID(id int64) (*entity.Member, error) {
	query := `
		SELECT id, display_name, address, role, is_active, created_at
		FROM members
		WHERE id = ?
	`

	return r.scanOne(r.db.QueryRow(query, id))
}

func (r *memberRepo) GetByAddress(address string) (*entity.Member, error) {
	query := `
		SELECT id, display_name, address, role, is_active, created_at
		FROM members
		WHERE address = ?
	`

	return r.scanOne(r.db.QueryRow(query, address))
}

func (r *memberRepo) List() ([]*entity.Member, error) {
	query := `
		SELECT id, display_name, address, role, is_active, created_at
		FROM members
		ORDER BY display_name ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	return r.scanAll(rows)
}

func (r *memberRepo) ListByGroup(groupID int64) ([]*entity.Member, error) {
	query := `
		SELECT m.id, m.display_name, m.address, m.role, m.is_active, m.created_at
		FROM members m
		JOIN enrollments e ON e.member_id = m.id
		WHERE e.group_id = ? AND m.is_active = 1
		ORDER BY m.display_name ASC
	`

	rows, err := r.db.Query(query, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list group members: %w", err)
	}
	defer rows.Close()

	return r.scanAll(rows)
}

func (r *memberRepo) Enroll(memberID, groupID int64) error {
	query := `INSERT OR IGNORE INTO enrollments (member_id, group_id) VALUES (?, ?)`

	_, err := r.db.Exec(query, memberID, groupID)
	if err != nil {
		return fmt.Errorf("failed to enroll member: %w", err)
	}

	return nil
}

func (r *memberRepo) Unenroll(memberID, groupID int64) error {
	query := `DELETE FROM enrollments WHERE member_id = ? AND group_id = ?`

	_, err := r.db.Exec(query, memberID, groupID)
	if err != nil {
		return fmt.Errorf("failed to unenroll member: %w", err)
	}

	return nil
}

func (r *memberRepo) SetActive(memberID int64, active bool) error {
	query := `UPDATE members SET is_active = ? WHERE id = ?`

	_, err := r.db.Exec(query, active, memberID)
	if err != nil {
		return fmt.Errorf("failed to set member active status: %w", err)
	}

	return nil
}

func (r *memberRepo) SetRole(memberID int64, role string) error {
	query := `UPDATE members SET role = ? WHERE id = ?`

	_, err := r.db.Exec(query, role, memberID)
	if err != nil {
		return fmt.Errorf("failed to set member role: %w", err)
	}

	return nil
}

func (r *memberRepo) scanOne(row *sql.Row) (*entity.Member, error) {
	member := &entity.Member{}
	err := row.Scan(
		&member.ID,
		&member.DisplayName,
		&member.Address,
		&member.Role,
		&member.IsActive,
		&member.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	return member, nil
}

func (r *memberRepo) scanAll(rows *sql.Rows) ([]*entity.Member, error) {
	var members []*entity.Member
	for rows.Next() {
		member := &entity.Member{}
		err := rows.Scan(
			&member.ID,
			&member.DisplayName,
			&member.Address,
			&member.Role,
			&member.IsActive,
			&member.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, member)
	}

	return members, nil
}
