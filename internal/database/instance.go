package database

import (
	"context"
	"fmt"

	"github.com/classdesk/classbot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db             *DB
	groupRepo      contract.GroupRepo
	memberRepo     contract.MemberRepo
	assignmentRepo contract.AssignmentRepo
	reminderRepo   contract.ReminderRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	instance := &instance{
		db: db,
	}
	instance.repoInstances()
	return instance
}

// repoInstances initializes all repositories
func (i *instance) repoInstances() {
	i.groupRepo = newGroupRepo(i.db.conn)
	i.memberRepo = newMemberRepo(i.db.conn)
	i.assignmentRepo = newAssignmentRepo(i.db.conn)
	i.reminderRepo = newReminderRepo(i.db.conn)
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		groupRepo:      newGroupRepo(db),
		memberRepo:     newMemberRepo(db),
		assignmentRepo: newAssignmentRepo(db),
		reminderRepo:   newReminderRepo(db),
	}
}

// Group returns the group repository
func (i *instance) Group() contract.GroupRepo {
	return i.groupRepo
}

// Member returns the member repository
func (i *instance) Member() contract.MemberRepo {
	return i.memberRepo
}

// Assignment returns the assignment repository
func (i *instance) Assignment() contract.AssignmentRepo {
	return i.assignmentRepo
}

// Reminder returns the reminder job repository
func (i *instance) Reminder() contract.ReminderRepo {
	return i.reminderRepo
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	tx, err := i.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
