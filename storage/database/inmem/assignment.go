package inmemdb

import (
	"context"

	"github.com/trezcool/edtech/core/assignment"
)

type assignmentRepository struct {
	db *table[assignment.Assignment]
}

var _ assignment.Repository = (*assignmentRepository)(nil) // interface compliance check

func NewAssignmentRepository(db *DB) assignment.Repository {
	return &assignmentRepository{db: db.assignment}
}

func (repo *assignmentRepository) CreateAssignment(_ context.Context, asg assignment.Assignment) (assignment.Assignment, error) {
	repo.db.Lock()
	defer repo.db.Unlock()
	repo.db.append(asg)
	return asg, nil
}

func (repo *assignmentRepository) QueryAllAssignments(context.Context) ([]assignment.Assignment, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.db.scan(all[assignment.Assignment]), nil
}
