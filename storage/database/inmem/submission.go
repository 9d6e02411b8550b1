package inmemdb

import (
	"context"

	"github.com/trezcool/edtech/core/submission"
)

type submissionRepository struct {
	db *table[submission.Submission]
}

var _ submission.Repository = (*submissionRepository)(nil) // interface compliance check

func NewSubmissionRepository(db *DB) submission.Repository {
	return &submissionRepository{db: db.submission}
}

func (repo *submissionRepository) CreateSubmission(_ context.Context, sub submission.Submission) (submission.Submission, error) {
	repo.db.Lock()
	defer repo.db.Unlock()
	repo.db.append(sub)
	return sub, nil
}

func (repo *submissionRepository) FilterSubmissions(_ context.Context, filter submission.QueryFilter) ([]submission.Submission, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	return repo.db.scan(func(s submission.Submission) bool {
		return filter.AssignmentID == "" || s.AssignmentID == filter.AssignmentID
	}), nil
}
