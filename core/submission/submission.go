package submission

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/jinzhu/copier"
	"github.com/pkg/errors"

	"github.com/trezcool/edtech/core"
)

// Submission is a student's answer to an Assignment.
// Neither AssignmentID nor StudentID are checked against existing records.
type Submission struct {
	ID           string `json:"id"`
	AssignmentID string `json:"assignment_id"`
	StudentID    string `json:"student_id"`
	Content      string `json:"content"`
	SubmittedAt  string `json:"submitted_at"` // free text
}

// NewSubmission contains information needed to submit an Assignment.
type NewSubmission struct {
	AssignmentID *string `json:"assignment_id" validate:"required"`
	StudentID    *string `json:"student_id" validate:"required"`
	Content      *string `json:"content" validate:"required"`
	SubmittedAt  *string `json:"submitted_at" validate:"required"`
}

func (ns NewSubmission) Validate(validate *validator.Validate) error { return validate.Struct(ns) }

type QueryFilter struct {
	AssignmentID string
}

type (
	Repository interface {
		CreateSubmission(ctx context.Context, sub Submission) (Submission, error)
		// FilterSubmissions returns the Submissions matching all set QueryFilter fields, in submission order.
		FilterSubmissions(ctx context.Context, filter QueryFilter) ([]Submission, error)
	}

	Service interface {
		Submit(ctx context.Context, ns NewSubmission) (Submission, error)
		QueryByAssignment(ctx context.Context, assignmentID string) ([]Submission, error)
	}

	service struct {
		repo Repository
	}
)

var _ Service = (*service)(nil)

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (svc *service) Submit(ctx context.Context, ns NewSubmission) (Submission, error) {
	sub := Submission{ID: core.NewID()}
	if err := copier.Copy(&sub, &ns); err != nil {
		return Submission{}, errors.Wrap(err, "copying NewSubmission")
	}
	return svc.repo.CreateSubmission(ctx, sub)
}

func (svc *service) QueryByAssignment(ctx context.Context, assignmentID string) ([]Submission, error) {
	return svc.repo.FilterSubmissions(ctx, QueryFilter{AssignmentID: assignmentID})
}
