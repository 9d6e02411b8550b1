package assignment

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/jinzhu/copier"
	"github.com/pkg/errors"

	"github.com/trezcool/edtech/core"
)

type Assignment struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`   // free text
	TeacherID   string `json:"teacher_id"` // not checked against existing users
}

// NewAssignment contains information needed to create a new Assignment.
type NewAssignment struct {
	Title       *string `json:"title" validate:"required"`
	Description *string `json:"description" validate:"required"`
	DueDate     *string `json:"due_date" validate:"required"`
	TeacherID   *string `json:"teacher_id" validate:"required"`
}

func (na NewAssignment) Validate(validate *validator.Validate) error { return validate.Struct(na) }

type (
	Repository interface {
		CreateAssignment(ctx context.Context, asg Assignment) (Assignment, error)
		QueryAllAssignments(ctx context.Context) ([]Assignment, error)
	}

	Service interface {
		Create(ctx context.Context, na NewAssignment) (Assignment, error)
		QueryAll(ctx context.Context) ([]Assignment, error)
	}

	service struct {
		repo Repository
	}
)

var _ Service = (*service)(nil)

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (svc *service) Create(ctx context.Context, na NewAssignment) (Assignment, error) {
	asg := Assignment{ID: core.NewID()}
	if err := copier.Copy(&asg, &na); err != nil {
		return Assignment{}, errors.Wrap(err, "copying NewAssignment")
	}
	return svc.repo.CreateAssignment(ctx, asg)
}

// QueryAll returns every Assignment in creation order.
func (svc *service) QueryAll(ctx context.Context) ([]Assignment, error) {
	return svc.repo.QueryAllAssignments(ctx)
}
