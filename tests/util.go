package testutil

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"

	"github.com/trezcool/edtech/core"
	"github.com/trezcool/edtech/core/assignment"
	"github.com/trezcool/edtech/core/submission"
	"github.com/trezcool/edtech/core/user"
	"github.com/trezcool/edtech/storage/database/inmem"
)

// OpenDB returns a fresh, empty in-memory DB.
func OpenDB(t *testing.T) *inmemdb.DB {
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("OpenDB() failed: %v", err)
	}
	return db
}

// NewValidate returns a validator configured like the API's.
func NewValidate() *validator.Validate {
	validate := validator.New()
	core.InitValidators(validate, core.NewTranslator())
	return validate
}

func CreateUser(t *testing.T, repo user.Repository, name, email, pwd, role string) user.User {
	usr, err := repo.CreateUser(context.Background(), user.User{
		ID:       core.NewID(),
		Name:     name,
		Email:    email,
		Password: pwd,
		Role:     role,
	})
	if err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}
	return usr
}

func CreateAssignment(t *testing.T, repo assignment.Repository, title, teacherID string) assignment.Assignment {
	asg, err := repo.CreateAssignment(context.Background(), assignment.Assignment{
		ID:          core.NewID(),
		Title:       title,
		Description: title + " description",
		DueDate:     "2030-01-01",
		TeacherID:   teacherID,
	})
	if err != nil {
		t.Fatalf("CreateAssignment() failed: %v", err)
	}
	return asg
}

func CreateSubmission(t *testing.T, repo submission.Repository, assignmentID, studentID, content string) submission.Submission {
	sub, err := repo.CreateSubmission(context.Background(), submission.Submission{
		ID:           core.NewID(),
		AssignmentID: assignmentID,
		StudentID:    studentID,
		Content:      content,
		SubmittedAt:  "2030-01-01T08:00:00Z",
	})
	if err != nil {
		t.Fatalf("CreateSubmission() failed: %v", err)
	}
	return sub
}

func NewUserInput(name, email, pwd, role string) user.NewUser {
	return user.NewUser{Name: lo.ToPtr(name), Email: lo.ToPtr(email), Password: lo.ToPtr(pwd), Role: lo.ToPtr(role)}
}

func CredentialsInput(email, pwd string) user.Credentials {
	return user.Credentials{Email: lo.ToPtr(email), Password: lo.ToPtr(pwd)}
}

func NewAssignmentInput(title, description, dueDate, teacherID string) assignment.NewAssignment {
	return assignment.NewAssignment{
		Title:       lo.ToPtr(title),
		Description: lo.ToPtr(description),
		DueDate:     lo.ToPtr(dueDate),
		TeacherID:   lo.ToPtr(teacherID),
	}
}

func NewSubmissionInput(assignmentID, studentID, content, submittedAt string) submission.NewSubmission {
	return submission.NewSubmission{
		AssignmentID: lo.ToPtr(assignmentID),
		StudentID:    lo.ToPtr(studentID),
		Content:      lo.ToPtr(content),
		SubmittedAt:  lo.ToPtr(submittedAt),
	}
}
