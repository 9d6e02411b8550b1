package user

import (
	"context"

	"github.com/jinzhu/copier"
	"github.com/pkg/errors"

	"github.com/trezcool/edtech/core"
)

var (
	// errors
	ErrNotFound           = errors.New("user not found")
	ErrEmailExists        = errors.New("a user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type (
	Repository interface {
		// CreateUser stores a new User unless one with the same email already exists (ErrEmailExists).
		CreateUser(ctx context.Context, usr User) (User, error)
		// GetUserByCredentials returns the first User (in signup order) matching both email and password.
		GetUserByCredentials(ctx context.Context, creds Credentials) (User, error)
	}

	Service interface {
		Signup(ctx context.Context, nu NewUser) (User, error)
		Login(ctx context.Context, creds Credentials) (User, error)
	}

	service struct {
		repo Repository
	}
)

var _ Service = (*service)(nil)

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (svc *service) Signup(ctx context.Context, nu NewUser) (User, error) {
	usr := User{ID: core.NewID()}
	if err := copier.Copy(&usr, &nu); err != nil {
		return User{}, errors.Wrap(err, "copying NewUser")
	}
	return svc.repo.CreateUser(ctx, usr)
}

func (svc *service) Login(ctx context.Context, creds Credentials) (User, error) {
	usr, err := svc.repo.GetUserByCredentials(ctx, creds)
	if err != nil {
		if errors.Cause(err) == ErrNotFound {
			return User{}, ErrInvalidCredentials
		}
		return User{}, errors.Wrap(err, "finding user by credentials")
	}
	return usr, nil
}
