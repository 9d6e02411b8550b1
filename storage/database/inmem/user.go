package inmemdb

import (
	"context"

	"github.com/samber/lo"

	"github.com/trezcool/edtech/core/user"
)

type userRepository struct {
	db *table[user.User]
}

var _ user.Repository = (*userRepository)(nil) // interface compliance check

func NewUserRepository(db *DB) user.Repository {
	return &userRepository{db: db.user}
}

func (repo *userRepository) CreateUser(_ context.Context, usr user.User) (user.User, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	// check & append under the same lock: concurrent signups cannot share an email
	if _, found := repo.db.first(func(u user.User) bool { return u.Email == usr.Email }); found {
		return user.User{}, user.ErrEmailExists
	}
	repo.db.append(usr)
	return usr, nil
}

func (repo *userRepository) GetUserByCredentials(_ context.Context, creds user.Credentials) (user.User, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	email, pwd := lo.FromPtr(creds.Email), lo.FromPtr(creds.Password)
	usr, found := repo.db.first(func(u user.User) bool {
		return u.Email == email && u.Password == pwd
	})
	if !found {
		return user.User{}, user.ErrNotFound
	}
	return usr, nil
}
