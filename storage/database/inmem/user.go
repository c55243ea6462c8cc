package inmemdb

import (
	"github.com/Sazzad-Saju/circle-funds-flow/core/user"
)

type userRepository struct {
	db *userTable
}

var _ user.Repository = (*userRepository)(nil)

func NewUserRepository(db *DB) user.Repository {
	return &userRepository{db: db.user}
}

func (repo *userRepository) GetByID(id string) (user.User, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, usr := range repo.db.rows {
		if usr.ID == id {
			return usr, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (repo *userRepository) GetByEmail(email string) (user.User, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, usr := range repo.db.rows {
		if usr.Email == email {
			return usr, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (repo *userRepository) Create(usr user.User) (user.User, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	for _, u := range repo.db.rows {
		if u.Email == usr.Email {
			return user.User{}, user.ErrEmailExists
		}
	}
	rows := make([]user.User, 0, len(repo.db.rows)+1)
	rows = append(rows, repo.db.rows...)
	rows = append(rows, usr)
	repo.db.rows = rows
	return usr, nil
}

func (repo *userRepository) Update(usr user.User) (user.User, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	for i, u := range repo.db.rows {
		if u.ID != usr.ID {
			continue
		}
		rows := make([]user.User, len(repo.db.rows))
		copy(rows, repo.db.rows)
		rows[i] = usr
		repo.db.rows = rows
		return usr, nil
	}
	return user.User{}, user.ErrNotFound
}
