package dummydb

import (
	"github.com/curaedu/cura/core/account"
)

type userRepository struct {
	db *userTable
}

var _ account.Repository = (*userRepository)(nil) // interface compliance check

func NewUserRepository(db *DB) account.Repository {
	return &userRepository{db: db.user}
}

func (repo *userRepository) CheckEmailUniqueness(email string) error {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, usr := range repo.db.table {
		if usr.Email == email {
			return account.ErrEmailExists
		}
	}
	return nil
}

func (repo *userRepository) CreateUser(usr account.User) (account.User, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.table[usr.ID] = &usr
	return usr, nil
}

func (repo *userRepository) GetUserByID(id string) (account.User, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if usr, ok := repo.db.table[id]; ok {
		return *usr, nil
	}
	return account.User{}, account.ErrNotFound
}

func (repo *userRepository) GetUserByEmail(email string) (account.User, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, usr := range repo.db.table {
		if usr.Email == email {
			return *usr, nil
		}
	}
	return account.User{}, account.ErrNotFound
}
