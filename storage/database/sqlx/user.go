package sqlxrepos

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/curaedu/cura/core/account"
)

type userRepository struct {
	db *sqlx.DB
}

var _ account.Repository = (*userRepository)(nil) // interface compliance check

func NewUserRepository(db *sqlx.DB) account.Repository {
	return &userRepository{db: db}
}

func (repo *userRepository) CheckEmailUniqueness(email string) error {
	var exists bool
	err := repo.db.Get(&exists, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email)
	if err != nil {
		return errors.Wrap(err, "checking email uniqueness")
	}
	if exists {
		return account.ErrEmailExists
	}
	return nil
}

func (repo *userRepository) CreateUser(usr account.User) (account.User, error) {
	_, err := repo.db.NamedExec(
		`INSERT INTO users (id, email, role, name, password_hash, created_at)
		 VALUES (:id, :email, :role, :name, :password_hash, :created_at)`, usr)
	if err != nil {
		return account.User{}, errors.Wrap(err, "creating user")
	}
	return usr, nil
}

func (repo *userRepository) GetUserByID(id string) (account.User, error) {
	var usr account.User
	err := repo.db.Get(&usr, `SELECT * FROM users WHERE id = $1`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return account.User{}, account.ErrNotFound
		}
		return account.User{}, errors.Wrap(err, "getting user by id")
	}
	return usr, nil
}

func (repo *userRepository) GetUserByEmail(email string) (account.User, error) {
	var usr account.User
	err := repo.db.Get(&usr, `SELECT * FROM users WHERE email = $1`, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return account.User{}, account.ErrNotFound
		}
		return account.User{}, errors.Wrap(err, "getting user by email")
	}
	return usr, nil
}
