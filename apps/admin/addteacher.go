package main

import (
	"time"

	"github.com/google/uuid"

	"github.com/curaedu/cura/core"
	"github.com/curaedu/cura/core/account"
	"github.com/curaedu/cura/core/auth"
)

// addTeacher creates a teacher account, bypassing the public signup flow.
func (cli *commandLine) addTeacher(email, name, pwd string) error {
	email = core.CleanString(email, true /* lower */)
	name = core.CleanString(name)

	if err := cli.usrRepo.CheckEmailUniqueness(email); err != nil {
		return err
	}

	usr := account.User{
		ID:        uuid.NewString(),
		Email:     email,
		Role:      auth.RoleTeacher,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	if err := usr.SetPassword(pwd); err != nil {
		return err
	}

	if _, err := cli.usrRepo.CreateUser(usr); err != nil {
		return err
	}
	logger.Printf("teacher %s created", usr.Email)
	return nil
}
