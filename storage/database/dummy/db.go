package dummydb

import (
	"sync"

	"github.com/curaedu/cura/core/account"
	"github.com/curaedu/cura/core/assignment"
	"github.com/curaedu/cura/core/feedback"
	"github.com/curaedu/cura/core/submission"
	"github.com/curaedu/cura/core/values"
)

type (
	DB struct {
		user       *userTable
		submission *submissionTable
		feedback   *feedbackTable
		assignment *assignmentTable
		values     *valuesTable
	}

	userTable struct {
		sync.RWMutex
		table map[string]*account.User
	}

	submissionTable struct {
		sync.RWMutex
		rows []submission.Submission
	}

	feedbackTable struct {
		sync.RWMutex
		rows []feedback.Feedback
	}

	assignmentTable struct {
		sync.RWMutex
		rows []assignment.Assignment
	}

	valuesTable struct {
		sync.RWMutex
		statements []values.Statement
		responses  []values.Response
	}
)

func Open() (*DB, error) {
	db := &DB{
		user:       &userTable{table: make(map[string]*account.User)},
		submission: &submissionTable{},
		feedback:   &feedbackTable{},
		assignment: &assignmentTable{},
		values:     &valuesTable{},
	}
	return db, nil
}
