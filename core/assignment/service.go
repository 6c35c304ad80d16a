package assignment

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/curaedu/cura/core"
	"github.com/curaedu/cura/core/account"
)

var (
	// errors
	ErrNotFound = errors.New("assignment not found")
	ErrExists   = errors.New("student is already assigned to this teacher")
)

type (
	Assignment struct {
		ID        string    `json:"id" db:"id"`
		StudentID string    `json:"student_id" db:"student_id"`
		TeacherID string    `json:"teacher_id" db:"teacher_id"`
		CreatedAt time.Time `json:"created_at" db:"created_at"` // UTC
	}

	Repository interface {
		CreateAssignment(a Assignment) (Assignment, error)
		GetAssignment(teacherID, studentID string) (Assignment, error)
		QueryAssignmentsByTeacher(teacherID string) ([]Assignment, error)
		DeleteAssignment(teacherID, studentID string) error
	}

	// UserStore is the slice of the account storage this service needs.
	UserStore interface {
		GetUserByID(id string) (account.User, error)
	}

	Service struct {
		repo  Repository
		users UserStore
	}
)

func NewService(repo Repository, users UserStore) *Service {
	return &Service{repo: repo, users: users}
}

// Assign links a student to a teacher. The target user must exist, must be
// a student and must not already be assigned to this teacher.
func (svc *Service) Assign(teacherID, studentID string) (Assignment, error) {
	usr, err := svc.users.GetUserByID(studentID)
	if err != nil {
		if err == account.ErrNotFound {
			return Assignment{}, core.NewNotFoundError("student")
		}
		return Assignment{}, err
	}
	if !usr.IsStudent() {
		return Assignment{}, core.NewValidationError(errors.New("user is not a student"))
	}

	if _, err = svc.repo.GetAssignment(teacherID, studentID); err == nil {
		return Assignment{}, core.NewValidationError(ErrExists)
	} else if err != ErrNotFound {
		return Assignment{}, err
	}

	a := Assignment{
		ID:        uuid.NewString(),
		StudentID: studentID,
		TeacherID: teacherID,
		CreatedAt: time.Now().UTC(),
	}
	return svc.repo.CreateAssignment(a)
}

func (svc *Service) QueryForTeacher(teacherID string) ([]Assignment, error) {
	return svc.repo.QueryAssignmentsByTeacher(teacherID)
}

func (svc *Service) Unassign(teacherID, studentID string) error {
	if err := svc.repo.DeleteAssignment(teacherID, studentID); err != nil {
		if err == ErrNotFound {
			return core.NewNotFoundError("assignment")
		}
		return err
	}
	return nil
}
