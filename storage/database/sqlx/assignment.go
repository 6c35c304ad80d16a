package sqlxrepos

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/curaedu/cura/core/assignment"
)

type assignmentRepository struct {
	db *sqlx.DB
}

var _ assignment.Repository = (*assignmentRepository)(nil) // interface compliance check

func NewAssignmentRepository(db *sqlx.DB) assignment.Repository {
	return &assignmentRepository{db: db}
}

func (repo *assignmentRepository) CreateAssignment(a assignment.Assignment) (assignment.Assignment, error) {
	_, err := repo.db.NamedExec(
		`INSERT INTO student_teacher_assignments (id, student_id, teacher_id, created_at)
		 VALUES (:id, :student_id, :teacher_id, :created_at)`, a)
	if err != nil {
		return assignment.Assignment{}, errors.Wrap(err, "creating assignment")
	}
	return a, nil
}

func (repo *assignmentRepository) GetAssignment(teacherID, studentID string) (assignment.Assignment, error) {
	var a assignment.Assignment
	err := repo.db.Get(&a,
		`SELECT * FROM student_teacher_assignments
		 WHERE teacher_id = $1 AND student_id = $2`, teacherID, studentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return assignment.Assignment{}, assignment.ErrNotFound
		}
		return assignment.Assignment{}, errors.Wrap(err, "getting assignment")
	}
	return a, nil
}

func (repo *assignmentRepository) QueryAssignmentsByTeacher(teacherID string) ([]assignment.Assignment, error) {
	as := []assignment.Assignment{}
	err := repo.db.Select(&as,
		`SELECT * FROM student_teacher_assignments
		 WHERE teacher_id = $1 ORDER BY created_at`, teacherID)
	return as, errors.Wrap(err, "querying assignments by teacher")
}

func (repo *assignmentRepository) DeleteAssignment(teacherID, studentID string) error {
	res, err := repo.db.Exec(
		`DELETE FROM student_teacher_assignments
		 WHERE teacher_id = $1 AND student_id = $2`, teacherID, studentID)
	if err != nil {
		return errors.Wrap(err, "deleting assignment")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return assignment.ErrNotFound
	}
	return nil
}
