package dummydb

import (
	"github.com/curaedu/cura/core/assignment"
)

type assignmentRepository struct {
	db *assignmentTable
}

var _ assignment.Repository = (*assignmentRepository)(nil) // interface compliance check

func NewAssignmentRepository(db *DB) assignment.Repository {
	return &assignmentRepository{db: db.assignment}
}

func (repo *assignmentRepository) CreateAssignment(a assignment.Assignment) (assignment.Assignment, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.rows = append(repo.db.rows, a)
	return a, nil
}

func (repo *assignmentRepository) GetAssignment(teacherID, studentID string) (assignment.Assignment, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, a := range repo.db.rows {
		if a.TeacherID == teacherID && a.StudentID == studentID {
			return a, nil
		}
	}
	return assignment.Assignment{}, assignment.ErrNotFound
}

func (repo *assignmentRepository) QueryAssignmentsByTeacher(teacherID string) ([]assignment.Assignment, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	as := []assignment.Assignment{}
	for _, a := range repo.db.rows {
		if a.TeacherID == teacherID {
			as = append(as, a)
		}
	}
	return as, nil
}

func (repo *assignmentRepository) DeleteAssignment(teacherID, studentID string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	for i, a := range repo.db.rows {
		if a.TeacherID == teacherID && a.StudentID == studentID {
			repo.db.rows = append(repo.db.rows[:i], repo.db.rows[i+1:]...)
			return nil
		}
	}
	return assignment.ErrNotFound
}
