package sqlxrepos

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/curaedu/cura/core/submission"
)

type submissionRepository struct {
	db *sqlx.DB
}

var _ submission.Repository = (*submissionRepository)(nil) // interface compliance check

func NewSubmissionRepository(db *sqlx.DB) submission.Repository {
	return &submissionRepository{db: db}
}

func (repo *submissionRepository) CreateSubmission(sub submission.Submission) (submission.Submission, error) {
	_, err := repo.db.NamedExec(
		`INSERT INTO submissions (id, user_id, file_name, extracted_text, created_at)
		 VALUES (:id, :user_id, :file_name, :extracted_text, :created_at)`, sub)
	if err != nil {
		return submission.Submission{}, errors.Wrap(err, "creating submission")
	}
	return sub, nil
}

func (repo *submissionRepository) GetSubmissionByID(id string) (submission.Submission, error) {
	var sub submission.Submission
	err := repo.db.Get(&sub, `SELECT * FROM submissions WHERE id = $1`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return submission.Submission{}, submission.ErrNotFound
		}
		return submission.Submission{}, errors.Wrap(err, "getting submission by id")
	}
	return sub, nil
}

func (repo *submissionRepository) QueryAllSubmissions() ([]submission.Submission, error) {
	subs := []submission.Submission{}
	err := repo.db.Select(&subs, `SELECT * FROM submissions ORDER BY created_at DESC`)
	return subs, errors.Wrap(err, "querying submissions")
}

func (repo *submissionRepository) QuerySubmissionsByOwner(userID string) ([]submission.Summary, error) {
	subs := []submission.Summary{}
	err := repo.db.Select(&subs,
		`SELECT id, file_name, created_at FROM submissions
		 WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	return subs, errors.Wrap(err, "querying submissions by owner")
}

func (repo *submissionRepository) QuerySubmissionsWithStudent() ([]submission.TeacherView, error) {
	subs := []submission.TeacherView{}
	err := repo.db.Select(&subs,
		`SELECT s.id, s.file_name, u.name AS student_name, s.created_at
		 FROM submissions s JOIN users u ON u.id = s.user_id
		 ORDER BY s.created_at DESC`)
	return subs, errors.Wrap(err, "querying submissions with student")
}
