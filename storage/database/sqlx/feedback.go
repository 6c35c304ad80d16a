package sqlxrepos

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/curaedu/cura/core/feedback"
)

type feedbackRepository struct {
	db *sqlx.DB
}

var _ feedback.Repository = (*feedbackRepository)(nil) // interface compliance check

func NewFeedbackRepository(db *sqlx.DB) feedback.Repository {
	return &feedbackRepository{db: db}
}

func (repo *feedbackRepository) CreateFeedback(fb feedback.Feedback) (feedback.Feedback, error) {
	_, err := repo.db.NamedExec(
		`INSERT INTO feedback (id, submission_id, feedback_text, tone, grade, created_at)
		 VALUES (:id, :submission_id, :feedback_text, :tone, :grade, :created_at)`, fb)
	if err != nil {
		return feedback.Feedback{}, errors.Wrap(err, "creating feedback")
	}
	return fb, nil
}

func (repo *feedbackRepository) QueryFeedbackBySubmission(submissionID string) ([]feedback.Feedback, error) {
	fbs := []feedback.Feedback{}
	err := repo.db.Select(&fbs,
		`SELECT * FROM feedback WHERE submission_id = $1 ORDER BY created_at`, submissionID)
	return fbs, errors.Wrap(err, "querying feedback by submission")
}

func (repo *feedbackRepository) GetLatestFeedbackBySubmission(submissionID string) (feedback.Feedback, error) {
	var fb feedback.Feedback
	err := repo.db.Get(&fb,
		`SELECT * FROM feedback WHERE submission_id = $1
		 ORDER BY created_at DESC LIMIT 1`, submissionID)
	if err != nil {
		if err == sql.ErrNoRows {
			return feedback.Feedback{}, feedback.ErrNotFound
		}
		return feedback.Feedback{}, errors.Wrap(err, "getting latest feedback")
	}
	return fb, nil
}

func (repo *feedbackRepository) QueryFeedbackBySubmissions(submissionIDs []string) ([]feedback.Feedback, error) {
	fbs := []feedback.Feedback{}
	if len(submissionIDs) == 0 {
		return fbs, nil
	}
	query, args, err := sqlx.In(
		`SELECT * FROM feedback WHERE submission_id IN (?) ORDER BY created_at DESC`, submissionIDs)
	if err != nil {
		return nil, errors.Wrap(err, "building feedback query")
	}
	err = repo.db.Select(&fbs, repo.db.Rebind(query), args...)
	return fbs, errors.Wrap(err, "querying feedback by submissions")
}
