package dummydb

import (
	"sort"

	"github.com/curaedu/cura/core/feedback"
)

type feedbackRepository struct {
	db *feedbackTable
}

var _ feedback.Repository = (*feedbackRepository)(nil) // interface compliance check

func NewFeedbackRepository(db *DB) feedback.Repository {
	return &feedbackRepository{db: db.feedback}
}

func (repo *feedbackRepository) CreateFeedback(fb feedback.Feedback) (feedback.Feedback, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.rows = append(repo.db.rows, fb)
	return fb, nil
}

func (repo *feedbackRepository) QueryFeedbackBySubmission(submissionID string) ([]feedback.Feedback, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	fbs := []feedback.Feedback{}
	for _, fb := range repo.db.rows {
		if fb.SubmissionID == submissionID {
			fbs = append(fbs, fb)
		}
	}
	sort.SliceStable(fbs, func(i, j int) bool { return fbs[i].CreatedAt.Before(fbs[j].CreatedAt) })
	return fbs, nil
}

func (repo *feedbackRepository) GetLatestFeedbackBySubmission(submissionID string) (feedback.Feedback, error) {
	fbs, _ := repo.QueryFeedbackBySubmission(submissionID)
	if len(fbs) == 0 {
		return feedback.Feedback{}, feedback.ErrNotFound
	}
	return fbs[len(fbs)-1], nil
}

func (repo *feedbackRepository) QueryFeedbackBySubmissions(submissionIDs []string) ([]feedback.Feedback, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	wanted := make(map[string]bool, len(submissionIDs))
	for _, id := range submissionIDs {
		wanted[id] = true
	}

	fbs := []feedback.Feedback{}
	for _, fb := range repo.db.rows {
		if wanted[fb.SubmissionID] {
			fbs = append(fbs, fb)
		}
	}
	sort.SliceStable(fbs, func(i, j int) bool { return fbs[i].CreatedAt.After(fbs[j].CreatedAt) })
	return fbs, nil
}
