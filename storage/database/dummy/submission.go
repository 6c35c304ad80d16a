package dummydb

import (
	"sort"

	"github.com/curaedu/cura/core/submission"
)

type submissionRepository struct {
	db    *submissionTable
	users *userTable
}

var _ submission.Repository = (*submissionRepository)(nil) // interface compliance check

func NewSubmissionRepository(db *DB) submission.Repository {
	return &submissionRepository{db: db.submission, users: db.user}
}

func (repo *submissionRepository) CreateSubmission(sub submission.Submission) (submission.Submission, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.rows = append(repo.db.rows, sub)
	return sub, nil
}

func (repo *submissionRepository) GetSubmissionByID(id string) (submission.Submission, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, sub := range repo.db.rows {
		if sub.ID == id {
			return sub, nil
		}
	}
	return submission.Submission{}, submission.ErrNotFound
}

func (repo *submissionRepository) QueryAllSubmissions() ([]submission.Submission, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	subs := append([]submission.Submission(nil), repo.db.rows...)
	sortNewestFirst(subs)
	return subs, nil
}

func (repo *submissionRepository) QuerySubmissionsByOwner(userID string) ([]submission.Summary, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var own []submission.Submission
	for _, sub := range repo.db.rows {
		if sub.UserID == userID {
			own = append(own, sub)
		}
	}
	sortNewestFirst(own)

	sums := make([]submission.Summary, 0, len(own))
	for _, sub := range own {
		sums = append(sums, submission.Summary{ID: sub.ID, FileName: sub.FileName, CreatedAt: sub.CreatedAt})
	}
	return sums, nil
}

func (repo *submissionRepository) QuerySubmissionsWithStudent() ([]submission.TeacherView, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	subs := append([]submission.Submission(nil), repo.db.rows...)
	sortNewestFirst(subs)

	views := make([]submission.TeacherView, 0, len(subs))
	for _, sub := range subs {
		views = append(views, submission.TeacherView{
			ID:          sub.ID,
			FileName:    sub.FileName,
			StudentName: repo.studentName(sub.UserID),
			CreatedAt:   sub.CreatedAt,
		})
	}
	return views, nil
}

func (repo *submissionRepository) studentName(userID string) string {
	repo.users.RLock()
	defer repo.users.RUnlock()

	if usr, ok := repo.users.table[userID]; ok {
		return usr.Name
	}
	return ""
}

func sortNewestFirst(subs []submission.Submission) {
	sort.SliceStable(subs, func(i, j int) bool { return subs[i].CreatedAt.After(subs[j].CreatedAt) })
}
