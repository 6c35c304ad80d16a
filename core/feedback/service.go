package feedback

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/curaedu/cura/core"
	"github.com/curaedu/cura/core/auth"
	"github.com/curaedu/cura/core/submission"
)

var (
	// errors
	ErrNotFound = errors.New("feedback not found")
	// ErrNotOwner is returned when a student follows up on someone else's submission.
	ErrNotOwner = errors.New("submission does not belong to the student")
)

type (
	Repository interface {
		CreateFeedback(fb Feedback) (Feedback, error)
		// QueryFeedbackBySubmission returns feedback in chronological order.
		QueryFeedbackBySubmission(submissionID string) ([]Feedback, error)
		GetLatestFeedbackBySubmission(submissionID string) (Feedback, error)
		QueryFeedbackBySubmissions(submissionIDs []string) ([]Feedback, error)
	}

	// SubmissionStore is the slice of the submission storage this service needs.
	SubmissionStore interface {
		GetSubmissionByID(id string) (submission.Submission, error)
		QuerySubmissionsByOwner(userID string) ([]submission.Summary, error)
	}

	// Generator produces feedback and follow-up answers from an AI collaborator.
	Generator interface {
		GenerateFeedback(ctx context.Context, text, tone, teacherNotes, conciseness string, grade *float64) (string, error)
		GenerateFollowUp(ctx context.Context, text, feedbackText, question string) (string, error)
	}

	Service struct {
		repo Repository
		subs SubmissionStore
		gen  Generator
	}
)

func NewService(repo Repository, subs SubmissionStore, gen Generator) *Service {
	return &Service{repo: repo, subs: subs, gen: gen}
}

// Generate produces AI feedback for a submission and persists it.
// An AI failure after the submission lookup leaves nothing behind; an AI
// success followed by a storage failure is surfaced as-is with no retry.
func (svc *Service) Generate(ctx context.Context, nf NewFeedback) (Feedback, error) {
	sub, err := svc.subs.GetSubmissionByID(nf.SubmissionID)
	if err != nil {
		if err == submission.ErrNotFound {
			return Feedback{}, core.NewNotFoundError("submission")
		}
		return Feedback{}, err
	}

	text, err := svc.gen.GenerateFeedback(ctx, sub.ExtractedText, nf.Tone, nf.TeacherNotes, nf.Conciseness, nf.Grade)
	if err != nil {
		return Feedback{}, core.NewUpstreamError("generating feedback", err)
	}

	fb := Feedback{
		ID:           uuid.NewString(),
		SubmissionID: sub.ID,
		FeedbackText: text,
		Tone:         nf.Tone,
		Grade:        nf.Grade,
		CreatedAt:    time.Now().UTC(),
	}
	return svc.repo.CreateFeedback(fb)
}

func (svc *Service) ForSubmission(submissionID string) ([]Feedback, error) {
	return svc.repo.QueryFeedbackBySubmission(submissionID)
}

// ForStudent returns all feedback across the student's own submissions.
func (svc *Service) ForStudent(userID string) ([]Feedback, error) {
	subs, err := svc.subs.QuerySubmissionsByOwner(userID)
	if err != nil {
		return nil, err
	}
	if len(subs) == 0 {
		return []Feedback{}, nil
	}
	ids := make([]string, 0, len(subs))
	for _, s := range subs {
		ids = append(ids, s.ID)
	}
	return svc.repo.QueryFeedbackBySubmissions(ids)
}

// FollowUp answers a question about the latest feedback on a submission.
// Students may only ask about their own submissions. The answer is not persisted.
func (svc *Service) FollowUp(ctx context.Context, p auth.Principal, f FollowUp) (string, error) {
	sub, err := svc.subs.GetSubmissionByID(f.SubmissionID)
	if err != nil {
		if err == submission.ErrNotFound {
			return "", core.NewNotFoundError("submission")
		}
		return "", err
	}
	if p.Role == auth.RoleStudent && sub.UserID != p.ID {
		return "", ErrNotOwner
	}

	fb, err := svc.repo.GetLatestFeedbackBySubmission(sub.ID)
	if err != nil {
		if err == ErrNotFound {
			return "", core.NewNotFoundError("feedback")
		}
		return "", err
	}

	answer, err := svc.gen.GenerateFollowUp(ctx, sub.ExtractedText, fb.FeedbackText, f.Question)
	if err != nil {
		return "", core.NewUpstreamError("generating follow-up", err)
	}
	return answer, nil
}
