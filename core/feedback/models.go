package feedback

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/curaedu/cura/core"
)

const defaultTone = "Affirming"

type Feedback struct {
	ID           string    `json:"id" db:"id"`
	SubmissionID string    `json:"submission_id" db:"submission_id"`
	FeedbackText string    `json:"feedback_text" db:"feedback_text"`
	Tone         string    `json:"tone" db:"tone"`
	Grade        *float64  `json:"grade" db:"grade"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // UTC
}

// NewFeedback contains information needed to generate feedback on a submission.
type NewFeedback struct {
	SubmissionID string   `json:"submission_id" validate:"required"`
	Tone         string   `json:"tone"`
	Grade        *float64 `json:"grade" validate:"omitempty,gte=0,lte=100"`
	TeacherNotes string   `json:"teacher_notes" validate:"required"`
	Conciseness  string   `json:"conciseness" validate:"required"`
}

func (nf *NewFeedback) Validate(validate *validator.Validate) error {
	nf.Tone = core.CleanString(nf.Tone)
	if nf.Tone == "" {
		nf.Tone = defaultTone
	}
	nf.TeacherNotes = core.CleanString(nf.TeacherNotes)
	nf.Conciseness = core.CleanString(nf.Conciseness)
	return validate.Struct(nf)
}

// FollowUp is a question about previously generated feedback.
type FollowUp struct {
	SubmissionID string `json:"submission_id" validate:"required"`
	Question     string `json:"question" validate:"required"`
}

func (f *FollowUp) Validate(validate *validator.Validate) error {
	f.Question = core.CleanString(f.Question)
	return validate.Struct(f)
}
