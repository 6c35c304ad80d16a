package echoapi

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/curaedu/cura/core/auth"
	"github.com/curaedu/cura/core/feedback"
)

func TestFeedbackAPI_generate(t *testing.T) {
	env := setup(t)
	stu := env.createUser(t, "stu@test.local", auth.RoleStudent, "Stu Dent", "Secret123")
	tea := env.createUser(t, "tea@test.local", auth.RoleTeacher, "Tea Cher", "Secret123")
	sub := env.createSubmission(t, stu.ID, "essay.txt", "my essay", time.Now().UTC())

	grade := 85.0
	body := marshallObj(t, feedback.NewFeedback{
		SubmissionID: sub.ID,
		Grade:        &grade,
		TeacherNotes: "good structure",
		Conciseness:  "brief",
	})

	// students may not generate feedback
	rec := env.do(newAuthRequest(http.MethodPost, "/v1/feedback/generate", env.getToken(t, stu), body))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.do(newAuthRequest(http.MethodPost, "/v1/feedback/generate", env.getToken(t, tea), body))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var fb feedback.Feedback
	decodeBody(t, rec.Body, &fb)
	assert.Equal(t, sub.ID, fb.SubmissionID)
	assert.Equal(t, env.ai.Feedback, fb.FeedbackText)
	assert.Equal(t, "Affirming", fb.Tone) // default
	if assert.NotNil(t, fb.Grade) {
		assert.Equal(t, grade, *fb.Grade)
	}
}

func TestFeedbackAPI_generate_unknownSubmission(t *testing.T) {
	env := setup(t)
	tea := env.createUser(t, "tea@test.local", auth.RoleTeacher, "Tea Cher", "Secret123")

	body := marshallObj(t, feedback.NewFeedback{SubmissionID: "nope", TeacherNotes: "n", Conciseness: "brief"})
	rec := env.do(newAuthRequest(http.MethodPost, "/v1/feedback/generate", env.getToken(t, tea), body))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFeedbackAPI_generate_upstreamFailure(t *testing.T) {
	env := setup(t)
	stu := env.createUser(t, "stu@test.local", auth.RoleStudent, "Stu Dent", "Secret123")
	tea := env.createUser(t, "tea@test.local", auth.RoleTeacher, "Tea Cher", "Secret123")
	sub := env.createSubmission(t, stu.ID, "essay.txt", "my essay", time.Now().UTC())

	env.ai.Err = assert.AnError

	body := marshallObj(t, feedback.NewFeedback{SubmissionID: sub.ID, TeacherNotes: "n", Conciseness: "brief"})
	rec := env.do(newAuthRequest(http.MethodPost, "/v1/feedback/generate", env.getToken(t, tea), body))
	assert.Equal(t, http.StatusBadGateway, rec.Code)

	// nothing was persisted
	fbs, err := env.fbRepo.QueryFeedbackBySubmission(sub.ID)
	assert.NoError(t, err)
	assert.Empty(t, fbs)
}

func TestFeedbackAPI_queryMine(t *testing.T) {
	env := setup(t)
	stu := env.createUser(t, "stu@test.local", auth.RoleStudent, "Stu Dent", "Secret123")
	other := env.createUser(t, "other@test.local", auth.RoleStudent, "Other One", "Secret123")
	tea := env.createUser(t, "tea@test.local", auth.RoleTeacher, "Tea Cher", "Secret123")

	now := time.Now().UTC()
	mine := env.createSubmission(t, stu.ID, "mine.txt", "mine", now)
	theirs := env.createSubmission(t, other.ID, "theirs.txt", "theirs", now)
	env.seedFeedback(t, mine.ID, "keep")
	env.seedFeedback(t, theirs.ID, "skip")

	// teachers have no "mine" view
	rec := env.do(newAuthRequest(http.MethodGet, "/v1/feedback/mine", env.getToken(t, tea)))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.do(newAuthRequest(http.MethodGet, "/v1/feedback/mine", env.getToken(t, stu)))
	assert.Equal(t, http.StatusOK, rec.Code)

	var fbs []feedback.Feedback
	decodeBody(t, rec.Body, &fbs)
	if assert.Len(t, fbs, 1) {
		assert.Equal(t, "keep", fbs[0].FeedbackText)
	}
}

func TestFeedbackAPI_followUp(t *testing.T) {
	env := setup(t)
	stu := env.createUser(t, "stu@test.local", auth.RoleStudent, "Stu Dent", "Secret123")
	other := env.createUser(t, "other@test.local", auth.RoleStudent, "Other One", "Secret123")
	tea := env.createUser(t, "tea@test.local", auth.RoleTeacher, "Tea Cher", "Secret123")
	sub := env.createSubmission(t, stu.ID, "essay.txt", "my essay", time.Now().UTC())
	env.seedFeedback(t, sub.ID, "well done")

	body := marshallObj(t, feedback.FollowUp{SubmissionID: sub.ID, Question: "what should I fix first?"})

	// the owner and any teacher may ask
	for _, usr := range []struct {
		name  string
		token string
	}{
		{"owner", env.getToken(t, stu)},
		{"teacher", env.getToken(t, tea)},
	} {
		t.Run(usr.name, func(t *testing.T) {
			rec := env.do(newAuthRequest(http.MethodPost, "/v1/feedback/follow-up", usr.token, body))
			assert.Equal(t, http.StatusOK, rec.Code)

			var resp FollowUpResponse
			decodeBody(t, rec.Body, &resp)
			assert.Equal(t, env.ai.FollowUp, resp.Answer)
		})
	}

	// another student may not
	rec := env.do(newAuthRequest(http.MethodPost, "/v1/feedback/follow-up", env.getToken(t, other), body))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestFeedbackAPI_followUp_noFeedbackYet(t *testing.T) {
	env := setup(t)
	stu := env.createUser(t, "stu@test.local", auth.RoleStudent, "Stu Dent", "Secret123")
	sub := env.createSubmission(t, stu.ID, "essay.txt", "my essay", time.Now().UTC())

	body := marshallObj(t, feedback.FollowUp{SubmissionID: sub.ID, Question: "thoughts?"})
	rec := env.do(newAuthRequest(http.MethodPost, "/v1/feedback/follow-up", env.getToken(t, stu), body))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFeedbackAPI_queryBySubmission(t *testing.T) {
	env := setup(t)
	stu := env.createUser(t, "stu@test.local", auth.RoleStudent, "Stu Dent", "Secret123")
	sub := env.createSubmission(t, stu.ID, "essay.txt", "my essay", time.Now().UTC())
	env.seedFeedback(t, sub.ID, "first")
	env.seedFeedback(t, sub.ID, "second")

	rec := env.do(newAuthRequest(http.MethodGet, "/v1/feedback/submissions/"+sub.ID, env.getToken(t, stu)))
	assert.Equal(t, http.StatusOK, rec.Code)

	var fbs []feedback.Feedback
	decodeBody(t, rec.Body, &fbs)
	assert.Len(t, fbs, 2)
}
