package echoapi

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/curaedu/cura/core/auth"
	"github.com/curaedu/cura/core/submission"
	extractsvc "github.com/curaedu/cura/services/extractor"
)

func TestSubmissionAPI_upload(t *testing.T) {
	env := setup(t)
	stu := env.createUser(t, "stu@test.local", auth.RoleStudent, "Stu Dent", "Secret123")
	token := env.getToken(t, stu)

	req := newUploadRequest(t, "/v1/uploads", token, "essay.txt", extractsvc.MimeText, []byte("my essay text"))
	rec := env.do(req)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var sub submission.Submission
	decodeBody(t, rec.Body, &sub)
	assert.Equal(t, stu.ID, sub.UserID)
	assert.Equal(t, "essay.txt", sub.FileName)
	assert.Equal(t, "my essay text", sub.ExtractedText)
}

func TestSubmissionAPI_upload_unsupportedType(t *testing.T) {
	env := setup(t)
	stu := env.createUser(t, "stu@test.local", auth.RoleStudent, "Stu Dent", "Secret123")
	token := env.getToken(t, stu)

	req := newUploadRequest(t, "/v1/uploads", token, "cat.png", "image/png", []byte{0x89, 0x50})
	rec := env.do(req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unsupported file type")
}

func TestSubmissionAPI_upload_requiresToken(t *testing.T) {
	env := setup(t)

	req := newUploadRequest(t, "/v1/uploads", "", "essay.txt", extractsvc.MimeText, []byte("text"))
	rec := env.do(req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSubmissionAPI_queryMine(t *testing.T) {
	env := setup(t)
	stu := env.createUser(t, "stu@test.local", auth.RoleStudent, "Stu Dent", "Secret123")
	other := env.createUser(t, "other@test.local", auth.RoleStudent, "Other One", "Secret123")

	now := time.Now().UTC()
	env.createSubmission(t, stu.ID, "old.txt", "old", now.Add(-time.Hour))
	env.createSubmission(t, stu.ID, "new.txt", "new", now)
	env.createSubmission(t, other.ID, "theirs.txt", "theirs", now)

	rec := env.do(newAuthRequest(http.MethodGet, "/v1/uploads/mine", env.getToken(t, stu)))
	assert.Equal(t, http.StatusOK, rec.Code)

	var sums []submission.Summary
	decodeBody(t, rec.Body, &sums)
	if assert.Len(t, sums, 2) {
		// newest first, and no extracted text in the listing
		assert.Equal(t, "new.txt", sums[0].FileName)
		assert.Equal(t, "old.txt", sums[1].FileName)
	}
	assert.NotContains(t, rec.Body.String(), "extracted_text")
}

func TestSubmissionAPI_queryAll_teacherOnly(t *testing.T) {
	env := setup(t)
	stu := env.createUser(t, "stu@test.local", auth.RoleStudent, "Stu Dent", "Secret123")
	tea := env.createUser(t, "tea@test.local", auth.RoleTeacher, "Tea Cher", "Secret123")
	env.createSubmission(t, stu.ID, "essay.txt", "text", time.Now().UTC())

	rec := env.do(newAuthRequest(http.MethodGet, "/v1/uploads", env.getToken(t, stu)))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.do(newAuthRequest(http.MethodGet, "/v1/uploads", env.getToken(t, tea)))
	assert.Equal(t, http.StatusOK, rec.Code)

	var subs []submission.Submission
	decodeBody(t, rec.Body, &subs)
	assert.Len(t, subs, 1)
}

func TestSubmissionAPI_teacherView(t *testing.T) {
	env := setup(t)
	stu := env.createUser(t, "stu@test.local", auth.RoleStudent, "Stu Dent", "Secret123")
	tea := env.createUser(t, "tea@test.local", auth.RoleTeacher, "Tea Cher", "Secret123")
	env.createSubmission(t, stu.ID, "essay.txt", "text", time.Now().UTC())

	rec := env.do(newAuthRequest(http.MethodGet, "/v1/teacher/submissions", env.getToken(t, stu)))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.do(newAuthRequest(http.MethodGet, "/v1/teacher/submissions", env.getToken(t, tea)))
	assert.Equal(t, http.StatusOK, rec.Code)

	var views []submission.TeacherView
	decodeBody(t, rec.Body, &views)
	if assert.Len(t, views, 1) {
		assert.Equal(t, "Stu Dent", views[0].StudentName)
	}
}
