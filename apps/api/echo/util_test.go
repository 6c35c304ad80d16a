package echoapi

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/curaedu/cura/core"
	"github.com/curaedu/cura/core/account"
	"github.com/curaedu/cura/core/assignment"
	"github.com/curaedu/cura/core/auth"
	"github.com/curaedu/cura/core/feedback"
	"github.com/curaedu/cura/core/submission"
	"github.com/curaedu/cura/core/values"
	aisvc "github.com/curaedu/cura/services/ai"
	emailsvc "github.com/curaedu/cura/services/email"
	extractsvc "github.com/curaedu/cura/services/extractor"
	dummydb "github.com/curaedu/cura/storage/database/dummy"
)

type testEnv struct {
	server Server
	conf   *core.Config
	ai     *aisvc.DummyService

	usrRepo    account.Repository
	subRepo    submission.Repository
	fbRepo     feedback.Repository
	assignRepo assignment.Repository
	valRepo    values.Repository
}

func newTestConfig(t *testing.T) *core.Config {
	return &core.Config{
		Env:              "TEST",
		TestMode:         true,
		AppName:          "Cura",
		SecretKey:        []byte("secret"),
		DefaultFromEmail: "noreply@test.local",
		Server: core.ServerConfig{
			JWTIssuer:          "cura",
			JWTAudience:        "authenticated",
			JWTExpirationDelta: time.Hour,
		},
		Upload: core.UploadConfig{
			Dir:     t.TempDir(),
			MaxSize: 1 << 20,
		},
	}
}

func setup(t *testing.T) *testEnv {
	conf := newTestConfig(t)

	db, err := dummydb.Open()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}

	env := &testEnv{
		conf:       conf,
		ai:         aisvc.NewDummyService(),
		usrRepo:    dummydb.NewUserRepository(db),
		subRepo:    dummydb.NewSubmissionRepository(db),
		fbRepo:     dummydb.NewFeedbackRepository(db),
		assignRepo: dummydb.NewAssignmentRepository(db),
		valRepo:    dummydb.NewValuesRepository(db),
	}

	mailSvc := emailsvc.NewConsoleServiceMock(conf)
	validate, translator := core.NewValidator()

	env.server = NewServer(&Options{
		Conf:           conf,
		DisableReqLogs: true,
		AccountSvc:     account.NewService(env.usrRepo, mailSvc, conf),
		SubmissionSvc:  submission.NewService(env.subRepo, extractsvc.NewService(), conf),
		FeedbackSvc:    feedback.NewService(env.fbRepo, env.subRepo, env.ai),
		AssignmentSvc:  assignment.NewService(env.assignRepo, env.usrRepo),
		ValuesSvc:      values.NewService(env.valRepo, env.ai),
		Validate:       validate,
		Translator:     translator,
	})
	return env
}

func (env *testEnv) createUser(t *testing.T, email, role, name, pwd string) account.User {
	usr := account.User{
		ID:        uuid.NewString(),
		Email:     email,
		Role:      role,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	if err := usr.SetPassword(pwd); err != nil {
		t.Fatalf("createUser() failed: %v", err)
	}
	usr, err := env.usrRepo.CreateUser(usr)
	if err != nil {
		t.Fatalf("createUser() failed: %v", err)
	}
	return usr
}

func (env *testEnv) createSubmission(t *testing.T, ownerID, fileName, text string, createdAt time.Time) submission.Submission {
	sub, err := env.subRepo.CreateSubmission(submission.Submission{
		ID:            uuid.NewString(),
		UserID:        ownerID,
		FileName:      fileName,
		ExtractedText: text,
		CreatedAt:     createdAt,
	})
	if err != nil {
		t.Fatalf("createSubmission() failed: %v", err)
	}
	return sub
}

func (env *testEnv) seedFeedback(t *testing.T, submissionID, text string) feedback.Feedback {
	fb, err := env.fbRepo.CreateFeedback(feedback.Feedback{
		ID:           uuid.NewString(),
		SubmissionID: submissionID,
		FeedbackText: text,
		Tone:         "Affirming",
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("seedFeedback() failed: %v", err)
	}
	return fb
}

func (env *testEnv) createStatement(t *testing.T, text string) values.Statement {
	stmt, err := env.valRepo.CreateStatement(values.Statement{ID: uuid.NewString(), Text: text})
	if err != nil {
		t.Fatalf("createStatement() failed: %v", err)
	}
	return stmt
}

func (env *testEnv) getToken(t *testing.T, usr account.User) string {
	claims := auth.NewUserClaims(usr.ID, usr.Email, usr.Role, usr.Name, env.conf)
	token, err := auth.GenerateToken(claims, env.conf.SecretKey)
	if err != nil {
		t.Fatalf("getToken() failed: %v", err)
	}
	return token
}

func (env *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	env.server.ServeHTTP(rec, req)
	return rec
}

func newAuthRequest(method, path, token string, data ...[]byte) *http.Request {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set(echo.HeaderContentType, "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func newRequest(method, path string, data ...[]byte) *http.Request {
	return newAuthRequest(method, path, "", data...)
}

// newUploadRequest builds a multipart request with a single "file" part.
func newUploadRequest(t *testing.T, path, token, fileName, contentType string, data []byte) *http.Request {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", `form-data; name="file"; filename="`+fileName+`"`)
	hdr.Set("Content-Type", contentType)
	part, err := w.CreatePart(hdr)
	if err != nil {
		t.Fatalf("newUploadRequest() failed: %v", err)
	}
	if _, err = part.Write(data); err != nil {
		t.Fatalf("newUploadRequest() failed: %v", err)
	}
	if err = w.Close(); err != nil {
		t.Fatalf("newUploadRequest() failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func marshallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marshallObj() failed: %v", err)
	}
	return data
}

func decodeBody(t *testing.T, body io.Reader, dst interface{}) {
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		t.Fatalf("decodeBody() failed: %v", err)
	}
}
