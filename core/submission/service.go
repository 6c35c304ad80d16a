package submission

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"

	"github.com/curaedu/cura/core"
)

var (
	// errors
	ErrNotFound = errors.New("submission not found")
)

type (
	Repository interface {
		CreateSubmission(sub Submission) (Submission, error)
		GetSubmissionByID(id string) (Submission, error)
		QueryAllSubmissions() ([]Submission, error)
		// QuerySubmissionsByOwner returns the owner's submissions, newest first.
		QuerySubmissionsByOwner(userID string) ([]Summary, error)
		// QuerySubmissionsWithStudent returns all submissions joined with the
		// student's name, newest first.
		QuerySubmissionsWithStudent() ([]TeacherView, error)
	}

	// TextExtractor converts an uploaded document to plain text.
	TextExtractor interface {
		Extract(data []byte, contentType string) (string, error)
	}

	Service struct {
		repo      Repository
		extractor TextExtractor
		uploadDir string
	}
)

func NewService(repo Repository, extractor TextExtractor, conf *core.Config) *Service {
	if err := os.MkdirAll(conf.Upload.Dir, 0o755); err != nil {
		panic(pkgerrors.Wrapf(err, "creating upload dir %s", conf.Upload.Dir))
	}
	return &Service{
		repo:      repo,
		extractor: extractor,
		uploadDir: conf.Upload.Dir,
	}
}

// Create stores the uploaded file on disk, extracts its text and persists
// the submission. The stored file is removed again if any later step fails.
func (svc *Service) Create(ownerID, fileName, contentType string, data []byte) (Submission, error) {
	path := filepath.Join(svc.uploadDir, filepath.Base(fileName))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return Submission{}, pkgerrors.Wrap(err, "storing upload")
	}

	text, err := svc.extractor.Extract(data, contentType)
	if err != nil {
		_ = os.Remove(path)
		return Submission{}, err
	}

	sub := Submission{
		ID:            uuid.NewString(),
		UserID:        ownerID,
		FileName:      fileName,
		ExtractedText: text,
		CreatedAt:     time.Now().UTC(),
	}
	sub, err = svc.repo.CreateSubmission(sub)
	if err != nil {
		_ = os.Remove(path)
		return Submission{}, pkgerrors.Wrap(err, "creating submission")
	}
	return sub, nil
}

func (svc *Service) GetByID(id string) (Submission, error) {
	sub, err := svc.repo.GetSubmissionByID(id)
	if err != nil {
		if err == ErrNotFound {
			return Submission{}, core.NewNotFoundError("submission")
		}
		return Submission{}, err
	}
	return sub, nil
}

func (svc *Service) QueryAll() ([]Submission, error) {
	return svc.repo.QueryAllSubmissions()
}

func (svc *Service) QueryOwn(ownerID string) ([]Summary, error) {
	return svc.repo.QuerySubmissionsByOwner(ownerID)
}

func (svc *Service) QueryWithStudent() ([]TeacherView, error) {
	return svc.repo.QuerySubmissionsWithStudent()
}
