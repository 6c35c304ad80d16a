package extractsvc

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/fumiama/go-docx"
	"github.com/ledongthuc/pdf"
	pkgerrors "github.com/pkg/errors"

	"github.com/curaedu/cura/core/submission"
)

// Supported upload MIME types.
const (
	MimePDF  = "application/pdf"
	MimeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeText = "text/plain"
)

var ErrUnsupportedType = errors.New("unsupported file type")

// Service converts uploaded documents to plain text.
type Service struct{}

var _ submission.TextExtractor = (*Service)(nil)

func NewService() *Service { return &Service{} }

func (svc *Service) Extract(data []byte, contentType string) (string, error) {
	switch contentType {
	case MimePDF:
		return extractPDF(data)
	case MimeDocx:
		return extractDocx(data)
	case MimeText:
		return string(data), nil
	}
	return "", ErrUnsupportedType
}

func extractPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", pkgerrors.Wrap(err, "reading pdf")
	}
	text, err := r.GetPlainText()
	if err != nil {
		return "", pkgerrors.Wrap(err, "extracting pdf text")
	}
	var buf bytes.Buffer
	if _, err = buf.ReadFrom(text); err != nil {
		return "", pkgerrors.Wrap(err, "extracting pdf text")
	}
	return buf.String(), nil
}

func extractDocx(data []byte) (string, error) {
	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", pkgerrors.Wrap(err, "reading docx")
	}
	var paras []string
	for _, item := range doc.Document.Body.Items {
		if p, ok := item.(*docx.Paragraph); ok {
			paras = append(paras, fmt.Sprint(p))
		}
	}
	return strings.Join(paras, "\n"), nil
}
